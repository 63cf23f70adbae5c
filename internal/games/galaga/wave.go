package galaga

import "fmt"

// spawnDesc describes one pending enemy: what to spawn, which slot it owns,
// and which edge it enters from.
type spawnDesc struct {
	kind     EnemyKind
	slot     Slot
	fromLeft bool
}

// waveDirector sequences spawn batches into the formation, detects wave
// clear, and escalates difficulty between waves.
type waveDirector struct {
	wave         int // 1-based
	queue        []spawnDesc
	spawnTimer   int
	intermission int
}

// updateWave runs the director for one tick: staggered entrance spawns,
// wave-clear detection, the intermission countdown, and player respawn.
func (g *Game) updateWave() {
	g.updateRespawn()

	switch g.phase {
	case PhasePlaying:
		g.updateSpawns()
		if len(g.director.queue) == 0 && g.world.CountKind(KindEnemy) == 0 {
			g.phase = PhaseIntermission
			g.director.intermission = g.cfg.Waves.Intermission
		}
	case PhaseIntermission:
		g.director.intermission--
		if g.director.intermission <= 0 {
			g.startWave(g.director.wave + 1)
			g.phase = PhasePlaying
		}
	}
}

// updateSpawns feeds the next queued enemy into the world when the stagger
// timer allows. A full arena defers the spawn: the descriptor stays queued
// and is retried on the next stagger interval.
func (g *Game) updateSpawns() {
	if len(g.director.queue) == 0 {
		return
	}
	if g.director.spawnTimer > 0 {
		g.director.spawnTimer--
		return
	}
	g.director.spawnTimer = g.cfg.Waves.SpawnStagger

	desc := g.director.queue[0]
	if !g.spawnEnemy(desc) {
		return // arena full, retry this descriptor later
	}
	g.director.queue = g.director.queue[1:]
}

// spawnEnemy creates one enemy in Entering state on its scripted entrance
// path. Returns false if the entity arena is full.
func (g *Game) spawnEnemy(desc spawnDesc) bool {
	id, e, ok := g.world.Spawn(KindEnemy)
	if !ok {
		return false
	}

	if !g.formation.Reserve(desc.slot, id) {
		// Slot already reserved: a malformed layout slipped through
		// generation. Drop the spawn rather than double-occupy.
		g.telemetry.Error("formation slot already reserved", "row", desc.slot.Row, "col", desc.slot.Col)
		g.world.Destroy(id)
		return true
	}

	startX := -3
	if !desc.fromLeft {
		startX = g.runtime.ScreenW + 3
	}
	start := VecFromCell(startX, g.fieldTop+1)
	target := g.formation.SlotPos(desc.slot)
	dur := g.difficulty.PathDuration(g.cfg.Formation.EntryDuration, g.score, g.tick)

	e.Enemy = desc.kind
	e.HP = enemyHP(desc.kind)
	e.W, e.H = 1, 1
	e.Slot = desc.slot
	e.Docked = false
	e.State = EnemyEntering
	e.StateT = 0
	e.Path = entrancePath(start, target, dur)
	e.X, e.Y = start.X, start.Y
	e.LastShot = -g.cfg.Attack.MinFireInterval
	return true
}

// enemyHP returns the starting health for an enemy kind.
// Bosses take two hits, matching genre convention.
func enemyHP(kind EnemyKind) int {
	if kind == EnemyBoss {
		return 2
	}
	return 1
}

// startWave generates and installs the spawn queue for the given wave,
// resetting the per-wave attack pacing.
func (g *Game) startWave(wave int) {
	g.director.wave = wave
	g.director.spawnTimer = 0

	queue, err := g.buildWave(wave)
	if err != nil {
		// Malformed wave configuration: log it and fall back to a safe
		// default shape instead of corrupting the simulation.
		g.telemetry.Error("wave generation failed", "wave", wave, "err", err)
		queue = g.defaultWave()
	}
	g.director.queue = queue

	// Escalation: denser cadence and more simultaneous divers, monotonic.
	g.diveCadence = g.cfg.Attack.Cadence - (wave-1)*g.cfg.Waves.CadenceStep
	if g.diveCadence < g.cfg.Waves.CadenceFloor {
		g.diveCadence = g.cfg.Waves.CadenceFloor
	}
	g.diveCap = g.cfg.Attack.DiveCap
	if g.cfg.Waves.DiveCapStep > 0 {
		g.diveCap += (wave - 1) / g.cfg.Waves.DiveCapStep
	}
	if g.diveCap > g.cfg.Waves.MaxDiveCap {
		g.diveCap = g.cfg.Waves.MaxDiveCap
	}

	g.attack.timer = g.diveCadence
	g.attack.cursor = 0
}

// buildWave produces the spawn descriptors for a wave: rows filled top-down
// (bosses first, then butterflies, then bees), columns center-out, entrance
// sides alternating so arrivals interleave from both edges.
func (g *Game) buildWave(wave int) ([]spawnDesc, error) {
	rows, cols := g.formation.Rows, g.formation.Cols
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("formation grid %dx%d is empty", rows, cols)
	}

	count := g.cfg.Waves.BaseEnemies + (wave-1)*g.cfg.Waves.EnemiesPerWave
	if count <= 0 {
		return nil, fmt.Errorf("wave %d has non-positive enemy count %d", wave, count)
	}
	if count > g.formation.Capacity() {
		count = g.formation.Capacity()
	}

	descs := make([]spawnDesc, 0, count)
	for row := 0; row < rows && len(descs) < count; row++ {
		for _, col := range centerOut(cols) {
			if len(descs) >= count {
				break
			}
			descs = append(descs, spawnDesc{
				kind:     rowKind(row),
				slot:     Slot{Row: row, Col: col},
				fromLeft: len(descs)%2 == 0,
			})
		}
	}
	return descs, nil
}

// defaultWave is the safe fallback shape: a single row of bees across the
// middle columns.
func (g *Game) defaultWave() []spawnDesc {
	cols := g.formation.Cols
	if cols <= 0 {
		return nil
	}
	descs := make([]spawnDesc, 0, cols)
	for i, col := range centerOut(cols) {
		descs = append(descs, spawnDesc{
			kind:     EnemyBee,
			slot:     Slot{Row: 0, Col: col},
			fromLeft: i%2 == 0,
		})
	}
	return descs
}

// rowKind maps a formation row to its enemy kind: the top row carries
// bosses, the next two butterflies, the rest bees.
func rowKind(row int) EnemyKind {
	switch {
	case row == 0:
		return EnemyBoss
	case row <= 2:
		return EnemyButterfly
	default:
		return EnemyBee
	}
}

// centerOut returns column indices ordered from the middle outward, so the
// formation fills from its heart toward the edges.
func centerOut(cols int) []int {
	order := make([]int, 0, cols)
	mid := cols / 2
	order = append(order, mid)
	for d := 1; len(order) < cols; d++ {
		if mid-d >= 0 {
			order = append(order, mid-d)
		}
		if mid+d < cols && len(order) < cols {
			order = append(order, mid+d)
		}
	}
	return order
}

// killPlayer consumes a life. With lives remaining the respawn countdown is
// armed; otherwise the simulation signals game over on the same tick.
func (g *Game) killPlayer() {
	player, ok := g.world.Get(g.playerID)
	if !ok {
		return
	}
	g.lastPlayerX = player.X
	g.world.Destroy(g.playerID)

	g.lives--
	if g.lives <= 0 {
		g.phase = PhaseGameOver
		g.respawnTimer = 0
		return
	}
	g.respawnTimer = g.cfg.Player.RespawnDelay
}

// updateRespawn counts down to the player's return and recreates the ship
// at the fixed spawn point with its invulnerability grace window.
func (g *Game) updateRespawn() {
	if g.respawnTimer <= 0 {
		return
	}
	g.respawnTimer--
	if g.respawnTimer > 0 {
		return
	}
	g.spawnPlayer(g.cfg.Player.InvulnTicks)
}

// spawnPlayer creates the ship at the spawn point.
func (g *Game) spawnPlayer(invuln int) {
	id, player, ok := g.world.Spawn(KindPlayer)
	if !ok {
		// Arena exhausted: retry on the next tick rather than dropping
		// the respawn entirely.
		g.respawnTimer = 1
		return
	}
	g.playerID = id
	player.X = ToFixed(g.runtime.ScreenW / 2)
	player.Y = ToFixed(g.playerY)
	player.W, player.H = 1, 1
	player.HP = 1
	player.Invuln = invuln
	g.lastPlayerX = player.X
}
