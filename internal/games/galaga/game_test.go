package galaga

import (
	"testing"

	"github.com/galago-arcade/galago/internal/core"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	}
}

func TestGameDeterminism(t *testing.T) {
	// Test that given the same inputs, the game produces identical results
	cfg := testRuntime(12345)

	// Scripted inputs: weave left and right, firing in bursts
	inputSequence := make([]core.InputFrame, 600)
	for i := range inputSequence {
		inputSequence[i] = core.NewInputFrame()
		if i%14 < 7 {
			inputSequence[i].Set(core.ActionRight)
		} else {
			inputSequence[i].Set(core.ActionLeft)
		}
		if i%3 == 0 {
			inputSequence[i].Set(core.ActionFire)
		}
	}

	// Run game 1
	g1 := New()
	g1.Reset(cfg)
	for _, in := range inputSequence {
		result := g1.Step(in)
		if result.State.GameOver {
			break
		}
	}
	snap1 := g1.Snapshot()

	// Run game 2 with same inputs
	g2 := New()
	g2.Reset(cfg)
	for _, in := range inputSequence {
		result := g2.Step(in)
		if result.State.GameOver {
			break
		}
	}
	snap2 := g2.Snapshot()

	if snap1.Hash() != snap2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", snap1.Hash(), snap2.Hash())
	}
	if snap1.Score != snap2.Score {
		t.Errorf("Determinism failed: scores differ. Run1=%d, Run2=%d", snap1.Score, snap2.Score)
	}
	if snap1.Tick != snap2.Tick {
		t.Errorf("Determinism failed: tick counts differ. Run1=%d, Run2=%d", snap1.Tick, snap2.Tick)
	}
	if len(snap1.Entities) != len(snap2.Entities) {
		t.Errorf("Determinism failed: entity counts differ. Run1=%d, Run2=%d", len(snap1.Entities), len(snap2.Entities))
	}
}

func TestGameReset(t *testing.T) {
	g := New()
	g.Reset(testRuntime(42))

	// Play a few ticks
	for i := 0; i < 50; i++ {
		in := core.NewInputFrame()
		if i%2 == 0 {
			in.Set(core.ActionRight)
		}
		in.Set(core.ActionFire)
		g.Step(in)
	}

	g.Reset(testRuntime(42))

	if g.score != 0 {
		t.Errorf("Reset should clear score, got %d", g.score)
	}
	if g.tick != 0 {
		t.Errorf("Reset should clear tick count, got %d", g.tick)
	}
	if g.phase != PhasePlaying {
		t.Errorf("Reset should return to playing phase, got %s", g.phase)
	}
	if g.director.wave != 1 {
		t.Errorf("Reset should restart at wave 1, got %d", g.director.wave)
	}
	if g.lives != g.cfg.Player.Lives {
		t.Errorf("Reset should restore lives to %d, got %d", g.cfg.Player.Lives, g.lives)
	}
	if _, ok := g.world.Get(g.playerID); !ok {
		t.Error("Reset should spawn the player")
	}
}

func TestPlayerMovement(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))

	player, ok := g.world.Get(g.playerID)
	if !ok {
		t.Fatal("player should exist after reset")
	}
	startX := player.X

	rightInput := core.NewInputFrame()
	rightInput.Set(core.ActionRight)
	g.Step(rightInput)

	player, _ = g.world.Get(g.playerID)
	if player.X <= startX {
		t.Errorf("Player should move right, was %d, now %d", startX, player.X)
	}

	newX := player.X
	leftInput := core.NewInputFrame()
	leftInput.Set(core.ActionLeft)
	g.Step(leftInput)

	player, _ = g.world.Get(g.playerID)
	if player.X >= newX {
		t.Errorf("Player should move left, was %d, now %d", newX, player.X)
	}
}

func TestPlayerClampedToField(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))

	leftInput := core.NewInputFrame()
	leftInput.Set(core.ActionLeft)
	for i := 0; i < 300; i++ {
		g.Step(leftInput)
		player, ok := g.world.Get(g.playerID)
		if !ok {
			continue // awaiting respawn
		}
		if player.X < 0 {
			t.Fatalf("Player escaped the left edge: X=%d", player.X)
		}
	}
}

func TestPlayerFireCooldown(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))

	fireInput := core.NewInputFrame()
	fireInput.Set(core.ActionFire)
	g.Step(fireInput)

	if got := g.world.CountKind(KindProjectile); got != 1 {
		t.Fatalf("First fire should spawn one shot, got %d", got)
	}

	player, _ := g.world.Get(g.playerID)
	if player.Cooldown != g.cfg.Player.FireCooldown {
		t.Errorf("Fire should arm the cooldown to %d, got %d", g.cfg.Player.FireCooldown, player.Cooldown)
	}

	// Held fire during cooldown must not spawn another shot
	g.Step(fireInput)
	if got := g.world.CountKind(KindProjectile); got != 1 {
		t.Errorf("Fire during cooldown should be ignored, got %d shots", got)
	}
}

func TestProjectileKillsEnemy(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))

	slot := Slot{Row: 3, Col: 2}
	eid, enemy, ok := g.world.Spawn(KindEnemy)
	if !ok {
		t.Fatal("spawn failed")
	}
	if !g.formation.Reserve(slot, eid) {
		t.Fatal("slot reservation failed")
	}
	enemy.Enemy = EnemyBee
	enemy.State = EnemyFormed
	enemy.HP = 1
	enemy.W, enemy.H = 1, 1
	enemy.Slot = slot
	enemy.X, enemy.Y = ToFixed(10), ToFixed(5)

	pid, shot, ok := g.world.Spawn(KindProjectile)
	if !ok {
		t.Fatal("spawn failed")
	}
	shot.Owner = OwnerPlayer
	shot.Damage = 1
	shot.W, shot.H = 1, 1
	shot.X, shot.Y = ToFixed(10), ToFixed(5)

	g.resolveCollisions()
	g.world.Flush()

	if _, ok := g.world.Get(eid); ok {
		t.Error("Enemy should be destroyed by the hit")
	}
	if _, ok := g.world.Get(pid); ok {
		t.Error("Projectile should be consumed by the hit")
	}
	if g.score != g.cfg.Scoring.Bee {
		t.Errorf("Kill should credit %d points, got %d", g.cfg.Scoring.Bee, g.score)
	}
	if g.formation.OccupantAt(slot) != NoEntity {
		t.Error("Kill should release the formation slot")
	}
}

func TestDivingKillPaysBonus(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))

	eid, enemy, _ := g.world.Spawn(KindEnemy)
	enemy.Enemy = EnemyButterfly
	enemy.State = EnemyDiving
	enemy.HP = 1
	enemy.W, enemy.H = 1, 1
	enemy.X, enemy.Y = ToFixed(20), ToFixed(8)

	_, shot, _ := g.world.Spawn(KindProjectile)
	shot.Owner = OwnerPlayer
	shot.Damage = 1
	shot.W, shot.H = 1, 1
	shot.X, shot.Y = ToFixed(20), ToFixed(8)

	g.resolveCollisions()
	g.world.Flush()

	want := g.cfg.Scoring.Butterfly * g.cfg.Scoring.DiveMultiplier
	if g.score != want {
		t.Errorf("Diving kill should pay %d points, got %d", want, g.score)
	}
	if _, ok := g.world.Get(eid); ok {
		t.Error("Enemy should be destroyed")
	}
}

func TestNoFriendlyFire(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))

	eid, enemy, _ := g.world.Spawn(KindEnemy)
	enemy.Enemy = EnemyBee
	enemy.State = EnemyFormed
	enemy.HP = 1
	enemy.W, enemy.H = 1, 1
	enemy.X, enemy.Y = ToFixed(30), ToFixed(6)

	// Enemy shot overlapping an enemy must pass through
	pid, shot, _ := g.world.Spawn(KindProjectile)
	shot.Owner = OwnerEnemy
	shot.Damage = 1
	shot.W, shot.H = 1, 1
	shot.X, shot.Y = ToFixed(30), ToFixed(6)

	g.resolveCollisions()
	g.world.Flush()

	if _, ok := g.world.Get(eid); !ok {
		t.Error("Enemy should not be hit by an enemy shot")
	}
	if _, ok := g.world.Get(pid); !ok {
		t.Error("Enemy shot should pass through enemies untouched")
	}
}

func TestGraceWindowAbsorbsShot(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))

	player, _ := g.world.Get(g.playerID)
	player.Invuln = 60
	livesBefore := g.lives

	pid, shot, _ := g.world.Spawn(KindProjectile)
	shot.Owner = OwnerEnemy
	shot.Damage = 1
	shot.W, shot.H = 1, 1
	shot.X, shot.Y = player.X, player.Y

	g.resolveCollisions()
	g.world.Flush()

	if g.lives != livesBefore {
		t.Errorf("Grace window should absorb the hit, lives %d -> %d", livesBefore, g.lives)
	}
	if _, ok := g.world.Get(g.playerID); !ok {
		t.Error("Player should survive a hit during the grace window")
	}
	if _, ok := g.world.Get(pid); ok {
		t.Error("Absorbed shot should still be consumed")
	}
}

func TestLastLifeGameOver(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))
	g.lives = 1

	player, _ := g.world.Get(g.playerID)
	_, shot, _ := g.world.Spawn(KindProjectile)
	shot.Owner = OwnerEnemy
	shot.Damage = 1
	shot.W, shot.H = 1, 1
	shot.X, shot.Y = player.X, player.Y

	g.resolveCollisions()

	// Game over must be visible the same tick the last life is lost
	if g.phase != PhaseGameOver {
		t.Errorf("Losing the last life should end the game immediately, phase=%s", g.phase)
	}
	if g.lives != 0 {
		t.Errorf("Lives should read 0 at game over, got %d", g.lives)
	}
}

func TestRestartAfterGameOver(t *testing.T) {
	g := New()
	g.Reset(testRuntime(7))
	g.lives = 0
	g.phase = PhaseGameOver
	g.score = 1234

	restart := core.NewInputFrame()
	restart.Set(core.ActionRestart)
	g.Step(restart)

	if g.phase != PhasePlaying {
		t.Errorf("Restart should return to playing, got %s", g.phase)
	}
	if g.score != 0 {
		t.Errorf("Restart should clear the score, got %d", g.score)
	}
}

func TestGamePause(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))

	// Advance a little first
	noInput := core.NewInputFrame()
	for i := 0; i < 10; i++ {
		g.Step(noInput)
	}

	pauseInput := core.NewInputFrame()
	pauseInput.Set(core.ActionPause)
	g.Step(pauseInput)

	if g.phase != PhasePaused {
		t.Fatalf("Game should be paused, got %s", g.phase)
	}

	tickBefore := g.tick
	snapBefore := g.Snapshot()

	// Steps while paused must not advance the simulation
	for i := 0; i < 5; i++ {
		g.Step(noInput)
	}
	if g.tick != tickBefore {
		t.Errorf("Paused game should not advance ticks, %d -> %d", tickBefore, g.tick)
	}
	snapAfter := g.Snapshot()
	if len(snapAfter.Entities) != len(snapBefore.Entities) {
		t.Error("Paused game should not mutate the world")
	}

	// Unpause resumes the previous phase
	g.Step(pauseInput)
	if g.phase == PhasePaused {
		t.Error("Game should be unpaused")
	}
}

func TestWaveProgression(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))

	cadenceBefore := g.diveCadence

	// Clear the field out from under the director: no queued spawns and no
	// live enemies reads as a cleared wave.
	g.director.queue = nil
	g.world.EachKind(KindEnemy, func(id EntityID, _ *Entity) bool {
		g.world.Destroy(id)
		return true
	})
	g.world.Flush()

	noInput := core.NewInputFrame()
	g.Step(noInput)

	if g.phase != PhaseIntermission {
		t.Fatalf("Cleared wave should enter intermission, got %s", g.phase)
	}

	// Ride out the intermission countdown
	for i := 0; i < g.cfg.Waves.Intermission+1; i++ {
		g.Step(noInput)
	}

	if g.phase != PhasePlaying {
		t.Errorf("Intermission should hand off to the next wave, got %s", g.phase)
	}
	if g.director.wave != 2 {
		t.Errorf("Next wave should be 2, got %d", g.director.wave)
	}
	if len(g.director.queue) == 0 {
		t.Error("New wave should queue entrance spawns")
	}
	if g.diveCadence >= cadenceBefore && cadenceBefore > g.cfg.Waves.CadenceFloor {
		t.Errorf("Wave 2 cadence should tighten, %d -> %d", cadenceBefore, g.diveCadence)
	}
}

func TestEnemiesDockIntoFormation(t *testing.T) {
	g := New()
	g.Reset(testRuntime(3))

	noInput := core.NewInputFrame()
	for i := 0; i < 300; i++ {
		g.Step(noInput)
	}

	formed := 0
	g.world.EachKind(KindEnemy, func(id EntityID, e *Entity) bool {
		if e.State != EnemyFormed {
			return true
		}
		formed++
		if !e.Docked {
			t.Errorf("Formed enemy should be docked, slot %v", e.Slot)
		}
		pos := g.formation.SlotPos(e.Slot)
		if e.X != pos.X || e.Y != pos.Y {
			t.Errorf("Formed enemy should sit on its slot, at (%d,%d) want (%d,%d)", e.X, e.Y, pos.X, pos.Y)
		}
		return true
	})
	if formed == 0 {
		t.Error("Some enemies should have docked into formation by now")
	}
}

// longRunInvariants drives a full session and checks the structural
// invariants after every tick: the dive cap, slot reservation exclusivity,
// health never recovering, and the arena capacity ceiling.
func TestLongRunInvariants(t *testing.T) {
	g := New()
	g.Reset(testRuntime(99))

	seenHP := make(map[EntityID]int)

	for i := 0; i < 1500; i++ {
		in := core.NewInputFrame()
		if i%20 < 10 {
			in.Set(core.ActionLeft)
		} else {
			in.Set(core.ActionRight)
		}
		if i%4 == 0 {
			in.Set(core.ActionFire)
		}
		result := g.Step(in)
		if result.State.GameOver {
			break
		}

		if got := g.countAttackers(); got > g.diveCap {
			t.Fatalf("tick %d: %d simultaneous attackers exceeds cap %d", g.tick, got, g.diveCap)
		}
		if g.world.Live() > g.cfg.Waves.MaxEntities {
			t.Fatalf("tick %d: %d live entities exceeds the arena cap %d", g.tick, g.world.Live(), g.cfg.Waves.MaxEntities)
		}

		g.world.EachKind(KindEnemy, func(id EntityID, e *Entity) bool {
			if occ := g.formation.OccupantAt(e.Slot); occ != id {
				t.Fatalf("tick %d: slot %v reserved for %v but held by enemy %v", g.tick, e.Slot, occ, id)
			}
			if prev, ok := seenHP[id]; ok && e.HP > prev {
				t.Fatalf("tick %d: enemy %v health recovered %d -> %d", g.tick, id, prev, e.HP)
			}
			seenHP[id] = e.HP
			return true
		})
	}
}

func TestSnapshotStableOrder(t *testing.T) {
	g := New()
	g.Reset(testRuntime(5))

	noInput := core.NewInputFrame()
	for i := 0; i < 100; i++ {
		g.Step(noInput)
	}

	snap := g.Snapshot()
	if len(snap.Entities) < 2 {
		t.Fatalf("expected a populated field, got %d entities", len(snap.Entities))
	}
	for i := 1; i < len(snap.Entities); i++ {
		if snap.Entities[i-1].ID >= snap.Entities[i].ID {
			t.Fatalf("snapshot entities out of order at %d: %d then %d", i, snap.Entities[i-1].ID, snap.Entities[i].ID)
		}
	}
}

func TestStepFaultKeepsLastSnapshot(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))

	noInput := core.NewInputFrame()
	for i := 0; i < 20; i++ {
		g.Step(noInput)
	}
	before := g.lastSnap.Hash()

	// Corrupt the scheduler so the next tick faults inside a system.
	g.world = nil
	result := g.Step(noInput)

	if result.State.GameOver {
		t.Error("A faulted tick should not end the game")
	}
	if g.lastSnap.Hash() != before {
		t.Error("A faulted tick should leave the last snapshot untouched")
	}
}
