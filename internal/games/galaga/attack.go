package galaga

// arriveTol is how close (fixed-point) an enemy must get to its slot before
// it snaps into formation. The snap prevents drift from accumulating across
// dive cycles.
const arriveTol = Fixed(400)

// homeSpeed is the straight-line speed used to close the final gap between
// a path's endpoint and the (possibly swaying) slot position.
const homeSpeed = Fixed(400)

// attackScheduler staggers dive launches: a cadence timer plus a round-robin
// cursor over formation slots, each slot carrying its own cooldown. The
// result is deterministic but varied, never random chaos.
type attackScheduler struct {
	timer  int
	cursor int
}

// updateEnemies advances every enemy's flight state machine and runs the
// dive scheduler. Runs after movement, before collision.
func (g *Game) updateEnemies() {
	g.formation.Advance()

	g.world.EachKind(KindEnemy, func(id EntityID, e *Entity) bool {
		switch e.State {
		case EnemyEntering:
			g.advanceEntering(e)
		case EnemyFormed:
			// Hold the slot, following the formation sway.
			pos := g.formation.SlotPos(e.Slot)
			e.X, e.Y = pos.X, pos.Y
		case EnemyDiving:
			g.advanceDiving(e)
		case EnemyReturning:
			g.advanceReturning(e)
		}
		return true
	})

	g.scheduleDives()
}

// advanceEntering follows the entrance path, then homes onto the slot.
func (g *Game) advanceEntering(e *Entity) {
	e.StateT++
	if !e.Path.Done(e.StateT) {
		pos := e.Path.At(e.StateT)
		e.X, e.Y = pos.X, pos.Y
		return
	}
	if g.homeToSlot(e) {
		e.State = EnemyFormed
		e.Docked = true
		e.StateT = 0
	}
}

// advanceDiving follows the attack curve and fires at the configured point
// along it, then hands off to the return leg.
func (g *Game) advanceDiving(e *Entity) {
	e.StateT++
	pos := e.Path.At(e.StateT)
	e.X, e.Y = pos.X, pos.Y

	firePoint := g.cfg.Attack.FirePoint * e.Path.Duration / 100
	if !e.Fired && e.StateT >= firePoint && g.tick-e.LastShot >= g.cfg.Attack.MinFireInterval {
		g.fireEnemyShot(e)
		e.Fired = true
		e.LastShot = g.tick
	}

	if e.Path.Done(e.StateT) {
		dur := g.difficulty.PathDuration(g.cfg.Attack.ReturnDuration, g.score, g.tick)
		slot := g.formation.SlotPos(e.Slot)
		e.Path = returnPath(slot, g.fieldTop, dur)
		e.State = EnemyReturning
		e.StateT = 0
	}
}

// advanceReturning is symmetric to entering: fly the scripted leg, then
// home onto the slot and re-dock.
func (g *Game) advanceReturning(e *Entity) {
	e.StateT++
	if !e.Path.Done(e.StateT) {
		pos := e.Path.At(e.StateT)
		e.X, e.Y = pos.X, pos.Y
		return
	}
	if g.homeToSlot(e) {
		e.State = EnemyFormed
		e.Docked = true
		e.StateT = 0
		g.formation.SetCooldown(e.Slot, g.cfg.Attack.SlotCooldown)
	}
}

// homeToSlot steps the enemy straight toward its slot's current position.
// Returns true once within tolerance, snapping exactly onto the slot.
func (g *Game) homeToSlot(e *Entity) bool {
	target := g.formation.SlotPos(e.Slot)
	here := Vec{X: e.X, Y: e.Y}
	if here.Dist(target) <= arriveTol {
		e.X, e.Y = target.X, target.Y
		return true
	}

	dx := target.X - e.X
	dy := target.Y - e.Y
	e.X += ClampFixed(dx, -homeSpeed, homeSpeed)
	e.Y += ClampFixed(dy, -homeSpeed, homeSpeed)
	return false
}

// fireEnemyShot spawns a downward projectile with a slight horizontal lead
// toward the player. Deferred silently when the arena is full.
func (g *Game) fireEnemyShot(e *Entity) {
	_, shot, ok := g.world.Spawn(KindProjectile)
	if !ok {
		return
	}
	shot.X = e.X
	shot.Y = e.Y + ToFixed(1)
	shot.VY = Fixed(g.cfg.Projectiles.EnemySpeed)
	shot.VX = Fixed(120).Mul((g.playerX() - e.X).Sign())
	shot.W, shot.H = 1, 1
	shot.HP = 1
	shot.Owner = OwnerEnemy
	shot.Damage = g.cfg.Projectiles.Damage
}

// scheduleDives launches at most one new dive per cadence interval,
// selecting the next eligible formed enemy round-robin over the slot grid.
// The concurrent-attacker cap is never exceeded.
func (g *Game) scheduleDives() {
	if g.attack.timer > 0 {
		g.attack.timer--
		return
	}

	cadence := g.difficulty.Cadence(g.diveCadence, g.cfg.Waves.CadenceFloor, g.score, g.tick)
	g.attack.timer = cadence

	if g.countAttackers() >= g.diveCap {
		return
	}

	total := g.formation.Capacity()
	for n := 0; n < total; n++ {
		i := (g.attack.cursor + n) % total
		slot := g.formation.SlotAt(i)
		if g.formation.CooldownAt(slot) > 0 {
			continue
		}
		occupant := g.formation.OccupantAt(slot)
		e, ok := g.world.Get(occupant)
		if !ok || e.State != EnemyFormed {
			continue
		}

		g.launchDive(e)
		g.attack.cursor = i + 1
		return
	}
}

// launchDive flips a formed enemy into its attack run. The slot component
// is cleared for the duration of the dive; the formation keeps the
// reservation so the slot cannot be reassigned underneath the diver.
func (g *Game) launchDive(e *Entity) {
	dur := g.difficulty.PathDuration(g.cfg.Attack.DiveDuration, g.score, g.tick)
	from := Vec{X: e.X, Y: e.Y}
	// Vary the swoop so repeated dives from the same slot do not overlap.
	swing := 5 + g.rng.Intn(6)
	aim := g.playerX() + ToFixed(g.rng.Intn(5)-2)
	e.Path = divePath(from, aim, swing, g.fieldBottom, dur)
	e.State = EnemyDiving
	e.Docked = false
	e.StateT = 0
	e.Fired = false
}

// countAttackers returns the number of enemies currently off formation on
// an attack run (diving or flying back).
func (g *Game) countAttackers() int {
	count := 0
	g.world.EachKind(KindEnemy, func(_ EntityID, e *Entity) bool {
		if e.State == EnemyDiving || e.State == EnemyReturning {
			count++
		}
		return true
	})
	return count
}

// playerX returns the player's current column, falling back to the last
// known position while the ship is awaiting respawn.
func (g *Game) playerX() Fixed {
	if player, ok := g.world.Get(g.playerID); ok {
		g.lastPlayerX = player.X
	}
	return g.lastPlayerX
}
