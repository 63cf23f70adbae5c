package galaga

import (
	"github.com/galago-arcade/galago/internal/core"
)

// applyInput derives the player's velocity from this tick's intent and
// handles the fire action. Arcade-precise control: velocity is a direct
// function of held input, no acceleration or inertia.
func (g *Game) applyInput(in core.InputFrame) {
	player, ok := g.world.Get(g.playerID)
	if !ok {
		return
	}

	if player.Cooldown > 0 {
		player.Cooldown--
	}
	if player.Invuln > 0 {
		player.Invuln--
	}

	speed := Fixed(g.cfg.Player.Speed)
	player.VX = 0
	if in.Has(core.ActionLeft) {
		player.VX = -speed
	}
	if in.Has(core.ActionRight) {
		player.VX = speed
	}

	if in.Has(core.ActionFire) && player.Cooldown <= 0 {
		g.firePlayerShot(player)
	}
}

// firePlayerShot spawns a player projectile just above the ship.
// Deferred silently when the entity arena is full; the cooldown is not
// armed so the shot retries next tick.
func (g *Game) firePlayerShot(player *Entity) {
	_, shot, ok := g.world.Spawn(KindProjectile)
	if !ok {
		return
	}
	shot.X = player.X
	shot.Y = player.Y - ToFixed(1)
	shot.VY = -Fixed(g.cfg.Projectiles.PlayerSpeed)
	shot.W, shot.H = 1, 1
	shot.HP = 1
	shot.Owner = OwnerPlayer
	shot.Damage = g.cfg.Projectiles.Damage
	player.Cooldown = g.cfg.Player.FireCooldown
}

// stepMovement integrates position from velocity for every moving entity,
// clamps the player to the horizontal play bounds, and destroys projectiles
// that leave the field. Enemies on scripted paths carry zero velocity; the
// attack controller positions them directly.
func (g *Game) stepMovement() {
	minX := ToFixed(0)
	maxX := ToFixed(g.runtime.ScreenW - 1)

	g.world.Each(func(id EntityID, e *Entity) bool {
		e.X = e.X.Add(e.VX)
		e.Y = e.Y.Add(e.VY)

		switch e.Kind {
		case KindPlayer:
			e.X = ClampFixed(e.X, minX, maxX)
		case KindProjectile:
			// Out-of-bounds projectiles are destroyed, never clamped.
			if e.Y < ToFixed(g.fieldTop-2) || e.Y > ToFixed(g.fieldBottom+2) {
				g.world.Destroy(id)
			}
		}
		return true
	})
}
