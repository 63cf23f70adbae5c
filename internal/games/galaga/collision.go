package galaga

import (
	"github.com/galago-arcade/galago/internal/core"
)

// bucketWidth is the column span, in cells, of one broad-phase bucket.
// Projectiles only test targets whose bounding boxes touch the same
// buckets, which keeps the pair count low when the field is busy.
const bucketWidth = 4

// resolveCollisions runs the broad/narrow phase sweep and applies damage.
// All overlaps found this tick are resolved; destruction marking is
// idempotent, so an entity dies at most once no matter how many hits land.
func (g *Game) resolveCollisions() {
	numBuckets := g.runtime.ScreenW/bucketWidth + 2
	if len(g.buckets) < numBuckets {
		g.buckets = make([][]EntityID, numBuckets)
	}
	for i := range g.buckets {
		g.buckets[i] = g.buckets[i][:0]
	}

	// Broad phase: bucket every potential target by the columns its box spans.
	g.world.Each(func(id EntityID, e *Entity) bool {
		if e.Kind != KindEnemy && e.Kind != KindPlayer {
			return true
		}
		x, _, w, _ := e.Rect()
		g.bucketSpan(x, w, id)
		return true
	})

	// Narrow phase: each projectile against its buckets' candidates.
	g.world.EachKind(KindProjectile, func(pid EntityID, p *Entity) bool {
		g.resolveProjectile(pid, p)
		return true
	})

	g.resolveBodyCollisions()
}

// bucketSpan records an entity in every bucket its columns touch.
func (g *Game) bucketSpan(x, w int, id EntityID) {
	lo := x / bucketWidth
	hi := (x + w - 1) / bucketWidth
	for b := lo; b <= hi; b++ {
		if b < 0 || b >= len(g.buckets) {
			continue
		}
		g.buckets[b] = append(g.buckets[b], id)
	}
}

// resolveProjectile tests one projectile against its bucket candidates and
// applies the hit. The owner filter enforces no friendly fire: player shots
// only damage enemies, enemy shots only the player.
func (g *Game) resolveProjectile(pid EntityID, p *Entity) {
	px, py, pw, ph := p.Rect()
	pRect := core.NewRect(px, py, pw, ph)

	lo := px / bucketWidth
	hi := (px + pw - 1) / bucketWidth
	for b := lo; b <= hi; b++ {
		if b < 0 || b >= len(g.buckets) {
			continue
		}
		for _, tid := range g.buckets[b] {
			target, ok := g.world.Get(tid)
			if !ok {
				continue // destroyed earlier this tick
			}
			if p.Owner == OwnerPlayer && target.Kind != KindEnemy {
				continue
			}
			if p.Owner == OwnerEnemy && target.Kind != KindPlayer {
				continue
			}

			tx, ty, tw, th := target.Rect()
			if !pRect.Intersects(core.NewRect(tx, ty, tw, th)) {
				continue
			}

			g.world.Destroy(pid)
			g.applyDamage(tid, target, p.Damage)
			return
		}
	}
}

// applyDamage reduces target health and handles a lethal result.
func (g *Game) applyDamage(tid EntityID, target *Entity, damage int) {
	if target.Kind == KindPlayer {
		if target.Invuln > 0 {
			return // grace window after respawn absorbs the hit
		}
		g.killPlayer()
		return
	}

	target.HP -= damage
	if target.HP <= 0 {
		g.killEnemy(tid, target)
	}
}

// killEnemy credits score, frees the formation slot, and marks the enemy
// destroyed. Diving kills pay the configured bonus multiplier.
func (g *Game) killEnemy(tid EntityID, e *Entity) {
	value := g.enemyValue(e.Enemy)
	if e.State == EnemyDiving {
		value *= g.cfg.Scoring.DiveMultiplier
	}
	g.score += value

	g.formation.Release(e.Slot)
	g.world.Destroy(tid)
}

// enemyValue returns the configured kill value for an enemy kind.
func (g *Game) enemyValue(kind EnemyKind) int {
	switch kind {
	case EnemyBee:
		return g.cfg.Scoring.Bee
	case EnemyButterfly:
		return g.cfg.Scoring.Butterfly
	case EnemyBoss:
		return g.cfg.Scoring.Boss
	default:
		return 0
	}
}

// resolveBodyCollisions checks ship-to-enemy contact, which is lethal to
// the player regardless of the enemy's remaining health. The enemy is
// destroyed in the crash as well, scoring its base value.
func (g *Game) resolveBodyCollisions() {
	player, ok := g.world.Get(g.playerID)
	if !ok {
		return
	}
	px, py, pw, ph := player.Rect()
	pRect := core.NewRect(px, py, pw, ph)

	g.world.EachKind(KindEnemy, func(eid EntityID, e *Entity) bool {
		ex, ey, ew, eh := e.Rect()
		if !pRect.Intersects(core.NewRect(ex, ey, ew, eh)) {
			return true
		}

		g.score += g.enemyValue(e.Enemy)
		g.formation.Release(e.Slot)
		g.world.Destroy(eid)

		if player.Invuln <= 0 {
			g.killPlayer()
			return false
		}
		return true
	})
}
