package galaga

// EntitySnap is one renderable entity in a snapshot. Primitive fields only,
// so snapshots are stable to hash and cheap to copy.
type EntitySnap struct {
	ID    uint64 // packed arena index and generation
	Kind  uint8
	Enemy uint8 // enemy kind, meaningful for KindEnemy
	State uint8 // enemy flight state, meaningful for KindEnemy
	Owner uint8 // projectile owner, meaningful for KindProjectile
	HP    int
	Grace bool  // player grace window active, meaningful for KindPlayer
	X, Y  int64 // fixed-point position
}

// CellX returns the entity's column in cell coordinates.
func (e EntitySnap) CellX() int {
	return Fixed(e.X).ToCell()
}

// CellY returns the entity's row in cell coordinates.
func (e EntitySnap) CellY() int {
	return Fixed(e.Y).ToCell()
}

// Snapshot is the immutable per-tick output of the simulation: everything
// the rendering collaborator needs, and nothing it can mutate back.
type Snapshot struct {
	Tick  uint64
	Phase string
	Score int
	Lives int
	Wave  int

	// Spawns still pending plus the intermission countdown, for HUD use.
	PendingSpawns int
	Intermission  int

	Entities []EntitySnap

	// RNG state, included so replay divergence shows up in the hash.
	RNGState uint64
}

// Snapshot captures the current world state. Entities appear in stable
// arena index order, so two identical simulations produce byte-identical
// snapshots.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:          uint64(g.tick), //#nosec G115 -- tick count is always positive
		Phase:         g.phase,
		Score:         g.score,
		Lives:         g.lives,
		Wave:          g.director.wave,
		PendingSpawns: len(g.director.queue),
		Intermission:  g.director.intermission,
		Entities:      make([]EntitySnap, 0, g.world.Live()),
		RNGState:      g.rng.state,
	}

	g.world.Each(func(id EntityID, e *Entity) bool {
		snap.Entities = append(snap.Entities, EntitySnap{
			ID:    uint64(id.Index)<<32 | uint64(id.Gen),
			Kind:  uint8(e.Kind),
			Enemy: uint8(e.Enemy),
			State: uint8(e.State),
			Owner: uint8(e.Owner),
			HP:    e.HP,
			Grace: e.Kind == KindPlayer && e.Invuln > 0,
			X:     int64(e.X),
			Y:     int64(e.Y),
		})
		return true
	})

	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, c := range snap.Phase {
		h = h*31 + uint64(c) //#nosec G115 -- hash computation
	}
	h = h*31 + uint64(snap.Score)         //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)         //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Wave)          //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PendingSpawns) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Intermission)  //#nosec G115 -- hash computation

	for _, e := range snap.Entities {
		h = h*31 + e.ID
		h = h*31 + uint64(e.Kind)
		h = h*31 + uint64(e.Enemy)
		h = h*31 + uint64(e.State)
		h = h*31 + uint64(e.Owner)
		h = h*31 + uint64(e.HP) //#nosec G115 -- hash computation
		if e.Grace {
			h = h*31 + 1
		}
		h = h*31 + uint64(e.X) //#nosec G115 -- hash computation
		h = h*31 + uint64(e.Y) //#nosec G115 -- hash computation
	}

	h = h*31 + snap.RNGState
	return h
}
