package galaga

// Kind classifies a live entity.
type Kind uint8

const (
	KindPlayer Kind = iota
	KindEnemy
	KindProjectile
)

// EnemyKind is the closed set of enemy variants.
type EnemyKind uint8

const (
	EnemyBee EnemyKind = iota
	EnemyButterfly
	EnemyBoss
)

// String returns the enemy kind name.
func (k EnemyKind) String() string {
	switch k {
	case EnemyBee:
		return "bee"
	case EnemyButterfly:
		return "butterfly"
	case EnemyBoss:
		return "boss"
	default:
		return "?"
	}
}

// Owner identifies which side fired a projectile. It determines valid
// collision targets: player shots hit enemies, enemy shots hit the player.
type Owner uint8

const (
	OwnerPlayer Owner = iota
	OwnerEnemy
)

// EnemyState is the per-enemy flight state machine.
type EnemyState uint8

const (
	EnemyEntering  EnemyState = iota // flying a scripted entrance path to its slot
	EnemyFormed                      // docked in the formation grid
	EnemyDiving                      // following an attack curve toward the player
	EnemyReturning                   // flying back to its slot after a dive
)

// String returns the state name.
func (s EnemyState) String() string {
	switch s {
	case EnemyEntering:
		return "entering"
	case EnemyFormed:
		return "formed"
	case EnemyDiving:
		return "diving"
	case EnemyReturning:
		return "returning"
	default:
		return "?"
	}
}

// Slot is a formation grid coordinate.
type Slot struct {
	Row, Col int
}

// EntityID is a generation-tagged handle into the world's entity arena.
// A stale handle (entity destroyed and its index reused) never resolves,
// so systems can hold ids across ticks without use-after-free hazards.
type EntityID struct {
	Index uint32
	Gen   uint32
}

// NoEntity is the zero handle. Generations start at 1, so it never resolves.
var NoEntity = EntityID{}

// Entity is one dense arena record. All per-entity components live here;
// which ones are meaningful depends on Kind. Entities reference each other
// only through EntityID lookups, never by pointer.
type Entity struct {
	Kind Kind

	// Position and velocity, fixed-point cells.
	X, Y   Fixed
	VX, VY Fixed

	// Bounding box in whole cells.
	W, H int

	HP int

	// Projectile components.
	Owner  Owner
	Damage int

	// Enemy components.
	Enemy    EnemyKind
	State    EnemyState
	Slot     Slot
	Docked   bool // formation slot component present (cleared during a dive)
	StateT   int  // ticks spent in the current state
	Path     Path
	Fired    bool // fired a shot during the current dive
	LastShot int  // tick of the most recent shot

	// Player components.
	Cooldown int // ticks until the next shot is allowed
	Invuln   int // remaining post-respawn grace ticks
}

// Rect returns the entity's bounding box in cell coordinates.
func (e *Entity) Rect() (x, y, w, h int) {
	return e.X.ToCell(), e.Y.ToCell(), e.W, e.H
}

// World owns all entities. It is a dense arena with a free list;
// destruction only marks entities, and Flush reclaims them at the end of
// the tick so iteration mid-tick never sees a half-removed record.
type World struct {
	entities []Entity
	gens     []uint32
	alive    []bool
	marked   []bool
	free     []uint32

	live        int
	maxEntities int
}

// NewWorld creates an arena with a fixed entity capacity.
// Storage is allocated up front so entity pointers stay stable within a tick.
func NewWorld(maxEntities int) *World {
	if maxEntities <= 0 {
		maxEntities = 256
	}
	w := &World{
		entities:    make([]Entity, maxEntities),
		gens:        make([]uint32, maxEntities),
		alive:       make([]bool, maxEntities),
		marked:      make([]bool, maxEntities),
		free:        make([]uint32, 0, maxEntities),
		maxEntities: maxEntities,
	}
	w.Reset()
	return w
}

// Reset clears every entity and rebuilds the free list.
// Generations are preserved so handles from before the reset stay stale.
func (w *World) Reset() {
	w.free = w.free[:0]
	for i := w.maxEntities - 1; i >= 0; i-- {
		w.alive[i] = false
		w.marked[i] = false
		if w.gens[i] == 0 {
			w.gens[i] = 1
		} else {
			w.gens[i]++
		}
		w.free = append(w.free, uint32(i)) //#nosec G115 -- index bounded by capacity
	}
	w.live = 0
}

// Spawn allocates a new entity of the given kind.
// Returns false when the arena is full; callers defer the spawn rather than
// growing without bound.
func (w *World) Spawn(kind Kind) (EntityID, *Entity, bool) {
	if len(w.free) == 0 {
		return NoEntity, nil, false
	}
	idx := w.free[len(w.free)-1]
	w.free = w.free[:len(w.free)-1]

	w.entities[idx] = Entity{Kind: kind}
	w.alive[idx] = true
	w.marked[idx] = false
	w.live++

	return EntityID{Index: idx, Gen: w.gens[idx]}, &w.entities[idx], true
}

// Get resolves a handle to its entity.
// Returns false for stale handles and for entities already marked for
// destruction this tick, so no system observes a dying entity.
func (w *World) Get(id EntityID) (*Entity, bool) {
	if int(id.Index) >= w.maxEntities {
		return nil, false
	}
	if !w.alive[id.Index] || w.marked[id.Index] || w.gens[id.Index] != id.Gen {
		return nil, false
	}
	return &w.entities[id.Index], true
}

// Destroy marks an entity for removal at the end of the tick.
// Destroying an already-marked or stale handle is a no-op.
func (w *World) Destroy(id EntityID) {
	if int(id.Index) >= w.maxEntities {
		return
	}
	if !w.alive[id.Index] || w.gens[id.Index] != id.Gen {
		return
	}
	w.marked[id.Index] = true
}

// Each calls fn for every live, unmarked entity in stable index order.
// Returning false from fn stops the iteration.
func (w *World) Each(fn func(id EntityID, e *Entity) bool) {
	for i := range w.entities {
		if !w.alive[i] || w.marked[i] {
			continue
		}
		id := EntityID{Index: uint32(i), Gen: w.gens[i]} //#nosec G115 -- index bounded by capacity
		if !fn(id, &w.entities[i]) {
			return
		}
	}
}

// EachKind calls fn for every live, unmarked entity of the given kind.
func (w *World) EachKind(kind Kind, fn func(id EntityID, e *Entity) bool) {
	w.Each(func(id EntityID, e *Entity) bool {
		if e.Kind != kind {
			return true
		}
		return fn(id, e)
	})
}

// CountKind returns the number of live, unmarked entities of the given kind.
func (w *World) CountKind(kind Kind) int {
	count := 0
	w.EachKind(kind, func(EntityID, *Entity) bool {
		count++
		return true
	})
	return count
}

// Live returns the number of live entities, including marked ones.
func (w *World) Live() int {
	return w.live
}

// Flush reclaims all marked entities: frees their indices and bumps their
// generation so outstanding handles go stale. Called once per tick, at the
// end, so destruction never invalidates an iterator mid-system.
func (w *World) Flush() {
	for i := range w.entities {
		if !w.marked[i] {
			continue
		}
		w.marked[i] = false
		w.alive[i] = false
		w.gens[i]++
		w.free = append(w.free, uint32(i)) //#nosec G115 -- index bounded by capacity
		w.live--
	}
}
