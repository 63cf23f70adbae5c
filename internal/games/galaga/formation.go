package galaga

// Formation is the grid of slots enemies dock into between attacks.
// It is a lookup table, not an entity: slots map to occupant handles and
// nothing here holds an entity pointer.
//
// A slot stays reserved for its enemy while that enemy is out on a dive,
// even though the enemy's slot component is cleared. Reservation is what
// enforces slot exclusivity: a returning diver can never find its home
// taken by a fresh spawn.
type Formation struct {
	Rows, Cols int

	originX, originY int // top-left slot anchor in cells
	spacingX         int // cells between slot columns
	spacingY         int // cells between slot rows

	occupants []EntityID // row-major grid, NoEntity when free
	cooldowns []int      // per-slot dive cooldown, ticks

	swayAmp    int // horizontal sway amplitude in cells
	swayPeriod int // full sway cycle in ticks
	swayTick   int
}

// NewFormation builds the slot grid centered on the given field width.
func NewFormation(rows, cols, fieldW, topMargin, spacingX, spacingY, swayAmp, swayPeriod int) *Formation {
	gridW := (cols - 1) * spacingX
	f := &Formation{
		Rows:       rows,
		Cols:       cols,
		originX:    (fieldW - gridW) / 2,
		originY:    topMargin,
		spacingX:   spacingX,
		spacingY:   spacingY,
		occupants:  make([]EntityID, rows*cols),
		cooldowns:  make([]int, rows*cols),
		swayAmp:    swayAmp,
		swayPeriod: swayPeriod,
	}
	return f
}

func (f *Formation) index(s Slot) int {
	return s.Row*f.Cols + s.Col
}

// InBounds reports whether the slot exists in the grid.
func (f *Formation) InBounds(s Slot) bool {
	return s.Row >= 0 && s.Row < f.Rows && s.Col >= 0 && s.Col < f.Cols
}

// SlotPos returns the current world position of a slot, including the
// formation's horizontal sway.
func (f *Formation) SlotPos(s Slot) Vec {
	x := f.originX + s.Col*f.spacingX + f.swayOffset()
	y := f.originY + s.Row*f.spacingY
	return VecFromCell(x, y)
}

// swayOffset is a triangle wave over the sway period. Integer math keeps
// the oscillation deterministic.
func (f *Formation) swayOffset() int {
	if f.swayPeriod <= 0 || f.swayAmp <= 0 {
		return 0
	}
	phase := f.swayTick % f.swayPeriod
	half := f.swayPeriod / 2
	if half == 0 {
		return 0
	}
	// Rise from -amp to +amp over the first half, fall back over the second.
	if phase < half {
		return -f.swayAmp + (2*f.swayAmp*phase)/half
	}
	return f.swayAmp - (2*f.swayAmp*(phase-half))/half
}

// Advance moves the sway animation and ticks down slot dive cooldowns.
func (f *Formation) Advance() {
	f.swayTick++
	for i := range f.cooldowns {
		if f.cooldowns[i] > 0 {
			f.cooldowns[i]--
		}
	}
}

// Reserve assigns a slot to an enemy. Returns false if the slot is out of
// bounds or already reserved; double occupancy is refused, not overwritten.
func (f *Formation) Reserve(s Slot, id EntityID) bool {
	if !f.InBounds(s) {
		return false
	}
	i := f.index(s)
	if f.occupants[i] != NoEntity {
		return false
	}
	f.occupants[i] = id
	return true
}

// Release frees a slot. Safe to call for already-free slots.
func (f *Formation) Release(s Slot) {
	if !f.InBounds(s) {
		return
	}
	f.occupants[f.index(s)] = NoEntity
}

// OccupantAt returns the handle reserved for a slot, or NoEntity.
func (f *Formation) OccupantAt(s Slot) EntityID {
	if !f.InBounds(s) {
		return NoEntity
	}
	return f.occupants[f.index(s)]
}

// SetCooldown arms the per-slot dive cooldown.
func (f *Formation) SetCooldown(s Slot, ticks int) {
	if !f.InBounds(s) {
		return
	}
	f.cooldowns[f.index(s)] = ticks
}

// CooldownAt returns the remaining dive cooldown for a slot.
func (f *Formation) CooldownAt(s Slot) int {
	if !f.InBounds(s) {
		return 0
	}
	return f.cooldowns[f.index(s)]
}

// Capacity returns the total number of slots.
func (f *Formation) Capacity() int {
	return f.Rows * f.Cols
}

// SlotAt converts a flat slot index to grid coordinates.
func (f *Formation) SlotAt(i int) Slot {
	return Slot{Row: i / f.Cols, Col: i % f.Cols}
}
