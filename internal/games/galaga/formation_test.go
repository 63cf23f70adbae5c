package galaga

import "testing"

func testFormation() *Formation {
	// 5x8 grid centered on an 80-cell field, no sway
	return NewFormation(5, 8, 80, 5, 4, 2, 0, 0)
}

func TestFormationReservation(t *testing.T) {
	f := testFormation()
	slot := Slot{Row: 1, Col: 3}
	a := EntityID{Index: 1, Gen: 1}
	b := EntityID{Index: 2, Gen: 1}

	if !f.Reserve(slot, a) {
		t.Fatal("reserving a free slot should succeed")
	}
	if f.Reserve(slot, b) {
		t.Error("double reservation should be refused")
	}
	if f.OccupantAt(slot) != a {
		t.Error("slot should still belong to the first reserver")
	}

	f.Release(slot)
	if f.OccupantAt(slot) != NoEntity {
		t.Error("released slot should be free")
	}
	if !f.Reserve(slot, b) {
		t.Error("released slot should be reservable again")
	}
}

func TestFormationOutOfBounds(t *testing.T) {
	f := testFormation()
	bad := Slot{Row: 7, Col: 2}

	if f.Reserve(bad, EntityID{Index: 1, Gen: 1}) {
		t.Error("out-of-bounds reservation should be refused")
	}
	if f.OccupantAt(bad) != NoEntity {
		t.Error("out-of-bounds slot should read as free")
	}
	if f.CooldownAt(bad) != 0 {
		t.Error("out-of-bounds slot should read as cooled down")
	}
}

func TestFormationCooldown(t *testing.T) {
	f := testFormation()
	slot := Slot{Row: 0, Col: 0}

	f.SetCooldown(slot, 3)
	if f.CooldownAt(slot) != 3 {
		t.Fatalf("cooldown should be 3, got %d", f.CooldownAt(slot))
	}

	f.Advance()
	f.Advance()
	f.Advance()
	if f.CooldownAt(slot) != 0 {
		t.Errorf("cooldown should reach 0 after 3 ticks, got %d", f.CooldownAt(slot))
	}

	f.Advance()
	if f.CooldownAt(slot) != 0 {
		t.Error("cooldown should not go negative")
	}
}

func TestFormationSlotLayout(t *testing.T) {
	f := testFormation()

	// Rows share a Y, columns share an X, spacing is uniform
	a := f.SlotPos(Slot{Row: 0, Col: 0})
	b := f.SlotPos(Slot{Row: 0, Col: 1})
	c := f.SlotPos(Slot{Row: 1, Col: 0})

	if b.X-a.X != ToFixed(4) {
		t.Errorf("column spacing should be 4 cells, got %d", b.X-a.X)
	}
	if a.Y != b.Y {
		t.Error("slots in a row should share a Y")
	}
	if c.Y-a.Y != ToFixed(2) {
		t.Errorf("row spacing should be 2 cells, got %d", c.Y-a.Y)
	}
	if a.X != c.X {
		t.Error("slots in a column should share an X")
	}
}

func TestFormationSwayBounded(t *testing.T) {
	f := NewFormation(5, 8, 80, 5, 4, 2, 2, 40)
	slot := Slot{Row: 2, Col: 4}
	base := f.SlotPos(slot).Y

	minX, maxX := f.SlotPos(slot).X, f.SlotPos(slot).X
	for i := 0; i < 120; i++ {
		f.Advance()
		pos := f.SlotPos(slot)
		if pos.Y != base {
			t.Fatalf("sway should be horizontal only, Y moved at tick %d", i)
		}
		if pos.X < minX {
			minX = pos.X
		}
		if pos.X > maxX {
			maxX = pos.X
		}
	}

	if maxX-minX > ToFixed(4) {
		t.Errorf("sway should span at most twice the amplitude, got %d", maxX-minX)
	}
	if maxX == minX {
		t.Error("sway should actually move the formation")
	}
}

func TestFormationSlotAtRoundTrip(t *testing.T) {
	f := testFormation()
	for i := 0; i < f.Capacity(); i++ {
		s := f.SlotAt(i)
		if !f.InBounds(s) {
			t.Fatalf("SlotAt(%d) = %v is out of bounds", i, s)
		}
		if f.index(s) != i {
			t.Fatalf("SlotAt(%d) round-trips to %d", i, f.index(s))
		}
	}
}
