package galaga

import "testing"

func TestPathEndpoints(t *testing.T) {
	p := Path{
		P0:       VecFromCell(0, 0),
		P1:       VecFromCell(10, -5),
		P2:       VecFromCell(20, 10),
		Duration: 100,
	}

	if got := p.At(0); got != p.P0 {
		t.Errorf("path should start at P0, got %v", got)
	}
	if got := p.At(100); got != p.P2 {
		t.Errorf("path should end at P2, got %v", got)
	}
	// Clamped outside the duration
	if got := p.At(-5); got != p.P0 {
		t.Errorf("negative t should clamp to P0, got %v", got)
	}
	if got := p.At(500); got != p.P2 {
		t.Errorf("t past duration should clamp to P2, got %v", got)
	}

	if p.Done(99) {
		t.Error("path should not be done before its duration")
	}
	if !p.Done(100) {
		t.Error("path should be done at its duration")
	}
}

func TestPathMonotoneProgress(t *testing.T) {
	// A straight vertical drop should descend every tick
	p := Path{
		P0:       VecFromCell(10, 0),
		P1:       VecFromCell(10, 10),
		P2:       VecFromCell(10, 20),
		Duration: 60,
	}

	prev := p.At(0).Y
	for i := 1; i <= 60; i++ {
		y := p.At(i).Y
		if y < prev {
			t.Fatalf("descent reversed at tick %d: %d -> %d", i, prev, y)
		}
		prev = y
	}
	if prev != ToFixed(20) {
		t.Errorf("descent should land on the endpoint, got %d", prev)
	}
}

func TestEntrancePath(t *testing.T) {
	from := VecFromCell(-3, 3)
	to := VecFromCell(40, 7)
	p := entrancePath(from, to, 150)

	if p.At(0) != from {
		t.Error("entrance should start off-screen")
	}
	if p.At(150) != to {
		t.Error("entrance should end on the slot")
	}
}

func TestDivePath(t *testing.T) {
	from := VecFromCell(30, 7)
	aim := ToFixed(45)
	p := divePath(from, aim, 6, 23, 200)

	if p.At(0) != from {
		t.Error("dive should start at the slot")
	}
	end := p.At(200)
	if end.X != aim {
		t.Errorf("dive should end at the aim column, got %d", end.X)
	}
	if end.Y <= ToFixed(23) {
		t.Errorf("dive should exit below the field, got %d", end.Y)
	}
}

func TestReturnPath(t *testing.T) {
	slot := VecFromCell(30, 7)
	p := returnPath(slot, 2, 130)

	if p.At(0).Y >= ToFixed(2) {
		t.Errorf("return should start above the field top, got %d", p.At(0).Y)
	}
	if p.At(130) != slot {
		t.Error("return should end on the slot")
	}
}

func TestFixedConversions(t *testing.T) {
	if ToFixed(7).ToCell() != 7 {
		t.Error("cell round trip failed")
	}
	if Fixed(1499).ToCell() != 1 {
		t.Error("ToCell should truncate")
	}
	if Fixed(1500).ToCellRounded() != 2 {
		t.Error("ToCellRounded should round half up")
	}
	if Fixed(-1500).ToCellRounded() != -2 {
		t.Error("ToCellRounded should round away from zero for negatives")
	}
	if ClampFixed(ToFixed(5), 0, ToFixed(3)) != ToFixed(3) {
		t.Error("clamp upper bound failed")
	}
	if ClampFixed(ToFixed(-5), 0, ToFixed(3)) != 0 {
		t.Error("clamp lower bound failed")
	}
	if Fixed(-42).Sign() != -1 || Fixed(42).Sign() != 1 || Fixed(0).Sign() != 0 {
		t.Error("sign failed")
	}
}

func TestSimpleRNGDeterminism(t *testing.T) {
	a := NewSimpleRNG(777)
	b := NewSimpleRNG(777)
	for i := 0; i < 100; i++ {
		if a.Next() != b.Next() {
			t.Fatal("same seed should produce the same sequence")
		}
	}

	c := NewSimpleRNG(778)
	same := true
	a2 := NewSimpleRNG(777)
	for i := 0; i < 10; i++ {
		if a2.Next() != c.Next() {
			same = false
		}
	}
	if same {
		t.Error("different seeds should diverge")
	}
}
