package vg

import "testing"

func TestDefaultOutline(t *testing.T) {
	o := DefaultOutline()
	if o.Width != 1 || o.Cap != CapButt || o.Join != JoinMiter || o.MiterAngle != 0 || o.Dashes != nil {
		t.Errorf("DefaultOutline() = %+v, want width=1 cap=Butt join=Miter angle=0 dashes=nil", o)
	}
}

func TestOutlineWithFluentSetters(t *testing.T) {
	o := DefaultOutline().WithWidth(2).WithCap(CapRound).WithJoin(JoinBevel).WithMiterAngle(0.5)
	if o.Width != 2 || o.Cap != CapRound || o.Join != JoinBevel || o.MiterAngle != 0.5 {
		t.Errorf("fluent setters did not apply: %+v", o)
	}
	base := DefaultOutline()
	if base.Width != 1 {
		t.Error("With* methods should not mutate the receiver")
	}
}

func TestDashesEffectivePatternEvenLength(t *testing.T) {
	d := Dashes{Pattern: []float64{4, 2}}
	if got := d.effectivePattern(); len(got) != 2 {
		t.Errorf("even-length pattern should pass through unchanged, got %v", got)
	}
}

func TestDashesEffectivePatternOddLengthDuplicates(t *testing.T) {
	d := Dashes{Pattern: []float64{4, 2, 1}}
	got := d.effectivePattern()
	want := []float64{4, 2, 1, 4, 2, 1}
	if len(got) != len(want) {
		t.Fatalf("odd-length pattern len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("effectivePattern()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestDashesPatternLength(t *testing.T) {
	d := Dashes{Pattern: []float64{4, 2}}
	if got := d.PatternLength(); got != 6 {
		t.Errorf("PatternLength() = %v, want 6", got)
	}
	odd := Dashes{Pattern: []float64{4, 2, 1}}
	if got := odd.PatternLength(); got != 14 {
		t.Errorf("PatternLength() of odd pattern = %v, want 14 (duplicated cycle)", got)
	}
}

func TestDashesNormalizedOffset(t *testing.T) {
	d := Dashes{Phase: 7, Pattern: []float64{4, 2}}
	if got := d.NormalizedOffset(); got != 1 {
		t.Errorf("NormalizedOffset() = %v, want 1 (7 mod 6)", got)
	}
	neg := Dashes{Phase: -2, Pattern: []float64{4, 2}}
	if got := neg.NormalizedOffset(); got != 4 {
		t.Errorf("NormalizedOffset() of negative phase = %v, want 4", got)
	}
	zero := Dashes{Phase: 3, Pattern: nil}
	if got := zero.NormalizedOffset(); got != 0 {
		t.Errorf("NormalizedOffset() with an empty pattern = %v, want 0", got)
	}
}

func TestAreaConstructors(t *testing.T) {
	if !Anz.IsNonZero() || Anz.IsEvenOdd() {
		t.Error("Anz should report IsNonZero and not IsEvenOdd")
	}
	if !Aeo.IsEvenOdd() || Aeo.IsNonZero() {
		t.Error("Aeo should report IsEvenOdd and not IsNonZero")
	}
	o := DefaultOutline().WithWidth(3)
	area := AreaOutline(o)
	got, ok := area.IsOutline()
	if !ok {
		t.Fatal("AreaOutline should report IsOutline")
	}
	if got.Width != 3 {
		t.Errorf("IsOutline() outline = %+v, want Width=3", got)
	}
	if _, ok := Anz.IsOutline(); ok {
		t.Error("Anz should not report IsOutline")
	}
}
