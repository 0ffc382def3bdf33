package ai

import "testing"

func TestFeatureStringRoundTrip(t *testing.T) {
	for f := Feature(0); f < NumFeatures; f++ {
		name := f.String()
		got, ok := FeatureByName(name)
		if !ok || got != f {
			t.Errorf("FeatureByName(%q) = %v, %v, want %v, true", name, got, ok, f)
		}
	}
}

func TestDefaultWeightsWithinClamps(t *testing.T) {
	w := DefaultWeights()
	for f := Feature(0); f < NumFeatures; f++ {
		if f.Clamp(w[f]) != w[f] {
			t.Errorf("default weight for %v = %v is outside its clamp interval", f, w[f])
		}
	}
}

func TestWeightsMapRoundTrip(t *testing.T) {
	w := DefaultWeights()
	m := w.ToMap()
	if len(m) != int(NumFeatures) {
		t.Fatalf("ToMap() has %d entries, want %d", len(m), NumFeatures)
	}
	got := FromMap(m)
	if got != w {
		t.Errorf("FromMap(ToMap(w)) = %+v, want %+v", got, w)
	}
}

func TestClampAll(t *testing.T) {
	var w Weights
	w[ToFoundation] = 1000
	w[PointlessTableauShuffle] = 1000
	w.ClampAll()
	if w[ToFoundation] != clamps[ToFoundation].hi {
		t.Errorf("ToFoundation not clamped: %v", w[ToFoundation])
	}
	if w[PointlessTableauShuffle] != clamps[PointlessTableauShuffle].hi {
		t.Errorf("PointlessTableauShuffle not clamped: %v", w[PointlessTableauShuffle])
	}
}
