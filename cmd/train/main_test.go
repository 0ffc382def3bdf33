package main

import "testing"

func TestPresetIntAppliesWhenNotExplicit(t *testing.T) {
	v := 50
	presetInt(&v, 8, false)
	if v != 8 {
		t.Errorf("v = %d, want 8", v)
	}
}

func TestPresetIntLeavesExplicitFlagAlone(t *testing.T) {
	v := 50
	presetInt(&v, 8, true)
	if v != 50 {
		t.Errorf("v = %d, want 50 (explicit flag should win)", v)
	}
}
