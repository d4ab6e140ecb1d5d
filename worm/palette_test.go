package worm

import "testing"

func TestWindowBandLayout(t *testing.T) {
	high := func(v uint8) bool { return v == 255 }
	soft := func(v uint8) bool { return v > 0 && v < 255 }

	for i := 1; i <= 5; i++ {
		if !high(window[i].G) {
			t.Errorf("slot %d: green = %d, want full", i, window[i].G)
		}
	}
	for i := 5; i <= 9; i++ {
		if !high(window[i].R) {
			t.Errorf("slot %d: red = %d, want full", i, window[i].R)
		}
	}
	for _, i := range []int{9, 10, 11, 0, 1} {
		if !high(window[i].B) {
			t.Errorf("slot %d: blue = %d, want full", i, window[i].B)
		}
	}

	// Soft transition slots flank every band.
	for _, tc := range []struct {
		slot int
		ch   uint8
		name string
	}{
		{0, window[0].G, "green"},
		{6, window[6].G, "green"},
		{4, window[4].R, "red"},
		{10, window[10].R, "red"},
		{8, window[8].B, "blue"},
		{2, window[2].B, "blue"},
	} {
		if !soft(tc.ch) {
			t.Errorf("slot %d: %s = %d, want soft edge", tc.slot, tc.name, tc.ch)
		}
	}

	// And the channels are dark away from their band.
	if window[8].G != 0 {
		t.Errorf("slot 8: green = %d, want 0", window[8].G)
	}
	if window[0].R != 0 {
		t.Errorf("slot 0: red = %d, want 0", window[0].R)
	}
	if window[5].B != 0 {
		t.Errorf("slot 5: blue = %d, want 0", window[5].B)
	}
}

func TestWindowChannelsAreShiftedCopies(t *testing.T) {
	for i := 0; i < WindowLength; i++ {
		if window[i].R != window[(i+WindowLength-4)%WindowLength].G {
			t.Errorf("slot %d: red is not green shifted by 4", i)
		}
		if window[i].B != window[(i+WindowLength-8)%WindowLength].G {
			t.Errorf("slot %d: blue is not green shifted by 8", i)
		}
	}
}
