package main

import "testing"

func TestReadUIMode(t *testing.T) {
	cases := []struct {
		input   string
		want    uiMode
		wantErr bool
	}{
		{"", uiModeAuto, false},
		{"auto", uiModeAuto, false},
		{"AUTO", uiModeAuto, false},
		{"on", uiModeOn, false},
		{" off ", uiModeOff, false},
		{"yes", "", true},
	}
	for _, tc := range cases {
		got, err := readUIMode(tc.input)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("readUIMode(%q) accepted", tc.input)
			}
			continue
		}
		if err != nil {
			t.Fatalf("readUIMode(%q) error: %v", tc.input, err)
		}
		if got != tc.want {
			t.Fatalf("readUIMode(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestShouldUseTUIExplicitModes(t *testing.T) {
	if !shouldUseTUI(uiModeOn) {
		t.Fatalf("shouldUseTUI(on) = false")
	}
	if shouldUseTUI(uiModeOff) {
		t.Fatalf("shouldUseTUI(off) = true")
	}
}
