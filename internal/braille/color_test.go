package braille

import "testing"

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{"red", Red, false},
		{"BLUE", Blue, false},
		{"#ff8000", RGB(255, 128, 0), false},
		{"teal", Color{}, true},
		{"#fff", Color{}, true},
		{"#12345g", Color{}, true},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("%q: expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("%q: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%q: got %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestColorWrap(t *testing.T) {
	if got := Red.wrap('⠙'); got != "\x1b[31m⠙\x1b[0m" {
		t.Errorf("named wrap: %q", got)
	}
	if got := RGB(1, 2, 3).wrap('⠙'); got != "\x1b[38;2;1;2;3m⠙\x1b[0m" {
		t.Errorf("truecolor wrap: %q", got)
	}
	var none Color
	if got := none.wrap('x'); got != "x" {
		t.Errorf("zero color wrap: %q", got)
	}
}

func TestColorIsZero(t *testing.T) {
	var none Color
	if !none.IsZero() {
		t.Error("zero value should report IsZero")
	}
	if Red.IsZero() || RGB(0, 0, 0).IsZero() {
		t.Error("real colors should not report IsZero")
	}
}
