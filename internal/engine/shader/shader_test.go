package shader

import "testing"

func TestInfoLog(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want string
	}{
		{"nul terminated", []byte("0:3(1): error: syntax error\x00garbage"), "0:3(1): error: syntax error"},
		{"multi line", []byte("ERROR: 0:1: a\nERROR: 0:2: b\n\x00"), "ERROR: 0:1: a | ERROR: 0:2: b |"},
		{"empty", []byte{0}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InfoLog(tt.in); got != tt.want {
				t.Errorf("InfoLog() = %q, want %q", got, tt.want)
			}
		})
	}
}
