package framebuffer

import "testing"

func TestCheckRegion(t *testing.T) {
	tests := []struct {
		name       string
		x, y, w, h int32
		wantErr    bool
	}{
		{"whole target", 0, 0, 800, 600, false},
		{"inner block", 10, 20, 30, 40, false},
		{"empty block", 5, 5, 0, 0, false},
		{"past right edge", 790, 0, 20, 10, true},
		{"past top edge", 0, 590, 10, 20, true},
		{"negative origin", -1, 0, 10, 10, true},
		{"negative size", 0, 0, -10, 10, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckRegion(tt.x, tt.y, tt.w, tt.h, 800, 600)
			if (err != nil) != tt.wantErr {
				t.Errorf("CheckRegion() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
