package platform

import "testing"

func TestRectDimensions(t *testing.T) {
	tests := []struct {
		name       string
		rect       Rect
		wantWidth  int
		wantHeight int
		wantEmpty  bool
	}{
		{"normal", Rect{Left: 10, Top: 20, Right: 110, Bottom: 220}, 100, 200, false},
		{"negative origin", Rect{Left: -1920, Top: 0, Right: 0, Bottom: 1080}, 1920, 1080, false},
		{"zero width", Rect{Left: 5, Top: 5, Right: 5, Bottom: 50}, 0, 45, true},
		{"zero height", Rect{Left: 5, Top: 5, Right: 50, Bottom: 5}, 45, 0, true},
		{"inverted", Rect{Left: 50, Top: 50, Right: 10, Bottom: 10}, -40, -40, true},
		{"zero value", Rect{}, 0, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rect.Width(); got != tt.wantWidth {
				t.Errorf("Width() = %d, want %d", got, tt.wantWidth)
			}
			if got := tt.rect.Height(); got != tt.wantHeight {
				t.Errorf("Height() = %d, want %d", got, tt.wantHeight)
			}
			if got := tt.rect.Empty(); got != tt.wantEmpty {
				t.Errorf("Empty() = %v, want %v", got, tt.wantEmpty)
			}
		})
	}
}
