// File: utils/random_test.go
package utils

import "testing"

func TestNewRandomColor(t *testing.T) {
	for i := 0; i < 100; i++ {
		color := NewRandomColor()
		if color.A != 255 {
			t.Errorf("NewRandomColor() expected opaque alpha, got %d", color.A)
		}
	}
}
