package integrate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWindowMinutesToSeconds(t *testing.T) {
	tests := []struct {
		name string
		in   Window
		want Window
	}{
		{name: "simple", in: Window{Min: 0, Max: 4}, want: Window{Min: 0, Max: 240}},
		{name: "fractional", in: Window{Min: 1.5, Max: 2.5}, want: Window{Min: 90, Max: 150}},
		{name: "trace order preserved", in: Window{Min: 10, Max: 2}, want: Window{Min: 600, Max: 120}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.MinutesToSeconds())
		})
	}
}
