package integrate

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimpson(t *testing.T) {
	tests := []struct {
		name string
		x    []float64
		y    []float64
		want float64
	}{
		{
			name: "two samples falls back to trapezoid",
			x:    []float64{0, 2},
			y:    []float64{1, 3},
			want: 4,
		},
		{
			name: "uniform parabola is exact",
			x:    []float64{0, 1, 2},
			y:    []float64{0, 1, 4},
			want: 8.0 / 3.0,
		},
		{
			name: "non-uniform parabola is exact",
			x:    []float64{0, 1, 3},
			y:    []float64{0, 1, 9},
			want: 9,
		},
		{
			name: "non-uniform linear with trailing interval",
			x:    []float64{0, 1, 3, 4},
			y:    []float64{0, 2, 6, 8},
			want: 16,
		},
		{
			name: "constant over even interval count",
			x:    []float64{0, 1, 2, 3, 4},
			y:    []float64{2.5, 2.5, 2.5, 2.5, 2.5},
			want: 10,
		},
		{
			name: "uniform with trailing interval",
			x:    []float64{0, 1, 2, 3, 4, 5},
			y:    []float64{0, 1.6, 0.2, 1.8, 38.4, 0},
			want: 515.0 / 12.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, simpson(tt.x, tt.y), 1e-12)
		})
	}
}

func TestSimpsonDegenerate(t *testing.T) {
	assert.True(t, math.IsNaN(simpson([]float64{1}, []float64{1})))
	assert.True(t, math.IsNaN(simpson(nil, nil)))
}
