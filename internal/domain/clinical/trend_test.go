package clinical

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeTrend(t *testing.T) {
	cases := []struct {
		name   string
		series []float64
		want   Trend
	}{
		{"rising", []float64{10, 10, 10, 50, 50, 50}, TrendImproving},
		{"falling", []float64{50, 50, 50, 10, 10, 10}, TrendDeclining},
		{"flat", []float64{10, 10, 10, 10}, TrendStable},
		{"single", []float64{42}, TrendStable},
		{"empty", nil, TrendStable},
		{"short series overlaps itself", []float64{1, 9}, TrendStable},
		{"noise within range", []float64{50, 52, 49, 51, 50, 50}, TrendStable},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ComputeTrend(tc.series))
		})
	}
}
