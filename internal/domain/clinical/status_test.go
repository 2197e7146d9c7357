package clinical

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeverityToStatus(t *testing.T) {
	assert.Equal(t, StatusGreen, SeverityToStatus(SeverityLow))
	assert.Equal(t, StatusYellow, SeverityToStatus(SeverityMed))
	assert.Equal(t, StatusRed, SeverityToStatus(SeverityHigh))
	// total: lo desconocido cae en rojo
	assert.Equal(t, StatusRed, SeverityToStatus(Severity("critical")))
}

func TestScoreToStatus_Boundaries(t *testing.T) {
	cases := []struct {
		score float64
		want  Status
	}{
		{100, StatusGreen},
		{80, StatusGreen},
		{79, StatusYellow},
		{60, StatusYellow},
		{59, StatusRed},
		{0, StatusRed},
	}
	for _, tc := range cases {
		assert.Equalf(t, tc.want, ScoreToStatus(tc.score), "score=%v", tc.score)
	}
}

func TestHighestSeverity(t *testing.T) {
	assert.Equal(t, SeverityHigh, HighestSeverity("", SeverityHigh))
	assert.Equal(t, SeverityLow, HighestSeverity("", SeverityLow))
	assert.Equal(t, SeverityHigh, HighestSeverity(SeverityHigh, SeverityLow))
	assert.Equal(t, SeverityMed, HighestSeverity(SeverityLow, SeverityMed))
	assert.Equal(t, SeverityMed, HighestSeverity(SeverityMed, SeverityMed))
}

func TestParseSeverity(t *testing.T) {
	s, err := ParseSeverity(" HIGH ")
	require.NoError(t, err)
	assert.Equal(t, SeverityHigh, s)

	_, err = ParseSeverity("severe")
	assert.ErrorIs(t, err, ErrInvalidSeverity)
}
