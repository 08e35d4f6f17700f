package erlang

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RejectsNonPositiveParameters(t *testing.T) {
	tests := []struct {
		name    string
		servers int
		lambda  float64
		mu      float64
	}{
		{"zero servers", 0, 1, 1},
		{"negative servers", -2, 1, 1},
		{"zero arrival rate", 1, 0, 1},
		{"NaN arrival rate", 1, math.NaN(), 1},
		{"zero service rate", 1, 1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.servers, tt.lambda, tt.mu)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidModel))
		})
	}
}

func TestModel_SingleServer_MatchesMM1(t *testing.T) {
	// GIVEN an M/M/1 queue with ρ = 0.5
	m, err := New(1, 0.5, 1.0)
	require.NoError(t, err)

	// THEN Erlang C reduces to the M/M/1 formulas
	assert.InDelta(t, 0.5, m.Utilization(), 1e-12)
	assert.InDelta(t, 0.5, m.ProbWait(), 1e-12)     // P(wait) = ρ
	assert.InDelta(t, 1.0, m.MeanWait(), 1e-12)     // Wq = ρ/(μ-λ)
	assert.InDelta(t, 0.5, m.MeanQueueLen(), 1e-12) // Lq = ρ²/(1-ρ)
	assert.InDelta(t, 2.0, m.MeanResponse(), 1e-12)
}

func TestModel_TwoServers_KnownValues(t *testing.T) {
	// GIVEN an M/M/2 queue with a = 1 Erlang
	m, err := New(2, 1.0, 1.0)
	require.NoError(t, err)

	// THEN B(2,1) = 1/5 and C(2,1) = 1/3
	assert.InDelta(t, 0.2, m.ErlangB(), 1e-12)
	assert.InDelta(t, 1.0/3.0, m.ProbWait(), 1e-12)
	assert.InDelta(t, 1.0/3.0, m.MeanWait(), 1e-12) // C / (cμ - λ) = (1/3)/1
}

func TestModel_MoreServers_ReduceWait(t *testing.T) {
	base, err := New(5, 10.0/60, 1.0/5)
	require.NoError(t, err)
	more, err := New(7, 10.0/60, 1.0/5)
	require.NoError(t, err)

	assert.Less(t, more.MeanWait(), base.MeanWait())
	assert.Less(t, more.ProbWait(), base.ProbWait())
}

func TestModel_Unstable_ReportsInfiniteWait(t *testing.T) {
	m, err := New(1, 2.0, 1.0)
	require.NoError(t, err)

	assert.False(t, m.Stable())
	assert.Equal(t, 1.0, m.ProbWait())
	assert.True(t, math.IsInf(m.MeanWait(), 1))
	assert.True(t, math.IsInf(m.MeanQueueLen(), 1))
}
