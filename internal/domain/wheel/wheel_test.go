package wheel

import (
	"fmt"
	"math"
	"testing"

	domainerrors "justchoose/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelect_SameSeedSameWinner(t *testing.T) {
	first, err := Select(4, "abc123")
	require.NoError(t, err)

	for range 100 {
		again, err := Select(4, "abc123")
		require.NoError(t, err)
		assert.Equal(t, first.WinnerIndex, again.WinnerIndex)
		assert.Equal(t, "abc123", again.Seed)
	}
}

func TestDraw_StableAcrossCalls(t *testing.T) {
	draw := Draw("abc123")

	assert.GreaterOrEqual(t, draw, 0.0)
	assert.Less(t, draw, 1.0)
	assert.Equal(t, draw, Draw("abc123"))
	assert.NotEqual(t, draw, Draw("abc124"))
}

// Stored spins are replayed from their seed, so these values must never change.
func TestSelect_PinnedOutcomes(t *testing.T) {
	testCases := []struct {
		seed       string
		count      int
		wantDraw   float64
		wantWinner int
	}{
		{seed: "abc123", count: 4, wantDraw: 0.35612604808714965, wantWinner: 1},
		{seed: "friday-lunch", count: 6, wantDraw: 0.9726123945106958, wantWinner: 5},
		{seed: "tacos", count: 3, wantDraw: 0.008915740353441892, wantWinner: 0},
		{seed: "x9k2m4p1", count: 10, wantDraw: 0.38796530887749026, wantWinner: 3},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%s/%d", tc.seed, tc.count), func(t *testing.T) {
			assert.Equal(t, tc.wantDraw, Draw(tc.seed))

			outcome, err := Select(tc.count, tc.seed)
			require.NoError(t, err)
			assert.Equal(t, tc.wantWinner, outcome.WinnerIndex)
		})
	}
}

func TestSelect_InsufficientOptions(t *testing.T) {
	for _, count := range []int{-1, 0, 1} {
		t.Run(fmt.Sprintf("count=%d", count), func(t *testing.T) {
			_, err := Select(count, "seed")
			assert.True(t, errors.Is(err, domainerrors.ErrInsufficientOptions))
		})
	}
}

func TestSelect_GeneratesSeedWhenMissing(t *testing.T) {
	outcome, err := Select(3, "")
	require.NoError(t, err)

	assert.Len(t, outcome.Seed, SeedLength)
	assert.Equal(t, WinnerIndex(Draw(outcome.Seed), 3), outcome.WinnerIndex)
}

func TestSelect_Fairness(t *testing.T) {
	const (
		count  = 5
		trials = 50000
	)

	hits := make([]int, count)
	for i := range trials {
		outcome, err := Select(count, fmt.Sprintf("seed-%d", i))
		require.NoError(t, err)
		hits[outcome.WinnerIndex]++
	}

	expected := float64(trials) / count
	for idx, n := range hits {
		assert.InDelta(t, expected, float64(n), expected*0.05, "index %d selected %d times", idx, n)
	}
}

func TestWinnerIndex_Bounds(t *testing.T) {
	assert.Equal(t, 0, WinnerIndex(0, 4))
	assert.Equal(t, 1, WinnerIndex(0.25, 4))
	assert.Equal(t, 3, WinnerIndex(0.999999, 4))
	assert.Equal(t, 3, WinnerIndex(1, 4))
}

func TestGenerateSeed_Alphabet(t *testing.T) {
	seed, err := GenerateSeed()
	require.NoError(t, err)

	for _, r := range seed {
		assert.Contains(t, seedAlphabet, string(r))
	}
}

func TestWheel_StateMachine(t *testing.T) {
	w := New()
	assert.Equal(t, StateIdle, w.State())
	assert.Nil(t, w.Outcome())

	_, err := w.Spin(1, "seed")
	require.Error(t, err)
	assert.Equal(t, StateIdle, w.State(), "precondition failure keeps the wheel idle")

	outcome, err := w.Spin(3, "seed")
	require.NoError(t, err)
	assert.Equal(t, StateSettled, w.State())
	assert.Equal(t, outcome, *w.Outcome())

	_, err = w.Spin(3, "other")
	assert.ErrorIs(t, err, ErrNotIdle)
	assert.Equal(t, outcome, *w.Outcome(), "settled outcome is immutable")

	w.Reset()
	assert.Equal(t, StateIdle, w.State())
	_, err = w.Spin(3, "other")
	assert.NoError(t, err)
}

func TestRotation_LandsWinnerUnderPointer(t *testing.T) {
	tests := []struct {
		name   string
		winner int
		count  int
		prior  float64
		turns  int
	}{
		{name: "first of four from rest", winner: 0, count: 4, prior: 0, turns: 5},
		{name: "last of four from default", winner: 3, count: 4, prior: 1.2, turns: 6},
		{name: "middle of seven after a spin", winner: 3, count: 7, prior: 40.5, turns: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			final := Rotation(tt.winner, tt.count, tt.prior, tt.turns)

			slice := 2 * math.Pi / float64(tt.count)
			center := float64(tt.winner)*slice + slice/2
			landed := normalizeAngle(final + center)
			if landed > math.Pi {
				landed -= 2 * math.Pi
			}
			assert.InDelta(t, 0, landed, 1e-9)

			travelled := final - tt.prior
			assert.GreaterOrEqual(t, travelled, float64(tt.turns)*2*math.Pi)
			assert.Less(t, travelled, float64(tt.turns+1)*2*math.Pi)
		})
	}
}

func TestExtraTurns_Range(t *testing.T) {
	for range 200 {
		n := ExtraTurns(5, 8)
		assert.GreaterOrEqual(t, n, 5)
		assert.Less(t, n, 8)
	}
	assert.Equal(t, 5, ExtraTurns(5, 5))
}
