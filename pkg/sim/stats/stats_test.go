package stats

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWinProbability(t *testing.T) {
	require.InDelta(t, 0.5, WinProbability(1500, 1500), 1e-12)

	// A 400 point edge means ten expected wins in eleven games.
	require.InDelta(t, 10.0/11.0, WinProbability(1900, 1500), 1e-12)
	require.InDelta(t, 1.0/11.0, WinProbability(1500, 1900), 1e-12)

	// The expectations of the two sides always add up to one.
	require.InDelta(t, 1.0, WinProbability(1700, 1650)+WinProbability(1650, 1700), 1e-12)
}

func TestInterval(t *testing.T) {
	lower, rate, upper := Interval(500, 1000)
	require.InDelta(t, 0.5, rate, 1e-12)
	require.InDelta(t, 0.469, lower, 0.001)
	require.InDelta(t, 0.531, upper, 0.001)

	// The interval tightens as the sample grows.
	wideLower, _, wideUpper := Interval(50, 100)
	require.Less(t, wideLower, lower)
	require.Greater(t, wideUpper, upper)
}

func TestIntervalNoGames(t *testing.T) {
	lower, rate, upper := Interval(0, 0)
	require.Zero(t, lower)
	require.Zero(t, rate)
	require.Zero(t, upper)
}

func TestElo(t *testing.T) {
	require.Zero(t, Elo(0.5))
	require.InDelta(t, 190.848, Elo(0.75), 0.001)
	require.InDelta(t, -190.848, Elo(0.25), 0.001)
	require.InDelta(t, 400, Elo(10.0/11.0), 1e-9)
}

func TestEloClampsDegenerateRates(t *testing.T) {
	require.Zero(t, Elo(0))
	require.Zero(t, Elo(1))
	require.Zero(t, Elo(-0.1))
	require.Zero(t, Elo(1.1))
}
