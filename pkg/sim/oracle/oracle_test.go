package oracle

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bracketsim/bracketsim/pkg/sim/player"
)

var (
	alice = player.Player{ID: 1, Name: "Alice"}
	bob   = player.Player{ID: 2, Name: "Bob"}
)

func TestRandomStaysInPair(t *testing.T) {
	decider := NewRandom(rand.New(rand.NewSource(42)))

	wins := make(map[int]int)
	for i := 0; i < 100; i++ {
		winner := decider.Decide(alice, bob)
		require.Contains(t, []player.Player{alice, bob}, winner)
		wins[winner.ID]++
	}

	// A fair coin picks both sides over a hundred flips.
	require.Positive(t, wins[alice.ID])
	require.Positive(t, wins[bob.ID])
}

func TestRandomNilSourceSeedsItself(t *testing.T) {
	decider := NewRandom(nil)
	require.Contains(t, []player.Player{alice, bob}, decider.Decide(alice, bob))
}

func TestFuncAdapter(t *testing.T) {
	secondPicker := Func(func(a, b player.Player) player.Player { return b })
	require.Equal(t, bob, secondPicker.Decide(alice, bob))
}

func TestRatedFavorsStrongerPlayer(t *testing.T) {
	// With a 400 point edge Alice should take roughly ten wins in eleven.
	decider := NewRated(map[int]float64{alice.ID: 1900, bob.ID: 1500}, rand.New(rand.NewSource(42)))

	wins := 0
	const trials = 2000
	for i := 0; i < trials; i++ {
		if decider.Decide(alice, bob) == alice {
			wins++
		}
	}

	rate := float64(wins) / trials
	require.Greater(t, rate, 0.85)
	require.Less(t, rate, 0.95)
}

func TestRatedDefaultsToEvenOdds(t *testing.T) {
	decider := NewRated(nil, rand.New(rand.NewSource(42)))

	wins := 0
	const trials = 2000
	for i := 0; i < trials; i++ {
		if decider.Decide(alice, bob) == alice {
			wins++
		}
	}

	rate := float64(wins) / trials
	require.Greater(t, rate, 0.40)
	require.Less(t, rate, 0.60)
}

func TestRatedNilSourceSeedsItself(t *testing.T) {
	decider := NewRated(map[int]float64{alice.ID: 1900}, nil)
	require.Contains(t, []player.Player{alice, bob}, decider.Decide(alice, bob))
}
