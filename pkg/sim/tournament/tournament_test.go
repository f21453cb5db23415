package tournament

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bracketsim/bracketsim/pkg/sim/oracle"
	"github.com/bracketsim/bracketsim/pkg/sim/player"
)

// firstPicker always decides for the first-listed contestant, which
// makes every driver's pairing order visible in the match log.
var firstPicker = oracle.Func(func(a, b player.Player) player.Player {
	return a
})

// script hands out the given winners one per decision, in order.
func script(results ...player.Player) oracle.Oracle {
	i := 0
	return oracle.Func(func(a, b player.Player) player.Player {
		winner := results[i]
		i++
		return winner
	})
}

// roster builds players named in entry order with 1-based ids.
func roster(names ...string) []player.Player {
	players := make([]player.Player, len(names))
	for i, name := range names {
		players[i] = player.Player{ID: i + 1, Name: name}
	}
	return players
}

// pairs flattens a match log into contestant name tuples.
func pairs(matches []Match) [][2]string {
	out := make([][2]string, len(matches))
	for i, match := range matches {
		out[i] = [2]string{match.Player1.Name, match.Player2.Name}
	}
	return out
}

// winnerNames flattens a match log into the winners' names.
func winnerNames(t *testing.T, matches []Match) []string {
	t.Helper()

	out := make([]string, len(matches))
	for i, match := range matches {
		require.NotNil(t, match.Winner, "match %d is undecided", i)
		out[i] = match.Winner.Name
	}
	return out
}

// recordingReporter keeps every callback for later assertions.
type recordingReporter struct {
	started   []int
	completed []int
	matches   []Match
	standings [][]Standing
}

func (r *recordingReporter) RoundStarted(number int) {
	r.started = append(r.started, number)
}

func (r *recordingReporter) MatchPlayed(match Match) {
	r.matches = append(r.matches, match)
}

func (r *recordingReporter) RoundCompleted(number int, standings []Standing) {
	r.completed = append(r.completed, number)
	r.standings = append(r.standings, standings)
}

func TestStartEmptyRoster(t *testing.T) {
	for _, format := range Formats() {
		t.Run(format.String(), func(t *testing.T) {
			tour := New(format, nil)

			winner, err := tour.Start()
			require.ErrorIs(t, err, ErrNoPlayers)
			require.Equal(t, player.Player{}, winner)
			require.Empty(t, tour.Matches())
		})
	}
}

func TestStartInvalidFormat(t *testing.T) {
	tour := New(Format(42), roster("Alice", "Bob"))

	_, err := tour.Start()
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid format")
	require.Empty(t, tour.Matches())
}

func TestStartDefaultsAreUsable(t *testing.T) {
	players := roster("Alice", "Bob", "Carol", "Dave")
	tour := New(SingleElimination, players)

	winner, err := tour.Start()
	require.NoError(t, err)
	require.Contains(t, players, winner)
	require.Len(t, tour.Matches(), 3)
}

func TestEveryRecordedWinnerIsAContestant(t *testing.T) {
	for _, format := range Formats() {
		t.Run(format.String(), func(t *testing.T) {
			tour := New(format, roster("A", "B", "C", "D", "E", "F", "G", "H"))
			tour.Oracle = oracle.NewRandom(rand.New(rand.NewSource(42)))

			_, err := tour.Start()
			require.NoError(t, err)

			for i, match := range tour.Matches() {
				require.NotNil(t, match.Winner, "match %d is undecided", i)
				require.True(
					t,
					*match.Winner == match.Player1 || *match.Winner == match.Player2,
					"match %d: winner %s played neither side", i, match.Winner,
				)
			}
		})
	}
}

func TestPlayMatchRecords(t *testing.T) {
	players := roster("Alice", "Bob")
	tour := New(SingleElimination, players)

	require.NoError(t, tour.PlayMatch(players[0], players[1], players[1]))
	require.NoError(t, tour.PlayMatch(players[1], players[0], players[1]))

	matches := tour.Matches()
	require.Len(t, matches, 2)
	require.Equal(t, [][2]string{{"Alice", "Bob"}, {"Bob", "Alice"}}, pairs(matches))
	require.Equal(t, []string{"Bob", "Bob"}, winnerNames(t, matches))
}

func TestPlayMatchRejectsOutsideWinner(t *testing.T) {
	players := roster("Alice", "Bob", "Mallory")
	tour := New(SingleElimination, players)

	err := tour.PlayMatch(players[0], players[1], players[2])
	require.ErrorIs(t, err, ErrInvalidWinner)
	require.Empty(t, tour.Matches())
}

func TestMatchesSnapshotIsIndependent(t *testing.T) {
	players := roster("Alice", "Bob")
	tour := New(SingleElimination, players)
	require.NoError(t, tour.PlayMatch(players[0], players[1], players[0]))

	snapshot := tour.Matches()
	*snapshot[0].Winner = player.Player{ID: 99, Name: "Mallory"}

	matches := tour.Matches()
	require.Len(t, matches, 1)
	require.Equal(t, players[0], *matches[0].Winner)
}

func TestPlayersReturnsCopy(t *testing.T) {
	tour := New(Swiss, roster("Alice", "Bob"))

	leaked := tour.Players()
	leaked[0] = player.Player{ID: 99, Name: "Mallory"}

	require.Equal(t, roster("Alice", "Bob"), tour.Players())
	require.Equal(t, Swiss, tour.Format())
}

func TestMatchString(t *testing.T) {
	alice := player.Player{ID: 1, Name: "Alice"}
	bob := player.Player{ID: 2, Name: "Bob"}

	decided := Match{Player1: alice, Player2: bob, Winner: &bob}
	require.Equal(
		t,
		"Alice (ID: 1) vs Bob (ID: 2) - Winner: Bob (ID: 2)",
		decided.String(),
	)

	pending := Match{Player1: alice, Player2: bob}
	require.Equal(
		t,
		"Alice (ID: 1) vs Bob (ID: 2) - No winner yet",
		pending.String(),
	)
}

func TestParseFormat(t *testing.T) {
	for name, want := range map[string]Format{
		"single-elimination": SingleElimination,
		"single":             SingleElimination,
		"double-elimination": DoubleElimination,
		"double":             DoubleElimination,
		"swiss":              Swiss,
	} {
		format, err := ParseFormat(name)
		require.NoError(t, err, name)
		require.Equal(t, want, format, name)
	}

	_, err := ParseFormat("round-robin")
	require.Error(t, err)
	require.Contains(t, err.Error(), `invalid format "round-robin"`)
}

func TestFormatString(t *testing.T) {
	require.Equal(t, "single-elimination", SingleElimination.String())
	require.Equal(t, "double-elimination", DoubleElimination.String())
	require.Equal(t, "swiss", Swiss.String())
	require.Equal(t, "unknown", Format(42).String())
}
