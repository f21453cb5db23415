package tournament

import (
	"fmt"

	"github.com/bracketsim/bracketsim/pkg/sim/player"
)

// A Match records one contest between two players. The contestants are
// value snapshots, not live references. Winner is nil while the match is
// undecided; a set winner always equals one of the two contestants. The
// engine itself records every match already decided, the undecided state
// exists only for rendering.
type Match struct {
	Player1 player.Player
	Player2 player.Player
	Winner  *player.Player
}

func (m Match) String() string {
	if m.Winner == nil {
		return fmt.Sprintf("%s vs %s - No winner yet", m.Player1, m.Player2)
	}
	return fmt.Sprintf("%s vs %s - Winner: %s", m.Player1, m.Player2, m.Winner)
}
