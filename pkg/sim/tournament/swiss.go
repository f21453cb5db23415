// Copyright © 2026 The Bracketsim Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package tournament

import (
	"sort"

	"github.com/bracketsim/bracketsim/pkg/sim/player"
)

// A Standing is one score-table row: a player and their win count.
type Standing struct {
	Player player.Player
	Score  int
}

// runSwiss plays ceil(log2(n)) rounds on the full roster. Every round
// re-sorts the players by score and pairs adjacent ranks, so contestants
// meet opponents on level results; the trailing player of an odd roster
// sits the round out without a match or a point. Rematches are allowed.
// The winner is whoever tops the final standings.
func (t *Tournament) runSwiss() player.Player {
	scores := make(map[player.Player]int, len(t.players))
	for _, p := range t.players {
		scores[p] = 0
	}

	rounds := swissRounds(len(t.players))
	for round := 1; round <= rounds; round++ {
		t.Reporter.RoundStarted(round)

		ranked := t.standings(scores)
		for i := 0; i+1 < len(ranked); i += 2 {
			winner := t.decide(ranked[i].Player, ranked[i+1].Player)
			scores[winner]++
		}

		t.Reporter.RoundCompleted(round, t.standings(scores))
	}

	return t.standings(scores)[0].Player
}

// standings flattens the score table into a ranking, best score first.
// Players on equal scores keep roster order, which makes pairing and
// winner selection deterministic for a fixed roster and oracle.
func (t *Tournament) standings(scores map[player.Player]int) []Standing {
	table := make([]Standing, 0, len(t.players))
	for _, p := range t.players {
		table = append(table, Standing{Player: p, Score: scores[p]})
	}

	sort.SliceStable(table, func(i, j int) bool {
		return table[i].Score > table[j].Score
	})

	return table
}

// swissRounds is the bit length of the smallest power of two that fits n
// contestants: two players need one round, five to eight need three.
func swissRounds(n int) int {
	rounds := 0
	for 1<<rounds < n {
		rounds++
	}
	return rounds
}
