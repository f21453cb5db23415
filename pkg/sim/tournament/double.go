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

import "github.com/bracketsim/bracketsim/pkg/sim/player"

// runDoubleElimination runs a winners and a losers bracket side by side.
// A first loss drops a contestant into the losers pool, a second loss
// eliminates them for good; nobody ever moves back up. Each cycle plays
// one winners round and, when the losers pool is occupied, one losers
// round, so the log keeps that order. Once both pools are down to one
// contestant each the survivors meet in the grand final.
func (t *Tournament) runDoubleElimination() player.Player {
	winners := t.players
	var losers []player.Player

	round := 0
	for len(winners) > 1 || len(losers) > 1 {
		round++
		t.Reporter.RoundStarted(round)

		result := t.playRound(winners)
		winners = result.winners
		losers = append(losers, result.losers...)

		if len(losers) > 0 {
			losers = t.playRound(losers).winners
		}

		t.Reporter.RoundCompleted(round, nil)

		if len(winners) == 1 && len(losers) == 1 {
			return t.grandFinal(winners[0], losers[0])
		}
	}

	// Degenerate rosters never reach a grand final; the winners pool
	// holds the sole survivor.
	return winners[0]
}

// grandFinal resolves the last two survivors. The upper finalist arrives
// unbeaten, so the lower finalist has to beat them twice: winning the
// first match only forces a bracket reset, and the rematch decides the
// tournament whichever way it goes.
func (t *Tournament) grandFinal(upper, lower player.Player) player.Player {
	winner := t.decide(upper, lower)
	if winner == lower {
		winner = t.decide(upper, lower)
	}
	return winner
}
