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

// runSingleElimination knocks the roster down one round at a time:
// losers leave for good, winners re-pair, until a single contestant
// survives. A power-of-two roster of n players plays exactly n-1
// matches; other sizes bye players through instead.
func (t *Tournament) runSingleElimination() player.Player {
	pool := t.players

	round := 0
	for len(pool) > 1 {
		round++
		t.Reporter.RoundStarted(round)
		pool = t.playRound(pool).winners
		t.Reporter.RoundCompleted(round, nil)
	}

	return pool[0]
}
