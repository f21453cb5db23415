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

// roundResult partitions one round's contestants into advancers and
// eliminated players. It never outlives the round that produced it.
type roundResult struct {
	winners []player.Player
	losers  []player.Player
}

// playRound pairs the pool two at a time in positional order and lets
// the oracle decide each pair, recording every decided match. An odd
// trailing contestant advances with a bye and no recorded match, so
// pools of length zero or one pass through untouched. There is no
// seeding; the caller fixes the order before the round runs.
func (t *Tournament) playRound(pool []player.Player) roundResult {
	var result roundResult

	for i := 0; i+1 < len(pool); i += 2 {
		winner := t.decide(pool[i], pool[i+1])
		result.winners = append(result.winners, winner)
		if winner == pool[i] {
			result.losers = append(result.losers, pool[i+1])
		} else {
			result.losers = append(result.losers, pool[i])
		}
	}

	if len(pool)%2 == 1 {
		result.winners = append(result.winners, pool[len(pool)-1])
	}

	return result
}
