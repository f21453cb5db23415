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

package oracle

import (
	"math/rand"
	"time"

	"github.com/bracketsim/bracketsim/pkg/sim/player"
	"github.com/bracketsim/bracketsim/pkg/sim/stats"
)

// DefaultRating is assumed for players without a configured rating.
const DefaultRating = 1500

// Rated decides matches with the elo expectation of the two contestants:
// a player rated 400 points above their opponent wins roughly ten times
// out of eleven.
type Rated struct {
	rng     *rand.Rand
	ratings map[int]float64
}

// NewRated returns a Rated oracle drawing its outcomes from rng. ratings
// maps player IDs to elo; missing entries fall back to DefaultRating.
func NewRated(ratings map[int]float64, rng *rand.Rand) *Rated {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Rated{rng: rng, ratings: ratings}
}

func (o *Rated) Decide(a, b player.Player) player.Player {
	if o.rng.Float64() < stats.WinProbability(o.rating(a), o.rating(b)) {
		return a
	}
	return b
}

func (o *Rated) rating(p player.Player) float64 {
	if rating, ok := o.ratings[p.ID]; ok {
		return rating
	}
	return DefaultRating
}
