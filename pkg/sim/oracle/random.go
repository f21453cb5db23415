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
)

// Random decides every match with a fair coin flip.
type Random struct {
	rng *rand.Rand
}

// NewRandom returns a Random backed by rng. Passing nil seeds a fresh
// generator from the clock.
func NewRandom(rng *rand.Rand) *Random {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Random{rng: rng}
}

func (o *Random) Decide(a, b player.Player) player.Player {
	if o.rng.Intn(2) == 0 {
		return a
	}
	return b
}
