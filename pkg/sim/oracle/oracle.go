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

// Package oracle decides the winners of simulated matches.
package oracle

import "github.com/bracketsim/bracketsim/pkg/sim/player"

// An Oracle picks the winner of a match between two contestants. The
// returned player must be one of the two arguments. Deciding is pure;
// recording the outcome is the caller's business.
type Oracle interface {
	Decide(a, b player.Player) player.Player
}

// Func adapts a plain decision function into an Oracle.
type Func func(a, b player.Player) player.Player

func (f Func) Decide(a, b player.Player) player.Player {
	return f(a, b)
}
