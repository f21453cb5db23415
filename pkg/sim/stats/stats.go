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

// Package stats estimates player strength from simulated results.
package stats

import "math"

// WinProbability is the elo expected score of a player rated a against
// an opponent rated b.
func WinProbability(a, b float64) float64 {
	return 1 / (1 + math.Pow(10, (b-a)/400)) // win probability sigmoid
}

// Interval returns the win rate measured from wins out of total games
// along with its p < 0.05 lower and upper bounds under the normal
// approximation.
func Interval(wins, total int) (lower, rate, upper float64) {
	if total == 0 {
		return 0, 0, 0
	}

	rate = float64(wins) / float64(total)

	// standard deviation of the measured rate
	sigma := math.Sqrt(rate * (1 - rate) / float64(total))

	margin := phiInv(0.975) * sigma
	return rate - margin, rate, rate + margin
}

// Elo converts a win rate into an elo difference against the opposition.
// Degenerate rates, where nothing or everything was won, clamp to zero.
func Elo(rate float64) float64 {
	switch {
	case rate <= 0, rate >= 1:
		return 0

	default:
		return -400 * math.Log10(1/rate-1)
	}
}

func phiInv(p float64) float64 {
	return math.Sqrt2 * math.Erfinv(2*p-1)
}
