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

// A Reporter receives progress callbacks while a driver runs. A round is
// one pairing cycle; round numbers start at 1. The standings passed to
// RoundCompleted arrive sorted best first and are non-nil only for
// formats that keep a score table.
//
// Callbacks run synchronously on the goroutine executing Start, so a
// Reporter must not call back into the tournament.
type Reporter interface {
	RoundStarted(number int)
	MatchPlayed(match Match)
	RoundCompleted(number int, standings []Standing)
}

type nopReporter struct{}

func (nopReporter) RoundStarted(int)               {}
func (nopReporter) MatchPlayed(Match)              {}
func (nopReporter) RoundCompleted(int, []Standing) {}
