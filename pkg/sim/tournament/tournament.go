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

// Package tournament simulates complete tournaments: it pairs a fixed
// roster under a bracket format, decides every match through an oracle
// and keeps an ordered log of everything played.
package tournament

import (
	"errors"
	"fmt"

	"github.com/bracketsim/bracketsim/pkg/sim/oracle"
	"github.com/bracketsim/bracketsim/pkg/sim/player"
)

var (
	// ErrNoPlayers is returned by Start when the roster is empty.
	ErrNoPlayers = errors.New("tournament: no players in the roster")

	// ErrInvalidWinner rejects a manually recorded result whose winner
	// is neither contestant.
	ErrInvalidWinner = errors.New("tournament: winner is neither contestant")
)

// A Tournament runs a fixed roster through one bracket format and
// accumulates an append-only match log. The roster and the format never
// change after construction; Oracle and Reporter may be swapped freely
// before Start.
//
// A Tournament is not safe for concurrent use: Start runs every round to
// completion on the calling goroutine and nothing else may touch the
// match log while it does.
type Tournament struct {
	// Oracle decides match outcomes. Defaults to a fair coin.
	Oracle oracle.Oracle

	// Reporter observes rounds and matches. Defaults to a no-op.
	Reporter Reporter

	format  Format
	players []player.Player
	matches []Match
}

// New creates a tournament with an empty match log. The roster is
// copied; keeping identifiers unique is the caller's business.
func New(format Format, players []player.Player) *Tournament {
	return &Tournament{
		Oracle:   oracle.NewRandom(nil),
		Reporter: nopReporter{},
		format:   format,
		players:  append([]player.Player(nil), players...),
	}
}

// Format returns the bracket format the tournament runs under.
func (t *Tournament) Format() Format {
	return t.format
}

// Players returns a copy of the initial roster in entry order.
func (t *Tournament) Players() []player.Player {
	return append([]player.Player(nil), t.players...)
}

// Matches returns a snapshot of the match log in execution order. The
// log itself only ever grows; mutating the snapshot has no effect on it.
func (t *Tournament) Matches() []Match {
	matches := make([]Match, len(t.matches))
	for i, match := range t.matches {
		if match.Winner != nil {
			winner := *match.Winner
			match.Winner = &winner
		}
		matches[i] = match
	}
	return matches
}

// Start runs the tournament to completion and returns its winner,
// leaving the match log populated as a record of everything decided.
// Every format errors with ErrNoPlayers on an empty roster.
func (t *Tournament) Start() (player.Player, error) {
	if len(t.players) == 0 {
		return player.Player{}, ErrNoPlayers
	}

	switch t.format {
	case SingleElimination:
		return t.runSingleElimination(), nil
	case DoubleElimination:
		return t.runDoubleElimination(), nil
	case Swiss:
		return t.runSwiss(), nil
	default:
		return player.Player{}, fmt.Errorf("tournament: invalid format %d", int(t.format))
	}
}

// PlayMatch appends an externally decided result to the match log. No
// outcome is computed; the winner has to be one of the two contestants.
func (t *Tournament) PlayMatch(p1, p2, winner player.Player) error {
	if winner != p1 && winner != p2 {
		return ErrInvalidWinner
	}

	t.record(p1, p2, winner)
	return nil
}

// decide asks the oracle for a winner and records the match.
func (t *Tournament) decide(p1, p2 player.Player) player.Player {
	winner := t.Oracle.Decide(p1, p2)
	t.record(p1, p2, winner)
	return winner
}

func (t *Tournament) record(p1, p2, winner player.Player) {
	w := winner
	t.matches = append(t.matches, Match{Player1: p1, Player2: p2, Winner: &w})

	// The observer gets its own snapshot, never the logged record.
	observed := winner
	t.Reporter.MatchPlayed(Match{Player1: p1, Player2: p2, Winner: &observed})
}
