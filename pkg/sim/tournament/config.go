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
	"fmt"
	"math/rand"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/bracketsim/bracketsim/pkg/sim/oracle"
	"github.com/bracketsim/bracketsim/pkg/sim/player"
)

// Config describes a tournament on disk.
type Config struct {
	// The bracket format to run: single-elimination, double-elimination
	// or swiss.
	Format string `yaml:"format"`

	// Seed for the outcome generator. Zero seeds from the clock.
	Seed int64 `yaml:"seed,omitempty"`

	// File to write the rendered match log to.
	LogOut string `yaml:"log-out,omitempty"`

	// The players entering the tournament, in roster order.
	Players []PlayerConfig `yaml:"players"`
}

// PlayerConfig is one roster entry.
type PlayerConfig struct {
	ID     int     `yaml:"id,omitempty"`
	Name   string  `yaml:"name"`
	Rating float64 `yaml:"rating,omitempty"`
}

// LoadConfig reads and parses a YAML tournament config.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}

	return config, nil
}

// Roster converts the configured players into roster entries. Players
// without an explicit id get their 1-based position in the list.
func (c Config) Roster() []player.Player {
	roster := make([]player.Player, 0, len(c.Players))
	for i, p := range c.Players {
		roster = append(roster, player.Player{ID: c.playerID(i), Name: p.Name})
	}
	return roster
}

// Ratings collects the configured elo ratings by player id. It returns
// nil when the roster carries none.
func (c Config) Ratings() map[int]float64 {
	var ratings map[int]float64
	for i, p := range c.Players {
		if p.Rating == 0 {
			continue
		}
		if ratings == nil {
			ratings = make(map[int]float64, len(c.Players))
		}
		ratings[c.playerID(i)] = p.Rating
	}
	return ratings
}

// Oracle builds the outcome decider the config asks for: elo-weighted
// when any player carries a rating, a fair coin otherwise.
func (c Config) Oracle(rng *rand.Rand) oracle.Oracle {
	if ratings := c.Ratings(); len(ratings) > 0 {
		return oracle.NewRated(ratings, rng)
	}
	return oracle.NewRandom(rng)
}

func (c Config) playerID(i int) int {
	if id := c.Players[i].ID; id != 0 {
		return id
	}
	return i + 1
}
