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

// Package player defines the contestants that enter a tournament.
package player

import "fmt"

// A Player is an identity-bearing value. Two players are the same
// contestant exactly when both their ID and their Name match, so the
// type can key score tables directly.
type Player struct {
	ID   int
	Name string
}

func (p Player) String() string {
	return fmt.Sprintf("%s (ID: %d)", p.Name, p.ID)
}
