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

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bracketsim/bracketsim/pkg/sim/tournament"
)

func Formats() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List the supported tournament formats",
		Args:  cobra.ExactArgs(0),

		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Print("\u001B[32mSupported Formats\u001B[0m:\n\n")

			for _, format := range tournament.Formats() {
				name := fmt.Sprintf("\x1b[34m%s\x1b[0m:", format)
				fmt.Printf("- %-30s %s\n", name, describe(format))
			}

			return nil
		},
	}
}

func describe(format tournament.Format) string {
	switch format {
	case tournament.SingleElimination:
		return "knockout rounds until a single player survives"
	case tournament.DoubleElimination:
		return "a second bracket for the beaten, grand final with bracket reset"
	case tournament.Swiss:
		return "score-sorted pairings over ceil(log2 n) rounds, top score wins"
	default:
		return ""
	}
}
