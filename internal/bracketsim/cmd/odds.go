package cmd

import (
	"fmt"
	"sort"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"

	"github.com/bracketsim/bracketsim/pkg/sim/stats"
	"github.com/bracketsim/bracketsim/pkg/sim/tournament"
)

const SPIN = 31

// bracketsim odds
func Odds() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "odds [config-file]",
		Short: "Estimate every player's chances of winning the tournament",
		Args:  cobra.MaximumNArgs(1),
		Long: heredoc.Doc(`odds plays the configured tournament over and over with fresh
			random outcomes and reports how often each player takes it,
			with a 95% error margin and the elo edge those odds imply.

			Structural advantages show up here: byes in an odd roster or
			a favourable rating spread translate directly into a bigger
			share of the simulated wins.`),

		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := loadConfig(cmd, args)
			if err != nil {
				return err
			}

			format, err := tournament.ParseFormat(config.Format)
			if err != nil {
				return err
			}

			simulations, _ := cmd.Flags().GetInt("simulations")
			roster := config.Roster()
			decider := config.Oracle(newRNG(config.Seed))

			s := spinner.New(spinner.CharSets[SPIN], 100*time.Millisecond)
			s.Suffix = fmt.Sprintf(" Simulating %d tournaments...", simulations)
			s.Start()

			wins := make(map[int]int, len(roster))
			for i := 0; i < simulations; i++ {
				tour := tournament.New(format, roster)
				tour.Oracle = decider

				winner, err := tour.Start()
				if err != nil {
					s.Stop()
					return err
				}
				wins[winner.ID]++
			}

			s.Stop()

			sort.SliceStable(roster, func(i, j int) bool {
				return wins[roster[i].ID] > wins[roster[j].ID]
			})

			fmt.Println("╔════════════════════════════════════════════════════╗")
			fmt.Printf("║     %-25s %6s %6s %6s ║\n", "Name", "Odds", "Error", "Elo")
			fmt.Println("╠════════════════════════════════════════════════════╣")
			for i, p := range roster {
				lower, rate, upper := stats.Interval(wins[p.ID], simulations)
				fmt.Printf(
					"║ %2d. %-25s %5.1f%% %5.1f%% %+6.0f ║\n",
					i+1, p.Name,
					rate*100, (upper-lower)/2*100,
					stats.Elo(rate),
				)
			}
			fmt.Println("╚════════════════════════════════════════════════════╝")

			return nil
		},
	}

	addConfigFlags(cmd)
	cmd.Flags().IntP("simulations", "n", 1000, "number of tournaments to simulate")

	return cmd
}
