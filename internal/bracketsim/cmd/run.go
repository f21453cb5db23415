package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/adrg/xdg"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/bracketsim/bracketsim/pkg/sim/tournament"
)

// DefaultConfigFile is consulted when no config file argument is given.
var DefaultConfigFile = filepath.Join(xdg.ConfigHome, "bracketsim", "config.yaml")

// bracketsim run
func Run() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [config-file]",
		Short: "Run one simulated tournament and print its results",
		Args:  cobra.MaximumNArgs(1),
		Long: heredoc.Docf(`run simulates a single tournament from start to finish,
			printing every match as it is decided, the standings after
			each swiss round, and finally the tournament winner.

			The roster and format come from the given YAML config file,
			falling back to %s
			when the argument is omitted. The --format, --player and
			--seed flags override whatever the file says, so small
			tournaments can be run with flags alone:

			    bracketsim run -f swiss -p Alice,Bob,Carol,Dave`, DefaultConfigFile),

		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := loadConfig(cmd, args)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("log-out") {
				config.LogOut, _ = cmd.Flags().GetString("log-out")
			}

			format, err := tournament.ParseFormat(config.Format)
			if err != nil {
				return err
			}

			tour := tournament.New(format, config.Roster())
			tour.Oracle = config.Oracle(newRNG(config.Seed))
			tour.Reporter = new(consoleReporter)

			winner, err := tour.Start()
			if err != nil {
				return err
			}

			matches := tour.Matches()
			fmt.Printf("\n\x1b[32mTournament Winner\x1b[0m: %s (%d matches)\n", winner, len(matches))

			if config.LogOut != "" {
				if err := writeMatchLog(config.LogOut, matches); err != nil {
					return err
				}
				logrus.Infof("Match log written to %s\n", config.LogOut)
			}

			return nil
		},
	}

	addConfigFlags(cmd)
	cmd.Flags().String("log-out", "", "file to write the match log to")

	return cmd
}

// addConfigFlags registers the config overrides every simulation command
// shares.
func addConfigFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("format", "f", "", "tournament format (single-elimination, double-elimination, swiss)")
	cmd.Flags().StringSliceP("player", "p", nil, "roster of player names, overriding the config file")
	cmd.Flags().Int64("seed", 0, "seed for the outcome generator, 0 seeds from the clock")
}

// loadConfig reads the tournament config and applies the flag overrides.
// A missing default file is fine as long as the flags supply a roster; a
// missing explicit file is an error.
func loadConfig(cmd *cobra.Command, args []string) (tournament.Config, error) {
	path := DefaultConfigFile
	explicit := len(args) == 1
	if explicit {
		path = args[0]
	}

	config, err := tournament.LoadConfig(path)
	if err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return tournament.Config{}, err
		}
		config = tournament.Config{}
	}

	if cmd.Flags().Changed("format") {
		config.Format, _ = cmd.Flags().GetString("format")
	}
	if cmd.Flags().Changed("player") {
		names, _ := cmd.Flags().GetStringSlice("player")
		config.Players = nil
		for _, name := range names {
			config.Players = append(config.Players, tournament.PlayerConfig{Name: name})
		}
	}
	if cmd.Flags().Changed("seed") {
		config.Seed, _ = cmd.Flags().GetInt64("seed")
	}

	if config.Format == "" {
		config.Format = "single-elimination"
	}
	if len(config.Players) == 0 {
		return tournament.Config{}, errors.New("no players configured: give --player or a config file")
	}

	return config, nil
}

// newRNG seeds the outcome generator, from the clock when the config
// does not pin a seed.
func newRNG(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// consoleReporter streams driver progress to the terminal: rounds and
// matches through logrus, swiss standings as a table.
type consoleReporter struct {
	matches int
}

func (r *consoleReporter) RoundStarted(number int) {
	logrus.Infof("\x1b[33mStarting\x1b[0m Round #%d\n", number)
}

func (r *consoleReporter) MatchPlayed(match tournament.Match) {
	r.matches++
	logrus.Infof("\x1b[32mFinished\x1b[0m Match #%d: %s\n", r.matches, match)
}

func (r *consoleReporter) RoundCompleted(number int, standings []tournament.Standing) {
	if standings == nil {
		return
	}
	printStandings(standings)
}

func printStandings(standings []tournament.Standing) {
	fmt.Println("╔═════════════════════════════════════════╗")
	fmt.Printf("║     %-25s %9s ║\n", "Name", "Score")
	fmt.Println("╠═════════════════════════════════════════╣")
	for i, standing := range standings {
		fmt.Printf("║ %2d. %-25s %9d ║\n", i+1, standing.Player.Name, standing.Score)
	}
	fmt.Println("╚═════════════════════════════════════════╝")
}

// writeMatchLog stores the rendered match log, one line per match in
// execution order.
func writeMatchLog(path string, matches []tournament.Match) error {
	var log strings.Builder
	for i, match := range matches {
		fmt.Fprintf(&log, "%d. %s\n", i+1, match)
	}

	if err := os.WriteFile(path, []byte(log.String()), 0644); err != nil {
		return fmt.Errorf("write match log: %w", err)
	}
	return nil
}
