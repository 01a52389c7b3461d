package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/LISSConsulting/LISSTech.WheelKing/internal/config"
	"github.com/LISSConsulting/LISSTech.WheelKing/internal/store"
	"github.com/LISSConsulting/LISSTech.WheelKing/internal/wheel"
)

func spinCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "spin",
		Short: "Spin the wheel without the TUI and print the winner",
		RunE: func(cmd *cobra.Command, args []string) error {
			count, _ := cmd.Flags().GetInt("count")
			asJSON, _ := cmd.Flags().GetBool("json")
			return executeSpins(cmd, opts, count, asJSON)
		},
	}
	cmd.Flags().Int("count", 1, "number of consecutive spins")
	cmd.Flags().Bool("json", false, "print settled events as JSON lines")
	return cmd
}

func sectorsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "sectors",
		Short: "Print the sector layout for the configured names",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			names, err := cfg.Names()
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatSectors(names, cfg.Wheel.RigMode))
			return nil
		},
	}
}

func historyCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show past spins and the win tally",
		RunE: func(cmd *cobra.Command, args []string) error {
			limit, _ := cmd.Flags().GetInt("limit")
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			logger := newLogger(cmd.ErrOrStderr(), opts.logLevel)
			spins, err := store.ReadAll(cfg.Resolve(cfg.History.Dir), logger)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatHistory(spins, limit))
			return nil
		},
	}
	cmd.Flags().Int("limit", 10, "number of most recent spins to list (0 = all)")
	return cmd
}

func initCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Scaffold wheel.toml, names.txt and .gitignore in the current directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("get working directory: %w", err)
			}
			created, err := config.ScaffoldProject(dir)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(created) == 0 {
				fmt.Fprintln(out, "All files already exist: nothing to create.")
				return nil
			}
			for _, path := range created {
				fmt.Fprintf(out, "Created %s\n", path)
			}
			return nil
		},
	}
}

// loadConfig loads wheel.toml, applies flags the user set explicitly and
// validates the result.
func loadConfig(cmd *cobra.Command, opts *options) (*config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("names") {
		cfg.Wheel.NamesFile = opts.namesFile
		cfg.Wheel.Names = nil
	}
	if flags.Changed("rig") {
		cfg.Wheel.RigMode = opts.rig
	}
	if flags.Changed("duration") {
		cfg.Wheel.DurationMs = opts.durationMs
	}
	if flags.Changed("seed") {
		cfg.Wheel.Seed = opts.seed
	}
	if flags.Changed("angle-policy") {
		cfg.Wheel.AnglePolicy = opts.policy
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration:\n%w", err)
	}
	return cfg, nil
}

// printSettled writes one line per settled spin.
func printSettled(w io.Writer, e wheel.Event, asJSON bool) error {
	if asJSON {
		return json.NewEncoder(w).Encode(e)
	}
	line := fmt.Sprintf("winner: %s (#%d of %d)", e.Name, e.Index+1, len(e.Names))
	if e.Rigged {
		line += "  ★ rigged"
	}
	_, err := fmt.Fprintln(w, line)
	return err
}

// formatSectors renders the sector table for names.
func formatSectors(names []string, rigMode bool) string {
	if len(names) == 0 {
		return "No names configured\n"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%d names, %.2f° each\n", len(names), wheel.SegmentSpan(len(names)))
	sb.WriteString("  #  start     end       mid       name\n")
	sb.WriteString("  ─  ─────     ───       ───       ────\n")
	for _, s := range wheel.ComputeSectors(names) {
		mark := ""
		if wheel.Rigged(len(names), rigMode) && s.Index == wheel.ForcedIndex {
			mark = "  ★"
		}
		fmt.Fprintf(&sb, "%3d  %-8.2f  %-8.2f  %-8.2f  %s%s\n", s.Index+1, s.Start, s.End, s.Mid, names[s.Index], mark)
	}
	return sb.String()
}

// formatHistory renders recent spins (newest first) and the win tally.
func formatHistory(spins []store.SpinSummary, limit int) string {
	if len(spins) == 0 {
		return "No spins recorded yet. Run 'wheel' or 'wheel spin' first.\n"
	}

	var sb strings.Builder
	sb.WriteString("Recent spins\n")
	sb.WriteString("────────────\n")
	shown := 0
	for i := len(spins) - 1; i >= 0; i-- {
		if limit > 0 && shown >= limit {
			break
		}
		s := spins[i]
		mark := "✓"
		if s.Rigged {
			mark = "★"
		}
		fmt.Fprintf(&sb, "  %s  %-20s  %s\n", mark, s.Winner, humanize.Time(s.EndAt))
		shown++
	}

	sb.WriteString("\nTally\n")
	sb.WriteString("─────\n")
	for _, row := range store.TallyOf(spins) {
		fmt.Fprintf(&sb, "  %-20s  %s\n", row.Name, pluralWins(row.Wins))
	}
	fmt.Fprintf(&sb, "\n%s spins in total\n", humanize.Comma(int64(len(spins))))
	return sb.String()
}

func pluralWins(n int) string {
	if n == 1 {
		return "1 win"
	}
	return fmt.Sprintf("%d wins", n)
}

// errNoNames is returned when a spin is requested for an empty list.
var errNoNames = errors.New("no names to spin: add names to wheel.toml or pass --names")
