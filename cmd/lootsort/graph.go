package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/loot-go/lootsort/internal/config"
	"github.com/loot-go/lootsort/internal/graphview"
	"github.com/loot-go/lootsort/internal/sorting"
)

var graphCmd = &cobra.Command{
	Use:   "graph [plugin]",
	Short: "Render the plugin graph's edges, or just those touching one plugin",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runGraph,
}

func init() {
	rootCmd.AddCommand(graphCmd)
}

func runGraph(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	applyFlagOverrides(cmd, &cfg)

	in, err := loadSortInput(cfg)
	if err != nil {
		return err
	}
	result, err := sorting.Sort(in)
	if err != nil {
		return err
	}

	var rendered string
	if len(args) == 1 {
		rendered = graphview.RenderFor(result.Edges, args[0])
	} else {
		rendered = graphview.Render(result.Edges)
	}
	fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return nil
}
