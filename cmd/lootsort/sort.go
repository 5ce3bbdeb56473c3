package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/loot-go/lootsort/internal/config"
	"github.com/loot-go/lootsort/internal/logging"
	"github.com/loot-go/lootsort/internal/sorting"
	"github.com/loot-go/lootsort/internal/telemetry"
)

var sortCmd = &cobra.Command{
	Use:   "sort",
	Short: "Compute and print the sorted load order",
	RunE:  runSort,
}

func init() {
	sortCmd.Flags().String("telemetry", "", "append JSONL telemetry events to this file")
	rootCmd.AddCommand(sortCmd)
}

func runSort(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	applyFlagOverrides(cmd, &cfg)
	if cfg.Verbose {
		logging.UseStderr(os.Stderr, true)
	}

	var emitter *telemetry.Emitter
	if path, _ := cmd.Flags().GetString("telemetry"); path != "" {
		emitter, err = telemetry.NewEmitter(path)
		if err != nil {
			return err
		}
		defer emitter.Close()
	}
	runID := telemetry.NewRunID()

	in, err := loadSortInput(cfg)
	if err != nil {
		return err
	}
	_ = emitter.Emit(telemetry.Event{
		Timestamp: time.Now(), Kind: telemetry.KindSortStart, RunID: runID,
		Data: map[string]any{"plugin_count": len(in.Plugins), "game": in.GameType.String()},
	})

	result, err := sorting.Sort(in)
	if err != nil {
		_ = emitter.Emit(telemetry.Event{
			Timestamp: time.Now(), Kind: telemetry.KindSortFailed, RunID: runID,
			Data: map[string]any{"error": err.Error()},
		})
		return err
	}

	if result.NonHamiltonianGap != nil {
		_ = emitter.Emit(telemetry.Event{
			Timestamp: time.Now(), Kind: telemetry.KindNonHamiltonianGap, RunID: runID,
			Data: map[string]any{"first": result.NonHamiltonianGap[0], "second": result.NonHamiltonianGap[1]},
		})
	}
	_ = emitter.Emit(telemetry.Event{
		Timestamp: time.Now(), Kind: telemetry.KindSortDone, RunID: runID,
		Data: map[string]any{"edge_count": len(result.Edges), "order_count": len(result.Order)},
	})

	return printOrder(cmd, cfg, result.Order)
}

func printOrder(cmd *cobra.Command, cfg config.Config, order []string) error {
	switch cfg.OutputFormat {
	case "json":
		return printOrderJSON(cmd, order)
	default:
		for _, name := range order {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return nil
	}
}

func printOrderJSON(cmd *cobra.Command, order []string) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(order)
}
