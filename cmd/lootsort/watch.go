package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/loot-go/lootsort/internal/config"
	"github.com/loot-go/lootsort/internal/logging"
	"github.com/loot-go/lootsort/internal/sorting"
	"github.com/loot-go/lootsort/internal/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-run the sort whenever the plugins directory changes",
	RunE:  runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	applyFlagOverrides(cmd, &cfg)
	logging.UseStderr(os.Stderr, cfg.Verbose)

	w, err := watch.New(cfg.PluginsDir)
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	if err := w.Start(); err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	defer w.Stop()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)

	var last []string
	runOnce := func() {
		in, err := loadSortInput(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "watch: %v\n", err)
			return
		}
		result, err := sorting.Sort(in)
		if err != nil {
			fmt.Fprintf(os.Stderr, "watch: sort failed: %v\n", err)
			return
		}
		printDiff(cmd, last, result.Order)
		last = result.Order
	}

	runOnce()
	for {
		select {
		case path, ok := <-w.Changes:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "changed: %s\n", path)
			runOnce()
		case <-sigs:
			return nil
		}
	}
}

// printDiff prints the new order, marking with a "*" prefix every
// plugin whose position changed since the previous run or that was
// not in it (so every plugin on the first run).
func printDiff(cmd *cobra.Command, previous, order []string) {
	prevIndex := make(map[string]int, len(previous))
	for i, name := range previous {
		prevIndex[name] = i
	}

	out := cmd.OutOrStdout()
	for i, name := range order {
		marker := " "
		if prev, ok := prevIndex[name]; !ok || prev != i {
			marker = "*"
		}
		fmt.Fprintf(out, "%s %s\n", marker, name)
	}
	fmt.Fprintln(out, strings.Repeat("-", 40))
}
