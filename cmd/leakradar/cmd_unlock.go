package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	leakradar "github.com/leakradar/client-go"
)

var unlockFlags struct {
	all      bool
	filters  []string
	maxLeaks int
}

var unlockCmd = &cobra.Command{
	Use:   "unlock [leak-id...]",
	Short: "Unlock leaks by ID, or all leaks matching filters",
	Long: "Unlock specific leaks by passing their numeric IDs, or unlock\n" +
		"every leak matching --filter expressions with --all.\n" +
		"Unlocking consumes account credits.",
	RunE: runUnlock,
}

func init() {
	f := unlockCmd.Flags()
	f.BoolVar(&unlockFlags.all, "all", false, "Unlock all leaks matching --filter")
	f.StringArrayVar(&unlockFlags.filters, "filter", nil, "Filter as key=value (repeatable, with --all)")
	f.IntVar(&unlockFlags.maxLeaks, "max", 0, "Cap the number of leaks to unlock (0 = no cap)")
}

func runUnlock(cmd *cobra.Command, args []string) error {
	client, err := buildClient()
	if err != nil {
		return err
	}
	defer client.Close()

	if unlockFlags.all {
		if len(args) > 0 {
			return fmt.Errorf("--all does not take leak IDs")
		}
		filters, err := parseFilters(unlockFlags.filters)
		if err != nil {
			return err
		}

		var opts []leakradar.RequestOption
		if unlockFlags.maxLeaks > 0 {
			opts = append(opts, leakradar.WithMaxLeaks(unlockFlags.maxLeaks))
		}

		unlocked, err := client.UnlockAllAdvanced(cmd.Context(), filters, opts...)
		if err != nil {
			return err
		}
		log.Infow("unlocked leaks", "count", len(unlocked))
		return printJSON(unlocked)
	}

	if len(args) == 0 {
		return fmt.Errorf("pass leak IDs, or --all with --filter")
	}

	leakIDs := make([]int64, 0, len(args))
	for _, arg := range args {
		id, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid leak ID %q", arg)
		}
		leakIDs = append(leakIDs, id)
	}

	unlocked, err := client.UnlockLeaks(cmd.Context(), leakIDs)
	if err != nil {
		return err
	}
	log.Infow("unlocked leaks", "count", len(unlocked))
	return printJSON(unlocked)
}
