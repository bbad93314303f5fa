package main

import (
	"github.com/spf13/cobra"

	leakradar "github.com/leakradar/client-go"
)

var searchFlags struct {
	filters      []string
	page         int
	pageSize     int
	unlockedOnly bool
	lockedOnly   bool
}

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Run an advanced leak search",
	Args:  cobra.NoArgs,
	RunE:  runSearch,
}

func init() {
	f := searchCmd.Flags()
	f.StringArrayVar(&searchFlags.filters, "filter", nil, "Filter as key=value (repeatable)")
	f.IntVar(&searchFlags.page, "page", 1, "Result page")
	f.IntVar(&searchFlags.pageSize, "page-size", 100, "Results per page")
	f.BoolVar(&searchFlags.unlockedOnly, "unlocked-only", false, "Show only unlocked leaks")
	f.BoolVar(&searchFlags.lockedOnly, "locked-only", false, "Show only locked leaks")
}

func runSearch(cmd *cobra.Command, _ []string) error {
	filters, err := parseFilters(searchFlags.filters)
	if err != nil {
		return err
	}

	client, err := buildClient()
	if err != nil {
		return err
	}
	defer client.Close()

	opts := []leakradar.RequestOption{
		leakradar.WithPage(searchFlags.page),
		leakradar.WithPageSize(searchFlags.pageSize),
	}
	if searchFlags.unlockedOnly {
		opts = append(opts, leakradar.ShowOnlyUnlocked())
	}
	if searchFlags.lockedOnly {
		opts = append(opts, leakradar.ShowOnlyLocked())
	}

	result, err := client.SearchAdvanced(cmd.Context(), filters, opts...)
	if err != nil {
		return err
	}
	return printJSON(result)
}
