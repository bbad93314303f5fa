package main

import (
	"github.com/spf13/cobra"

	leakradar "github.com/leakradar/client-go"
)

var exportFlags struct {
	filters []string
	out     string
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export unlocked leaks matching filters as CSV",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

func init() {
	f := exportCmd.Flags()
	f.StringArrayVar(&exportFlags.filters, "filter", nil, "Filter as key=value (repeatable)")
	f.StringVarP(&exportFlags.out, "out", "o", "", "Output file path (required)")

	_ = exportCmd.MarkFlagRequired("out")
}

func runExport(cmd *cobra.Command, _ []string) error {
	filters, err := parseFilters(exportFlags.filters)
	if err != nil {
		return err
	}

	client, err := buildClient()
	if err != nil {
		return err
	}
	defer client.Close()

	data, err := client.ExportAdvanced(cmd.Context(), filters)
	if err != nil {
		return err
	}

	if err := leakradar.WriteExport(data, exportFlags.out); err != nil {
		return err
	}
	log.Infow("export written", "path", exportFlags.out, "bytes", len(data))
	return nil
}
