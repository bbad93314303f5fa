// leakradar is a command-line companion for the LeakRadar API: account
// profile, advanced search, unlocking and CSV export.
//
// Usage:
//
//	leakradar profile
//	leakradar search --filter url_domain=example.com [--page=N]
//	leakradar unlock 12345 67890
//	leakradar unlock --all --filter url_domain=example.com [--max=N]
//	leakradar export --filter url_domain=example.com -o leaks.csv
//	leakradar domain tesla.com [--section=employees]
//
// The bearer token is read from LEAKRADAR_TOKEN (or a .env file) unless
// --token is given.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/leakradar/client-go/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// log is initialized before any subcommand runs.
var log *zap.SugaredLogger

var rootFlags struct {
	token     string
	baseURL   string
	userAgent string
	verbose   bool
}

var rootCmd = &cobra.Command{
	Use:   "leakradar",
	Short: "Query the LeakRadar.io leak-intelligence API",
	Long:  "leakradar searches, unlocks and exports credential leaks\nthrough the LeakRadar.io API.",
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		level := "info"
		if rootFlags.verbose {
			level = "debug"
		}
		log = logger.New(level)
	},
	PersistentPostRun: func(cmd *cobra.Command, _ []string) {
		_ = log.Sync()
	},
	SilenceUsage: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&rootFlags.token, "token", "", "Bearer token (default: LEAKRADAR_TOKEN)")
	pf.StringVar(&rootFlags.baseURL, "base-url", "", "API base URL override")
	pf.StringVar(&rootFlags.userAgent, "user-agent", "", "User-Agent header override")
	pf.BoolVarP(&rootFlags.verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(unlockCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(domainCmd)
	rootCmd.Version = version
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
