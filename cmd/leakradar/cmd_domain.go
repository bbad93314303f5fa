package main

import (
	"fmt"

	"github.com/spf13/cobra"

	leakradar "github.com/leakradar/client-go"
)

var domainFlags struct {
	section  string
	page     int
	pageSize int
	search   string
}

var domainCmd = &cobra.Command{
	Use:   "domain <domain>",
	Short: "Show leak intelligence for a domain",
	Long: "Show a domain's aggregate leak report, or one of its sections:\n" +
		"customers, employees, third-parties, subdomains, urls.",
	Args: cobra.ExactArgs(1),
	RunE: runDomain,
}

func init() {
	f := domainCmd.Flags()
	f.StringVar(&domainFlags.section, "section", "report", "Section: report, customers, employees, third-parties, subdomains, urls")
	f.IntVar(&domainFlags.page, "page", 1, "Result page")
	f.IntVar(&domainFlags.pageSize, "page-size", 100, "Results per page")
	f.StringVar(&domainFlags.search, "search", "", "Narrow listings to matching entries")
}

func runDomain(cmd *cobra.Command, args []string) error {
	client, err := buildClient()
	if err != nil {
		return err
	}
	defer client.Close()

	domain := args[0]
	ctx := cmd.Context()

	opts := []leakradar.RequestOption{
		leakradar.WithPage(domainFlags.page),
		leakradar.WithPageSize(domainFlags.pageSize),
	}
	if domainFlags.search != "" {
		opts = append(opts, leakradar.WithSearchTerm(domainFlags.search))
	}

	var result map[string]any
	switch domainFlags.section {
	case "report":
		result, err = client.GetDomainReport(ctx, domain)
	case "customers":
		result, err = client.GetDomainCustomers(ctx, domain, opts...)
	case "employees":
		result, err = client.GetDomainEmployees(ctx, domain, opts...)
	case "third-parties":
		result, err = client.GetDomainThirdParties(ctx, domain, opts...)
	case "subdomains":
		result, err = client.GetDomainSubdomains(ctx, domain, opts...)
	case "urls":
		result, err = client.GetDomainURLs(ctx, domain, opts...)
	default:
		return fmt.Errorf("unknown section %q", domainFlags.section)
	}
	if err != nil {
		return err
	}
	return printJSON(result)
}
