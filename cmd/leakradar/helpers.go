package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	leakradar "github.com/leakradar/client-go"
	"github.com/leakradar/client-go/internal/config"
)

// buildClient loads configuration, applies flag overrides and constructs
// the SDK client.
func buildClient() (*leakradar.Client, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if rootFlags.token != "" {
		cfg.Token = rootFlags.token
	}
	if rootFlags.baseURL != "" {
		cfg.BaseURL = rootFlags.baseURL
	}
	if rootFlags.userAgent != "" {
		cfg.UserAgent = rootFlags.userAgent
	}

	if cfg.Token == "" {
		return nil, fmt.Errorf("no bearer token: set LEAKRADAR_TOKEN or pass --token")
	}

	opts := []leakradar.Option{
		leakradar.WithTimeout(cfg.Timeout),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, leakradar.WithBaseURL(cfg.BaseURL))
	}
	if cfg.UserAgent != "" {
		opts = append(opts, leakradar.WithUserAgent(cfg.UserAgent))
	}

	log.Debugw("creating client", "base_url", cfg.BaseURL, "timeout", cfg.Timeout)
	return leakradar.New(cfg.Token, opts...)
}

// parseFilters turns repeated key=value flags into a Filters mapping. The
// values stay strings; the remote API coerces them.
func parseFilters(raw []string) (leakradar.Filters, error) {
	filters := leakradar.Filters{}
	for _, pair := range raw {
		key, value, found := strings.Cut(pair, "=")
		if !found || key == "" {
			return nil, fmt.Errorf("invalid filter %q: expected key=value", pair)
		}
		filters[key] = value
	}
	return filters, nil
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
