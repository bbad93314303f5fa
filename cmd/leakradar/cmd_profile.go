package main

import "github.com/spf13/cobra"

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show the authenticated account's profile and credits",
	Args:  cobra.NoArgs,
	RunE:  runProfile,
}

func runProfile(cmd *cobra.Command, _ []string) error {
	client, err := buildClient()
	if err != nil {
		return err
	}
	defer client.Close()

	profile, err := client.GetProfile(cmd.Context())
	if err != nil {
		return err
	}
	return printJSON(profile)
}
