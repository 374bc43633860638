package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/charvi/config"
	"github.com/shashiranjanraj/charvi/pkg/auth"
)

var tokenTTL time.Duration

// crmd token:issue <client>
var tokenIssueCmd = &cobra.Command{
	Use:   "token:issue <client>",
	Short: "Issue a bearer token for an API client",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Load(); err != nil {
			return err
		}
		token, err := auth.GenerateToken(args[0], tokenTTL)
		if err != nil {
			return err
		}
		fmt.Println(token)
		return nil
	},
}

func init() {
	tokenIssueCmd.Flags().DurationVar(&tokenTTL, "ttl", 90*24*time.Hour, "token lifetime")
}
