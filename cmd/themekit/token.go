package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thatcatcamp/themekit/internal/auth"
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Mint a bearer token for settings writes",
	Long: `Mint a bearer token for PATCH /api/settings, signed with auth.jwt_secret
(or THEMEKIT_JWT_SECRET).`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := initConfig(); err != nil {
			fail("%v", err)
		}

		subject, _ := cmd.Flags().GetString("subject")
		token, err := auth.GenerateToken(subject)
		if err != nil {
			fail("%v", err)
		}
		fmt.Println(token)
	},
}

func init() {
	tokenCmd.Flags().String("subject", "cli", "token subject")
	rootCmd.AddCommand(tokenCmd)
}
