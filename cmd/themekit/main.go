// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "themekit",
	Short: "themekit - design tokens, stylesheets and theme settings",
	Long: `themekit owns a single token contract and turns it into everything a UI
needs: CSS custom properties for every mode and color preset, a utility
framework config, component kit themes and terminal palettes.

It also keeps the live theme settings (mode, preset, font) and serves
them over HTTP.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
