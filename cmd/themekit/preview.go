package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thatcatcamp/themekit/internal/adapters"
	"github.com/thatcatcamp/themekit/internal/themes"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Show the palette as terminal swatches",
	Long:  "Render every palette gradient for the saved preset as colored terminal cells",
	Run: func(cmd *cobra.Command, args []string) {
		if err := initConfig(); err != nil {
			fail("%v", err)
		}
		log := newLogger()
		reg, err := loadRegistry(log)
		if err != nil {
			fail("%v", err)
		}
		store, _, err := openStore(context.Background(), log)
		if err != nil {
			fail("%v", err)
		}

		modes := []themes.Mode{store.Settings().ThemeMode}
		if all, _ := cmd.Flags().GetBool("all"); all {
			modes = themes.Modes()
		} else if name, _ := cmd.Flags().GetString("mode"); name != "" {
			m, err := themes.ParseMode(name)
			if err != nil {
				fail("%v", err)
			}
			modes = []themes.Mode{m}
		}

		term := adapters.NewTerminalAdapter(reg, store)
		for _, m := range modes {
			out, err := term.Swatches(m)
			if err != nil {
				fail("%v", err)
			}
			fmt.Println(out)
			fmt.Println()
		}
	},
}

func init() {
	previewCmd.Flags().String("mode", "", "theme mode to show (default: saved mode)")
	previewCmd.Flags().Bool("all", false, "show every mode")
	rootCmd.AddCommand(previewCmd)
}
