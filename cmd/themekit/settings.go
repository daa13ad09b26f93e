package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/thatcatcamp/themekit/internal/settings"
	"github.com/thatcatcamp/themekit/internal/themes"
	"gopkg.in/yaml.v3"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage live theme settings",
	Long:  "View and change the saved theme mode, color preset and font",
}

var settingsGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Show the current settings",
	Run: func(cmd *cobra.Command, args []string) {
		if err := initConfig(); err != nil {
			fail("%v", err)
		}
		store, _, err := openStore(context.Background(), newLogger())
		if err != nil {
			fail("%v", err)
		}

		out, err := yaml.Marshal(store.Settings())
		if err != nil {
			fail("%v", err)
		}
		fmt.Print(string(out))
	},
}

var settingsSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Change one or more settings",
	Example: `  themekit settings set --mode dark
  themekit settings set --preset cyan --font-size 16`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := initConfig(); err != nil {
			fail("%v", err)
		}

		var patch settings.Patch
		flags := cmd.Flags()
		if flags.Changed("mode") {
			v, _ := flags.GetString("mode")
			m := themes.Mode(v)
			patch.ThemeMode = &m
		}
		if flags.Changed("preset") {
			v, _ := flags.GetString("preset")
			p := themes.Preset(v)
			patch.ThemeColorPresets = &p
		}
		if flags.Changed("font-family") {
			v, _ := flags.GetString("font-family")
			patch.FontFamily = &v
		}
		if flags.Changed("font-size") {
			v, _ := flags.GetInt("font-size")
			patch.FontSize = &v
		}
		if patch.IsEmpty() {
			fail("nothing to set (use --mode, --preset, --font-family or --font-size)")
		}

		ctx := context.Background()
		store, _, err := openStore(ctx, newLogger())
		if err != nil {
			fail("%v", err)
		}
		next, changed, err := store.Update(ctx, patch)
		if err != nil {
			fail("%v", err)
		}
		if !changed {
			fmt.Println("Settings unchanged")
			return
		}
		fmt.Printf("Settings updated: mode=%s preset=%s font=%q size=%d\n",
			next.ThemeMode, next.ThemeColorPresets, next.FontFamily, next.FontSize)
	},
}

var settingsHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "List saved settings revisions, newest first",
	Run: func(cmd *cobra.Command, args []string) {
		if err := initConfig(); err != nil {
			fail("%v", err)
		}
		ctx := context.Background()
		log := newLogger()
		_, backend, err := openStore(ctx, log)
		if err != nil {
			fail("%v", err)
		}

		limit, _ := cmd.Flags().GetInt("limit")
		revisions, err := backend.History(ctx, settings.StorageKey, limit)
		if err != nil {
			fail("%v", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "SAVED\tMODE\tPRESET\tFONT\tSIZE")
		for _, rev := range revisions {
			s, err := settings.Decode([]byte(rev.Value), settings.Defaults())
			if err != nil {
				log.Warn().Err(err).Uint("revision", rev.ID).Msg("skipping unreadable revision")
				continue
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\n",
				rev.CreatedAt.Format("2006-01-02 15:04:05"), s.ThemeMode, s.ThemeColorPresets, s.FontFamily, s.FontSize)
		}
		w.Flush()
	},
}

func init() {
	settingsSetCmd.Flags().String("mode", "", fmt.Sprintf("theme mode %v", themes.Modes()))
	settingsSetCmd.Flags().String("preset", "", fmt.Sprintf("color preset %v", themes.Presets()))
	settingsSetCmd.Flags().String("font-family", "", "font family stack")
	settingsSetCmd.Flags().Int("font-size", 0, "base font size in px")

	settingsHistoryCmd.Flags().Int("limit", 10, "maximum revisions to show")

	settingsCmd.AddCommand(settingsGetCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsHistoryCmd)
	rootCmd.AddCommand(settingsCmd)
}
