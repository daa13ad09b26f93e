package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thatcatcamp/themekit/internal/export"
	"github.com/thatcatcamp/themekit/internal/tailwind"
	"github.com/thatcatcamp/themekit/internal/themes"
)

var cssCmd = &cobra.Command{
	Use:   "css",
	Short: "Generate the theme stylesheet",
	Long:  "Write CSS custom properties for every theme mode and color preset, followed by the base element styles",
	Run: func(cmd *cobra.Command, args []string) {
		if err := initConfig(); err != nil {
			fail("%v", err)
		}
		reg, err := loadRegistry(newLogger())
		if err != nil {
			fail("%v", err)
		}

		varsOnly, _ := cmd.Flags().GetBool("vars-only")
		var css string
		if varsOnly {
			css, err = themes.GenerateCSS(reg)
		} else {
			css, err = themes.Stylesheet(reg)
		}
		if err != nil {
			fail("%v", err)
		}
		if err := themes.LintCSS(css); err != nil {
			fail("generated stylesheet is invalid: %v", err)
		}

		out, _ := cmd.Flags().GetString("output")
		if err := writeOutput(out, []byte(css)); err != nil {
			fail("%v", err)
		}
	},
}

var tailwindCmd = &cobra.Command{
	Use:   "tailwind",
	Short: "Generate the utility framework config",
	Long:  "Write a utility framework configuration whose scales reference the theme variables",
	Run: func(cmd *cobra.Command, args []string) {
		if err := initConfig(); err != nil {
			fail("%v", err)
		}
		log := newLogger()
		reg, err := loadRegistry(log)
		if err != nil {
			fail("%v", err)
		}

		bridge := tailwind.New(reg.Contract(), log)
		data, err := tailwind.MarshalConfig(bridge.BuildConfig(themes.BreakpointTokens()))
		if err != nil {
			fail("%v", err)
		}

		out, _ := cmd.Flags().GetString("output")
		if err := writeOutput(out, append(data, '\n')); err != nil {
			fail("%v", err)
		}
	},
}

var tokensCmd = &cobra.Command{
	Use:   "tokens",
	Short: "Dump resolved design tokens",
	Long: `Dump the tokens for one mode and preset as JSON, YAML or TOML.
Mode and preset default to the theme.* config values.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := initConfig(); err != nil {
			fail("%v", err)
		}
		log := newLogger()
		reg, err := loadRegistry(log)
		if err != nil {
			fail("%v", err)
		}

		defaults := themeDefaults(log)
		modeName, _ := cmd.Flags().GetString("mode")
		if modeName == "" {
			modeName = string(defaults.ThemeMode)
		}
		presetName, _ := cmd.Flags().GetString("preset")
		if presetName == "" {
			presetName = string(defaults.ThemeColorPresets)
		}
		mode, err := themes.ParseMode(modeName)
		if err != nil {
			fail("%v", err)
		}
		preset, err := themes.ParsePreset(presetName)
		if err != nil {
			fail("%v", err)
		}
		formatName, _ := cmd.Flags().GetString("format")
		format, err := export.ParseFormat(formatName)
		if err != nil {
			fail("%v", err)
		}

		tree := reg.Resolve(mode, preset)
		if contract, _ := cmd.Flags().GetBool("contract"); contract {
			tree = reg.Contract()
		}
		data, err := export.Marshal(tree, format)
		if err != nil {
			fail("encoding tokens: %v", err)
		}

		out, _ := cmd.Flags().GetString("output")
		if err := writeOutput(out, data); err != nil {
			fail("%v", err)
		}
	},
}

func init() {
	cssCmd.Flags().StringP("output", "o", "", "output file (default stdout)")
	cssCmd.Flags().Bool("vars-only", false, "omit base element styles")

	tailwindCmd.Flags().StringP("output", "o", "", "output file (default stdout)")

	tokensCmd.Flags().String("mode", "", fmt.Sprintf("theme mode %v", themes.Modes()))
	tokensCmd.Flags().String("preset", "", fmt.Sprintf("color preset %v", themes.Presets()))
	tokensCmd.Flags().StringP("format", "f", string(export.JSON), fmt.Sprintf("output format %v", export.Formats()))
	tokensCmd.Flags().Bool("contract", false, "dump the value-less contract instead")
	tokensCmd.Flags().StringP("output", "o", "", "output file (default stdout)")

	rootCmd.AddCommand(cssCmd)
	rootCmd.AddCommand(tailwindCmd)
	rootCmd.AddCommand(tokensCmd)
}
