package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
	"github.com/thatcatcamp/themekit/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage themekit configuration",
	Long:  "View and modify themekit configuration values",
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := initConfig(); err != nil {
			fail("%v", err)
		}

		value := config.GetString(args[0])
		fmt.Println(value)
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		if err := initConfig(); err != nil {
			fail("%v", err)
		}

		if err := config.Set(args[0], args[1]); err != nil {
			fail("setting config: %v", err)
		}

		fmt.Printf("Set %s = %s\n", args[0], args[1])
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all configuration values",
	Run: func(cmd *cobra.Command, args []string) {
		if err := initConfig(); err != nil {
			fail("%v", err)
		}

		for _, line := range flatten("", config.GetAll()) {
			fmt.Println(line)
		}
	},
}

// flatten renders nested config sections as sorted "a.b: value" lines.
func flatten(prefix string, m map[string]interface{}) []string {
	var lines []string
	for key, value := range m {
		if prefix != "" {
			key = prefix + "." + key
		}
		if sub, ok := value.(map[string]interface{}); ok {
			lines = append(lines, flatten(key, sub)...)
			continue
		}
		lines = append(lines, fmt.Sprintf("%s: %v", key, value))
	}
	sort.Strings(lines)
	return lines
}

func init() {
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configListCmd)
	rootCmd.AddCommand(configCmd)
}
