package cli

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/triscore/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure the keyword, HTTP options and the three sources.

Use subcommands to show the effective settings or to persist a key.`,
	Args: cobra.NoArgs,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	Args:  cobra.NoArgs,
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Persist a setting",
	Long: `Persist a setting in the config file.

Keys:
  keyword                              keyword flagging countries for exclusion
  http.timeout                         request timeout, e.g. 60s
  http.rate                            requests per second
  http.user_agent                      User-Agent header
  sources.<first|second|third>.url     http(s) URL, file:// URL or path
  sources.<name>.format                delimited or jsonstat
  sources.<name>.delimiter             field delimiter of delimited sources
  sources.<name>.decimal               decimal separator
  sources.<name>.country_column        column holding the country
  sources.<name>.time_column           column holding the year (jsonstat)
  sources.<name>.value_column          column holding the value (jsonstat)
  sources.<name>.drop_columns          comma separated columns to drop
  sources.<name>.match.<column>        keep rows where column equals value
  sources.<name>.insert_year           insert the target year before interpolating`,
	Example: "  triscore settings set keyword provisional\n" +
		"  triscore settings set sources.first.url https://example.org/first.csv",
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()
	cmd.Printf("Config file: %s\n", settingsService.ConfigPath())
	cmd.Println()

	cmd.Println("[General]")
	cmd.Printf("  Keyword: %s\n", orUnset(settings.Keyword))
	cmd.Println()

	cmd.Println("[HTTP]")
	cmd.Printf("  Timeout: %s\n", settings.HTTP.Timeout)
	cmd.Printf("  Rate: %g req/s\n", settings.HTTP.Rate)
	cmd.Printf("  User agent: %s\n", orUnset(settings.HTTP.UserAgent))
	cmd.Println()

	for _, source := range settings.Sources() {
		printSource(cmd, source)
	}

	if keys := settingsService.Overridden(); len(keys) > 0 {
		cmd.Println("[Environment]")
		for _, key := range keys {
			cmd.Printf("  %s (overrides the config file)\n", key)
		}
		cmd.Println()
	}

	if err := settingsService.Validate(); err != nil {
		cmd.Printf("Warning: %v\n", err)
		cmd.Println("Run 'triscore settings set <key> <value>' to fix configuration issues.")
	} else {
		cmd.Println("Configuration is valid.")
	}

	return nil
}

func printSource(cmd *cobra.Command, source domain.SourceSettings) {
	cmd.Printf("[Source: %s]\n", source.Name)
	cmd.Printf("  URL: %s\n", orUnset(source.URL))
	cmd.Printf("  Format: %s\n", source.Format.Description())
	if source.Format == domain.SourceFormatDelimited {
		cmd.Printf("  Delimiter: %q\n", source.Delimiter)
	}
	cmd.Printf("  Decimal: %q\n", source.Decimal)
	cmd.Printf("  Country column: %s\n", source.CountryColumn)
	if source.IsLong() {
		cmd.Printf("  Time column: %s\n", source.TimeColumn)
		cmd.Printf("  Value column: %s\n", source.ValueColumn)
	}
	if len(source.Match) > 0 {
		cmd.Printf("  Match: %s\n", formatMatch(source.Match))
	}
	if len(source.DropColumns) > 0 {
		cmd.Printf("  Drop columns: %s\n", strings.Join(source.DropColumns, ", "))
	}
	if source.InsertYear {
		cmd.Println("  Insert year: yes")
	}
	cmd.Println()
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	key, value := args[0], args[1]
	if err := settingsService.Set(key, value); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}

	cmd.Printf("Set %s = %s\n", key, value)
	return nil
}

// Helper functions.

func orUnset(s string) string {
	if s == "" {
		return "(not set)"
	}
	return s
}

func formatMatch(match map[string]string) string {
	cols := make([]string, 0, len(match))
	for col := range match {
		cols = append(cols, col)
	}
	sort.Strings(cols)

	parts := make([]string, len(cols))
	for i, col := range cols {
		parts[i] = col + "=" + match[col]
	}
	return strings.Join(parts, ", ")
}
