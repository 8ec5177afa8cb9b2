// Package cli provides the triscore command line interface.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/triscore/internal/core/ports/driving"
	"github.com/custodia-labs/triscore/internal/logger"
)

// version is set at build time with -ldflags "-X ...cli.version=...".
var version = "dev"

// Services holds the driving ports the commands use.
type Services struct {
	Analyzer driving.Analyzer
	Settings driving.SettingsService
}

// Bootstrap builds the services once flags are parsed.
// It receives the --config path, empty for the default location.
type Bootstrap func(configPath string) (*Services, error)

var (
	bootstrap       Bootstrap
	analyzer        driving.Analyzer
	settingsService driving.SettingsService
)

var (
	yearFlag    string
	configFlag  string
	outputFlag  string
	verboseFlag bool
)

var rootCmd = &cobra.Command{
	Use:   "triscore",
	Short: "Rank countries by a composite of three datasets",
	Long: `triscore downloads three country datasets, removes countries flagged
by a keyword, fills gaps by linear interpolation along the years and ranks
the countries by the product of the three values for the given year.

Sources and the keyword are configured in ~/.triscore/config.toml, through
TRISCORE_* environment variables or with 'triscore settings set'.`,
	Example:           "  triscore --year 2019\n  triscore -y 2019 --output table -v",
	Args:              cobra.NoArgs,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE:              runAnalyze,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "config file (default ~/.triscore/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "log pipeline stages to stderr")
	rootCmd.Flags().StringVarP(&yearFlag, "year", "y", "", "year to perform the analysis on")
	rootCmd.Flags().StringVarP(&outputFlag, "output", "o", outputSeries, "output format: series, table or json")
}

// Execute runs the root command with the process arguments.
func Execute(ctx context.Context, b Bootstrap) error {
	return Run(ctx, b, os.Args[1:], os.Stdout)
}

// Run runs the root command with explicit arguments and output.
func Run(ctx context.Context, b Bootstrap, args []string, out io.Writer) error {
	bootstrap = b
	rootCmd.SetArgs(args)
	rootCmd.SetOut(out)
	defer rootCmd.SetArgs(nil)
	return rootCmd.ExecuteContext(ctx)
}

// SetServices installs services directly, bypassing Bootstrap.
func SetServices(s *Services) {
	bootstrap = nil
	if s == nil {
		analyzer, settingsService = nil, nil
		return
	}
	analyzer = s.Analyzer
	settingsService = s.Settings
}

func setup(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(verboseFlag)
	if bootstrap == nil {
		return nil
	}

	services, err := bootstrap(configFlag)
	if err != nil {
		return err
	}
	analyzer = services.Analyzer
	settingsService = services.Settings
	return nil
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	if analyzer == nil {
		return errors.New("analyzer not configured")
	}
	if yearFlag == "" {
		return errors.New("--year is required")
	}

	render, err := rendererFor(outputFlag)
	if err != nil {
		return err
	}

	ranking, err := analyzer.Analyze(cmd.Context(), yearFlag)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	return render(cmd.OutOrStdout(), ranking)
}
