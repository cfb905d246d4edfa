package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/axondata/go-pyprints"
)

// app carries state shared between the root command and its subcommands
type app struct {
	cfgFile string
	cfg     Config
	logger  *log.Logger
	client  *pyprints.Client
}

func newRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:   "pyprints",
		Short: "List printers, set the default printer and print PDF files",
		Long: `pyprints drives the bundled python-prints executable.

The executable is looked up under <root>/bin/<platform>/python-prints/.
Settings can come from flags, PYPRINTS_* environment variables
(e.g. PYPRINTS_ROOT, PYPRINTS_LENIENT) or a config file.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (YAML, TOML or JSON)")
	flags.String("root", "", "install root containing the bin/ bundle (default $PYPRINTS_ROOT or the program directory)")
	flags.String("platform", "", "bundle platform to run: windows, darwin or linux (default: host)")
	flags.Bool("all-platforms", false, "use the windows/mac/linux bundle layout instead of windows only")
	flags.Bool("lenient", false, "skip the absolute-path and existence checks before printing")
	flags.BoolP("verbose", "v", false, "enable debug logging")
	flags.String("spool-dir", "", "directory used to stage documents read from stdin")
	flags.Duration("debounce", pyprints.DefaultWatchDebounce, "settle time before a dropped file is printed")

	cmd.AddCommand(
		newListCmd(a),
		newSetDefaultCmd(a),
		newPrintCmd(a),
		newPrintAllCmd(a),
		newWatchCmd(a),
	)

	return cmd
}

// setup loads configuration and builds the client before any subcommand runs
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd.Flags(), a.cfgFile)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = cfg.newLogger(cmd.ErrOrStderr())

	opts, err := cfg.clientOptions(a.logger)
	if err != nil {
		return err
	}

	client, err := pyprints.New(opts...)
	if err != nil {
		return fmt.Errorf("creating client: %w", err)
	}
	a.client = client

	a.logger.Debug("client ready", "root", client.Root, "platform", client.Platform, "strict", client.StrictPaths)
	return nil
}
