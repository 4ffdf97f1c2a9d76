package cmd

import (
	"bufio"
	"fmt"

	"dirtree/internal/config"
	"dirtree/internal/errors"
	"dirtree/internal/log"
	"dirtree/internal/resolve"
	"dirtree/internal/tree"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// Version is reported by --version.
const Version = "1.0.0"

type rootOptions struct {
	cfgFile     string
	files       bool
	ascii       bool
	debug       bool
	logFormat   string
	writeConfig string
}

// NewRootCmd creates the dirtree command.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "dirtree [path]",
		Short: "Graphically displays the directory structure of a path",
		Long: `Graphically displays the directory structure of a path
(silently ignores contents of unreadable directories)`,
		Version:       Version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoot(cmd, args, opts)
		},
	}

	rootCmd.Flags().BoolVarP(&opts.files, "files", "f", false, "Displays the names of the files in each directory")
	rootCmd.Flags().BoolVarP(&opts.ascii, "ascii", "a", false, "Uses ASCII instead of extended characters")
	rootCmd.Flags().StringVar(&opts.cfgFile, "config", "", "config file (default is $HOME/.config/dirtree/config.yaml)")
	rootCmd.Flags().BoolVar(&opts.debug, "debug", false, "Log skipped entries and other diagnostics to stderr")
	rootCmd.Flags().StringVar(&opts.logFormat, "log-format", "", "Log format: text or json")
	rootCmd.Flags().StringVar(&opts.writeConfig, "write-config", "", "Write the effective configuration to this file and exit")

	return rootCmd
}

// Execute runs the root command with os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

func runRoot(cmd *cobra.Command, args []string, opts *rootOptions) error {
	cfg, configErr := loadConfig(opts.cfgFile)
	applyFlags(cmd, cfg, opts)
	if err := cfg.Validate(); err != nil {
		return err
	}

	logOpts := []log.Option{log.WithOutput(cmd.ErrOrStderr()), log.WithLevel(cfg.Logging.Level)}
	if cfg.Logging.Format == "json" {
		logOpts = append(logOpts, log.WithJSON())
	}
	log.Configure(logOpts...)

	if configErr != nil {
		log.LogWithError(configErr).Warn("using default settings")
	}

	if opts.writeConfig != "" {
		if err := config.SaveConfig(cfg, opts.writeConfig); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Configuration written to %s\n", opts.writeConfig)
		return nil
	}

	raw, given := "", false
	if len(args) > 0 {
		raw, given = args[0], true
	}
	root, err := resolve.Resolve(raw, given)
	if err != nil {
		log.LogWithError(err).Debug("root resolution failed")
		return err
	}
	log.LogWithFields(log.F("path", root.Path), log.F("mode", cfg.Traversal.Mode)).Debug("printing tree")

	out := bufio.NewWriter(cmd.OutOrStdout())
	printer := tree.NewPrinter(afero.NewOsFs(), out, tree.Options{
		ShowFiles: cfg.Display.Files,
		Glyphs:    tree.Glyphs(cfg.Display.ASCII),
		UseStack:  cfg.Traversal.Mode == config.TraversalStack,
	})
	if err := printer.PrintTree(root); err != nil {
		return errors.Wrap(err, "unable to write output")
	}
	if err := out.Flush(); err != nil {
		return errors.Wrap(err, "unable to write output")
	}
	return nil
}

// loadConfig returns defaults alongside the error when the file is unusable.
func loadConfig(cfgFile string) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if cfgFile != "" {
		cfg, err = config.LoadConfigFile(cfgFile)
	} else {
		cfg, err = config.LoadConfig()
	}
	if err != nil {
		return config.New(), err
	}
	return cfg, nil
}

// applyFlags overrides config values with flags set on the command line.
func applyFlags(cmd *cobra.Command, cfg *config.Config, opts *rootOptions) {
	flags := cmd.Flags()
	if flags.Changed("files") {
		cfg.Display.Files = opts.files
	}
	if flags.Changed("ascii") {
		cfg.Display.ASCII = opts.ascii
	}
	if flags.Changed("debug") && opts.debug {
		cfg.Logging.Level = "debug"
	}
	if flags.Changed("log-format") {
		cfg.Logging.Format = opts.logFormat
	}
}
