package main

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mordilloSan/srflog/logger"
)

var (
	Version   = "1.0.0"
	GitCommit = "development"
)

var log = logrus.New()

type options struct {
	configFile string
	level      string
	facility   string
	file       string
}

// Sends one message through the syslog shim.
// Usage: srflog [--level N] [--facility local0] [--config file.yaml] <level> <message...>
// Example: srflog --facility local0 warn "disk almost full"
func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	return buildRootCmd(&options{})
}

func buildRootCmd(opts *options) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "srflog <level> <message...>",
		Short: "Send a message to syslog in the OpenSRF log format",
		Long: `srflog writes one message through the OpenSRF logging shim.

Configuration is read from OSRF_LOG_LEVEL, OSRF_LOG_FACILITY and
OSRF_LOG_FILE, then from --config, then from flags.`,
		Args:          cobra.MinimumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.resolve(cmd)
			if err != nil {
				return err
			}
			level, err := logger.ParseLevel(args[0])
			if err != nil {
				return err
			}

			log.Debugf("logging config: %+v", cfg)
			if err := logger.Init(cfg); err != nil {
				return err
			}
			defer logger.Close()

			logger.StandardLogger().Emit(level, strings.Join(args[1:], " "))
			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.configFile, "config", "", "YAML or TOML logging config file")
	flags.StringVar(&opts.level, "level", "", "Severity threshold, a name or 0-4")
	flags.StringVar(&opts.facility, "facility", "", "Syslog facility, local0..local6")
	flags.StringVar(&opts.file, "file", "", "Log file (not implemented, prints a warning)")
	verbose := flags.BoolP("verbose", "v", false, "Print diagnostics")

	rootCmd.PersistentPreRun = func(*cobra.Command, []string) {
		if *verbose {
			log.SetLevel(logrus.DebugLevel)
		}
	}

	rootCmd.AddCommand(newMaskCmd(), newVersionCmd())
	return rootCmd
}

// resolve layers the environment, the config file and explicit flags.
func (o *options) resolve(cmd *cobra.Command) (logger.Config, error) {
	cfg, err := logger.ConfigFromEnv()
	if err != nil {
		return cfg, err
	}
	if o.configFile != "" {
		if cfg, err = logger.LoadConfig(o.configFile); err != nil {
			return cfg, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("level") {
		level, err := logger.ParseLevel(o.level)
		if err != nil {
			return cfg, errors.Wrap(err, "--level")
		}
		cfg.Level = level
	}
	if flags.Changed("facility") {
		cfg.Facility = o.facility
	}
	if flags.Changed("file") {
		cfg.File = o.file
	}
	return cfg, nil
}

func newMaskCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mask <level>",
		Short: "Show the syslog priority mask installed for a threshold",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			level, err := logger.ParseLevel(args[0])
			if err != nil {
				return err
			}
			_, mask := logger.ResolveFacility("", int(level))
			fmt.Fprintf(cmd.OutOrStdout(), "0x%02x %s\n", int(mask), mask)
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "srflog v%s\n", Version)
			fmt.Fprintf(out, "  Git Commit: %s\n", GitCommit)
			fmt.Fprintf(out, "  Go Version: %s\n", runtime.Version())
		},
	}
}
