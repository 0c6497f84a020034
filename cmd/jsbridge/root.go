package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"

	"github.com/wippyai/js-bridge/adapter"
	"github.com/wippyai/js-bridge/binding"
	"github.com/wippyai/js-bridge/guest"
	"github.com/wippyai/js-bridge/internal/config"
)

// app is the state shared by every subcommand, built once flags are parsed.
type app struct {
	out        io.Writer
	cfg        *config.Config
	factory    *adapter.Factory
	log        *zap.Logger
	configPath string
	nullable   string
	verbose    bool
	styled     bool
}

func newRootCmd(out io.Writer) *cobra.Command {
	a := &app{out: out}

	root := &cobra.Command{
		Use:           "jsbridge",
		Short:         "Inspect host/script value conversion and its wire encoding",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}
	root.SetOut(out)

	flags := root.PersistentFlags()
	flags.StringVarP(&a.configPath, "config", "c", "", "YAML settings file")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "Log debug output to stderr")
	flags.StringVar(&a.nullable, "nullable-encoding", "", "Nullable encode mode: null or delegate (overrides config)")

	root.AddCommand(
		newEncodeCmd(a),
		newDecodeCmd(a),
		newTypesCmd(a),
		newInspectCmd(a),
		newGuestCmd(a),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg := config.Default()
	if a.configPath != "" {
		var err error
		if cfg, err = config.Load(a.configPath); err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("nullable-encoding") {
		cfg.NullableEncoding = a.nullable
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	a.cfg = cfg

	log, err := newLogger(a.verbose, cfg.Level())
	if err != nil {
		return err
	}
	a.log = log
	adapter.SetLogger(log)
	binding.SetLogger(log)
	guest.SetLogger(log)

	a.factory = adapter.NewFactory(cfg.FactoryOptions()...)
	a.styled = isTerminal(a.out)

	log.Debug("cli configured",
		zap.String("config", a.configPath),
		zap.Stringer("nullable_encoding", a.factory.NullableEncoding()),
		zap.Bool("styled", a.styled))
	return nil
}

func newLogger(verbose bool, level zapcore.Level) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(level)
	return zcfg.Build()
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
