// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"regexp"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/contfrac/cf"
	"github.com/katalvlaran/contfrac/internal/config"
	"github.com/katalvlaran/contfrac/internal/logging"
	"github.com/katalvlaran/contfrac/internal/parse"
)

// version information
var version = "dev"

// app holds the state shared by all subcommands of one invocation.
type app struct {
	configPath string
	terms      int
	logLevel   string

	log  *zap.Logger
	opts []cf.Option
}

func newRootCmd() *cobra.Command {
	a := &app{log: zap.NewNop()}

	root := &cobra.Command{
		Use:   "cfcalc",
		Short: "Exact arithmetic on continued fractions",
		Long: `cfcalc evaluates continued-fraction expressions exactly.

Operands may be integers (7), rationals (10/7), decimals (3.25),
coefficient lists ([1; 2, 3]), constants (e, sqrt2, phi) or inf.
A negative operand would read as a flag, so operands go after a --
terminator whenever one of them starts with a minus sign. Flags such as
-n come before the --.

Examples:
  cfcalc show sqrt2
  cfcalc calc 10/7 + 1/2
  cfcalc calc sqrt2 '*' sqrt2
  cfcalc cmp e 87/32
  cfcalc convergents e -n 8
  cfcalc calc -- -3 + 1/2
  cfcalc convergents -n 4 -- -22/7`,
		Version:           version,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) { _ = a.log.Sync() },
	}
	root.SetFlagErrorFunc(flagError)
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML configuration file")
	root.PersistentFlags().IntVar(&a.terms, "terms", 0, "coefficients to display (overrides engine.display_terms)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level (overrides log.level)")

	root.AddCommand(
		a.showCmd(),
		a.calcCmd(),
		a.negCmd(),
		a.rcpCmd(),
		a.cmpCmd(),
		a.convergentsCmd(),
	)

	return root
}

// flagError points at the -- terminator when a negative operand was taken
// for a shorthand flag.
func flagError(_ *cobra.Command, err error) error {
	if negativeOperand.MatchString(err.Error()) {
		return fmt.Errorf("%w (negative operands go after --, e.g. cfcalc calc -- -3 + 1)", err)
	}

	return err
}

// negativeOperand matches pflag's complaint about a shorthand that is a digit.
var negativeOperand = regexp.MustCompile(`unknown shorthand flag: '[0-9.]'`)

// setup loads configuration and builds the logger and value options.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if a.terms < 0 {
		return fmt.Errorf("--terms must be ≥ 1, got %d", a.terms)
	}
	if a.terms > 0 {
		cfg.Engine.DisplayTerms = a.terms
	}

	log, err := logging.NewWithWriter(cfg.Log, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	finish, ok := cf.ParseFuseFinish(cfg.Engine.FuseFinish)
	if !ok {
		return fmt.Errorf("unknown engine.fuse_finish %q", cfg.Engine.FuseFinish)
	}

	a.log = log
	a.opts = []cf.Option{
		cf.WithCompareDepth(cfg.Engine.CompareDepth),
		cf.WithDisplayTerms(cfg.Engine.DisplayTerms),
		cf.WithFuseRounds(cfg.Engine.FuseRounds),
		cf.WithExactLimit(cfg.Engine.ExactLimit),
		cf.WithFuseFinish(finish),
		cf.WithLogger(log),
	}
	log.Debug("configuration loaded",
		zap.String("config", a.configPath),
		zap.Int("fuse_rounds", cfg.Engine.FuseRounds),
		zap.Int("display_terms", cfg.Engine.DisplayTerms),
	)

	return nil
}

// operand parses one argument with the configured options.
func (a *app) operand(s string) (*cf.CF, error) {
	x, err := parse.Operand(s, a.opts...)
	if err != nil {
		return nil, err
	}

	return x, nil
}
