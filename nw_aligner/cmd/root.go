// Package cmd is the command line interface of the nwalign application.
package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"cloudeng.io/logging/ctxlog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"NW-Sequence-Alignments/nw_aligner/aligner"
	"NW-Sequence-Alignments/nw_aligner/config"
)

// app is the state shared by every subcommand of one invocation.
type app struct {
	v        *viper.Viper
	cfgFile  string
	settings config.Settings
}

// NewRootCmd returns the nwalign command tree with a fresh set of settings.
func NewRootCmd() *cobra.Command {
	a := &app{v: viper.New()}
	config.SetDefaults(a.v)

	root := &cobra.Command{
		Use:   "nwalign",
		Short: "Global alignment of DNA sequences with the Needleman-Wunsch algorithm",
		Long: `Global alignment of DNA sequences with the Needleman-Wunsch algorithm.

Sequences are scored with a match score and a mismatch score; in the default
linear model every gap position costs one mismatch. Pass --affine to score gap
runs with separate open and extend penalties instead.`,
		Version:           "0.1.0",
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "path to a YAML config file")
	flags.Int("match", config.DefaultMatchScore, "score of two equal symbols")
	flags.Int("mismatch", config.DefaultMismatchScore, "score of two different symbols, and of each gap position in the linear model")
	flags.Bool("affine", false, "score gaps with --gap-open and --gap-extend")
	flags.Int("gap-open", config.DefaultGapOpen, "score of the first position of a gap (affine only)")
	flags.Int("gap-extend", config.DefaultGapExtend, "score of every further position of a gap (affine only)")
	flags.String("alphabet", config.DefaultAlphabet, "dna to accept only A, C, G and T, any to accept every symbol")
	flags.StringP("format", "o", config.DefaultFormat, "output format: text, json or yaml")
	flags.Int("line-width", config.DefaultLineWidth, "wrap text alignments at this many columns, 0 disables wrapping")
	flags.Int("merge-gap", config.DefaultMergeGap, "also report segments merged across indels of at most this length")
	flags.BoolP("verbose", "v", false, "log debug output to stderr")

	for key, name := range map[string]string{
		"scoring.match":      "match",
		"scoring.mismatch":   "mismatch",
		"scoring.affine":     "affine",
		"scoring.gap-open":   "gap-open",
		"scoring.gap-extend": "gap-extend",
		"alphabet":           "alphabet",
		"format":             "format",
		"line-width":         "line-width",
		"merge-gap":          "merge-gap",
		"verbose":            "verbose",
	} {
		if err := a.v.BindPFlag(key, flags.Lookup(name)); err != nil {
			panic(err)
		}
	}

	root.AddCommand(newAlignCmd(a), newScoreCmd(a), newMatrixCmd(a), newBatchCmd(a))
	return root
}

// Execute runs the command tree with the process arguments. This is called
// by main.main().
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}

// setup reads the config file, resolves the settings and installs a logger
// in the command context.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config %s: %w", a.cfgFile, err)
		}
	}
	s, err := config.NewSettings(a.v)
	if err != nil {
		return err
	}
	a.settings = s

	level := slog.LevelInfo
	if s.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = ctxlog.WithLogger(ctx, logger)
	cmd.SetContext(ctxlog.WithAttributes(ctx, "cmd", cmd.Name()))
	return nil
}

func (a *app) scheme() aligner.Scheme {
	sc := a.settings.Scoring
	return aligner.Scheme{
		Match:     sc.Match,
		Mismatch:  sc.Mismatch,
		Affine:    sc.Affine,
		GapOpen:   sc.GapOpen,
		GapExtend: sc.GapExtend,
	}
}

func (a *app) aligner() *aligner.Aligner[byte] {
	if a.settings.Alphabet == "dna" {
		return aligner.NewDNA(a.scheme())
	}
	return aligner.New(a.scheme(), config.GapMarker)
}
