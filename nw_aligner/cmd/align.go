package cmd

import (
	"context"
	"fmt"
	"time"

	"cloudeng.io/logging/ctxlog"
	"github.com/spf13/cobra"

	"NW-Sequence-Alignments/nw_aligner/io"
	"NW-Sequence-Alignments/nw_aligner/report"
	"NW-Sequence-Alignments/nw_aligner/sequence"
)

// pairFlags select the two sequences of the align, score and matrix commands.
type pairFlags struct {
	query   string
	ref     string
	revcomp bool
}

func (p *pairFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&p.query, "query", "q", "", "path to the query sequence (plain or FASTA, - for stdin)")
	cmd.Flags().StringVarP(&p.ref, "ref", "r", "", "path to the reference sequence (plain or FASTA)")
	cmd.Flags().BoolVar(&p.revcomp, "revcomp", false, "align against the reverse complement of the reference")
	cmd.MarkFlagsRequiredTogether("query", "ref")
}

// load returns the query and reference, either from the files named by the
// flags or from two literal sequences given as arguments.
func (p *pairFlags) load(ctx context.Context, args []string) ([]byte, []byte, error) {
	var query, ref []byte
	switch {
	case p.query != "" && len(args) == 0:
		var err error
		if query, err = io.ReadSequence(p.query); err != nil {
			return nil, nil, fmt.Errorf("reading query: %w", err)
		}
		if ref, err = io.ReadSequence(p.ref); err != nil {
			return nil, nil, fmt.Errorf("reading reference: %w", err)
		}
	case p.query == "" && len(args) == 2:
		query, ref = sequence.Normalize([]byte(args[0])), sequence.Normalize([]byte(args[1]))
	default:
		return nil, nil, fmt.Errorf("give either two sequences or --query and --ref")
	}
	if p.revcomp {
		ref = sequence.ReverseComplement(ref)
	}
	ctxlog.Logger(ctx).Debug("loaded sequences",
		"query_len", len(query), "ref_len", len(ref),
		"query_gc", sequence.CalculateGCContent(query), "revcomp", p.revcomp)
	return query, ref, nil
}

func newAlignCmd(a *app) *cobra.Command {
	var pf pairFlags
	cmd := &cobra.Command{
		Use:   "align [query ref]",
		Short: "Align two sequences and print the alignment",
		Long: `Align two sequences and print one optimal global alignment.

When several alignments share the best score the traceback prefers a
diagonal step, then a gap in the query, then a gap in the reference, so the
output is always the same for the same input.`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			query, ref, err := pf.load(ctx, args)
			if err != nil {
				return err
			}
			start := time.Now()
			res, err := a.aligner().Align(query, ref)
			if err != nil {
				return err
			}
			ctxlog.Logger(ctx).Debug("aligned", "score", res.Score, "columns", res.Len(), "elapsed", time.Since(start))
			s := a.settings
			return report.Write(cmd.OutOrStdout(), s.Format, s.LineWidth, report.New("", res, query, ref, s.MergeGap))
		},
	}
	pf.register(cmd)
	return cmd
}

func newScoreCmd(a *app) *cobra.Command {
	var pf pairFlags
	cmd := &cobra.Command{
		Use:   "score [query ref]",
		Short: "Print the optimal alignment score only",
		Long: `Print the optimal alignment score without recovering the alignment.
Only two rows of the matrix are kept, which makes this suitable for long
sequences.`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			query, ref, err := pf.load(cmd.Context(), args)
			if err != nil {
				return err
			}
			score, err := a.aligner().Score(query, ref)
			if err != nil {
				return err
			}
			return report.WriteScore(cmd.OutOrStdout(), a.settings.Format, "", score)
		},
	}
	pf.register(cmd)
	return cmd
}

func newMatrixCmd(a *app) *cobra.Command {
	var pf pairFlags
	cmd := &cobra.Command{
		Use:   "matrix [query ref]",
		Short: "Print the filled dynamic programming matrix",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			query, ref, err := pf.load(cmd.Context(), args)
			if err != nil {
				return err
			}
			m, err := a.aligner().Matrix(query, ref)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), m.String())
			return err
		},
	}
	pf.register(cmd)
	return cmd
}
