package cmd

import (
	"fmt"

	"cloudeng.io/logging/ctxlog"
	"github.com/spf13/cobra"

	"NW-Sequence-Alignments/nw_aligner/batch"
	"NW-Sequence-Alignments/nw_aligner/common"
	"NW-Sequence-Alignments/nw_aligner/io"
	"NW-Sequence-Alignments/nw_aligner/report"
)

func newBatchCmd(a *app) *cobra.Command {
	var queryPath, refPath string
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Align the records of two FASTA files pairwise",
		Long: `Align record i of the query FASTA file with record i of the reference
FASTA file, for every i. Pairs are aligned concurrently and reported in file
order. Pairs that cannot be aligned are reported with their error and make
the command fail once every pair has been processed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			queries, err := io.ReadRecords(queryPath)
			if err != nil {
				return fmt.Errorf("reading queries: %w", err)
			}
			refs, err := io.ReadRecords(refPath)
			if err != nil {
				return fmt.Errorf("reading references: %w", err)
			}
			if len(queries) != len(refs) {
				return fmt.Errorf("%s has %d records but %s has %d", queryPath, len(queries), refPath, len(refs))
			}
			pairs := make([]common.Pair, len(queries))
			for i := range queries {
				pairs[i] = common.Pair{
					ID:    queries[i].ID + "/" + refs[i].ID,
					Query: queries[i].Seq,
					Ref:   refs[i].Seq,
				}
			}

			s := a.settings
			outcomes, alignErr := batch.Align(ctx, a.aligner(), pairs, s.Workers)
			alns := make([]report.Alignment, len(outcomes))
			failed := 0
			for i, o := range outcomes {
				if o.Err != nil {
					failed++
					alns[i] = report.Failed(o.Pair.ID, o.Err)
					continue
				}
				alns[i] = report.New(o.Pair.ID, o.Result, o.Pair.Query, o.Pair.Ref, s.MergeGap)
			}
			if err := report.Write(cmd.OutOrStdout(), s.Format, s.LineWidth, alns...); err != nil {
				return err
			}
			if alignErr != nil {
				ctxlog.Logger(ctx).Debug("batch failures", "failed", failed, "total", len(pairs))
				return fmt.Errorf("%d of %d pairs failed: %w", failed, len(pairs), alignErr)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&queryPath, "query", "q", "", "FASTA file of query sequences")
	cmd.Flags().StringVarP(&refPath, "ref", "r", "", "FASTA file of reference sequences")
	cmd.Flags().IntP("workers", "w", 0, "number of concurrent alignments, 0 uses every CPU")
	cmd.MarkFlagRequired("query")
	cmd.MarkFlagRequired("ref")
	if err := a.v.BindPFlag("workers", cmd.Flags().Lookup("workers")); err != nil {
		panic(err)
	}
	return cmd
}
