// Package report renders alignments as wrapped text, JSON lines or YAML.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"NW-Sequence-Alignments/nw_aligner/aligner"
	"NW-Sequence-Alignments/nw_aligner/common"
	"NW-Sequence-Alignments/nw_aligner/config"
	"NW-Sequence-Alignments/nw_aligner/merging"
	"NW-Sequence-Alignments/nw_aligner/regions"
	"NW-Sequence-Alignments/nw_aligner/sequence"
)

// Alignment is the printable form of one alignment.
type Alignment struct {
	ID      string           `json:"id,omitempty" yaml:"id,omitempty"`
	Score   int              `json:"score" yaml:"score"`
	Query   string           `json:"query" yaml:"query"`
	Ref     string           `json:"ref" yaml:"ref"`
	QueryGC float64          `json:"query_gc" yaml:"query_gc"`
	RefGC   float64          `json:"ref_gc" yaml:"ref_gc"`
	Summary regions.Summary  `json:"summary" yaml:"summary"`
	Merged  []common.Segment `json:"merged,omitempty" yaml:"merged,omitempty"`
	Error   string           `json:"error,omitempty" yaml:"error,omitempty"`
}

// New builds the printable form of res. When mergeGap is positive the
// ungapped segments are also reported merged across short indels.
func New(id string, res aligner.Result[byte], query, ref []byte, mergeGap int) Alignment {
	a, b := aligner.Strings(res)
	out := Alignment{
		ID:      id,
		Score:   res.Score,
		Query:   a,
		Ref:     b,
		QueryGC: sequence.CalculateGCContent(query),
		RefGC:   sequence.CalculateGCContent(ref),
		Summary: regions.Summarize(res),
	}
	if mergeGap > 0 {
		out.Merged = merging.MergeAdjacentSegments(out.Summary.Segments, mergeGap)
	}
	return out
}

// Failed is the printable form of a pair that could not be aligned.
func Failed(id string, err error) Alignment {
	return Alignment{ID: id, Error: err.Error()}
}

// Write renders alns to w in format (text, json or yaml). Text output wraps
// the alignment rows at width columns, 0 disables wrapping.
func Write(w io.Writer, format string, width int, alns ...Alignment) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		for _, a := range alns {
			if err := enc.Encode(a); err != nil {
				return err
			}
		}
		return nil
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(alns); err != nil {
			return err
		}
		return enc.Close()
	case "text", "":
		for i, a := range alns {
			if i > 0 {
				if _, err := fmt.Fprintln(w); err != nil {
					return err
				}
			}
			if err := writeText(w, width, a); err != nil {
				return err
			}
		}
		return nil
	}
	return fmt.Errorf("unknown format %q", format)
}

// WriteScore renders a bare score.
func WriteScore(w io.Writer, format, id string, score int) error {
	v := struct {
		ID    string `json:"id,omitempty" yaml:"id,omitempty"`
		Score int    `json:"score" yaml:"score"`
	}{id, score}
	switch format {
	case "json":
		return json.NewEncoder(w).Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case "text", "":
		if id != "" {
			_, err := fmt.Fprintf(w, "%s\t%d\n", id, score)
			return err
		}
		_, err := fmt.Fprintln(w, score)
		return err
	}
	return fmt.Errorf("unknown format %q", format)
}

func writeText(w io.Writer, width int, a Alignment) error {
	var sb strings.Builder
	if a.ID != "" {
		fmt.Fprintf(&sb, "# %s\n", a.ID)
	}
	if a.Error != "" {
		fmt.Fprintf(&sb, "error: %s\n", a.Error)
		_, err := io.WriteString(w, sb.String())
		return err
	}
	s := a.Summary
	fmt.Fprintf(&sb, "score: %d\n", a.Score)
	fmt.Fprintf(&sb, "length: %d  matches: %d  mismatches: %d  gaps: %d (%d opened)\n",
		s.Columns, s.Matches, s.Mismatches, s.Insertions+s.Deletions, s.GapOpens)
	fmt.Fprintf(&sb, "identity: %.2f%%  coverage: %.2f%%  GC: %.4f / %.4f\n",
		100*s.Identity, 100*s.Coverage, a.QueryGC, a.RefGC)
	fmt.Fprintf(&sb, "cigar: %s\n", s.CIGAR)
	fmt.Fprintf(&sb, "segments: %s\n", regions.FormatSegments(s.Segments))
	if a.Merged != nil {
		fmt.Fprintf(&sb, "merged: %s\n", regions.FormatSegments(a.Merged))
	}
	bar := matchBar(a.Query, a.Ref)
	if width <= 0 {
		width = max(len(a.Query), 1)
	}
	for start := 0; start < len(a.Query); start += width {
		end := min(start+width, len(a.Query))
		fmt.Fprintf(&sb, "\n%s\n%s\n%s\n", a.Query[start:end], bar[start:end], a.Ref[start:end])
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// matchBar marks each column with '|' for a match, '.' for a mismatch and a
// space for a gap.
func matchBar(a, b string) string {
	bar := make([]byte, len(a))
	for i := range bar {
		switch {
		case a[i] == config.GapMarker || b[i] == config.GapMarker:
			bar[i] = ' '
		case a[i] == b[i]:
			bar[i] = '|'
		default:
			bar[i] = '.'
		}
	}
	return string(bar)
}
