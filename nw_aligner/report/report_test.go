package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"NW-Sequence-Alignments/nw_aligner/aligner"
)

func example(t *testing.T, mergeGap int) Alignment {
	t.Helper()
	res, err := aligner.NeedlemanWunsch("ACGT", "AGT", 1, -1)
	if err != nil {
		t.Fatalf("align: %v", err)
	}
	return New("ex", res, []byte("ACGT"), []byte("AGT"), mergeGap)
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, "text", 0, example(t, 0)); err != nil {
		t.Fatal(err)
	}
	want := `# ex
score: 2
length: 4  matches: 3  mismatches: 0  gaps: 1 (1 opened)
identity: 75.00%  coverage: 75.00%  GC: 0.5000 / 0.3333
cigar: 1M1I2M
segments: [(0, 1, 0, 1), (2, 4, 1, 3)]

ACGT
| ||
A-GT
`
	if got := buf.String(); got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
}

func TestWriteTextWrapped(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, "text", 3, example(t, 2)); err != nil {
		t.Fatal(err)
	}
	got := buf.String()
	for _, want := range []string{"merged: [(0, 4, 0, 3)]\n", "\nACG\n| |\nA-G\n", "\nT\n|\nT\n"} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in\n%s", want, got)
		}
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, "json", 0, example(t, 0), Failed("bad", errors.New("boom"))); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 json lines, got %d", len(lines))
	}
	var a Alignment
	if err := json.Unmarshal([]byte(lines[0]), &a); err != nil {
		t.Fatal(err)
	}
	if a.Score != 2 || a.Query != "ACGT" || a.Ref != "A-GT" || a.Summary.CIGAR != "1M1I2M" {
		t.Errorf("got %+v", a)
	}
	if !strings.Contains(lines[1], `"error":"boom"`) {
		t.Errorf("got %s", lines[1])
	}
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, "yaml", 0, example(t, 0)); err != nil {
		t.Fatal(err)
	}
	var alns []Alignment
	if err := yaml.Unmarshal(buf.Bytes(), &alns); err != nil {
		t.Fatalf("%v\n%s", err, buf.String())
	}
	if len(alns) != 1 || alns[0].Score != 2 || len(alns[0].Summary.Segments) != 2 {
		t.Errorf("got %+v", alns)
	}
	if !strings.Contains(buf.String(), "query_start: 2") {
		t.Errorf("segments not rendered with yaml tags:\n%s", buf.String())
	}
}

func TestWriteScore(t *testing.T) {
	for _, tc := range []struct{ format, id, want string }{
		{"text", "", "-3\n"},
		{"text", "p1", "p1\t-3\n"},
		{"json", "p1", `{"id":"p1","score":-3}` + "\n"},
		{"yaml", "", "score: -3\n"},
	} {
		var buf bytes.Buffer
		if err := WriteScore(&buf, tc.format, tc.id, -3); err != nil {
			t.Fatal(err)
		}
		if got := buf.String(); got != tc.want {
			t.Errorf("%s: got %q, want %q", tc.format, got, tc.want)
		}
	}
}

func TestUnknownFormat(t *testing.T) {
	if err := Write(&bytes.Buffer{}, "xml", 0); err == nil {
		t.Error("expected an error")
	}
}
