package io

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"

	"NW-Sequence-Alignments/nw_aligner/sequence"
)

// Record is one named sequence.
type Record struct {
	ID  string
	Seq []byte
}

// ReadSequence reads a DNA sequence from a file. Plain files hold the bare
// sequence, possibly wrapped over several lines; FASTA files yield their
// first record. "-" reads stdin.
func ReadSequence(filePath string) ([]byte, error) {
	recs, err := ReadRecords(filePath)
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return []byte{}, nil
	}
	return recs[0].Seq, nil
}

// ReadRecords reads every record in a FASTA file, transparently
// decompressing ".gz" files. A file without a '>' header is returned as a
// single record named after the file.
func ReadRecords(filePath string) ([]Record, error) {
	rc, err := open(filePath)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	recs, err := parse(rc, filePath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filePath, err)
	}
	return recs, nil
}

func open(filePath string) (io.ReadCloser, error) {
	var rc io.ReadCloser = os.Stdin
	if filePath != "-" {
		fh, err := os.Open(filePath)
		if err != nil {
			return nil, err
		}
		rc = fh
	}
	if !strings.HasSuffix(filePath, ".gz") {
		return rc, nil
	}
	gz, err := gzip.NewReader(rc)
	if err != nil {
		rc.Close()
		return nil, fmt.Errorf("%s: %w", filePath, err)
	}
	return struct {
		io.Reader
		io.Closer
	}{gz, rc}, nil
}

func parse(r io.Reader, name string) ([]Record, error) {
	var (
		recs []Record
		id   string
		buf  bytes.Buffer
		seen bool
	)
	flush := func() {
		if seen {
			recs = append(recs, Record{ID: id, Seq: sequence.Normalize(buf.Bytes())})
		}
		buf.Reset()
	}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1<<30)
	for sc.Scan() {
		line := sc.Bytes()
		if len(line) > 0 && line[0] == '>' {
			flush()
			seen = true
			fields := strings.Fields(string(line[1:]))
			id = fmt.Sprintf("seq%d", len(recs)+1)
			if len(fields) > 0 {
				id = fields[0]
			}
			continue
		}
		if !seen && len(bytes.TrimSpace(line)) > 0 {
			seen, id = true, name
		}
		buf.Write(line)
		buf.WriteByte('\n')
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	flush()
	return recs, nil
}
