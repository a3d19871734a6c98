package aligner

import (
	"fmt"

	"cloudeng.io/errors"
)

// ErrInvalidInput is matched by every input validation failure.
var ErrInvalidInput = errors.New("invalid input")

// InvalidInputError reports the first offending symbol of a sequence.
type InvalidInputError struct {
	Seq    string // "a" or "b"
	Pos    int
	Symbol any
	Reason string
}

func (e *InvalidInputError) Error() string {
	var sym string
	switch v := e.Symbol.(type) {
	case byte, rune, string:
		sym = fmt.Sprintf("%q", v)
	default:
		sym = fmt.Sprintf("%v", v)
	}
	return fmt.Sprintf("invalid input: %s[%d] = %s: %s", e.Seq, e.Pos, sym, e.Reason)
}

func (e *InvalidInputError) Unwrap() error { return ErrInvalidInput }

func (al *Aligner[S]) validate(a, b []S) error {
	if err := al.validateSeq("a", a); err != nil {
		return err
	}
	return al.validateSeq("b", b)
}

func (al *Aligner[S]) validateSeq(name string, seq []S) error {
	for i, s := range seq {
		if s == al.gap {
			return &InvalidInputError{Seq: name, Pos: i, Symbol: s, Reason: "symbol is the gap marker"}
		}
		if al.alphabet == nil {
			continue
		}
		if _, ok := al.alphabet[s]; !ok {
			return &InvalidInputError{Seq: name, Pos: i, Symbol: s, Reason: "symbol not in alphabet"}
		}
	}
	return nil
}
