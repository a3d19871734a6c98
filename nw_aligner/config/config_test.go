package config

import (
	"strings"
	"testing"

	"github.com/spf13/viper"
)

func TestNewSettingsDefaults(t *testing.T) {
	v := viper.New()
	SetDefaults(v)
	s, err := NewSettings(v)
	if err != nil {
		t.Fatal(err)
	}
	want := Settings{
		Scoring:   ScoringConfig{Match: 1, Mismatch: -1, GapOpen: -2, GapExtend: -1},
		Alphabet:  "dna",
		Format:    "text",
		LineWidth: 60,
	}
	if s != want {
		t.Errorf("got %+v, want %+v", s, want)
	}
}

func TestNewSettingsFromYAML(t *testing.T) {
	v := viper.New()
	SetDefaults(v)
	v.SetConfigType("yaml")
	cfg := `
scoring:
  match: 5
  affine: true
  gap-extend: -3
alphabet: any
workers: 4
`
	if err := v.ReadConfig(strings.NewReader(cfg)); err != nil {
		t.Fatal(err)
	}
	s, err := NewSettings(v)
	if err != nil {
		t.Fatal(err)
	}
	if s.Scoring.Match != 5 || s.Scoring.Mismatch != -1 || !s.Scoring.Affine || s.Scoring.GapExtend != -3 {
		t.Errorf("scoring: %+v", s.Scoring)
	}
	if s.Alphabet != "any" || s.Workers != 4 {
		t.Errorf("got %+v", s)
	}
}

func TestValidate(t *testing.T) {
	for _, tc := range []struct {
		name string
		mod  func(*Settings)
		ok   bool
	}{
		{"defaults", func(*Settings) {}, true},
		{"yaml", func(s *Settings) { s.Format = "yaml" }, true},
		{"bad format", func(s *Settings) { s.Format = "csv" }, false},
		{"bad alphabet", func(s *Settings) { s.Alphabet = "protein" }, false},
		{"negative workers", func(s *Settings) { s.Workers = -1 }, false},
	} {
		s := Settings{Alphabet: DefaultAlphabet, Format: DefaultFormat}
		tc.mod(&s)
		if err := s.Validate(); (err == nil) != tc.ok {
			t.Errorf("%s: got %v", tc.name, err)
		}
	}
}
