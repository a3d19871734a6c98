// Package config holds the scoring defaults and the app wide settings that are
// unmarshalled from viper (see nw_aligner/cmd).
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Scoring defaults, the same for every compared implementation.
const (
	DefaultMatchScore    = 1
	DefaultMismatchScore = -1
)

// Affine gap defaults, only used when affine scoring is requested.
const (
	DefaultGapOpen   = -2
	DefaultGapExtend = -1
)

// GapMarker is written into gapped output in place of a symbol.
const GapMarker byte = '-'

// DNAAlphabet is the alphabet validated when alphabet checking is on.
const DNAAlphabet = "ACGT"

// Output settings
const (
	DefaultFormat     = "text"
	DefaultAlphabet   = "dna"
	DefaultLineWidth  = 60
	DefaultMergeGap   = 0
	DefaultNumWorkers = 0 // 0 means GOMAXPROCS
)

// MaxGapRatioDifference bounds how unequal the query and ref gaps between two
// segments may be before they are no longer merged.
const MaxGapRatioDifference = 0.55 // float64

// ScoringConfig is the scoring scheme section.
type ScoringConfig struct {
	Match     int  `mapstructure:"match"`
	Mismatch  int  `mapstructure:"mismatch"`
	Affine    bool `mapstructure:"affine"`
	GapOpen   int  `mapstructure:"gap-open"`
	GapExtend int  `mapstructure:"gap-extend"`
}

// Settings is the root-level settings struct and is a mix of settings
// available in a config file and those available from the command line.
type Settings struct {
	Scoring ScoringConfig `mapstructure:"scoring"`

	// "dna" validates against DNAAlphabet, "any" disables validation
	Alphabet string `mapstructure:"alphabet"`

	// text, json or yaml
	Format string `mapstructure:"format"`

	// width of the wrapped alignment blocks in text output
	LineWidth int `mapstructure:"line-width"`

	// segments separated by at most this many positions are merged, 0 disables
	MergeGap int `mapstructure:"merge-gap"`

	// number of concurrent alignments in batch mode
	Workers int `mapstructure:"workers"`

	Verbose bool `mapstructure:"verbose"`
}

// SetDefaults registers the defaults for every settings key with v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("scoring.match", DefaultMatchScore)
	v.SetDefault("scoring.mismatch", DefaultMismatchScore)
	v.SetDefault("scoring.affine", false)
	v.SetDefault("scoring.gap-open", DefaultGapOpen)
	v.SetDefault("scoring.gap-extend", DefaultGapExtend)
	v.SetDefault("alphabet", DefaultAlphabet)
	v.SetDefault("format", DefaultFormat)
	v.SetDefault("line-width", DefaultLineWidth)
	v.SetDefault("merge-gap", DefaultMergeGap)
	v.SetDefault("workers", DefaultNumWorkers)
	v.SetDefault("verbose", false)
}

// NewSettings returns Settings populated from v, which holds the config file
// values and the command line flags bound to it.
func NewSettings(v *viper.Viper) (Settings, error) {
	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return s, fmt.Errorf("unable to decode settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return s, err
	}
	return s, nil
}

// Validate reports settings that the commands cannot act on.
func (s Settings) Validate() error {
	switch s.Alphabet {
	case "dna", "any":
	default:
		return fmt.Errorf("unknown alphabet %q, want dna or any", s.Alphabet)
	}
	switch s.Format {
	case "text", "json", "yaml":
	default:
		return fmt.Errorf("unknown format %q, want text, json or yaml", s.Format)
	}
	if s.LineWidth < 0 || s.MergeGap < 0 || s.Workers < 0 {
		return fmt.Errorf("line-width, merge-gap and workers must not be negative")
	}
	return nil
}
