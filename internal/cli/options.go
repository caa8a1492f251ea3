// Package cli holds the option structs behind each subcommand: flag
// registration, config-file merging and validation.
package cli

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/pflag"

	"msasnp/internal/alignment"
	"msasnp/internal/cliutil"
	"msasnp/internal/config"
	"msasnp/internal/logging"
	"msasnp/internal/output"
)

// StatsFormats are the accepted values of stats --output.
var StatsFormats = []string{output.FormatText, output.FormatJSON, output.FormatJSONL, output.FormatCBOR, output.FormatFASTA}

// CompositionFormats are the accepted values of composition --output.
var CompositionFormats = []string{output.FormatText, output.FormatJSON, output.FormatCBOR}

// Global holds the persistent flags shared by every subcommand.
type Global struct {
	Config   string
	LogLevel string
	Quiet    bool
}

// Register adds the global flags to fs.
func (g *Global) Register(fs *pflag.FlagSet) {
	fs.StringVar(&g.Config, "config", "", "YAML settings file (flags override its values)")
	fs.StringVar(&g.LogLevel, "log-level", logging.DefaultLevel, "log level: debug|info|warn|error")
	fs.BoolVarP(&g.Quiet, "quiet", "q", false, "only log errors")
}

// ApplyConfig copies config values for flags the user did not set.
func (g *Global) ApplyConfig(fs *pflag.FlagSet, c config.Config) {
	if c.LogLevel != "" && !fs.Changed("log-level") {
		g.LogLevel = c.LogLevel
	}
}

// StatsOptions configures the stats subcommand.
type StatsOptions struct {
	Inputs []string

	// Analysis
	Gap        string
	MaxMissing int
	Threads    int

	// Output
	Output   string
	Sites    string // empty = default for Output
	Records  bool
	NoHeader bool
}

// Register adds the stats flags to fs.
func (o *StatsOptions) Register(fs *pflag.FlagSet) {
	fs.StringVar(&o.Gap, "gap", string(alignment.DefaultGap), "gap symbol (single character)")
	fs.IntVar(&o.MaxMissing, "max-missing", 0, "gaps a column may hold and still be core")
	fs.IntVarP(&o.Threads, "threads", "t", 0, "worker threads for the column pass (0 = all CPUs)")
	fs.StringVarP(&o.Output, "output", "o", output.FormatText, "output format: "+strings.Join(StatsFormats, "|"))
	fs.StringVar(&o.Sites, "sites", "", "per-site rows: none|snp|core-snp|core|all (default none; core-snp for fasta)")
	fs.BoolVar(&o.Records, "records", false, "include per-record composition")
	fs.BoolVar(&o.NoHeader, "no-header", false, "suppress header lines in text output")
}

// ApplyConfig copies config values for flags the user did not set.
func (o *StatsOptions) ApplyConfig(fs *pflag.FlagSet, c config.Config) {
	if c.Gap != "" && !fs.Changed("gap") {
		o.Gap = c.Gap
	}
	if c.MaxMissing != nil && !fs.Changed("max-missing") {
		o.MaxMissing = *c.MaxMissing
	}
	if c.Threads != nil && !fs.Changed("threads") {
		o.Threads = *c.Threads
	}
	if c.Output != "" && !fs.Changed("output") {
		o.Output = c.Output
	}
	if c.Sites != "" && !fs.Changed("sites") {
		o.Sites = c.Sites
	}
}

// Validate checks option values and the input list.
func (o *StatsOptions) Validate() error {
	if err := validateInputs(o.Inputs); err != nil {
		return err
	}
	if len(o.Gap) != 1 {
		return fmt.Errorf("--gap must be a single character, got %q", o.Gap)
	}
	if o.MaxMissing < 0 {
		return errors.New("--max-missing must be >= 0")
	}
	if o.Threads < 0 {
		return errors.New("--threads must be >= 0")
	}
	if !slices.Contains(StatsFormats, o.Output) {
		return fmt.Errorf("invalid --output %q (want %s)", o.Output, strings.Join(StatsFormats, "|"))
	}
	_, err := o.SiteKind()
	return err
}

// SiteKind resolves --sites, applying the per-format default.
func (o *StatsOptions) SiteKind() (alignment.SiteKind, error) {
	if o.Sites == "" {
		if o.Output == output.FormatFASTA {
			return alignment.SitesCoreSNP, nil
		}
		return alignment.SitesNone, nil
	}
	return alignment.ParseSiteKind(o.Sites)
}

// Ignored lists settings that have no effect with the chosen output format.
func (o *StatsOptions) Ignored() []string {
	var out []string
	if o.Output == output.FormatFASTA && o.Records {
		out = append(out, "--records has no effect with --output fasta")
	}
	if o.NoHeader && o.Output != output.FormatText {
		out = append(out, fmt.Sprintf("--no-header has no effect with --output %s", o.Output))
	}
	return out
}

// CompositionOptions configures the composition subcommand.
type CompositionOptions struct {
	Inputs   []string
	Output   string
	NoHeader bool
}

// Register adds the composition flags to fs.
func (o *CompositionOptions) Register(fs *pflag.FlagSet) {
	fs.StringVarP(&o.Output, "output", "o", output.FormatText, "output format: "+strings.Join(CompositionFormats, "|"))
	fs.BoolVar(&o.NoHeader, "no-header", false, "suppress the header line in text output")
}

// Validate checks option values and the input list.
func (o *CompositionOptions) Validate() error {
	if err := validateInputs(o.Inputs); err != nil {
		return err
	}
	if !slices.Contains(CompositionFormats, o.Output) {
		return fmt.Errorf("invalid --output %q (want %s)", o.Output, strings.Join(CompositionFormats, "|"))
	}
	return nil
}

func validateInputs(inputs []string) error {
	if len(inputs) == 0 {
		return errors.New("at least one input file is required")
	}
	if cliutil.CountStdin(inputs) > 1 {
		return errors.New("stdin ('-') may be given only once")
	}
	return nil
}
