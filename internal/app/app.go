// Package app wires the cobra command tree: global flags, config loading,
// logger setup and the stats, composition and kmer subcommands.
package app

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"msasnp/internal/alignment"
	"msasnp/internal/appcore"
	"msasnp/internal/cli"
	"msasnp/internal/cliutil"
	"msasnp/internal/config"
	"msasnp/internal/kmer"
	"msasnp/internal/logging"
	"msasnp/internal/output"
	"msasnp/internal/version"
	"msasnp/internal/writers"
)

// runState carries what a subcommand needs beyond its own flags.
type runState struct {
	global cli.Global
	stdout io.Writer
	stderr io.Writer
	code   int
}

// setup loads the config file and builds the logger.
func (s *runState) setup(cmd *cobra.Command) (config.Config, *log.Logger, error) {
	cfg, err := config.Load(s.global.Config)
	if err != nil {
		return config.Config{}, nil, err
	}
	s.global.ApplyConfig(cmd.Flags(), cfg)
	logger, err := logging.New(s.stderr, s.global.LogLevel, s.global.Quiet)
	if err != nil {
		return config.Config{}, nil, err
	}
	if s.global.Config != "" {
		logger.Debug("loaded config", "path", s.global.Config)
	}
	return cfg, logger, nil
}

func newRootCommand(s *runState) *cobra.Command {
	root := &cobra.Command{
		Use:   "msasnp",
		Short: "SNP and core-genome statistics for multiple sequence alignments",
		Long: `msasnp reads aligned FASTA files (all records the same length) and reports,
per file, how many columns are core (no gaps), how many are SNPs (two or more
distinct residues), and how many are both.

Inputs may be plain, gzip or zstd compressed; "-" reads standard input.`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	s.global.Register(root.PersistentFlags())

	root.AddCommand(newStatsCommand(s))
	root.AddCommand(newCompositionCommand(s))
	root.AddCommand(newKmerCommand(s))
	return root
}

func newStatsCommand(s *runState) *cobra.Command {
	var opts cli.StatsOptions

	cmd := &cobra.Command{
		Use:   "stats [flags] <alignment.fa>...",
		Short: "Classify alignment columns as SNP and/or core",
		Example: `  msasnp stats core.aln
  msasnp stats --sites core-snp --records -o json core.aln
  msasnp stats -o fasta core.aln > snps.aln
  zcat core.aln.gz | msasnp stats -`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := s.setup(cmd)
			if err != nil {
				return err
			}
			opts.ApplyConfig(cmd.Flags(), cfg)
			if opts.Inputs, err = cliutil.ExpandPositionals(args); err != nil {
				return err
			}
			if err := opts.Validate(); err != nil {
				return err
			}
			sites, _ := opts.SiteKind()
			for _, msg := range opts.Ignored() {
				logger.Warn(msg)
			}

			s.code = appcore.RunStats(cmd.Context(), s.stdout, s.stderr, logger, appcore.StatsOptions{
				Inputs: opts.Inputs,
				Matrix: alignment.Options{
					Gap:        opts.Gap[0],
					MaxMissing: opts.MaxMissing,
					Threads:    opts.Threads,
				},
				Writer: writers.ReportConfig{
					Format:     opts.Output,
					Header:     !opts.NoHeader,
					Report:     output.ReportOptions{Records: opts.Records, Sites: sites},
					FASTASites: sites,
				},
			})
			return nil
		},
	}
	opts.Register(cmd.Flags())
	return cmd
}

func newCompositionCommand(s *runState) *cobra.Command {
	var opts cli.CompositionOptions

	cmd := &cobra.Command{
		Use:   "composition [flags] <file.fa>...",
		Short: "Count residues per record (records may differ in length)",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, logger, err := s.setup(cmd)
			if err != nil {
				return err
			}
			if opts.Inputs, err = cliutil.ExpandPositionals(args); err != nil {
				return err
			}
			if err := opts.Validate(); err != nil {
				return err
			}
			s.code = appcore.RunComposition(cmd.Context(), s.stdout, s.stderr, logger, appcore.CompositionOptions{
				Inputs: opts.Inputs,
				Format: opts.Output,
				Header: !opts.NoHeader,
			})
			return nil
		},
	}
	opts.Register(cmd.Flags())
	return cmd
}

func newKmerCommand(s *runState) *cobra.Command {
	return &cobra.Command{
		Use:   "kmer <kmer>...",
		Short: "Print the canonical form of each k-mer",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			outw := bufio.NewWriter(s.stdout)
			for _, k := range args {
				fmt.Fprintf(outw, "%s\t%s\n", k, kmer.Canonical(k))
			}
			if err := writers.IgnoreBrokenPipe(outw.Flush()); err != nil {
				fmt.Fprintf(s.stderr, "error: %v\n", err)
				s.code = appcore.ExitFailure
			}
			return nil
		},
	}
}

// RunContext executes argv and returns the process exit code. Usage and
// configuration errors exit 2.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	s := &runState{stdout: stdout, stderr: stderr}
	root := newRootCommand(s)
	root.SetArgs(argv)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.ExecuteContext(parent); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		fmt.Fprintf(stderr, "Run '%s --help' for usage.\n", root.Name())
		return appcore.ExitUsage
	}
	return s.code
}

// Run is RunContext with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
