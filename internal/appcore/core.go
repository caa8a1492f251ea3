// Package appcore runs the analysis commands: open each input, build its
// alignment matrix, hand the result to a writer, and map the outcome to an
// exit code.
package appcore

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"msasnp/internal/alignment"
	"msasnp/internal/composition"
	"msasnp/internal/fasta"
	"msasnp/internal/output"
	"msasnp/internal/runutil"
	"msasnp/internal/writers"
	"msasnp/pkg/api"
)

// Exit codes.
const (
	ExitOK          = 0
	ExitUsage       = 2
	ExitFailure     = 3
	ExitInterrupted = 130
)

// StatsOptions configures RunStats.
type StatsOptions struct {
	Inputs []string
	Matrix alignment.Options // Source is set per input
	Writer writers.ReportConfig
}

// RunStats analyzes each input in order and streams one report per input.
// Processing stops at the first failing input.
func RunStats(ctx context.Context, stdout, stderr io.Writer, logger *log.Logger, o StatsOptions) int {
	outw := bufio.NewWriter(stdout)

	o.Matrix.Threads = runutil.EffectiveThreads(o.Matrix.Threads)
	logger.Debug("stats options",
		"inputs", len(o.Inputs), "gap", string(o.Matrix.Gap), "max_missing", o.Matrix.MaxMissing,
		"threads", o.Matrix.Threads, "output", o.Writer.Format)

	inCh, writeErr := writers.StartReportWriter(outw, o.Writer, 2)

	var perr error
	for _, path := range o.Inputs {
		m, err := LoadMatrix(ctx, logger, path, o.Matrix)
		if err != nil {
			perr = err
			break
		}
		select {
		case inCh <- m:
		case <-ctx.Done():
			perr = ctx.Err()
		}
		if perr != nil {
			break
		}
	}
	close(inCh)

	return finish(stderr, outw, <-writeErr, perr)
}

// LoadMatrix opens path and builds its matrix. Errors carry the path.
func LoadMatrix(ctx context.Context, logger *log.Logger, path string, opt alignment.Options) (*alignment.Matrix, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	start := time.Now()
	logger.Debug("opening alignment", "path", path)

	r, err := fasta.Open(ctx, path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	opt.Source = path
	m, err := alignment.FromAligned(r, opt)
	if err != nil {
		return nil, err
	}
	logger.Info("alignment loaded",
		"path", path,
		"records", m.NumRecords(),
		"positions", m.NumPositions(),
		"core", m.CoreSize(),
		"snps", m.NumSNP(),
		"core_snps", m.NumCoreSNP(),
		"elapsed", time.Since(start).Round(time.Millisecond))
	return m, nil
}

// CompositionOptions configures RunComposition.
type CompositionOptions struct {
	Inputs []string
	Format string
	Header bool
}

// RunComposition counts residues per record for each input and writes all
// results once every input has been read.
func RunComposition(ctx context.Context, stdout, stderr io.Writer, logger *log.Logger, o CompositionOptions) int {
	outw := bufio.NewWriter(stdout)

	var (
		list []api.CompositionV1
		perr error
	)
	for _, path := range o.Inputs {
		res, err := countFile(ctx, logger, path)
		if err != nil {
			perr = err
			break
		}
		list = append(list, output.ToAPIComposition(res))
	}
	if perr != nil {
		return finish(stderr, outw, nil, perr)
	}
	return finish(stderr, outw, writers.WriteComposition(o.Format, outw, list, o.Header), nil)
}

func countFile(ctx context.Context, logger *log.Logger, path string) (composition.Result, error) {
	if err := ctx.Err(); err != nil {
		return composition.Result{}, err
	}
	start := time.Now()
	r, err := fasta.Open(ctx, path)
	if err != nil {
		return composition.Result{}, err
	}
	defer r.Close()

	res, err := composition.Count(path, r)
	if err != nil {
		return composition.Result{}, err
	}
	logger.Info("composition counted",
		"path", path,
		"records", len(res.Records),
		"bp", res.Total.Total(),
		"elapsed", time.Since(start).Round(time.Millisecond))
	return res, nil
}

// finish flushes buffered output and maps the write and processing errors
// to an exit code. A broken pipe downstream is not a failure.
func finish(stderr io.Writer, outw *bufio.Writer, werr, perr error) int {
	if writers.IsBrokenPipe(werr) {
		return ExitOK
	} else if werr != nil {
		fmt.Fprintf(stderr, "error: %v\n", werr)
		return ExitFailure
	}
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return ExitOK
	} else if e != nil {
		fmt.Fprintf(stderr, "error: %v\n", e)
		return ExitFailure
	}

	if perr != nil {
		if errors.Is(perr, context.Canceled) {
			return ExitInterrupted
		}
		fmt.Fprintf(stderr, "error: %v\n", perr)
		return ExitFailure
	}
	return ExitOK
}
