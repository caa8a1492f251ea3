package appcore

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"msasnp/internal/alignment"
	"msasnp/internal/logging"
	"msasnp/internal/output"
	"msasnp/internal/writers"
	"msasnp/pkg/api"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func statsOpts(format string, inputs ...string) StatsOptions {
	return StatsOptions{
		Inputs: inputs,
		Matrix: alignment.Options{Gap: '-'},
		Writer: writers.ReportConfig{Format: format, Header: true},
	}
}

func TestRunStats_JSON(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.fa", ">x\nACGT\n>y\nACGA\n")
	b := writeFile(t, dir, "b.fa", ">x\nAA\n>y\nA-\n")

	var out, errb bytes.Buffer
	code := RunStats(context.Background(), &out, &errb, logging.Discard(), statsOpts(output.FormatJSON, a, b))
	require.Equal(t, ExitOK, code, errb.String())

	var got []api.ReportV1
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, a, got[0].Input)
	assert.Equal(t, 1, got[0].CoreSNPs)
	assert.Equal(t, 1, got[1].CoreSize)
}

func TestRunStats_FormatErrorExit3(t *testing.T) {
	dir := t.TempDir()
	bad := writeFile(t, dir, "bad.fa", ">x\nACGT\n>y\nACG\n")

	var out, errb bytes.Buffer
	code := RunStats(context.Background(), &out, &errb, logging.Discard(), statsOpts(output.FormatText, bad))
	assert.Equal(t, ExitFailure, code)
	assert.Contains(t, errb.String(), "not all the same length")
	assert.Contains(t, errb.String(), bad)
}

func TestRunStats_MissingFileExit3(t *testing.T) {
	var out, errb bytes.Buffer
	code := RunStats(context.Background(), &out, &errb, logging.Discard(),
		statsOpts(output.FormatText, filepath.Join(t.TempDir(), "missing.fa")))
	assert.Equal(t, ExitFailure, code)
	assert.Contains(t, errb.String(), "missing.fa")
}

func TestRunStats_EmptyFileExit3(t *testing.T) {
	empty := writeFile(t, t.TempDir(), "empty.fa", "")
	var out, errb bytes.Buffer
	code := RunStats(context.Background(), &out, &errb, logging.Discard(), statsOpts(output.FormatText, empty))
	assert.Equal(t, ExitFailure, code)
	assert.Contains(t, errb.String(), "no sequences")
}

func TestRunStats_Canceled(t *testing.T) {
	a := writeFile(t, t.TempDir(), "a.fa", ">x\nACGT\n")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out, errb bytes.Buffer
	code := RunStats(ctx, &out, &errb, logging.Discard(), statsOpts(output.FormatText, a))
	assert.Equal(t, ExitInterrupted, code)
}

type epipe struct{}

func (epipe) Write([]byte) (int, error) { return 0, os.ErrClosed }

func TestRunStats_BrokenPipeIsOK(t *testing.T) {
	a := writeFile(t, t.TempDir(), "a.fa", ">x\nACGT\n>y\nACGA\n")
	var errb bytes.Buffer
	code := RunStats(context.Background(), epipe{}, &errb, logging.Discard(), statsOpts(output.FormatText, a))
	assert.Equal(t, ExitOK, code)
	assert.Empty(t, errb.String())
}

func TestRunComposition_Text(t *testing.T) {
	a := writeFile(t, t.TempDir(), "g.fa", ">r1 first\nAAC\n>r2\nGG\n")
	var out, errb bytes.Buffer
	code := RunComposition(context.Background(), &out, &errb, logging.Discard(),
		CompositionOptions{Inputs: []string{a}, Format: output.FormatText})
	require.Equal(t, ExitOK, code, errb.String())
	assert.Equal(t, a+"\tr1\t3\tA=2 C=1\n"+a+"\tr2\t2\tG=2\n"+a+"\t*\t5\tA=2 C=1 G=2\n", out.String())
}

func TestRunComposition_MissingFile(t *testing.T) {
	var out, errb bytes.Buffer
	code := RunComposition(context.Background(), &out, &errb, logging.Discard(),
		CompositionOptions{Inputs: []string{filepath.Join(t.TempDir(), "nope.fa")}, Format: output.FormatJSON})
	assert.Equal(t, ExitFailure, code)
	assert.Empty(t, out.String())
}

func TestLoadMatrix_SetsSource(t *testing.T) {
	a := writeFile(t, t.TempDir(), "a.fa", ">x\nAC\n>y\nAG\n")
	m, err := LoadMatrix(context.Background(), logging.Discard(), a, alignment.Options{Threads: 1})
	require.NoError(t, err)
	assert.Equal(t, a, m.Source())
	assert.Equal(t, 1, m.NumCoreSNP())
}
