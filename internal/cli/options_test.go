package cli

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"msasnp/internal/alignment"
	"msasnp/internal/config"
)

func newFS() *pflag.FlagSet { return pflag.NewFlagSet("test", pflag.ContinueOnError) }

func parseStats(t *testing.T, args ...string) (*StatsOptions, *pflag.FlagSet) {
	t.Helper()
	var o StatsOptions
	fs := newFS()
	o.Register(fs)
	require.NoError(t, fs.Parse(args))
	o.Inputs = fs.Args()
	return &o, fs
}

func intp(v int) *int { return &v }

func TestStatsDefaults(t *testing.T) {
	o, _ := parseStats(t, "aln.fa")
	require.NoError(t, o.Validate())
	assert.Equal(t, "-", o.Gap)
	assert.Equal(t, 0, o.MaxMissing)
	assert.Equal(t, 0, o.Threads)
	assert.Equal(t, "text", o.Output)
	k, err := o.SiteKind()
	require.NoError(t, err)
	assert.Equal(t, alignment.SitesNone, k)
	assert.Empty(t, o.Ignored())
}

func TestStatsFASTADefaultsToCoreSNPs(t *testing.T) {
	o, _ := parseStats(t, "-o", "fasta", "aln.fa")
	k, err := o.SiteKind()
	require.NoError(t, err)
	assert.Equal(t, alignment.SitesCoreSNP, k)

	o, _ = parseStats(t, "-o", "fasta", "--sites", "snp", "aln.fa")
	k, err = o.SiteKind()
	require.NoError(t, err)
	assert.Equal(t, alignment.SitesSNP, k)
}

func TestStatsValidationErrors(t *testing.T) {
	cases := []struct {
		name string
		args []string
	}{
		{"no inputs", nil},
		{"stdin twice", []string{"-", "-"}},
		{"long gap", []string{"--gap", "ab", "a.fa"}},
		{"empty gap", []string{"--gap=", "a.fa"}},
		{"negative max-missing", []string{"--max-missing", "-1", "a.fa"}},
		{"negative threads", []string{"--threads", "-2", "a.fa"}},
		{"bad output", []string{"-o", "xml", "a.fa"}},
		{"bad sites", []string{"--sites", "some", "a.fa"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			o, _ := parseStats(t, tc.args...)
			assert.Error(t, o.Validate())
		})
	}
}

func TestStatsConfigMerge(t *testing.T) {
	cfg := config.Config{Gap: ".", MaxMissing: intp(2), Threads: intp(3), Output: "json", Sites: "all"}

	o, fs := parseStats(t, "a.fa")
	o.ApplyConfig(fs, cfg)
	assert.Equal(t, ".", o.Gap)
	assert.Equal(t, 2, o.MaxMissing)
	assert.Equal(t, 3, o.Threads)
	assert.Equal(t, "json", o.Output)
	assert.Equal(t, "all", o.Sites)

	o, fs = parseStats(t, "--gap", "-", "--max-missing", "0", "-t", "1", "-o", "text", "--sites", "snp", "a.fa")
	o.ApplyConfig(fs, cfg)
	assert.Equal(t, "-", o.Gap)
	assert.Equal(t, 0, o.MaxMissing)
	assert.Equal(t, 1, o.Threads)
	assert.Equal(t, "text", o.Output)
	assert.Equal(t, "snp", o.Sites)
}

func TestStatsIgnored(t *testing.T) {
	o, _ := parseStats(t, "-o", "fasta", "--records", "--no-header", "a.fa")
	assert.Len(t, o.Ignored(), 2)
}

func TestGlobalConfigMerge(t *testing.T) {
	var g Global
	fs := newFS()
	g.Register(fs)
	require.NoError(t, fs.Parse(nil))
	g.ApplyConfig(fs, config.Config{LogLevel: "debug"})
	assert.Equal(t, "debug", g.LogLevel)

	g = Global{}
	fs = newFS()
	g.Register(fs)
	require.NoError(t, fs.Parse([]string{"--log-level", "warn"}))
	g.ApplyConfig(fs, config.Config{LogLevel: "debug"})
	assert.Equal(t, "warn", g.LogLevel)
}

func TestCompositionOptions(t *testing.T) {
	var o CompositionOptions
	fs := newFS()
	o.Register(fs)
	require.NoError(t, fs.Parse([]string{"-o", "cbor", "a.fa", "b.fa"}))
	o.Inputs = fs.Args()
	require.NoError(t, o.Validate())
	assert.Equal(t, []string{"a.fa", "b.fa"}, o.Inputs)

	o.Output = "jsonl"
	assert.Error(t, o.Validate())
}
