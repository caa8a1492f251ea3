package fasta_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"msasnp/internal/alignment"
	"msasnp/internal/fasta"
)

var _ alignment.Source = (*fasta.Reader)(nil)

func TestReaderFeedsMatrix(t *testing.T) {
	in := ">a first\nAC-\nT\n>b\nACG\nA\n>c\nacgt\n"
	r := fasta.NewReader(context.Background(), "mem.fa", strings.NewReader(in))
	m, err := alignment.FromAligned(r, alignment.Options{Source: r.Path()})
	require.NoError(t, err)

	assert.Equal(t, 3, m.NumRecords())
	assert.Equal(t, 4, m.NumPositions())
	assert.Equal(t, 3, m.CoreSize())
	assert.Equal(t, []int{3}, m.Sites(alignment.SitesCoreSNP))

	v, err := m.Record(0)
	require.NoError(t, err)
	assert.Equal(t, "a", v.ID())
	assert.Equal(t, "first", v.Description())
	assert.Equal(t, "AC-T", v.String())
}

func TestReaderUnequalLengths(t *testing.T) {
	r := fasta.NewReader(context.Background(), "mem.fa", strings.NewReader(">s1\nACGT\n>s2\nACG\n"))
	m, err := alignment.FromAligned(r, alignment.Options{Source: r.Path()})
	assert.Nil(t, m)
	assert.ErrorIs(t, err, alignment.ErrFormat)
}

func TestReaderErrorReachesCaller(t *testing.T) {
	r := fasta.NewReader(context.Background(), "mem.fa", strings.NewReader("ACGT\n"))
	_, err := alignment.FromAligned(r, alignment.Options{})
	assert.ErrorIs(t, err, fasta.ErrUnreadable)
}
