package cli_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwkangas/junctor/internal/cli"
)

func TestParseFlagsSetsBooleanOptions(t *testing.T) {
	opts, err := cli.ParseFlags("vhen")
	require.NoError(t, err)
	assert.True(t, opts.Verbose)
	assert.True(t, opts.Headers)
	assert.True(t, opts.EdgeEstimates)
	assert.True(t, opts.NaiveSampling)
	assert.Equal(t, "vhen", opts.Raw)
}

func TestParseFlagsAcceptsStructuralFlagsWithoutBooleanEffect(t *testing.T) {
	opts, err := cli.ParseFlags("ksthv")
	require.NoError(t, err)
	assert.True(t, opts.Headers)
	assert.True(t, opts.Verbose)
	assert.False(t, opts.EdgeEstimates)
	assert.False(t, opts.NaiveSampling)
}

func TestParseFlagsRejectsUnknownLetter(t *testing.T) {
	_, err := cli.ParseFlags("z")
	assert.ErrorIs(t, err, cli.ErrUsage)
}

func TestParseFlagsRejectsTooManyFlags(t *testing.T) {
	_, err := cli.ParseFlags("vvvvvvvvvvvvvvvvv")
	assert.ErrorIs(t, err, cli.ErrUsage)
}

func TestDefaultOptionsMatchesOriginalDefault(t *testing.T) {
	opts := cli.DefaultOptions()
	assert.Equal(t, "ksthv", opts.Raw)
}
