package markup

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func mustFloat(t *testing.T, raw string) float64 {
	t.Helper()

	v, err := strconv.ParseFloat(raw, 64)
	require.NoError(t, err, "parse %q", raw)
	return v
}
