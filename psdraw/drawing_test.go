package psdraw_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/katalvlaran/linorder/core"
	"github.com/katalvlaran/linorder/fixtures"
	"github.com/katalvlaran/linorder/functional"
	"github.com/katalvlaran/linorder/psdraw"
	"github.com/stretchr/testify/require"
)

func TestDrawProducesWellFormedDocument(t *testing.T) {
	g := fixtures.Grid(4)
	g.Order(functional.Arithmetic{}, core.Options{Iterations: 1, Window: 2, Period: 2, Seed: 1})

	var buf bytes.Buffer
	require.NoError(t, psdraw.Draw(&buf, g, 576, 576))

	out := buf.String()
	require.True(t, strings.HasPrefix(out, "%!PS-Adobe-3.0 EPSF-2.0\n"))
	require.True(t, strings.HasSuffix(out, "%%EOF\n"))
	require.Contains(t, out, "showpage")
}

func TestDrawHandlesEdgelessGraph(t *testing.T) {
	g := core.NewGraph(3)
	var buf bytes.Buffer
	require.NoError(t, psdraw.Draw(&buf, g, 200, 200))
	require.Contains(t, buf.String(), "%%EOF")
}
