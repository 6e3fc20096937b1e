package linker_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/netlistio/ingest/pkg/compiler"
	"github.com/netlistio/ingest/pkg/linker"
	"github.com/netlistio/ingest/pkg/model"
)

func compileString(t *testing.T, content string) *model.ParseResult {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "top.sp")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	result, err := compiler.New(path, 2).Compile(path)
	require.NoError(t, err)

	return result
}

func TestLinkTwoResistorDivider(t *testing.T) {
	parsed := compileString(t, "*title\nR1 in out 1k\nR2 out gnd 1k\n.end\n")

	netlist, errs := linker.Link(parsed)
	require.Empty(t, errs)
	require.Empty(t, netlist.Macros)
	require.Len(t, netlist.TopInstances, 2)

	r1 := netlist.TopInstances[0]
	require.Equal(t, "R1", r1.CellName())
	require.True(t, r1.IsResolved())
	require.Equal(t, model.Resistor, r1.Definition.(*model.Primitive).Kind)
	require.Equal(t, "1k", r1.Params["value"])

	pairs := r1.ResolvedNets()
	require.Len(t, pairs, 2)
	require.Equal(t, "a", pairs[0].Left.Name)
	require.Equal(t, "in", pairs[0].Right)
	require.Equal(t, "b", pairs[1].Left.Name)
	require.Equal(t, "out", pairs[1].Right)
}

func TestLinkSingleSubcircuitResolvesMosfetAndMacro(t *testing.T) {
	parsed := compileString(t, "*t\n.subckt inv a y\nM1 y a 0 0 nmos W=1u L=0.1u\n.ends\nXI inA outA inv\n")

	netlist, errs := linker.Link(parsed)
	require.Empty(t, errs)
	require.Len(t, netlist.Macros, 1)

	inv := netlist.Macros[0]
	require.Equal(t, "inv", inv.CellName())
	require.Len(t, inv.Children, 1)
	require.True(t, inv.Children[0].IsResolved())
	require.Equal(t, model.NMOS, inv.Children[0].Definition.(*model.Primitive).Kind)

	require.Len(t, netlist.TopInstances, 1)
	xi := netlist.TopInstances[0]
	require.True(t, xi.IsResolved())
	require.Equal(t, inv, xi.Definition)

	pairs := xi.ResolvedNets()
	require.Len(t, pairs, 2)
	require.Equal(t, "a", pairs[0].Left.Name)
	require.Equal(t, "inA", pairs[0].Right)
	require.Equal(t, "y", pairs[1].Left.Name)
	require.Equal(t, "outA", pairs[1].Right)
}

func TestLinkDuplicateSubcircuitReportsFirstWins(t *testing.T) {
	parsed := compileString(t, "*t\n.subckt foo a b\nR1 a b 1k\n.ends\n.subckt foo c d\nR2 c d 2k\n.ends\n")

	netlist, errs := linker.Link(parsed)
	require.Len(t, netlist.Macros, 1)
	require.Len(t, netlist.Macros[0].Children, 1)
	require.Equal(t, "R1", netlist.Macros[0].Children[0].CellName())

	var found bool

	for _, e := range errs {
		if e.Kind == model.DuplicateDefinition {
			require.Equal(t, "foo", e.Message)
			found = true
		}
	}

	require.True(t, found)
}

func TestLinkCycleReportsCircularDependency(t *testing.T) {
	parsed := compileString(t, "*t\n.subckt A a b\nX1 a b B\n.ends\n.subckt B a b\nX2 a b A\n.ends\n")

	netlist, errs := linker.Link(parsed)
	require.Len(t, netlist.Macros, 2)

	var found bool

	for _, e := range errs {
		if e.Kind == model.CircularDependency {
			found = true
		}
	}

	require.True(t, found)
}

func TestLinkUndefinedModelIsReportedNotFatal(t *testing.T) {
	parsed := compileString(t, "*t\nX1 a b ghost\n")

	netlist, errs := linker.Link(parsed)
	require.Len(t, netlist.TopInstances, 1)
	require.False(t, netlist.TopInstances[0].IsResolved())

	var found bool

	for _, e := range errs {
		if e.Kind == model.UndefinedModel {
			require.Equal(t, "X1", e.Message)
			found = true
		}
	}

	require.True(t, found)
}

func TestRegistryResolveIsIdempotent(t *testing.T) {
	registry := linker.NewRegistry()

	first := registry.Resolve("nmos")
	second := registry.Resolve("NMOS")

	require.True(t, first.HasValue())
	require.True(t, second.HasValue())
	require.Equal(t, first.Unwrap(), second.Unwrap())
}
