package spice_test

import (
	"testing"

	"github.com/netlistio/ingest/pkg/model"
	"github.com/netlistio/ingest/pkg/spice"
	"github.com/stretchr/testify/require"
)

func TestParseInstanceResistorCapturesValue(t *testing.T) {
	inst := spice.ParseInstance("R1 a b 1k")
	require.NotNil(t, inst)
	require.Equal(t, "R1", inst.CellName())
	require.Equal(t, []string{"a", "b"}, inst.Nets)
	require.Equal(t, "1k", inst.Params["value"])
	require.True(t, inst.IsResolved())
	require.Equal(t, model.Resistor, inst.Definition.(*model.Primitive).Kind)
}

func TestParseInstanceMosfetDefersResolution(t *testing.T) {
	inst := spice.ParseInstance("M1 y a 0 0 nmos W=1u L=0.1u")
	require.NotNil(t, inst)
	require.False(t, inst.IsResolved())
	require.Equal(t, "nmos", inst.DefinitionName)
	require.Equal(t, []string{"y", "a", "0"}, inst.Nets)
	require.Equal(t, "1u", inst.Params["W"])
	require.Equal(t, "0.1u", inst.Params["L"])
}

func TestParseInstanceSubcktUnresolved(t *testing.T) {
	inst := spice.ParseInstance("XI inA outA inv")
	require.NotNil(t, inst)
	require.False(t, inst.IsResolved())
	require.Equal(t, "inv", inst.DefinitionName)
	require.Equal(t, []string{"inA", "outA"}, inst.Nets)
}

func TestParseInstanceUnknownPrefixIsNil(t *testing.T) {
	require.Nil(t, spice.ParseInstance("Vsrc a b 5"))
}

func TestParseInstanceDedupesRepeatedNets(t *testing.T) {
	inst := spice.ParseInstance("R1 a a 1k")
	require.NotNil(t, inst)
	require.Equal(t, []string{"a"}, inst.Nets)
}

func TestParseDeclarationSubckt(t *testing.T) {
	cell := spice.ParseDeclaration(".subckt inv a y")
	macro, ok := cell.(*model.Macro)
	require.True(t, ok)
	require.Equal(t, "inv", macro.CellName())
	require.Equal(t, []model.Port{{Name: "a"}, {Name: "y"}}, macro.Ports())
}

func TestParseDeclarationModel(t *testing.T) {
	cell := spice.ParseDeclaration(".model mynmos nmos level=1 vto=0.7")
	decl, ok := cell.(*model.Model)
	require.True(t, ok)
	require.Equal(t, "mynmos", decl.Name_)
	require.Equal(t, "nmos", decl.BaseType)
	require.Equal(t, "1", decl.Params["level"])
	require.Equal(t, "0.7", decl.Params["vto"])
}

func TestParseDirectiveInclude(t *testing.T) {
	d, ok := spice.ParseDirective(`.include "foo.sp"`)
	require.True(t, ok)
	require.NotNil(t, d.Include)
	require.Equal(t, "foo.sp", d.Include.Path)
	require.True(t, d.Include.Strict)
}

func TestParseDirectiveLibraryWithSection(t *testing.T) {
	d, ok := spice.ParseDirective(`.lib "corners.lib" tt`)
	require.True(t, ok)
	require.NotNil(t, d.Library)
	require.Equal(t, "corners.lib", d.Library.Path)
	require.Equal(t, "tt", d.Library.Section)
}

func TestParseDirectiveCadenceBrackets(t *testing.T) {
	strict, ok := spice.ParseDirective(`[! strict.inc]`)
	require.True(t, ok)
	require.NotNil(t, strict.Include)
	require.True(t, strict.Include.Strict)

	lenient, ok := spice.ParseDirective(`[? lenient.inc]`)
	require.True(t, ok)
	require.NotNil(t, lenient.Include)
	require.False(t, lenient.Include.Strict)
}

func TestChunkParserFoldsContinuationsAndSkipsComments(t *testing.T) {
	data := []byte("*title\n* a comment\nR1 a b\n+ 1k\nR2 b 0 1k\n")
	cp := spice.NewChunkParser(data, true)

	lines := cp.Collect()
	require.Len(t, lines, 2)
	require.Equal(t, "R1 a b 1k", lines[0].Text)
	require.Equal(t, "R2 b 0 1k", lines[1].Text)
}

func TestChunkParserByteSliceDoesNotSkipTitle(t *testing.T) {
	data := []byte(".model nch nmos\n")
	cp := spice.NewChunkParser(data, false)

	lines := cp.Collect()
	require.Len(t, lines, 1)
	require.Equal(t, ".model nch nmos", lines[0].Text)
}

func TestMatchesMacroStartAndEnd(t *testing.T) {
	_, name, ok := spice.MatchesMacroStart([]byte(".subckt inv a y"))
	require.True(t, ok)
	require.Equal(t, "inv", name)

	require.True(t, spice.MatchesMacroEnd([]byte(".ends")))
	require.False(t, spice.MatchesMacroEnd([]byte("R1 a b 1k")))
}
