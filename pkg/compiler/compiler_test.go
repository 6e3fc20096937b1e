package compiler_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/netlistio/ingest/pkg/compiler"
	"github.com/netlistio/ingest/pkg/model"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestCompileTwoResistorDivider(t *testing.T) {
	dir := t.TempDir()
	root := writeFile(t, dir, "top.sp", "*title\nR1 in out 1k\nR2 out gnd 1k\n.end\n")

	result, err := compiler.New(root, 2).Compile(root)
	require.NoError(t, err)
	require.Empty(t, result.Errors)

	names := map[string]bool{}
	for _, cell := range result.Cells {
		names[cell.CellName()] = true
	}

	require.True(t, names["R1"])
	require.True(t, names["R2"])
}

func TestCompileSingleSubcircuit(t *testing.T) {
	dir := t.TempDir()
	root := writeFile(t, dir, "top.sp",
		"*t\n.subckt inv a y\nM1 y a 0 0 nmos W=1u L=0.1u\n.ends\nXI inA outA inv\n")

	result, err := compiler.New(root, 1).Compile(root)
	require.NoError(t, err)
	require.Empty(t, result.Errors)

	var macro *model.Macro

	var top *model.Instance

	for _, cell := range result.Cells {
		switch c := cell.(type) {
		case *model.Macro:
			macro = c
		case *model.Instance:
			if c.CellName() == "XI" {
				top = c
			}
		}
	}

	require.NotNil(t, macro)
	require.Equal(t, "inv", macro.CellName())
	require.Len(t, macro.Children, 1)
	require.Equal(t, "M1", macro.Children[0].CellName())
	require.Equal(t, macro, macro.Children[0].Parent)

	require.NotNil(t, top)
	require.Equal(t, "inv", top.DefinitionName)
}

func TestCompileFollowsInclude(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "leaf.sp", ".subckt leaf a b\nR1 a b 1k\n.ends\n")
	root := writeFile(t, dir, "top.sp", "*t\n.include \"leaf.sp\"\nX1 n1 n2 leaf\n")

	result, err := compiler.New(root, 2).Compile(root)
	require.NoError(t, err)
	require.Empty(t, result.Errors)

	var sawLeaf bool

	for _, cell := range result.Cells {
		if m, ok := cell.(*model.Macro); ok && m.CellName() == "leaf" {
			sawLeaf = true
		}
	}

	require.True(t, sawLeaf)
}

func TestCompileResolvesLibrarySection(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "corners.lib",
		".lib tt\n.model nch nmos\n.endl tt\n.lib ff\n.model pch pmos\n.endl ff\n")
	root := writeFile(t, dir, "top.sp", "*t\n.lib \"corners.lib\" tt\n")

	result, err := compiler.New(root, 1).Compile(root)
	require.NoError(t, err)
	require.Empty(t, result.Errors)

	var sawNch, sawPch bool

	for _, cell := range result.Cells {
		if decl, ok := cell.(*model.Model); ok {
			switch decl.CellName() {
			case "nch":
				sawNch = true
			case "pch":
				sawPch = true
			}
		}
	}

	require.True(t, sawNch)
	require.False(t, sawPch, "section ff must not be consulted when only tt was requested")
}

func TestCompileLibrarySectionShallowParsesNestedSubckt(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "cells.lib",
		".lib std\n.subckt inv a y\nM1 y a 0 0 nmos\nM2 y a 1 1 pmos\n.ends\n.endl std\n")
	root := writeFile(t, dir, "top.sp", "*t\n.lib \"cells.lib\" std\n")

	result, err := compiler.New(root, 1).Compile(root)
	require.NoError(t, err)
	require.Empty(t, result.Errors)

	var macro *model.Macro

	for _, cell := range result.Cells {
		if m, ok := cell.(*model.Macro); ok && m.CellName() == "inv" {
			macro = m
		}
	}

	require.NotNil(t, macro)
	require.Len(t, macro.Children, 2)
	require.Equal(t, "M1", macro.Children[0].CellName())
	require.Equal(t, "M2", macro.Children[1].CellName())
}

func TestCompileUnresolvedStrictIncludeIsSkippedNotFatal(t *testing.T) {
	dir := t.TempDir()
	root := writeFile(t, dir, "top.sp", "*t\n.include \"missing.sp\"\nR1 a b 1k\n")

	result, err := compiler.New(root, 1).Compile(root)
	require.NoError(t, err)

	names := map[string]bool{}
	for _, cell := range result.Cells {
		names[cell.CellName()] = true
	}

	require.True(t, names["R1"])
}

func TestCompileRootFileNotFoundIsFatal(t *testing.T) {
	dir := t.TempDir()
	root := filepath.Join(dir, "does-not-exist.sp")

	_, err := compiler.New(root, 1).Compile(root)
	require.Error(t, err)
}
