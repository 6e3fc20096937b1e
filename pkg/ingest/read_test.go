package ingest_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/netlistio/ingest/pkg/graph"
	"github.com/netlistio/ingest/pkg/ingest"
	"github.com/netlistio/ingest/pkg/model"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestReadEndToEndResistorDivider(t *testing.T) {
	dir := t.TempDir()
	root := writeFile(t, dir, "top.sp", "*divider\nR1 in out 1k\nR2 out gnd 1k\n.end\n")

	result, err := ingest.Read(root, ingest.Config{NumWorkers: 2})
	require.NoError(t, err)
	require.NoError(t, result.Errors())
	require.Len(t, result.Netlist.TopInstances, 2)

	g := graph.FromMacro(result.Netlist.Top())
	require.Equal(t, 3, g.NetCount())
}

func TestReadFollowsIncludeAndLinksAcrossFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "cells.sp", ".subckt inv a y\nM1 y a 0 0 nmos\n.ends\n")
	root := writeFile(t, dir, "top.sp", "*top\n.include \"cells.sp\"\nXI inA outA inv\n")

	result, err := ingest.Read(root, ingest.Config{})
	require.NoError(t, err)
	require.NoError(t, result.Errors())
	require.Len(t, result.Netlist.Macros, 1)
	require.Equal(t, "inv", result.Netlist.Macros[0].CellName())
	require.True(t, result.Netlist.TopInstances[0].IsResolved())
}

func TestReadSurfacesLinkErrorsWithoutFailing(t *testing.T) {
	dir := t.TempDir()
	root := writeFile(t, dir, "top.sp", "*top\nX1 a b ghost\n")

	result, err := ingest.Read(root, ingest.Config{})
	require.NoError(t, err)
	require.Error(t, result.Errors())

	var linkErr *model.LinkError
	require.True(t, len(result.LinkErrors) > 0)
	linkErr = result.LinkErrors[0]
	require.Equal(t, model.UndefinedModel, linkErr.Kind)
}

func TestReadRootFileNotFoundIsFatal(t *testing.T) {
	dir := t.TempDir()
	root := filepath.Join(dir, "missing.sp")

	result, err := ingest.Read(root, ingest.Config{})
	require.Error(t, err)
	require.Nil(t, result)
}

func TestReadDefaultWorkerCountUsesAvailableParallelism(t *testing.T) {
	dir := t.TempDir()
	root := writeFile(t, dir, "top.sp", "*t\nR1 a b 1k\n.end\n")

	result, err := ingest.Read(root, ingest.Config{})
	require.NoError(t, err)
	require.Len(t, result.Netlist.TopInstances, 1)
}
