package scanner_test

import (
	"testing"

	"github.com/netlistio/ingest/pkg/model"
	"github.com/netlistio/ingest/pkg/scanner"
	"github.com/netlistio/ingest/pkg/spice"
	"github.com/stretchr/testify/require"
)

func strategy() scanner.Strategy {
	return scanner.NewStrategy(spice.MatchesMacroStart, spice.MatchesMacroEnd)
}

func TestScanSplitsGlobalAndMacroRegions(t *testing.T) {
	data := []byte("*t\n.subckt inv a y\nM1 y a 0 0 nmos\n.ends\nXI inA outA inv\n")

	regions := scanner.Scan("top.sp", data, strategy())
	require.Len(t, regions, 3)

	require.Equal(t, model.Global, regions[0].Type)
	require.Equal(t, 0, regions[0].Start)

	require.Equal(t, model.Macro, regions[1].Type)
	require.True(t, regions[1].Name.HasValue())
	require.Equal(t, "inv", regions[1].Name.Unwrap())

	require.Equal(t, model.Global, regions[2].Type)
}

func TestScanNoMacrosYieldsSingleGlobalRegion(t *testing.T) {
	data := []byte("*t\nR1 a b 1k\nR2 b 0 1k\n")

	regions := scanner.Scan("top.sp", data, strategy())
	require.Len(t, regions, 1)
	require.Equal(t, model.Global, regions[0].Type)
	require.Equal(t, 0, regions[0].Start)
	require.Equal(t, len(data), regions[0].End)
}

func TestScanEmptyFileYieldsNoRegions(t *testing.T) {
	regions := scanner.Scan("top.sp", nil, strategy())
	require.Empty(t, regions)
}
