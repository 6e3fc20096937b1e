package graph_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/netlistio/ingest/pkg/graph"
	"github.com/netlistio/ingest/pkg/model"
)

func resistor() *model.Primitive {
	return model.NewPrimitive(model.Resistor)
}

func TestFromMacroBuildsBipartiteGraphWithResolvedPortNames(t *testing.T) {
	r1 := model.NewUnresolvedInstance("R1", []string{"in", "out"}, nil, "")
	r1.Definition = resistor()

	r2 := model.NewUnresolvedInstance("R2", []string{"out", "gnd"}, nil, "")
	r2.Definition = resistor()

	top := model.NewMacro("", nil, []*model.Instance{r1, r2})

	g := graph.FromMacro(top)
	require.Equal(t, 3, g.NetCount())
	require.ElementsMatch(t, []string{"in", "out", "gnd"}, g.Nets())

	require.Equal(t, []string{"R1.a"}, g.Connections("in"))
	require.ElementsMatch(t, []string{"R1.b", "R2.a"}, g.Connections("out"))
	require.Equal(t, []string{"R2.b"}, g.Connections("gnd"))
}

func TestFromMacroFormatsUnresolvedConnectionsAsBareInstanceName(t *testing.T) {
	x1 := model.NewUnresolvedInstance("X1", []string{"a", "b"}, nil, "ghost")
	top := model.NewMacro("", nil, []*model.Instance{x1})

	g := graph.FromMacro(top)
	require.Equal(t, []string{"X1"}, g.Connections("a"))
	require.Equal(t, []string{"X1"}, g.Connections("b"))
}

func TestStatsComputesAverageAndMaxFanout(t *testing.T) {
	r1 := model.NewUnresolvedInstance("R1", []string{"in", "out"}, nil, "")
	r1.Definition = resistor()

	r2 := model.NewUnresolvedInstance("R2", []string{"out", "gnd"}, nil, "")
	r2.Definition = resistor()

	r3 := model.NewUnresolvedInstance("R3", []string{"out", "vdd"}, nil, "")
	r3.Definition = resistor()

	top := model.NewMacro("", nil, []*model.Instance{r1, r2, r3})

	g := graph.FromMacro(top)
	stats := g.Stats()

	require.Equal(t, 4, stats.NetCount)
	require.Equal(t, "out", stats.MaxFanoutNet)
	require.Equal(t, 3, stats.MaxFanout)
	require.InDelta(t, 6.0/4.0, stats.AverageFanout, 1e-9)
}

func TestEmptyGraphStatsAreZeroValued(t *testing.T) {
	g := graph.FromMacro(model.NewMacro("", nil, nil))
	stats := g.Stats()

	require.Equal(t, 0, stats.NetCount)
	require.Equal(t, 0.0, stats.AverageFanout)
	require.Equal(t, "", stats.MaxFanoutNet)
	require.Equal(t, 0, stats.MaxFanout)
}

func TestExportJSONIsNetSortedAndRoundTrips(t *testing.T) {
	r1 := model.NewUnresolvedInstance("R1", []string{"zzz", "aaa"}, nil, "")
	r1.Definition = resistor()

	top := model.NewMacro("", nil, []*model.Instance{r1})

	g := graph.FromMacro(top)

	raw, err := g.ExportJSON()
	require.NoError(t, err)

	var doc struct {
		NetCount int `json:"net_count"`
		Nets     []struct {
			Name        string   `json:"name"`
			Connections []string `json:"connections"`
			Fanout      int      `json:"fanout"`
		} `json:"nets"`
	}
	require.NoError(t, json.Unmarshal(raw, &doc))

	require.Equal(t, 2, doc.NetCount)
	require.Equal(t, "aaa", doc.Nets[0].Name)
	require.Equal(t, "zzz", doc.Nets[1].Name)
	require.Equal(t, []string{"R1.b"}, doc.Nets[0].Connections)
	require.Equal(t, 1, doc.Nets[0].Fanout)
}
