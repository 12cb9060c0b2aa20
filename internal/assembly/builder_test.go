package assembly

import (
	"testing"

	"nestloader/internal/scores"

	"github.com/stretchr/testify/require"
)

func scoreRow(p1, p2 string, score float64) scores.Row {
	return scores.Row{
		scores.ProteinOne:  p1,
		scores.ProteinTwo:  p2,
		"Integrated score": score,
	}
}

func TestBuildInducedSubnetwork(t *testing.T) {
	table := scores.Table{
		"A1BG": {
			"ABCB4": scoreRow("A1BG", "ABCB4", 0.208),
			"A1CF":  scoreRow("A1BG", "A1CF", 0.18),
		},
	}

	net := Build([]string{"A1BG", "A1CF", "X"}, table)

	names := map[string]bool{}
	for _, id := range net.NodeIDs() {
		names[net.Nodes[id].V["n"].(string)] = true
	}
	require.Equal(t, map[string]bool{"A1BG": true, "ABCB4": true, "A1CF": true}, names)
	require.NotContains(t, names, "X")

	require.Len(t, net.Edges, 2)
	for _, id := range net.EdgeIDs() {
		e := net.Edges[id]
		require.Equal(t, "A1BG", net.Nodes[e.Source].V["n"])
	}
}

func TestBuildGeneAbsentFromTable(t *testing.T) {
	net := Build([]string{"X", "Y"}, scores.Table{})
	require.Empty(t, net.Nodes)
	require.Empty(t, net.Edges)
}

func TestBuildDeduplicatesRepeatedGenes(t *testing.T) {
	table := scores.Table{
		"A1BG": {"ABCB4": scoreRow("A1BG", "ABCB4", 0.208)},
	}
	net := Build([]string{"A1BG", "A1BG"}, table)
	require.Len(t, net.Nodes, 2)
	// repeated gene still adds its edges once per list occurrence
	require.Len(t, net.Edges, 2)
}

func TestEdgeAttributesDropProteinColumns(t *testing.T) {
	require.Equal(t, map[string]any{}, EdgeAttributes(scores.Row{}))

	onlyIDs := scores.Row{scores.ProteinOne: "foo", scores.ProteinTwo: "blah"}
	require.Equal(t, map[string]any{}, EdgeAttributes(onlyIDs))

	onlyIDs["x"] = 1.0
	require.Equal(t, map[string]any{"x": 1.0}, EdgeAttributes(onlyIDs))
}

func TestBuildEdgeCarriesScoreColumns(t *testing.T) {
	row := scores.Row{
		scores.ProteinOne:    "A1BG",
		scores.ProteinTwo:    "ABCB4",
		"Integrated score":   0.208,
		"evidence: Physical": 0.092,
	}
	table := scores.Table{"A1BG": {"ABCB4": row}}
	net := Build([]string{"A1BG"}, table)
	require.Len(t, net.Edges, 1)
	e := net.Edges[net.EdgeIDs()[0]]
	require.Equal(t, map[string]any{
		"Integrated score":   0.208,
		"evidence: Physical": 0.092,
	}, e.V)
}
