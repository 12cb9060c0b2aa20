package assembly

import (
	"testing"

	"nestloader/internal/cx2"

	"github.com/stretchr/testify/require"
)

func exampleNode() cx2.Node {
	return cx2.Node{
		ID: 41376,
		V: map[string]any{
			"n":                        "NEST:169",
			"Genes":                    "AKT1 CTNNB1 EGF EGFR ILK JADE1 NF2 PPL PTEN SLC9A3R1 STUB1 VIM YWHAZ",
			"Size":                     13.0,
			"Mutation frequency:OV":    0.078,
			"Mutation frequency:KIRC":  0.084,
			"Mutation frequency:GBM":   0.504,
			"No. significantly mutated cancer types": 4.0,
			"-log10 adjusted p-value":                0.0,
			"adjusted  p-value":                      1.0,
			"Annotation":                             "AKT1 activation",
			"Weight":                                 0.37,
			"Significantly mutated cancer types":     "BRCA GBM LIHC UCEC",
			"Size-Log":                               3.700439718141092,
			"NEST ID":                                "NEST:169",
		},
	}
}

func TestNameAndGenes(t *testing.T) {
	name, genes, ok := NameAndGenes(exampleNode())
	require.True(t, ok)
	require.Equal(t, "AKT1 activation", name)
	require.Equal(t, []string{"AKT1", "CTNNB1", "EGF", "EGFR", "ILK", "JADE1",
		"NF2", "PPL", "PTEN", "SLC9A3R1", "STUB1", "VIM", "YWHAZ"}, genes)
}

func TestNameAndGenesNoAttributes(t *testing.T) {
	node := exampleNode()
	node.V = nil
	_, _, ok := NameAndGenes(node)
	require.False(t, ok)
}

func TestNameAndGenesNoGenes(t *testing.T) {
	node := exampleNode()
	delete(node.V, "Genes")
	_, _, ok := NameAndGenes(node)
	require.False(t, ok)
}

func TestNameAndGenesNoAnnotation(t *testing.T) {
	node := exampleNode()
	delete(node.V, "Annotation")
	_, _, ok := NameAndGenes(node)
	require.False(t, ok)
}

func TestNormalizeName(t *testing.T) {
	// legacy tag is rewritten, anything else gains the display prefix
	require.Equal(t, "NeST:169", NormalizeName("NEST:169"))
	require.Equal(t, "NeST: AKT1 activation", NormalizeName("AKT1 activation"))
	require.Equal(t, "NeST: ", NormalizeName(""))
}

func TestIsUnnamed(t *testing.T) {
	require.True(t, IsUnnamed("NeST: "))
	require.True(t, IsUnnamed("NeST:"))
	require.True(t, IsUnnamed("NeST: (none)"))
	require.False(t, IsUnnamed("NeST:169"))
	require.False(t, IsUnnamed("NeST: AKT1 activation"))
}

func TestNodeAttributes(t *testing.T) {
	attrs := map[string]any{}
	NodeAttributes(exampleNode(), attrs)

	for _, dropped := range []string{"n", "name", "Annotation", "Size", "Size-Log", "Genes"} {
		require.NotContains(t, attrs, dropped)
	}
	require.Equal(t, 1.0, attrs["adjusted  p-value"])
	require.Equal(t, "NEST:169", attrs["NEST ID"])
	require.Equal(t, 0.37, attrs["Weight"])
}
