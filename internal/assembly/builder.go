package assembly

import (
	"sort"

	"nestloader/internal/cx2"
	"nestloader/internal/scores"
)

// Build derives the assembly subnetwork for a gene list. Each gene that is a
// first-level key of the score table becomes a node (created once, however
// often it repeats in the list); each scored partner of such a gene becomes a
// node on first reference plus a directed edge carrying the score row minus
// the two protein-identifier columns. Genes with no score-table entry leave
// no trace.
func Build(genes []string, table scores.Table) *cx2.Network {
	net := cx2.NewNetwork()
	nodeIDs := map[string]int64{}
	nodeFor := func(symbol string) int64 {
		if id, ok := nodeIDs[symbol]; ok {
			return id
		}
		id := net.AddNode(map[string]any{"n": symbol})
		nodeIDs[symbol] = id
		return id
	}

	for _, gene := range genes {
		partners, ok := table[gene]
		if !ok {
			continue
		}
		src := nodeFor(gene)
		for _, partner := range sortedKeys(partners) {
			tgt := nodeFor(partner)
			net.AddEdge(src, tgt, EdgeAttributes(partners[partner]))
		}
	}
	return net
}

// EdgeAttributes strips the protein-identifier columns from a score row,
// leaving only the score and evidence columns for the edge.
func EdgeAttributes(row scores.Row) map[string]any {
	attrs := map[string]any{}
	for k, v := range row {
		if k == scores.ProteinOne || k == scores.ProteinTwo {
			continue
		}
		attrs[k] = v
	}
	return attrs
}

func sortedKeys(m map[string]scores.Row) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
