// Package assembly derives one subnetwork per NeST hierarchy node: an
// induced graph over the IAS score table plus the descriptive metadata and
// shared visual style every uploaded assembly carries.
package assembly

import (
	"strings"

	"nestloader/internal/cx2"
)

const (
	legacyPrefix    = "NEST:"
	canonicalPrefix = "NeST:"
	displayPrefix   = "NeST: "

	// unnamedPlaceholder is what the hierarchy uses for assemblies that were
	// never annotated.
	unnamedPlaceholder = "(none)"

	annotationAttr = "Annotation"
	genesAttr      = "Genes"
)

// hierarchy-node attributes that never become network attributes on the
// derived assembly.
var skippedNodeAttrs = map[string]struct{}{
	"n":            {},
	"name":         {},
	annotationAttr: {},
	"Size":         {},
	"Size-Log":     {},
	genesAttr:      {},
}

// NameAndGenes extracts the display name and gene symbols from a hierarchy
// node. Both the Annotation and Genes attributes must be present; otherwise
// the node has nothing to derive and ok is false.
func NameAndGenes(node cx2.Node) (name string, genes []string, ok bool) {
	if node.V == nil {
		return "", nil, false
	}
	rawName, okName := node.V[annotationAttr].(string)
	rawGenes, okGenes := node.V[genesAttr].(string)
	if !okName || !okGenes {
		return "", nil, false
	}
	return rawName, strings.Fields(rawGenes), true
}

// NormalizeName maps a raw assembly name onto the canonical display form:
// a legacy "NEST:" tag becomes "NeST:", anything else gains the "NeST: "
// prefix.
func NormalizeName(raw string) string {
	if strings.HasPrefix(raw, legacyPrefix) {
		return canonicalPrefix + strings.TrimPrefix(raw, legacyPrefix)
	}
	return displayPrefix + raw
}

// IsUnnamed reports whether a normalized name still lacks a real name, in
// which case the node is skipped rather than uploaded.
func IsUnnamed(name string) bool {
	rest := strings.TrimSpace(strings.TrimPrefix(name, canonicalPrefix))
	return rest == "" || rest == unnamedPlaceholder
}

// NodeAttributes copies the hierarchy node's scalar attributes onto net_attrs
// destined for the derived network, dropping naming/size bookkeeping fields.
func NodeAttributes(node cx2.Node, attrs map[string]any) {
	for k, v := range node.V {
		if _, skip := skippedNodeAttrs[k]; skip {
			continue
		}
		attrs[k] = v
	}
}
