package assembly

import "fmt"

// Version is the release stamp written to every uploaded assembly.
const Version = "20211001"

const reference = `<p>Zheng F, Kelly MR, Ramms DJ, et al.<br/>
<b>Interpretation of cancer mutations using a multiscale map of protein systems</b><br/>
Science. 2021;374(6563):eabf3067.<br/>
<a target="_blank" href="https://doi.org/10.1126/science.abf3067">doi: 10.1126/science.abf3067</a></p>`

// Links carries the run-configured URLs woven into the fixed description.
type Links struct {
	CCMI        string
	HiView      string
	ToolVersion string
	// HierarchyURL is the viewer URL of the source hierarchy network.
	HierarchyURL string
}

// ApplyMetadata overwrites the fixed descriptive attributes on attrs. These
// are constants for a given release of the loader, so any value already
// present is replaced.
func ApplyMetadata(attrs map[string]any, name string, links Links) {
	attrs["name"] = name
	attrs["description"] = fmt.Sprintf(`<p>This network represents an assembly of the `+
		`<a target="_blank" href="%s">CCMI NeST</a> hierarchy.<br/>`+
		`<a target="_blank" href="%s">Click here to view the whole hierarchy in HiView</a></p>`,
		links.CCMI, links.HiView)
	attrs["version"] = Version
	attrs["reference"] = reference
	attrs["prov:wasGeneratedBy"] = fmt.Sprintf(`<a target="_blank" `+
		`href="https://github.com/idekerlab/nestloader">nestloader %s</a>`, links.ToolVersion)
	if links.HierarchyURL != "" {
		attrs["prov:wasDerivedFrom"] = links.HierarchyURL
	}
}

// NetworkURL builds the public viewer URL for a network. The production
// server (or an unset one) maps to the www viewer; any other host serves its
// own viewer.
func NetworkURL(server, id string) string {
	switch server {
	case "", "public.ndexbio.org", "www.ndexbio.org", "ndexbio.org":
		return "https://www.ndexbio.org/viewer/networks/" + id
	default:
		return "https://" + server + "/viewer/networks/" + id
	}
}
