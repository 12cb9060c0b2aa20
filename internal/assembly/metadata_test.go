package assembly

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestApplyMetadataOverwrites(t *testing.T) {
	attrs := map[string]any{"Description": "hi", "description": "old"}
	ApplyMetadata(attrs, "NeST: foo", Links{
		CCMI:         "https://ccmi.org/nest",
		HiView:       "http://hiview.ucsd.edu/x",
		ToolVersion:  "1.0",
		HierarchyURL: "https://www.ndexbio.org/viewer/networks/12345",
	})

	require.Equal(t, "NeST: foo", attrs["name"])
	require.True(t, strings.HasPrefix(attrs["description"].(string), "<p>This"))
	require.Contains(t, attrs["description"], "https://ccmi.org/nest")
	require.Contains(t, attrs["description"], "http://hiview.ucsd.edu/x")
	require.Equal(t, "20211001", attrs["version"])
	require.True(t, strings.HasPrefix(attrs["reference"].(string), "<p>Zh"))
	require.Contains(t, attrs["prov:wasGeneratedBy"], "nestloader 1.0")
	require.Equal(t, "https://www.ndexbio.org/viewer/networks/12345", attrs["prov:wasDerivedFrom"])
}

func TestNetworkURL(t *testing.T) {
	// unset and production servers map to the www viewer
	require.Equal(t, "https://www.ndexbio.org/viewer/networks/12345", NetworkURL("", "12345"))
	require.Equal(t, "https://www.ndexbio.org/viewer/networks/12345", NetworkURL("public.ndexbio.org", "12345"))
	require.Equal(t, "https://test.ndexbio.org/viewer/networks/12345", NetworkURL("test.ndexbio.org", "12345"))
}
