package assembly

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"nestloader/internal/cx2"
)

// The shared assembly style ships with the binary; --style swaps in an
// alternate CX2 file at run time.
//
//go:embed style.cx2
var defaultStyle []byte

// DefaultStyle returns the visual-properties block applied to every uploaded
// assembly.
func DefaultStyle() (json.RawMessage, error) {
	return styleFromCX2(bytes.NewReader(defaultStyle))
}

// StyleFromFile reads a CX2 file and returns its visual-properties block.
func StyleFromFile(path string) (json.RawMessage, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open style file: %w", err)
	}
	defer f.Close()
	return styleFromCX2(f)
}

func styleFromCX2(r io.Reader) (json.RawMessage, error) {
	net, err := cx2.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode style network: %w", err)
	}
	if len(net.VisualProperties) == 0 {
		return nil, fmt.Errorf("style network has no visualProperties aspect")
	}
	return net.VisualProperties, nil
}
