// Package cx2 reads and writes the CX2 graph-exchange format used by NDEx.
// A CX2 payload is a JSON array of single-key "aspect" objects; this package
// models the aspects the loader touches (network attributes, nodes, edges,
// visual properties) and carries every other aspect through untouched.
package cx2

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
)

type Node struct {
	ID int64          `json:"id"`
	V  map[string]any `json:"v,omitempty"`
}

type Edge struct {
	ID     int64          `json:"id"`
	Source int64          `json:"s"`
	Target int64          `json:"t"`
	V      map[string]any `json:"v,omitempty"`
}

// Aspect is an unmodeled CX2 aspect carried through decode/encode verbatim.
type Aspect struct {
	Name string
	Data json.RawMessage
}

type Network struct {
	Attributes       map[string]any
	Nodes            map[int64]Node
	Edges            map[int64]Edge
	VisualProperties json.RawMessage
	Opaque           []Aspect

	nextNodeID int64
	nextEdgeID int64
}

func NewNetwork() *Network {
	return &Network{
		Attributes: map[string]any{},
		Nodes:      map[int64]Node{},
		Edges:      map[int64]Edge{},
	}
}

// AddNode appends a node with the given attributes and returns its id.
func (n *Network) AddNode(v map[string]any) int64 {
	id := n.nextNodeID
	n.nextNodeID++
	n.Nodes[id] = Node{ID: id, V: v}
	return id
}

// AddEdge appends a directed edge between two existing node ids.
func (n *Network) AddEdge(source, target int64, v map[string]any) int64 {
	id := n.nextEdgeID
	n.nextEdgeID++
	n.Edges[id] = Edge{ID: id, Source: source, Target: target, V: v}
	return id
}

// NodeIDs returns node ids in ascending order.
func (n *Network) NodeIDs() []int64 {
	ids := make([]int64, 0, len(n.Nodes))
	for id := range n.Nodes {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// EdgeIDs returns edge ids in ascending order.
func (n *Network) EdgeIDs() []int64 {
	ids := make([]int64, 0, len(n.Edges))
	for id := range n.Edges {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Decode parses a CX2 payload. Aspects other than networkAttributes, nodes,
// edges and visualProperties are kept raw so a later Encode round-trips them.
// The CXVersion header, metaData and status trailer are regenerated on
// encode and therefore dropped here.
func Decode(r io.Reader) (*Network, error) {
	var aspects []map[string]json.RawMessage
	if err := json.NewDecoder(r).Decode(&aspects); err != nil {
		return nil, fmt.Errorf("decode cx2 payload: %w", err)
	}
	net := NewNetwork()
	for _, aspect := range aspects {
		for name, data := range aspect {
			switch name {
			case "CXVersion", "hasFragments", "metaData", "status", "attributeDeclarations":
				// regenerated on encode
			case "networkAttributes":
				var attrs []map[string]any
				if err := json.Unmarshal(data, &attrs); err != nil {
					return nil, fmt.Errorf("decode networkAttributes: %w", err)
				}
				for _, a := range attrs {
					for k, v := range a {
						net.Attributes[k] = v
					}
				}
			case "nodes":
				var nodes []Node
				if err := json.Unmarshal(data, &nodes); err != nil {
					return nil, fmt.Errorf("decode nodes: %w", err)
				}
				for _, nd := range nodes {
					net.Nodes[nd.ID] = nd
					if nd.ID >= net.nextNodeID {
						net.nextNodeID = nd.ID + 1
					}
				}
			case "edges":
				var edges []Edge
				if err := json.Unmarshal(data, &edges); err != nil {
					return nil, fmt.Errorf("decode edges: %w", err)
				}
				for _, e := range edges {
					net.Edges[e.ID] = e
					if e.ID >= net.nextEdgeID {
						net.nextEdgeID = e.ID + 1
					}
				}
			case "visualProperties":
				net.VisualProperties = append(json.RawMessage(nil), data...)
			default:
				net.Opaque = append(net.Opaque, Aspect{Name: name, Data: append(json.RawMessage(nil), data...)})
			}
		}
	}
	return net, nil
}

// Encode writes the network as an upload-ready CX2 payload.
func (n *Network) Encode(w io.Writer) error {
	payload, err := n.MarshalCX2()
	if err != nil {
		return err
	}
	_, err = w.Write(payload)
	return err
}

func (n *Network) MarshalCX2() ([]byte, error) {
	aspects := []any{
		map[string]any{"CXVersion": "2.0", "hasFragments": false},
		map[string]any{"attributeDeclarations": []any{n.declarations()}},
	}
	if len(n.Attributes) > 0 {
		aspects = append(aspects, map[string]any{"networkAttributes": []any{n.Attributes}})
	}
	nodes := make([]Node, 0, len(n.Nodes))
	for _, id := range n.NodeIDs() {
		nodes = append(nodes, n.Nodes[id])
	}
	aspects = append(aspects, map[string]any{"nodes": nodes})
	edges := make([]Edge, 0, len(n.Edges))
	for _, id := range n.EdgeIDs() {
		edges = append(edges, n.Edges[id])
	}
	aspects = append(aspects, map[string]any{"edges": edges})
	if len(n.VisualProperties) > 0 {
		aspects = append(aspects, map[string]json.RawMessage{"visualProperties": n.VisualProperties})
	}
	for _, op := range n.Opaque {
		aspects = append(aspects, map[string]json.RawMessage{op.Name: op.Data})
	}
	aspects = append(aspects, map[string]any{"status": []any{map[string]any{"error": "", "success": true}}})
	return json.Marshal(aspects)
}

// declarations builds the attributeDeclarations aspect by inferring a CX2
// data type from each attribute value seen on the network, its nodes and its
// edges. JSON numbers arrive as float64, so numerics declare as double.
func (n *Network) declarations() map[string]map[string]map[string]string {
	decl := map[string]map[string]map[string]string{
		"networkAttributes": {},
		"nodes":             {},
		"edges":             {},
	}
	for k, v := range n.Attributes {
		decl["networkAttributes"][k] = map[string]string{"d": dataType(v)}
	}
	for _, nd := range n.Nodes {
		for k, v := range nd.V {
			decl["nodes"][k] = map[string]string{"d": dataType(v)}
		}
	}
	for _, e := range n.Edges {
		for k, v := range e.V {
			decl["edges"][k] = map[string]string{"d": dataType(v)}
		}
	}
	return decl
}

func dataType(v any) string {
	switch v.(type) {
	case float64, float32:
		return "double"
	case int, int64, int32:
		return "long"
	case bool:
		return "boolean"
	default:
		return "string"
	}
}
