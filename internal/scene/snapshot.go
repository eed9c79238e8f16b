package scene

// NodeSnapshot is the serialisable state of one node.
type NodeSnapshot struct {
	ID    string         `json:"id"`
	Name  string         `json:"name"`
	Type  string         `json:"type"`
	Class string         `json:"class"`
	Attrs map[string]any `json:"attrs,omitempty"`
}

// Snapshot is a serialisable dump of a Memory scene.
type Snapshot struct {
	Nodes       []NodeSnapshot    `json:"nodes"`
	Connections []string          `json:"connections"`
	Assignments map[string]string `json:"assignments"`
}

// Snapshot copies the scene's nodes, edges and assignments.
func (m *Memory) Snapshot() Snapshot {
	s := Snapshot{
		Nodes:       make([]NodeSnapshot, 0, len(m.order)),
		Connections: make([]string, 0, len(m.edges)),
		Assignments: make(map[string]string, len(m.objects)),
	}
	for _, name := range m.order {
		n := m.nodes[name]
		attrs := make(map[string]any, len(n.attrs))
		for k, v := range n.attrs {
			attrs[k] = v
		}
		s.Nodes = append(s.Nodes, NodeSnapshot{
			ID:    n.id,
			Name:  n.name,
			Type:  n.typ,
			Class: n.class.String(),
			Attrs: attrs,
		})
	}
	for _, c := range m.Connections() {
		s.Connections = append(s.Connections, c.String())
	}
	for o, b := range m.objects {
		if b != "" {
			s.Assignments[o] = b
		}
	}
	return s
}
