package scene

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/google/uuid"
)

// BindingNodeType is the node type objects can be assigned to.
const BindingNodeType = "shadingEngine"

type node struct {
	id    string
	name  string
	typ   string
	class NodeClass
	attrs map[string]any
}

// Memory is an in-memory Scene. Node names are unique; creating a node
// under a taken name appends the first free integer, the way hosts do.
type Memory struct {
	nodes       map[string]*node
	order       []string
	edges       map[Plug]Plug // dst -> src
	objects     map[string]string
	unavailable map[string]bool
	notes       []string
}

var _ Scene = (*Memory)(nil)

// NewMemory returns an empty scene where every node type is available.
func NewMemory() *Memory {
	return &Memory{
		nodes:       make(map[string]*node),
		edges:       make(map[Plug]Plug),
		objects:     make(map[string]string),
		unavailable: make(map[string]bool),
	}
}

// WithoutNodeTypes marks node types as unavailable, as when a renderer
// plugin does not provide them.
func (m *Memory) WithoutNodeTypes(types ...string) *Memory {
	for _, t := range types {
		m.unavailable[t] = true
	}
	return m
}

// AddObject registers renderable objects that materials can be assigned to.
func (m *Memory) AddObject(names ...string) {
	for _, n := range names {
		if _, ok := m.objects[n]; !ok {
			m.objects[n] = ""
		}
	}
}

func (m *Memory) Exists(name string) bool {
	_, ok := m.nodes[name]
	return ok
}

func (m *Memory) HasNodeType(nodeType string) bool {
	return !m.unavailable[nodeType]
}

func (m *Memory) CreateNode(nodeType, name string, class NodeClass) (string, error) {
	if m.unavailable[nodeType] {
		return "", fmt.Errorf("scene: create %s %q: %w", nodeType, name, ErrNodeTypeUnavailable)
	}
	if name == "" {
		name = nodeType + "1"
	}
	final := name
	for i := 1; m.Exists(final); i++ {
		final = name + strconv.Itoa(i)
	}
	m.nodes[final] = &node{
		id:    uuid.NewString(),
		name:  final,
		typ:   nodeType,
		class: class,
		attrs: make(map[string]any),
	}
	m.order = append(m.order, final)
	return final, nil
}

func (m *Memory) lookup(name string) (*node, error) {
	n, ok := m.nodes[name]
	if !ok {
		return nil, fmt.Errorf("scene: %q: %w", name, ErrNodeNotFound)
	}
	return n, nil
}

func (m *Memory) SetAttr(nodeName, attr string, value any) error {
	n, err := m.lookup(nodeName)
	if err != nil {
		return err
	}
	n.attrs[attr] = value
	return nil
}

func (m *Memory) GetAttr(nodeName, attr string) (any, error) {
	n, err := m.lookup(nodeName)
	if err != nil {
		return nil, err
	}
	v, ok := n.attrs[attr]
	if !ok {
		return nil, fmt.Errorf("scene: %s.%s: attribute not set", nodeName, attr)
	}
	return v, nil
}

func (m *Memory) Connect(src, dst Plug) error {
	if _, err := m.lookup(src.Node); err != nil {
		return err
	}
	if _, err := m.lookup(dst.Node); err != nil {
		return err
	}
	if cur, ok := m.edges[dst]; ok {
		return fmt.Errorf("scene: connect %s -> %s (fed by %s): %w", src, dst, cur, ErrAlreadyConnected)
	}
	m.edges[dst] = src
	return nil
}

func (m *Memory) Upstream(nodeName, attr string) ([]string, error) {
	if _, err := m.lookup(nodeName); err != nil {
		return nil, err
	}
	if attr != "" {
		if src, ok := m.edges[At(nodeName, attr)]; ok {
			return []string{src.Node}, nil
		}
		return nil, nil
	}
	var conns []Connection
	for dst, src := range m.edges {
		if dst.Node == nodeName {
			conns = append(conns, Connection{Src: src, Dst: dst})
		}
	}
	sortConnections(conns)
	return distinct(conns, func(c Connection) string { return c.Src.Node }), nil
}

func (m *Memory) SourceOf(dst Plug) (Plug, bool) {
	src, ok := m.edges[dst]
	return src, ok
}

func (m *Memory) Downstream(nodeName, attr string) ([]string, error) {
	if _, err := m.lookup(nodeName); err != nil {
		return nil, err
	}
	var conns []Connection
	for dst, src := range m.edges {
		if src.Node == nodeName && (attr == "" || src.Attr == attr) {
			conns = append(conns, Connection{Src: src, Dst: dst})
		}
	}
	sortConnections(conns)
	return distinct(conns, func(c Connection) string { return c.Dst.Node }), nil
}

func (m *Memory) NodeType(name string) (string, error) {
	n, err := m.lookup(name)
	if err != nil {
		return "", err
	}
	return n.typ, nil
}

func (m *Memory) Assign(object, binding string) error {
	if _, ok := m.objects[object]; !ok {
		return fmt.Errorf("scene: assign %q: %w", object, ErrObjectNotFound)
	}
	n, err := m.lookup(binding)
	if err != nil {
		return err
	}
	if n.typ != BindingNodeType {
		return fmt.Errorf("scene: assign %q to %q: %w", object, binding, ErrNotBindingNode)
	}
	m.objects[object] = binding
	return nil
}

func (m *Memory) BindingOf(object string) (string, bool) {
	b, ok := m.objects[object]
	if !ok || b == "" {
		return "", false
	}
	return b, true
}

func (m *Memory) Notify(message string) {
	m.notes = append(m.notes, message)
}

// Notifications returns every message passed to Notify, oldest first.
func (m *Memory) Notifications() []string {
	return append([]string(nil), m.notes...)
}

// Connections returns every edge, sorted by destination.
func (m *Memory) Connections() []Connection {
	conns := make([]Connection, 0, len(m.edges))
	for dst, src := range m.edges {
		conns = append(conns, Connection{Src: src, Dst: dst})
	}
	sortConnections(conns)
	return conns
}

// Nodes returns node names in creation order.
func (m *Memory) Nodes() []string {
	return append([]string(nil), m.order...)
}

// NodeID returns the UUID the node was created with.
func (m *Memory) NodeID(name string) (string, bool) {
	n, ok := m.nodes[name]
	if !ok {
		return "", false
	}
	return n.id, true
}

func sortConnections(conns []Connection) {
	sort.Slice(conns, func(i, j int) bool {
		if conns[i].Dst != conns[j].Dst {
			return conns[i].Dst.String() < conns[j].Dst.String()
		}
		return conns[i].Src.String() < conns[j].Src.String()
	})
}

func distinct(conns []Connection, key func(Connection) string) []string {
	seen := make(map[string]bool, len(conns))
	var out []string
	for _, c := range conns {
		k := key(c)
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, k)
	}
	return out
}
