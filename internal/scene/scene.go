// Package scene defines the host scene-graph capabilities the shader builder
// relies on, and an in-memory implementation of them.
package scene

import "errors"

var (
	ErrNodeNotFound        = errors.New("node not found")
	ErrObjectNotFound      = errors.New("object not found")
	ErrNodeTypeUnavailable = errors.New("node type unavailable")
	ErrAlreadyConnected    = errors.New("destination already connected")
	ErrNotBindingNode      = errors.New("not a binding node")
)

// NodeClass tells the host how a node is listed (shader, texture, utility or set).
type NodeClass int

const (
	ClassShader NodeClass = iota
	ClassTexture
	ClassUtility
	ClassSet
)

func (c NodeClass) String() string {
	switch c {
	case ClassShader:
		return "shader"
	case ClassTexture:
		return "texture"
	case ClassUtility:
		return "utility"
	case ClassSet:
		return "set"
	}
	return "unknown"
}

// Plug addresses one attribute of a node.
type Plug struct {
	Node string
	Attr string
}

// At is shorthand for Plug{node, attr}.
func At(node, attr string) Plug {
	return Plug{Node: node, Attr: attr}
}

func (p Plug) String() string {
	return p.Node + "." + p.Attr
}

// Connection is a directed edge from Src to Dst.
type Connection struct {
	Src Plug
	Dst Plug
}

func (c Connection) String() string {
	return c.Src.String() + " -> " + c.Dst.String()
}

// Scene is the subset of a host 3D application's scene graph used to build
// and update materials. Implementations need not be safe for concurrent use.
type Scene interface {
	// Exists reports whether a node with this exact name exists.
	Exists(name string) bool
	// HasNodeType reports whether the host can create nodes of this type.
	HasNodeType(nodeType string) bool
	// CreateNode creates a node and returns the name the host gave it, which
	// may differ from the requested one if that name was taken.
	CreateNode(nodeType, name string, class NodeClass) (string, error)
	SetAttr(node, attr string, value any) error
	GetAttr(node, attr string) (any, error)
	// Connect wires src into dst. A dst accepts a single source.
	Connect(src, dst Plug) error
	// Upstream lists the nodes feeding node.attr, or any input of node if attr is "".
	Upstream(node, attr string) ([]string, error)
	// SourceOf returns the plug connected into dst.
	SourceOf(dst Plug) (Plug, bool)
	// Downstream lists the nodes fed by node.attr, or any output of node if attr is "".
	Downstream(node, attr string) ([]string, error)
	NodeType(name string) (string, error)
	// Assign makes binding the material of object.
	Assign(object, binding string) error
	// BindingOf returns the binding node assigned to object.
	BindingOf(object string) (string, bool)
	// Notify shows a transient status message to the operator.
	Notify(message string)
}
