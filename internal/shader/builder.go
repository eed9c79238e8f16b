package shader

import (
	"errors"
	"fmt"

	"autoshader/internal/logging"
	"autoshader/internal/scene"
	"autoshader/internal/texture"
)

var (
	ErrNoTarget         = errors.New("no objects selected")
	ErrNoTextures       = errors.New("no textures to connect")
	ErrMaterialNotFound = errors.New("material does not exist")
	errNoWiring         = errors.New("role has no wiring")
)

// ShaderSuffix is appended to the requested material name.
const ShaderSuffix = "_SHD"

// BuildResult is the outcome of Build.
type BuildResult struct {
	Material  string // resolved base shader name
	Binding   string // shading group name
	Connected int    // roles wired to the graph
	Assigned  int    // objects the material was applied to
	Skipped   []texture.Role
}

// Builder creates and updates material graphs in a host scene.
// It is not safe for concurrent use on the same scene.
type Builder struct {
	scene scene.Scene
	log   logging.Logger
}

// NewBuilder returns a builder over s. A nil logger discards output.
func NewBuilder(s scene.Scene, log logging.Logger) *Builder {
	if log == nil {
		log = logging.Nop()
	}
	return &Builder{scene: s, log: log}
}

// Build creates a material named after name, wires every role in textures
// and assigns the result to objects.
//
// Wiring is best effort: a role that fails is skipped and the nodes created
// for it stay in the scene. Assignment failures are ignored per object.
func (b *Builder) Build(name string, textures *texture.Result, objects []string, udim bool) (BuildResult, error) {
	if len(objects) == 0 {
		return BuildResult{}, fmt.Errorf("shader: build %s: %w", name, ErrNoTarget)
	}
	if textures.Len() == 0 {
		return BuildResult{}, fmt.Errorf("shader: build %s: %w", name, ErrNoTextures)
	}

	requested := UniqueName(b.scene, name+ShaderSuffix)
	material, err := b.scene.CreateNode(ShaderNodeType, requested, scene.ClassShader)
	if err != nil {
		return BuildResult{}, fmt.Errorf("shader: create material %s: %w", requested, err)
	}
	binding, err := b.scene.CreateNode(BindingNodeType, name+"_SG", scene.ClassSet)
	if err != nil {
		return BuildResult{Material: material}, fmt.Errorf("shader: create shading group for %s: %w", material, err)
	}
	if err := b.scene.Connect(scene.At(material, AttrOutColor), scene.At(binding, AttrSurfaceShader)); err != nil {
		return BuildResult{Material: material, Binding: binding}, fmt.Errorf("shader: bind %s: %w", material, err)
	}

	res := BuildResult{Material: material, Binding: binding}
	g := graph{scene: b.scene, prefix: name, material: material, binding: binding, udim: udim}
	for _, e := range textures.Entries {
		if err := g.wire(e.Role, e.Path); err != nil {
			if !errors.Is(err, errNoWiring) {
				b.log.Warnf("%s: skipping %s: %v", material, e.Role, err)
			}
			res.Skipped = append(res.Skipped, e.Role)
			continue
		}
		b.log.Debugf("%s: %s <- %s", material, e.Role, e.Path)
		res.Connected++
	}

	for _, obj := range objects {
		if err := b.scene.Assign(obj, binding); err != nil {
			b.log.Debugf("%s: assign %s: %v", material, obj, err)
			continue
		}
		res.Assigned++
	}

	mode := "Standard"
	if udim {
		mode = "UDIM"
	}
	b.scene.Notify(fmt.Sprintf("Material '%s' created successfully with %d textures (%s)", material, res.Connected, mode))
	return res, nil
}

// UniqueName returns base if no node has that name, otherwise base_1,
// base_2, ... whichever is free first.
func UniqueName(s scene.Scene, base string) string {
	if !s.Exists(base) {
		return base
	}
	for i := 1; ; i++ {
		name := fmt.Sprintf("%s_%d", base, i)
		if !s.Exists(name) {
			return name
		}
	}
}

type graph struct {
	scene    scene.Scene
	prefix   string
	material string
	binding  string
	udim     bool
}

func (g graph) wire(role texture.Role, path string) error {
	w, ok := WiringFor(role)
	if !ok {
		return errNoWiring
	}

	file, err := g.fileNode(role, path, w.ColorSpace)
	if err != nil {
		return err
	}

	target := scene.At(g.material, w.TargetAttr)
	if w.Target == TargetBinding {
		target = scene.At(g.binding, w.TargetAttr)
	}
	if w.Conversion == nil {
		return g.scene.Connect(scene.At(file, w.Source), target)
	}

	conv, err := g.conversionNode(w)
	if err != nil {
		return err
	}
	if err := g.scene.Connect(scene.At(file, w.Source), scene.At(conv.name, conv.kind.Input)); err != nil {
		return err
	}
	return g.scene.Connect(scene.At(conv.name, conv.kind.Output), target)
}

// fileNode creates the texture source and its own placement node.
func (g graph) fileNode(role texture.Role, path, colorSpace string) (string, error) {
	file, err := g.scene.CreateNode(FileNodeType, fmt.Sprintf("%s_%s", g.prefix, role), scene.ClassTexture)
	if err != nil {
		return "", err
	}
	if err := g.scene.SetAttr(file, AttrFileTextureName, path); err != nil {
		return file, err
	}
	if err := g.scene.SetAttr(file, AttrUVTilingMode, TilingMode(g.udim)); err != nil {
		return file, err
	}

	place, err := g.scene.CreateNode(PlacementNodeType, fmt.Sprintf("%s_%s_place2d", g.prefix, role), scene.ClassUtility)
	if err != nil {
		return file, err
	}
	if err := g.scene.Connect(scene.At(place, "outUV"), scene.At(file, "uvCoord")); err != nil {
		return file, err
	}
	if err := g.scene.Connect(scene.At(place, "outUvFilterSize"), scene.At(file, "uvFilterSize")); err != nil {
		return file, err
	}

	return file, g.scene.SetAttr(file, AttrColorSpace, colorSpace)
}

type createdConversion struct {
	name string
	kind *Conversion
}

// conversionNode creates w.Conversion, or w.Fallback when the preferred
// node type is missing from the host.
func (g graph) conversionNode(w Wiring) (createdConversion, error) {
	kind := w.Conversion
	if !g.scene.HasNodeType(kind.NodeType) && w.Fallback != nil {
		kind = w.Fallback
	}
	name, err := g.createConversion(kind)
	if errors.Is(err, scene.ErrNodeTypeUnavailable) && w.Fallback != nil && kind != w.Fallback {
		kind = w.Fallback
		name, err = g.createConversion(kind)
	}
	if err != nil {
		return createdConversion{}, err
	}
	return createdConversion{name: name, kind: kind}, nil
}

func (g graph) createConversion(kind *Conversion) (string, error) {
	class := scene.ClassUtility
	if kind.Shader {
		class = scene.ClassShader
	}
	name, err := g.scene.CreateNode(kind.NodeType, fmt.Sprintf("%s_%s", g.prefix, kind.Suffix), class)
	if err != nil {
		return "", err
	}
	for _, p := range kind.Params {
		if err := g.scene.SetAttr(name, p.Attr, p.Value); err != nil {
			return name, err
		}
	}
	return name, nil
}
