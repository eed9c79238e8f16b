package shader

import (
	"fmt"
	"os"

	"autoshader/internal/scene"
	"autoshader/internal/texture"
)

// Update points the existing file nodes of material at new files. Only the
// file path and tiling mode change; no node or connection is created or removed.
//
// Roles whose new path does not exist on disk, or whose file node cannot be
// found within two hops of the role's input, are skipped. It returns how many
// roles were updated.
func (b *Builder) Update(material string, updates map[texture.Role]string, udim bool) (int, error) {
	if typ, err := b.scene.NodeType(material); err != nil || typ != ShaderNodeType {
		return 0, fmt.Errorf("shader: update %s: %w", material, ErrMaterialNotFound)
	}

	updated := 0
	for _, role := range texture.Roles() {
		path, ok := updates[role]
		if !ok {
			continue
		}
		if _, err := os.Stat(path); err != nil {
			b.log.Debugf("%s: %s: %v", material, role, err)
			continue
		}
		file, ok := FindFileNode(b.scene, material, role)
		if !ok {
			b.log.Debugf("%s: no file node for %s", material, role)
			continue
		}
		if err := b.scene.SetAttr(file, AttrFileTextureName, path); err != nil {
			b.log.Warnf("%s: update %s: %v", material, file, err)
			continue
		}
		if err := b.scene.SetAttr(file, AttrUVTilingMode, TilingMode(udim)); err != nil {
			b.log.Warnf("%s: update %s: %v", material, file, err)
			continue
		}
		updated++
	}

	b.scene.Notify(fmt.Sprintf("Updated %d texture maps on '%s'", updated, material))
	return updated, nil
}

// FindFileNode returns the file node feeding role's input on material,
// either directly or through one conversion node the role uses. Every edge on
// the way must use the plugs the role is wired with, so chains built for
// another role sharing the same node types are not matched.
func FindFileNode(s scene.Scene, material string, role texture.Role) (string, bool) {
	w, ok := WiringFor(role)
	if !ok {
		return "", false
	}

	dest := material
	if w.Target == TargetBinding {
		binding, ok := bindingOf(s, material)
		if !ok {
			return "", false
		}
		dest = binding
	}

	src, ok := s.SourceOf(scene.At(dest, w.TargetAttr))
	if !ok {
		return "", false
	}
	typ, err := s.NodeType(src.Node)
	if err != nil {
		return "", false
	}
	if typ == FileNodeType {
		if src.Attr != w.Source {
			return "", false
		}
		return src.Node, true
	}

	for _, c := range []*Conversion{w.Conversion, w.Fallback} {
		if c == nil || c.NodeType != typ || c.Output != src.Attr {
			continue
		}
		in, ok := s.SourceOf(scene.At(src.Node, c.Input))
		if !ok || in.Attr != w.Source {
			continue
		}
		if t, err := s.NodeType(in.Node); err == nil && t == FileNodeType {
			return in.Node, true
		}
	}
	return "", false
}

// MaterialOf returns the base shader assigned to object, if any.
func MaterialOf(s scene.Scene, object string) (string, bool) {
	binding, ok := s.BindingOf(object)
	if !ok {
		return "", false
	}
	shaders, err := s.Upstream(binding, AttrSurfaceShader)
	if err != nil || len(shaders) == 0 {
		return "", false
	}
	return shaders[0], true
}

func bindingOf(s scene.Scene, material string) (string, bool) {
	down, err := s.Downstream(material, AttrOutColor)
	if err != nil {
		return "", false
	}
	for _, n := range down {
		if t, err := s.NodeType(n); err == nil && t == BindingNodeType {
			return n, true
		}
	}
	return "", false
}
