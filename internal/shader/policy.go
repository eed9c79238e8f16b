package shader

import "autoshader/internal/texture"

// Host node types and attributes used by the builder.
const (
	ShaderNodeType       = "aiStandardSurface"
	BindingNodeType      = "shadingEngine"
	FileNodeType         = "file"
	PlacementNodeType    = "place2dTexture"
	NormalMapNodeType    = "aiNormalMap"
	Bump2dNodeType       = "aiBump2d"
	DisplacementNodeType = "displacementShader"

	AttrFileTextureName = "fileTextureName"
	AttrUVTilingMode    = "uvTilingMode"
	AttrColorSpace      = "colorSpace"
	AttrSurfaceShader   = "surfaceShader"
	AttrOutColor        = "outColor"
)

// Color spaces assigned to file nodes.
const (
	ColorSpaceSRGB = "sRGB"
	ColorSpaceRaw  = "Raw"
)

// Tiling modes for AttrUVTilingMode.
const (
	TilingSingle = 0
	TilingUDIM   = 3
)

// TilingMode returns the uvTilingMode value for udim.
func TilingMode(udim bool) int {
	if udim {
		return TilingUDIM
	}
	return TilingSingle
}

// Target is the node a role sub-graph ends at.
type Target int

const (
	TargetShader Target = iota
	TargetBinding
)

// Param is a numeric attribute set on a conversion node.
type Param struct {
	Attr  string
	Value float64
}

// Conversion describes the node placed between a file node and its target.
type Conversion struct {
	NodeType string
	Suffix   string // node name is <material>_<Suffix>
	Input    string
	Output   string
	Params   []Param
	Shader   bool // created as a shader rather than a utility
}

// Wiring is how one role is connected.
type Wiring struct {
	ColorSpace string
	Source     string // file node output
	Conversion *Conversion
	Fallback   *Conversion // used when Conversion's node type is unavailable
	Target     Target
	TargetAttr string
}

var policy = map[texture.Role]Wiring{
	texture.BaseColor: {
		ColorSpace: ColorSpaceSRGB,
		Source:     "outColor",
		TargetAttr: "baseColor",
	},
	texture.Emission: {
		ColorSpace: ColorSpaceSRGB,
		Source:     "outColor",
		TargetAttr: "emissionColor",
	},
	texture.Metalness: {
		ColorSpace: ColorSpaceRaw,
		Source:     "outColorR",
		TargetAttr: "metalness",
	},
	texture.Roughness: {
		ColorSpace: ColorSpaceRaw,
		Source:     "outColorR",
		TargetAttr: "specularRoughness",
	},
	texture.Specular: {
		ColorSpace: ColorSpaceRaw,
		Source:     "outColorR",
		TargetAttr: "specular",
	},
	texture.Opacity: {
		ColorSpace: ColorSpaceRaw,
		Source:     "outColorR",
		TargetAttr: "opacity",
	},
	texture.Normal: {
		ColorSpace: ColorSpaceRaw,
		Source:     "outColor",
		Conversion: &Conversion{
			NodeType: NormalMapNodeType,
			Suffix:   "normal_normalMap",
			Input:    "input",
			Output:   "outValue",
		},
		Fallback: &Conversion{
			NodeType: Bump2dNodeType,
			Suffix:   "normal_bump2d",
			Input:    "bumpMap",
			Output:   "outValue",
			Params:   []Param{{Attr: "bumpHeight", Value: 1.0}},
		},
		TargetAttr: "normalCamera",
	},
	texture.Bump: {
		ColorSpace: ColorSpaceRaw,
		Source:     "outColorR",
		Conversion: &Conversion{
			NodeType: Bump2dNodeType,
			Suffix:   "bump_bump2d",
			Input:    "bumpMap",
			Output:   "outValue",
			Params:   []Param{{Attr: "bumpHeight", Value: 0.3}},
		},
		TargetAttr: "normalCamera",
	},
	texture.Displacement: {
		ColorSpace: ColorSpaceRaw,
		Source:     "outAlpha",
		Conversion: &Conversion{
			NodeType: DisplacementNodeType,
			Suffix:   "disp_shader",
			Input:    "displacement",
			Output:   "displacement",
			Params:   []Param{{Attr: "scale", Value: 0.1}},
			Shader:   true,
		},
		Target:     TargetBinding,
		TargetAttr: "displacementShader",
	},
}

// WiringFor returns the wiring for role. Roles without an entry, such as
// ambientOcclusion, are not connected.
func WiringFor(role texture.Role) (Wiring, bool) {
	w, ok := policy[role]
	return w, ok
}
