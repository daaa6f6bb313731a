// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// CubeVertexShader transforms lit shader-path cubes.
//
//go:embed cube.vert
var CubeVertexShader string

// CubeFragmentShader shades shader-path cubes with one directional light.
//
//go:embed cube.frag
var CubeFragmentShader string

// IDVertexShader transforms cubes for the color-ID pass.
//
//go:embed id.vert
var IDVertexShader string

// IDFragmentShader writes the flat object ID color.
//
//go:embed id.frag
var IDFragmentShader string
