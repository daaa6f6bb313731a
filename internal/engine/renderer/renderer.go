// Package renderer draws the cube scene and implements the GL picking backend.
package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v3.3-compatibility/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/rubberpick/internal/engine/framebuffer"
	"github.com/Faultbox/rubberpick/internal/engine/lighting"
	"github.com/Faultbox/rubberpick/internal/engine/picking"
	"github.com/Faultbox/rubberpick/internal/engine/renderer/shaders"
	"github.com/Faultbox/rubberpick/internal/engine/scene"
	"github.com/Faultbox/rubberpick/internal/engine/shader"
	"github.com/Faultbox/rubberpick/internal/logger"
	"github.com/Faultbox/rubberpick/pkg/math"
)

// Config holds renderer configuration.
type Config struct {
	Width      int
	Height     int
	Background [3]float32
	Overlay    OverlayStyle
}

// Highlighter answers whether an object is drawn in the selected style.
type Highlighter interface {
	Contains(id uint32) bool
}

// Renderer draws legacy cubes with the fixed-function pipeline and shader
// cubes with GLSL. It also serves as the picking.Backend for both strategies.
type Renderer struct {
	cfg   Config
	scene *scene.Scene
	light lighting.Directional

	compat bool
	vp     picking.Viewport

	mesh        *cubeMesh
	cubeProgram *shader.Program
	idProgram   *shader.Program
	idTarget    *framebuffer.Framebuffer

	endIDPass func()
}

// New creates a renderer. It must be called after the GL context is current.
func New(cfg Config, sc *scene.Scene, light lighting.Directional) (*Renderer, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	r := &Renderer{cfg: cfg, scene: sc, light: light}

	var mask int32
	gl.GetIntegerv(gl.CONTEXT_PROFILE_MASK, &mask)
	r.compat = mask == 0 || mask&gl.CONTEXT_COMPATIBILITY_PROFILE_BIT != 0

	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
		zap.Bool("compatibility", r.compat),
	)
	if !r.compat {
		logger.Warn("core profile context: legacy cubes and hit-record picking disabled")
	}

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.ClearColor(cfg.Background[0], cfg.Background[1], cfg.Background[2], 1)

	r.mesh = newCubeMesh()

	// Compile logs failures. A missing program leaves the shader row undrawn
	// or color picking unavailable, and the viewer keeps running.
	r.cubeProgram, _ = shader.Compile("cube", shaders.CubeVertexShader, shaders.CubeFragmentShader)
	r.idProgram, _ = shader.Compile("id", shaders.IDVertexShader, shaders.IDFragmentShader)

	var err error
	if r.idTarget, err = framebuffer.New(int32(cfg.Width), int32(cfg.Height)); err != nil {
		logger.Error("id framebuffer unavailable", zap.Error(err))
		r.idTarget = nil
	}

	r.Resize(cfg.Width, cfg.Height)
	return r, nil
}

// Close releases GL resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	r.mesh.destroy()
	if r.cubeProgram != nil {
		r.cubeProgram.Delete()
	}
	if r.idProgram != nil {
		r.idProgram.Delete()
	}
	if r.idTarget != nil {
		r.idTarget.Destroy()
	}
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.cfg.Width, r.cfg.Height = width, height
	r.vp = picking.Viewport{Width: int32(width), Height: int32(height)}
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized", zap.Int("width", width), zap.Int("height", height))
}

// Viewport returns the current viewport.
func (r *Renderer) Viewport() picking.Viewport {
	return r.vp
}

// Aspect returns the viewport aspect ratio.
func (r *Renderer) Aspect() float32 {
	if r.vp.Height == 0 {
		return 1
	}
	return float32(r.vp.Width) / float32(r.vp.Height)
}

// Draw renders one frame of the scene. Selected objects use the highlight color.
func (r *Renderer) Draw(view, projection math.Mat4, sel Highlighter) {
	gl.ClearColor(r.cfg.Background[0], r.cfg.Background[1], r.cfg.Background[2], 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	if r.compat {
		r.drawLegacy(view, projection, sel)
	}
	r.drawShaderCubes(view, projection, sel)
}

func (r *Renderer) drawShaderCubes(view, projection math.Mat4, sel Highlighter) {
	if r.cubeProgram == nil {
		return
	}
	p := r.cubeProgram
	p.Use()
	p.SetMat4("uView", view)
	p.SetMat4("uProjection", projection)
	p.SetVec3("uLightDir", r.light.Direction.Array())
	p.SetVec3("uAmbient", r.light.Ambient)
	p.SetVec3("uDiffuse", r.light.Diffuse)

	r.mesh.bind()
	for _, o := range r.scene.OfKind(picking.KindShader) {
		p.SetMat4("uModel", o.Model)
		p.SetVec3("uColor", o.ColorOf(sel.Contains(o.ID)))
		r.mesh.draw()
	}
	r.mesh.unbind()
	gl.UseProgram(0)
}
