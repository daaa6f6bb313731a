package renderer

import (
	"unsafe"

	"github.com/go-gl/gl/v3.3-compatibility/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/rubberpick/internal/logger"
)

// cubeMesh is the unit cube uploaded once and shared by every shader-path draw.
type cubeMesh struct {
	vao   uint32
	vbo   uint32
	count int32
}

func newCubeMesh() *cubeMesh {
	vertices := CubeTriangles()
	m := &cubeMesh{count: int32(len(vertices) / floatsPerVertex)}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, unsafe.Pointer(&vertices[0]), gl.STATIC_DRAW)

	stride := int32(floatsPerVertex * 4)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(1)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	logger.Debug("cube mesh created",
		zap.Uint32("vao", m.vao),
		zap.Uint32("vbo", m.vbo),
		zap.Int32("vertices", m.count),
	)
	return m
}

func (m *cubeMesh) bind()   { gl.BindVertexArray(m.vao) }
func (m *cubeMesh) unbind() { gl.BindVertexArray(0) }
func (m *cubeMesh) draw()   { gl.DrawArrays(gl.TRIANGLES, 0, m.count) }

func (m *cubeMesh) destroy() {
	if m == nil {
		return
	}
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
	}
	if m.vbo != 0 {
		gl.DeleteBuffers(1, &m.vbo)
	}
}
