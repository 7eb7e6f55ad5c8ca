package hud

import (
	"bullseye/internal/graphics"
	"bullseye/internal/graphics/renderer"
	"bullseye/internal/profiling"

	"github.com/go-gl/gl/v4.1-core/gl"
)

const vertexShader = `#version 410 core
layout (location = 0) in vec2 aPos;
out vec2 uv;
void main() {
	// image rows run top to bottom
	uv = vec2(aPos.x * 0.5 + 0.5, 0.5 - aPos.y * 0.5);
	gl_Position = vec4(aPos, 0.0, 1.0);
}
`

const fragmentShader = `#version 410 core
in vec2 uv;
uniform sampler2D overlay;
out vec4 FragColor;
void main() {
	FragColor = texture(overlay, uv);
}
`

// Overlay blits the rasterised HUD image over the frame
type Overlay struct {
	shader  *graphics.Shader
	vao     uint32
	vbo     uint32
	texture uint32
	texW    int
	texH    int
}

// NewOverlay creates the HUD renderable
func NewOverlay() *Overlay {
	return &Overlay{}
}

// Init compiles the blit shader and creates the fullscreen quad
func (o *Overlay) Init() error {
	var err error
	o.shader, err = graphics.NewShader(vertexShader, fragmentShader)
	if err != nil {
		return err
	}

	quad := []float32{
		-1, -1, 1, -1, 1, 1,
		-1, -1, 1, 1, -1, 1,
	}
	gl.GenVertexArrays(1, &o.vao)
	gl.BindVertexArray(o.vao)
	gl.GenBuffers(1, &o.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, o.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(quad)*4, gl.Ptr(quad), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, 2*4, 0)
	gl.BindVertexArray(0)

	gl.GenTextures(1, &o.texture)
	gl.BindTexture(gl.TEXTURE_2D, o.texture)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	return nil
}

// Render uploads the overlay when it changed and draws it with alpha blending
func (o *Overlay) Render(ctx renderer.RenderContext) {
	img := ctx.Overlay
	if img == nil || img.Rect.Empty() {
		return
	}
	defer profiling.Track("renderer.hud")()

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, o.texture)
	if ctx.OverlayChanged || o.texW != img.Rect.Dx() || o.texH != img.Rect.Dy() {
		o.texW, o.texH = img.Rect.Dx(), img.Rect.Dy()
		gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
		gl.PixelStorei(gl.UNPACK_ROW_LENGTH, int32(img.Stride/4))
		gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(o.texW), int32(o.texH), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
		gl.PixelStorei(gl.UNPACK_ROW_LENGTH, 0)
	}

	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	// image.RGBA is alpha-premultiplied
	gl.BlendFunc(gl.ONE, gl.ONE_MINUS_SRC_ALPHA)

	o.shader.Use()
	o.shader.SetInt("overlay", 0)
	gl.BindVertexArray(o.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
	gl.BindVertexArray(0)

	gl.Disable(gl.BLEND)
	gl.Enable(gl.DEPTH_TEST)
}

// Dispose cleans up OpenGL resources
func (o *Overlay) Dispose() {
	if o.texture != 0 {
		gl.DeleteTextures(1, &o.texture)
	}
	if o.vao != 0 {
		gl.DeleteVertexArrays(1, &o.vao)
	}
	if o.vbo != 0 {
		gl.DeleteBuffers(1, &o.vbo)
	}
	if o.shader != nil {
		o.shader.Delete()
	}
}
