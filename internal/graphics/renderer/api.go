package renderer

import (
	"image"

	"github.com/go-gl/mathgl/mgl32"
)

// Box is one world-space AABB to outline.
type Box struct {
	Min, Max mgl32.Vec3
	Color    mgl32.Vec3
}

// RenderContext provides shared context for all renderables
type RenderContext struct {
	View mgl32.Mat4
	Proj mgl32.Mat4

	Boxes []Box
	// Overlay is the HUD image; OverlayChanged is set when it must be re-uploaded.
	Overlay        *image.RGBA
	OverlayChanged bool

	Width, Height int // framebuffer size
}

// Renderable interface defines the lifecycle for renderable features
type Renderable interface {
	Init() error
	Render(ctx RenderContext)
	Dispose()
}
