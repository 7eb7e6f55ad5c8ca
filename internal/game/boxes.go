package game

import (
	"bullseye/internal/bounds"
	"bullseye/internal/entity"
	"bullseye/internal/graphics/renderer"
	"bullseye/internal/scene"

	"github.com/go-gl/mathgl/mgl32"
)

var (
	archerColor = mgl32.Vec3{0.1, 0.3, 0.8}
	arrowColor  = mgl32.Vec3{0.4, 0.25, 0.1}
	targetColor = mgl32.Vec3{0.85, 0.1, 0.1}
	wallColor   = mgl32.Vec3{0.55, 0.55, 0.55}
	hiddenColor = mgl32.Vec3{0.9, 0, 0.9}
)

func kindColor(k entity.Kind) mgl32.Vec3 {
	switch k {
	case entity.KindPlayer:
		return archerColor
	case entity.KindArrow:
		return arrowColor
	case entity.KindTarget:
		return targetColor
	}
	return wallColor
}

// FrameBoxes lists the outlines drawn this frame: every visible entity
// plus the floor and ceiling. With debug set, hidden entities are
// outlined too in their own color.
func (s *Session) FrameBoxes(debug bool) []renderer.Box {
	visible := scene.Visible(s.State, s.Camera.Mode)
	world := &s.outcome.World

	boxes := make([]renderer.Box, 0, entity.Count+2)
	for id := entity.ID(0); id < entity.Count; id++ {
		b := world[id]
		if b.IsEmpty() {
			continue
		}
		switch {
		case visible[id]:
			boxes = append(boxes, renderer.Box{Min: b.Min, Max: b.Max, Color: kindColor(id.Kind())})
		case debug:
			boxes = append(boxes, renderer.Box{Min: b.Min, Max: b.Max, Color: hiddenColor})
		}
	}

	quad := s.table.Local(entity.WallLeft)
	for _, m := range []mgl32.Mat4{s.layout.Floor(), s.layout.Ceiling()} {
		b := bounds.TransformBoundingBox(quad, m)
		if !b.IsEmpty() {
			boxes = append(boxes, renderer.Box{Min: b.Min, Max: b.Max, Color: wallColor})
		}
	}
	return boxes
}
