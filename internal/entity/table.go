package entity

import (
	"bullseye/internal/bounds"

	"github.com/go-gl/mathgl/mgl32"
)

// Table caches each entity's local-space box. It is filled once at load
// time from mesh vertices and reused every frame.
type Table struct {
	local [Count]bounds.BoundingBox
}

// NewTable returns a table where every entity has no geometry.
func NewTable() *Table {
	t := &Table{}
	for i := range t.local {
		t.local[i] = bounds.Empty()
	}
	return t
}

// SetVertices computes and caches the local box of id from its mesh vertices.
func (t *Table) SetVertices(id ID, vertices []mgl32.Vec3) {
	if id < 0 || id >= Count {
		return
	}
	t.local[id] = bounds.ComputeLocalBoundingBox(vertices)
}

// Local returns the cached local box of id.
func (t *Table) Local(id ID) bounds.BoundingBox {
	if id < 0 || id >= Count {
		return bounds.Empty()
	}
	return t.local[id]
}

// Transforms holds one frame's model matrix per entity.
type Transforms [Count]mgl32.Mat4

// IdentityTransforms returns transforms with every entity at the origin.
func IdentityTransforms() Transforms {
	var tr Transforms
	for i := range tr {
		tr[i] = mgl32.Ident4()
	}
	return tr
}

// WorldBoxes holds one frame's world-space box per entity.
type WorldBoxes [Count]bounds.BoundingBox

// World transforms every cached local box with this frame's transforms.
func (t *Table) World(tr *Transforms) WorldBoxes {
	var out WorldBoxes
	for i := range out {
		out[i] = bounds.TransformBoundingBox(t.local[i], tr[i])
	}
	return out
}

// Instances exposes the boxes as named instances for debug reporting.
func (w *WorldBoxes) Instances(ids ...ID) []bounds.ObjectInstance {
	out := make([]bounds.ObjectInstance, 0, len(ids))
	for _, id := range ids {
		if id < 0 || id >= Count {
			continue
		}
		out = append(out, bounds.ObjectInstance{Name: id.String(), BoxWorld: w[id]})
	}
	return out
}
