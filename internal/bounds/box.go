package bounds

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// BoundingBox is an axis-aligned box in a single coordinate space (local or world).
type BoundingBox struct {
	Min mgl32.Vec3
	Max mgl32.Vec3
}

var (
	posInf = float32(math.Inf(1))
	negInf = float32(math.Inf(-1))
)

// Empty returns the inverted box used for "no geometry".
// It never intersects or contains anything.
func Empty() BoundingBox {
	return BoundingBox{
		Min: mgl32.Vec3{posInf, posInf, posInf},
		Max: mgl32.Vec3{negInf, negInf, negInf},
	}
}

// IsEmpty reports whether the box is inverted on any axis.
func (b BoundingBox) IsEmpty() bool {
	return b.Min.X() > b.Max.X() || b.Min.Y() > b.Max.Y() || b.Min.Z() > b.Max.Z()
}

// Center returns the midpoint of the box
func (b BoundingBox) Center() mgl32.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Size returns the extent of the box on each axis
func (b BoundingBox) Size() mgl32.Vec3 {
	return b.Max.Sub(b.Min)
}

// Corners returns the eight corners of the box.
func (b BoundingBox) Corners() [8]mgl32.Vec3 {
	return [8]mgl32.Vec3{
		{b.Min.X(), b.Min.Y(), b.Min.Z()},
		{b.Max.X(), b.Min.Y(), b.Min.Z()},
		{b.Min.X(), b.Max.Y(), b.Min.Z()},
		{b.Max.X(), b.Max.Y(), b.Min.Z()},
		{b.Min.X(), b.Min.Y(), b.Max.Z()},
		{b.Max.X(), b.Min.Y(), b.Max.Z()},
		{b.Min.X(), b.Max.Y(), b.Max.Z()},
		{b.Max.X(), b.Max.Y(), b.Max.Z()},
	}
}

// ComputeLocalBoundingBox folds min/max over the vertices.
// No vertices yields Empty().
func ComputeLocalBoundingBox(vertices []mgl32.Vec3) BoundingBox {
	box := Empty()
	for _, v := range vertices {
		box.Min = minVec(box.Min, v)
		box.Max = maxVec(box.Max, v)
	}
	return box
}

// TransformBoundingBox moves a box into the space defined by model.
// The 8 corners are transformed as points and re-enclosed, so the result
// is loose (not the tightest AABB) when model rotates the box.
func TransformBoundingBox(box BoundingBox, model mgl32.Mat4) BoundingBox {
	if box.IsEmpty() {
		return box
	}

	corners := box.Corners()
	first := model.Mul4x1(corners[0].Vec4(1)).Vec3()
	out := BoundingBox{Min: first, Max: first}
	for _, c := range corners[1:] {
		p := model.Mul4x1(c.Vec4(1)).Vec3()
		out.Min = minVec(out.Min, p)
		out.Max = maxVec(out.Max, p)
	}
	return out
}

// IntersectAABB reports whether a and b overlap on all three axes.
// Intervals are closed: boxes that only touch intersect.
func IntersectAABB(a, b BoundingBox) bool {
	return (a.Min.X() <= b.Max.X() && a.Max.X() >= b.Min.X()) &&
		(a.Min.Y() <= b.Max.Y() && a.Max.Y() >= b.Min.Y()) &&
		(a.Min.Z() <= b.Max.Z() && a.Max.Z() >= b.Min.Z())
}

// PointInsideAABB reports whether p lies within box, boundary included.
func PointInsideAABB(p mgl32.Vec3, box BoundingBox) bool {
	return p.X() >= box.Min.X() && p.X() <= box.Max.X() &&
		p.Y() >= box.Min.Y() && p.Y() <= box.Max.Y() &&
		p.Z() >= box.Min.Z() && p.Z() <= box.Max.Z()
}

func minVec(a, b mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{min(a[0], b[0]), min(a[1], b[1]), min(a[2], b[2])}
}

func maxVec(a, b mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{max(a[0], b[0]), max(a[1], b[1]), max(a[2], b[2])}
}
