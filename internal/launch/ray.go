package launch

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// ScreenRay unprojects a pointer position into a world-space ray starting
// at the camera eye. y grows downward in screen space.
func ScreenRay(cursorX, cursorY float64, width, height int, view, proj mgl32.Mat4) (eye, dir mgl32.Vec3, err error) {
	if width <= 0 || height <= 0 {
		return eye, dir, ErrViewport
	}
	if view.Det() == 0 || proj.Det() == 0 {
		return eye, dir, ErrViewport
	}
	invProj := proj.Inv()
	invView := view.Inv()

	x := float32(2*cursorX/float64(width) - 1)
	y := float32(1 - 2*cursorY/float64(height))

	rayEye := invProj.Mul4x1(mgl32.Vec4{x, y, -1, 1})
	rayEye = mgl32.Vec4{rayEye.X(), rayEye.Y(), -1, 0}
	rayWorld := invView.Mul4x1(rayEye).Vec3()
	if rayWorld.Len() == 0 {
		return eye, dir, ErrViewport
	}

	eye = invView.Mul4x1(mgl32.Vec4{0, 0, 0, 1}).Vec3()
	return eye, rayWorld.Normalize(), nil
}

// IntersectHorizontalPlane returns where the ray meets the plane y = planeY.
func IntersectHorizontalPlane(origin, dir mgl32.Vec3, planeY float32) (mgl32.Vec3, error) {
	if math.Abs(float64(dir.Y())) < parallelEpsilon {
		return mgl32.Vec3{}, ErrRayParallel
	}
	t := (planeY - origin.Y()) / dir.Y()
	if t <= 0 {
		return mgl32.Vec3{}, ErrBehindCamera
	}
	return origin.Add(dir.Mul(t)), nil
}
