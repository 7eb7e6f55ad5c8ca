package projectile

import "github.com/go-gl/mathgl/mgl32"

// BezierPoint evaluates the cubic Bézier curve through p0 and p3 shaped by p1, p2:
//
//	P(t) = (1-t)^3 p0 + 3(1-t)^2 t p1 + 3(1-t) t^2 p2 + t^3 p3
//
// t = 0 returns p0 and t = 1 returns p3 exactly.
func BezierPoint(t float32, p0, p1, p2, p3 mgl32.Vec3) mgl32.Vec3 {
	u := 1 - t

	point := p0.Mul(u * u * u)
	point = point.Add(p1.Mul(3 * u * u * t))
	point = point.Add(p2.Mul(3 * u * t * t))
	point = point.Add(p3.Mul(t * t * t))
	return point
}
