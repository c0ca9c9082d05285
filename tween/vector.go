package tween

// Vec2 is a two component vector.
type Vec2 struct {
	X, Y float64
}

// Lerp blends each component towards t.
func (v Vec2) Lerp(t Vec2, p float64) Vec2 {
	return Vec2{LerpFloat64(v.X, t.X, p), LerpFloat64(v.Y, t.Y, p)}
}

// Vec3 is a three component vector.
type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) Lerp(t Vec3, p float64) Vec3 {
	return Vec3{LerpFloat64(v.X, t.X, p), LerpFloat64(v.Y, t.Y, p), LerpFloat64(v.Z, t.Z, p)}
}

// Vec4 is a four component vector.
type Vec4 struct {
	X, Y, Z, W float64
}

func (v Vec4) Lerp(t Vec4, p float64) Vec4 {
	return Vec4{
		LerpFloat64(v.X, t.X, p),
		LerpFloat64(v.Y, t.Y, p),
		LerpFloat64(v.Z, t.Z, p),
		LerpFloat64(v.W, t.W, p),
	}
}
