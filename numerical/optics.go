package numerical

// Reflect reflects v about the unit vector h. Both vectors point away
// from the surface, so the result is 2(v·h)h - v.
func Reflect(v, h Vector) Vector {
	res := h.Mul(2 * v.Dot(h))
	res.MultiplyAdd(-1, v)
	return res
}
