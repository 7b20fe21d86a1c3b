package core

// Hit is a resolved ray-surface intersection
type Hit struct {
	Pos    Vec3
	Norm   Vec3 // unit length, facing out of the enclosed side
	Inside bool // ray arrived from the enclosed side
}

// NewHit creates a hit, normalizing norm
func NewHit(pos, norm Vec3, inside bool) Hit {
	return Hit{Pos: pos, Norm: norm.Normalize(), Inside: inside}
}

// Biased moves the hit position along the normal by bias
func (h Hit) Biased(bias float64) Hit {
	return Hit{Pos: h.Pos.Add(h.Norm.Multiply(bias)), Norm: h.Norm, Inside: h.Inside}
}

// WithNorm replaces the normal, normalizing it
func (h Hit) WithNorm(norm Vec3) Hit {
	return Hit{Pos: h.Pos, Norm: norm.Normalize(), Inside: h.Inside}
}
