package scroll

// Pointer is a cursor position normalized to [-1,1] on both axes, with +Y up.
type Pointer struct {
	X float64
	Y float64
}

// NormalizePointer maps window pixel coordinates into Pointer space.
func NormalizePointer(x, y, width, height float64) Pointer {
	if width <= 0 || height <= 0 {
		return Pointer{}
	}
	return Pointer{
		X: Clamp(x/width*2-1, -1, 1),
		Y: Clamp(-(y/height)*2+1, -1, 1),
	}
}
