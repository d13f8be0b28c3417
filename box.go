package meshtool

// Box is an axis-aligned bounding box.
type Box struct {
	Min, Max Vector
}

// BoxForVectors returns the smallest box containing all of the given points.
// The zero Box is returned for an empty slice.
func BoxForVectors(vectors []Vector) Box {
	if len(vectors) == 0 {
		return Box{}
	}
	min := vectors[0]
	max := vectors[0]
	for _, v := range vectors[1:] {
		min = min.Min(v)
		max = max.Max(v)
	}
	return Box{min, max}
}

func (b Box) Size() Vector {
	return b.Max.Sub(b.Min)
}

func (b Box) Center() Vector {
	return b.Min.Add(b.Max).MulScalar(0.5)
}

// Diagonal is the distance between the box's min and max corners.
func (b Box) Diagonal() float64 {
	return b.Size().Length()
}
