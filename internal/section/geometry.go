package section

import "math"

// polygonProperties uses the shoelace formula. The signed area is positive
// for counter-clockwise vertex order.
func polygonProperties(vs []Point) (signedArea float64, centroid Point) {
	n := len(vs)
	if n < 3 {
		return 0, Point{}
	}

	var sumX, sumY float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		cross := vs[i].X*vs[j].Y - vs[j].X*vs[i].Y
		signedArea += cross
		sumX += (vs[i].X + vs[j].X) * cross
		sumY += (vs[i].Y + vs[j].Y) * cross
	}

	signedArea /= 2
	if signedArea != 0 {
		centroid = Point{X: sumX / (6 * signedArea), Y: sumY / (6 * signedArea)}
	}
	return signedArea, centroid
}

// secondMomentX returns the second moment of area of a polygon about a
// horizontal axis through its own centroid
func secondMomentX(vs []Point) float64 {
	n := len(vs)
	signedArea, c := polygonProperties(vs)
	if signedArea == 0 {
		return 0
	}

	// Ixx about the origin, then shift to the centroid
	var ixx float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		cross := vs[i].X*vs[j].Y - vs[j].X*vs[i].Y
		ixx += (vs[i].Y*vs[i].Y + vs[i].Y*vs[j].Y + vs[j].Y*vs[j].Y) * cross
	}
	ixx /= 12
	if signedArea < 0 {
		ixx = -ixx
	}
	return ixx - math.Abs(signedArea)*c.Y*c.Y
}

// newPatch validates a quadrilateral and stores it counter-clockwise
func newPatch(tag int, vs [4]Point) (Fiber, error) {
	for _, v := range vs {
		if math.IsNaN(v.X) || math.IsNaN(v.Y) || math.IsInf(v.X, 0) || math.IsInf(v.Y, 0) {
			return Fiber{}, &FiberError{Kind: PatchFiber, Tag: tag, Reason: "vertex coordinates must be finite"}
		}
	}

	signedArea, c := polygonProperties(vs[:])
	if signedArea < 0 {
		vs[1], vs[3] = vs[3], vs[1]
		signedArea = -signedArea
	}

	// relative to the bounding box so tiny units are not rejected
	minPt, maxPt := vs[0], vs[0]
	for _, v := range vs[1:] {
		minPt.X, minPt.Y = min(minPt.X, v.X), min(minPt.Y, v.Y)
		maxPt.X, maxPt.Y = max(maxPt.X, v.X), max(maxPt.Y, v.Y)
	}
	box := (maxPt.X - minPt.X) * (maxPt.Y - minPt.Y)
	if !(signedArea > 0) || signedArea <= 1e-12*box {
		return Fiber{}, &FiberError{Kind: PatchFiber, Tag: tag, Reason: "polygon encloses no area"}
	}

	return Fiber{
		Tag:      tag,
		Kind:     PatchFiber,
		Vertices: vs,
		Area:     signedArea,
		Centroid: c,
	}, nil
}
