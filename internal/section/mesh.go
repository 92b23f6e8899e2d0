package section

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Mesh finalizes the section. The geometry is first rotated rotate degrees
// counter-clockwise about the origin, then the centroid, the extreme fibers
// and every fiber's depth and eccentricity are computed. Add methods fail
// with ErrSectionMeshed afterwards.
func (s *Section) Mesh(rotate float64) error {
	if s.meshed {
		return ErrSectionMeshed
	}
	if len(s.patches)+len(s.nodes) == 0 {
		return ErrEmptySection
	}
	if math.IsNaN(rotate) || math.IsInf(rotate, 0) {
		return invalidOption("rotation must be finite, got %g", rotate)
	}

	if rotate != 0 {
		s.rotateFibers(rotate)
	}

	// centroid using first moment of area over all fibers
	var sumA, xA, yA, patchA float64
	for i := range s.patches {
		f := &s.patches[i]
		sumA += f.Area
		patchA += f.Area
		xA += f.Area * f.Centroid.X
		yA += f.Area * f.Centroid.Y
	}
	for i := range s.nodes {
		f := &s.nodes[i]
		sumA += f.Area
		xA += f.Area * f.Centroid.X
		yA += f.Area * f.Centroid.Y
	}
	if !(sumA > 0) {
		return ErrEmptySection
	}
	s.area = patchA
	s.centroid = Point{X: xA / sumA, Y: yA / sumA}

	minPt, maxPt := s.Bounds()
	s.ymax, s.ymin = maxPt.Y, minPt.Y

	for i := range s.patches {
		s.patches[i].locate(s.centroid, s.ymax)
	}
	for i := range s.nodes {
		s.nodes[i].locate(s.centroid, s.ymax)
	}

	s.rotation = rotate
	s.meshed = true
	return nil
}

// locate updates the fiber location with respect to the section
func (f *Fiber) locate(centroid Point, ymax float64) {
	f.Depth = ymax - f.Centroid.Y
	f.Ecc = Point{X: f.Centroid.X - centroid.X, Y: centroid.Y - f.Centroid.Y}
}

// rotateFibers applies the rotation to every vertex, patch centroid and bar
func (s *Section) rotateFibers(deg float64) {
	pts := make([]*Point, 0, 5*len(s.patches)+len(s.nodes))
	for i := range s.patches {
		f := &s.patches[i]
		for j := range f.Vertices {
			pts = append(pts, &f.Vertices[j])
		}
		pts = append(pts, &f.Centroid)
	}
	for i := range s.nodes {
		pts = append(pts, &s.nodes[i].Centroid)
	}

	out := rotatePoints(pts, deg)
	for i, p := range pts {
		p.X, p.Y = out.At(0, i), out.At(1, i)
	}
}

// rotatePoints returns the 2×n matrix T·[x; y] for a counter-clockwise
// rotation T by deg degrees
func rotatePoints(pts []*Point, deg float64) *mat.Dense {
	n := len(pts)
	if n == 0 {
		return mat.NewDense(2, 1, nil)
	}
	coords := mat.NewDense(2, n, nil)
	for i, p := range pts {
		coords.Set(0, i, p.X)
		coords.Set(1, i, p.Y)
	}

	rad := deg * math.Pi / 180
	sin, cos := math.Sincos(rad)
	t := mat.NewDense(2, 2, []float64{
		cos, -sin,
		sin, cos,
	})

	var out mat.Dense
	out.Mul(t, coords)
	return &out
}

// orientation holds fiber depths measured in a rotated frame, used by the
// interaction sweep
type orientation struct {
	angle       float64
	patchDepths []float64
	nodeDepths  []float64
	depth       float64 // overall depth in the rotated frame
	deepestBar  float64 // depth of the extreme bar, dt
}

// orient measures depths after rotating the meshed geometry deg degrees
// counter-clockwise. Moments are still taken with the unrotated Ecc.
func (s *Section) orient(deg float64) orientation {
	o := orientation{angle: deg}

	// vertices for the extreme fibers, centroids for the fiber depths
	pts := make([]*Point, 0, 5*len(s.patches)+len(s.nodes))
	for i := range s.patches {
		f := s.patches[i]
		for j := range f.Vertices {
			v := f.Vertices[j]
			pts = append(pts, &v)
		}
		c := f.Centroid
		pts = append(pts, &c)
	}
	for i := range s.nodes {
		c := s.nodes[i].Centroid
		pts = append(pts, &c)
	}
	out := rotatePoints(pts, deg)

	ymax, ymin := math.Inf(-1), math.Inf(1)
	for i := range pts {
		y := out.At(1, i)
		ymax = max(ymax, y)
		ymin = min(ymin, y)
	}
	o.depth = ymax - ymin

	o.patchDepths = make([]float64, len(s.patches))
	for i := range s.patches {
		o.patchDepths[i] = ymax - out.At(1, 5*i+4)
	}
	base := 5 * len(s.patches)
	o.nodeDepths = make([]float64, len(s.nodes))
	for i := range s.nodes {
		d := ymax - out.At(1, base+i)
		o.nodeDepths[i] = d
		o.deepestBar = max(o.deepestBar, d)
	}
	return o
}
