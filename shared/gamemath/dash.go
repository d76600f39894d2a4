package gamemath

// Segment is a straight stroke between two points.
type Segment struct {
	From, To Vec2
}

// DashPolyline splits a polyline into the visible segments of a dash pattern.
// The pattern alternates on and off lengths and carries across vertices; an
// odd-length pattern is repeated once, as SVG does.
// An empty or all-zero pattern yields one segment per polyline edge.
func DashPolyline(points []Vec2, pattern []float64) []Segment {
	if len(points) < 2 {
		return nil
	}

	total := 0.0
	for _, d := range pattern {
		total += d
	}
	if total <= 0 {
		segments := make([]Segment, 0, len(points)-1)
		for i := 1; i < len(points); i++ {
			segments = append(segments, Segment{From: points[i-1], To: points[i]})
		}
		return segments
	}

	if len(pattern)%2 == 1 {
		pattern = append(append([]float64(nil), pattern...), pattern...)
	}

	var segments []Segment
	idx := 0
	remaining := pattern[0]
	for i := 1; i < len(points); i++ {
		from, to := points[i-1], points[i]
		edge := to.Sub(from)
		length := edge.Length()
		if length == 0 {
			continue
		}
		dir := edge.Mult(1 / length)

		travelled := 0.0
		for travelled < length {
			step := remaining
			if travelled+step > length {
				step = length - travelled
			}
			if idx%2 == 0 && step > 0 {
				segments = append(segments, Segment{
					From: from.Add(dir.Mult(travelled)),
					To:   from.Add(dir.Mult(travelled + step)),
				})
			}
			travelled += step
			remaining -= step
			if remaining <= 0 {
				idx = (idx + 1) % len(pattern)
				remaining = pattern[idx]
			}
		}
	}
	return segments
}
