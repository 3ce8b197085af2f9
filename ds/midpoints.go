package ds

// Midpoints collapses face locations to cell-center locations by averaging
// consecutive entries. A slice with fewer than two faces has no cells.
func Midpoints(faces []float64) []float64 {
	if len(faces) < 2 {
		return []float64{}
	}
	centers := make([]float64, 0, len(faces)-1)
	for i := 0; i < len(faces)-1; i++ {
		centers = append(centers, (faces[i]+faces[i+1])*0.5)
	}
	return centers
}
