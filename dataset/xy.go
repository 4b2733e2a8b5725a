package dataset

// XYPairs extracts (x, y) observations from rows for curve fitting, e.g.
// outdoor temperature against COP. Rows where either field is absent or not
// numeric are skipped rather than invented.
func XYPairs(rows []Record, xField, yField string) []Point {
	points := make([]Point, 0, len(rows))
	for _, row := range rows {
		x, ok := row.Float(xField)
		if !ok {
			continue
		}
		y, ok := row.Float(yField)
		if !ok {
			continue
		}
		points = append(points, Point{X: x, Y: y})
	}

	return points
}
