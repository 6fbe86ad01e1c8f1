package mino

// Score returns the points awarded for clearing lines rows with one lock.
func Score(lines int) int {
	return lines * 15 * lines
}
