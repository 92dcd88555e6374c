package model

// AliveMarker is the character that marks a living cell in a world file.
const AliveMarker = '*'

// LoadWorld builds the initial grid from an ordered sequence of text lines.
// Line i (0-based) supplies interior row i+1; character j of that line
// supplies cell (i+1, j+1), alive iff it is the alive marker. Short lines,
// missing lines, and any other character leave cells dead, so a short or
// sparse file is valid input rather than an error. The loader performs no
// I/O; whoever read the file hands the lines in.
func LoadWorld(rows, cols int, lines []string) (*Grid, error) {
	grid, err := NewGrid(rows, cols)
	if err != nil {
		return nil, err
	}

	for r := 1; r <= rows; r++ {
		if r-1 >= len(lines) {
			break
		}
		line := lines[r-1]
		for c := 1; c <= cols; c++ {
			if c-1 >= len(line) {
				break
			}
			if line[c-1] == AliveMarker {
				grid.SetAlive(r, c)
			}
		}
	}

	return grid, nil
}
