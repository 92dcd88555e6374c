package model

import (
	"fmt"
	"io"
	"os"
	"os/exec"
)

const (
	deadMarker = ' '

	frameSeparator = "================================"

	clearCmd = "clear"
)

// TerminalRenderer implements basic terminal rendering
type TerminalRenderer struct {
	// Out defaults to stdout when nil.
	Out io.Writer
}

// Display renders one generation: a header, the interior cells as marker
// characters, and a separator rule
func (r *TerminalRenderer) Display(g *Grid, generation int) {
	out := r.Out
	if out == nil {
		out = os.Stdout
	}

	fmt.Fprintf(out, "Generation %d:\n", generation)
	for row := 1; row <= g.Rows(); row++ {
		for col := 1; col <= g.Cols(); col++ {
			marker := byte(deadMarker)
			if g.Get(row, col) == Alive {
				marker = AliveMarker
			}
			fmt.Fprintf(out, "%c", marker)
		}
		fmt.Fprintln(out)
	}
	fmt.Fprintln(out, frameSeparator)
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() {
	cmd := exec.Command(clearCmd)
	cmd.Stdout = os.Stdout
	if err := cmd.Run(); err != nil {
		fmt.Println("Error clearing terminal:", err)
	}
}
