package model

import (
	"bytes"
	"testing"
)

func TestDisplayFrameFormat(t *testing.T) {
	g, err := LoadWorld(3, 3, []string{" * ", " * ", " * "})
	if err != nil {
		t.Fatalf("LoadWorld: %v", err)
	}

	var buf bytes.Buffer
	r := &TerminalRenderer{Out: &buf}
	r.Display(g, 7)

	expected := "Generation 7:\n" +
		" * \n" +
		" * \n" +
		" * \n" +
		"================================\n"
	if buf.String() != expected {
		t.Fatalf("frame mismatch:\ngot:\n%q\nexpected:\n%q", buf.String(), expected)
	}
}
