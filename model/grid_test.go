package model

import (
	"testing"

	"github.com/pkg/errors"
)

func TestNewGridStartsDead(t *testing.T) {
	g, err := NewGrid(4, 6)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	if g.Rows() != 4 || g.Cols() != 6 {
		t.Fatalf("dimensions = %dx%d, expected 4x6", g.Rows(), g.Cols())
	}
	for r := 0; r <= g.Rows()+1; r++ {
		for c := 0; c <= g.Cols()+1; c++ {
			if g.Get(r, c) != Dead {
				t.Fatalf("cell (%d,%d) alive in a fresh grid", r, c)
			}
		}
	}
}

func TestNewGridInvalidSize(t *testing.T) {
	for _, dims := range [][2]int{{0, 5}, {5, 0}, {-1, 5}, {0, 0}} {
		if _, err := NewGrid(dims[0], dims[1]); errors.Cause(err) != ErrInvalidSize {
			t.Fatalf("NewGrid(%d, %d) error = %v, expected ErrInvalidSize", dims[0], dims[1], err)
		}
	}
}

func TestNewGridTooLarge(t *testing.T) {
	if _, err := NewGrid(1<<20, 1<<20); errors.Cause(err) != ErrGridTooLarge {
		t.Fatalf("expected ErrGridTooLarge, got %v", err)
	}
}

func TestSetIgnoresBorderAndOutOfRange(t *testing.T) {
	g, err := NewGrid(3, 3)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}

	for _, coord := range [][2]int{{0, 0}, {0, 2}, {4, 2}, {2, 0}, {2, 4}, {-1, 1}, {1, 99}} {
		g.SetAlive(coord[0], coord[1])
	}
	if pop := g.Population(); pop != 0 {
		t.Fatalf("population = %d after border-only writes, expected 0", pop)
	}

	g.SetAlive(2, 2)
	if g.Get(2, 2) != Alive {
		t.Fatal("interior write did not stick")
	}
}

func TestCountNeighbors(t *testing.T) {
	g, err := NewGrid(3, 3)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	g.SetAlive(1, 1)
	g.SetAlive(1, 2)
	g.SetAlive(2, 1)

	tests := []struct {
		r, c, expected int
	}{
		{2, 2, 3}, // all three live cells adjacent
		{1, 1, 2}, // corner, self excluded
		{3, 3, 0},
		{1, 3, 1},
	}
	for _, tt := range tests {
		if got := g.CountNeighbors(tt.r, tt.c); got != tt.expected {
			t.Errorf("CountNeighbors(%d,%d) = %d, expected %d", tt.r, tt.c, got, tt.expected)
		}
	}
}

func TestCopyIntoIndependence(t *testing.T) {
	src, err := NewGrid(3, 3)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	dst, err := NewGrid(3, 3)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}

	src.SetAlive(2, 2)
	if err = src.CopyInto(dst); err != nil {
		t.Fatalf("CopyInto: %v", err)
	}
	if !src.Equal(dst) {
		t.Fatal("copy does not equal source")
	}

	// Mutating the source must not leak into the copy.
	src.SetAlive(1, 1)
	if dst.Get(1, 1) != Dead {
		t.Fatal("copy aliases the source buffer")
	}
}

func TestCopyIntoSizeMismatch(t *testing.T) {
	src, err := NewGrid(3, 3)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	dst, err := NewGrid(3, 4)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	if err = src.CopyInto(dst); errors.Cause(err) != ErrSizeMismatch {
		t.Fatalf("expected ErrSizeMismatch, got %v", err)
	}
}

func TestGridPoolRecycles(t *testing.T) {
	pool := NewGridPool()
	g, err := pool.Get(3, 3)
	if err != nil {
		t.Fatalf("pool.Get: %v", err)
	}
	g.SetAlive(2, 2)
	pool.Put(g)

	g2, err := pool.Get(3, 3)
	if err != nil {
		t.Fatalf("pool.Get: %v", err)
	}
	if pop := g2.Population(); pop != 0 {
		t.Fatalf("pooled grid came back with population %d, expected 0", pop)
	}
}
