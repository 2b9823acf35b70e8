// Package matrix_test contains shared fixtures for the matrix package tests.
package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katavel/gridmat/matrix"
)

// mustNew allocates a rows×cols matrix or aborts the test.
func mustNew[T any](t *testing.T, rows, cols int) *matrix.Matrix[T] {
	t.Helper()
	m, err := matrix.New[T](rows, cols)
	if err != nil {
		t.Fatalf("New(%d,%d): %v", rows, cols, err)
	}

	return m
}

// mustAt reads m[i,j] or aborts the test.
func mustAt[T any](t *testing.T, m *matrix.Matrix[T], i, j int) T {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// seqMatrix returns a rows×cols int matrix filled row-major with 1..rows*cols.
func seqMatrix(t *testing.T, rows, cols int) *matrix.Matrix[int] {
	t.Helper()
	m := mustNew[int](t, rows, cols)
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if err := m.Set(i, j, i*cols+j+1); err != nil {
				t.Fatalf("Set(%d,%d): %v", i, j, err)
			}
		}
	}

	return m
}

// ---------- bench helpers ----------

// benchMatrix allocates an r×c int matrix filled with deterministic values.
func benchMatrix(b *testing.B, r, c int) *matrix.Matrix[int] {
	b.Helper()
	m, err := matrix.New[int](r, c)
	if err != nil {
		b.Fatalf("New(%d,%d): %v", r, c, err)
	}
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			_ = m.Set(i, j, rng.Intn(2000)-1000) // [-1000,1000)
		}
	}

	return m
}

// benchRows builds an r×c [][]int fixture for construction benchmarks.
func benchRows(r, c int) [][]int {
	rng := rand.New(rand.NewSource(1337))
	rows := make([][]int, r)
	for i := range rows {
		rows[i] = make([]int, c)
		for j := range rows[i] {
			rows[i][j] = rng.Intn(2000) - 1000
		}
	}

	return rows
}
