// Copyright 2026 The go-classicsort Authors. SPDX-License-Identifier: Apache-2.0

package workerpool

import (
	"runtime"
	"testing"
)

func TestNew(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	if pool.NumWorkers() != 4 {
		t.Errorf("NumWorkers() = %d, want 4", pool.NumWorkers())
	}
}

func TestNewDefault(t *testing.T) {
	pool := New(0)
	defer pool.Close()

	if pool.NumWorkers() != runtime.GOMAXPROCS(0) {
		t.Errorf("NumWorkers() = %d, want %d", pool.NumWorkers(), runtime.GOMAXPROCS(0))
	}
}

func TestParallelFor(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	n := 100
	results := make([]int, n)

	pool.ParallelFor(n, func(start, end int) {
		for i := start; i < end; i++ {
			results[i] = i * 2
		}
	})

	for i := 0; i < n; i++ {
		if results[i] != i*2 {
			t.Errorf("results[%d] = %d, want %d", i, results[i], i*2)
		}
	}
}

func TestParallelForEmpty(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	called := false
	pool.ParallelFor(0, func(start, end int) {
		called = true
	})

	if called {
		t.Error("ParallelFor(0) should not invoke fn")
	}
}

func TestParallelForAfterClose(t *testing.T) {
	pool := New(4)
	pool.Close()

	n := 10
	results := make([]int, n)

	// Falls back to sequential execution on a closed pool.
	pool.ParallelFor(n, func(start, end int) {
		for i := start; i < end; i++ {
			results[i] = i
		}
	})

	for i := 0; i < n; i++ {
		if results[i] != i {
			t.Errorf("results[%d] = %d, want %d", i, results[i], i)
		}
	}
}

func TestCloseTwice(t *testing.T) {
	pool := New(2)
	pool.Close()
	pool.Close()
}
