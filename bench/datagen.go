// Copyright 2026 go-classicsort Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package bench

import (
	"math/rand"

	"github.com/ajroetker/go-classicsort/workerpool"
)

// genBlock is the fixed fill-block length. Each block gets its own random
// source derived from the generator seed and the block index, so output is
// reproducible for a given seed regardless of how many workers fill it.
const genBlock = 1 << 16

// Generator produces reproducible random benchmark inputs, fanning large
// fills out across a worker pool.
type Generator struct {
	pool *workerpool.Pool
	seed int64
}

// NewGenerator creates a Generator with the given seed. Close releases its
// worker pool.
func NewGenerator(seed int64) *Generator {
	return &Generator{
		pool: workerpool.New(0),
		seed: seed,
	}
}

// Close shuts down the generator's worker pool.
func (g *Generator) Close() {
	g.pool.Close()
}

// Int64s returns n values drawn uniformly from [0, bound).
func (g *Generator) Int64s(n int, bound int64) []int64 {
	if bound <= 0 {
		bound = 1
	}

	data := make([]int64, n)
	g.fill(n, func(block, start, end int) {
		rng := rand.New(rand.NewSource(g.seed + int64(block)))
		for i := start; i < end; i++ {
			data[i] = rng.Int63n(bound)
		}
	})
	return data
}

// Float64s returns n values drawn uniformly from [0, scale).
func (g *Generator) Float64s(n int, scale float64) []float64 {
	data := make([]float64, n)
	g.fill(n, func(block, start, end int) {
		rng := rand.New(rand.NewSource(g.seed + int64(block)))
		for i := start; i < end; i++ {
			data[i] = rng.Float64() * scale
		}
	})
	return data
}

// fill invokes fillBlock for every genBlock-sized block of [0, n), in
// parallel when there is more than one block.
func (g *Generator) fill(n int, fillBlock func(block, start, end int)) {
	if n <= 0 {
		return
	}

	blocks := (n + genBlock - 1) / genBlock
	if blocks == 1 {
		fillBlock(0, 0, n)
		return
	}

	g.pool.ParallelFor(blocks, func(bStart, bEnd int) {
		for b := bStart; b < bEnd; b++ {
			start := b * genBlock
			end := min(start+genBlock, n)
			fillBlock(b, start, end)
		}
	})
}
