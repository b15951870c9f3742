/*
 * samegame - optimal-score solver for Same Game (easy mode)
 *
 * MIT License
 *
 * Copyright (c) 2024-2026 samegame contributors
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Package zobrist holds the process-wide table of random 64-bit keys
// used to incrementally hash a board: one key per (piece, square) pair.
// The table is generated once, at process start, from a fixed seed so
// that keys (and therefore transposition-table contents) are
// reproducible across runs.
package zobrist

import "github.com/fkopp/samegame/internal/types"

// Key is a Zobrist hash value.
type Key = uint64

// seed is fixed so the table — and every Key it produces — is the same
// on every run.
const seed uint64 = 2024

// board holds one random key per (piece, square) combination.
var board types.PieceArray[types.SquareArray[Key]]

func init() {
	r := newRandom(seed)
	for _, p := range types.AllPieces() {
		var row types.SquareArray[Key]
		for _, sq := range types.AllSquares() {
			row.Set(sq, r.rand64())
		}
		board.Set(p, row)
	}
}

// Board returns the key associated with piece occupying sq.
func Board(piece types.Piece, sq types.Square) Key {
	row := board.Get(piece)
	return row.Get(sq)
}

// random is the xorshift64star PRNG, dedicated to the public domain by
// Sebastiano Vigna (2014). Does not require warm-up; period 2^64-1.
type random struct {
	s uint64
}

// newRandom creates a generator seeded with s. s must not be 0.
func newRandom(s uint64) random {
	if s == 0 {
		panic("zobrist: random seed must not be 0")
	}
	return random{s: s}
}

func (r *random) rand64() uint64 {
	r.s ^= r.s << 25
	r.s ^= r.s >> 27
	r.s ^= r.s >> 12
	return r.s * 2685821657736338717
}
