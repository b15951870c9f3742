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

// Package board implements the bit-packed board representation: one
// column per 32-bit word, 3 bits per cell (6 rows, 18 bits used).
package board

import "github.com/fkopp/samegame/internal/types"

// bitCol packs one board column: 6 cells of 3 bits each, cell value 0
// for blank or 1..5 for a piece kind.
type bitCol uint32

const bitColLaneUnit bitCol = 0b001_001_001_001_001_001

// bitColBroadcast returns a bitCol with every lane set to value (<= 0b111).
func bitColBroadcast(value uint8) bitCol {
	return bitColLaneUnit * bitCol(value)
}

func (bc bitCol) get(row types.Row) uint8 {
	return uint8((bc >> (3 * uint(row.ToIndex()))) & 0b111)
}

func (bc *bitCol) set(row types.Row, value uint8) {
	shift := 3 * uint(row.ToIndex())
	*bc &^= 0b111 << shift
	*bc |= bitCol(value) << shift
}

func (bc bitCol) isZero() bool { return bc == 0 }

// laneOccupied reduces each 3-bit lane of bc to a single low bit: 1 if
// any of the lane's 3 bits are set, 0 otherwise.
func laneOccupied(bc bitCol) bitCol {
	return (bc | (bc >> 1) | (bc >> 2)) & bitColBroadcast(0b001)
}

// pext32 is a portable parallel-bits-extract: it gathers the bits of x
// selected by mask into the low end of the result, preserving their
// relative order. Go has no PEXT intrinsic, so this walks mask's set
// bits from low to high.
func pext32(x, mask uint32) uint32 {
	var res uint32
	var pos uint
	for m := mask; m != 0; m &= m - 1 {
		bit := m & (-m)
		if x&bit != 0 {
			res |= 1 << pos
		}
		pos++
	}
	return res
}
