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

package board

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/fkopp/samegame/internal/types"
)

const (
	maskFalseChar = '.'
	maskTrueChar  = '*'
)

// MaskBoard is a set of board squares, represented the same way as
// Board but with each occupied lane holding exactly 0b001.
type MaskBoard struct {
	cols    types.ColArray[bitCol]
	colMask uint8
}

// EmptyMask returns the empty set of squares.
func EmptyMask() MaskBoard { return MaskBoard{} }

// Single returns the mask containing exactly sq.
func Single(sq types.Square) MaskBoard {
	var cols types.ColArray[bitCol]
	var bc bitCol
	bc.set(sq.Row(), 0b001)
	cols.Set(sq.Col(), bc)
	return MaskBoard{cols: cols, colMask: 1 << sq.Col().ToIndex()}
}

// Test reports whether sq is in the mask.
func (mb MaskBoard) Test(sq types.Square) bool {
	return mb.cols.Get(sq.Col()).get(sq.Row()) != 0
}

// Set adds or removes sq from the mask.
func (mb *MaskBoard) Set(sq types.Square, value bool) {
	bc := mb.cols.Get(sq.Col())
	var v uint8
	if value {
		v = 0b001
	}
	bc.set(sq.Row(), v)
	mb.cols.Set(sq.Col(), bc)
	if bc.isZero() {
		mb.colMask &^= 1 << sq.Col().ToIndex()
	} else {
		mb.colMask |= 1 << sq.Col().ToIndex()
	}
}

// IsEmpty reports whether the mask has no squares.
func (mb MaskBoard) IsEmpty() bool { return mb.colMask == 0 }

// IsSingle reports whether the mask has exactly one square.
func (mb MaskBoard) IsSingle() bool {
	if mb.colMask == 0 || mb.colMask&(mb.colMask-1) != 0 {
		return false
	}
	col, _ := mb.LeastNonEmptyCol()
	bc := mb.cols.Get(col)
	return !bc.isZero() && bc&(bc-1) == 0
}

// NonEmptyColCount returns the number of non-empty columns.
func (mb MaskBoard) NonEmptyColCount() int {
	return bits.OnesCount8(mb.colMask)
}

// SquareCount returns the number of squares in the mask.
func (mb MaskBoard) SquareCount() int {
	total := 0
	for _, col := range mb.NonEmptyCols() {
		total += bits.OnesCount32(uint32(mb.cols.Get(col)))
	}
	return total
}

// LeastNonEmptyCol returns the smallest non-empty column, if any.
func (mb MaskBoard) LeastNonEmptyCol() (types.Col, bool) {
	if mb.colMask == 0 {
		return 0, false
	}
	idx := bits.TrailingZeros8(mb.colMask)
	return types.ColFromIndex(idx)
}

// NonEmptyCols returns every non-empty column in ascending order.
func (mb MaskBoard) NonEmptyCols() []types.Col {
	var cols []types.Col
	for m := mb.colMask; m != 0; m &= m - 1 {
		idx := bits.TrailingZeros8(m)
		col, _ := types.ColFromIndex(idx)
		cols = append(cols, col)
	}
	return cols
}

// LeastSquare returns the smallest square in the mask, if any.
func (mb MaskBoard) LeastSquare() (types.Square, bool) {
	col, ok := mb.LeastNonEmptyCol()
	if !ok {
		return 0, false
	}
	bc := mb.cols.Get(col)
	idx := bits.TrailingZeros32(uint32(bc)) / 3
	row, _ := types.RowFromIndex(idx)
	return types.NewSquare(col, row)
}

// Squares returns every square in the mask in ascending order.
func (mb MaskBoard) Squares() []types.Square {
	var sqs []types.Square
	for _, col := range mb.NonEmptyCols() {
		bc := uint32(mb.cols.Get(col))
		for bc != 0 {
			idx := bits.TrailingZeros32(bc)
			row, _ := types.RowFromIndex(idx / 3)
			sq, _ := types.NewSquare(col, row)
			sqs = append(sqs, sq)
			bc &= bc - 1
		}
	}
	return sqs
}

// Subtract returns the set difference mb - rhs.
func (mb MaskBoard) Subtract(rhs MaskBoard) MaskBoard {
	res := mb
	res.SubtractAssign(rhs)
	return res
}

// SubtractAssign removes every square of rhs from mb.
func (mb *MaskBoard) SubtractAssign(rhs MaskBoard) {
	for _, col := range rhs.NonEmptyCols() {
		bc := mb.cols.Get(col) &^ rhs.cols.Get(col)
		mb.cols.Set(col, bc)
		if bc.isZero() {
			mb.colMask &^= 1 << col.ToIndex()
		}
	}
}

// Components enumerates the mask's 4-connected groups, including
// singletons.
func (mb MaskBoard) Components() []MaskBoard {
	remain := mb
	var comps []MaskBoard
	for !remain.IsEmpty() {
		seed := remain.blsi()
		comp := remain.floodFillFrom(seed)
		remain = remain.Subtract(comp)
		comps = append(comps, comp)
	}
	return comps
}

// FloodFill returns the 4-connected group of mb containing sq. sq must
// already be set in mb.
func (mb MaskBoard) FloodFill(sq types.Square) (MaskBoard, error) {
	if !mb.Test(sq) {
		return MaskBoard{}, fmt.Errorf("square %s is not set in mask", sq)
	}
	return mb.floodFillFrom(Single(sq)), nil
}

// floodFillFrom grows seed (a single square already inside mb) to the
// full 4-connected group within mb, widening a [cMin, cMax] column
// window to a fixed point.
func (mb MaskBoard) floodFillFrom(seed MaskBoard) MaskBoard {
	cols := seed.cols
	colMask := seed.colMask
	cMin, _ := seed.LeastNonEmptyCol()
	cMax := cMin

	for {
		updated := false

		for c := cMin; c <= cMax; c++ {
			bc := cols.Get(c)
			merged := (bc | (bc << 3) | (bc >> 3)) & mb.cols.Get(c)
			if merged != bc {
				cols.Set(c, merged)
				updated = true
			}
		}
		for c := cMin + 1; c <= cMax; c++ {
			prev := c - 1
			merged := (cols.Get(prev) | cols.Get(c)) & mb.cols.Get(prev)
			if merged != cols.Get(prev) {
				cols.Set(prev, merged)
				updated = true
			}
		}
		for c := cMin + 1; c <= cMax; c++ {
			prev := c - 1
			merged := (cols.Get(prev) | cols.Get(c)) & mb.cols.Get(c)
			if merged != cols.Get(c) {
				cols.Set(c, merged)
				updated = true
			}
		}
		if cMin > 1 {
			prev := cMin - 1
			merged := cols.Get(cMin) & mb.cols.Get(prev)
			if !merged.isZero() {
				cols.Set(prev, merged)
				colMask |= 1 << prev.ToIndex()
				cMin = prev
				updated = true
			}
		}
		if int(cMax) < types.ColNum {
			next := cMax + 1
			merged := cols.Get(cMax) & mb.cols.Get(next)
			if !merged.isZero() {
				cols.Set(next, merged)
				colMask |= 1 << next.ToIndex()
				cMax = next
				updated = true
			}
		}

		if !updated {
			return MaskBoard{cols: cols, colMask: colMask}
		}
	}
}

// blsi returns a mask containing only the lowest-ordered square of mb.
func (mb MaskBoard) blsi() MaskBoard {
	col, ok := mb.LeastNonEmptyCol()
	if !ok {
		return MaskBoard{}
	}
	bc := mb.cols.Get(col)
	lsb := bc & (-bc)

	var cols types.ColArray[bitCol]
	cols.Set(col, lsb)
	return MaskBoard{cols: cols, colMask: 1 << col.ToIndex()}
}

func (mb MaskBoard) String() string {
	var sb strings.Builder
	for i := types.RowNum - 1; i >= 0; i-- {
		row, _ := types.RowFromIndex(i)
		for _, col := range types.AllCols() {
			sq, _ := types.NewSquare(col, row)
			if mb.Test(sq) {
				sb.WriteByte(maskTrueChar)
			} else {
				sb.WriteByte(maskFalseChar)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// ParseMaskBoard parses the 6-line, 8-char-per-line text format (top
// row first, '*' set / '.' unset).
func ParseMaskBoard(s string) (MaskBoard, error) {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	if len(lines) != types.RowNum {
		return MaskBoard{}, fmt.Errorf("mask board text must have exactly %d lines, got %d", types.RowNum, len(lines))
	}

	var mb MaskBoard
	for i, line := range lines {
		row, _ := types.RowFromIndex(types.RowNum - 1 - i)
		runes := []rune(line)
		if len(runes) != types.ColNum {
			return MaskBoard{}, fmt.Errorf("mask board row %s must have exactly %d characters, got %d", row, types.ColNum, len(runes))
		}
		for ci, ch := range runes {
			col, _ := types.ColFromIndex(ci)
			sq, _ := types.NewSquare(col, row)
			switch ch {
			case maskFalseChar:
				mb.Set(sq, false)
			case maskTrueChar:
				mb.Set(sq, true)
			default:
				return MaskBoard{}, fmt.Errorf("invalid character %q at square %s", ch, sq)
			}
		}
	}
	return mb, nil
}
