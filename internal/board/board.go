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

const blankChar = '.'

// Board is a Same Game board: 8 columns of up to 6 cells each, always
// left-packed (non-empty columns occupy the leftmost widthRemain slots).
type Board struct {
	cols        types.ColArray[bitCol]
	widthRemain int
}

// Empty returns the empty board.
func Empty() Board { return Board{} }

// FromPieceArrays builds a full board (all 48 cells occupied) from a
// column-major array of piece arrays.
func FromPieceArrays(arrays types.ColArray[types.RowArray[types.Piece]]) Board {
	var cols types.ColArray[bitCol]
	for _, col := range types.AllCols() {
		ra := arrays.Get(col)
		var bc bitCol
		for _, row := range types.AllRows() {
			bc.set(row, uint8(ra.Get(row)))
		}
		cols.Set(col, bc)
	}
	return Board{cols: cols, widthRemain: types.ColNum}
}

// Get returns the piece at sq, if any.
func (b Board) Get(sq types.Square) (types.Piece, bool) {
	v := b.cols.Get(sq.Col()).get(sq.Row())
	if v == 0 {
		return 0, false
	}
	return types.Piece(v), true
}

// IsEmpty reports whether the board has no pieces at all.
func (b Board) IsEmpty() bool { return b.widthRemain == 0 }

// WidthRemain returns the number of non-empty (leftmost) columns.
func (b Board) WidthRemain() int { return b.widthRemain }

// NonEmptyCols returns the non-empty columns in ascending order.
func (b Board) NonEmptyCols() []types.Col {
	cols := make([]types.Col, b.widthRemain)
	for i := 0; i < b.widthRemain; i++ {
		cols[i], _ = types.ColFromIndex(i)
	}
	return cols
}

// PieceCount returns the number of squares occupied by piece p.
func (b Board) PieceCount(p types.Piece) int {
	return b.PieceMask(p).SquareCount()
}

// PieceCountTotal returns the number of occupied squares on the board.
func (b Board) PieceCountTotal() int {
	total := 0
	for _, col := range b.NonEmptyCols() {
		total += bits.OnesCount32(uint32(laneOccupied(b.cols.Get(col))))
	}
	return total
}

// PieceMask returns a mask of every square occupied by piece p.
func (b Board) PieceMask(p types.Piece) MaskBoard {
	filled := bitColBroadcast(uint8(p))

	var cols types.ColArray[bitCol]
	var colMask uint8
	for _, col := range b.NonEmptyCols() {
		bc := b.cols.Get(col) ^ filled
		bc = laneOccupied(bc)
		bc ^= bitColBroadcast(0b001)
		cols.Set(col, bc)
		if !bc.isZero() {
			colMask |= 1 << col.ToIndex()
		}
	}
	return MaskBoard{cols: cols, colMask: colMask}
}

// PieceComponent pairs a piece kind with one of its connected groups.
type PieceComponent struct {
	Piece types.Piece
	Mask  MaskBoard
}

// PieceComponents enumerates every connected group of same-piece squares
// for every piece kind, including singleton groups.
func (b Board) PieceComponents() []PieceComponent {
	var out []PieceComponent
	for _, p := range types.AllPieces() {
		for _, comp := range b.PieceMask(p).Components() {
			out = append(out, PieceComponent{Piece: p, Mask: comp})
		}
	}
	return out
}

// HasAction reports whether any two orthogonally adjacent squares share
// the same piece kind.
func (b Board) HasAction() bool {
	if b.IsEmpty() {
		return false
	}
	for _, p := range types.AllPieces() {
		mb := b.PieceMask(p)
		for _, col := range mb.NonEmptyCols() {
			bc := mb.cols.Get(col)
			if bc&(bc>>3) != 0 {
				return true
			}
			if col > 1 {
				if bc&mb.cols.Get(col-1) != 0 {
					return true
				}
			}
		}
	}
	return false
}

// Erase removes every square in mb, applies gravity within each column,
// and compacts away any columns left empty.
func (b Board) Erase(mb MaskBoard) Board {
	cols := b.cols
	var erasedColMask uint8
	for _, col := range mb.NonEmptyCols() {
		mask := uint32(^(mb.cols.Get(col) * 0b111))
		newBc := bitCol(pext32(uint32(cols.Get(col)), mask))
		cols.Set(col, newBc)
		if newBc.isZero() {
			erasedColMask |= 1 << col.ToIndex()
		}
	}

	widthRemain := b.widthRemain
	if erasedColMask != 0 {
		var packed types.ColArray[bitCol]
		w := 0
		for _, col := range b.NonEmptyCols() {
			if erasedColMask&(1<<col.ToIndex()) != 0 {
				continue
			}
			outCol, _ := types.ColFromIndex(w)
			packed.Set(outCol, cols.Get(col))
			w++
		}
		cols = packed
		widthRemain = w
	}

	return Board{cols: cols, widthRemain: widthRemain}
}

// XorMask returns the set of squares where b and other disagree.
func (b Board) XorMask(other Board) MaskBoard {
	n := b.widthRemain
	if other.widthRemain > n {
		n = other.widthRemain
	}

	var cols types.ColArray[bitCol]
	var colMask uint8
	for i := 0; i < n; i++ {
		col, _ := types.ColFromIndex(i)
		bc := laneOccupied(b.cols.Get(col) ^ other.cols.Get(col))
		cols.Set(col, bc)
		if !bc.isZero() {
			colMask |= 1 << col.ToIndex()
		}
	}
	return MaskBoard{cols: cols, colMask: colMask}
}

func (b Board) String() string {
	var sb strings.Builder
	for i := types.RowNum - 1; i >= 0; i-- {
		row, _ := types.RowFromIndex(i)
		for _, col := range types.AllCols() {
			sq, _ := types.NewSquare(col, row)
			if p, ok := b.Get(sq); ok {
				sb.WriteByte('0' + byte(p))
			} else {
				sb.WriteByte(blankChar)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// ParseBoard parses the 6-line, 8-char-per-line text format (top row
// first). The board must already be left-packed.
func ParseBoard(s string) (Board, error) {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	if len(lines) != types.RowNum {
		return Board{}, fmt.Errorf("board text must have exactly %d lines, got %d", types.RowNum, len(lines))
	}

	var cols types.ColArray[bitCol]
	for i, line := range lines {
		row, _ := types.RowFromIndex(types.RowNum - 1 - i)
		runes := []rune(line)
		if len(runes) != types.ColNum {
			return Board{}, fmt.Errorf("board row %s must have exactly %d characters, got %d", row, types.ColNum, len(runes))
		}
		for ci, ch := range runes {
			col, _ := types.ColFromIndex(ci)
			var v uint8
			switch {
			case ch == blankChar:
				v = 0
			case ch >= '1' && ch <= '5':
				v = uint8(ch - '0')
			default:
				sq, _ := types.NewSquare(col, row)
				return Board{}, fmt.Errorf("invalid character %q at square %s", ch, sq)
			}
			bc := cols.Get(col)
			bc.set(row, v)
			cols.Set(col, bc)
		}
	}

	widthRemain := types.ColNum
	for i := 0; i < types.ColNum; i++ {
		col, _ := types.ColFromIndex(i)
		if cols.Get(col).isZero() {
			widthRemain = i
			break
		}
	}
	for i := widthRemain; i < types.ColNum; i++ {
		col, _ := types.ColFromIndex(i)
		if !cols.Get(col).isZero() {
			return Board{}, fmt.Errorf("board is not left-packed: column %d is non-empty past widthRemain %d", i+1, widthRemain)
		}
	}

	return Board{cols: cols, widthRemain: widthRemain}, nil
}
