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

// Package types holds the small bounded-ordinal types shared by the rest
// of the engine: board columns, rows, squares and piece kinds. Each is a
// plain integer newtype with a fixed, 1-based range, mirroring the way
// chess square/piece kinds are represented as small integer types rather
// than as general-purpose ints.
package types

import "fmt"

// Col is a board column, 1..=8 (left to right).
type Col uint8

// Row is a board row, 1..=6 (bottom to top).
type Row uint8

const (
	// ColNum is the number of columns on the board.
	ColNum = 8
	// RowNum is the number of rows on the board.
	RowNum = 6
	// SquareNum is the number of squares on the board.
	SquareNum = ColNum * RowNum
	// PieceNum is the number of distinct piece kinds.
	PieceNum = 5
)

// ColFromIndex builds a Col from a 0-based index in [0, ColNum).
func ColFromIndex(i int) (Col, bool) {
	if i < 0 || i >= ColNum {
		return 0, false
	}
	return Col(i + 1), true
}

// ToIndex returns the 0-based index of c, for array indexing.
func (c Col) ToIndex() int { return int(c) - 1 }

// Valid reports whether c is in range.
func (c Col) Valid() bool { return c >= 1 && int(c) <= ColNum }

// Next returns the column to the right of c, if any.
func (c Col) Next() (Col, bool) {
	if int(c) >= ColNum {
		return 0, false
	}
	return c + 1, true
}

// Prev returns the column to the left of c, if any.
func (c Col) Prev() (Col, bool) {
	if c <= 1 {
		return 0, false
	}
	return c - 1, true
}

// AllCols returns every column in ascending order.
func AllCols() []Col {
	cols := make([]Col, ColNum)
	for i := range cols {
		cols[i] = Col(i + 1)
	}
	return cols
}

func (c Col) String() string { return fmt.Sprintf("%d", uint8(c)) }

// RowFromIndex builds a Row from a 0-based index in [0, RowNum).
func RowFromIndex(i int) (Row, bool) {
	if i < 0 || i >= RowNum {
		return 0, false
	}
	return Row(i + 1), true
}

// ToIndex returns the 0-based index of r, for array indexing.
func (r Row) ToIndex() int { return int(r) - 1 }

// Valid reports whether r is in range.
func (r Row) Valid() bool { return r >= 1 && int(r) <= RowNum }

// AllRows returns every row in ascending order.
func AllRows() []Row {
	rows := make([]Row, RowNum)
	for i := range rows {
		rows[i] = Row(i + 1)
	}
	return rows
}

func (r Row) String() string { return fmt.Sprintf("%d", uint8(r)) }

// Square is one of the 48 board squares, numbered column-major:
// square(col, row) = RowNum*(col-1) + row.
type Square uint8

// NewSquare builds the square at (col, row). Both must be in range.
func NewSquare(col Col, row Row) (Square, bool) {
	if !col.Valid() || !row.Valid() {
		return 0, false
	}
	return Square(RowNum*(int(col)-1) + int(row)), true
}

// Col returns the column of sq.
func (sq Square) Col() Col {
	return Col((int(sq)-1)/RowNum + 1)
}

// Row returns the row of sq.
func (sq Square) Row() Row {
	return Row((int(sq)-1)%RowNum + 1)
}

// SquareFromIndex builds a Square from a 0-based index in [0, SquareNum).
func SquareFromIndex(i int) (Square, bool) {
	if i < 0 || i >= SquareNum {
		return 0, false
	}
	return Square(i + 1), true
}

// ToIndex returns the 0-based index of sq, for array indexing.
func (sq Square) ToIndex() int { return int(sq) - 1 }

// Valid reports whether sq is in range.
func (sq Square) Valid() bool { return sq >= 1 && int(sq) <= SquareNum }

// AllSquares returns every square in ascending (column-major) order.
func AllSquares() []Square {
	sqs := make([]Square, SquareNum)
	for i := range sqs {
		sqs[i] = Square(i + 1)
	}
	return sqs
}

func (sq Square) String() string {
	return fmt.Sprintf("%d,%d", uint8(sq.Col()), uint8(sq.Row()))
}

// Piece is one of the five piece kinds, 1..=5.
type Piece uint8

// PieceFromIndex builds a Piece from a 0-based index in [0, PieceNum).
func PieceFromIndex(i int) (Piece, bool) {
	if i < 0 || i >= PieceNum {
		return 0, false
	}
	return Piece(i + 1), true
}

// ToIndex returns the 0-based index of p, for array indexing.
func (p Piece) ToIndex() int { return int(p) - 1 }

// Valid reports whether p is in range.
func (p Piece) Valid() bool { return p >= 1 && int(p) <= PieceNum }

// AllPieces returns every piece kind in ascending order.
func AllPieces() []Piece {
	ps := make([]Piece, PieceNum)
	for i := range ps {
		ps[i] = Piece(i + 1)
	}
	return ps
}

func (p Piece) String() string { return fmt.Sprintf("%d", uint8(p)) }

// ColArray is a fixed-size array indexed by Col.
type ColArray[V any] [ColNum]V

// RowArray is a fixed-size array indexed by Row.
type RowArray[V any] [RowNum]V

// SquareArray is a fixed-size array indexed by Square.
type SquareArray[V any] [SquareNum]V

// PieceArray is a fixed-size array indexed by Piece.
type PieceArray[V any] [PieceNum]V

// Get returns the element of a stored at column c.
func (a *ColArray[V]) Get(c Col) V { return a[c.ToIndex()] }

// Set stores v at column c.
func (a *ColArray[V]) Set(c Col, v V) { a[c.ToIndex()] = v }

// Get returns the element of a stored at row r.
func (a *RowArray[V]) Get(r Row) V { return a[r.ToIndex()] }

// Set stores v at row r.
func (a *RowArray[V]) Set(r Row, v V) { a[r.ToIndex()] = v }

// Get returns the element of a stored at square sq.
func (a *SquareArray[V]) Get(sq Square) V { return a[sq.ToIndex()] }

// Set stores v at square sq.
func (a *SquareArray[V]) Set(sq Square, v V) { a[sq.ToIndex()] = v }

// Get returns the element of a stored at piece p.
func (a *PieceArray[V]) Get(p Piece) V { return a[p.ToIndex()] }

// Set stores v at piece p.
func (a *PieceArray[V]) Set(p Piece, v V) { a[p.ToIndex()] = v }
