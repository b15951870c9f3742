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

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSquareColumnMajor(t *testing.T) {
	sq, ok := NewSquare(1, 1)
	assert.True(t, ok)
	assert.EqualValues(t, 1, sq)

	sq, ok = NewSquare(1, 6)
	assert.True(t, ok)
	assert.EqualValues(t, 6, sq)

	sq, ok = NewSquare(2, 1)
	assert.True(t, ok)
	assert.EqualValues(t, 7, sq)

	sq, ok = NewSquare(8, 6)
	assert.True(t, ok)
	assert.EqualValues(t, 48, sq)
}

func TestSquareColRowRoundTrip(t *testing.T) {
	for _, col := range AllCols() {
		for _, row := range AllRows() {
			sq, ok := NewSquare(col, row)
			assert.True(t, ok)
			assert.Equal(t, col, sq.Col())
			assert.Equal(t, row, sq.Row())
		}
	}
}

func TestNewSquareOutOfRange(t *testing.T) {
	_, ok := NewSquare(9, 1)
	assert.False(t, ok)
	_, ok = NewSquare(1, 7)
	assert.False(t, ok)
	_, ok = NewSquare(0, 1)
	assert.False(t, ok)
}

func TestAllSquaresCount(t *testing.T) {
	assert.Len(t, AllSquares(), SquareNum)
	assert.Len(t, AllCols(), ColNum)
	assert.Len(t, AllRows(), RowNum)
	assert.Len(t, AllPieces(), PieceNum)
}

func TestColNextPrev(t *testing.T) {
	c := Col(1)
	_, ok := c.Prev()
	assert.False(t, ok)

	c = Col(ColNum)
	_, ok = c.Next()
	assert.False(t, ok)

	mid, ok := Col(4).Next()
	assert.True(t, ok)
	assert.EqualValues(t, 5, mid)
}

func TestSquareString(t *testing.T) {
	sq, _ := NewSquare(3, 5)
	assert.Equal(t, "3,5", sq.String())
}

func TestArrayWrappers(t *testing.T) {
	var pa PieceArray[int]
	pa.Set(3, 42)
	assert.Equal(t, 42, pa.Get(3))

	var sa SquareArray[bool]
	sq, _ := NewSquare(8, 6)
	sa.Set(sq, true)
	assert.True(t, sa.Get(sq))
}
