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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fkopp/samegame/internal/types"
)

func sqOf(t *testing.T, col types.Col, row types.Row) types.Square {
	t.Helper()
	sq, ok := types.NewSquare(col, row)
	assert.True(t, ok)
	return sq
}

func TestMaskBoardIORoundTrip(t *testing.T) {
	cases := []string{
		"........\n........\n........\n........\n........\n........\n",
		".......*\n.....*.*\n.*...*..\n*.*....*\n*.*...*.\n*.*.....\n",
	}
	for _, s := range cases {
		mb := mustParseMaskBoard(t, s)
		assert.Equal(t, s, mb.String())
	}
}

func TestMaskBoardSquares(t *testing.T) {
	_, ok := EmptyMask().LeastSquare()
	assert.False(t, ok)
	assert.Empty(t, EmptyMask().Squares())

	cases := []struct {
		mask string
		sqs  []types.Square
	}{
		{
			"*......*\n........\n........\n........\n........\n*......*\n",
			[]types.Square{
				sqOf(t, 1, 1), sqOf(t, 1, 6),
				sqOf(t, 8, 1), sqOf(t, 8, 6),
			},
		},
		{
			"........\n...**...\n..*..*..\n.*....*.\n*......*\n........\n",
			[]types.Square{
				sqOf(t, 1, 2), sqOf(t, 2, 3), sqOf(t, 3, 4), sqOf(t, 4, 5),
				sqOf(t, 5, 5), sqOf(t, 6, 4), sqOf(t, 7, 3), sqOf(t, 8, 2),
			},
		},
	}

	for _, c := range cases {
		mb := mustParseMaskBoard(t, c.mask)
		assert.Equal(t, c.sqs, mb.Squares())
	}
}

func TestMaskBoardComponents(t *testing.T) {
	assert.Empty(t, EmptyMask().Components())

	mb := mustParseMaskBoard(t, "****...*\n...*....\n.***....\n.*...*..\n*.*...*.\n*.*...**\n")

	expectStrs := []string{
		"........\n........\n........\n........\n*.......\n*.......\n",
		"****....\n...*....\n.***....\n.*......\n........\n........\n",
		"........\n........\n........\n........\n..*.....\n..*.....\n",
		"........\n........\n........\n.....*..\n........\n........\n",
		"........\n........\n........\n........\n......*.\n......**\n",
		".......*\n........\n........\n........\n........\n........\n",
	}
	var expect []MaskBoard
	for _, s := range expectStrs {
		expect = append(expect, mustParseMaskBoard(t, s))
	}

	assert.ElementsMatch(t, expect, mb.Components())
}

func TestMaskBoardFloodFillRequiresMember(t *testing.T) {
	mb := mustParseMaskBoard(t, "........\n........\n........\n........\n........\n*.......\n")
	_, err := mb.FloodFill(sqOf(t, 8, 6))
	assert.Error(t, err)
}

func TestMaskBoardSubtract(t *testing.T) {
	a := mustParseMaskBoard(t, "*.......\n*.......\n*.......\n........\n........\n........\n")
	b := mustParseMaskBoard(t, "*.......\n........\n........\n........\n........\n........\n")
	want := mustParseMaskBoard(t, "........\n*.......\n*.......\n........\n........\n........\n")
	assert.Equal(t, want, a.Subtract(b))
}
