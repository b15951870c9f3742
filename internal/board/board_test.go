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
	"github.com/stretchr/testify/require"

	"github.com/fkopp/samegame/internal/types"
)

func mustParseBoard(t *testing.T, s string) Board {
	t.Helper()
	b, err := ParseBoard(s)
	require.NoError(t, err)
	return b
}

func mustParseMaskBoard(t *testing.T, s string) MaskBoard {
	t.Helper()
	mb, err := ParseMaskBoard(s)
	require.NoError(t, err)
	return mb
}

func TestBoardIORoundTrip(t *testing.T) {
	cases := []string{
		"........\n........\n........\n........\n........\n........\n",
		"........\n........\n.1......\n121.....\n1213....\n1213....\n",
		"12345123\n51234512\n45123451\n34512345\n23451234\n12345123\n",
	}
	for _, s := range cases {
		b := mustParseBoard(t, s)
		assert.Equal(t, s, b.String())
	}
}

func TestBoardPieceCount(t *testing.T) {
	for _, p := range types.AllPieces() {
		assert.Equal(t, 0, Empty().PieceCount(p))
	}
	assert.Equal(t, 0, Empty().PieceCountTotal())

	cases := []struct {
		board  string
		counts [5]int
	}{
		{
			"........\n........\n........\n........\n........\n12345...\n",
			[5]int{1, 1, 1, 1, 1},
		},
		{
			".......4\n.......4\n.1...5.4\n.1.3.5.4\n1213.5.5\n12134555\n",
			[5]int{6, 2, 3, 5, 7},
		},
	}
	for _, c := range cases {
		b := mustParseBoard(t, c.board)
		sum := 0
		for _, p := range types.AllPieces() {
			assert.Equal(t, c.counts[p.ToIndex()], b.PieceCount(p))
			sum += c.counts[p.ToIndex()]
		}
		assert.Equal(t, sum, b.PieceCountTotal())
	}
}

func TestBoardHasAction(t *testing.T) {
	assert.False(t, Empty().HasAction())

	falses := []string{
		"........\n........\n........\n...543..\n..14213.\n1232121.\n",
		"12345123\n51234512\n45123451\n34512345\n23451234\n12345123\n",
	}
	trues := []string{
		"........\n........\n........\n1.......\n1.5.....\n234.....\n",
		"........\n........\n........\n........\n.34.....\n2251....\n",
		"........\n........\n........\n........\n........\n12345133\n",
		".......5\n.......5\n.......3\n.......2\n.......1\n12345123\n",
		"1......2\n155....2\n111.4..2\n12144..1\n12133.51\n12135551\n",
	}
	for _, s := range falses {
		assert.False(t, mustParseBoard(t, s).HasAction())
	}
	for _, s := range trues {
		assert.True(t, mustParseBoard(t, s).HasAction())
	}
}

func TestBoardErase(t *testing.T) {
	const base = "1......2\n155....2\n111.4..2\n12144..1\n12133.51\n12135551\n"

	cases := []struct {
		mask  string
		after string
	}{
		{
			"*.......\n*.......\n***.....\n*.*.....\n*.*.....\n*.*.....\n",
			"......2.\n......2.\n5..4..2.\n2.44..1.\n2.33.51.\n2535551.\n",
		},
		{
			"........\n.**.....\n........\n........\n........\n........\n",
			"1......2\n1......2\n111.4..2\n12144..1\n12133.51\n12135551\n",
		},
		{
			"........\n........\n........\n........\n...**...\n...*....\n",
			"1......2\n155....2\n111....2\n121.4..1\n121.4.51\n12145551\n",
		},
		{
			"........\n........\n........\n........\n......*.\n....***.\n",
			"1....2..\n155..2..\n111..2..\n121441..\n121341..\n121331..\n",
		},
		{
			".......*\n.......*\n.......*\n........\n........\n........\n",
			"1.......\n155.....\n111.4...\n12144..1\n12133.51\n12135551\n",
		},
		{
			"........\n........\n........\n.......*\n.......*\n.......*\n",
			"1.......\n155.....\n111.4...\n12144..2\n12133.52\n12135552\n",
		},
	}

	for _, c := range cases {
		before := mustParseBoard(t, base)
		mb := mustParseMaskBoard(t, c.mask)
		after := mustParseBoard(t, c.after)
		assert.Equal(t, after, before.Erase(mb))
	}
}

func TestBoardXorMask(t *testing.T) {
	assert.Equal(t, EmptyMask(), Empty().XorMask(Empty()))

	identical := mustParseBoard(t, "12345123\n51234512\n45123451\n34512345\n23451234\n12345123\n")
	assert.Equal(t, EmptyMask(), identical.XorMask(identical))

	cases := []struct {
		before string
		after  string
		mask   string
	}{
		{
			"1......2\n155....2\n111.4..2\n12144..1\n12133.51\n12135551\n",
			"......2.\n......2.\n5..4..2.\n2.44..1.\n2.33.51.\n2535551.\n",
			"*.....**\n***...**\n*****.**\n***.*.**\n***.****\n****..**\n",
		},
		{
			"1......2\n155....2\n111.4..2\n12144..1\n12133.51\n12135551\n",
			"1......2\n1......2\n111.4..2\n12144..1\n12133.51\n12135551\n",
			"........\n.**.....\n........\n........\n........\n........\n",
		},
	}

	for _, c := range cases {
		before := mustParseBoard(t, c.before)
		after := mustParseBoard(t, c.after)
		mb := mustParseMaskBoard(t, c.mask)
		assert.Equal(t, mb, before.XorMask(after))
		assert.Equal(t, mb, after.XorMask(before))
	}
}
