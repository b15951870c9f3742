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

package action

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fkopp/samegame/internal/board"
	"github.com/fkopp/samegame/internal/score"
	"github.com/fkopp/samegame/internal/types"
)

func TestFromSquare(t *testing.T) {
	b, err := board.ParseBoard("1......2\n155....2\n111.4..2\n12144..1\n12133.51\n12135551\n")
	require.NoError(t, err)

	sq, _ := types.NewSquare(1, 1)
	a, err := FromSquare(b, sq)
	require.NoError(t, err)
	assert.EqualValues(t, 1, a.Piece())
	assert.Equal(t, 11, a.SquareCount())
	assert.Equal(t, score.CalcScoreErase(11), a.Gain())
}

func TestFromSquareRejectsSingleton(t *testing.T) {
	b, err := board.ParseBoard("........\n........\n........\n...543..\n..14213.\n1232121.\n")
	require.NoError(t, err)

	sq, _ := types.NewSquare(4, 3)
	_, err = FromSquare(b, sq)
	assert.Error(t, err)
}

func TestFromSquareRejectsEmpty(t *testing.T) {
	b := board.Empty()
	sq, _ := types.NewSquare(1, 1)
	_, err := FromSquare(b, sq)
	assert.Error(t, err)
}

func TestNewRejectsSingleton(t *testing.T) {
	sq, _ := types.NewSquare(1, 1)
	_, err := New(1, board.Single(sq))
	assert.Error(t, err)
}
