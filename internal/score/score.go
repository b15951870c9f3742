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

// Package score defines the scoring rules for a single game.
package score

import "github.com/fkopp/samegame/assert"

// Score is a cumulative game score.
type Score int32

// Perfect is the bonus awarded when a board is cleared completely.
const Perfect Score = 200

// MaxTheoretical is the largest score a single board can ever yield:
// all 48 squares of one piece kind erased in a single action plus the
// perfect-clear bonus.
const MaxTheoretical Score = Score(47*47) + Perfect

// CalcScoreErase returns the score gained by erasing n connected squares
// of the same piece kind. n must be at least 2.
func CalcScoreErase(n int) Score {
	if assert.DEBUG {
		assert.Assert(n >= 2, "CalcScoreErase requires n >= 2, got %d", n)
	}
	m := n - 1
	return Score(m * m)
}
