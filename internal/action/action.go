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

// Package action defines a single move (erasing a connected group of
// same-piece squares) and the bounded history of moves played so far.
package action

import (
	"fmt"

	"github.com/fkopp/samegame/internal/board"
	"github.com/fkopp/samegame/internal/score"
	"github.com/fkopp/samegame/internal/types"
)

// Action is one move: erase every square of mask, which must hold at
// least 2 squares of the same piece kind.
type Action struct {
	piece types.Piece
	mask  board.MaskBoard
}

// New builds an Action from a piece kind and mask. mask must contain at
// least 2 squares.
func New(piece types.Piece, mask board.MaskBoard) (Action, error) {
	if mask.SquareCount() < 2 {
		return Action{}, fmt.Errorf("action mask must contain at least 2 squares, got %d", mask.SquareCount())
	}
	return Action{piece: piece, mask: mask}, nil
}

// FromSquare builds the action that erases the connected group of
// same-piece squares containing sq on b. Fails if sq is empty or its
// group has fewer than 2 squares.
func FromSquare(b board.Board, sq types.Square) (Action, error) {
	piece, ok := b.Get(sq)
	if !ok {
		return Action{}, fmt.Errorf("square %s is empty", sq)
	}

	mask, err := b.PieceMask(piece).FloodFill(sq)
	if err != nil {
		return Action{}, err
	}
	if mask.SquareCount() < 2 {
		return Action{}, fmt.Errorf("square %s has no same-piece neighbor", sq)
	}
	return New(piece, mask)
}

// Piece returns the piece kind erased by the action.
func (a Action) Piece() types.Piece { return a.piece }

// Mask returns the squares erased by the action.
func (a Action) Mask() board.MaskBoard { return a.mask }

// SquareCount returns the number of squares erased by the action.
func (a Action) SquareCount() int { return a.mask.SquareCount() }

// LeastSquare returns the smallest square erased by the action.
func (a Action) LeastSquare() types.Square {
	sq, _ := a.mask.LeastSquare()
	return sq
}

// Gain returns the score earned by the action, excluding any
// perfect-clear bonus.
func (a Action) Gain() score.Score {
	return score.CalcScoreErase(a.SquareCount())
}
