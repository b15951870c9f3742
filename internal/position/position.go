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

// Package position couples a Board with its incrementally maintained
// Zobrist key and per-piece counts, and exposes the legal actions from
// that board.
package position

import (
	"sort"

	"github.com/fkopp/samegame/internal/action"
	"github.com/fkopp/samegame/internal/board"
	"github.com/fkopp/samegame/internal/score"
	"github.com/fkopp/samegame/internal/types"
	"github.com/fkopp/samegame/internal/zobrist"
)

// Position is a board together with data derived from it that the
// solver needs on every node: a Zobrist key for transposition lookups
// and a running count of each piece kind still on the board.
type Position struct {
	board       board.Board
	key         zobrist.Key
	pieceCounts types.PieceArray[uint8]
}

// New builds the Position for b, computing its key and piece counts
// from scratch.
func New(b board.Board) Position {
	var key zobrist.Key
	for _, sq := range types.AllSquares() {
		if p, ok := b.Get(sq); ok {
			key ^= zobrist.Board(p, sq)
		}
	}

	var counts types.PieceArray[uint8]
	for _, p := range types.AllPieces() {
		counts.Set(p, uint8(b.PieceCount(p)))
	}

	return Position{board: b, key: key, pieceCounts: counts}
}

// Board returns the underlying board.
func (pos Position) Board() board.Board { return pos.board }

// Key returns the Zobrist hash of the position.
func (pos Position) Key() zobrist.Key { return pos.key }

// PieceCount returns how many squares still hold piece p.
func (pos Position) PieceCount(p types.Piece) uint8 { return pos.pieceCounts.Get(p) }

// HasAction reports whether any action is available from this position.
func (pos Position) HasAction() bool { return pos.board.HasAction() }

// Actions enumerates every legal action from this position, ordered by
// ascending piece kind and then by ascending least square, so the
// solver's move order is deterministic.
func (pos Position) Actions() []action.Action {
	var actions []action.Action
	for _, pc := range pos.board.PieceComponents() {
		if pc.Mask.IsSingle() {
			continue
		}
		a, err := action.New(pc.Piece, pc.Mask)
		if err != nil {
			continue
		}
		actions = append(actions, a)
	}
	sort.Slice(actions, func(i, j int) bool {
		if actions[i].Piece() != actions[j].Piece() {
			return actions[i].Piece() < actions[j].Piece()
		}
		return actions[i].LeastSquare() < actions[j].LeastSquare()
	})
	return actions
}

// DoAction plays a, returning the resulting position. The key is
// updated incrementally: only squares whose occupant changed (erased
// squares, squares that pieces fell onto or away from, and squares of
// columns that shifted left) are XORed.
func (pos Position) DoAction(a action.Action) Position {
	after := pos.board.Erase(a.Mask())

	key := pos.key
	for _, sq := range pos.board.XorMask(after).Squares() {
		if pieceBefore, ok := pos.board.Get(sq); ok {
			key ^= zobrist.Board(pieceBefore, sq)
		}
		if pieceAfter, ok := after.Get(sq); ok {
			key ^= zobrist.Board(pieceAfter, sq)
		}
	}

	counts := pos.pieceCounts
	counts.Set(a.Piece(), counts.Get(a.Piece())-uint8(a.SquareCount()))

	return Position{board: after, key: key, pieceCounts: counts}
}

// GainUpperBound returns a coarse, cheap-to-compute upper bound on the
// score still obtainable from this position: it assumes every piece
// kind with 2 or more squares remaining can be erased in a single
// move, and adds the perfect-clear bonus if no piece kind has exactly
// 1 square remaining (an unavoidable leftover).
//
// A return value of 0 means pos is a terminal, non-perfect position.
// The converse does not hold: a nonzero bound does not guarantee an
// action exists that achieves it.
func (pos Position) GainUpperBound() score.Score {
	var res score.Score
	perfect := true
	for _, p := range types.AllPieces() {
		switch count := pos.PieceCount(p); count {
		case 0:
		case 1:
			perfect = false
		default:
			res += score.CalcScoreErase(int(count))
		}
	}
	if perfect {
		res += score.Perfect
	}
	return res
}
