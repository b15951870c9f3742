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
	"fmt"
	"strconv"
	"strings"

	"github.com/fkopp/samegame/internal/types"
)

// HistoryCapacity is the maximum number of moves a single game can
// record: every move erases at least 2 of the 48 squares, so at most
// SquareNum/2 moves fit in one game.
const HistoryCapacity = types.SquareNum / 2

// History is a fixed-capacity stack of squares, one per move played
// (the least square of each erased group).
type History struct {
	sqs [HistoryCapacity]types.Square
	len int
}

// Len returns the number of moves recorded.
func (h *History) Len() int { return h.len }

// Squares returns the recorded squares in play order.
func (h *History) Squares() []types.Square {
	return append([]types.Square(nil), h.sqs[:h.len]...)
}

// Push records sq as the next move. Panics if the history is already
// at capacity; callers (the solver) never exceed it because a game has
// at most HistoryCapacity moves.
func (h *History) Push(sq types.Square) {
	h.sqs[h.len] = sq
	h.len++
}

// Pop removes the most recently recorded move.
func (h *History) Pop() {
	h.len--
}

func (h *History) String() string {
	parts := make([]string, h.len)
	for i, sq := range h.sqs[:h.len] {
		parts[i] = sq.String()
	}
	return strings.Join(parts, " ")
}

// ParseHistory parses a whitespace-separated list of "col,row" tokens,
// at most HistoryCapacity of them.
func ParseHistory(s string) (History, error) {
	var h History
	fields := strings.Fields(s)
	if len(fields) > HistoryCapacity {
		return History{}, fmt.Errorf("action history must have at most %d moves, got %d", HistoryCapacity, len(fields))
	}
	for _, tok := range fields {
		sq, err := parseSquare(tok)
		if err != nil {
			return History{}, err
		}
		h.Push(sq)
	}
	return h, nil
}

func parseSquare(tok string) (types.Square, error) {
	parts := strings.SplitN(tok, ",", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid square token %q, want \"col,row\"", tok)
	}
	colN, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid column in %q: %w", tok, err)
	}
	rowN, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid row in %q: %w", tok, err)
	}
	sq, ok := types.NewSquare(types.Col(colN), types.Row(rowN))
	if !ok {
		return 0, fmt.Errorf("square %q out of range", tok)
	}
	return sq, nil
}
