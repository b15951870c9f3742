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

// Package rng reproduces the 16-bit shift-register RNG the original
// SNES game uses to deal a board, including the NMI-counter and
// entropy inputs that perturb it, so every board the solver is asked
// to solve can be traced back to the exact in-game parameters that
// would have dealt it.
package rng

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fkopp/samegame/internal/board"
	"github.com/fkopp/samegame/internal/types"
)

// GameEntropy is the small amount of frame-timing noise the game mixes
// into board generation, in 0..=4.
type GameEntropy uint8

// GameEntropyNum is the number of distinct entropy values.
const GameEntropyNum = 5

// Valid reports whether e is in range.
func (e GameEntropy) Valid() bool { return int(e) < GameEntropyNum }

func (e GameEntropy) String() string { return strconv.Itoa(int(e)) }

// AllGameEntropy returns every entropy value in ascending order.
func AllGameEntropy() []GameEntropy {
	es := make([]GameEntropy, GameEntropyNum)
	for i := range es {
		es[i] = GameEntropy(i)
	}
	return es
}

// GameRng is the in-game board-dealing RNG: a 16-bit shift register
// whose update also folds in an externally supplied NMI counter. Bit
// 15 of the state is never read back out; the update formula simply
// discards it every step.
type GameRng struct {
	state uint16
}

// NewGameRng creates a generator with the given internal state.
func NewGameRng(state uint16) GameRng { return GameRng{state: state} }

// State returns the generator's internal state.
func (r GameRng) State() uint16 { return r.state }

// Gen advances the state and returns a random byte, 0..=0xFF.
func (r *GameRng) Gen(nmiCounter uint8) uint8 {
	bit := ((r.state >> 14) ^ r.state) & 1

	r.state = r.state ^ ((r.state << 8) | uint16(nmiCounter))
	r.state = (r.state << 1) | bit

	return uint8(r.state ^ (r.state >> 8))
}

// GenPiece generates a random piece kind, influenced by nmiCounter and
// entropy.
func (r *GameRng) GenPiece(nmiCounter uint8, entropy GameEntropy) types.Piece {
	raw := r.Gen(nmiCounter)
	v := uint8((5*uint32(raw) + uint32(entropy)) >> 8)
	p, _ := types.PieceFromIndex(int(v))
	return p
}

// GenBoard deals a full board. nmiTiming pieces are generated with
// nmiCounter; the remaining Square.Num-nmiTiming pieces are generated
// with nmiCounter+1 (wrapping), matching the NMI firing partway
// through the in-game dealing loop. The returned bool is false if the
// in-game "too many of one kind" regeneration check would have
// rejected this board (any piece kind reaching at least half the
// board), meaning the board could never actually be dealt to a
// player.
func (r *GameRng) GenBoard(nmiCounter uint8, nmiTiming int, entropy GameEntropy) (board.Board, bool) {
	var pieces [types.SquareNum]types.Piece
	for i := 0; i < nmiTiming; i++ {
		pieces[i] = r.GenPiece(nmiCounter, entropy)
	}
	for i := nmiTiming; i < types.SquareNum; i++ {
		pieces[i] = r.GenPiece(nmiCounter+1, entropy)
	}

	var arrays types.ColArray[types.RowArray[types.Piece]]
	for _, col := range types.AllCols() {
		var row types.RowArray[types.Piece]
		for _, rw := range types.AllRows() {
			row.Set(rw, pieces[types.ColNum*rw.ToIndex()+col.ToIndex()])
		}
		arrays.Set(col, row)
	}
	b := board.FromPieceArrays(arrays)

	legal := true
	for _, p := range types.AllPieces() {
		if b.PieceCount(p) >= types.SquareNum/2 {
			legal = false
			break
		}
	}

	return b, legal
}

// RandomBoardParam names every input to board generation: the
// generator's starting state, the NMI counter in effect, how many
// pieces are dealt before the NMI fires, and the entropy value.
type RandomBoardParam struct {
	RngState   uint16
	NmiCounter uint8
	NmiTiming  int
	Entropy    GameEntropy
}

// GenBoard deals the board this parameter set describes, along with
// whether it could legally occur in-game and the generator state left
// behind afterwards.
func (p RandomBoardParam) GenBoard() (board.Board, bool, GameRng) {
	r := NewGameRng(p.RngState)
	b, legal := r.GenBoard(p.NmiCounter, p.NmiTiming, p.Entropy)
	return b, legal, r
}

// GenLegalBoard deals the board this parameter set describes, or
// reports false if it is not a legal in-game board.
func (p RandomBoardParam) GenLegalBoard() (board.Board, GameRng, bool) {
	b, legal, rAfter := p.GenBoard()
	return b, rAfter, legal
}

func (p RandomBoardParam) String() string {
	return fmt.Sprintf("0x%04X,0x%02X,%d,%d", p.RngState, p.NmiCounter, p.NmiTiming, p.Entropy)
}

// ParseRandomBoardParam parses the "0xHHHH,0xHH,<timing>,<entropy>"
// format produced by String.
func ParseRandomBoardParam(s string) (RandomBoardParam, error) {
	fields := strings.Split(s, ",")
	if len(fields) != 4 {
		return RandomBoardParam{}, fmt.Errorf("random board param must have 4 comma-separated fields, got %d", len(fields))
	}

	rngState, err := strconv.ParseUint(strings.TrimPrefix(fields[0], "0x"), 16, 16)
	if err != nil {
		return RandomBoardParam{}, fmt.Errorf("invalid rng_state %q: %w", fields[0], err)
	}
	nmiCounter, err := strconv.ParseUint(strings.TrimPrefix(fields[1], "0x"), 16, 8)
	if err != nil {
		return RandomBoardParam{}, fmt.Errorf("invalid nmi_counter %q: %w", fields[1], err)
	}
	nmiTiming, err := strconv.Atoi(fields[2])
	if err != nil {
		return RandomBoardParam{}, fmt.Errorf("invalid nmi_timing %q: %w", fields[2], err)
	}
	entropyN, err := strconv.Atoi(fields[3])
	if err != nil {
		return RandomBoardParam{}, fmt.Errorf("invalid entropy %q: %w", fields[3], err)
	}
	entropy := GameEntropy(entropyN)
	if !entropy.Valid() {
		return RandomBoardParam{}, fmt.Errorf("entropy %d out of range", entropyN)
	}

	return RandomBoardParam{
		RngState:   uint16(rngState),
		NmiCounter: uint8(nmiCounter),
		NmiTiming:  nmiTiming,
		Entropy:    entropy,
	}, nil
}

// nmiTimingFixed is the NMI timing observed during ordinary (non-redeal)
// board generation: the NMI fires immediately after the 40th piece.
const nmiTimingFixed = 40

// rngStateSpan is the number of distinct starting rng_state values that
// matter: bit 15 of the state is never read back out by Gen, so states
// differing only in that bit are indistinguishable.
const rngStateSpan = 0x8000

// ParamCount is the total number of parameter tuples AllParams streams:
// every rng_state, every nmi_counter, the one fixed nmi_timing, and
// every entropy value.
const ParamCount = rngStateSpan * 256 * GameEntropyNum

// AllParams streams every RandomBoardParam in ascending order on the
// returned channel, with nmi_timing fixed at nmiTimingFixed (the value
// observed for ordinary board dealing; board redeals use a different,
// unmodelled timing). The full space is tens of millions of tuples, so
// it is generated lazily rather than collected into a slice.
func AllParams() <-chan RandomBoardParam {
	ch := make(chan RandomBoardParam, 256)
	go func() {
		defer close(ch)
		for rngState := 0; rngState < rngStateSpan; rngState++ {
			for nmiCounter := 0; nmiCounter < 256; nmiCounter++ {
				for _, entropy := range AllGameEntropy() {
					ch <- RandomBoardParam{
						RngState:   uint16(rngState),
						NmiCounter: uint8(nmiCounter),
						NmiTiming:  nmiTimingFixed,
						Entropy:    entropy,
					}
				}
			}
		}
	}()
	return ch
}

// BoardOutcome pairs a generation parameter with its resulting board,
// whether that board is legal in-game, and the generator state left
// behind.
type BoardOutcome struct {
	Param    RandomBoardParam
	Board    board.Board
	Legal    bool
	RngAfter GameRng
}

// EnumerateAllBoards streams the board AllParams can produce, together
// with its legality and resulting generator state.
func EnumerateAllBoards() <-chan BoardOutcome {
	ch := make(chan BoardOutcome, 256)
	go func() {
		defer close(ch)
		for p := range AllParams() {
			b, legal, rAfter := p.GenBoard()
			ch <- BoardOutcome{Param: p, Board: b, Legal: legal, RngAfter: rAfter}
		}
	}()
	return ch
}

// EnumerateAllLegalBoards is EnumerateAllBoards filtered to only the
// boards that could actually occur in-game.
func EnumerateAllLegalBoards() <-chan BoardOutcome {
	ch := make(chan BoardOutcome, 256)
	go func() {
		defer close(ch)
		for o := range EnumerateAllBoards() {
			if o.Legal {
				ch <- o
			}
		}
	}()
	return ch
}
