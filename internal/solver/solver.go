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

// Package solver searches a board for the action sequence earning the
// maximum total score, via exhaustive depth-first search over every
// legal action, pruned against a memoized upper bound on the score
// still obtainable from each position reached.
package solver

import (
	"context"
	"time"

	golog "github.com/op/go-logging"
	"golang.org/x/sync/semaphore"

	"github.com/fkopp/samegame/internal/action"
	"github.com/fkopp/samegame/internal/board"
	"github.com/fkopp/samegame/internal/config"
	"github.com/fkopp/samegame/internal/logging"
	"github.com/fkopp/samegame/internal/position"
	"github.com/fkopp/samegame/internal/score"
	"github.com/fkopp/samegame/internal/transposition"
	"github.com/fkopp/samegame/internal/util"
)

// Solver searches boards for their maximum-score action sequence. One
// Solver can solve many boards in a row; its internal DP table is
// cleared between solves so memory does not grow unbounded.
type Solver struct {
	log *golog.Logger

	isRunning *semaphore.Weighted

	pruneScoreMax score.Score
	dp            *transposition.Table
}

// NewSolver creates a Solver that prunes any subtree proven unable to
// exceed pruneScoreMax.
func NewSolver(pruneScoreMax score.Score) *Solver {
	return &Solver{
		log:           logging.GetSearchLog(),
		isRunning:     semaphore.NewWeighted(1),
		pruneScoreMax: pruneScoreMax,
		dp:            transposition.NewTable(config.Settings.Solver.TTInitialCapacity),
	}
}

// PruneScoreMax returns the current pruning threshold.
func (s *Solver) PruneScoreMax() score.Score { return s.pruneScoreMax }

// SetPruneScoreMax sets the pruning threshold.
func (s *Solver) SetPruneScoreMax(v score.Score) { s.pruneScoreMax = v }

// ChmaxPruneScoreMax raises the pruning threshold to v if v is higher.
func (s *Solver) ChmaxPruneScoreMax(v score.Score) {
	if v > s.pruneScoreMax {
		s.pruneScoreMax = v
	}
}

// Solve searches b for its maximum-score action sequence. ok is false
// if the search records no finished game scoring above 0: b itself has
// no legal action and is not empty, or pruning against the threshold
// cuts off every line before it ends. Any finished game the search
// does reach is recorded, so a returned score can be at or below the
// threshold.
//
// Solve is not reentrant: calling it again from another goroutine
// while a call is already in progress blocks until the first finishes.
func (s *Solver) Solve(b board.Board) (score.Score, action.History, bool) {
	_ = s.isRunning.Acquire(context.Background(), 1)
	defer s.isRunning.Release(1)

	sub := &subSolver{
		log:           s.log,
		pruneScoreMax: s.pruneScoreMax,
		dp:            s.dp,
	}
	start := time.Now()
	res, history, ok := sub.solve(b)
	elapsed := time.Since(start)

	s.log.Infof("DP entry count: %d, nodes visited: %d, nps: %d", s.dp.Len(), sub.nodesVisited, util.Nps(sub.nodesVisited, elapsed))
	s.log.Debug(util.GcWithStats())
	s.dp.Clear()

	return res, history, ok
}

type subSolver struct {
	log *golog.Logger

	pruneScoreMax score.Score

	bestScore    score.Score
	bestSolution *action.History
	history      action.History

	nodesVisited uint64

	dp *transposition.Table
}

func (s *subSolver) solve(b board.Board) (score.Score, action.History, bool) {
	pos := position.New(b)
	s.dfs(pos, 0)

	if s.bestSolution == nil {
		return 0, action.History{}, false
	}
	return s.bestScore, *s.bestSolution, true
}

// dfs returns the upper bound on the score still obtainable from pos,
// given that score has already been earned getting here.
func (s *subSolver) dfs(pos position.Position, runningScore score.Score) score.Score {
	s.nodesVisited++

	if gain, ok := finalGain(pos); ok {
		if total := runningScore + gain; total > s.bestScore {
			s.bestScore = total
			s.log.Infof("Found %d: %s", s.bestScore, s.history.String())
			solution := s.history
			s.bestSolution = &solution
		}
		return gain
	}

	gainUB, known := s.dp.Get(pos.Key())
	if !known {
		gainUB = pos.GainUpperBound()
		s.dp.Put(pos.Key(), gainUB)
	}

	if runningScore+gainUB <= s.pruneScoreMax {
		return gainUB
	}

	var bestChildUB score.Score
	for _, a := range pos.Actions() {
		s.history.Push(a.LeastSquare())

		child := pos.DoAction(a)
		gainAction := a.Gain()
		childUB := s.dfs(child, runningScore+gainAction)
		if total := gainAction + childUB; total > bestChildUB {
			bestChildUB = total
		}

		s.history.Pop()
	}

	s.dp.Put(pos.Key(), bestChildUB)
	return bestChildUB
}

// finalGain reports the score still earned by ending the game at pos
// (the perfect-clear bonus, or 0), and whether pos is terminal at all.
func finalGain(pos position.Position) (score.Score, bool) {
	if pos.HasAction() {
		return 0, false
	}
	if pos.Board().IsEmpty() {
		return score.Perfect, true
	}
	return 0, true
}
