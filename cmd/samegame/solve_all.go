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

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/pkg/profile"

	"github.com/fkopp/samegame/internal/rng"
	"github.com/fkopp/samegame/internal/score"
	"github.com/fkopp/samegame/internal/solver"
)

// runSolveAll searches every board the game can legally deal for its
// maximum score. As each board is solved, the pruning threshold is
// raised to one less than the best score found so far, so every
// later board that ties the running best is still fully reported
// (chmax'ing to the best score itself would silently drop ties).
func runSolveAll(args []string) {
	fs := flag.NewFlagSet("solve_all", flag.ExitOnError)
	configFile := fs.String("config", "./config.toml", "path to configuration settings file")
	pruneScoreMax := fs.Int("prune-score-max", 0, "skip any branch already proven unable to exceed this score")
	cpuProfile := fs.Bool("cpuprofile", false, "write a CPU profile (cpu.pprof) of the search")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: samegame solve_all [flags]")
		fs.PrintDefaults()
	}
	_ = fs.Parse(args)

	setupConfigAndLogging(*configFile)
	log := dealLog()

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	s := solver.NewSolver(score.Score(*pruneScoreMax))

	for o := range rng.EnumerateAllLegalBoards() {
		log.Infof("Search: rng_state=0x%04X nmi_counter=0x%02X nmi_timing=%d entropy=%d rng_after=0x%04X",
			o.Param.RngState, o.Param.NmiCounter, o.Param.NmiTiming, o.Param.Entropy, o.RngAfter.State())

		best, history, ok := s.Solve(o.Board)
		if !ok {
			continue
		}
		fmt.Printf("0x%04X\t0x%02X\t%d\t%d\t%d\t%s\n",
			o.Param.RngState, o.Param.NmiCounter, o.Param.NmiTiming, o.Param.Entropy, best, history.String())

		s.ChmaxPruneScoreMax(best - 1)
	}
}
