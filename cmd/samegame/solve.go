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

	"github.com/fkopp/samegame/internal/board"
	"github.com/fkopp/samegame/internal/score"
	"github.com/fkopp/samegame/internal/solver"
)

func runSolve(args []string) {
	fs := flag.NewFlagSet("solve", flag.ExitOnError)
	configFile := fs.String("config", "./config.toml", "path to configuration settings file")
	pruneScoreMax := fs.Int("prune-score-max", 0, "skip any branch already proven unable to exceed this score")
	cpuProfile := fs.Bool("cpuprofile", false, "write a CPU profile (cpu.pprof) of the search")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: samegame solve [flags] <board-file>")
		fs.PrintDefaults()
	}
	_ = fs.Parse(args)

	if fs.NArg() != 1 {
		fs.Usage()
		os.Exit(2)
	}

	setupConfigAndLogging(*configFile)
	log := dealLog()

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	data, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "reading board file %q: %v\n", fs.Arg(0), err)
		os.Exit(1)
	}

	b, err := board.ParseBoard(string(data))
	if err != nil {
		fmt.Fprintf(os.Stderr, "parsing board file %q: %v\n", fs.Arg(0), err)
		os.Exit(1)
	}

	s := solver.NewSolver(score.Score(*pruneScoreMax))
	best, history, ok := s.Solve(b)
	if !ok {
		log.Info("NO SOLUTION")
		return
	}
	fmt.Printf("%d\t%s\n", best, history.String())
}
