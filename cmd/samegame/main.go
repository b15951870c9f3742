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

// Command samegame is the command-line front end to the solver: it can
// deal a board from raw RNG parameters, solve a single board file for
// its maximum score, sweep every board the game can legally deal, or
// deduplicate the parameter space those boards come from.
package main

import (
	"fmt"
	"os"

	golog "github.com/op/go-logging"

	"github.com/fkopp/samegame/internal/config"
	"github.com/fkopp/samegame/internal/logging"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	sub := os.Args[1]
	args := os.Args[2:]

	switch sub {
	case "gen_board":
		runGenBoard(args)
	case "solve":
		runSolve(args)
	case "solve_all":
		runSolveAll(args)
	case "dedup_board":
		runDedupBoard(args)
	case "-h", "-help", "--help", "help":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "unknown subcommand %q\n\n", sub)
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: samegame <subcommand> [flags]

subcommands:
  gen_board    deal a single board from RNG parameters
  solve        find the maximum-score action sequence for one board file
  solve_all    solve every board the game can legally deal
  dedup_board  deduplicate the space of legal board-generation parameters`)
}

// setupConfigAndLogging loads the config file (if present, and only on
// the first call) and makes sure the "main" logger exists. It does not
// change the level of any logger that was already constructed.
func setupConfigAndLogging(configFile string) {
	config.ConfFile = configFile
	config.Setup()
	logging.GetLog("main")
}

// dealLog returns the logger used by gen_board, solve and solve_all to
// report what happened. It writes to stdout, the same stream as their
// result lines.
func dealLog() *golog.Logger {
	return logging.GetLog("main")
}
