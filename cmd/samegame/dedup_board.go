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

	"github.com/fkopp/samegame/internal/position"
	"github.com/fkopp/samegame/internal/rng"
	"github.com/fkopp/samegame/internal/zobrist"
)

// runDedupBoard finds, without duplicates, the set of generation
// parameters that cover every legal board the game can deal. For each
// parameter it prints to stdout unless an earlier parameter was
// already found to produce the identical board; same-key-but-different
// board collisions are reported (and kept, since they are new boards)
// while illegal (would-regenerate) parameters are reported and
// dropped entirely.
func runDedupBoard(args []string) {
	fs := flag.NewFlagSet("dedup_board", flag.ExitOnError)
	configFile := fs.String("config", "./config.toml", "path to configuration settings file")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: samegame dedup_board [flags]")
		fs.PrintDefaults()
	}
	_ = fs.Parse(args)

	setupConfigAndLogging(*configFile)

	seen := make(map[zobrist.Key]rng.RandomBoardParam, rng.ParamCount)

	for o := range rng.EnumerateAllBoards() {
		if !o.Legal {
			fmt.Fprintf(os.Stderr, "regen\t%s\n", o.Param)
			continue
		}

		pos := position.New(o.Board)
		if entryParam, ok := seen[pos.Key()]; ok {
			entryBoard, entryLegal, _ := entryParam.GenBoard()
			if entryLegal && entryBoard == o.Board {
				fmt.Fprintf(os.Stderr, "duplicated\t%s\t%s\n", entryParam, o.Param)
			} else {
				fmt.Fprintf(os.Stderr, "collision\t%s\t%s\n", entryParam, o.Param)
				fmt.Println(o.Param)
			}
			continue
		}

		fmt.Println(o.Param)
		seen[pos.Key()] = o.Param
	}
}
