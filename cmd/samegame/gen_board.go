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
	"strconv"
	"strings"

	"github.com/fkopp/samegame/internal/position"
	"github.com/fkopp/samegame/internal/rng"
	"github.com/fkopp/samegame/internal/types"
)

func runGenBoard(args []string) {
	fs := flag.NewFlagSet("gen_board", flag.ExitOnError)
	configFile := fs.String("config", "./config.toml", "path to configuration settings file")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: samegame gen_board [flags] <rng_state> <nmi_counter> <nmi_timing> <entropy>")
		fs.PrintDefaults()
	}
	_ = fs.Parse(args)

	if fs.NArg() != 4 {
		fs.Usage()
		os.Exit(2)
	}

	setupConfigAndLogging(*configFile)
	log := dealLog()

	rngState, err := parseUint(fs.Arg(0), 16)
	fatalIf(err, "rng_state")
	nmiCounter, err := parseUint(fs.Arg(1), 8)
	fatalIf(err, "nmi_counter")
	nmiTiming, err := strconv.Atoi(fs.Arg(2))
	fatalIf(err, "nmi_timing")
	entropyN, err := strconv.Atoi(fs.Arg(3))
	fatalIf(err, "entropy")

	if nmiTiming < 0 || nmiTiming > types.SquareNum {
		fmt.Fprintf(os.Stderr, "nmi_timing %d out of range [0, %d]\n", nmiTiming, types.SquareNum)
		os.Exit(1)
	}

	entropy := rng.GameEntropy(entropyN)
	if !entropy.Valid() {
		fmt.Fprintf(os.Stderr, "entropy %d out of range\n", entropyN)
		os.Exit(1)
	}

	param := rng.RandomBoardParam{
		RngState:   uint16(rngState),
		NmiCounter: uint8(nmiCounter),
		NmiTiming:  nmiTiming,
		Entropy:    entropy,
	}
	b, legal, rngAfter := param.GenBoard()
	if !legal {
		log.Warning("board would trigger in-game regeneration")
	}

	pos := position.New(b)

	counts := make([]string, 0, types.PieceNum)
	for _, p := range types.AllPieces() {
		counts = append(counts, strconv.Itoa(int(pos.PieceCount(p))))
	}

	log.Infof("RNG after: 0x%04X", rngAfter.State())
	log.Infof("piece counts: [%s]", strings.Join(counts, ", "))
	log.Infof("gain upper bound: %d", pos.GainUpperBound())

	fmt.Print(b.String())
}

func parseUint(s string, bits int) (uint64, error) {
	s = strings.TrimPrefix(s, "0x")
	return strconv.ParseUint(s, 16, bits)
}

func fatalIf(err error, what string) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid %s: %v\n", what, err)
		os.Exit(1)
	}
}
