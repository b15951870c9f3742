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

// Package config holds globally available configuration variables, set
// either by defaults, by a config file, or by command line options.
package config

import (
	"fmt"
	"log"
	"reflect"
	"strings"

	"github.com/BurntSushi/toml"
)

// globally available config values.
var (
	// ConfFile holds the path to the config file (relative to the
	// working directory).
	ConfFile = "./config.toml"

	// LogLevel is the general log level. The config file has no field
	// for it, so it keeps this compiled-in value.
	LogLevel = 4

	// SearchLogLevel is the solver's own log level.
	SearchLogLevel = 4

	// Settings is the global configuration read in from file.
	Settings conf

	initialized = false
)

type conf struct {
	Solver solverConfiguration
}

// solverConfiguration holds the tunables of the DFS solver.
type solverConfiguration struct {
	// PruneScoreMax is read from the config file, but nothing reads it
	// back: the CLI takes the solver's pruning threshold from its
	// --prune-score-max flag only.
	PruneScoreMax int

	// TTInitialCapacity is the initial bucket count hint passed to the
	// transposition table's underlying map.
	TTInitialCapacity int
}

func init() {
	Settings.Solver.PruneScoreMax = 0
	Settings.Solver.TTInitialCapacity = 1 << 16
}

// Setup reads the configuration file and applies settings from it,
// falling back to defaults when the file is missing or incomplete.
func Setup() {
	if initialized {
		return
	}
	if _, err := toml.DecodeFile(ConfFile, &Settings); err != nil {
		log.Println("Config file not found, using defaults. (", err, ")")
	}
	initialized = true
}

// String pretty-prints the current configuration using reflection.
func (c *conf) String() string {
	var b strings.Builder
	b.WriteString("Solver Config:\n")
	v := reflect.ValueOf(&c.Solver).Elem()
	t := v.Type()
	for i := 0; i < v.NumField(); i++ {
		f := v.Field(i)
		b.WriteString(fmt.Sprintf("%-2d: %-20s %-6s = %v\n", i, t.Field(i).Name, f.Type(), f.Interface()))
	}
	return b.String()
}
