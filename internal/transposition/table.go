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

// Package transposition caches, per Zobrist key, the current best known
// upper bound on the score still obtainable from a position, so the
// solver never recomputes that bound from scratch for a position it
// has seen before.
package transposition

import (
	golog "github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/fkopp/samegame/internal/logging"
	"github.com/fkopp/samegame/internal/score"
	"github.com/fkopp/samegame/internal/util"
	"github.com/fkopp/samegame/internal/zobrist"
)

var out = message.NewPrinter(language.English)

// Stats tracks table usage for diagnostics and tuning.
type Stats struct {
	Puts    uint64
	Hits    uint64
	Misses  uint64
	Updates uint64
}

// Table maps a position's Zobrist key to the current best known upper
// bound on the score still obtainable from it. The bound starts coarse
// (cheap to compute from piece counts alone) and is tightened in place
// once its subtree has been fully explored, so it can legitimately
// move in either direction — tightened bounds are usually lower than
// the coarse estimate they replace. Zobrist keys are 64-bit and
// already well distributed, so a plain Go map keyed on them needs no
// extra hashing layer.
type Table struct {
	log   *golog.Logger
	data  map[zobrist.Key]score.Score
	Stats Stats
}

// NewTable creates an empty table with room preallocated for capacity
// entries.
func NewTable(capacity int) *Table {
	return &Table{
		log:  logging.GetLog("transposition"),
		data: make(map[zobrist.Key]score.Score, capacity),
	}
}

// Get returns the current upper bound stored for key, if known.
func (t *Table) Get(key zobrist.Key) (score.Score, bool) {
	s, ok := t.data[key]
	if ok {
		t.Stats.Hits++
	} else {
		t.Stats.Misses++
	}
	return s, ok
}

// Put records s as the upper bound for key, replacing whatever was
// stored there before (Stats.Updates counts replacements of an
// existing entry).
func (t *Table) Put(key zobrist.Key, s score.Score) {
	t.Stats.Puts++
	if _, ok := t.data[key]; ok {
		t.Stats.Updates++
	}
	t.data[key] = s
}

// Len returns the number of entries currently stored.
func (t *Table) Len() int { return len(t.data) }

// Clear empties the table, logging the number of entries dropped.
func (t *Table) Clear() {
	t.log.Info(out.Sprintf("clearing transposition table with %d entries", len(t.data)))
	t.log.Debug(util.MemStat())
	t.data = make(map[zobrist.Key]score.Score, len(t.data))
	t.Stats = Stats{}
}
