// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package util

import (
	"runtime"
	"time"

	log "github.com/sirupsen/logrus"
)

// PerfStats captures the time and memory used at some point, such that the
// cost of a subsequent piece of work can be reported.
type PerfStats struct {
	// Time at which measurement began
	startTime time.Time
	// Total bytes allocated when measurement began
	startMem uint64
	// Number of GC cycles when measurement began
	startGc uint32
}

// NewPerfStats starts a new measurement.
func NewPerfStats() *PerfStats {
	var m runtime.MemStats

	startTime := time.Now()

	runtime.ReadMemStats(&m)

	return &PerfStats{startTime, m.TotalAlloc, m.NumGC}
}

// Log reports the time and memory used since this measurement began, along
// with the number of items processed.
func (p *PerfStats) Log(prefix string, items uint) {
	var m runtime.MemStats

	runtime.ReadMemStats(&m)
	alloc := (m.TotalAlloc - p.startMem) / 1024
	gcs := m.NumGC - p.startGc
	exectime := time.Since(p.startTime).Seconds()
	rate := float64(items)
	//
	if exectime > 0 {
		rate = rate / exectime
	}

	log.Debugf("%s took %0.3fs for %d clauses (%0.0f/s) using %v Kb (%v GC events)", prefix, exectime, items,
		rate, alloc, gcs)
}
