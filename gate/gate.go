// seehuhn.de/go/render3d - a software 3D rasteriser
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package gate implements a counting admission gate which limits how many
// tasks may run at the same time.
//
// Waiting callers are admitted in the order in which they arrived.  When a
// slot becomes free, it is handed directly to the longest waiting caller, so
// that a steady stream of new arrivals cannot starve a waiter.
package gate

import (
	"container/list"
	"fmt"
	"runtime"
	"sync"
)

// Gate limits the number of concurrently admitted tasks.
//
// Every call to [Gate.Acquire] (or successful [Gate.TryAcquire]) must be
// matched by exactly one call to [Gate.Release].
//
// All methods are safe for concurrent use.
type Gate struct {
	mu      sync.Mutex
	used    int
	max     int
	waiters list.List // of chan struct{}, oldest first
}

// New returns a gate admitting up to n tasks at a time.
// If n is zero or negative, the number of logical CPUs is used.
// Values above the number of logical CPUs are reduced to that number,
// and a warning is logged.
func New(n int) *Gate {
	g := &Gate{}
	g.max = clampCapacity(n, false)
	return g
}

// Clone returns a new, idle gate with the same capacity as g.
// Admissions held on g are not carried over.
func (g *Gate) Clone() *Gate {
	return &Gate{max: g.Capacity()}
}

// Acquire blocks until the caller is admitted.
func (g *Gate) Acquire() {
	g.mu.Lock()
	if g.used < g.max && g.waiters.Len() == 0 {
		g.used++
		g.mu.Unlock()
		return
	}

	ready := make(chan struct{})
	g.waiters.PushBack(ready)
	g.mu.Unlock()

	// Release (or a capacity increase) accounts for our slot before
	// closing the channel.
	<-ready
}

// TryAcquire admits the caller without blocking, if a slot is free and
// nobody is waiting.  It reports whether the caller was admitted.
func (g *Gate) TryAcquire() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.used < g.max && g.waiters.Len() == 0 {
		g.used++
		return true
	}
	return false
}

// Release gives back a slot obtained by Acquire or TryAcquire.
// Calling Release without a matching admission panics.
func (g *Gate) Release() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.used <= 0 {
		panic("gate: Release called without matching Acquire")
	}
	g.used--
	g.notifyWaiters()
}

// notifyWaiters admits queued callers, oldest first, while slots are free.
// The caller must hold g.mu.
func (g *Gate) notifyWaiters() {
	for g.used < g.max {
		front := g.waiters.Front()
		if front == nil {
			return
		}
		g.used++
		g.waiters.Remove(front)
		close(front.Value.(chan struct{}))
	}
}

// Capacity returns the maximum number of concurrently admitted tasks.
func (g *Gate) Capacity() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.max
}

// InUse returns the number of currently admitted tasks.
func (g *Gate) InUse() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.used
}

// SetCapacity changes the number of tasks which may be admitted at the same
// time and returns the new capacity.  Zero or negative values select the
// number of logical CPUs.  Values above the number of logical CPUs are
// reduced to that number, and a warning is logged.
//
// Tasks which are already admitted are not affected when the capacity
// shrinks; new admissions wait until the number of admitted tasks has
// dropped below the new limit.
func (g *Gate) SetCapacity(n int) int {
	return g.setCapacity(clampCapacity(n, false))
}

// ForceCapacity is like SetCapacity, but honours values above the number of
// logical CPUs.  A warning is logged in this case, since oversubscription
// usually reduces throughput.
func (g *Gate) ForceCapacity(n int) int {
	return g.setCapacity(clampCapacity(n, true))
}

func (g *Gate) setCapacity(n int) int {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.max = n
	g.notifyWaiters()
	return n
}

// String returns a short description of the gate state.
func (g *Gate) String() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return fmt.Sprintf("gate %d/%d (%d waiting)", g.used, g.max, g.waiters.Len())
}

// Hardware returns the number of logical CPUs available to the process.
func Hardware() int {
	return runtime.NumCPU()
}

func clampCapacity(n int, force bool) int {
	hw := Hardware()
	switch {
	case n <= 0:
		return hw
	case n > hw && force:
		Logger().Warn("gate capacity exceeds hardware concurrency, this may decrease performance",
			"requested", n, "hardware", hw)
		return n
	case n > hw:
		Logger().Warn("gate capacity reduced to hardware concurrency",
			"requested", n, "hardware", hw)
		return hw
	}
	return n
}
