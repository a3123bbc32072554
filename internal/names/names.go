// Package names issues fresh symbol names that never collide with names already in use.
package names

import (
	"strconv"
)

// Allocator remembers every name it was told about or has issued.
// One allocator serves one conversion run, so names introduced by different stages never clash.
// Allocator is not safe for concurrent use.
type Allocator struct {
	taken    map[string]bool
	counters map[string]int
}

func New(taken ...string) *Allocator {
	a := &Allocator{taken: make(map[string]bool, len(taken)), counters: make(map[string]int)}
	a.Reserve(taken...)
	return a
}

// Reserve marks names as used.
func (a *Allocator) Reserve(names ...string) {
	for _, name := range names {
		a.taken[name] = true
	}
}

func (a *Allocator) IsTaken(name string) bool {
	return a.taken[name]
}

// Derive returns base if it is free, otherwise base with suffix appended as many times as needed.
// Empty suffix is replaced with "0".
func (a *Allocator) Derive(base, suffix string) string {
	if suffix == "" {
		suffix = "0"
	}
	name := base
	for a.taken[name] {
		name += suffix
	}
	a.taken[name] = true
	return name
}

// Next returns prefix followed by the smallest counter value (starting from 1) that gives a free name.
// Counters are kept per prefix, so subsequent calls with the same prefix never go back.
func (a *Allocator) Next(prefix string) string {
	n := a.counters[prefix]
	var name string
	for {
		n++
		name = prefix + strconv.Itoa(n)
		if !a.taken[name] {
			break
		}
	}
	a.counters[prefix] = n
	a.taken[name] = true
	return name
}
