package objects

import (
	"strconv"
	"sync/atomic"
)

var idCounter atomic.Uint64

// UniqueID returns prefix followed by a process-wide counter. The first id
// is 1. Safe to call from multiple goroutines.
func UniqueID(prefix string) string {
	return prefix + strconv.FormatUint(idCounter.Add(1), 10)
}
