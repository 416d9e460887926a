package utils

import (
	"strconv"
	"sync/atomic"
	"time"
)

var lastID atomic.Int64

// NextID returns a wall-clock derived identifier, strictly increasing even
// when two calls land in the same nanosecond.
func NextID() string {
	now := time.Now().UnixNano()
	for {
		last := lastID.Load()
		if now <= last {
			now = last + 1
		}
		if lastID.CompareAndSwap(last, now) {
			return strconv.FormatInt(now, 10)
		}
	}
}
