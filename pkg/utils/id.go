package utils

import (
	"strconv"
	"time"
)

// NewID returns an opaque time-derived identifier. Nanosecond resolution
// keeps ids unique within a single process.
func NewID() string {
	return strconv.FormatInt(time.Now().UnixNano(), 10)
}
