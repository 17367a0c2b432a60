package utils

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewID returns a short prefixed identifier such as "tx_9f3c01a".
func NewID(prefix string) string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return prefix + "_" + raw[:7]
}

// NowMillis is the millisecond epoch the API exposes in timestamps.
func NowMillis() int64 {
	return time.Now().UnixMilli()
}
