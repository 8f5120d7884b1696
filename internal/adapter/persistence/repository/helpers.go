package repository

import (
	"strconv"
	"time"
)

const defaultIdempotencyTTL = 24 * time.Hour

func ttlOrDefault(ttl time.Duration) time.Duration {
	if ttl <= 0 {
		return defaultIdempotencyTTL
	}
	return ttl
}

func unixString(t time.Time) string {
	return strconv.FormatInt(t.Unix(), 10)
}
