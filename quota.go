package topsites

import (
	"strconv"
	"strings"
)

// Quota bounds.
const (
	DefaultQuota = 20
	MaxQuota     = 500
)

// NormalizeQuota returns n when it lies in [1, MaxQuota] and DefaultQuota otherwise.
func NormalizeQuota(n int) int {
	if n < 1 || n > MaxQuota {
		return DefaultQuota
	}
	return n
}

// ParseQuota converts a raw count argument to a normalized quota.
// Input that is not a decimal integer parses as 0, which normalizes to DefaultQuota.
func ParseQuota(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		n = 0
	}
	return NormalizeQuota(n)
}
