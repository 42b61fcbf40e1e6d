// utils/env.go - Environment helpers shared across packages
package utils

import (
	"os"
	"strconv"
)

// Getenv returns the environment value for key, or def when unset or empty.
func Getenv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

// GetenvInt returns the integer environment value for key, or def when unset
// or unparsable.
func GetenvInt(key string, def int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return def
}
