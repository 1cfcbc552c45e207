package utils

import (
	"github.com/google/uuid"
)

func ParseStringToUUID(s string) uuid.UUID {
	uid, err := uuid.Parse(s)
	if err != nil || s == "" {
		return uuid.Nil
	}
	return uid
}

// IsValidUUID - cheap format check before hitting uuid.Parse in hot paths
func IsValidUUID(u string) bool {
	if len(u) != 36 {
		return false
	}
	if u[8] != '-' || u[13] != '-' || u[18] != '-' || u[23] != '-' {
		return false
	}
	return true
}
