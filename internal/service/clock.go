package service

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseClock parses a wall-clock HH:MM string.
func ParseClock(timeStr string) (hour, minute int, err error) {
	parts := strings.Split(timeStr, ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid time %q, expected HH:MM", timeStr)
	}
	hour, err = strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("invalid hour in %q", timeStr)
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("invalid minute in %q", timeStr)
	}
	return hour, minute, nil
}

// ValidClock reports whether timeStr is a well-formed HH:MM value.
func ValidClock(timeStr string) bool {
	_, _, err := ParseClock(timeStr)
	return err == nil
}
