package core

import (
	"fmt"
	"strconv"
	"strings"
)

// ConvertToInt64 will try to convert the provided string to its int64 corresponding value
func ConvertToInt64(value string) (int64, error) {
	number, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrStringIsNotANumber, value)
	}

	return number, nil
}

// CheckRange returns ErrInvalidRange if min is greater than max
func CheckRange(min int64, max int64) error {
	if min > max {
		return fmt.Errorf("%w: min %d is greater than max %d", ErrInvalidRange, min, max)
	}

	return nil
}
