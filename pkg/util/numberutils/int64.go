package numberutils

import (
	"strconv"
	"strings"
)

// ToInt64WithError converts the given string to an int64 and returns any error that occurred during conversion.
// Surrounding spaces are ignored.
func ToInt64WithError(str string) (int64, error) {
	return strconv.ParseInt(strings.TrimSpace(str), 10, 64)
}
