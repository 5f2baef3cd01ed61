package utils

import (
	"fmt"
	"regexp"
	"strconv"
)

// canonicalCode matches the canonical property code shape: "MU-" followed by
// exactly 4 digits. Legacy records carry variable-length suffixes such as
// MU-7 or MU-001; those never participate in sequence generation.
var canonicalCode = regexp.MustCompile(`^MU-(\d{4})$`)

func IsValidPropertyCode(code string) bool {
	return canonicalCode.MatchString(code)
}

// NextPropertyCode computes the next sequential code from the existing set.
// Non-canonical codes are ignored so legacy entries neither perturb the
// sequence nor collide with newly generated codes.
//
// The scan-then-insert is not atomic against concurrent creations; the
// unique index on propertyCode is the backstop (see config.ConnectDB).
func NextPropertyCode(existing []string) string {
	max := 0
	for _, code := range existing {
		m := canonicalCode.FindStringSubmatch(code)
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		if n > max {
			max = n
		}
	}
	return fmt.Sprintf("MU-%04d", max+1)
}
