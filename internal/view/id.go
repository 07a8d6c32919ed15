package view

import (
	"strconv"
	"strings"
)

const idCutset = " \t\n\r\v"

// parseID accepts optionally signed decimal integer surrounded by whitespace.
// Leading zeros are rejected except for zero itself, value must fit int64.
func parseID(raw string) (int64, bool) {
	s := strings.Trim(raw, idCutset)
	if s == "" {
		return 0, false
	}

	digits := s
	if digits[0] == '+' || digits[0] == '-' {
		digits = digits[1:]
	}

	if digits == "" || (len(digits) > 1 && digits[0] == '0') {
		return 0, false
	}

	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return 0, false
		}
	}

	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
