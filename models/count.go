package models

import (
	"math"
	"strconv"
	"strings"
)

type CountResponse struct {
	NewCount *float64 `json:"new_count"`
}

type StatusResponse struct {
	Count int `json:"count"`
}

type IncrementResponse struct {
	Message  string `json:"message"`
	NewCount int    `json:"new_count"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// Count is the visitor total returned by the counter endpoint.
type Count float64

// String formats the count the way a browser prints a number: 42 becomes
// "42", 1e21 becomes "1e+21" and 1e-7 becomes "1e-7".
func (c Count) String() string {
	v := float64(c)
	abs := math.Abs(v)
	if abs != 0 && (abs >= 1e21 || abs < 1e-6) {
		s := strconv.FormatFloat(v, 'e', -1, 64)
		return strings.Replace(strings.Replace(s, "e-0", "e-", 1), "e+0", "e+", 1)
	}

	return strconv.FormatFloat(v, 'f', -1, 64)
}
