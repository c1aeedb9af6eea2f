// SPDX-License-Identifier: MIT

package mission

import (
	"math"
	"strconv"
)

// FormatOdds renders a probability with four decimals, e.g. "0.8100".
func FormatOdds(p float64) string {
	return strconv.FormatFloat(p, 'f', 4, 64)
}

// Percent rounds a probability to a whole percentage.
func Percent(p float64) int {
	return int(math.Round(p * 100))
}
