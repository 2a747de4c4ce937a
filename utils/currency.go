// utils/currency.go
package utils

import (
	"strconv"
	"strings"
)

// FormatINR renders an amount with two decimal places and Indian digit
// grouping: the last three digits form one group, every two digits after
// that another (1234567.8 -> "12,34,567.80").
func FormatINR(amount float64) string {
	s := strconv.FormatFloat(amount, 'f', 2, 64)

	sign := ""
	if strings.HasPrefix(s, "-") {
		sign = "-"
		s = s[1:]
	}

	parts := strings.SplitN(s, ".", 2)
	intPart, fracPart := parts[0], parts[1]

	if len(intPart) <= 3 {
		return sign + intPart + "." + fracPart
	}

	head := intPart[:len(intPart)-3]
	grouped := intPart[len(intPart)-3:]
	for len(head) > 2 {
		grouped = head[len(head)-2:] + "," + grouped
		head = head[:len(head)-2]
	}
	return sign + head + "," + grouped + "." + fracPart
}
