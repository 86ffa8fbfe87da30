package utils

import (
	"fmt"
	"strings"
)

// FormatPaise renders an amount held in integer paise as a display string,
// e.g. 150000 -> "₹1,500.00". Amounts are stored and computed in minor units
// only; this is the single point where they become display text.
func FormatPaise(paise int64) string {
	negative := paise < 0
	if negative {
		paise = -paise
	}

	rupees := paise / 100
	fraction := paise % 100

	grouped := groupIndian(rupees)
	s := fmt.Sprintf("₹%s.%02d", grouped, fraction)
	if negative {
		return "-" + s
	}
	return s
}

// groupIndian applies Indian digit grouping (1,23,45,678) to a whole-rupee amount.
func groupIndian(n int64) string {
	digits := fmt.Sprintf("%d", n)
	if len(digits) <= 3 {
		return digits
	}

	head := digits[:len(digits)-3]
	tail := digits[len(digits)-3:]

	var parts []string
	for len(head) > 2 {
		parts = append([]string{head[len(head)-2:]}, parts...)
		head = head[:len(head)-2]
	}
	if head != "" {
		parts = append([]string{head}, parts...)
	}
	return strings.Join(parts, ",") + "," + tail
}
