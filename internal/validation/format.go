package validation

// Input masks applied as the user types. Both formatters project the input
// down to its digits and rebuild the mask from scratch, which is what makes
// them idempotent: running one over its own output changes nothing.

// digitsOnly keeps the 0-9 runes of s, capped at max digits (0 = no cap).
func digitsOnly(s string, max int) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			out = append(out, r)
			if max > 0 && len(out) == max {
				break
			}
		}
	}
	return string(out)
}

// FormatPhone masks a US phone as (DDD) DDD-DDDD, progressively: nothing
// until the 4th digit, partial grouping before the 7th.
func FormatPhone(s string) string {
	digits := digitsOnly(s, 10)
	switch {
	case len(digits) <= 3:
		return digits
	case len(digits) <= 6:
		return "(" + digits[:3] + ") " + digits[3:]
	default:
		return "(" + digits[:3] + ") " + digits[3:6] + "-" + digits[6:]
	}
}

// FormatTaxID masks a tax id as DDD-DD-DDDD, hard-capped at 9 digits.
func FormatTaxID(s string) string {
	digits := digitsOnly(s, 9)
	switch {
	case len(digits) <= 3:
		return digits
	case len(digits) <= 5:
		return digits[:3] + "-" + digits[3:]
	default:
		return digits[:3] + "-" + digits[3:5] + "-" + digits[5:]
	}
}
