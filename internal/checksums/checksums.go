package checksums

// Luhn reports whether number is a string of ASCII digits whose Luhn sum is
// a multiple of 10. Any other byte makes the whole number invalid.
// The empty string has a zero sum and is therefore valid.
func Luhn(number string) bool {
	var sum int
	double := false

	for i := len(number) - 1; i >= 0; i-- {
		c := number[i]
		if c < '0' || c > '9' {
			return false
		}

		cur := int(c - '0')
		if double {
			cur *= 2
			if cur > 9 {
				cur -= 9
			}
		}

		sum += cur
		double = !double
	}
	return sum%10 == 0
}
