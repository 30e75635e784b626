package soulprint

// masterNumbers are never reduced further in life path calculation.
var masterNumbers = map[int]bool{11: true, 22: true, 33: true}

// LifePath reduces the digits of a birth date (any separator) to a life path
// number, preserving the master numbers 11, 22 and 33. The second return is
// false when the input contains no digits.
func LifePath(birthDate string) (int, bool) {
	sum := 0
	found := false
	for _, r := range birthDate {
		if r >= '0' && r <= '9' {
			sum += int(r - '0')
			found = true
		}
	}
	if !found {
		return 0, false
	}
	for sum > 9 && !masterNumbers[sum] {
		sum = digitSum(sum)
	}
	return sum, true
}

func digitSum(n int) int {
	s := 0
	for n > 0 {
		s += n % 10
		n /= 10
	}
	return s
}
