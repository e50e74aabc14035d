package utils

import "errors"

var ErrNoDigits = errors.New("date contains no digits")

var interpretations = map[int]string{
	1:  "A natural leader, independent, ambitious, and pioneering.",
	2:  "A peacemaker, diplomatic, intuitive, and drawn to harmony.",
	3:  "A communicator, creative, social, with a gift for self-expression.",
	4:  "A builder, practical, organized, dedicated to lasting foundations.",
	5:  "An adventurer, a freedom-lover who thrives on change and travel.",
	6:  "A nurturer, responsible, compassionate, a caretaker for the community.",
	7:  "A seeker, analytical, spiritual, with a deep desire for truth.",
	8:  "A powerhouse, ambitious, business-minded, with strong leadership.",
	9:  "A humanitarian, compassionate, idealistic, serving the greater good.",
	11: "An illuminator (Master Number), heightened intuition and insight.",
	22: "A Master Builder (Master Number), able to turn dreams into reality.",
	33: "A Master Teacher (Master Number), a source of healing and guidance.",
}

func isMasterNumber(n int) bool {
	return n == 11 || n == 22 || n == 33
}

func digitSum(n int) int {
	sum := 0
	for n > 0 {
		sum += n % 10
		n /= 10
	}
	return sum
}

// LifePathNumber reduces the digits of a birth-date string to a numerology
// life-path number. Reduction stops early whenever the running sum hits a
// master number (11, 22, 33); otherwise it continues to a single digit.
func LifePathNumber(birthDate string) (int, error) {
	sum := 0
	digits := 0
	for _, r := range birthDate {
		if r >= '0' && r <= '9' {
			sum += int(r - '0')
			digits++
		}
	}
	if digits == 0 {
		return 0, ErrNoDigits
	}

	for sum > 9 {
		if isMasterNumber(sum) {
			return sum, nil
		}
		sum = digitSum(sum)
	}
	return sum, nil
}

// LifePathInterpretation returns the reading for a life-path number.
func LifePathInterpretation(n int) string {
	return interpretations[n]
}
