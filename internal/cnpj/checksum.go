package cnpj

import "fmt"

var (
	// FirstDigitWeights applies to the 12 body values.
	FirstDigitWeights = []int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	// SecondDigitWeights applies to the body values followed by the first digit.
	SecondDigitWeights = []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
)

// CheckDigit reduces the weighted sum of values modulo 11.
// values and weights must have the same length.
func CheckDigit(values, weights []int) int {
	if len(values) != len(weights) {
		panic(fmt.Sprintf("cnpj: %d values for %d weights", len(values), len(weights)))
	}

	sum := 0
	for i, v := range values {
		sum += v * weights[i]
	}

	r := sum % 11
	if r < 2 {
		return 0
	}
	return 11 - r
}

// CheckPair computes both check digits of a 12-character body.
func CheckPair(body string) (int, int, error) {
	values, err := Values(body)
	if err != nil {
		return 0, 0, err
	}
	if len(values) != len(FirstDigitWeights) {
		return 0, 0, fmt.Errorf("body must have %d characters, got %d", len(FirstDigitWeights), len(values))
	}

	first := CheckDigit(values, FirstDigitWeights)
	second := CheckDigit(append(values, first), SecondDigitWeights)
	return first, second, nil
}
