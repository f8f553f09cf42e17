package cnpj_test

import (
	"math/rand/v2"
	"testing"

	"cnpj-toolkit/internal/cnpj"
	"cnpj-toolkit/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckDigit_KnownValues(t *testing.T) {
	tests := []struct {
		name    string
		values  []int
		weights []int
		want    int
	}{
		// 25+16+9+4+81+64+49+36+25+16+9+4 = 338, 338 % 11 = 8
		{name: "weights against themselves", values: cnpj.FirstDigitWeights, weights: cnpj.FirstDigitWeights, want: 3},
		{name: "remainder zero", values: []int{1}, weights: []int{11}, want: 0},
		{name: "remainder one", values: []int{1}, weights: []int{12}, want: 0},
		{name: "remainder two", values: []int{2}, weights: []int{1}, want: 9},
		{name: "remainder ten", values: []int{10}, weights: []int{1}, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cnpj.CheckDigit(tt.values, tt.weights))
		})
	}
}

func TestCheckDigit_IsDeterministicAndInRange(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))

	for i := 0; i < 1000; i++ {
		values := make([]int, len(cnpj.SecondDigitWeights))
		for j := range values {
			values[j] = r.IntN(43)
		}

		first := cnpj.CheckDigit(values, cnpj.SecondDigitWeights)
		assert.Equal(t, first, cnpj.CheckDigit(values, cnpj.SecondDigitWeights))
		assert.GreaterOrEqual(t, first, 0)
		assert.LessOrEqual(t, first, 9)
	}
}

func TestCheckDigit_PanicsOnLengthMismatch(t *testing.T) {
	assert.Panics(t, func() {
		cnpj.CheckDigit([]int{1, 2}, []int{1})
	})
}

func TestCheckPair(t *testing.T) {
	tests := []struct {
		body   string
		first  int
		second int
	}{
		{body: "114447770001", first: 6, second: 1},
		{body: "12ABC34501DE", first: 3, second: 5},
		{body: "12abc34501de", first: 3, second: 5},
	}

	for _, tt := range tests {
		t.Run(tt.body, func(t *testing.T) {
			first, second, err := cnpj.CheckPair(tt.body)
			require.NoError(t, err)
			assert.Equal(t, tt.first, first)
			assert.Equal(t, tt.second, second)
		})
	}
}

func TestCheckPair_Errors(t *testing.T) {
	_, _, err := cnpj.CheckPair("12ABC345*1DE")
	assert.ErrorIs(t, err, domain.ErrInvalidCharacter)

	_, _, err = cnpj.CheckPair("12ABC")
	assert.Error(t, err)
}
