package cnpj

import (
	"fmt"
	"strconv"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"cnpj-toolkit/internal/domain"
)

// MaxAttempts bounds the candidates drawn by a single Generate call.
const MaxAttempts = 2000

// BodySource draws random strings of length n over alphabet.
type BodySource interface {
	Draw(alphabet string, n int) (string, error)
}

// NanoIDSource draws bodies with go-nanoid, which picks each character
// uniformly from the alphabet using crypto/rand.
type NanoIDSource struct{}

// Draw returns n characters picked uniformly from alphabet.
func (NanoIDSource) Draw(alphabet string, n int) (string, error) {
	return gonanoid.Generate(alphabet, n)
}

// Generator produces valid identifiers.
type Generator struct {
	source      BodySource
	maxAttempts int
}

// NewGenerator creates a generator backed by NanoIDSource.
func NewGenerator() *Generator {
	return NewGeneratorWithSource(NanoIDSource{})
}

// NewGeneratorWithSource creates a generator drawing bodies from source.
func NewGeneratorWithSource(source BodySource) *Generator {
	return &Generator{
		source:      source,
		maxAttempts: MaxAttempts,
	}
}

// Generate draws bodies until one yields a valid identifier for mode.
// It returns domain.ErrGenerationExhausted after MaxAttempts rejections.
func (g *Generator) Generate(mode domain.Mode) (domain.Identifier, error) {
	alphabet := Alphanumeric
	if mode == domain.ModeNumeric {
		alphabet = Digits
	}
	format := formatFor(mode)

	for attempt := 0; attempt < g.maxAttempts; attempt++ {
		body, err := g.source.Draw(alphabet, domain.BodyLength)
		if err != nil {
			return domain.Identifier{}, fmt.Errorf("drawing body: %w", err)
		}
		if repeated(body) {
			continue
		}

		first, second, err := CheckPair(body)
		if err != nil {
			return domain.Identifier{}, fmt.Errorf("checking body %q: %w", body, err)
		}

		pure := body + strconv.Itoa(first) + strconv.Itoa(second)
		if len(pure) != domain.Length || !format.MatchString(pure) || repeated(pure) {
			continue
		}

		return domain.Identifier{Pure: pure, Masked: ApplyMask(pure)}, nil
	}

	return domain.Identifier{}, fmt.Errorf("%w after %d attempts", domain.ErrGenerationExhausted, g.maxAttempts)
}

// GenerateBatch generates count identifiers for mode.
func (g *Generator) GenerateBatch(mode domain.Mode, count int) ([]domain.Identifier, error) {
	ids := make([]domain.Identifier, 0, count)
	for i := 0; i < count; i++ {
		id, err := g.Generate(mode)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
