package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"cnpj-toolkit/internal/cnpj"
	"cnpj-toolkit/internal/domain"
	"cnpj-toolkit/internal/history"
	pkglog "cnpj-toolkit/internal/log"
)

const (
	// MaxBatchSize bounds both batch generation and batch validation.
	MaxBatchSize = 100

	validateConcurrency = 8
)

// IdentifierGenerator produces valid identifiers for a mode.
type IdentifierGenerator interface {
	Generate(mode domain.Mode) (domain.Identifier, error)
}

// Recorder receives service counters. *metrics.Metrics implements it.
type Recorder interface {
	IncrementGenerated(mode domain.Mode)
	IncrementValidations(valid bool)
	IncrementGenerationExhausted()
}

type nopRecorder struct{}

func (nopRecorder) IncrementGenerated(domain.Mode) {}
func (nopRecorder) IncrementValidations(bool)      {}
func (nopRecorder) IncrementGenerationExhausted()  {}

// CNPJService generates and validates identifiers and keeps their history.
type CNPJService struct {
	generator   IdentifierGenerator
	generated   history.Store[domain.Identifier]
	validated   history.Store[domain.ValidationResult]
	recorder    Recorder
	defaultMode domain.Mode
}

// Option customizes a CNPJService.
type Option func(*CNPJService)

// WithRecorder sends counters to r.
func WithRecorder(r Recorder) Option {
	return func(s *CNPJService) {
		if r != nil {
			s.recorder = r
		}
	}
}

// WithDefaultMode sets the mode used when a call passes an empty mode.
func WithDefaultMode(mode domain.Mode) Option {
	return func(s *CNPJService) {
		if mode != "" {
			s.defaultMode = mode
		}
	}
}

// NewCNPJService creates a CNPJService. Without options it records no
// metrics and defaults to alphanumeric generation.
func NewCNPJService(
	generator IdentifierGenerator,
	generated history.Store[domain.Identifier],
	validated history.Store[domain.ValidationResult],
	opts ...Option,
) *CNPJService {
	s := &CNPJService{
		generator:   generator,
		generated:   generated,
		validated:   validated,
		recorder:    nopRecorder{},
		defaultMode: domain.ModeAlphanumeric,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Generate creates one identifier and records it in the generated history.
// Returns domain.ErrGenerationExhausted when the generator gives up.
func (s *CNPJService) Generate(ctx context.Context, mode domain.Mode) (domain.Identifier, error) {
	if err := ctx.Err(); err != nil {
		return domain.Identifier{}, err
	}
	if mode == "" {
		mode = s.defaultMode
	}

	id, err := s.generator.Generate(mode)
	if err != nil {
		if errors.Is(err, domain.ErrGenerationExhausted) {
			s.recorder.IncrementGenerationExhausted()
			l := pkglog.Ctx(ctx)
			l.Warn().Err(err).Str(pkglog.FieldMode, mode.String()).Msg("identifier generation exhausted")
		}
		return domain.Identifier{}, fmt.Errorf("generating identifier: %w", err)
	}

	if err := s.generated.Push(ctx, id); err != nil {
		return domain.Identifier{}, fmt.Errorf("recording identifier: %w", err)
	}
	s.recorder.IncrementGenerated(mode)
	return id, nil
}

// GenerateBatch creates count identifiers, 1 <= count <= MaxBatchSize.
func (s *CNPJService) GenerateBatch(ctx context.Context, mode domain.Mode, count int) ([]domain.Identifier, error) {
	if count < 1 || count > MaxBatchSize {
		return nil, fmt.Errorf("%w: must be between 1 and %d, got %d", domain.ErrInvalidCount, MaxBatchSize, count)
	}
	if mode == "" {
		mode = s.defaultMode
	}

	ids := make([]domain.Identifier, 0, count)
	for i := 0; i < count; i++ {
		id, err := s.Generate(ctx, mode)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	l := pkglog.Ctx(ctx)
	l.Debug().Int(pkglog.FieldCount, count).Str(pkglog.FieldMode, mode.String()).Msg("identifier batch generated")
	return ids, nil
}

// Validate checks raw and records the result in the validation history.
// An invalid identifier is a normal result; the error is only set when
// ctx is done.
func (s *CNPJService) Validate(ctx context.Context, raw string) (domain.ValidationResult, error) {
	if err := ctx.Err(); err != nil {
		return domain.ValidationResult{}, err
	}

	result := cnpj.Validate(raw)
	if err := s.record(ctx, result); err != nil {
		return domain.ValidationResult{}, err
	}
	return result, nil
}

// ValidateBatch validates up to MaxBatchSize inputs concurrently. Results
// are returned and recorded in input order.
func (s *CNPJService) ValidateBatch(ctx context.Context, raws []string) ([]domain.ValidationResult, error) {
	if len(raws) > MaxBatchSize {
		return nil, fmt.Errorf("%w: at most %d values, got %d", domain.ErrBatchTooLarge, MaxBatchSize, len(raws))
	}

	results := make([]domain.ValidationResult, len(raws))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(validateConcurrency)
	for i, raw := range raws {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			results[i] = cnpj.Validate(raw)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if err := s.validated.PushAll(ctx, results...); err != nil {
		return nil, fmt.Errorf("recording validations: %w", err)
	}
	for _, result := range results {
		s.recorder.IncrementValidations(result.Valid)
	}
	return results, nil
}

func (s *CNPJService) record(ctx context.Context, result domain.ValidationResult) error {
	if err := s.validated.Push(ctx, result); err != nil {
		return fmt.Errorf("recording validation: %w", err)
	}
	s.recorder.IncrementValidations(result.Valid)
	return nil
}

// GeneratedHistory lists generated identifiers, most recent first.
func (s *CNPJService) GeneratedHistory(ctx context.Context) ([]history.Entry[domain.Identifier], error) {
	return s.generated.List(ctx)
}

// ValidationHistory lists validation results, most recent first.
func (s *CNPJService) ValidationHistory(ctx context.Context) ([]history.Entry[domain.ValidationResult], error) {
	return s.validated.List(ctx)
}

// ClearHistory empties both histories and returns the number of entries removed.
func (s *CNPJService) ClearHistory(ctx context.Context) (int, error) {
	generated, err := s.generated.Clear(ctx)
	if err != nil {
		return 0, err
	}
	validated, err := s.validated.Clear(ctx)
	if err != nil {
		return generated, err
	}
	return generated + validated, nil
}
