package handler

import (
	"errors"
	"fmt"

	"cnpj-toolkit/internal/domain"
	"cnpj-toolkit/internal/service"
)

// maxInputLength only bounds the payload. Anything shorter reaches the
// validator, where a wrong length is an ordinary invalid result.
const maxInputLength = 1024

func parseMode(raw string) (domain.Mode, error) {
	// Empty defers to the service's configured default.
	if raw == "" {
		return "", nil
	}
	mode, err := domain.ParseMode(raw)
	if err != nil {
		return "", errors.New("mode must be alphanumeric or numeric")
	}
	return mode, nil
}

func validateCount(count int) error {
	if count < 1 || count > service.MaxBatchSize {
		return fmt.Errorf("count must be between 1 and %d", service.MaxBatchSize)
	}
	return nil
}

func validateInput(raw string) error {
	if len(raw) > maxInputLength {
		return fmt.Errorf("cnpj exceeds maximum length of %d characters", maxInputLength)
	}
	return nil
}

func validateBatch(raws []string) error {
	if len(raws) == 0 {
		return errors.New("cnpjs must not be empty")
	}
	if len(raws) > service.MaxBatchSize {
		return fmt.Errorf("cnpjs must not exceed %d values", service.MaxBatchSize)
	}
	for i, raw := range raws {
		if err := validateInput(raw); err != nil {
			return fmt.Errorf("cnpjs[%d]: %w", i, err)
		}
	}
	return nil
}
