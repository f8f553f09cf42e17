package domain

import "errors"

var (
	// ErrInvalidCharacter indicates a character outside 0-9A-Z was passed to the codec.
	ErrInvalidCharacter = errors.New("invalid character")

	// ErrGenerationExhausted indicates no valid identifier was produced within the attempt bound.
	ErrGenerationExhausted = errors.New("generation attempts exhausted")

	// ErrInvalidMode indicates an unknown generation mode name.
	ErrInvalidMode = errors.New("invalid generation mode")

	// ErrInvalidCount indicates a batch size outside the accepted range.
	ErrInvalidCount = errors.New("invalid count")

	// ErrBatchTooLarge indicates a validation batch above the accepted size.
	ErrBatchTooLarge = errors.New("batch too large")

	// ErrHistoryEmpty indicates the history holds no entries.
	ErrHistoryEmpty = errors.New("history is empty")
)
