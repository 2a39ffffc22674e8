// Package service holds business logic orchestration across the upstream
// gateway, the scoring engine and the handlers. Kept intentionally lean:
// only use-case coordination, validation and domain error shaping.
package service

import (
	"context"
	"errors"

	"github.com/avilanova/barcarate/internal/model"
)

// ErrInvalidInput is the marker error for aggregated validation failures (maps to HTTP 400).
// Field-level details are retrieved via FieldErrors(err).
var ErrInvalidInput = errors.New("invalid input")

// FieldError describes a single invalid field in a client request.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// invalidInputError aggregates multiple FieldError instances and unwraps to ErrInvalidInput.
type invalidInputError struct {
	fields []FieldError
}

func (e *invalidInputError) Error() string        { return ErrInvalidInput.Error() }
func (e *invalidInputError) Unwrap() error        { return ErrInvalidInput }
func (e *invalidInputError) Fields() []FieldError { return e.fields }

// NewInvalidInputError builds an aggregated validation error if any field errors are present.
func NewInvalidInputError(fe []FieldError) error {
	if len(fe) == 0 { // protective case
		return nil
	}
	return &invalidInputError{fields: fe}
}

// FieldErrors extracts field errors from an aggregated validation error.
func FieldErrors(err error) []FieldError {
	if err == nil {
		return nil
	}
	type feIface interface{ Fields() []FieldError }
	if v, ok := err.(feIface); ok && errors.Is(err, ErrInvalidInput) {
		return v.Fields()
	}
	return nil
}

// PlayerService defines scouting use cases over the transfer market.
type PlayerService interface {
	SearchPlayers(ctx context.Context, query, position, team string) ([]model.RatedPlayer, error)
}

// SquadService defines home squad use cases.
type SquadService interface {
	GetSquad(ctx context.Context) (model.Squad, error)
	AnalyzeSquad(ctx context.Context) (model.SquadReport, error)
}

// TransferService defines transfer evaluation use cases.
type TransferService interface {
	EvaluateTransfer(ctx context.Context, candidate model.TransferCandidate) (model.TransferEvaluation, error)
}
