package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/avilanova/barcarate/internal/engine"
	"github.com/avilanova/barcarate/internal/model"
	"github.com/avilanova/barcarate/internal/upstream"
)

// Plausibility bounds for candidate ages; anything outside is a typo.
const (
	minCandidateAge = 15
	maxCandidateAge = 45
)

type transferService struct {
	gateway upstream.Gateway
	engine  *engine.Engine
	log     zerolog.Logger
}

func NewTransferService(gateway upstream.Gateway, eng *engine.Engine, logger zerolog.Logger) TransferService {
	l := logger.With().Str("module", "service").Str("component", "transfer").Logger()
	return &transferService{gateway: gateway, engine: eng, log: l}
}

// EvaluateTransfer validates the candidate, fetches the current roster
// for comparison and runs the evaluation engine.
func (s *transferService) EvaluateTransfer(ctx context.Context, candidate model.TransferCandidate) (model.TransferEvaluation, error) {
	start := time.Now()

	candidate.Name = strings.TrimSpace(candidate.Name)
	candidate.CurrentTeam = strings.TrimSpace(candidate.CurrentTeam)

	var ferrs []FieldError
	if candidate.ID <= 0 {
		ferrs = append(ferrs, FieldError{Field: "id", Message: "must be > 0"})
	}
	if candidate.Name == "" {
		ferrs = append(ferrs, FieldError{Field: "name", Message: "must not be empty"})
	}
	if candidate.Age != 0 && (candidate.Age < minCandidateAge || candidate.Age > maxCandidateAge) {
		ferrs = append(ferrs, FieldError{Field: "age", Message: "must be between 15 and 45"})
	}
	if candidate.Rating != 0 && (candidate.Rating < 0 || candidate.Rating > 100) {
		ferrs = append(ferrs, FieldError{Field: "rating", Message: "must be between 0 and 100"})
	}
	if err := NewInvalidInputError(ferrs); err != nil {
		s.log.Debug().Interface("field_errors", ferrs).Str("name_raw", candidate.Name).Msg("transfer validation failed")
		return model.TransferEvaluation{}, err
	}

	_, records, err := s.gateway.FetchSquad(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("roster fetch for transfer evaluation failed")
		return model.TransferEvaluation{}, err
	}

	roster := make([]model.RatedPlayer, 0, len(records))
	for _, rec := range records {
		roster = append(roster, s.engine.RateRosterPlayer(rec))
	}

	ev := s.engine.EvaluateTransfer(candidate, roster)

	s.log.Info().
		Dur("took", time.Since(start)).
		Int64("candidate_id", candidate.ID).
		Float64("transfer_rating", ev.TransferRating).
		Msg("transfer evaluated")
	return ev, nil
}
