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

const minQueryLength = 2

type playerService struct {
	gateway upstream.Gateway
	engine  *engine.Engine
	log     zerolog.Logger
}

func NewPlayerService(gateway upstream.Gateway, eng *engine.Engine, logger zerolog.Logger) PlayerService {
	l := logger.With().Str("module", "service").Str("component", "player").Logger()
	return &playerService{gateway: gateway, engine: eng, log: l}
}

// SearchPlayers looks up transfer targets by name and rates whatever the
// provider returns. Validation runs before any fetch or computation.
func (s *playerService) SearchPlayers(ctx context.Context, query, position, team string) ([]model.RatedPlayer, error) {
	start := time.Now()
	rawQuery := query

	query = strings.TrimSpace(query)
	position = strings.TrimSpace(position)
	team = strings.TrimSpace(team)

	var ferrs []FieldError
	if ln := len([]rune(query)); ln < minQueryLength {
		ferrs = append(ferrs, FieldError{Field: "query", Message: "must be at least 2 characters"})
	}
	if err := NewInvalidInputError(ferrs); err != nil {
		s.log.Debug().Str("query_raw", rawQuery).Interface("field_errors", ferrs).Msg("search validation failed")
		return nil, err
	}

	records, err := s.gateway.SearchPlayers(ctx, query)
	if err != nil {
		s.log.Error().Err(err).Str("query", query).Msg("player search fetch failed")
		return nil, err
	}

	rated := s.engine.SearchAndFilter(records, query, position, team)

	s.log.Info().
		Dur("took", time.Since(start)).
		Int("fetched", len(records)).
		Int("returned", len(rated)).
		Msg("player search completed")
	return rated, nil
}
