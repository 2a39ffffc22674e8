package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/avilanova/barcarate/internal/engine"
	"github.com/avilanova/barcarate/internal/model"
	"github.com/avilanova/barcarate/internal/upstream"
)

type squadService struct {
	gateway upstream.Gateway
	engine  *engine.Engine
	log     zerolog.Logger
}

func NewSquadService(gateway upstream.Gateway, eng *engine.Engine, logger zerolog.Logger) SquadService {
	l := logger.With().Str("module", "service").Str("component", "squad").Logger()
	return &squadService{gateway: gateway, engine: eng, log: l}
}

// GetSquad fetches the home roster and rates every player with the
// roster-context strategy.
func (s *squadService) GetSquad(ctx context.Context) (model.Squad, error) {
	start := time.Now()

	team, records, err := s.gateway.FetchSquad(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("squad fetch failed")
		return model.Squad{}, err
	}

	players := make([]model.RatedPlayer, 0, len(records))
	for _, rec := range records {
		players = append(players, s.engine.RateRosterPlayer(rec))
	}

	s.log.Info().Dur("took", time.Since(start)).Int("players", len(players)).Msg("squad assembled")
	return model.Squad{
		Team:        team,
		Players:     players,
		LastUpdated: time.Now().UTC(),
	}, nil
}

// AnalyzeSquad runs the positional analysis over the current roster.
func (s *squadService) AnalyzeSquad(ctx context.Context) (model.SquadReport, error) {
	squad, err := s.GetSquad(ctx)
	if err != nil {
		return model.SquadReport{}, err
	}
	return s.engine.SummarizeSquad(squad.Players), nil
}
