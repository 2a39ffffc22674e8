package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/avilanova/barcarate/internal/handler"
	"github.com/avilanova/barcarate/internal/model"
	"github.com/avilanova/barcarate/internal/service"
	"github.com/avilanova/barcarate/internal/upstream"
)

// stubPinger satisfies handler.Pinger with a configurable outcome.
type stubPinger struct{ err error }

func (s stubPinger) Ping(ctx context.Context) error { return s.err }

// fakeInvalid replicates aggregated validation error semantics.
type fakeInvalid struct{ fe []service.FieldError }

func (f *fakeInvalid) Error() string                { return service.ErrInvalidInput.Error() }
func (f *fakeInvalid) Unwrap() error                { return service.ErrInvalidInput }
func (f *fakeInvalid) Fields() []service.FieldError { return f.fe }

// stubSquadService lets us control each method outcome.
type stubSquadService struct {
	squad     model.Squad
	squadErr  error
	report    model.SquadReport
	reportErr error
}

func (s *stubSquadService) GetSquad(ctx context.Context) (model.Squad, error) {
	return s.squad, s.squadErr
}
func (s *stubSquadService) AnalyzeSquad(ctx context.Context) (model.SquadReport, error) {
	return s.report, s.reportErr
}

// stubPlayerService returns a fixed search result.
type stubPlayerService struct {
	players []model.RatedPlayer
	err     error
}

func (s *stubPlayerService) SearchPlayers(ctx context.Context, query, position, team string) ([]model.RatedPlayer, error) {
	return s.players, s.err
}

func newRouter(probe handler.Pinger, squadSvc service.SquadService, playerSvc service.PlayerService, transferSvc service.TransferService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler.Register(r, probe, squadSvc, playerSvc, transferSvc)
	return r
}

func TestSquadHandler_Get_OK(t *testing.T) {
	stub := &stubSquadService{squad: model.Squad{
		Team: model.Team{ID: 529, Name: "Barcelona"},
		Players: []model.RatedPlayer{
			{PlayerRecord: model.PlayerRecord{ID: 2, Name: "Pedri González"}, Rating: 84},
		},
	}}
	r := newRouter(stubPinger{}, stub, nil, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/squad", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp model.Squad
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil || resp.Team.ID != 529 || len(resp.Players) != 1 {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestSquadHandler_Get_UpstreamDown(t *testing.T) {
	stub := &stubSquadService{squadErr: upstream.ErrUnavailable}
	r := newRouter(stubPinger{}, stub, nil, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/squad", nil))
	if w.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d: %s", w.Code, w.Body.String())
	}
	if !bytes.Contains(w.Body.Bytes(), []byte("upstream_unavailable")) {
		t.Fatalf("expected upstream_unavailable, body=%s", w.Body.String())
	}
}

func TestSquadHandler_Analysis_OK(t *testing.T) {
	stub := &stubSquadService{report: model.SquadReport{
		OverallRating: 82.3,
		TotalPlayers:  5,
	}}
	r := newRouter(stubPinger{}, stub, nil, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/squad/analysis", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if !bytes.Contains(w.Body.Bytes(), []byte(`"overallRating":82.3`)) {
		t.Fatalf("expected overall rating in body: %s", w.Body.String())
	}
}

func TestPlayerHandler_Search_OK(t *testing.T) {
	stub := &stubPlayerService{players: []model.RatedPlayer{
		{PlayerRecord: model.PlayerRecord{ID: 101, Name: "Vinícius Júnior"}, Rating: 89, MarketValue: 120_000_000},
	}}
	r := newRouter(stubPinger{}, nil, stub, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/players/search?query=vinicius", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if !bytes.Contains(w.Body.Bytes(), []byte("Vinícius Júnior")) {
		t.Fatalf("expected player in body: %s", w.Body.String())
	}
}

func TestPlayerHandler_Search_Invalid(t *testing.T) {
	stub := &stubPlayerService{err: &fakeInvalid{fe: []service.FieldError{{Field: "query", Message: "must be at least 2 characters"}}}}
	r := newRouter(stubPinger{}, nil, stub, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/players/search?query=v", nil))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
	if !bytes.Contains(w.Body.Bytes(), []byte("invalid_input")) || !bytes.Contains(w.Body.Bytes(), []byte("query")) {
		t.Fatalf("expected field error for query, body=%s", w.Body.String())
	}
}

func TestHealth_LivenessAndReadiness(t *testing.T) {
	r := newRouter(stubPinger{}, nil, nil, nil)

	for _, path := range []string{"/live", "/ready", "/api/v1/health/live", "/api/v1/health/ready"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200 on %s, got %d", path, w.Code)
		}
	}
}

func TestHealth_ReadinessProbeFailure(t *testing.T) {
	r := newRouter(stubPinger{err: errors.New("provider down")}, nil, nil, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ready", nil))
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d: %s", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/live", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("liveness must not depend on the probe, got %d", w.Code)
	}
}
