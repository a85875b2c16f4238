package service

import (
	"context"
	"log/slog"

	"github.com/saikothasan/neno/internal/history"
	"github.com/saikothasan/neno/internal/metrics"
	"github.com/saikothasan/neno/internal/models"
	"github.com/saikothasan/neno/internal/normalize"
)

type Upstream interface {
	Fetch(ctx context.Context, req *models.GenerationRequest) ([]byte, error)
}

type HistoryStore interface {
	Append(ctx context.Context, clientID string, entry models.HistoryEntry) error
	List(ctx context.Context, clientID string) ([]models.HistoryEntry, error)
	Clear(ctx context.Context, clientID string) error
}

type GenerateService struct {
	logger   *slog.Logger
	upstream Upstream
	history  HistoryStore
}

func NewGenerateService(logger *slog.Logger, upstream Upstream) *GenerateService {
	return &GenerateService{
		logger:   logger,
		upstream: upstream,
	}
}

func (g *GenerateService) SetHistoryStore(store HistoryStore) {
	g.history = store
}

// Generate sends one request upstream and normalizes the answer. Every
// call reaches the upstream; nothing is served from history.
func (g *GenerateService) Generate(ctx context.Context, clientID string, req *models.GenerationRequest) (*models.GenerateResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	raw, err := g.upstream.Fetch(ctx, req)
	if err != nil {
		return nil, err
	}

	decoded, err := normalize.Decode(raw)
	if err != nil {
		metrics.UpstreamResponseShape("unknown", "malformed")
		g.logger.Warn("undecodable upstream payload", "error", err)
		return nil, err
	}

	results, err := normalize.Resolve(decoded)
	if err != nil {
		metrics.UpstreamResponseShape(decoded.Shape.String(), "malformed")
		g.logger.Warn("failed to parse wrapped upstream payload", "error", err)
		return nil, err
	}
	metrics.UpstreamResponseShape(decoded.Shape.String(), "ok")

	if decoded.Shape == models.ShapeWrapped {
		g.logger.Info("recovered warning-wrapped upstream payload", "results", len(results))
	}

	if incomplete := countIncomplete(results, req.Type); incomplete > 0 {
		g.logger.Warn("upstream items missing expected fields",
			"type", req.Type, "incomplete", incomplete, "total", len(results))
	}

	resolved := *req
	resolved.Platform = req.ResolvePlatform()
	resolved.CustomPlatform = ""

	if g.history != nil {
		if err := g.history.Append(ctx, clientID, history.NewEntry(resolved, results)); err != nil {
			g.logger.Error("failed to save history", "client_id", clientID, "error", err)
		}
	}

	return &models.GenerateResponse{
		Type:     req.Type,
		Platform: resolved.Platform,
		Count:    *req.Count,
		Results:  results,
	}, nil
}

func (g *GenerateService) History(ctx context.Context, clientID string) ([]models.HistoryEntry, error) {
	if g.history == nil {
		return []models.HistoryEntry{}, nil
	}
	return g.history.List(ctx, clientID)
}

func (g *GenerateService) ClearHistory(ctx context.Context, clientID string) error {
	if g.history == nil {
		return nil
	}
	return g.history.Clear(ctx, clientID)
}

func countIncomplete(results []models.GenerationResult, kind models.Kind) int {
	n := 0
	for _, r := range results {
		if !r.HasFields(kind) {
			n++
		}
	}
	return n
}
