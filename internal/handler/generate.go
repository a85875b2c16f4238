package handler

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strings"

	"github.com/bytedance/sonic"

	"github.com/saikothasan/neno/internal/models"
)

const (
	ClientIDHeader = "X-Client-ID"

	maxBodyBytes = 1 << 16
)

type generateService interface {
	Generate(ctx context.Context, clientID string, req *models.GenerationRequest) (*models.GenerateResponse, error)
	History(ctx context.Context, clientID string) ([]models.HistoryEntry, error)
	ClearHistory(ctx context.Context, clientID string) error
}

type GenerateHandler struct {
	logger  *slog.Logger
	service generateService
}

func NewGenerateHandler(logger *slog.Logger, service generateService) *GenerateHandler {
	return &GenerateHandler{
		logger:  logger,
		service: service,
	}
}

// Generate godoc
// @Summary Generate names or usernames
// @Description Forwards the parameters to the name generation service and returns the normalized results.
// @Tags generate
// @Accept json
// @Produce json
// @Param X-Client-ID header string false "Client identifier used to key history"
// @Param request body models.GenerationRequest true "Generation request"
// @Success 200 {object} models.GenerateResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 408 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Router /api/generate [post]
func (h *GenerateHandler) Generate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var req models.GenerationRequest
	if err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Debug("invalid generate body", "error", err)
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{
			Error: models.MessageInternal,
			Kind:  models.ErrorKindValidation,
		})
		return
	}

	resp, err := h.service.Generate(r.Context(), clientID(r), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// History godoc
// @Summary List generation history
// @Description Returns the most recent generations of the client, newest first.
// @Tags history
// @Produce json
// @Param X-Client-ID header string false "Client identifier used to key history"
// @Success 200 {object} models.HistoryResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/history [get]
func (h *GenerateHandler) History(w http.ResponseWriter, r *http.Request) {
	entries, err := h.service.History(r.Context(), clientID(r))
	if err != nil {
		h.logger.Error("failed to list history", "error", err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, models.HistoryResponse{Entries: entries})
}

// ClearHistory godoc
// @Summary Clear generation history
// @Tags history
// @Param X-Client-ID header string false "Client identifier used to key history"
// @Success 204
// @Failure 500 {object} models.ErrorResponse
// @Router /api/history [delete]
func (h *GenerateHandler) ClearHistory(w http.ResponseWriter, r *http.Request) {
	if err := h.service.ClearHistory(r.Context(), clientID(r)); err != nil {
		h.logger.Error("failed to clear history", "error", err)
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// clientID prefers the explicit header and falls back to the remote IP.
func clientID(r *http.Request) string {
	if id := strings.TrimSpace(r.Header.Get(ClientIDHeader)); id != "" {
		return id
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, models.StatusCode(err), models.ErrorResponse{
		Error: models.Message(err),
		Kind:  models.ErrorKind(err),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := sonic.Marshal(v)
	if err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}
