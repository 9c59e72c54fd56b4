package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/SaiNageswarS/go-api-boot/logger"
	"github.com/SaiNageswarS/indexer-core/provision"
	"go.uber.org/zap"
)

// ProvisionRunner is implemented by *provision.Orchestrator.
type ProvisionRunner interface {
	Run(ctx context.Context) (*provision.Result, error)
}

type successResponse struct {
	Status     string           `json:"status"`
	Containers []string         `json:"containers"`
	Steps      []provision.Step `json:"steps"`
}

type errorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// IndexHandler adapts the HTTP trigger to the provisioning workflow.
// Any method invokes the same run; there are no request parameters.
type IndexHandler struct {
	runner ProvisionRunner
}

func ProvideIndexHandler(runner ProvisionRunner) *IndexHandler {
	return &IndexHandler{runner: runner}
}

func (h *IndexHandler) Handle(w http.ResponseWriter, r *http.Request) {
	logger.Info("HTTP trigger invoked", zap.String("method", r.Method))

	result, err := h.runner.Run(r.Context())
	if err != nil {
		logger.Error("Provisioning run failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorResponse{
			Status:  "error",
			Message: err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, successResponse{
		Status:     result.Status,
		Containers: result.Containers,
		Steps:      result.Steps,
	})
}

// Health reports liveness.
func Health(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func writeJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("Failed to write response", zap.Error(err))
	}
}
