package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/SaiNageswarS/go-api-boot/logger"
	"github.com/SaiNageswarS/indexer-core/appconfig"
	"github.com/SaiNageswarS/indexer-core/search"
	"github.com/SaiNageswarS/indexer-core/storage"
	"go.uber.org/zap"
)

// StatusFetcher is the read-only slice of the search API used here,
// implemented by *search.Client.
type StatusFetcher interface {
	GetIndexerStatus(ctx context.Context, name string) (search.Outcome, error)
}

type indexerStatusResponse struct {
	Status   string                     `json:"status"`
	Indexers map[string]json.RawMessage `json:"indexers"`
}

// StatusHandler reports execution status of every provisioned indexer.
type StatusHandler struct {
	ccfg    *appconfig.AppConfig
	fetcher StatusFetcher
	lister  storage.ContainerLister
}

func ProvideStatusHandler(ccfg *appconfig.AppConfig, fetcher StatusFetcher, lister storage.ContainerLister) *StatusHandler {
	return &StatusHandler{ccfg: ccfg, fetcher: fetcher, lister: lister}
}

func (h *StatusHandler) Handle(w http.ResponseWriter, r *http.Request) {
	containers, err := storage.ResolveContainers(r.Context(), h.ccfg.BlobContainers, h.lister)
	if err != nil {
		logger.Error("Failed to resolve containers", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Status: "error", Message: err.Error()})
		return
	}

	indexers := make(map[string]json.RawMessage, len(containers))
	for _, container := range containers {
		name := search.IndexerName(container)

		outcome, err := h.fetcher.GetIndexerStatus(r.Context(), name)
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, errorResponse{Status: "error", Message: err.Error()})
			return
		}

		if outcome.Ok() {
			indexers[name] = json.RawMessage(outcome.Body)
		} else {
			notFound, _ := json.Marshal(map[string]int{"statusCode": outcome.StatusCode})
			indexers[name] = notFound
		}
	}

	writeJSON(w, http.StatusOK, indexerStatusResponse{Status: "success", Indexers: indexers})
}
