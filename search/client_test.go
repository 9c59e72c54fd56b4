package search

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

type recordedRequest struct {
	Method string
	Path   string
	Query  string
	APIKey string
	Body   []byte
}

func newRecordingServer(statusCode int, requests *[]recordedRequest) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		*requests = append(*requests, recordedRequest{
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  r.URL.RawQuery,
			APIKey: r.Header.Get("api-key"),
			Body:   body,
		})
		w.WriteHeader(statusCode)
		_, _ = w.Write([]byte(`{}`))
	}))
}

func TestCreateOrUpdateDataSource(t *testing.T) {
	var requests []recordedRequest
	srv := newRecordingServer(http.StatusCreated, &requests)
	defer srv.Close()

	client := NewClient(srv.URL, "test-key")

	outcome, err := client.CreateOrUpdateDataSource(t.Context(), BlobDataSource("invoices", "conn-string"))
	assert.NoError(t, err)
	assert.True(t, outcome.Ok())

	assert.Len(t, requests, 1)
	assert.Equal(t, http.MethodPut, requests[0].Method)
	assert.Equal(t, "/datasources/invoices-ds", requests[0].Path)
	assert.Equal(t, "api-version=2024-07-01", requests[0].Query)
	assert.Equal(t, "test-key", requests[0].APIKey)

	var payload map[string]any
	assert.NoError(t, json.Unmarshal(requests[0].Body, &payload))
	assert.Equal(t, "invoices-ds", payload["name"])
	assert.Equal(t, "azureblob", payload["type"])
	assert.Equal(t, map[string]any{"connectionString": "conn-string"}, payload["credentials"])
	assert.Equal(t, map[string]any{"name": "invoices"}, payload["container"])
}

func TestCreateOrUpdateIndexer(t *testing.T) {
	var requests []recordedRequest
	srv := newRecordingServer(http.StatusCreated, &requests)
	defer srv.Close()

	client := NewClient(srv.URL, "test-key")

	outcome, err := client.CreateOrUpdateIndexer(t.Context(), BlobIndexer("invoices", "financial-index"))
	assert.NoError(t, err)
	assert.True(t, outcome.Ok())

	assert.Equal(t, "/indexers/invoices-idx", requests[0].Path)

	var payload map[string]any
	assert.NoError(t, json.Unmarshal(requests[0].Body, &payload))
	assert.Equal(t, "invoices-idx", payload["name"])
	assert.Equal(t, "invoices-ds", payload["dataSourceName"])
	assert.Equal(t, "financial-index", payload["targetIndexName"])

	parameters := payload["parameters"].(map[string]any)
	assert.Equal(t, float64(-1), parameters["maxFailedItems"])
	assert.Equal(t, float64(-1), parameters["maxFailedItemsPerBatch"])

	configuration := parameters["configuration"].(map[string]any)
	assert.Equal(t, false, configuration["failOnUnsupportedContentType"])
	assert.Equal(t, false, configuration["failOnUnprocessableDocument"])
	assert.Equal(t, ".pdf,.docx,.xlsx,.md,.txt", configuration["indexedFileNameExtensions"])
	assert.Equal(t, ".png,.jpeg", configuration["excludedFileNameExtensions"])
	assert.Equal(t, "contentAndMetadata", configuration["dataToExtract"])
}

func TestCreateOrUpdateIndex(t *testing.T) {
	var requests []recordedRequest
	srv := newRecordingServer(http.StatusOK, &requests)
	defer srv.Close()

	client := NewClient(srv.URL, "test-key")

	outcome, err := client.CreateOrUpdateIndex(t.Context(), DocumentIndex("financial-index"))
	assert.NoError(t, err)
	assert.True(t, outcome.Ok())

	assert.Equal(t, "/indexes/financial-index", requests[0].Path)

	var payload struct {
		Name   string           `json:"name"`
		Fields []map[string]any `json:"fields"`
	}
	assert.NoError(t, json.Unmarshal(requests[0].Body, &payload))
	assert.Equal(t, "financial-index", payload.Name)
	assert.Len(t, payload.Fields, 5)

	key := payload.Fields[0]
	assert.Equal(t, "id", key["name"])
	assert.Equal(t, true, key["key"])
	assert.Equal(t, false, key["searchable"])

	// Unset attributes must be absent, not false, so service defaults apply.
	content := payload.Fields[1]
	assert.Equal(t, true, content["searchable"])
	assert.NotContains(t, content, "filterable")
	assert.NotContains(t, content, "sortable")
}

func TestNonOkResponseIsReportedNotRaised(t *testing.T) {
	var requests []recordedRequest
	srv := newRecordingServer(http.StatusForbidden, &requests)
	defer srv.Close()

	client := NewClient(srv.URL, "bad-key")

	outcome, err := client.CreateOrUpdateIndex(t.Context(), DocumentIndex("financial-index"))
	assert.NoError(t, err, "non-2xx is terminal for the step, not an error")
	assert.False(t, outcome.Ok())
	assert.Equal(t, http.StatusForbidden, outcome.StatusCode)
}

func TestRunIndexer(t *testing.T) {
	var requests []recordedRequest
	srv := newRecordingServer(http.StatusAccepted, &requests)
	defer srv.Close()

	client := NewClient(srv.URL, "test-key")

	outcome, err := client.RunIndexer(t.Context(), "invoices-idx")
	assert.NoError(t, err)
	assert.True(t, outcome.Ok())

	assert.Equal(t, http.MethodPost, requests[0].Method)
	assert.Equal(t, "/indexers/invoices-idx/run", requests[0].Path)
	assert.Empty(t, requests[0].Body)
}
