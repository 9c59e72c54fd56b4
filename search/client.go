package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/SaiNageswarS/go-api-boot/logger"
	"go.uber.org/zap"
)

const apiVersion = "2024-07-01"

// Client talks to the Azure AI Search management REST API.
// All create/update calls are idempotent upserts keyed by resource name.
type Client struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
}

func NewClient(endpoint, apiKey string) *Client {
	return &Client{
		endpoint:   strings.TrimSuffix(endpoint, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{},
	}
}

func ProvideSearchClient(endpoint string) *Client {
	apiKey := os.Getenv("AZURE_SEARCH_ADMIN_KEY")
	if apiKey == "" {
		// Providers are designed for dependency injection.
		// If the API key is not set, we log a fatal error.
		logger.Fatal("AZURE_SEARCH_ADMIN_KEY environment variable is not set")
		return nil
	}

	if endpoint == "" {
		logger.Fatal("Azure search endpoint is not configured")
		return nil
	}

	return NewClient(endpoint, apiKey)
}

// CreateOrUpdateIndex upserts the index definition by name.
func (c *Client) CreateOrUpdateIndex(ctx context.Context, index Index) (Outcome, error) {
	outcome, err := c.send(ctx, http.MethodPut, "/indexes/"+index.Name, index)
	if err != nil {
		return Outcome{}, err
	}

	logger.Info("Index upsert response",
		zap.String("index", index.Name),
		zap.Int("status", outcome.StatusCode),
		zap.String("body", outcome.Body))
	return outcome, nil
}

// CreateOrUpdateDataSource upserts the blob data source by name.
func (c *Client) CreateOrUpdateDataSource(ctx context.Context, ds DataSource) (Outcome, error) {
	outcome, err := c.send(ctx, http.MethodPut, "/datasources/"+ds.Name, ds)
	if err != nil {
		return Outcome{}, err
	}

	logger.Info("Datasource upsert response",
		zap.String("datasource", ds.Name),
		zap.Int("status", outcome.StatusCode),
		zap.String("body", outcome.Body))
	return outcome, nil
}

// CreateOrUpdateIndexer upserts the indexer definition by name.
func (c *Client) CreateOrUpdateIndexer(ctx context.Context, indexer Indexer) (Outcome, error) {
	outcome, err := c.send(ctx, http.MethodPut, "/indexers/"+indexer.Name, indexer)
	if err != nil {
		return Outcome{}, err
	}

	logger.Info("Indexer upsert response",
		zap.String("indexer", indexer.Name),
		zap.Int("status", outcome.StatusCode),
		zap.String("body", outcome.Body))
	return outcome, nil
}

// RunIndexer triggers an on-demand run of a provisioned indexer.
func (c *Client) RunIndexer(ctx context.Context, name string) (Outcome, error) {
	outcome, err := c.send(ctx, http.MethodPost, "/indexers/"+name+"/run", nil)
	if err != nil {
		return Outcome{}, err
	}

	logger.Info("Indexer run response",
		zap.String("indexer", name),
		zap.Int("status", outcome.StatusCode))
	return outcome, nil
}

// GetIndexerStatus fetches execution history and current state of an indexer.
func (c *Client) GetIndexerStatus(ctx context.Context, name string) (Outcome, error) {
	return c.send(ctx, http.MethodGet, "/indexers/"+name+"/status", nil)
}

func (c *Client) send(ctx context.Context, method, path string, payload any) (Outcome, error) {
	var body io.Reader
	if payload != nil {
		jsonData, err := json.Marshal(payload)
		if err != nil {
			return Outcome{}, fmt.Errorf("error marshaling request: %w", err)
		}
		body = bytes.NewBuffer(jsonData)
	}

	url := c.endpoint + path + "?api-version=" + apiVersion
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return Outcome{}, fmt.Errorf("error creating request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Outcome{}, fmt.Errorf("error making request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return Outcome{}, fmt.Errorf("error reading response: %w", err)
	}

	return Outcome{StatusCode: resp.StatusCode, Body: string(respBody)}, nil
}
