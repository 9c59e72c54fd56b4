package appconfig

import (
	"github.com/SaiNageswarS/go-api-boot/config"
)

type AppConfig struct {
	config.BootConfig `ini:",extends"`

	SearchEndpoint    string `env:"AZURE-SEARCH-ENDPOINT" ini:"search_endpoint"`
	SearchIndexName   string `env:"SEARCH-INDEX-NAME" ini:"search_index_name"`
	BlobContainers    string `env:"BLOB-CONTAINERS" ini:"blob_containers"`
	StateDatabase     string `env:"STATE-DATABASE" ini:"state_database"`
	TemporalHostPort  string `env:"TEMPORAL-HOST-PORT" ini:"temporal_host_port"`
	TemporalTaskQueue string `env:"TEMPORAL-TASK-QUEUE" ini:"temporal_task_queue"`
	HTTPPort          string `env:"HTTP-PORT" ini:"http_port"`
	RunAfterCreate    bool   `env:"RUN-AFTER-CREATE" ini:"run_after_create"`
}

// IndexName returns the configured index name or the default used by the
// financial document pipeline.
func (c *AppConfig) IndexName() string {
	if c.SearchIndexName == "" {
		return "financial-index"
	}
	return c.SearchIndexName
}
