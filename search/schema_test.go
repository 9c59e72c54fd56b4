package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeterministicResourceNames(t *testing.T) {
	for _, container := range []string{"invoices", "receipts", "a"} {
		assert.Equal(t, container+"-ds", DataSourceName(container))
		assert.Equal(t, container+"-idx", IndexerName(container))

		indexer := BlobIndexer(container, "financial-index")
		assert.Equal(t, DataSourceName(container), indexer.DataSourceName)
		assert.Equal(t, IndexerName(container), indexer.Name)
	}
}
