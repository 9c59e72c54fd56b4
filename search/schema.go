package search

// Deterministic names tie each container to its provisioned resources.
func DataSourceName(container string) string { return container + "-ds" }
func IndexerName(container string) string    { return container + "-idx" }

func boolPtr(b bool) *bool { return &b }

// DocumentIndex declares the fixed schema for blob-extracted documents.
// The metadata_* fields are populated by the indexer from blob metadata.
func DocumentIndex(name string) Index {
	return Index{
		Name: name,
		Fields: []Field{
			{Name: "id", Type: "Edm.String", Key: true, Searchable: boolPtr(false)},
			{Name: "content", Type: "Edm.String", Searchable: boolPtr(true)},
			{Name: "metadata_storage_name", Type: "Edm.String", Filterable: boolPtr(true), Sortable: boolPtr(true)},
			{Name: "metadata_storage_path", Type: "Edm.String", Filterable: boolPtr(true)},
			{Name: "metadata_storage_last_modified", Type: "Edm.DateTimeOffset", Sortable: boolPtr(true)},
		},
	}
}

// BlobDataSource binds one storage container to the search service.
func BlobDataSource(container, connectionString string) DataSource {
	return DataSource{
		Name: DataSourceName(container),
		Type: "azureblob",
		Credentials: DataSourceCredentials{
			ConnectionString: connectionString,
		},
		Container: DataSourceContainer{Name: container},
	}
}

// BlobIndexer crawls one container's data source into the shared index.
// Failed item tolerance is unlimited so a bad document never stalls a crawl.
func BlobIndexer(container, indexName string) Indexer {
	return Indexer{
		Name:            IndexerName(container),
		DataSourceName:  DataSourceName(container),
		TargetIndexName: indexName,
		Parameters: IndexingParameters{
			MaxFailedItems:         -1,
			MaxFailedItemsPerBatch: -1,
			Configuration: IndexingConfiguration{
				FailOnUnsupportedContentType: false,
				FailOnUnprocessableDocument:  false,
				IndexedFileNameExtensions:    ".pdf,.docx,.xlsx,.md,.txt",
				ExcludedFileNameExtensions:   ".png,.jpeg",
				DataToExtract:                "contentAndMetadata",
			},
		},
	}
}
