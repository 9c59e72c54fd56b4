package search

// REST payloads for the Azure AI Search management endpoints
// (indexes, datasources, indexers). Boolean field attributes are pointers
// because the service applies per-type defaults when an attribute is absent;
// an explicit false and a missing attribute are different requests.

type Field struct {
	Name       string `json:"name"`
	Type       string `json:"type"`
	Key        bool   `json:"key,omitempty"`
	Searchable *bool  `json:"searchable,omitempty"`
	Filterable *bool  `json:"filterable,omitempty"`
	Sortable   *bool  `json:"sortable,omitempty"`
}

type Index struct {
	Name   string  `json:"name"`
	Fields []Field `json:"fields"`
}

type DataSourceCredentials struct {
	ConnectionString string `json:"connectionString"`
}

type DataSourceContainer struct {
	Name string `json:"name"`
}

type DataSource struct {
	Name        string                `json:"name"`
	Type        string                `json:"type"`
	Credentials DataSourceCredentials `json:"credentials"`
	Container   DataSourceContainer   `json:"container"`
}

type IndexingConfiguration struct {
	FailOnUnsupportedContentType bool   `json:"failOnUnsupportedContentType"`
	FailOnUnprocessableDocument  bool   `json:"failOnUnprocessableDocument"`
	IndexedFileNameExtensions    string `json:"indexedFileNameExtensions"`
	ExcludedFileNameExtensions   string `json:"excludedFileNameExtensions"`
	DataToExtract                string `json:"dataToExtract"`
}

type IndexingParameters struct {
	MaxFailedItems         int                   `json:"maxFailedItems"`
	MaxFailedItemsPerBatch int                   `json:"maxFailedItemsPerBatch"`
	Configuration          IndexingConfiguration `json:"configuration"`
}

type Indexer struct {
	Name            string             `json:"name"`
	DataSourceName  string             `json:"dataSourceName"`
	TargetIndexName string             `json:"targetIndexName"`
	Parameters      IndexingParameters `json:"parameters"`
}

// Outcome captures the terminal response of one upsert call. Non-2xx
// responses are reported here instead of as errors; only transport failures
// abort a provisioning run.
type Outcome struct {
	StatusCode int    `json:"statusCode"`
	Body       string `json:"-"`
}

func (o Outcome) Ok() bool {
	return o.StatusCode >= 200 && o.StatusCode < 300
}
