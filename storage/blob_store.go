package storage

import (
	"context"
	"fmt"
	"os"

	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/SaiNageswarS/go-api-boot/logger"
	"go.uber.org/zap"
)

// ContainerLister enumerates the containers visible to the storage
// credential. Kept as an interface so tests can substitute fakes without
// network access.
type ContainerLister interface {
	ListContainers(ctx context.Context) ([]string, error)
}

// BlobStore lists containers of one storage account via the blob service.
type BlobStore struct {
	client *azblob.Client

	// The same credential is embedded in every data source payload so the
	// search service can crawl the account.
	connectionString string
}

func ProvideBlobStore() *BlobStore {
	connectionString := os.Getenv("AZURE_STORAGE_CONNECTION_STRING")
	if connectionString == "" {
		logger.Fatal("AZURE_STORAGE_CONNECTION_STRING environment variable is not set")
		return nil
	}

	client, err := azblob.NewClientFromConnectionString(connectionString, nil)
	if err != nil {
		logger.Fatal("Failed to create Azure Blob client", zap.Error(err))
		return nil
	}

	return &BlobStore{client: client, connectionString: connectionString}
}

func (s *BlobStore) ConnectionString() string {
	return s.connectionString
}

func (s *BlobStore) ListContainers(ctx context.Context) ([]string, error) {
	var names []string

	pager := s.client.NewListContainersPager(nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("error listing containers: %w", err)
		}

		for _, item := range page.ContainerItems {
			if item.Name != nil {
				names = append(names, *item.Name)
			}
		}
	}

	return names, nil
}
