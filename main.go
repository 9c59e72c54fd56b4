package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SaiNageswarS/go-api-boot/config"
	"github.com/SaiNageswarS/go-api-boot/dotenv"
	"github.com/SaiNageswarS/go-api-boot/logger"
	"github.com/SaiNageswarS/go-api-boot/odm"
	"github.com/SaiNageswarS/indexer-core/appconfig"
	"github.com/SaiNageswarS/indexer-core/handlers"
	"github.com/SaiNageswarS/indexer-core/provision"
	"github.com/SaiNageswarS/indexer-core/search"
	"github.com/SaiNageswarS/indexer-core/storage"
	"github.com/SaiNageswarS/indexer-core/workers/activities"
	"github.com/SaiNageswarS/indexer-core/workers/workflows"
	temporalClient "go.temporal.io/sdk/client"
	"go.temporal.io/sdk/worker"
	"go.uber.org/zap"
)

func main() {

	dotenv.LoadEnv()

	// load config file
	ccfgg := &appconfig.AppConfig{}
	err := config.LoadConfig("config.ini", ccfgg)
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	searchClient := search.ProvideSearchClient(ccfgg.SearchEndpoint)
	blobStore := storage.ProvideBlobStore()

	// Run history is optional; the service is fully functional without Mongo.
	var mongoClient odm.MongoClient
	if os.Getenv("MONGO_URI") != "" {
		mongoClient = odm.ProvideMongoClient()
	}

	orchestrator := provision.ProvideOrchestrator(ccfgg, searchClient, blobStore, mongoClient)

	ctx := getCancellableContext()

	if ccfgg.TemporalHostPort != "" {
		tc, err := temporalClient.Dial(temporalClient.Options{
			HostPort: ccfgg.TemporalHostPort,
		})
		if err != nil {
			logger.Fatal("Failed to connect to Temporal", zap.Error(err))
		}
		defer tc.Close()

		w := worker.New(tc, taskQueue(ccfgg), worker.Options{})
		w.RegisterWorkflow(workflows.ProvisionWorkflow)
		w.RegisterActivity(activities.ProvideActivities(orchestrator))

		stopCh := make(chan interface{})
		go func() {
			<-ctx.Done()
			close(stopCh)
		}()
		go func() {
			if err := w.Run(stopCh); err != nil {
				logger.Error("Temporal worker stopped", zap.Error(err))
			}
		}()

		logger.Info("Temporal worker started", zap.String("taskQueue", taskQueue(ccfgg)))
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/manual-index", handlers.ProvideIndexHandler(orchestrator).Handle)
	mux.HandleFunc("/indexer-status", handlers.ProvideStatusHandler(ccfgg, searchClient, blobStore).Handle)
	mux.HandleFunc("/health", handlers.Health)

	srv := &http.Server{Addr: httpPort(ccfgg), Handler: mux}

	// catch SIGINT ‑> drain in-flight requests, then exit
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	logger.Info("Serving HTTP", zap.String("addr", srv.Addr))
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("HTTP server failed", zap.Error(err))
	}
}

func getCancellableContext() context.Context {
	ctx, cancel := context.WithCancel(context.Background())

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sig
		cancel()
	}()

	return ctx
}

func httpPort(ccfgg *appconfig.AppConfig) string {
	if ccfgg.HTTPPort == "" {
		return ":8081"
	}
	return ccfgg.HTTPPort
}

func taskQueue(ccfgg *appconfig.AppConfig) string {
	if ccfgg.TemporalTaskQueue == "" {
		return "indexerCore"
	}
	return ccfgg.TemporalTaskQueue
}
