package main

import (
	"context"

	"address-resolver/internal/config"
	"address-resolver/internal/handler"
	"address-resolver/internal/metrics"
	"address-resolver/internal/repository"
	"address-resolver/internal/service"
	"address-resolver/internal/watch"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// newRouter wires the dataset source, resolver and handlers. A failed initial load is logged
// and the router still starts: /health reports loading and /search answers 503 until a
// reload through the watcher or /admin/reload publishes a dataset. The returned close
// function releases the dataset source.
func newRouter(ctx context.Context, config config.Config) (*gin.Engine, func(), error) {
	repo, closeRepo, err := repository.Open(ctx, config.DatasetSource, config.HTTPTimeout)
	if err != nil {
		return nil, nil, err
	}
	source := repository.Describe(config.DatasetSource)

	// Initialize layers
	m := metrics.New()
	resolver := service.NewResolverService(service.ResolverOptions{
		AddressCutoff:  config.AddressCutoff,
		LocationCutoff: config.LocationCutoff,
	}, m)
	datasets := service.NewDatasetService(repo, resolver, source, m)

	if _, err := datasets.Reload(ctx); err != nil {
		log.Error().Err(err).Str("source", source).Msg("initial dataset load failed; serving 503 until a reload succeeds")
	}

	if config.DatasetWatch {
		if csvRepo, ok := repo.(*repository.CSVFileRepository); ok {
			if err := watch.New(csvRepo.Path(), datasets, watch.DefaultDebounce).Start(ctx); err != nil {
				log.Error().Err(err).Msg("cannot watch dataset; continuing without reloads")
			}
		} else {
			log.Warn().Str("source", source).Msg("DATASET_WATCH only applies to CSV files")
		}
	}

	searchHandler := handler.NewSearchHandler(resolver, config.DefaultLimit, config.MaxLimit)
	datasetHandler := handler.NewDatasetHandler(datasets, resolver, m)

	r := gin.New()
	r.Use(gin.Recovery(), handler.RequestLogger())

	r.GET("/health", datasetHandler.Health)
	r.GET("/search", searchHandler.Search)
	r.GET("/stats", datasetHandler.Stats)
	r.POST("/admin/reload", handler.AdminAuth(config.AdminToken), datasetHandler.Reload)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r, closeRepo, nil
}
