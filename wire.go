//go:build wireinject
// +build wireinject

package main

import (
	"WhereIsIt/cmd"
	"WhereIsIt/database"
	"WhereIsIt/internal/config"
	"WhereIsIt/internal/handlers"
	"WhereIsIt/internal/metrics"
	"WhereIsIt/internal/repository"
	"WhereIsIt/internal/services"
	"WhereIsIt/internal/storage"
	"context"

	"github.com/google/wire"
)

func InitializeServer(ctx context.Context, configurationFilePath string) (*cmd.Server, error) {
	wire.Build(
		cmd.NewServer,
		config.LoadConfiguration,
		database.SetupDatabase,
		storage.NewStore,
		metrics.NewMetrics,
		repository.NewUnitRepository,
		repository.NewBoxRepository,
		repository.NewItemRepository,
		repository.NewCategoryRepository,
		services.NewLogService,
		services.NewSlugGenerator,
		services.NewQREncoder,
		services.NewUnitService,
		services.NewBoxService,
		services.NewItemService,
		services.NewCategoryService,
		services.NewSearchService,
		services.NewQRService,
		services.NewPhotoService,
		services.NewJanitorService,
		handlers.NewUnitHandler,
		handlers.NewBoxHandler,
		handlers.NewItemHandler,
		handlers.NewCategoryHandler,
		handlers.NewSearchHandler,
		handlers.NewPhotoHandler,
	)
	return nil, nil
}
