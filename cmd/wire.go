package cmd

import (
	"WhereIsIt/internal/config"
	"WhereIsIt/internal/handlers"
	"WhereIsIt/internal/metrics"
	"WhereIsIt/internal/services"

	"gorm.io/gorm"
)

type Server struct {
	Configuration   *config.Configuration
	DB              *gorm.DB
	UnitHandler     *handlers.UnitHandler
	BoxHandler      *handlers.BoxHandler
	ItemHandler     *handlers.ItemHandler
	CategoryHandler *handlers.CategoryHandler
	SearchHandler   *handlers.SearchHandler
	PhotoHandler    *handlers.PhotoHandler
	LogService      services.LogService
	JanitorService  *services.Janitor
	Metrics         *metrics.Metrics
}

func NewServer(
	configuration *config.Configuration,
	db *gorm.DB,
	unitHandler *handlers.UnitHandler,
	boxHandler *handlers.BoxHandler,
	itemHandler *handlers.ItemHandler,
	categoryHandler *handlers.CategoryHandler,
	searchHandler *handlers.SearchHandler,
	photoHandler *handlers.PhotoHandler,
	logService services.LogService,
	janitorService *services.Janitor,
	metrics *metrics.Metrics,
) *Server {
	return &Server{
		Configuration:   configuration,
		DB:              db,
		UnitHandler:     unitHandler,
		BoxHandler:      boxHandler,
		ItemHandler:     itemHandler,
		CategoryHandler: categoryHandler,
		SearchHandler:   searchHandler,
		PhotoHandler:    photoHandler,
		LogService:      logService,
		JanitorService:  janitorService,
		Metrics:         metrics,
	}
}
