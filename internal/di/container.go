package di

import (
	"time"

	"github.com/vonhatphuongahihi/venture-travel-backend/internal/handler"
	"github.com/vonhatphuongahihi/venture-travel-backend/internal/repository"
	"github.com/vonhatphuongahihi/venture-travel-backend/internal/service"
	"github.com/vonhatphuongahihi/venture-travel-backend/pkg/database"
	"github.com/vonhatphuongahihi/venture-travel-backend/pkg/redis"
)

// Container holds all dependencies for the catalog service
type Container struct {
	// Infrastructure
	DB    *database.PostgresDB
	Redis *redis.Client

	// Repositories
	TourRepo     repository.TourRepository
	CategoryRepo repository.PriceCategoryRepository

	// Services
	TourService    service.TourService
	BookingService service.BookingService

	// Handlers
	HealthHandler  *handler.HealthHandler
	TourHandler    *handler.TourHandler
	BookingHandler *handler.BookingHandler
}

// ContainerConfig contains configuration for building the container
type ContainerConfig struct {
	DB               *database.PostgresDB
	Redis            *redis.Client
	DefaultPageLimit int
	CacheTTL         time.Duration
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *ContainerConfig) *Container {
	c := &Container{
		DB:    cfg.DB,
		Redis: cfg.Redis,
	}

	// Initialize repositories
	pgTourRepo := repository.NewPostgresTourRepository(c.DB.Pool())

	// Wrap with cache if Redis is available
	if c.Redis != nil {
		c.TourRepo = repository.NewCachedTourRepository(pgTourRepo, c.Redis, cfg.CacheTTL)
	} else {
		c.TourRepo = pgTourRepo
	}
	c.CategoryRepo = repository.NewPostgresPriceCategoryRepository(c.DB.Pool())

	// Initialize services
	c.TourService = service.NewTourService(c.TourRepo, c.CategoryRepo)
	c.BookingService = service.NewBookingService(c.TourRepo)

	// Initialize handlers
	c.HealthHandler = handler.NewHealthHandler(c.DB, c.Redis)
	c.TourHandler = handler.NewTourHandler(c.TourService, cfg.DefaultPageLimit)
	c.BookingHandler = handler.NewBookingHandler(c.BookingService)

	return c
}
