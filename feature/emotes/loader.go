package emotes

import (
	"emote-manager/core/cache"
	"emote-manager/core/errcat"
	"emote-manager/core/seventv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new Emotes feature.
func NewFeature(client seventv.Client, store cache.Store, ttl cache.Config, upstream seventv.Config, errs *errcat.Catalog, logger *zap.Logger) *Feature {
	svc := NewService(client, store, ttl, upstream, errs, logger)
	h := NewHandler(svc)
	return &Feature{service: svc, handler: h}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "emotes"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
