package emotes_test

import (
	"testing"

	"emote-manager/core/seventv"
	"emote-manager/core/seventv/mocks"
	"emote-manager/feature/emotes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestLoader(t *testing.T) {
	client := new(mocks.Client)
	feature := emotes.NewFeature(client, newMemStore(), testTTL(), seventv.Config{}, testCatalog(t), zap.NewNop())

	assert.Equal(t, "emotes", feature.Name())
	assert.True(t, feature.IsEnabled())

	app := fiber.New()
	err := feature.Load(app)
	assert.NoError(t, err)
}
