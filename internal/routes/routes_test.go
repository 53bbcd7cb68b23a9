package routes

import (
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/foodandtravelmag/mag-backend/internal/config"
)

func registeredRoutes(t *testing.T) map[string]bool {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	Setup(router, Handlers{}, nil, nil, nil, &config.Config{})

	routes := make(map[string]bool)
	for _, r := range router.Routes() {
		routes[r.Method+" "+r.Path] = true
	}
	return routes
}

func TestSetup_RegistersSettingsRoutes(t *testing.T) {
	routes := registeredRoutes(t)

	assert.True(t, routes["GET /api/admin/settings"])
	assert.True(t, routes["POST /api/admin/settings"])
	assert.True(t, routes["PATCH /api/admin/settings"])
}

func TestSetup_RegistersCoreSurface(t *testing.T) {
	routes := registeredRoutes(t)

	for _, want := range []string{
		"GET /health",
		"GET /metrics",
		"POST /api/auth/register",
		"POST /api/auth/login",
		"GET /api/posts",
		"POST /api/posts",
		"POST /api/votes",
		"GET /api/magazines/:slug",
		"POST /api/categories/:id/follow",
		"POST /api/admin/purge-category",
	} {
		assert.True(t, routes[want], want)
	}
}
