package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Apurer/storefront-api/internal/shared/projection"
)

// HealthAPI reports liveness.
type HealthAPI struct {
	version string
	started time.Time
	now     func() time.Time
}

func NewHealthAPI(version string, started time.Time) HealthAPI {
	return HealthAPI{version: version, started: started, now: time.Now}
}

type healthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Uptime    int64  `json:"uptime"`
	Version   string `json:"version"`
}

// Get /health
func (api *HealthAPI) Get(c *gin.Context) {
	now := api.now()
	c.JSON(http.StatusOK, healthResponse{
		Status:    "healthy",
		Timestamp: projection.FormatTimestamp(now),
		Uptime:    int64(now.Sub(api.started) / time.Second),
		Version:   api.version,
	})
}
