package modules

import (
	"expvar"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/stocknest/backend/internal/container"
	"github.com/stocknest/backend/internal/interface/middleware"
)

type DebugModule struct{}

func NewDebugModule() *DebugModule { return &DebugModule{} }

func (m *DebugModule) Register(rg *gin.RouterGroup) {
	// Metrics endpoint (expvar), rate-limited per IP; loopback and
	// private addresses bypass the limit so internal scrapes never 429
	rl := middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP())
	rg.GET("/debug/vars", rl, gin.WrapH(expvar.Handler()))
}
