package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/stocknest/backend/internal/interface/http"
)

// PortfolioModule wires the buy/read/sell routes. These stay public for
// compatibility with the existing frontend, which holds the user id client
// side; ids are trusted as supplied.
type PortfolioModule struct {
	Handler *handlers.PortfolioHandler
}

func NewPortfolioModule(h *handlers.PortfolioHandler) *PortfolioModule {
	return &PortfolioModule{Handler: h}
}

func (m *PortfolioModule) Register(rg *gin.RouterGroup) {
	rg.POST("/portfolio/add", m.Handler.Add)
	rg.GET("/portfolio/:userId", m.Handler.List)
	rg.DELETE("/portfolio/:id", m.Handler.Delete)
}
