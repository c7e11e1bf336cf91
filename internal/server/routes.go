package server

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the calculator endpoints on rg.
func RegisterRoutes(rg *gin.RouterGroup, h *Handlers) {
	rg.POST("/lp", h.HandleLP)
	rg.POST("/eoq", h.HandleEOQ)
	rg.POST("/mm1", h.HandleMM1)
	rg.POST("/breakeven", h.HandleBreakEven)
}
