package handlers

import (
	"net/http"

	response "gestao_reparos/internal/adapter/http/dto/response"
	"gestao_reparos/internal/usecase"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	usecase usecase.IDashboardUseCase
}

func NewDashboardHandler(uc usecase.IDashboardUseCase) *DashboardHandler {
	return &DashboardHandler{usecase: uc}
}

// Stats godoc
// @Summary  Dashboard counters and monthly revenue
// @Tags     dashboard
// @Produce  json
// @Success  200  {object}  response.DashboardResponse
// @Failure  500  {object}  pkg.HTTPError
// @Router   /dashboard [get]
func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.usecase.Stats(c.Request.Context())
	if err != nil {
		writeError(c, mapFinanceError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromDashboardStats(stats))
}
