package handlers

import (
	"log"
	"net/http"

	request "gestao_reparos/internal/adapter/http/dto/request"
	response "gestao_reparos/internal/adapter/http/dto/response"
	"gestao_reparos/internal/usecase"

	"github.com/gin-gonic/gin"
)

// ServiceHandler handles HTTP requests for the service tracker.
type ServiceHandler struct {
	usecase usecase.IServiceUseCase
}

func NewServiceHandler(uc usecase.IServiceUseCase) *ServiceHandler {
	return &ServiceHandler{usecase: uc}
}

// ListInProgress godoc
// @Summary      List in-progress services
// @Description  Urgency is computed against the current time on every call.
// @Tags         services
// @Produce      json
// @Success      200  {array}   response.ServiceResponse
// @Failure      500  {object}  pkg.HTTPError
// @Router       /services [get]
func (h *ServiceHandler) ListInProgress(c *gin.Context) {
	services, err := h.usecase.ListInProgress(c.Request.Context())
	if err != nil {
		writeError(c, mapServiceError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromTrackedServices(services))
}

// FinalizeService godoc
// @Summary      Finalize an in-progress service
// @Description  Records the finished service that feeds revenue.
// @Tags         services
// @Accept       json
// @Produce      json
// @Param        id    path      string                          true   "Service ID"
// @Param        body  body      request.FinalizeServiceRequest  false  "Completion date"
// @Success      200   {object}  response.FinishedServiceResponse
// @Failure      404   {object}  pkg.HTTPError
// @Failure      409   {object}  pkg.HTTPError
// @Router       /services/{id}/finalize [patch]
func (h *ServiceHandler) FinalizeService(c *gin.Context) {
	id := c.Param("id")
	var payload request.FinalizeServiceRequest
	if err := bindOptionalJSON(c, &payload); err != nil {
		writeError(c, errInvalidRequest.WithDetail("finished_at", err.Error()))
		return
	}

	fact, err := h.usecase.FinalizeService(c.Request.Context(), id, payload.FinishedAt.Time)
	if err != nil {
		log.Printf("[service][handler] finalize failed id=%s err=%v", id, err)
		writeError(c, mapServiceError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromFinishedService(fact))
}
