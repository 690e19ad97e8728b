package handlers

import (
	"log"
	"net/http"

	request "gestao_reparos/internal/adapter/http/dto/request"
	response "gestao_reparos/internal/adapter/http/dto/response"
	"gestao_reparos/internal/usecase"

	"github.com/gin-gonic/gin"
)

// QuoteHandler handles HTTP requests for the quote registry.
type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

// CreateQuote godoc
// @Summary      Create a quote
// @Description  Registers a pending quote. value accepts a number or text such as "1500,50".
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        body  body      request.CreateQuoteRequest  true  "Quote"
// @Success      201   {object}  response.QuoteResponse
// @Failure      400   {object}  pkg.HTTPError
// @Router       /quotes [post]
func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	var payload request.CreateQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	quote, err := h.usecase.CreateQuote(c.Request.Context(), payload.ToInput())
	if err != nil {
		writeError(c, mapQuoteError(err))
		return
	}

	c.JSON(http.StatusCreated, response.FromQuote(quote))
}

// ListQuotes godoc
// @Summary  List quotes, newest first
// @Tags     quotes
// @Produce  json
// @Success  200  {array}   response.QuoteResponse
// @Failure  500  {object}  pkg.HTTPError
// @Router   /quotes [get]
func (h *QuoteHandler) ListQuotes(c *gin.Context) {
	quotes, err := h.usecase.ListQuotes(c.Request.Context())
	if err != nil {
		writeError(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromQuotes(quotes))
}

// GetQuote godoc
// @Summary  Get a quote
// @Tags     quotes
// @Produce  json
// @Param    id   path      string  true  "Quote ID"
// @Success  200  {object}  response.QuoteResponse
// @Failure  404  {object}  pkg.HTTPError
// @Router   /quotes/{id} [get]
func (h *QuoteHandler) GetQuote(c *gin.Context) {
	quote, err := h.usecase.GetQuote(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(quote))
}

// AcceptQuote godoc
// @Summary      Accept a pending quote
// @Description  Moves the quote to aceito and opens an in-progress service. Without a deadline the default window applies.
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        id    path      string                      true   "Quote ID"
// @Param        body  body      request.AcceptQuoteRequest  false  "Deadline"
// @Success      200   {object}  response.ServiceResponse
// @Failure      404   {object}  pkg.HTTPError
// @Failure      409   {object}  pkg.HTTPError
// @Router       /quotes/{id}/accept [patch]
func (h *QuoteHandler) AcceptQuote(c *gin.Context) {
	id := c.Param("id")
	var payload request.AcceptQuoteRequest
	if err := bindOptionalJSON(c, &payload); err != nil {
		writeError(c, errInvalidRequest.WithDetail("deadline", err.Error()))
		return
	}

	svc, err := h.usecase.AcceptQuote(c.Request.Context(), id, payload.Deadline.Time)
	if err != nil {
		log.Printf("[quote][handler] accept failed id=%s err=%v", id, err)
		writeError(c, mapQuoteError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromService(svc))
}

// RejectQuote godoc
// @Summary  Reject a pending quote
// @Tags     quotes
// @Produce  json
// @Param    id   path      string  true  "Quote ID"
// @Success  200  {object}  response.QuoteResponse
// @Failure  404  {object}  pkg.HTTPError
// @Failure  409  {object}  pkg.HTTPError
// @Router   /quotes/{id}/reject [patch]
func (h *QuoteHandler) RejectQuote(c *gin.Context) {
	id := c.Param("id")
	quote, err := h.usecase.RejectQuote(c.Request.Context(), id)
	if err != nil {
		log.Printf("[quote][handler] reject failed id=%s err=%v", id, err)
		writeError(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(quote))
}
