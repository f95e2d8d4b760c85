package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/nemopss/fin-tracker/backend/db"
	"github.com/nemopss/fin-tracker/backend/logger"
	"github.com/nemopss/fin-tracker/backend/models"
)

const (
	msgInternal       = "Erro do servidor interno"
	msgFieldsRequired = "Todos os campos são obrigatórios"
	msgInvalidDate    = "Data inválida"
	msgInvalidAmount  = "Valor inválido"
	msgInvalidID      = "Transação inválida"
	msgNotFound       = "Transação não encontrada"
	msgDeleted        = "Transação deletada com sucesso!"
)

// Store is the persistence the handlers need. *db.Storage implements it.
type Store interface {
	GetTransactionsByUser(ctx context.Context, userID string) ([]models.Transaction, error)
	CreateTransaction(ctx context.Context, t *models.Transaction) error
	DeleteTransaction(ctx context.Context, id int) (bool, error)
	GetSummary(ctx context.Context, userID string) (models.Summary, error)
}

var _ Store = (*db.Storage)(nil)

type Handler struct {
	storage Store
}

func NewHandler(s Store) *Handler {
	return &Handler{storage: s}
}

// RegisterRoutes mounts the liveness and transacoes endpoints on r.
func (h *Handler) RegisterRoutes(r gin.IRouter) {
	r.GET("/", h.Health)

	transacoes := r.Group("/api/transacoes")
	transacoes.GET("/:user_id", h.GetTransactions)
	transacoes.POST("", h.CreateTransaction)
	transacoes.DELETE("/:id", h.DeleteTransaction)
	transacoes.POST("/summary/:user_id", h.GetSummary)
}

// Health godoc
// @Summary Liveness check
// @Produce plain
// @Success 200 {string} string "its working"
// @Router / [get]
func (h *Handler) Health(c *gin.Context) {
	c.String(http.StatusOK, "its working")
}

// GetTransactions godoc
// @Summary List a user's transactions
// @Description Newest first by created_at. An unknown user yields an empty list.
// @Tags transacoes
// @Produce json
// @Param user_id path string true "User ID"
// @Success 200 {array} models.Transaction
// @Failure 500 {object} models.ErrorResponse
// @Router /api/transacoes/{user_id} [get]
func (h *Handler) GetTransactions(c *gin.Context) {
	transactions, err := h.storage.GetTransactionsByUser(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		internalError(c, "erro ao listar as transações", err)
		return
	}
	c.JSON(http.StatusOK, transactions)
}

// CreateTransaction godoc
// @Summary Create a transaction
// @Description Positive amounts are income, negative are expenses, zero is allowed.
// @Tags transacoes
// @Accept json
// @Produce json
// @Param transaction body models.CreateTransaction true "Transaction data"
// @Success 201 {object} models.Transaction
// @Failure 400 {object} models.ErrorResponse "missing field, invalid amount or invalid date"
// @Failure 500 {object} models.ErrorResponse
// @Router /api/transacoes [post]
func (h *Handler) CreateTransaction(c *gin.Context) {
	var req models.CreateTransaction
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, http.StatusBadRequest, msgFieldsRequired)
		return
	}

	newTransaction, err := req.Transaction()
	switch {
	case errors.Is(err, models.ErrInvalidAmount):
		errorResponse(c, http.StatusBadRequest, msgInvalidAmount)
		return
	case err != nil:
		errorResponse(c, http.StatusBadRequest, msgInvalidDate)
		return
	}

	if err := h.storage.CreateTransaction(c.Request.Context(), &newTransaction); err != nil {
		internalError(c, "erro ao criar a transação", err)
		return
	}

	c.JSON(http.StatusCreated, newTransaction)
}

// DeleteTransaction godoc
// @Summary Delete a transaction
// @Tags transacoes
// @Produce json
// @Param id path int true "Transaction ID"
// @Success 200 {object} models.MessageResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/transacoes/{id} [delete]
func (h *Handler) DeleteTransaction(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 32)
	if errors.Is(err, strconv.ErrRange) {
		// A valid integer outside the SERIAL range cannot name a row.
		errorResponse(c, http.StatusNotFound, msgNotFound)
		return
	}
	if err != nil {
		errorResponse(c, http.StatusBadRequest, msgInvalidID)
		return
	}

	deleted, err := h.storage.DeleteTransaction(c.Request.Context(), int(id))
	if err != nil {
		internalError(c, "erro ao deletar a transação", err)
		return
	}
	if !deleted {
		errorResponse(c, http.StatusNotFound, msgNotFound)
		return
	}

	c.JSON(http.StatusOK, models.MessageResponse{Message: msgDeleted})
}

// GetSummary godoc
// @Summary Balance, income and expenses of a user
// @Tags transacoes
// @Produce json
// @Param user_id path string true "User ID"
// @Success 200 {object} models.Summary
// @Failure 500 {object} models.ErrorResponse
// @Router /api/transacoes/summary/{user_id} [post]
func (h *Handler) GetSummary(c *gin.Context) {
	summary, err := h.storage.GetSummary(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		internalError(c, "erro ao emitir o sumário", err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func errorResponse(c *gin.Context, status int, message string) {
	c.JSON(status, models.ErrorResponse{Message: message})
}

// internalError logs err with the request logger and answers with the generic
// message. Driver details never reach the client.
func internalError(c *gin.Context, msg string, err error) {
	event := logger.FromContext(c).Error().Err(err)
	if code := db.ErrorCode(err); code != "" {
		event = event.Str("sqlstate", code)
	}
	event.Str("path", c.FullPath()).Msg(msg)

	errorResponse(c, http.StatusInternalServerError, msgInternal)
}
