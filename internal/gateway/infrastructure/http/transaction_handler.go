package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Rutuauti/banking-transaction-manager-project/internal/gateway/domain"
)

// Anything non-numeric in amount fails validation before any state is
// touched.
type amountRequestBody struct {
	Username string     `json:"username" binding:"required"`
	Amount   flexNumber `json:"amount" binding:"required"`
}

type transferRequestBody struct {
	FromUser string     `json:"fromUser" binding:"required"`
	ToUser   string     `json:"toUser" binding:"required"`
	Amount   flexNumber `json:"amount" binding:"required"`
}

type TransactionHandler struct {
	service domain.TransactionService
}

func NewTransactionHandler(service domain.TransactionService) *TransactionHandler {
	return &TransactionHandler{
		service: service,
	}
}

func (h *TransactionHandler) Deposit(c *gin.Context) {
	var body amountRequestBody

	if err := c.ShouldBindJSON(&body); err != nil || !isNumeric(body.Amount) {
		respondError(c, http.StatusBadRequest, "Invalid deposit request.")
		return
	}

	output, err := h.service.Deposit(c.Request.Context(), body.Username, body.Amount.String())
	if err != nil {
		handleTransactionError(c, err)
		return
	}

	respondOutput(c, http.StatusOK, output)
}

func (h *TransactionHandler) Withdraw(c *gin.Context) {
	var body amountRequestBody

	if err := c.ShouldBindJSON(&body); err != nil || !isNumeric(body.Amount) {
		respondError(c, http.StatusBadRequest, "Invalid withdrawal request.")
		return
	}

	output, err := h.service.Withdraw(c.Request.Context(), body.Username, body.Amount.String())
	if err != nil {
		handleTransactionError(c, err)
		return
	}

	respondOutput(c, http.StatusOK, output)
}

func (h *TransactionHandler) Transfer(c *gin.Context) {
	var body transferRequestBody

	if err := c.ShouldBindJSON(&body); err != nil || !isNumeric(body.Amount) {
		respondError(c, http.StatusBadRequest, "Invalid transfer request.")
		return
	}

	output, err := h.service.Transfer(c.Request.Context(), body.FromUser, body.ToUser, body.Amount.String())
	if err != nil {
		handleTransactionError(c, err)
		return
	}

	respondOutput(c, http.StatusOK, output)
}

func (h *TransactionHandler) Undo(c *gin.Context) {
	output, err := h.service.Undo(c.Request.Context())
	if err != nil {
		handleTransactionError(c, err)
		return
	}

	respondOutput(c, http.StatusOK, output)
}

func (h *TransactionHandler) Redo(c *gin.Context) {
	output, err := h.service.Redo(c.Request.Context())
	if err != nil {
		handleTransactionError(c, err)
		return
	}

	respondOutput(c, http.StatusOK, output)
}

func (h *TransactionHandler) MiniStatement(c *gin.Context) {
	output, err := h.service.MiniStatement(c.Request.Context())
	if err != nil {
		handleTransactionError(c, err)
		return
	}

	respondOutput(c, http.StatusOK, output)
}

func handleTransactionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, &domain.QuotaExceededError{}):
		respondError(c, http.StatusTooManyRequests, err.Error())
	case errors.Is(err, &domain.EngineUnavailableError{}):
		respondError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, &domain.EngineTimeoutError{}), errors.Is(err, &domain.EngineFailedError{}):
		respondError(c, http.StatusInternalServerError, err.Error())
	default:
		respondError(c, http.StatusInternalServerError, "Server error.")
	}
}
