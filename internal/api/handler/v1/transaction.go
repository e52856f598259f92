package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/pos-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/pos-api/internal/domain"
	"github.com/vietanh2810/pos-api/internal/service"
)

type TransactionService interface {
	GetByInvoice(ctx context.Context, invoice string) (domain.Transaction, error)
	ListForCashier(ctx context.Context, cashierID uint, limit, offset int) ([]domain.Transaction, error)
	GetProfits(ctx context.Context, transactionID uint) ([]domain.ProfitRecord, error)
}

type TransactionHandler struct {
	svc TransactionService
}

func NewTransactionHandler(svc TransactionService) *TransactionHandler {
	return &TransactionHandler{
		svc: svc,
	}
}

// HandleListTransactions godoc
// @Summary      List the cashier's sales
// @Tags         transactions
// @Produce      json
// @Param        limit   query     int  false  "Page size"
// @Param        offset  query     int  false  "Page offset"
// @Success      200     {array}   domain.Transaction
// @Failure      401     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /transactions [get]
func (h *TransactionHandler) HandleListTransactions(ctx *gin.Context) {
	cashierID, respErr := getCashierFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "0"))
	offset, _ := strconv.Atoi(ctx.DefaultQuery("offset", "0"))

	transactions, err := h.svc.ListForCashier(ctx.Request.Context(), cashierID, limit, offset)
	if err != nil {
		err = fmt.Errorf("HandleListTransactions -> h.svc.ListForCashier -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, transactions)
}

// HandleGetTransaction godoc
// @Summary      Get a sale by invoice
// @Tags         transactions
// @Produce      json
// @Param        invoice  path      string  true  "Invoice number"
// @Success      200      {object}  domain.Transaction
// @Failure      401      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /transactions/{invoice} [get]
func (h *TransactionHandler) HandleGetTransaction(ctx *gin.Context) {
	_, respErr := getCashierFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	invoice := ctx.Param("invoice")

	trx, err := h.svc.GetByInvoice(ctx.Request.Context(), invoice)
	if err != nil {
		if errors.Is(err, service.ErrTransactionNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("transaction", "invoice", invoice))
			return
		}

		err = fmt.Errorf("HandleGetTransaction -> h.svc.GetByInvoice -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, trx)
}

// HandleGetProfits godoc
// @Summary      List a sale's profit records
// @Tags         transactions
// @Produce      json
// @Param        invoice  path      string  true  "Invoice number"
// @Success      200      {array}   domain.ProfitRecord
// @Failure      401      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /transactions/{invoice}/profits [get]
func (h *TransactionHandler) HandleGetProfits(ctx *gin.Context) {
	_, respErr := getCashierFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	invoice := ctx.Param("invoice")

	trx, err := h.svc.GetByInvoice(ctx.Request.Context(), invoice)
	if err != nil {
		if errors.Is(err, service.ErrTransactionNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("transaction", "invoice", invoice))
			return
		}

		err = fmt.Errorf("HandleGetProfits -> h.svc.GetByInvoice -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	profits, err := h.svc.GetProfits(ctx.Request.Context(), trx.ID)
	if err != nil {
		err = fmt.Errorf("HandleGetProfits -> h.svc.GetProfits -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, profits)
}
