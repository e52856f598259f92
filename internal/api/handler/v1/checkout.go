package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/pos-api/internal/api/handler/v1/request"
	"github.com/vietanh2810/pos-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/pos-api/internal/domain"
	"github.com/vietanh2810/pos-api/internal/service"
)

type CheckoutService interface {
	Checkout(ctx context.Context, input service.CheckoutInput) (domain.Transaction, error)
	DefaultGateway(ctx context.Context) (domain.GatewaySetting, error)
	EnabledGateways(ctx context.Context) ([]domain.GatewaySetting, error)
}

type CheckoutHandler struct {
	svc CheckoutService
}

func NewCheckoutHandler(svc CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{
		svc: svc,
	}
}

// HandleCheckout godoc
// @Summary      Check out the active cart
// @Description  Commits the cashier's active cart as a sale, deducting stock and recording profit. For gateway methods the payment is initiated after the commit; a gateway failure is reported in payment_error while the sale stands.
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        input  body      request.CheckoutRequest  true  "Checkout details"
// @Success      201    {object}  response.CheckoutResponse
// @Failure      400    {object}  response.Err
// @Failure      401    {object}  response.Err
// @Failure      409    {object}  response.Err
// @Failure      422    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /checkout [post]
func (h *CheckoutHandler) HandleCheckout(ctx *gin.Context) {
	cashierID, respErr := getCashierFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var input request.CheckoutRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	trx, err := h.svc.Checkout(ctx.Request.Context(), service.CheckoutInput{
		CashierID:     cashierID,
		CustomerID:    input.CustomerID,
		PaymentMethod: input.PaymentMethod,
		CashTendered:  input.CashTendered,
		ChangeGiven:   input.ChangeGiven,
		Discount:      input.Discount,
		GrandTotal:    input.GrandTotal,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPaymentFailed):
			// The sale is committed; only the gateway hand-off failed.
			ctx.JSON(http.StatusCreated, response.CheckoutResponse{
				Transaction:  trx,
				PaymentError: err.Error(),
			})
		case errors.Is(err, service.ErrEmptyCart):
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrEmptyCart))
		case errors.Is(err, service.ErrInsufficientStock):
			response.RenderErr(ctx, response.ErrConflict(service.ErrInsufficientStock))
		case errors.Is(err, service.ErrGatewayNotConfigured):
			response.RenderErr(ctx, response.ErrUnprocessableEntity(service.ErrGatewayNotConfigured))
		default:
			err = fmt.Errorf("HandleCheckout -> h.svc.Checkout -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusCreated, response.CheckoutResponse{Transaction: trx})
}

// HandleGetGateways godoc
// @Summary      List enabled payment gateways
// @Tags         checkout
// @Produce      json
// @Success      200  {array}   domain.GatewaySetting
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /checkout/gateways [get]
func (h *CheckoutHandler) HandleGetGateways(ctx *gin.Context) {
	_, respErr := getCashierFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	gateways, err := h.svc.EnabledGateways(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("HandleGetGateways -> h.svc.EnabledGateways -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, gateways)
}

// HandleGetDefaultGateway godoc
// @Summary      Get the default payment gateway
// @Tags         checkout
// @Produce      json
// @Success      200  {object}  domain.GatewaySetting
// @Failure      401  {object}  response.Err
// @Failure      422  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /checkout/gateways/default [get]
func (h *CheckoutHandler) HandleGetDefaultGateway(ctx *gin.Context) {
	_, respErr := getCashierFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	gateway, err := h.svc.DefaultGateway(ctx.Request.Context())
	if err != nil {
		if errors.Is(err, service.ErrGatewayNotConfigured) {
			response.RenderErr(ctx, response.ErrUnprocessableEntity(service.ErrGatewayNotConfigured))
			return
		}

		err = fmt.Errorf("HandleGetDefaultGateway -> h.svc.DefaultGateway -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, gateway)
}
