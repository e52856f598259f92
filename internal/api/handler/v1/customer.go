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

type CustomerService interface {
	GetCustomer(ctx context.Context, id uint) (domain.Customer, error)
	ListCustomers(ctx context.Context, limit, offset int) ([]domain.Customer, error)
}

type CustomerHandler struct {
	svc CustomerService
}

func NewCustomerHandler(svc CustomerService) *CustomerHandler {
	return &CustomerHandler{
		svc: svc,
	}
}

// HandleListCustomers godoc
// @Summary      List customers
// @Tags         customers
// @Produce      json
// @Param        limit   query     int  false  "Page size"
// @Param        offset  query     int  false  "Page offset"
// @Success      200     {array}   domain.Customer
// @Failure      401     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /customers [get]
func (h *CustomerHandler) HandleListCustomers(ctx *gin.Context) {
	_, respErr := getCashierFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "0"))
	offset, _ := strconv.Atoi(ctx.DefaultQuery("offset", "0"))

	customers, err := h.svc.ListCustomers(ctx.Request.Context(), limit, offset)
	if err != nil {
		err = fmt.Errorf("HandleListCustomers -> h.svc.ListCustomers -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, customers)
}

// HandleGetCustomer godoc
// @Summary      Get a customer
// @Tags         customers
// @Produce      json
// @Param        customerID  path      int  true  "Customer ID"
// @Success      200         {object}  domain.Customer
// @Failure      400         {object}  response.Err
// @Failure      401         {object}  response.Err
// @Failure      404         {object}  response.Err
// @Failure      500         {object}  response.Err
// @Router       /customers/{customerID} [get]
func (h *CustomerHandler) HandleGetCustomer(ctx *gin.Context) {
	_, respErr := getCashierFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	customerID, err := strconv.ParseUint(ctx.Param("customerID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid customer ID: %w", err)))
		return
	}

	customer, err := h.svc.GetCustomer(ctx.Request.Context(), uint(customerID))
	if err != nil {
		if errors.Is(err, service.ErrCustomerNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("customer", "customerID", customerID))
			return
		}

		err = fmt.Errorf("HandleGetCustomer -> h.svc.GetCustomer -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, customer)
}
