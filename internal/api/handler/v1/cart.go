package v1

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/pos-api/internal/api/handler/v1/request"
	"github.com/vietanh2810/pos-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/pos-api/internal/domain"
	"github.com/vietanh2810/pos-api/internal/service"
)

type CartService interface {
	AddItem(ctx context.Context, cashierID, productID uint, quantity int) (domain.CartItem, error)
	UpdateQuantity(ctx context.Context, cashierID, itemID uint, quantity int) (domain.CartItem, error)
	RemoveItem(ctx context.Context, itemID uint) error
	ActiveCart(ctx context.Context, cashierID uint) ([]domain.CartItem, error)
	Hold(ctx context.Context, cashierID uint, label string) (string, error)
	Resume(ctx context.Context, cashierID uint, groupID string) error
	ClearHold(ctx context.Context, cashierID uint, groupID string) error
	HeldGroups(ctx context.Context, cashierID uint) iter.Seq2[domain.HeldGroup, error]
}

type CartHandler struct {
	svc CartService
}

func NewCartHandler(svc CartService) *CartHandler {
	return &CartHandler{
		svc: svc,
	}
}

// HandleGetCart godoc
// @Summary      Get the active cart
// @Description  Lists the cashier's active (non-held) cart lines
// @Tags         cart
// @Produce      json
// @Success      200  {array}   domain.CartItem
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /cart [get]
func (h *CartHandler) HandleGetCart(ctx *gin.Context) {
	cashierID, respErr := getCashierFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	items, err := h.svc.ActiveCart(ctx.Request.Context(), cashierID)
	if err != nil {
		err = fmt.Errorf("HandleGetCart -> h.svc.ActiveCart -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, items)
}

// HandleAddItem godoc
// @Summary      Add a product to the cart
// @Description  Adds quantity of a product to the cashier's cart, merging into an existing line for the same product
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        input  body      request.AddItemRequest  true  "Line to add"
// @Success      201    {object}  domain.CartItem
// @Failure      400    {object}  response.Err
// @Failure      401    {object}  response.Err
// @Failure      404    {object}  response.Err
// @Failure      409    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /cart/items [post]
func (h *CartHandler) HandleAddItem(ctx *gin.Context) {
	cashierID, respErr := getCashierFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var input request.AddItemRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	item, err := h.svc.AddItem(ctx.Request.Context(), cashierID, input.ProductID, input.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProductNotFound):
			response.RenderErr(ctx, response.ErrNotFound("product", "productID", input.ProductID))
		case errors.Is(err, service.ErrInsufficientStock):
			response.RenderErr(ctx, response.ErrConflict(service.ErrInsufficientStock))
		default:
			err = fmt.Errorf("HandleAddItem -> h.svc.AddItem -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusCreated, item)
}

// HandleUpdateQuantity godoc
// @Summary      Update a cart line's quantity
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        itemID  path      int                            true  "Cart item ID"
// @Param        input   body      request.UpdateQuantityRequest  true  "New quantity"
// @Success      200     {object}  domain.CartItem
// @Failure      400     {object}  response.Err
// @Failure      401     {object}  response.Err
// @Failure      404     {object}  response.Err
// @Failure      409     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /cart/items/{itemID} [put]
func (h *CartHandler) HandleUpdateQuantity(ctx *gin.Context) {
	cashierID, respErr := getCashierFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	itemID, err := strconv.ParseUint(ctx.Param("itemID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid cart item ID: %w", err)))
		return
	}

	var input request.UpdateQuantityRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	item, err := h.svc.UpdateQuantity(ctx.Request.Context(), cashierID, uint(itemID), input.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCartItemNotFound):
			response.RenderErr(ctx, response.ErrNotFound("cart item", "itemID", itemID))
		case errors.Is(err, service.ErrInsufficientStock):
			response.RenderErr(ctx, response.ErrConflict(service.ErrInsufficientStock))
		default:
			err = fmt.Errorf("HandleUpdateQuantity -> h.svc.UpdateQuantity -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusOK, item)
}

// HandleRemoveItem godoc
// @Summary      Remove a cart line
// @Tags         cart
// @Produce      json
// @Param        itemID  path  int  true  "Cart item ID"
// @Success      204
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /cart/items/{itemID} [delete]
func (h *CartHandler) HandleRemoveItem(ctx *gin.Context) {
	_, respErr := getCashierFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	itemID, err := strconv.ParseUint(ctx.Param("itemID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid cart item ID: %w", err)))
		return
	}

	if err := h.svc.RemoveItem(ctx.Request.Context(), uint(itemID)); err != nil {
		if errors.Is(err, service.ErrCartItemNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("cart item", "itemID", itemID))
			return
		}

		err = fmt.Errorf("HandleRemoveItem -> h.svc.RemoveItem -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleHoldCart godoc
// @Summary      Park the active cart
// @Description  Holds every active line under a new group so the cashier can start another sale
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        input  body      request.HoldCartRequest  false  "Optional label"
// @Success      201    {object}  response.HoldResponse
// @Failure      400    {object}  response.Err
// @Failure      401    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /cart/holds [post]
func (h *CartHandler) HandleHoldCart(ctx *gin.Context) {
	cashierID, respErr := getCashierFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var input request.HoldCartRequest
	if ctx.Request.ContentLength > 0 {
		if err := ctx.ShouldBindJSON(&input); err != nil {
			response.RenderErr(ctx, response.ErrBadRequest(err))
			return
		}

		if err := input.Validate(); err != nil {
			response.RenderErr(ctx, response.ErrBadRequest(err))
			return
		}
	}

	groupID, err := h.svc.Hold(ctx.Request.Context(), cashierID, input.Label)
	if err != nil {
		if errors.Is(err, service.ErrEmptyCart) {
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrEmptyCart))
			return
		}

		err = fmt.Errorf("HandleHoldCart -> h.svc.Hold -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, response.HoldResponse{HoldGroupID: groupID})
}

// HandleListHeld godoc
// @Summary      List parked sales
// @Tags         cart
// @Produce      json
// @Success      200  {array}   domain.HeldGroup
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /cart/holds [get]
func (h *CartHandler) HandleListHeld(ctx *gin.Context) {
	cashierID, respErr := getCashierFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	groups := make([]domain.HeldGroup, 0)
	for group, err := range h.svc.HeldGroups(ctx.Request.Context(), cashierID) {
		if err != nil {
			err = fmt.Errorf("HandleListHeld -> h.svc.HeldGroups -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
			return
		}
		groups = append(groups, group)
	}

	ctx.JSON(http.StatusOK, groups)
}

// HandleResumeHold godoc
// @Summary      Resume a parked sale
// @Description  Reactivates the group's lines. Fails if the cashier still has an active cart.
// @Tags         cart
// @Produce      json
// @Param        groupID  path  string  true  "Hold group ID"
// @Success      204
// @Failure      401  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      409  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /cart/holds/{groupID}/resume [post]
func (h *CartHandler) HandleResumeHold(ctx *gin.Context) {
	cashierID, respErr := getCashierFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	groupID := ctx.Param("groupID")

	if err := h.svc.Resume(ctx.Request.Context(), cashierID, groupID); err != nil {
		switch {
		case errors.Is(err, service.ErrActiveCartConflict):
			response.RenderErr(ctx, response.ErrConflict(service.ErrActiveCartConflict))
		case errors.Is(err, service.ErrHoldGroupNotFound):
			response.RenderErr(ctx, response.ErrNotFound("hold group", "groupID", groupID))
		default:
			err = fmt.Errorf("HandleResumeHold -> h.svc.Resume -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleClearHold godoc
// @Summary      Discard a parked sale
// @Tags         cart
// @Produce      json
// @Param        groupID  path  string  true  "Hold group ID"
// @Success      204
// @Failure      401  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /cart/holds/{groupID} [delete]
func (h *CartHandler) HandleClearHold(ctx *gin.Context) {
	cashierID, respErr := getCashierFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	groupID := ctx.Param("groupID")

	if err := h.svc.ClearHold(ctx.Request.Context(), cashierID, groupID); err != nil {
		if errors.Is(err, service.ErrHoldGroupNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("hold group", "groupID", groupID))
			return
		}

		err = fmt.Errorf("HandleClearHold -> h.svc.ClearHold -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.Status(http.StatusNoContent)
}
