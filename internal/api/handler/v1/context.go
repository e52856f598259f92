package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/pos-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/pos-api/internal/api/middleware"
)

func getCashierFromContext(ctx *gin.Context) (uint, *response.Err) {
	cashierID, ok := middleware.CashierID(ctx)
	if !ok {
		return 0, response.ErrUnauthorized(fmt.Errorf("cashier identity missing from request"))
	}

	return cashierID, nil
}
