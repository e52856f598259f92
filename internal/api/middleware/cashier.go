package middleware

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

const cashierIDKey = "cashierID"

// CashierHeader carries the authenticated cashier's id. The upstream
// terminal gateway is trusted to have verified it.
const CashierHeader = "X-Cashier-ID"

// ResolveCashier reads the cashier identity from the request header and
// stores it in the gin context for the handlers.
func ResolveCashier() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		raw := ctx.GetHeader(CashierHeader)
		if raw == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": fmt.Sprintf("missing %v header", CashierHeader),
			})
			return
		}

		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || id == 0 {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": fmt.Sprintf("invalid %v header", CashierHeader),
			})
			return
		}

		ctx.Set(cashierIDKey, uint(id))
		ctx.Next()
	}
}

// CashierID returns the cashier resolved by ResolveCashier.
func CashierID(ctx *gin.Context) (uint, bool) {
	v, ok := ctx.Get(cashierIDKey)
	if !ok {
		return 0, false
	}

	id, ok := v.(uint)

	return id, ok
}
