package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCashierTestRouter() (*gin.Engine, *uint) {
	gin.SetMode(gin.TestMode)

	var got uint
	router := gin.New()
	router.GET("/probe", ResolveCashier(), func(ctx *gin.Context) {
		id, ok := CashierID(ctx)
		if !ok {
			ctx.Status(http.StatusInternalServerError)
			return
		}
		got = id
		ctx.Status(http.StatusOK)
	})

	return router, &got
}

func TestResolveCashier(t *testing.T) {
	router, got := newCashierTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set(CashierHeader, "42")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(42), *got)
}

func TestResolveCashier_MissingHeader(t *testing.T) {
	router, _ := newCashierTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), CashierHeader)
}

func TestResolveCashier_InvalidHeader(t *testing.T) {
	router, _ := newCashierTestRouter()

	for _, raw := range []string{"abc", "-1", "0"} {
		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		req.Header.Set(CashierHeader, raw)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code, "header %q", raw)
	}
}
