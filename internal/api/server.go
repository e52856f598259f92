package api

import (
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/vietanh2810/pos-api/docs"
	v1 "github.com/vietanh2810/pos-api/internal/api/handler/v1"
	"github.com/vietanh2810/pos-api/internal/api/middleware"
	"github.com/vietanh2810/pos-api/internal/config"
	"github.com/vietanh2810/pos-api/internal/payment"
	"github.com/vietanh2810/pos-api/internal/repository"
	"github.com/vietanh2810/pos-api/internal/repository/dao"
	"github.com/vietanh2810/pos-api/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, db *gorm.DB) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	cartHandler := s.initCartHandler(db)
	checkoutHandler := s.initCheckoutHandler(db)
	transactionHandler := s.initTransactionHandler(db)
	productHandler := s.initProductHandler(db)
	customerHandler := s.initCustomerHandler(db)
	s.MountHandlers(cartHandler, checkoutHandler, transactionHandler, productHandler, customerHandler)

	return s
}

func (s *Server) initCartHandler(db *gorm.DB) *v1.CartHandler {
	repo := repository.NewCartRepository(dao.NewCartDAO(db))
	productRepo := repository.NewProductRepository(dao.NewProductDAO(db))
	svc := service.NewCartService(repo, productRepo)
	handler := v1.NewCartHandler(svc)

	return handler
}

func (s *Server) initCheckoutHandler(db *gorm.DB) *v1.CheckoutHandler {
	repo := repository.NewTransactionRepository(dao.NewTransactionDAO(db))
	cartRepo := repository.NewCartRepository(dao.NewCartDAO(db))
	settingRepo := repository.NewSettingRepository(dao.NewSettingDAO(db))
	gateways := payment.NewRegistry(s.Config.Checkout.SuccessURL, s.Config.Checkout.CancelURL)
	invoices := service.NewInvoiceGenerator(s.Config.Checkout.InvoicePrefix)
	timeout := time.Duration(s.Config.Checkout.GatewayTimeoutSeconds) * time.Second
	svc := service.NewCheckoutService(repo, cartRepo, settingRepo, gateways, invoices, timeout)
	handler := v1.NewCheckoutHandler(svc)

	return handler
}

func (s *Server) initTransactionHandler(db *gorm.DB) *v1.TransactionHandler {
	repo := repository.NewTransactionRepository(dao.NewTransactionDAO(db))
	svc := service.NewTransactionService(repo)
	handler := v1.NewTransactionHandler(svc)

	return handler
}

func (s *Server) initProductHandler(db *gorm.DB) *v1.ProductHandler {
	repo := repository.NewProductRepository(dao.NewProductDAO(db))
	svc := service.NewCatalogService(repo)
	handler := v1.NewProductHandler(svc)

	return handler
}

func (s *Server) initCustomerHandler(db *gorm.DB) *v1.CustomerHandler {
	repo := repository.NewCustomerRepository(dao.NewCustomerDAO(db))
	svc := service.NewCustomerService(repo)
	handler := v1.NewCustomerHandler(svc)

	return handler
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(
	cartHandler *v1.CartHandler,
	checkoutHandler *v1.CheckoutHandler,
	transactionHandler *v1.TransactionHandler,
	productHandler *v1.ProductHandler,
	customerHandler *v1.CustomerHandler,
) {
	const basePath = "/api/v1"

	api := s.Router.Group(basePath, middleware.ResolveCashier())
	{
		api.GET("/cart", cartHandler.HandleGetCart)
		api.POST("/cart/items", cartHandler.HandleAddItem)
		api.PUT("/cart/items/:itemID", cartHandler.HandleUpdateQuantity)
		api.DELETE("/cart/items/:itemID", cartHandler.HandleRemoveItem)
		api.POST("/cart/holds", cartHandler.HandleHoldCart)
		api.GET("/cart/holds", cartHandler.HandleListHeld)
		api.POST("/cart/holds/:groupID/resume", cartHandler.HandleResumeHold)
		api.DELETE("/cart/holds/:groupID", cartHandler.HandleClearHold)

		api.POST("/checkout", checkoutHandler.HandleCheckout)
		api.GET("/checkout/gateways", checkoutHandler.HandleGetGateways)
		api.GET("/checkout/gateways/default", checkoutHandler.HandleGetDefaultGateway)

		api.GET("/transactions", transactionHandler.HandleListTransactions)
		api.GET("/transactions/:invoice", transactionHandler.HandleGetTransaction)
		api.GET("/transactions/:invoice/profits", transactionHandler.HandleGetProfits)

		api.GET("/products", productHandler.HandleListProducts)
		api.GET("/products/:productID", productHandler.HandleGetProduct)

		api.GET("/customers", customerHandler.HandleListCustomers)
		api.GET("/customers/:customerID", customerHandler.HandleGetCustomer)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Point of Sale API"
	docs.SwaggerInfo.Description = "Cashier-facing cart and checkout API."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
