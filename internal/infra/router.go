package infra

import (
	"fmt"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
	_ "github.com/umalmyha/customer-accounts/docs" // swagger docs
	"github.com/umalmyha/customer-accounts/internal/auth"
	"github.com/umalmyha/customer-accounts/internal/config"
	"github.com/umalmyha/customer-accounts/internal/handlers"
	"github.com/umalmyha/customer-accounts/internal/middleware"
	"github.com/umalmyha/customer-accounts/internal/service"
	"github.com/umalmyha/customer-accounts/internal/validation"
	"github.com/umalmyha/customer-accounts/internal/view"
)

func Router(cfg config.Config, customerSvc service.CustomerService) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = handlers.HTTPErrorHandler

	// Validator
	echoValidator, err := validation.NewEcho()
	if err != nil {
		return nil, err
	}
	e.Validator = echoValidator

	// View
	translator, err := view.NewTranslator()
	if err != nil {
		return nil, fmt.Errorf("failed to build translator - %w", err)
	}

	engine, err := view.NewEngine(translator)
	if err != nil {
		return nil, err
	}

	customerSectionListener := view.NewCustomerSectionListener(
		view.NewContextRequestStack(),
		service.NewCustomerReferencer(customerSvc),
		config.NewStore(cfg),
		translator,
	)
	dispatcher := view.NewDispatcher(customerSectionListener)

	// Middleware
	metrics, err := middleware.NewMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to register metrics - %w", err)
	}

	e.Use(middleware.RequestID(), metrics.Middleware(), middleware.RequestLogger())

	apiMw := []echo.MiddlewareFunc{middleware.RateLimit(cfg.HTTPCfg.RateLimitRequests, cfg.HTTPCfg.RateLimitWindow)}
	if cfg.AuthEnabled() {
		jwtValidator := auth.NewJwtValidator(cfg.JwtCfg.SigningMethod, cfg.JwtCfg.PublicKey)
		apiMw = append(apiMw, middleware.Authorize(jwtValidator))
	}

	// Handlers
	customerHandler := handlers.NewCustomerHTTPHandler(customerSvc)
	accountHandler := handlers.NewAccountHTTPHandler(dispatcher, engine)

	// Service routes
	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// API routes
	api := e.Group("/api", apiMw...)

	// customers
	customersAPI := api.Group("/customers")
	customersAPI.GET("", customerHandler.GetAll)
	customersAPI.GET("/:id", customerHandler.Get)
	customersAPI.GET("/:id/relationships/:association", customerHandler.GetRelationship)
	customersAPI.GET("/:id/:association", customerHandler.GetRelated)

	// accounts
	accountsAPI := api.Group("/accounts")
	accountsAPI.GET("/:id/sections", accountHandler.GetSections)

	return e, nil
}
