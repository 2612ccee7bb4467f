package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/carousell/ct-go/pkg/logger"
	log "github.com/carousell/ct-go/pkg/logger/log_context"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/patriotcart/savings-api/internal/config"
	pkgmdw "github.com/patriotcart/savings-api/internal/server/middleware"
	"go.uber.org/fx"
)

func StartServer(
	lc fx.Lifecycle,
	sd fx.Shutdowner,
	conf *config.Config,
	handler Controller,
) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = pkgmdw.NewValidator()
	e.HTTPErrorHandler = errorHandler()

	logConfig := pkgmdw.LogRequestConfig{
		Logger: logger.MustNamed("http"),
		Enabled: func(c echo.Context) bool {
			uri := c.Request().RequestURI
			return uri != "/health" && uri != "/metrics"
		},
	}

	e.Use(pkgmdw.Metrics())
	e.Use(pkgmdw.RequestID())
	e.Use(pkgmdw.LogRequest(logConfig))
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			log.Errorw(c.Request().Context(), "PANIC RECOVER", "error", err, "stack", string(stack))
			return nil
		},
	}))

	e.GET("/health", handler.Health)

	api := e.Group("/api/v1")

	api.GET("/products", handler.ListProducts)
	api.GET("/products/live", handler.LiveProducts)
	api.GET("/products/search", handler.SearchProducts)
	api.POST("/products", handler.CreateProduct)
	api.GET("/products/:id", handler.GetProduct)
	api.PUT("/products/:id", handler.UpdateProduct)
	api.DELETE("/products/:id", handler.DeleteProduct)

	api.GET("/affiliate/redirect/:id", handler.AffiliateRedirect)
	api.POST("/affiliate/purchase/:id", handler.TrackPurchase)

	api.GET("/savings", handler.ListSavings)
	api.GET("/savings/total", handler.TotalSavings)
	api.GET("/savings/export", handler.ExportSavings)
	api.POST("/savings", handler.CreateSavings)
	api.GET("/savings/:id", handler.GetSavings)
	api.PUT("/savings/:id", handler.UpdateSavings)
	api.DELETE("/savings/:id", handler.DeleteSavings)

	api.POST("/analytics/events", handler.TrackEvent)
	api.GET("/analytics/summary", handler.AnalyticsSummary)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Infow(ctx, "starting HTTP server", "addr", conf.Server.Addr)
				if err := e.Start(conf.Server.Addr); !errors.Is(err, http.ErrServerClosed) {
					sd.Shutdown()
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return e.Shutdown(ctx)
		},
	})
}

type httpErrorBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func errorHandler() echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if err == nil || c.Response().Committed {
			return
		}

		body := httpErrorBody{
			Code:    http.StatusInternalServerError,
			Message: "internal server error",
		}
		var he *echo.HTTPError
		if errors.As(err, &he) {
			body.Code = he.Code
			body.Message = fmt.Sprint(he.Message)
		}

		if err := c.JSON(body.Code, body); err != nil {
			log.Errorw(c.Request().Context(), "could not write error response", "error", err)
		}
	}
}
