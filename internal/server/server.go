package server

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/dbaylabs/dbay-backend/internal/config"
	"github.com/dbaylabs/dbay-backend/internal/handler"
	"github.com/dbaylabs/dbay-backend/internal/ledger"
	appmw "github.com/dbaylabs/dbay-backend/internal/middleware"
)

type Server struct {
	e *echo.Echo
}

func New(lg *ledger.Ledger, cfg *config.Config) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:     []string{"Content-Type", appmw.CallerHeader, handler.BudgetHeader, handler.DebugTokenHeader},
		AllowCredentials: true,
		AllowOriginFunc: func(origin string) (bool, error) {
			low := strings.ToLower(origin)
			if strings.HasPrefix(low, "http://localhost:") || strings.HasPrefix(low, "http://127.0.0.1:") ||
				strings.HasPrefix(low, "https://localhost:") || strings.HasPrefix(low, "https://127.0.0.1:") {
				return true, nil
			}
			return false, nil
		},
	}))

	accountHandler := handler.NewAccountHandler(lg, cfg.CallBudget)
	itemHandler := handler.NewItemHandler(lg, cfg.CallBudget)
	purchaseHandler := handler.NewPurchaseHandler(lg, cfg.CallBudget)
	debugHandler := handler.NewDebugHandler(lg, cfg.DebugToken)

	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"ok": "true"})
	})

	api := e.Group("/api")
	api.POST("/profile", accountHandler.CreateProfile, appmw.RequireCaller)
	api.GET("/me/account", accountHandler.GetAccount, appmw.RequireCaller)
	api.POST("/items", itemHandler.Create, appmw.RequireCaller)
	api.GET("/me/items", itemHandler.ListMine, appmw.RequireCaller)
	api.POST("/items/:id/buy", purchaseHandler.Buy, appmw.RequireCaller)
	api.GET("/me/sales/count", purchaseHandler.SoldCount, appmw.RequireCaller)
	api.GET("/me/purchases/count", purchaseHandler.PurchasesCount, appmw.RequireCaller)
	api.GET("/items", itemHandler.ListListed)
	api.GET("/debug/items/:id", debugHandler.FindGoodByID)

	return &Server{e: e}
}

func (s *Server) Start(addr string) error {
	return s.e.Start(addr)
}
