package main

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	httpadp "lendbridge/internal/adapter/http"
	"lendbridge/internal/adapter/middleware"
	"lendbridge/internal/adapter/repository/mysql"
	"lendbridge/internal/config"
	"lendbridge/internal/infrastructure/cache"
	"lendbridge/internal/infrastructure/db"
	appuc "lendbridge/internal/usecase/application"
	dashuc "lendbridge/internal/usecase/dashboard"
	lenderuc "lendbridge/internal/usecase/lender"
	matchuc "lendbridge/internal/usecase/matching"
	schemeuc "lendbridge/internal/usecase/scheme"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatal(err)
	}
	if err := db.Migrate(gdb); err != nil {
		log.Fatal(err)
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatal(err)
	}

	lenders := mysql.NewLenderRepository(gdb)
	schemes := mysql.NewSchemeRepository(gdb)
	apps := mysql.NewApplicationRepository(gdb)
	uow := mysql.NewGormUoW(gdb)

	h := httpadp.NewHandler()
	lenderH := httpadp.NewLenderHandler(lenderuc.NewUsecase(lenders))
	schemeH := httpadp.NewSchemeHandler(
		schemeuc.NewUsecase(lenders, schemes, uow),
		matchuc.NewUsecase(schemes),
	)
	appH := httpadp.NewApplicationHandler(appuc.NewUsecase(apps, uow))
	dashH := httpadp.NewDashboardHandler(dashuc.NewUsecase(lenders, schemes, apps))

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())

	idemp := middleware.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second)

	e.GET("/health", h.Health)

	// lender registration and profile
	e.POST("/nbfc", lenderH.Register)
	e.GET("/nbfc/:lender_id", lenderH.Get)
	e.GET("/nbfc/:lender_id/dashboard", dashH.NBFC)

	// schemes
	e.POST("/nbfc/:lender_id/schemes", schemeH.Create)
	e.GET("/nbfc/:lender_id/schemes", schemeH.List)
	e.GET("/nbfc/:lender_id/schemes/:scheme_id", schemeH.Get)
	e.POST("/nbfc/:lender_id/schemes/:scheme_id/deactivate", schemeH.Deactivate)

	// public scheme search
	e.GET("/schemes", schemeH.Match)

	// application lifecycle; mutations are idempotency-protected
	e.POST("/nbfc/:lender_id/schemes/:scheme_id/applications", appH.Create, idemp)
	e.GET("/applications/:application_id", appH.Get)
	e.POST("/applications/:application_id/documents/:name", appH.RecordDocumentDecision, idemp)
	e.POST("/applications/:application_id/field-visit", appH.RecordFieldVisit, idemp)
	e.POST("/applications/:application_id/decision", appH.Decide, idemp)

	// borrower view
	e.GET("/borrowers/:borrower_ref/applications", dashH.Borrower)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
