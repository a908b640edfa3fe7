// Package main RentWala API.
//
// @title           RentWala API
// @version         1.0
// @description     rental marketplace (listings, cart, checkout, rentals).
// @BasePath        /
// @schemes         http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description  Use:  Bearer <JWT>
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/yukta0302/rentwala/app/echoServer"
	authctrl "github.com/yukta0302/rentwala/app/echoServer/controller/auth"
	cartctrl "github.com/yukta0302/rentwala/app/echoServer/controller/cart"
	checkoutctrl "github.com/yukta0302/rentwala/app/echoServer/controller/checkout"
	itemctrl "github.com/yukta0302/rentwala/app/echoServer/controller/item"
	rentalctrl "github.com/yukta0302/rentwala/app/echoServer/controller/rental"
	"github.com/yukta0302/rentwala/app/echoServer/validation"
	"github.com/yukta0302/rentwala/config"
	authrepo "github.com/yukta0302/rentwala/repository/auth"
	cartrepo "github.com/yukta0302/rentwala/repository/cart"
	itemrepo "github.com/yukta0302/rentwala/repository/item"
	rentalrepo "github.com/yukta0302/rentwala/repository/rental"
	"github.com/yukta0302/rentwala/repository/storage"
	authsvc "github.com/yukta0302/rentwala/service/auth"
	cartsvc "github.com/yukta0302/rentwala/service/cart"
	checkoutsvc "github.com/yukta0302/rentwala/service/checkout"
	itemsvc "github.com/yukta0302/rentwala/service/item"
	rentalsvc "github.com/yukta0302/rentwala/service/rental"
	"github.com/yukta0302/rentwala/util/database"
)

// cart lifetime mirrors the JWT TTL
const cartTTL = 24 * time.Hour

func main() {

	_ = godotenv.Load()
	cfg := config.Load()
	ctx := context.Background()

	// logger
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(log)

	// DB: *sql.DB
	db, err := database.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Error("db connect failed", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	// redis (session carts)
	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPass})
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Error("redis connect failed", "err", err)
		os.Exit(1)
	}
	defer rdb.Close()

	// uploads
	uploads, err := newUploads(cfg)
	if err != nil {
		log.Error("upload storage init failed", "err", err)
		os.Exit(1)
	}

	// repos
	ar := authrepo.New(db)
	ir := itemrepo.New(db)
	rr := rentalrepo.New(db)
	cr := cartrepo.New(rdb, cartTTL)

	// services
	as := authsvc.New(ar, cfg.JWTSecret)
	is := itemsvc.New(ir)
	cs := cartsvc.New(cr, ir)
	chs := checkoutsvc.New(cr, ir, rr)
	rs := rentalsvc.New(ir, rr)

	// controllers
	v := validator.New()
	authC := &authctrl.Controller{Svc: as, V: v, Log: log}
	itemC := &itemctrl.Controller{Svc: is, Uploads: uploads, V: v, Log: log}
	cartC := &cartctrl.Controller{Svc: cs, V: v, Log: log}
	checkoutC := &checkoutctrl.Controller{Svc: chs, V: v, Log: log}
	rentalC := &rentalctrl.Controller{Svc: rs, Log: log}

	// echo
	e := echo.New()
	echoServer.RegisterMiddlewares(e)
	e.Validator = validation.New()

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]any{
			"status":  "ok",
			"message": "Service is healthy and connected",
		})
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	echoServer.Register(e, echoServer.C{
		Auth:     authC,
		Item:     itemC,
		Cart:     cartC,
		Checkout: checkoutC,
		Rental:   rentalC,

		JWTSecret: cfg.JWTSecret,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Port
	}
	if port == "" {
		port = "8080"
	}

	slog.Info("starting server", "PORT_env", os.Getenv("PORT"), "chosen_port", port)

	e.Logger.Fatal(e.Start(":" + port))
}

func newUploads(cfg config.App) (storage.Store, error) {
	if cfg.S3Bucket != "" {
		return storage.NewS3(storage.S3Config{
			Bucket:    cfg.S3Bucket,
			Region:    cfg.S3Region,
			Endpoint:  cfg.S3Endpoint,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
		})
	}
	return storage.NewDisk(cfg.UploadDir)
}
