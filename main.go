// @title BlogEase API
// @version 1.0
// @description Blogging backend: accounts, posts, likes, comments and images.
// @host localhost:5000
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/Amitgupta170804/BlogEase/docs"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Amitgupta170804/BlogEase/bootstrap"
	"github.com/Amitgupta170804/BlogEase/config"
	"github.com/Amitgupta170804/BlogEase/database"
	"github.com/Amitgupta170804/BlogEase/internal/auth"
	"github.com/Amitgupta170804/BlogEase/internal/controllers"
	"github.com/Amitgupta170804/BlogEase/internal/middleware"
	"github.com/Amitgupta170804/BlogEase/internal/repository"
	"github.com/Amitgupta170804/BlogEase/internal/repository/memstore"
	"github.com/Amitgupta170804/BlogEase/internal/routes"
	"github.com/Amitgupta170804/BlogEase/internal/services"
)

type stores struct {
	users  services.UserStore
	blogs  services.BlogStore
	images services.ImageStore
	close  func()
}

func openStores(ctx context.Context, cfg config.Config) stores {
	if cfg.Storage == config.StorageMemory {
		log.Warn().Msg("STORAGE=memory: data is lost on restart")
		return stores{
			users:  memstore.NewUserStore(),
			blogs:  memstore.NewBlogStore(),
			images: memstore.NewImageStore(),
			close:  func() {},
		}
	}

	client, err := database.ConnectMongo(ctx, cfg.MongoURI)
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connect failed")
	}
	db := client.Database(cfg.MongoDB)

	// Unique usernames and emails
	if err := bootstrap.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("ensure indexes failed")
	}

	return stores{
		users:  repository.NewUserRepository(db),
		blogs:  repository.NewBlogRepository(db),
		images: repository.NewImageRepository(db),
		close:  func() { database.DisconnectMongo(client) },
	}
}

func setupLogger(level string) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
}

func main() {
	cfg := config.LoadConfig()
	setupLogger(cfg.LogLevel)

	if cfg.InsecureSecret() {
		log.Warn().Msg("JWT_SECRET not set, using the built-in development secret")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st := openStores(ctx, cfg)
	defer st.close()

	signer := auth.NewSigner(cfg.JWTSecret)

	// Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "BlogEase",
		ErrorHandler: controllers.ErrorHandler,
		BodyLimit:    8 * 1024 * 1024,
	})
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(middleware.RequestLogger(log.Logger))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, x-auth-token",
	}))
	app.Use(middleware.Deadline(cfg.DBTimeout))

	// Swagger API document
	app.Get("/docs/*", swagger.HandlerDefault)

	routes.Register(app, routes.Deps{
		Auth:   services.NewAuthService(st.users, signer),
		Blogs:  services.NewBlogService(st.blogs, st.users),
		Users:  services.NewUserService(st.users, st.blogs),
		Images: services.NewImageService(st.images),
		Signer: signer,
	})

	// Browser client
	app.Static("/", cfg.StaticDir)

	go func() {
		log.Info().Str("port", cfg.Port).Str("storage", cfg.Storage).Msg("server listening")
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Error().Err(err).Msg("server stopped")
			stop()
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown")
	}
}
