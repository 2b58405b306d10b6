package internal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/buildrs/match-engine/internal/config"
	"github.com/buildrs/match-engine/internal/datastore/postgres"
	redisClient "github.com/buildrs/match-engine/internal/datastore/redis"
	"github.com/buildrs/match-engine/internal/entity"
	"github.com/buildrs/match-engine/internal/matching"
	projectRepo "github.com/buildrs/match-engine/internal/repository/project"
	swipeRepo "github.com/buildrs/match-engine/internal/repository/swipe"
	userRepo "github.com/buildrs/match-engine/internal/repository/user"
	routesAPI "github.com/buildrs/match-engine/internal/routes/api"
	authUseCase "github.com/buildrs/match-engine/internal/usecase/auth"
	feedUseCase "github.com/buildrs/match-engine/internal/usecase/feed"
	profileUseCase "github.com/buildrs/match-engine/internal/usecase/profile"
	swipeUseCase "github.com/buildrs/match-engine/internal/usecase/swipe"
	"github.com/buildrs/match-engine/pkg/jwt"
	"github.com/go-redis/redis"
	"github.com/labstack/echo"
	"gorm.io/gorm"
)

type Server struct {
	writer     io.Writer
	httpServer *http.Server
}

// Run wires config, datastores, usecases and routes, then serves until the
// context is canceled. args[1], when present, selects the config
// environment prefix.
func Run(ctx context.Context, w io.Writer, args []string) error {
	env := "dev"
	if len(args) > 1 {
		env = args[1]
	}

	cfg, err := config.NewConfig(env)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	jwt.SetSecret(cfg.Get("JWT_SECRET"))

	database, err := postgres.InitializeDB(
		cfg.Get("POSTGRES_USER"),
		cfg.Get("POSTGRES_PASSWORD"),
		cfg.Get("POSTGRES_DB_NAME"),
		cfg.Get("POSTGRES_HOST"),
		cfg.Get("POSTGRES_PORT"),
	)
	if err != nil {
		return err
	}

	rdb, err := redisClient.New(cfg.Get("REDIS_HOST"), cfg.Get("REDIS_PORT"))
	if err != nil {
		return fmt.Errorf("connect to redis: %w", err)
	}

	server := NewServer(ctx, w, cfg, database, rdb)

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.StartServer()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func NewServer(ctx context.Context, w io.Writer, cfg config.IConfig, database *gorm.DB, rdb *redis.Client) *Server {
	e := echo.New()

	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	})

	users := userRepo.New(database)
	swipes := swipeRepo.New(database, rdb)
	projects := projectRepo.New(database)
	scorer := matching.NewScorer(nil)

	routesAPI.InitAPIRoutes(e, routesAPI.UseCases{
		Auth:    authUseCase.New(users),
		Swipe:   swipeUseCase.New(swipes, users, scorer),
		Feed:    feedUseCase.New(users, projects, swipes, scorer),
		Profile: profileUseCase.New(users, projects),
	})
	e.GET("/api/health", handleHealthCheck)

	return &Server{
		writer: w,
		httpServer: &http.Server{
			Addr:    ":" + cfg.Get("PORT"),
			Handler: e,
		},
	}
}

func (s *Server) StartServer() error {
	fmt.Fprintf(s.writer, "Server starting on %s\n", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func handleHealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, entity.HealthStatus{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
