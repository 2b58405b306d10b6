package routesAPI

import (
	routesAPIAuth "github.com/buildrs/match-engine/internal/routes/api/auth"
	routesAPIMatches "github.com/buildrs/match-engine/internal/routes/api/matches"
	routesAPIProjects "github.com/buildrs/match-engine/internal/routes/api/projects"
	routesAPISwipes "github.com/buildrs/match-engine/internal/routes/api/swipes"
	routesAPIUsers "github.com/buildrs/match-engine/internal/routes/api/users"
	authUseCase "github.com/buildrs/match-engine/internal/usecase/auth"
	feedUseCase "github.com/buildrs/match-engine/internal/usecase/feed"
	profileUseCase "github.com/buildrs/match-engine/internal/usecase/profile"
	swipeUseCase "github.com/buildrs/match-engine/internal/usecase/swipe"
	"github.com/labstack/echo"
)

type UseCases struct {
	Auth    authUseCase.IAuthUseCase
	Swipe   swipeUseCase.ISwipeUseCase
	Feed    feedUseCase.IFeedUseCase
	Profile profileUseCase.IProfileUseCase
}

func InitAPIRoutes(e *echo.Echo, cases UseCases) {
	api := e.Group("/api")

	api.POST("/auth/sign-up", func(c echo.Context) error {
		return routesAPIAuth.SignUpHandler(c, cases.Auth)
	})
	api.POST("/auth/sign-in", func(c echo.Context) error {
		return routesAPIAuth.SignInHandler(c, cases.Auth)
	})

	api.POST("/swipes", func(c echo.Context) error {
		return routesAPISwipes.RecordSwipeHandler(c, cases.Swipe)
	})
	api.GET("/swipes/history/:userId", func(c echo.Context) error {
		return routesAPISwipes.HistoryHandler(c, cases.Swipe)
	})
	api.GET("/swipes/cards", func(c echo.Context) error {
		return routesAPISwipes.CardsHandler(c, cases.Feed)
	})

	api.GET("/matches/:userId", func(c echo.Context) error {
		return routesAPIMatches.ListHandler(c, cases.Swipe)
	})
	api.PATCH("/matches/:matchId", func(c echo.Context) error {
		return routesAPIMatches.UpdateStatusHandler(c, cases.Swipe, cases.Auth)
	})

	api.GET("/users/:userId/profile", func(c echo.Context) error {
		return routesAPIUsers.GetProfileHandler(c, cases.Profile)
	})
	api.PATCH("/users/:userId/profile", func(c echo.Context) error {
		return routesAPIUsers.UpdateProfileHandler(c, cases.Profile, cases.Auth)
	})
	api.POST("/users/:userId/github-sync", func(c echo.Context) error {
		return routesAPIUsers.GithubSyncHandler(c, cases.Profile, cases.Auth)
	})
	api.GET("/users/:userId/projects", func(c echo.Context) error {
		return routesAPIUsers.UserProjectsHandler(c, cases.Profile)
	})

	api.POST("/projects", func(c echo.Context) error {
		return routesAPIProjects.CreateHandler(c, cases.Profile, cases.Auth)
	})
	api.GET("/projects/:projectId", func(c echo.Context) error {
		return routesAPIProjects.GetHandler(c, cases.Profile)
	})
	api.PATCH("/projects/:projectId", func(c echo.Context) error {
		return routesAPIProjects.UpdateHandler(c, cases.Profile, cases.Auth)
	})

	api.GET("/recommendations/:userId", func(c echo.Context) error {
		return routesAPISwipes.RecommendationsHandler(c, cases.Feed)
	})
	api.GET("/analytics/:userId/swipe-stats", func(c echo.Context) error {
		return routesAPISwipes.StatsHandler(c, cases.Swipe)
	})
}
