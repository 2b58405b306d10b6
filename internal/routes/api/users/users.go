package routesAPIUsers

import (
	"errors"
	"net/http"

	"github.com/buildrs/match-engine/internal/entity"
	authUseCase "github.com/buildrs/match-engine/internal/usecase/auth"
	profileUseCase "github.com/buildrs/match-engine/internal/usecase/profile"
	"github.com/buildrs/match-engine/pkg/httputil"
	"github.com/labstack/echo"
	"gorm.io/gorm"
)

func GetProfileHandler(c echo.Context, profileCase profileUseCase.IProfileUseCase) error {
	userID := c.Param("userId")
	if userID == "" {
		return httputil.Error(c, http.StatusBadRequest, "invalid user ID")
	}

	profile, err := profileCase.GetProfile(c.Request().Context(), userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return httputil.Error(c, http.StatusNotFound, "profile not found")
	}
	if err != nil {
		return httputil.Error(c, http.StatusInternalServerError, "failed to get profile")
	}

	return httputil.Encode(c, http.StatusOK, profile)
}

// UpdateProfileHandler only lets the authenticated user edit their own
// profile.
func UpdateProfileHandler(c echo.Context, profileCase profileUseCase.IProfileUseCase, authCase authUseCase.IAuthUseCase) error {
	user, err := authCase.GetUserFromJWTRequest(c)
	if err != nil {
		return err
	}

	userID := c.Param("userId")
	if userID != user.ID {
		return httputil.Error(c, http.StatusForbidden, "cannot edit another user's profile")
	}

	fields, err := httputil.Decode[map[string]any](c)
	if err != nil {
		return httputil.Error(c, http.StatusBadRequest, "invalid request")
	}

	profile, err := profileCase.UpdateProfile(c.Request().Context(), userID, fields)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return httputil.Error(c, http.StatusNotFound, "profile not found")
	}
	if err != nil {
		return httputil.Error(c, http.StatusInternalServerError, "failed to update profile")
	}

	return httputil.Encode(c, http.StatusOK, profile)
}

func GithubSyncHandler(c echo.Context, profileCase profileUseCase.IProfileUseCase, authCase authUseCase.IAuthUseCase) error {
	user, err := authCase.GetUserFromJWTRequest(c)
	if err != nil {
		return err
	}

	userID := c.Param("userId")
	if userID != user.ID {
		return httputil.Error(c, http.StatusForbidden, "cannot sync another user's data")
	}

	request, err := httputil.Decode[entity.GithubSyncRequest](c)
	if err != nil {
		return httputil.Error(c, http.StatusBadRequest, "invalid request")
	}

	if problems := request.Validate(c.Request().Context()); len(problems) != 0 {
		return httputil.BadRequest(c, problems)
	}

	profile, err := profileCase.SyncGithubData(c.Request().Context(), userID, request.AccessToken)
	if err != nil {
		return httputil.Error(c, http.StatusInternalServerError, "failed to sync github data")
	}

	return httputil.Encode(c, http.StatusOK, profile)
}

func UserProjectsHandler(c echo.Context, profileCase profileUseCase.IProfileUseCase) error {
	userID := c.Param("userId")
	if userID == "" {
		return httputil.Error(c, http.StatusBadRequest, "invalid user ID")
	}

	projects, err := profileCase.GetUserProjects(c.Request().Context(), userID)
	if err != nil {
		return httputil.Error(c, http.StatusInternalServerError, "failed to get projects")
	}

	if projects == nil {
		projects = []entity.Project{}
	}
	return httputil.Encode(c, http.StatusOK, projects)
}
