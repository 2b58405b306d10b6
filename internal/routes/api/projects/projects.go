package routesAPIProjects

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

func CreateHandler(c echo.Context, profileCase profileUseCase.IProfileUseCase, authCase authUseCase.IAuthUseCase) error {
	user, err := authCase.GetUserFromJWTRequest(c)
	if err != nil {
		return err
	}

	request, err := httputil.Decode[entity.CreateProjectRequest](c)
	if err != nil {
		return httputil.Error(c, http.StatusBadRequest, "invalid request")
	}

	if problems := request.Validate(c.Request().Context()); len(problems) != 0 {
		return httputil.BadRequest(c, problems)
	}

	project, err := profileCase.CreateProject(c.Request().Context(), user.ID, request)
	if err != nil {
		return httputil.Error(c, http.StatusInternalServerError, "failed to create project")
	}

	return httputil.Encode(c, http.StatusOK, project)
}

func GetHandler(c echo.Context, profileCase profileUseCase.IProfileUseCase) error {
	projectID := c.Param("projectId")
	if projectID == "" {
		return httputil.Error(c, http.StatusBadRequest, "invalid project ID")
	}

	project, err := profileCase.GetProject(c.Request().Context(), projectID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return httputil.Error(c, http.StatusNotFound, "project not found")
	}
	if err != nil {
		return httputil.Error(c, http.StatusInternalServerError, "failed to get project")
	}

	return httputil.Encode(c, http.StatusOK, project)
}

// UpdateHandler restricts edits to the project's creator.
func UpdateHandler(c echo.Context, profileCase profileUseCase.IProfileUseCase, authCase authUseCase.IAuthUseCase) error {
	user, err := authCase.GetUserFromJWTRequest(c)
	if err != nil {
		return err
	}

	projectID := c.Param("projectId")
	if projectID == "" {
		return httputil.Error(c, http.StatusBadRequest, "invalid project ID")
	}

	existing, err := profileCase.GetProject(c.Request().Context(), projectID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return httputil.Error(c, http.StatusNotFound, "project not found")
	}
	if err != nil {
		return httputil.Error(c, http.StatusInternalServerError, "failed to get project")
	}
	if existing.CreatorID != user.ID {
		return httputil.Error(c, http.StatusForbidden, "cannot edit another user's project")
	}

	fields, err := httputil.Decode[map[string]any](c)
	if err != nil {
		return httputil.Error(c, http.StatusBadRequest, "invalid request")
	}

	project, err := profileCase.UpdateProject(c.Request().Context(), projectID, fields)
	if err != nil {
		return httputil.Error(c, http.StatusInternalServerError, "failed to update project")
	}

	return httputil.Encode(c, http.StatusOK, project)
}
