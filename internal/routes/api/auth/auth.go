package routesAPIAuth

import (
	"net/http"

	"github.com/buildrs/match-engine/internal/entity"
	authUseCase "github.com/buildrs/match-engine/internal/usecase/auth"
	"github.com/buildrs/match-engine/pkg/httputil"
	"github.com/labstack/echo"
)

func SignUpHandler(c echo.Context, authCase authUseCase.IAuthUseCase) error {
	request, err := httputil.Decode[entity.CreateUserRequest](c)
	if err != nil {
		return httputil.Error(c, http.StatusBadRequest, "invalid request")
	}

	if problems := request.Validate(c.Request().Context()); len(problems) != 0 {
		return httputil.BadRequest(c, problems)
	}

	user, err := authCase.SignupUser(c.Request().Context(), request)
	if err != nil {
		return httputil.Error(c, http.StatusInternalServerError, "failed to sign up")
	}

	return httputil.Encode(c, http.StatusOK, entity.SignUpResponse{
		ID:       user.ID,
		Username: user.Username,
		Name:     user.Name,
		Email:    user.Email,
	})
}

func SignInHandler(c echo.Context, authCase authUseCase.IAuthUseCase) error {
	request, err := httputil.Decode[entity.SignInRequest](c)
	if err != nil {
		return httputil.Error(c, http.StatusBadRequest, "invalid request")
	}

	if problems := request.Validate(c.Request().Context()); len(problems) != 0 {
		return httputil.BadRequest(c, problems)
	}

	token, err := authCase.SignIn(c.Request().Context(), request.Email, request.Username, request.Password)
	if err != nil {
		return httputil.Error(c, http.StatusUnauthorized, "invalid credentials")
	}

	return httputil.Encode(c, http.StatusOK, entity.SignInResponse{Token: token})
}
