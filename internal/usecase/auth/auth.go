package authUseCase

import (
	"context"
	"net/http"
	"strings"

	"github.com/buildrs/match-engine/internal/entity"
	userRepo "github.com/buildrs/match-engine/internal/repository/user"
	"github.com/buildrs/match-engine/pkg/jwt"
	"github.com/labstack/echo"
	"golang.org/x/crypto/bcrypt"
)

type IAuthUseCase interface {
	SignupUser(ctx context.Context, request entity.CreateUserRequest) (*entity.User, error)
	SignIn(ctx context.Context, email, username, password string) (string, error)
	GetUserFromJWTRequest(c echo.Context) (*entity.User, error)
}

type authUseCase struct {
	userRepo userRepo.IUserRepo
}

func New(userRepo userRepo.IUserRepo) IAuthUseCase {
	return &authUseCase{
		userRepo: userRepo,
	}
}

// SignupUser creates the account plus an empty matching profile, so the
// feed and scoring endpoints work before the user fills anything in.
func (p *authUseCase) SignupUser(ctx context.Context, authData entity.CreateUserRequest) (*entity.User, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(authData.Password+authData.Email), 12)
	if err != nil {
		return nil, err
	}

	user, err := p.userRepo.CreateUser(ctx, entity.User{
		Name:     authData.Name,
		Email:    authData.Email,
		Username: authData.Username,
		Password: string(hashedPassword),
	})
	if err != nil {
		return nil, err
	}

	_, err = p.userRepo.CreateProfile(ctx, entity.Profile{
		UserID: user.ID,
		Name:   user.Name,
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (p *authUseCase) SignIn(ctx context.Context, email, username, password string) (string, error) {
	user, err := p.userRepo.GetUserByUnameOrEmail(ctx, email, username)
	if err != nil {
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password+user.Email)); err != nil {
		return "", err
	}

	return jwt.CreateToken(user.ID, user.Username)
}

func (p *authUseCase) GetUserFromJWTRequest(c echo.Context) (*entity.User, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nil, c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing token"})
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid token format"})
	}

	claims, err := jwt.ValidateToken(parts[1])
	if err != nil {
		return nil, c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid token"})
	}

	return p.userRepo.GetUserByID(c.Request().Context(), claims.UserID)
}
