package routesAPIMatches

import (
	"errors"
	"net/http"

	"github.com/buildrs/match-engine/internal/entity"
	authUseCase "github.com/buildrs/match-engine/internal/usecase/auth"
	swipeUseCase "github.com/buildrs/match-engine/internal/usecase/swipe"
	"github.com/buildrs/match-engine/pkg/httputil"
	"github.com/labstack/echo"
	"gorm.io/gorm"
)

func ListHandler(c echo.Context, swipeCase swipeUseCase.ISwipeUseCase) error {
	userID := c.Param("userId")
	if userID == "" {
		return httputil.Error(c, http.StatusBadRequest, "invalid user ID")
	}

	matches, err := swipeCase.GetMatches(c.Request().Context(), userID)
	if err != nil {
		return httputil.Error(c, http.StatusInternalServerError, "failed to get matches")
	}

	if matches == nil {
		matches = []entity.Match{}
	}
	return httputil.Encode(c, http.StatusOK, matches)
}

// UpdateStatusHandler only lets a participant of the match change its status.
func UpdateStatusHandler(c echo.Context, swipeCase swipeUseCase.ISwipeUseCase, authCase authUseCase.IAuthUseCase) error {
	user, err := authCase.GetUserFromJWTRequest(c)
	if err != nil {
		return err
	}

	matchID := c.Param("matchId")
	if matchID == "" {
		return httputil.Error(c, http.StatusBadRequest, "invalid match ID")
	}

	match, err := swipeCase.GetMatch(c.Request().Context(), matchID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return httputil.Error(c, http.StatusNotFound, "match not found")
	}
	if err != nil {
		return httputil.Error(c, http.StatusInternalServerError, "failed to get match")
	}
	if user.ID != match.User1ID && user.ID != match.User2ID {
		return httputil.Error(c, http.StatusForbidden, "cannot update another user's match")
	}

	request, err := httputil.Decode[entity.UpdateMatchStatusRequest](c)
	if err != nil {
		return httputil.Error(c, http.StatusBadRequest, "invalid request")
	}

	if problems := request.Validate(c.Request().Context()); len(problems) != 0 {
		return httputil.BadRequest(c, problems)
	}

	match, err = swipeCase.UpdateMatchStatus(c.Request().Context(), matchID, request.Status)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return httputil.Error(c, http.StatusNotFound, "match not found")
	}
	if err != nil {
		return httputil.Error(c, http.StatusInternalServerError, "failed to update match")
	}

	return httputil.Encode(c, http.StatusOK, match)
}
