package routesAPISwipes

import (
	"net/http"
	"strconv"

	"github.com/buildrs/match-engine/internal/entity"
	feedUseCase "github.com/buildrs/match-engine/internal/usecase/feed"
	swipeUseCase "github.com/buildrs/match-engine/internal/usecase/swipe"
	"github.com/buildrs/match-engine/pkg/httputil"
	"github.com/labstack/echo"
)

func RecordSwipeHandler(c echo.Context, swipeCase swipeUseCase.ISwipeUseCase) error {
	request, err := httputil.Decode[entity.CreateSwipeRequest](c)
	if err != nil {
		return httputil.Error(c, http.StatusBadRequest, "invalid request")
	}

	if problems := request.Validate(c.Request().Context()); len(problems) != 0 {
		return httputil.BadRequest(c, problems)
	}

	result, err := swipeCase.RecordSwipe(c.Request().Context(), request)
	if err != nil {
		return httputil.Error(c, http.StatusInternalServerError, "failed to record swipe")
	}

	return httputil.Encode(c, http.StatusOK, result)
}

func HistoryHandler(c echo.Context, swipeCase swipeUseCase.ISwipeUseCase) error {
	userID := c.Param("userId")
	if userID == "" {
		return httputil.Error(c, http.StatusBadRequest, "invalid user ID")
	}

	history, err := swipeCase.GetSwipeHistory(c.Request().Context(), userID)
	if err != nil {
		return httputil.Error(c, http.StatusInternalServerError, "failed to get swipe history")
	}

	if history == nil {
		history = []entity.Swipe{}
	}
	return httputil.Encode(c, http.StatusOK, history)
}

func CardsHandler(c echo.Context, feedCase feedUseCase.IFeedUseCase) error {
	userID := c.QueryParam("userId")
	if userID == "" {
		return httputil.Error(c, http.StatusBadRequest, "invalid user ID")
	}

	cardType := c.QueryParam("type")
	if cardType == "" {
		cardType = feedUseCase.CardTypeMixed
	}
	if cardType != feedUseCase.CardTypeProfile && cardType != feedUseCase.CardTypeProject && cardType != feedUseCase.CardTypeMixed {
		return httputil.Error(c, http.StatusBadRequest, "invalid card type")
	}

	limit := 20
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 100 {
			return httputil.Error(c, http.StatusBadRequest, "invalid limit")
		}
		limit = parsed
	}

	cards, err := feedCase.GetPersonalizedCards(c.Request().Context(), userID, cardType, limit)
	if err != nil {
		return httputil.Error(c, http.StatusInternalServerError, "failed to get cards")
	}

	if cards == nil {
		cards = []entity.SwipeCard{}
	}
	return httputil.Encode(c, http.StatusOK, cards)
}

func RecommendationsHandler(c echo.Context, feedCase feedUseCase.IFeedUseCase) error {
	userID := c.Param("userId")
	if userID == "" {
		return httputil.Error(c, http.StatusBadRequest, "invalid user ID")
	}

	recType := c.QueryParam("type")
	if recType != "projects" && recType != "collaborators" {
		return httputil.Error(c, http.StatusBadRequest, "invalid recommendation type")
	}

	cards, err := feedCase.GetRecommendations(c.Request().Context(), userID, recType)
	if err != nil {
		return httputil.Error(c, http.StatusInternalServerError, "failed to get recommendations")
	}

	if cards == nil {
		cards = []entity.SwipeCard{}
	}
	return httputil.Encode(c, http.StatusOK, cards)
}

func StatsHandler(c echo.Context, swipeCase swipeUseCase.ISwipeUseCase) error {
	userID := c.Param("userId")
	if userID == "" {
		return httputil.Error(c, http.StatusBadRequest, "invalid user ID")
	}

	stats, err := swipeCase.GetSwipeStats(c.Request().Context(), userID)
	if err != nil {
		return httputil.Error(c, http.StatusInternalServerError, "failed to get swipe stats")
	}

	return httputil.Encode(c, http.StatusOK, stats)
}
