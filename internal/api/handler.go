package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/cryptopulse/internal/analytics"
	"github.com/guttosm/cryptopulse/internal/domain/dto"
	"github.com/guttosm/cryptopulse/internal/service"
)

// Handler provides HTTP handlers for the crypto statistics endpoints.
//
// Responsibilities:
//   - Validate incoming path parameters
//   - Interact with the service layer
//   - Translate service results into response DTOs
//   - Return structured JSON responses with appropriate HTTP status codes
type Handler struct {
	svc service.CryptoService
}

// NewHandler constructs a new Handler instance.
func NewHandler(svc service.CryptoService) *Handler {
	return &Handler{svc: svc}
}

// GetCryptoStats handles GET /api/v1/cryptos/:symbol/stats requests.
//
// GetCryptoStats godoc
// @Summary      Get statistics for a symbol
// @Description  Returns oldest, newest, minimum and maximum price for the given symbol
// @Tags         cryptos
// @Produce      json
// @Param        symbol  path      string  true  "Crypto symbol"  example(BTC)
// @Success      200     {object}  dto.CryptoStatsResponse  "Success"
// @Failure      400     {object}  dto.ErrorResponse        "Bad Request"
// @Failure      404     {object}  dto.ErrorResponse        "Not Found"
// @Failure      500     {object}  dto.ErrorResponse        "Internal Error"
// @Router       /api/v1/cryptos/{symbol}/stats [get]
func (h *Handler) GetCryptoStats(c *gin.Context) {
	// Symbols are stored verbatim; only surrounding whitespace is dropped.
	symbol := strings.TrimSpace(c.Param("symbol"))
	if symbol == "" {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("symbol is required", nil))
		return
	}

	stats, err := h.svc.StatsFor(c.Request.Context(), symbol)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to fetch stats", err))
		return
	}
	if stats == nil {
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("no data found for symbol", nil))
		return
	}

	c.JSON(http.StatusOK, dto.NewCryptoStatsResponse(*stats))
}

// GetRanking handles GET /api/v1/ranking requests.
//
// GetRanking godoc
// @Summary      Rank symbols by normalized range
// @Description  Returns all stored symbols sorted descending by (max-min)/min
// @Tags         ranking
// @Produce      json
// @Success      200  {array}   dto.NormalizedRangeResponse  "Success"
// @Failure      500  {object}  dto.ErrorResponse            "Internal Error"
// @Router       /api/v1/ranking [get]
func (h *Handler) GetRanking(c *gin.Context) {
	ranking, err := h.svc.RankedBySymbol(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to compute ranking", err))
		return
	}

	resp := make([]dto.NormalizedRangeResponse, 0, len(ranking))
	for _, entry := range ranking {
		resp = append(resp, dto.NewNormalizedRangeResponse(entry))
	}

	c.JSON(http.StatusOK, resp)
}

// GetHighestRange handles GET /api/v1/ranking/top requests.
//
// GetHighestRange godoc
// @Summary      Get the symbol with the highest normalized range
// @Description  Returns the top entry of the global ranking
// @Tags         ranking
// @Produce      json
// @Success      200  {object}  dto.NormalizedRangeResponse  "Success"
// @Failure      404  {object}  dto.ErrorResponse            "Not Found"
// @Failure      500  {object}  dto.ErrorResponse            "Internal Error"
// @Router       /api/v1/ranking/top [get]
func (h *Handler) GetHighestRange(c *gin.Context) {
	top, err := h.svc.HighestRange(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to compute ranking", err))
		return
	}
	if top == nil {
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("no data found", nil))
		return
	}

	c.JSON(http.StatusOK, dto.NewNormalizedRangeResponse(*top))
}

// GetDayWinner handles GET /api/v1/ranking/day/:date requests.
//
// A malformed date yields 400; a well-formed day without observations
// yields 404, so clients can tell the two apart.
//
// GetDayWinner godoc
// @Summary      Get the day's highest normalized range
// @Description  Returns the symbol with the highest normalized range among observations of one UTC day
// @Tags         ranking
// @Produce      json
// @Param        date  path      string  true  "Day in YYYY-MM-DD"  example(2022-01-01)
// @Success      200   {object}  dto.DayWinnerResponse  "Success"
// @Failure      400   {object}  dto.ErrorResponse      "Bad Request"
// @Failure      404   {object}  dto.ErrorResponse      "Not Found"
// @Failure      500   {object}  dto.ErrorResponse      "Internal Error"
// @Router       /api/v1/ranking/day/{date} [get]
func (h *Handler) GetDayWinner(c *gin.Context) {
	date := c.Param("date")

	winner, err := h.svc.HighestRangeForDay(c.Request.Context(), date)
	if err != nil {
		if errors.Is(err, analytics.ErrInvalidDate) {
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid date format, expected YYYY-MM-DD", err))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to compute day winner", err))
		return
	}
	if winner == nil {
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("no records found for the specified date", nil))
		return
	}

	c.JSON(http.StatusOK, dto.NewDayWinnerResponse(*winner))
}
