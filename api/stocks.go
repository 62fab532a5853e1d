package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nzai/stockwatch/constants"
	"github.com/nzai/stockwatch/sources"
	"github.com/nzai/stockwatch/utils"
	"go.uber.org/zap"
)

// getStocks query quotes of comma separated symbols
func (s Server) getStocks(c *gin.Context) {
	symbols := utils.ParseSymbols(c.Query("symbols"))
	if len(symbols) == 0 {
		zap.L().Debug("request without symbols", zap.String("url", c.Request.URL.String()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: constants.NoSymbolsMessage})
		return
	}

	c.JSON(http.StatusOK, s.quoter.Quotes(c.Request.Context(), symbols))
}

// RecommendationsResponse quick add candidates
type RecommendationsResponse struct {
	Recommendations []sources.Listing `json:"recommendations"`
}

func (s Server) getRecommendations(c *gin.Context) {
	c.JSON(http.StatusOK, RecommendationsResponse{Recommendations: s.quoter.Recommendations()})
}
