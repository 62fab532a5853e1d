package api

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed page
var page embed.FS

// ErrorResponse error response body
type ErrorResponse struct {
	Error string `json:"error"`
}

func (s Server) registeRoute() {
	s.engine.NoRoute(func(c *gin.Context) {
		c.AbortWithStatusJSON(http.StatusNotFound, ErrorResponse{Error: http.StatusText(http.StatusNotFound)})
	})

	static, err := fs.Sub(page, "page/static")
	if err != nil {
		panic(err)
	}
	s.engine.StaticFS("/static", http.FS(static))

	s.engine.GET("/", s.index)

	s.engine.GET("/api/ping", s.ping)

	s.engine.GET("/api/stocks", s.getStocks)

	s.engine.GET("/api/recommendations", s.getRecommendations)
}

func (s Server) index(c *gin.Context) {
	buffer, err := page.ReadFile("page/index.html")
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", buffer)
}

func (s Server) ping(c *gin.Context) {
	c.String(http.StatusOK, "pong")
}
