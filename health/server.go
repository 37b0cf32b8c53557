// Package health serves the liveness endpoint the hosting platform polls.
package health

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const statusPage = `<html>
    <head><title>Insurance Bot</title></head>
    <body>
        <h1>🤖 Бот страхования работает!</h1>
        <p>Insurance Bot is ONLINE and ready to receive applications.</p>
        <p>🕒 Статус: <strong>Активен</strong></p>
        <p>📅 Время сервера: %s</p>
    </body>
</html>`

// Server is the HTTP liveness server.
type Server struct {
	server *http.Server
}

func New(port string) *Server {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())

	engine.GET("/", func(c *gin.Context) {
		now := time.Now().Format("2006-01-02 15:04:05")
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(fmt.Sprintf(statusPage, now)))
	})

	return &Server{
		server: &http.Server{
			Addr:    ":" + port,
			Handler: engine,
		},
	}
}

// Run starts the server and blocks until it stops.
func (s *Server) Run() error {
	return s.server.ListenAndServe()
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
