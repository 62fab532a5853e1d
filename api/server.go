package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/nzai/stockwatch/quoter"
	"go.uber.org/zap"
)

// Server api server
type Server struct {
	engine *gin.Engine
	quoter *quoter.Quoter
}

// NewServer create api server
func NewServer(q *quoter.Quoter, enablePprof bool) *Server {
	gin.SetMode(gin.ReleaseMode)
	server := &Server{
		engine: gin.New(),
		quoter: q,
	}

	zap.L().Debug("init gin success")

	server.engine.Use(server.requestID(), server.logger(), server.recovery())

	if enablePprof {
		pprof.Register(server.engine, "/debug/pprof")
	}

	server.registeRoute()

	zap.L().Debug("register route success")

	return server
}

// Run listen on address until ctx done, then shutdown gracefully
func (s Server) Run(ctx context.Context, address string) error {
	httpServer := &http.Server{
		Addr:              address,
		Handler:           s.engine,
		ReadHeaderTimeout: time.Second * 5,
		ReadTimeout:       time.Second * 15,
		WriteTimeout:      time.Second * 20,
		IdleTimeout:       time.Second * 60,
	}

	ch := make(chan error, 1)
	go func() {
		zap.L().Info("listen address", zap.String("address", address))
		ch <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-ch:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	zap.L().Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	return httpServer.Shutdown(shutdownCtx)
}

func (s Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.engine.ServeHTTP(w, r)
}
