package server

import (
	"context"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	ginprometheus "github.com/zsais/go-gin-prometheus"
	"k8s.io/klog/v2"

	"github.com/seqcast/seqcast/pkg/server/config"
	"github.com/seqcast/seqcast/pkg/server/ginwrapper"
	"github.com/seqcast/seqcast/pkg/server/middleware"
	"github.com/seqcast/seqcast/pkg/version"
)

const shutdownTimeout = 5 * time.Second

type apiServer struct {
	// wrapper for gin.Engine
	*gin.Engine

	config *config.Config

	insecureServer *http.Server
}

func NewAPIServer(cfg *config.Config) (*apiServer, error) {
	gin.SetMode(cfg.Mode)
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, nuHandlers int) {
		klog.Infof("%-6s %-s --> %s (%d handlers)", httpMethod, absolutePath, handlerName, nuHandlers)
	}

	server := &apiServer{
		config: cfg,
		Engine: gin.New(),
	}

	return server, nil
}

func (s *apiServer) installGenericAPIs() {
	// install metric handler
	if s.config.EnableMetrics {
		prometheus := ginprometheus.NewPrometheus("gin")
		prometheus.Use(s.Engine)
	}

	// install pprof handler
	if s.config.EnableProfiling {
		pprof.Register(s.Engine)
	}

	// install healthz handler
	s.GET("/healthz", func(c *gin.Context) {
		ginwrapper.WriteResponse(c, nil, map[string]string{"status": "ok"})
	})
	// install version handler
	s.GET("/version", func(c *gin.Context) {
		ginwrapper.WriteResponse(c, nil, version.GetVersionInfo())
	})
}

func (s *apiServer) installDefaultMiddlewares() {
	for m, mw := range middleware.Middlewares {
		klog.Infof("install seqcast api server middleware: %s", m)
		s.Use(mw)
	}
}

// Run serves the API until the context is cancelled, then shuts down
// gracefully.
func (s *apiServer) Run(ctx context.Context) error {
	s.installDefaultMiddlewares()
	s.installGenericAPIs()
	s.initRouter()

	addr := net.JoinHostPort(s.config.BindAddress, strconv.Itoa(s.config.BindPort))
	s.insecureServer = &http.Server{
		Addr:    addr,
		Handler: s.Engine,
	}

	errCh := make(chan error, 1)
	go func() {
		klog.Infof("seqcast api server serving on %s", addr)
		if err := s.insecureServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.insecureServer.Shutdown(shutdownCtx); err != nil {
		klog.ErrorS(err, "Failed to shut down api server gracefully.")
		return err
	}
	klog.Info("seqcast api server stopped")
	return nil
}
