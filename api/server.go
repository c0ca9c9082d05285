package api

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/matt-g-everett/ledtween/easing"
	"github.com/matt-g-everett/ledtween/stream"
)

// ApiResponse wraps every reply.
type ApiResponse struct {
	Status string      `json:"status"`
	Data   interface{} `json:"data,omitempty"`
	Error  string      `json:"error,omitempty"`
}

// StatusResponse reports the live state of the tween registry.
type StatusResponse struct {
	Active  int      `json:"active"`
	Ticks   uint64   `json:"ticks"`
	Presets []string `json:"presets"`
}

// Executor runs a closure on the goroutine that owns the Controller.
type Executor interface {
	Exec(ctx context.Context, fn func(*stream.Controller) error) error
}

// Api serves the control endpoints.
type Api struct {
	exec    Executor
	timeout time.Duration
	router  *gin.Engine
}

// NewApi creates an instance of an Api.
func NewApi(exec Executor) *Api {
	a := new(Api)
	a.exec = exec
	a.timeout = 2 * time.Second
	a.router = gin.New()
	a.router.Use(gin.Recovery(), cors.Default())

	g := a.router.Group("/api")
	g.GET("/status", a.handleStatus)
	g.GET("/easings", a.handleEasings)
	g.POST("/presets/:name/start", a.handleStartPreset)
	g.DELETE("/presets/:name", a.handleStopPreset)

	return a
}

func (a *Api) Handler() http.Handler { return a.router }

// Serve listens on addr until ctx is done.
func (a *Api) Serve(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: a.router}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.timeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("Error shutting down api: %v", err)
		}
	}()

	log.Printf("Listening on %s...", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (a *Api) run(c *gin.Context, fn func(*stream.Controller) error) error {
	ctx, cancel := context.WithTimeout(c.Request.Context(), a.timeout)
	defer cancel()
	return a.exec.Exec(ctx, fn)
}

func (a *Api) fail(c *gin.Context, err error) {
	code := http.StatusInternalServerError
	if errors.Is(err, stream.ErrUnknownPreset) {
		code = http.StatusNotFound
	}
	c.JSON(code, ApiResponse{Status: "error", Error: err.Error()})
}

func (a *Api) handleStatus(c *gin.Context) {
	var resp StatusResponse
	err := a.run(c, func(ctrl *stream.Controller) error {
		resp.Active = ctrl.Registry().Len()
		resp.Ticks = ctrl.Registry().Ticks()
		resp.Presets = ctrl.PresetNames()
		return nil
	})
	if err != nil {
		a.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, ApiResponse{Status: "success", Data: resp})
}

func (a *Api) handleEasings(c *gin.Context) {
	c.JSON(http.StatusOK, ApiResponse{Status: "success", Data: easing.Names()})
}

func (a *Api) handleStartPreset(c *gin.Context) {
	name := c.Param("name")
	if err := a.run(c, func(ctrl *stream.Controller) error { return ctrl.Play(name) }); err != nil {
		a.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, ApiResponse{Status: "success", Data: gin.H{"preset": name}})
}

func (a *Api) handleStopPreset(c *gin.Context) {
	name := c.Param("name")
	var stopped int
	err := a.run(c, func(ctrl *stream.Controller) (err error) {
		stopped, err = ctrl.Stop(name)
		return err
	})
	if err != nil {
		a.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, ApiResponse{Status: "success", Data: gin.H{"preset": name, "stopped": stopped}})
}
