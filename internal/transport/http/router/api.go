package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"player-registry/internal/core/server"
	mdw "player-registry/internal/transport/http/middleware"
)

type Options struct {
	RPS          float64
	Burst        int
	PerIP        bool
	Concurrency  int64
	MaxBodyBytes int64
	Timeout      time.Duration
}

func NewAPIEngine(l *zap.Logger, opt Options, mods ...APIModule) *gin.Engine {
	r := server.NewRouter(l)

	limiter := mdw.RateLimit(rate.Limit(opt.RPS), opt.Burst)
	if opt.PerIP {
		limiter = mdw.RateLimitPerIP(rate.Limit(opt.RPS), opt.Burst)
	}
	r.Use(
		mdw.RequestID(),
		mdw.Metrics(),
		mdw.AccessLog(l),
		mdw.Recovery(l),
		limiter,
		mdw.ConcurrencyLimit(opt.Concurrency),
		mdw.MaxBodyBytes(opt.MaxBodyBytes),
		mdw.Timeout(opt.Timeout),
	)

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	var reg Registry
	reg.Register(mods...)
	reg.MountAll(r.Group("/rest"))

	return r
}
