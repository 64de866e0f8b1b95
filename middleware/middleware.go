// Package middleware holds echo middlewares shared by the in-process API
// servers.
package middleware

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/gitter-badger/talk-5/base/ctx"
	"github.com/gitter-badger/talk-5/base/log"
	"github.com/gitter-badger/talk-5/base/metrics"
)

const ctxKey = "ctx"

type GoMiddleware struct {
	metrics metrics.Service
}

// InitMiddleware names the metrics namespace the response logger reports to.
func InitMiddleware(name string) *GoMiddleware {
	return &GoMiddleware{
		metrics: metrics.New(name),
	}
}

// AddContext stores a ctx.Ctx tagged with the request id under "ctx".
func (m *GoMiddleware) AddContext() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cont := ctx.WithFields(ctx.Background(), log.Fields{
				"requestID": c.Response().Header().Get(echo.HeaderXRequestID),
			})
			c.Set(ctxKey, cont)
			return next(c)
		}
	}
}

// Ctx returns the context set by AddContext, or a background one.
func Ctx(c echo.Context) ctx.Ctx {
	if cont, ok := c.Get(ctxKey).(ctx.Ctx); ok {
		return cont
	}
	return ctx.Background()
}

// ResponseLogger logs one debug line per response.
func (m *GoMiddleware) ResponseLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer m.metrics.BumpTime("request.time", "method", c.Request().Method, "path", c.Path()).End()

			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			fields := log.Fields{
				"ms":         time.Since(start).Seconds() * 1000,
				"httpStatus": c.Response().Status,
				"uri":        req.URL.Path,
				"query":      req.URL.RawQuery,
				"httpMethod": req.Method,
				"size":       c.Response().Size,
			}
			if c.Response().Status >= 400 && err != nil {
				fields["nextErr"] = err
			}
			Ctx(c).WithFields(fields).Debug("response")
			return nil
		}
	}
}
