package httpserver

import (
	"log/slog"
	"net/http"

	"github.com/graphql-go/graphql"
	"github.com/graphql-go/handler"
	"github.com/labstack/echo/v4"

	"github.com/reviewmarket/review_dashboard/internal/logging"
)

type Deps struct {
	Schema *graphql.Schema
	Logger *slog.Logger
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	gh := handler.New(&handler.Config{
		Schema:   d.Schema,
		Pretty:   true,
		GraphiQL: true,
	})

	graphqlRoute := e.Group("/graphql", requestLogger(d.Logger))
	graphqlRoute.POST("", echo.WrapHandler(gh))
	graphqlRoute.GET("", echo.WrapHandler(gh))
}

// requestLogger puts a request-scoped logger into the request context so
// the service layer can pick it up with logging.FromContext.
func requestLogger(l *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			rid := c.Response().Header().Get(echo.HeaderXRequestID)
			ctx := logging.IntoContext(req.Context(), l.With("request_id", rid))
			c.SetRequest(req.WithContext(ctx))
			return next(c)
		}
	}
}
