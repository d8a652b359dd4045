package httpserver

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"catalog/auth"
	"catalog/errs"
	"catalog/movie"
	"catalog/pkg/config"
	"catalog/pkg/logger"
	"catalog/pkg/sentry"

	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

type Server struct {
	// Router is the Echo router instance
	Router *echo.Echo

	// Addr represents the address the server will listen on
	Addr string

	// Allowed origins for CORS
	AllowOrigins []string

	Logger *zap.SugaredLogger

	MovieService movie.Service

	// Policy gates mutating routes. Defaults to the admin role policy.
	Policy auth.Policy
}

func Default(cfg *config.Config) *Server {
	s := Server{
		Router:       echo.New(),
		Addr:         ":8080",
		AllowOrigins: []string{"*"},
		Logger:       logger.NOOPLogger,
		Policy:       auth.NewAdminPolicy(),
	}

	if cfg.AllowOrigins != "" {
		s.AllowOrigins = strings.Split(cfg.AllowOrigins, ",")
	}

	s.Router.Validator = NewValidator()
	s.Router.HTTPErrorHandler = s.handleHTTPError
	s.RegisterGlobalMiddlewares()

	s.RegisterMovieRoutes(s.Router.Group("/api"))
	s.RegisterHealthRoutes()
	return &s
}

func (s *Server) RegisterGlobalMiddlewares() {
	s.Router.Use(middleware.Recover())
	s.Router.Use(middleware.Secure())
	s.Router.Use(middleware.RequestID())
	s.Router.Use(middleware.Gzip())
	s.Router.Use(sentryecho.New(sentryecho.Options{Repanic: true}))

	// CORS
	if len(s.AllowOrigins) > 0 {
		s.Router.Use(middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins: s.AllowOrigins,
		}))
	}
}

func (s *Server) Start() error {
	return s.Router.Start(s.Addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.Router.Shutdown(ctx)
}

// handleHTTPError maps application errors to HTTP status codes. Every error
// body is a JSON object with a message field; 5xx responses get a generic
// message and are logged and reported instead.
func (s *Server) handleHTTPError(err error, c echo.Context) {
	code := http.StatusInternalServerError
	message := "Internal server error"

	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		message = fmt.Sprint(he.Message)
	} else {
		switch errs.ErrorCode(err) {
		case errs.EINVALID:
			code = http.StatusBadRequest
			message = errs.ErrorMessage(err)
		case errs.EFORBIDDEN:
			code = http.StatusForbidden
			message = errs.ErrorMessage(err)
		case errs.ENOTFOUND:
			code = http.StatusNotFound
			message = errs.ErrorMessage(err)
		case errs.ECONFLICT:
			code = http.StatusConflict
			message = errs.ErrorMessage(err)
		case errs.EUNAUTHORIZED:
			code = http.StatusUnauthorized
			message = errs.ErrorMessage(err)
		case errs.ENOTIMPLEMENTED:
			code = http.StatusNotImplemented
			message = errs.ErrorMessage(err)
		}
	}

	if code >= http.StatusInternalServerError {
		s.Logger.Errorw(
			err.Error(),
			zap.String("request_id", s.requestID(c)),
		)
		sentry.WithContext(c).Error(err)
	}

	// Don't write response if already committed
	if !c.Response().Committed {
		if werr := c.JSON(code, map[string]string{"message": message}); werr != nil {
			c.Logger().Error(werr)
		}
	}
}

func (s *Server) requestID(c echo.Context) string {
	return c.Response().Header().Get(echo.HeaderXRequestID)
}
