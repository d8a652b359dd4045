package sentry

import (
	"fmt"
	"os"
	"time"

	sentrygo "github.com/getsentry/sentry-go"
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo/v4"
)

// FlushTime is how long fatal reports wait for delivery before giving up.
var FlushTime = 2 * time.Second

// Sentry is a builder for one report. Zero value is usable; chain With*
// methods and finish with a level method (Info, Error, Fatal, ...).
type Sentry struct {
	context       echo.Context
	error         error
	message       string
	level         sentrygo.Level
	extras        map[string]interface{}
	tags          map[string]string
	contextValues map[string]sentrygo.Context
}

func WithContext(c echo.Context) *Sentry {
	return new(Sentry).WithContext(c)
}

func WithExtras(extras map[string]interface{}) *Sentry {
	return new(Sentry).WithExtras(extras)
}

func WithTags(tags map[string]string) *Sentry {
	return new(Sentry).WithTags(tags)
}

func WithContextValues(values map[string]sentrygo.Context) *Sentry {
	return new(Sentry).WithContextValues(values)
}

func (s *Sentry) WithContext(c echo.Context) *Sentry {
	s.context = c
	return s
}

func (s *Sentry) WithError(err error) *Sentry {
	s.error = err
	return s
}

func (s *Sentry) WithMessage(message string) *Sentry {
	s.message = message
	return s
}

func (s *Sentry) WithLevel(level sentrygo.Level) *Sentry {
	s.level = level
	return s
}

func (s *Sentry) WithExtras(extras map[string]interface{}) *Sentry {
	s.extras = extras
	return s
}

func (s *Sentry) WithTags(tags map[string]string) *Sentry {
	s.tags = tags
	return s
}

func (s *Sentry) WithContextValues(values map[string]sentrygo.Context) *Sentry {
	s.contextValues = values
	return s
}

func (s *Sentry) Debug(message string) {
	s.WithMessage(message).WithLevel(sentrygo.LevelDebug).sendMessage()
}

func (s *Sentry) Debugf(format string, args ...interface{}) {
	s.Debug(fmt.Sprintf(format, args...))
}

func (s *Sentry) Info(message string) {
	s.WithMessage(message).WithLevel(sentrygo.LevelInfo).sendMessage()
}

func (s *Sentry) Infof(format string, args ...interface{}) {
	s.Info(fmt.Sprintf(format, args...))
}

func (s *Sentry) Warning(message string) {
	s.WithMessage(message).WithLevel(sentrygo.LevelWarning).sendMessage()
}

func (s *Sentry) Warningf(format string, args ...interface{}) {
	s.Warning(fmt.Sprintf(format, args...))
}

func (s *Sentry) Error(err error) {
	s.WithError(err).WithLevel(sentrygo.LevelError).sendError()
}

func (s *Sentry) Errorf(format string, args ...interface{}) {
	s.Error(fmt.Errorf(format, args...))
}

// Fatal reports with fatal level and blocks up to FlushTime so the event is
// not lost when the process exits right after.
func (s *Sentry) Fatal(err error) {
	s.WithError(err).WithLevel(sentrygo.LevelFatal).sendError()
	sentrygo.Flush(FlushTime)
}

func (s *Sentry) Fatalf(format string, args ...interface{}) {
	s.Fatal(fmt.Errorf(format, args...))
}

func (s *Sentry) sendMessage() {
	if skipSending() {
		return
	}

	s.getHub().WithScope(func(scope *sentrygo.Scope) {
		s.configScope(scope)
		s.getHub().CaptureMessage(s.message)
	})
}

func (s *Sentry) sendError() {
	if skipSending() {
		return
	}

	s.getHub().WithScope(func(scope *sentrygo.Scope) {
		s.configScope(scope)
		s.getHub().CaptureException(s.error)
	})
}

// getHub prefers the request-scoped hub installed by the sentry-echo
// middleware so events carry request data.
func (s *Sentry) getHub() *sentrygo.Hub {
	if s.context != nil {
		if hub := sentryecho.GetHubFromContext(s.context); hub != nil {
			return hub
		}
	}
	return sentrygo.CurrentHub()
}

func (s *Sentry) configScope(scope *sentrygo.Scope) {
	scope.SetLevel(s.level)

	for key, value := range s.extras {
		scope.SetExtra(key, value)
	}
	for key, value := range s.tags {
		scope.SetTag(key, value)
	}
	for key, value := range s.contextValues {
		scope.SetContext(key, value)
	}
}

func skipSending() bool {
	return os.Getenv("APP_ENV") == "local" || os.Getenv("SENTRY_DSN") == ""
}

func Debug(message string)                        { new(Sentry).Debug(message) }
func Debugf(format string, args ...interface{})   { new(Sentry).Debugf(format, args...) }
func Info(message string)                         { new(Sentry).Info(message) }
func Infof(format string, args ...interface{})    { new(Sentry).Infof(format, args...) }
func Warning(message string)                      { new(Sentry).Warning(message) }
func Warningf(format string, args ...interface{}) { new(Sentry).Warningf(format, args...) }
func Error(err error)                             { new(Sentry).Error(err) }
func Errorf(format string, args ...interface{})   { new(Sentry).Errorf(format, args...) }
func Fatal(err error)                             { new(Sentry).Fatal(err) }
func Fatalf(format string, args ...interface{})   { new(Sentry).Fatalf(format, args...) }
