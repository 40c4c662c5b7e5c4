package http

import (
	"net/url"
	"strings"

	"go.uber.org/zap"

	"weather-api/pkg/log"
)

// HTTPLogger interface defines methods for logging HTTP requests and responses
type HTTPLogger interface {
	// LogRequest is called before the request is sent with all request data formed
	LogRequest(method, url string, headers map[string]string)

	// LogResponseSuccess is called immediately after receiving a successful response (non-error HTTP status)
	LogResponseSuccess(method, url string, headers map[string]string, httpStatus int, latency int64)

	// LogResponseError is called after a transport failure, an error HTTP status or an undecodable body
	LogResponseError(method, url string, headers map[string]string, httpStatus int, responseBody string, latency int64, err error)
}

// NopLogger discards everything.
type NopLogger struct{}

func (NopLogger) LogRequest(string, string, map[string]string) {}

func (NopLogger) LogResponseSuccess(string, string, map[string]string, int, int64) {}

func (NopLogger) LogResponseError(string, string, map[string]string, int, string, int64, error) {}

// ZapLogger writes outbound traffic through the application zap logger.
// Query parameters listed in maskedParams are replaced with "***" in logged URLs.
type ZapLogger struct {
	name         string
	maskedParams []string
}

func NewZapLogger(name string, maskedParams ...string) *ZapLogger {
	return &ZapLogger{name: name, maskedParams: maskedParams}
}

func (l *ZapLogger) LogRequest(method, rawURL string, _ map[string]string) {
	log.Debug("outbound request",
		zap.String("client", l.name),
		zap.String("method", method),
		zap.String("url", l.mask(rawURL)))
}

func (l *ZapLogger) LogResponseSuccess(method, rawURL string, _ map[string]string, httpStatus int, latency int64) {
	log.Info("outbound request completed",
		zap.String("client", l.name),
		zap.String("method", method),
		zap.String("url", l.mask(rawURL)),
		zap.Int("status", httpStatus),
		zap.Int64("latency_ms", latency))
}

func (l *ZapLogger) LogResponseError(method, rawURL string, _ map[string]string, httpStatus int, responseBody string, latency int64, err error) {
	log.Warn("outbound request failed",
		zap.String("client", l.name),
		zap.String("method", method),
		zap.String("url", l.mask(rawURL)),
		zap.Int("status", httpStatus),
		zap.String("response", responseBody),
		zap.Int64("latency_ms", latency),
		zap.Error(err))
}

// mask hides sensitive query parameter values.
func (l *ZapLogger) mask(rawURL string) string {
	if len(l.maskedParams) == 0 {
		return rawURL
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	query := u.Query()
	for _, param := range l.maskedParams {
		if query.Has(param) {
			query.Set(param, "***")
		}
	}
	u.RawQuery = query.Encode()
	return strings.Replace(u.String(), "%2A%2A%2A", "***", -1)
}
