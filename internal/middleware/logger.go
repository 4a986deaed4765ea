package middleware

import (
	"io"
	"net/http"
	"os"
	"time"

	"github.com/go-petr/trade-ledger/pkg/configpkg"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"
)

// GetLogger builds the application logger from config.
func GetLogger(config configpkg.Config) zerolog.Logger {
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack

	var (
		output   io.Writer = os.Stderr
		logLevel           = zerolog.InfoLevel // default to INFO
	)

	log := zerolog.New(output).
		Level(logLevel).
		With().
		Timestamp().
		Logger()

	if config.Environement == "development" {
		log = log.
			Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).
			Level(zerolog.TraceLevel).
			With().
			Caller().
			Logger()
	}

	return log
}

// LoggingRoundTripper logs every outgoing API request in JSON format and
// tags it with an X-Request-ID.
type LoggingRoundTripper struct {
	Logger zerolog.Logger
	Next   http.RoundTripper
}

// RoundTrip implements http.RoundTripper.
func (rt *LoggingRoundTripper) RoundTrip(r *http.Request) (*http.Response, error) {
	start := time.Now()

	requestID := r.Header.Get("X-Request-ID")
	if requestID == "" {
		requestID = uuid.NewString()
	}

	logger := rt.Logger.With().Str("request_id", requestID).Logger()

	clone := r.Clone(logger.WithContext(r.Context()))
	clone.Header.Set("X-Request-ID", requestID)

	next := rt.Next
	if next == nil {
		next = http.DefaultTransport
	}

	res, err := next.RoundTrip(clone)

	logEvent := logger.Info()

	switch {
	case err != nil:
		logEvent = logger.Error().Err(err)
	case res.StatusCode >= http.StatusInternalServerError:
		logEvent = logger.Error()
	}

	statusCode := 0
	if res != nil {
		statusCode = res.StatusCode
	}

	logEvent.
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Int("status_code", statusCode).
		Str("latency", time.Since(start).String()).
		Send()

	return res, err
}
