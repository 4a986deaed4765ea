package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/go-petr/trade-ledger/pkg/configpkg"
)

func TestGetLoggerLevel(t *testing.T) {
	testCases := []struct {
		name   string
		config configpkg.Config
		want   zerolog.Level
	}{
		{name: "Default", config: configpkg.Config{}, want: zerolog.InfoLevel},
		{name: "Development", config: configpkg.Config{Environement: "development"}, want: zerolog.TraceLevel},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, GetLogger(tc.config).GetLevel())
		})
	}
}

func TestLoggingRoundTrip(t *testing.T) {
	var gotRequestID string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotRequestID = r.Header.Get("X-Request-ID")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	client := http.Client{Transport: &LoggingRoundTripper{Logger: logger}}

	res, err := client.Get(server.URL + "/api/org1/customer")
	require.NoError(t, err)
	defer res.Body.Close()

	require.NotEmpty(t, gotRequestID)

	var entry struct {
		Level      string `json:"level"`
		RequestID  string `json:"request_id"`
		Method     string `json:"method"`
		Path       string `json:"path"`
		StatusCode int    `json:"status_code"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	require.Equal(t, "info", entry.Level)
	require.Equal(t, gotRequestID, entry.RequestID)
	require.Equal(t, http.MethodGet, entry.Method)
	require.Equal(t, "/api/org1/customer", entry.Path)
	require.Equal(t, http.StatusOK, entry.StatusCode)
}

func TestLoggingRoundTripServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	client := http.Client{Transport: &LoggingRoundTripper{Logger: logger}}

	res, err := client.Get(server.URL)
	require.NoError(t, err)
	defer res.Body.Close()

	var entry struct {
		Level string `json:"level"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "error", entry.Level)
}
