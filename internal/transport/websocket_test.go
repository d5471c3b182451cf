package transport

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"main/internal/middleware"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dialTestServer(t *testing.T) *websocket.Conn {
	t.Helper()

	ipLimiter := middleware.NewIPRateLimit(600, 10)
	limits := middleware.NewLimits(4096, 512, 100, 100)
	srv := httptest.NewServer(NewStreamHandler("", ipLimiter, limits))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestStreamHandler_GenerateRoundTrip(t *testing.T) {
	conn := dialTestServer(t)

	require.NoError(t, conn.WriteJSON(map[string]interface{}{
		"type":       "generate",
		"algorithm":  "equidistant",
		"count":      6,
		"saturation": 1.0,
		"lightness":  0.5,
	}))

	var resp struct {
		Type      string   `json:"type"`
		Algorithm string   `json:"algorithm"`
		Count     int      `json:"count"`
		Colors    []string `json:"colors"`
	}
	require.NoError(t, conn.ReadJSON(&resp))

	assert.Equal(t, "palette", resp.Type)
	assert.Equal(t, "equidistant", resp.Algorithm)
	assert.Equal(t, 6, resp.Count)
	assert.Equal(t, []string{
		"#ff0000", "#ffff00", "#00ff00", "#00ffff", "#0000ff", "#ff00ff",
	}, resp.Colors)
}

func TestStreamHandler_AlgorithmsMessage(t *testing.T) {
	conn := dialTestServer(t)

	require.NoError(t, conn.WriteJSON(map[string]string{"type": "algorithms"}))

	var resp struct {
		Type       string   `json:"type"`
		Algorithms []string `json:"algorithms"`
	}
	require.NoError(t, conn.ReadJSON(&resp))

	assert.Equal(t, "algorithms", resp.Type)
	assert.Len(t, resp.Algorithms, 5)
}

func TestStreamHandler_ErrorsStayOnConnection(t *testing.T) {
	conn := dialTestServer(t)

	require.NoError(t, conn.WriteJSON(map[string]interface{}{
		"type":      "generate",
		"algorithm": "perlin",
		"count":     4,
	}))

	var errResp struct {
		Type  string `json:"type"`
		Error string `json:"error"`
	}
	require.NoError(t, conn.ReadJSON(&errResp))
	assert.Equal(t, "error", errResp.Type)
	assert.Contains(t, errResp.Error, "unknown algorithm: perlin")

	// The connection survives a bad request
	require.NoError(t, conn.WriteJSON(map[string]interface{}{
		"type":      "generate",
		"algorithm": "golden_ratio",
		"count":     2,
	}))

	var resp struct {
		Type   string   `json:"type"`
		Colors []string `json:"colors"`
	}
	require.NoError(t, conn.ReadJSON(&resp))
	assert.Equal(t, "palette", resp.Type)
	assert.Len(t, resp.Colors, 2)
}

func TestStreamHandler_PingsOverlapResponses(t *testing.T) {
	// Pings fire from their own goroutine while responses are written
	// from the read loop; WriteControl keeps that pair legal. Drive
	// enough traffic through a connection with near-continuous pings
	// that an unsafe concurrent write would kill the stream.
	ipLimiter := middleware.NewIPRateLimit(600, 10)
	limits := middleware.NewLimits(4096, 512, 10000, 10000)
	h := NewStreamHandler("", ipLimiter, limits)
	h.pingPeriod = time.Millisecond

	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	for i := 0; i < 50; i++ {
		require.NoError(t, conn.WriteJSON(map[string]interface{}{
			"type":      "generate",
			"algorithm": "golden_ratio",
			"count":     8,
		}))

		var resp struct {
			Type   string   `json:"type"`
			Colors []string `json:"colors"`
		}
		require.NoError(t, conn.ReadJSON(&resp), "iteration %d", i)
		assert.Equal(t, "palette", resp.Type)
		assert.Len(t, resp.Colors, 8)
	}
}

func TestGetClientIP(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		expected   string
	}{
		{"ip with port", "192.0.2.1:53422", "192.0.2.1"},
		{"ip without port", "192.0.2.1", "192.0.2.1"},
		{"ipv6 with port", "[::1]:53422", "[::1]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/ws", nil)
			req.RemoteAddr = tt.remoteAddr
			assert.Equal(t, tt.expected, GetClientIP(req))
		})
	}
}
