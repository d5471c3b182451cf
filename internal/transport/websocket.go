package transport

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"main/internal/middleware"
	"main/internal/palette"

	"github.com/gorilla/websocket"
	"golang.org/x/time/rate"
)

const (
	pongWait          = 60 * time.Second
	defaultPingPeriod = (pongWait * 9) / 10 // Send pings at 90% of pong deadline
	writeWait         = 10 * time.Second
)

// StreamHandler: upgrades palette clients to WebSocket and serves
// generate requests over the connection, so a UI can re-render live
// while the user drags sliders.
type StreamHandler struct {
	upgrader   websocket.Upgrader
	ipLimiter  *middleware.IPRateLimit
	limits     *middleware.Limits
	pingPeriod time.Duration
}

// NewStreamHandler: creates the handler with its origin whitelist
func NewStreamHandler(allowedDomains string, ipLimiter *middleware.IPRateLimit, limits *middleware.Limits) *StreamHandler {
	domains := strings.Split(allowedDomains, ",")

	return &StreamHandler{
		upgrader: websocket.Upgrader{
			// CORS
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("origin")

				for _, allowed := range domains {
					if origin == strings.TrimSpace(allowed) {
						return true
					}
				}

				return false
			},
		},
		ipLimiter:  ipLimiter,
		limits:     limits,
		pingPeriod: defaultPingPeriod,
	}
}

// GetClientIP: extracts the real client IP from the request
func GetClientIP(r *http.Request) string {
	// Use RemoteAddr only - cannot be spoofed by client
	ip := r.RemoteAddr
	if idx := strings.LastIndex(ip, ":"); idx != -1 {
		ip = ip[:idx] // Remove port
	}
	return ip
}

func (h *StreamHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// Check if rate limited
	clientIP := GetClientIP(r)
	if !h.ipLimiter.Allow(clientIP) {
		log.Printf("Rate limit exceeded for IP: %s", clientIP)
		http.Error(w, "Too many connections", http.StatusTooManyRequests)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("Error: Failed to upgrade connection - %v", err)
		return
	}
	defer conn.Close()

	h.run(conn)
}

// run: message loop for WebSocket connections
func (h *StreamHandler) run(conn *websocket.Conn) {
	// Extend the read deadline whenever a pong arrives
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	pingTicker := time.NewTicker(h.pingPeriod)
	defer pingTicker.Stop()

	done := make(chan struct{})
	defer close(done)

	// Ping goroutine. Response writes happen on the read-loop
	// goroutine, and WriteControl is the only write gorilla allows
	// concurrently with them.
	go func() {
		for {
			select {
			case <-pingTicker.C:
				if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
					return // Connection dead
				}
			case <-done:
				return
			}
		}
	}()

	// Per-connection message throttle
	limiter := rate.NewLimiter(rate.Limit(h.limits.MessagesPerSecond), h.limits.BurstSize)

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			break // Connection dead
		}

		if !h.limits.ValidateMessageSize(len(msg)) {
			log.Printf("Message too large from %s: %d bytes", conn.RemoteAddr(), len(msg))
			continue // Drop oversized message
		}

		if !limiter.Allow() {
			continue // Drop message
		}

		if err := h.handleMessage(conn, msg); err != nil {
			log.Printf("Error handling message from %s: %v", conn.RemoteAddr(), err)
			h.writeError(conn, err)
		}
	}
}

// streamRequest: one client message on the palette stream
type streamRequest struct {
	Type       string   `json:"type"`
	Algorithm  string   `json:"algorithm"`
	Count      int      `json:"count"`
	Saturation *float64 `json:"saturation"`
	Lightness  *float64 `json:"lightness"`
	Offset     float64  `json:"offset"`
	Analyze    bool     `json:"analyze"`
}

// handleMessage: routes a message to the palette core
func (h *StreamHandler) handleMessage(conn *websocket.Conn, msg []byte) error {
	var req streamRequest
	if err := json.Unmarshal(msg, &req); err != nil {
		return fmt.Errorf("unmarshal message: %w", err)
	}

	switch req.Type {
	case "generate":
		return h.handleGenerate(conn, req)
	case "algorithms":
		return h.write(conn, map[string]interface{}{
			"type":       "algorithms",
			"algorithms": palette.Names(),
		})
	default:
		return fmt.Errorf("unknown message type: %s", req.Type)
	}
}

// handleGenerate: produces one palette and writes it back
func (h *StreamHandler) handleGenerate(conn *websocket.Conn, req streamRequest) error {
	if !h.limits.ValidateCount(req.Count) {
		return fmt.Errorf("count exceeds maximum of %d", h.limits.MaxColors)
	}

	paletteReq := palette.NewRequest(req.Count)
	paletteReq.Offset = req.Offset
	if req.Saturation != nil {
		paletteReq.Saturation = *req.Saturation
	}
	if req.Lightness != nil {
		paletteReq.Lightness = *req.Lightness
	}

	colors, err := palette.GenerateByName(req.Algorithm, paletteReq)
	if err != nil {
		return err
	}

	response := map[string]interface{}{
		"type":      "palette",
		"algorithm": req.Algorithm,
		"count":     req.Count,
		"colors":    colors,
	}
	if req.Analyze {
		analysis, err := palette.Analyze(colors)
		if err != nil {
			return err
		}
		response["analysis"] = analysis
	}

	return h.write(conn, response)
}

// write: marshals and sends one message
func (h *StreamHandler) write(conn *websocket.Conn, body map[string]interface{}) error {
	msg, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal response: %w", err)
	}
	return conn.WriteMessage(websocket.TextMessage, msg)
}

// writeError: reports a request failure to the client without closing
func (h *StreamHandler) writeError(conn *websocket.Conn, reqErr error) {
	if err := h.write(conn, map[string]interface{}{
		"type":  "error",
		"error": reqErr.Error(),
	}); err != nil {
		log.Printf("Error: Failed to send error response - %v", err)
	}
}
