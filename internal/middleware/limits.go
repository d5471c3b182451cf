package middleware

// Limits: request-level caps shared by the HTTP and WebSocket layers
type Limits struct {
	MaxMessageSize    int
	MaxColors         int
	MessagesPerSecond float64
	BurstSize         int
}

// NewLimits: creates a new Limits configuration
func NewLimits(maxMessageSize, maxColors int, messagesPerSecond float64, burstSize int) *Limits {
	return &Limits{
		MaxMessageSize:    maxMessageSize,
		MaxColors:         maxColors,
		MessagesPerSecond: messagesPerSecond,
		BurstSize:         burstSize,
	}
}

// ValidateMessageSize: checks if a message is within the size limit
func (l *Limits) ValidateMessageSize(msgSize int) bool {
	return msgSize <= l.MaxMessageSize
}

// ValidateCount: checks a requested palette size against the cap
func (l *Limits) ValidateCount(count int) bool {
	return count <= l.MaxColors
}
