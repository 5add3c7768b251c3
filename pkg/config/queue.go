package config

import "time"

// QueueConfig contains audit queue and worker pool configuration.
type QueueConfig struct {
	// WorkerCount is the number of audit worker goroutines per instance.
	WorkerCount int

	// MaxAttempts is the per-job attempt budget before escalation.
	MaxAttempts int

	// BackoffBase is the first retry delay; it doubles per attempt.
	BackoffBase time.Duration

	// BackoffMax caps the retry delay.
	BackoffMax time.Duration

	// CompletedRetention is how many completed jobs are kept for
	// inspection. Failed jobs are retained forever.
	CompletedRetention int

	// PollInterval is the BRPOP timeout; it also bounds how quickly a
	// worker notices shutdown.
	PollInterval time.Duration

	// ScheduledScanInterval is how often due retries are promoted from the
	// scheduled set to the ready list.
	ScheduledScanInterval time.Duration

	// GracefulShutdownTimeout is the max wait for in-flight jobs on Stop.
	GracefulShutdownTimeout time.Duration
}

// DefaultQueueConfig returns the built-in audit queue defaults.
func DefaultQueueConfig() *QueueConfig {
	return &QueueConfig{
		WorkerCount:             10,
		MaxAttempts:             5,
		BackoffBase:             2 * time.Second,
		BackoffMax:              32 * time.Second,
		CompletedRetention:      100,
		PollInterval:            time.Second,
		ScheduledScanInterval:   500 * time.Millisecond,
		GracefulShutdownTimeout: 15 * time.Second,
	}
}

// HubConfig contains WebSocket hub configuration.
type HubConfig struct {
	// HeartbeatBrowser is the ping interval for browser user agents.
	HeartbeatBrowser time.Duration

	// HeartbeatMobile is the ping interval for mobile user agents.
	HeartbeatMobile time.Duration

	// MissedPongLimit closes the socket (1011) when this many consecutive
	// pings go unanswered.
	MissedPongLimit int

	// MaxPayloadBytes is the read limit; larger frames close with 1009.
	MaxPayloadBytes int64

	// MaxMessagesPerMinute is the per-connection client message budget;
	// violators close with 1008.
	MaxMessagesPerMinute int

	// MaxConnections is the per-instance socket cap.
	MaxConnections int

	// MaxConnPerIPPerMinute is the connection-attempt quota per client IP.
	MaxConnPerIPPerMinute int

	// SendQueueLen bounds the per-connection outbound queue; a full queue
	// marks the consumer slow and disconnects it.
	SendQueueLen int

	// WriteTimeout bounds a single WebSocket write.
	WriteTimeout time.Duration
}

// DefaultHubConfig returns the built-in hub defaults.
func DefaultHubConfig() *HubConfig {
	return &HubConfig{
		HeartbeatBrowser:      15 * time.Second,
		HeartbeatMobile:       30 * time.Second,
		MissedPongLimit:       2,
		MaxPayloadBytes:       10 * 1024,
		MaxMessagesPerMinute:  100,
		MaxConnections:        10000,
		MaxConnPerIPPerMinute: 5,
		SendQueueLen:          100,
		WriteTimeout:          10 * time.Second,
	}
}
