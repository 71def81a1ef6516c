package mqtt

// Telemetry topics published by the daemon
const (
	// TopicStatus carries retained lifecycle messages (started/stopped)
	TopicStatus = "wallpaper/status"

	// TopicTransition carries one message per rendered frame: the image
	// pair, the blend fraction and the sun window used for the tick
	TopicTransition = "wallpaper/transition"
)
