package logger

// Log level names accepted by Config.Level.
const (
	Debug   = "debug"
	Info    = "info"
	Warning = "warning"
	Error   = "error"
)

// Config controls the behavior of the Zap-backed logger.
type Config struct {
	// Level selects the minimum level emitted. Defaults to info.
	Level string `yaml:"level" envconfig:"PINECONE_LOG_LEVEL"`

	// ServiceName is attached to every log entry as the "service" field.
	ServiceName string `yaml:"service_name" envconfig:"PINECONE_LOG_SERVICE_NAME"`
}

// DefaultConfig returns an info-level configuration for this library.
func DefaultConfig() Config {
	return Config{
		Level:       Info,
		ServiceName: "pinecone-client",
	}
}
