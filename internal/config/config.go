package config

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/hotel-frontdesk/service-frontdesk/internal/persistence"
)

// ServiceConfig holds all configuration for the front-desk service.
type ServiceConfig struct {
	Port        string
	AppEnv      string
	Autosave    bool
	StoreConfig persistence.Config
	KafkaConfig KafkaConfig
}

// KafkaConfig holds Kafka connection settings. Events are disabled when Brokers is empty.
type KafkaConfig struct {
	Brokers     []string
	GroupPrefix string
}

// Enabled reports whether any broker is configured.
func (k KafkaConfig) Enabled() bool { return len(k.Brokers) > 0 }

// Load reads configuration from an optional .env file and FRONTDESK_* environment variables.
func Load() (*ServiceConfig, error) {
	// .env is optional; real environment variables take precedence.
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("FRONTDESK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	return fromViper(v), nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("SERVICE_PORT", "8080")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("AUTOSAVE", false)
	v.SetDefault("STORE_DRIVER", persistence.DriverFile)
	v.SetDefault("STORE_PATH", "data")
	v.SetDefault("STORE_DSN", "")
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("REDIS_PREFIX", "frontdesk:")
	v.SetDefault("S3_BUCKET", "")
	v.SetDefault("S3_REGION", "us-east-1")
	v.SetDefault("S3_ENDPOINT", "")
	v.SetDefault("S3_PATH_STYLE", false)
	v.SetDefault("S3_PREFIX", "frontdesk/")
	v.SetDefault("KAFKA_BROKERS", "")
	v.SetDefault("KAFKA_GROUP_PREFIX", "")
}

func fromViper(v *viper.Viper) *ServiceConfig {
	return &ServiceConfig{
		Port:     normalizePort(v.GetString("SERVICE_PORT")),
		AppEnv:   v.GetString("APP_ENV"),
		Autosave: v.GetBool("AUTOSAVE"),
		StoreConfig: persistence.Config{
			Driver: strings.ToLower(v.GetString("STORE_DRIVER")),
			Path:   v.GetString("STORE_PATH"),
			DSN:    v.GetString("STORE_DSN"),
			Redis: persistence.RedisConfig{
				Address:  v.GetString("REDIS_ADDR"),
				Password: v.GetString("REDIS_PASSWORD"),
				DB:       v.GetInt("REDIS_DB"),
				Prefix:   v.GetString("REDIS_PREFIX"),
			},
			S3: persistence.S3Config{
				Bucket:    v.GetString("S3_BUCKET"),
				Region:    v.GetString("S3_REGION"),
				Endpoint:  v.GetString("S3_ENDPOINT"),
				PathStyle: v.GetBool("S3_PATH_STYLE"),
				Prefix:    v.GetString("S3_PREFIX"),
			},
		},
		KafkaConfig: KafkaConfig{
			Brokers:     splitList(v.GetString("KAFKA_BROKERS")),
			GroupPrefix: v.GetString("KAFKA_GROUP_PREFIX"),
		},
	}
}

// normalizePort turns "8080" into ":8080" and leaves "host:port" alone.
func normalizePort(port string) string {
	if strings.Contains(port, ":") {
		return port
	}
	return ":" + port
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
