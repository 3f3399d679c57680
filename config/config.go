package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// Config holds all application configurations.
type Config struct {
	Server struct {
		Port string `mapstructure:"port"`
	} `mapstructure:"server"`
	Database struct {
		Driver   string `mapstructure:"driver"`
		Host     string `mapstructure:"host"`
		Port     string `mapstructure:"port"`
		User     string `mapstructure:"user"`
		Password string `mapstructure:"password"`
		Name     string `mapstructure:"name"`
	} `mapstructure:"database"`
	Kafka struct {
		Brokers            []string `mapstructure:"brokers"`
		OrderEventsTopic   string   `mapstructure:"order_events_topic"`
		NotificationsTopic string   `mapstructure:"notifications_topic"`
		OperatorTopic      string   `mapstructure:"operator_topic"`
	} `mapstructure:"kafka"`
	Shop struct {
		Currency          string  `mapstructure:"currency"`
		Operators         []int64 `mapstructure:"operators"`
		StrictTransitions bool    `mapstructure:"strict_transitions"`
	} `mapstructure:"shop"`
}

// LoadConfig reads configuration from config.yml.
func LoadConfig() (*Config, error) {
	viper.AddConfigPath("./config") // Path to config files
	viper.SetConfigName("config")   // Name of config file (without extension)
	viper.SetConfigType("yaml")     // Type of config file

	viper.SetDefault("server.port", ":3000")
	viper.SetDefault("database.driver", "mysql")
	viper.SetDefault("database.host", "127.0.0.1")
	viper.SetDefault("database.port", "3306")
	viper.SetDefault("database.user", "root")
	viper.SetDefault("database.password", "")
	viper.SetDefault("database.name", "shop_db")
	viper.SetDefault("kafka.brokers", []string{"127.0.0.1:9092"})
	viper.SetDefault("kafka.order_events_topic", "order-status-events")
	viper.SetDefault("kafka.notifications_topic", "customer-notifications")
	viper.SetDefault("kafka.operator_topic", "operator-alerts")
	viper.SetDefault("shop.currency", "MMK")
	viper.SetDefault("shop.operators", []int64{})
	viper.SetDefault("shop.strict_transitions", false)

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Config file not found; defaults still apply.
			fmt.Println("Config file not found, using default values.")
		} else {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.Database.Password == "" && os.Getenv("DB_PASSWORD") == "" {
		fmt.Println("Warning: Database password is empty. Consider using environment variables for sensitive data.")
	}

	return &cfg, nil
}
