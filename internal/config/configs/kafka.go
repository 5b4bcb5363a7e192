package configs

// Kafka configures the notification sink. Without brokers notifications are
// written to the log instead.
type Kafka struct {
	Brokers []string `env:"BROKERS" envSeparator:","`
	Topic   string   `env:"TOPIC" envDefault:"campaign-notifications"`
}
