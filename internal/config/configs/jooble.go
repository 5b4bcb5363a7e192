package configs

// Jooble configures the Jooble channel adapter. The adapter is registered
// only when BaseURL is set.
type Jooble struct {
	BaseURL string `env:"BASE_URL"`
	APIKey  string `env:"API_KEY"`
	// RatePerSecond and Burst shape outgoing API calls.
	RatePerSecond float64 `env:"RATE" envDefault:"10"`
	Burst         int     `env:"BURST" envDefault:"5"`
	// Attempts is the retry budget of one API call.
	Attempts uint `env:"ATTEMPTS" envDefault:"3"`
}
