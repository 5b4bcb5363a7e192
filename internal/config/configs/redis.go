package configs

// Redis configures the lease backend. An empty Addr disables Redis and the
// process falls back to an in-memory lease, which only guards against
// overlap inside one process.
type Redis struct {
	// Addr is either host:port or a redis:// URL.
	Addr string `env:"ADDRESS"`
	// KeyPrefix namespaces the lease keys.
	KeyPrefix string `env:"KEY_PREFIX" envDefault:"jobcast:"`
}
