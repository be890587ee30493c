package config

import "time"

// RedisConfig contains Redis configuration. Redis holds the session and cart
// state; the service has no database of its own.
type RedisConfig struct {
	URI                string   `env:"URI"                  envDefault:"localhost:6379"`
	Password           string   `env:"PASSWORD"             envDefault:""`
	SentinelNodes      []string `env:"SENTINEL_NODES"       envDefault:"localhost:26379"`
	SentinelMasterName string   `env:"SENTINEL_MASTER_NAME" envDefault:"mymaster"`
	SentinelPassword   string   `env:"SENTINEL_PASSWORD"    envDefault:""`
	UseSentinel        bool     `env:"USE_SENTINEL"         envDefault:"false"`
	ClusterNodes       []string `env:"CLUSTER_NODES"        envDefault:""`
	UseCluster         bool     `env:"USE_CLUSTER"          envDefault:"false"`
}

// StorageConfig controls session and cart persistence.
type StorageConfig struct {
	// SessionTTL bounds how long an idle session survives. Active
	// sessions slide forward on every save.
	SessionTTL time.Duration `env:"SESSION_TTL" envDefault:"8h"`

	// CartTTL bounds how long an abandoned cart survives. Carts outlive
	// sessions so a returning shopper still finds theirs.
	CartTTL time.Duration `env:"CART_TTL" envDefault:"168h"`
}

// Sanitize applies guardrails to storage configuration values.
func (s *StorageConfig) Sanitize() {
	if s.SessionTTL <= 0 {
		s.SessionTTL = 8 * time.Hour
	}
	if s.CartTTL < s.SessionTTL {
		s.CartTTL = s.SessionTTL
	}
}
