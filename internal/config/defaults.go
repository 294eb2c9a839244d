package config

import "time"

// Default values applied before any other configuration source.
const (
	DefaultTokenIssuer      = "blog-website-api"
	DefaultTokenDuration    = 24 * time.Hour
	DefaultLogLevel         = "info"
	DefaultDBName           = "blog-webpage-database"
	DefaultDBConnectTimeout = 10 * time.Second
	DefaultHTTPAddress      = ":8080"
	DefaultRequestTimeout   = 30 * time.Second
	DefaultMaxUploadSize    = 10 << 20
	DefaultRateLimitRPS     = 10
	DefaultRateLimitBurst   = 20
	DefaultImageHostURL     = "https://api.imgur.com/3/"
	DefaultImageHostTimeout = 30 * time.Second
	memoryStorageURI        = "memory"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   DefaultTokenIssuer,
			TokenDuration: DefaultTokenDuration,
			LogLevel:      DefaultLogLevel,
		},
		Storage: Storage{
			DB: DB{
				Name:           DefaultDBName,
				ConnectTimeout: DefaultDBConnectTimeout,
			},
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
			MaxUploadSize:  DefaultMaxUploadSize,
			RateLimit: RateLimit{
				RPS:   DefaultRateLimitRPS,
				Burst: DefaultRateLimitBurst,
			},
		},
		Adapter: Adapter{
			ImageHost: ImageHost{
				URL:            DefaultImageHostURL,
				RequestTimeout: DefaultImageHostTimeout,
			},
		},
	}
}

// IsMemory reports whether the in-process store was requested.
func (db DB) IsMemory() bool {
	return db.URI == memoryStorageURI
}
