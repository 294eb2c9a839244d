package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses the server command-line flags from args.
//
// Flags:
//
//	-a server address in format [host]:port
//	-d document database URI ("memory" for the in-process store)
//	-db-name database name
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "24h")
//	-log-level minimal log level
//	-request-timeout request timeout (e.g., "30s")
//	-max-upload-size maximal multipart body size in bytes
//	-rate-limit enable per-client rate limiting
//	-rate-limit-rps sustained requests per second per client
//	-rate-limit-burst burst size per client
//	-image-host-url image host API base URL
//	-image-host-client-id image host client credential
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("blog-server", flag.ContinueOnError)

	var serverAddress NetAddress
	var dbURI, dbName string
	var jsonConfigPath string
	var tokenSignKey, tokenIssuer string
	var tokenDuration, requestTimeout time.Duration
	var logLevel string
	var maxUploadSize int64
	var rateLimitEnabled bool
	var rateLimitRPS float64
	var rateLimitBurst int
	var imageHostURL, imageHostClientID string

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&dbURI, "d", "", "Document database URI")
	fs.StringVar(&dbName, "db-name", "", "Database name")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 24h)")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.Int64Var(&maxUploadSize, "max-upload-size", 0, "Maximal multipart body size in bytes")
	fs.BoolVar(&rateLimitEnabled, "rate-limit", false, "Enable per-client rate limiting")
	fs.Float64Var(&rateLimitRPS, "rate-limit-rps", 0, "Requests per second per client")
	fs.IntVar(&rateLimitBurst, "rate-limit-burst", 0, "Burst size per client")
	fs.StringVar(&imageHostURL, "image-host-url", "", "Image host API base URL")
	fs.StringVar(&imageHostClientID, "image-host-client-id", "", "Image host client ID")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
			LogLevel:      logLevel,
		},
		Storage: Storage{
			DB: DB{
				URI:  dbURI,
				Name: dbName,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
			MaxUploadSize:  maxUploadSize,
			RateLimit: RateLimit{
				Enabled: rateLimitEnabled,
				RPS:     rateLimitRPS,
				Burst:   rateLimitBurst,
			},
		},
		Adapter: Adapter{
			ImageHost: ImageHost{
				URL:      imageHostURL,
				ClientID: imageHostClientID,
			},
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress, or an
// empty string when nothing was set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses s of form [host]:port. An empty host listens on all
// interfaces; otherwise the host must be "localhost" or an IP address.
func (a *NetAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(strings.TrimSpace(s))
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}
