package config

import (
	"errors"
	"flag"
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

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-driver database driver ("pgx" or "sqlite3")
//	-c/-config json file path with configs
//	-environment deployment environment ("development", "production")
//	-session-duration absolute session lifetime (e.g., "720h")
//	-session-renewal-threshold sliding renewal threshold (e.g., "168h")
//	-secure-cookies force the Secure attribute on session cookies
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-session-purge-interval expired-session sweep interval
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var databaseDSN string
	var databaseDriver string
	var jsonConfigPath string
	var environment string
	var sessionDuration time.Duration
	var sessionRenewalThreshold time.Duration
	var secureCookies bool
	var requestTimeout time.Duration
	var sessionPurgeInterval time.Duration

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&databaseDriver, "driver", "", "Database driver (pgx or sqlite3)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&environment, "environment", "", "Deployment environment")
	flag.DurationVar(&sessionDuration, "session-duration", 0, "Session lifetime (e.g., 720h)")
	flag.DurationVar(&sessionRenewalThreshold, "session-renewal-threshold", 0, "Session renewal threshold (e.g., 168h)")
	flag.BoolVar(&secureCookies, "secure-cookies", false, "Force Secure attribute on session cookies")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.DurationVar(&sessionPurgeInterval, "session-purge-interval", 0, "Expired session purge interval (e.g., 1h)")

	flag.Parse()

	// Secure cookies are tri-state: the pointer stays nil unless the flag
	// was actually passed, so an explicit -secure-cookies=false survives
	// merging instead of being mistaken for "unset".
	var secureCookiesPtr *bool
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "secure-cookies" {
			secureCookiesPtr = &secureCookies
		}
	})

	return &StructuredConfig{
		App: App{
			Environment: environment,
		},
		Auth: Auth{
			SessionDuration:         sessionDuration,
			SessionRenewalThreshold: sessionRenewalThreshold,
			SecureCookies:           secureCookiesPtr,
		},
		Storage: Storage{
			DB: DB{
				Driver: databaseDriver,
				DSN:    databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Workers: Workers{
			SessionPurgeInterval: sessionPurgeInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
