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
//	-client-address server address the client connects to
//	-d database DSN
//	-f snapshot file path for the in-memory store
//	-c/-config json file path with configs
//	-environment runtime environment (local, prod)
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-max-concurrent maximum number of in-flight requests
//	-throttle-backlog queued requests before load shedding starts
//	-auth-login account name for the login endpoint
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "1h", "30m")
//	-snapshot-interval snapshot worker interval (e.g., "1m")
func ParseFlags() *StructuredConfig {
	var serverAddress, clientAddress NetAddress
	var databaseDSN string
	var snapshotPath string
	var jsonConfigPath string
	var environment string
	var requestTimeout time.Duration
	var maxConcurrent int
	var throttleBacklog int
	var authLogin string
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var snapshotInterval time.Duration

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.Var(&clientAddress, "client-address", "Net address host:port the client connects to")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&snapshotPath, "f", "", "Snapshot file path")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&environment, "environment", "", "Runtime environment (local, prod)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.IntVar(&maxConcurrent, "max-concurrent", 0, "Maximum number of in-flight requests")
	flag.IntVar(&throttleBacklog, "throttle-backlog", 0, "Queued requests before load shedding")
	flag.StringVar(&authLogin, "auth-login", "", "Account name for the login endpoint")
	flag.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	flag.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	flag.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	flag.DurationVar(&snapshotInterval, "snapshot-interval", 0, "Snapshot worker interval (e.g., 1m)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			Environment: environment,
		},
		Server: Server{
			HTTPAddress:           serverAddress.String(),
			RequestTimeout:        requestTimeout,
			MaxConcurrentRequests: maxConcurrent,
			ThrottleBacklog:       throttleBacklog,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
			Files: Files{
				SnapshotPath: snapshotPath,
			},
		},
		Auth: Auth{
			Login:         authLogin,
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
		},
		Workers: Workers{
			SnapshotInterval: snapshotInterval,
		},
		Adapter: Adapter{
			HTTPAddress: clientAddress.String(),
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string so that the
// merge step can fall through to lower-priority sources.
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
