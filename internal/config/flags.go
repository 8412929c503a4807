package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
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

// parseFlags parses configuration flags from args.
//
// Flags:
//
//	-a server listen address in format [host]:[port]
//	-request-timeout server request timeout (e.g., "30s", "1m")
//	-server remote server address used by the terminal client
//	-adapter-timeout terminal client request timeout
//	-driver database driver ("sqlite3" or "pgx")
//	-d database DSN
//	-password-hash-algorithm credential hash ("sha256", "hmac-sha256", "argon2id")
//	-password-hash-key key for hmac-sha256
//	-max-username-length upper bound on username length
//	-c/-config json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress, adapterAddress NetAddress
	var driver, databaseDSN string
	var jsonConfigPath string
	var passwordHashAlgorithm, passwordHashKey string
	var maxUsernameLength int
	var requestTimeout, adapterTimeout time.Duration

	fs := flag.NewFlagSet("account-keeper", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.Var(&adapterAddress, "server", "Remote account server host:port")
	fs.DurationVar(&adapterTimeout, "adapter-timeout", 0, "Remote request timeout (e.g., 30s, 1m)")
	fs.StringVar(&driver, "driver", "", "Database driver (sqlite3, pgx)")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&passwordHashAlgorithm, "password-hash-algorithm", "", "Password hash algorithm (sha256, hmac-sha256, argon2id)")
	fs.StringVar(&passwordHashKey, "password-hash-key", "", "Password hash key")
	fs.IntVar(&maxUsernameLength, "max-username-length", 0, "Maximum username length")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			PasswordHashAlgorithm: passwordHashAlgorithm,
			PasswordHashKey:       passwordHashKey,
			MaxUsernameLength:     maxUsernameLength,
		},
		Storage: Storage{
			DB: DB{
				Driver: driver,
				DSN:    databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    adapterAddress.String(),
			RequestTimeout: adapterTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
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

	if port < 1 || port > 65535 {
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
