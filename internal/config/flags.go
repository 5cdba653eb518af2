package config

import (
	"errors"
	"flag"
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

// parseFlags parses args (without the program name).
//
// Flags:
//
//	-a                   server address in format [host]:[port]
//	-grpc-address        gRPC health server address in format [host]:[port]
//	-d                   database DSN
//	-db-driver           database driver (pgx or sqlite3)
//	-c/-config           JSON config file path
//	-token-sign-key      token signing key
//	-token-issuer        token issuer name
//	-token-duration      token duration (e.g. "1h")
//	-request-timeout     request timeout (e.g. "30s")
//	-hash-key            integrity hash key
//	-log-level           log level
//	-purge-interval      completed task purge interval
//	-retention           completed task retention
//	-server              client: server address
//	-token               client: bearer token
//	-user                client/token tool: user ID
//
// Unknown flags are ignored so that commands can add their own.
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress, grpcServerAddress NetAddress
	cfg := &StructuredConfig{}

	fs := flag.NewFlagSet("go-vault-tasks", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&grpcServerAddress, "grpc-address", "Net gRPC server address host:port")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "Database DSN")
	fs.StringVar(&cfg.Storage.DB.Driver, "db-driver", "", "Database driver (pgx or sqlite3)")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&cfg.App.TokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&cfg.App.TokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&cfg.App.TokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	fs.DurationVar(&cfg.Server.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&cfg.App.HashKey, "hash-key", "", "Integrity hash key")
	fs.StringVar(&cfg.App.LogLevel, "log-level", "", "Log level")
	fs.DurationVar(&cfg.Workers.PurgeInterval, "purge-interval", 0, "Completed task purge interval")
	fs.DurationVar(&cfg.Workers.CompletedRetention, "retention", 0, "Completed task retention")
	fs.StringVar(&cfg.Adapter.HTTPAddress, "server", "", "Server address for the client")
	fs.StringVar(&cfg.Adapter.Token, "token", "", "Bearer token for the client")
	fs.StringVar(&cfg.Adapter.UserID, "user", "", "User ID")

	if err := fs.Parse(KnownFlags(fs, args)); err != nil {
		return nil, err
	}

	cfg.Server.HTTPAddress = serverAddress.String()
	cfg.Server.GRPCAddress = grpcServerAddress.String()

	return cfg, nil
}

// KnownFlags drops arguments that are not registered in fs, together with
// their values, so commands can parse their own flags from the same args.
func KnownFlags(fs *flag.FlagSet, args []string) []string {
	known := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if !strings.HasPrefix(arg, "-") || arg == "-" || arg == "--" {
			continue
		}

		name := strings.TrimLeft(arg, "-")
		hasValue := strings.Contains(name, "=")
		if hasValue {
			name = name[:strings.Index(name, "=")]
		}

		f := fs.Lookup(name)
		if f == nil {
			continue
		}

		known = append(known, arg)
		if !hasValue && !isBoolFlag(f) && i+1 < len(args) {
			known = append(known, args[i+1])
			i++
		}
	}

	return known
}

func isBoolFlag(f *flag.Flag) bool {
	b, ok := f.Value.(interface{ IsBoolFlag() bool })
	return ok && b.IsBoolFlag()
}

// String returns a canonical host:port string, or "" when unset.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range and checks IP correctness unless host is
// "localhost" or empty.
func (a *NetAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(s)
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

	if host != "localhost" && host != "" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}

// durationOrZero keeps config structs free of negative durations coming
// from user input.
func durationOrZero(d time.Duration) time.Duration {
	if d < 0 {
		return 0
	}
	return d
}
