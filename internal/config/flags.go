package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"strconv"
)

// NetAddress is a host:port flag value. An empty host listens on every
// interface. IPv6 hosts are written in brackets, as in "[::1]:8080".
type NetAddress struct {
	Host string
	Port int
}

func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}
	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

func (a *NetAddress) Set(s string) error {
	host, rawPort, err := net.SplitHostPort(s)
	if err != nil {
		return fmt.Errorf("address %q: %w", s, err)
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("address %q: port must be a number in 1-65535", s)
	}
	if host != "" && host != "localhost" && net.ParseIP(host) == nil && !validHostname(host) {
		return errors.New("address " + strconv.Quote(s) + ": host is neither an IP nor a host name")
	}

	a.Host, a.Port = host, port
	return nil
}

func validHostname(host string) bool {
	if len(host) > 253 {
		return false
	}
	for _, r := range host {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '.':
		default:
			return false
		}
	}
	return true
}

// ParseFlags reads the server command line.
//
//	-a               REST API address, host:port
//	-grpc-address    health service address, host:port
//	-d               PostgreSQL DSN
//	-couch-url       CouchDB URL (takes precedence over -d)
//	-couch-db        CouchDB database name
//	-c, -config      JSON config file
//	-token-sign-key  HMAC key for session tokens
//	-token-issuer    "iss" claim of session tokens
//	-token-duration  session token lifetime, e.g. 24h
//	-request-timeout per-request deadline, e.g. 15s
//	-tz              IANA zone whose calendar day is "today"
//	-rate-limit      requests per second per client address, 0 disables
//	-rate-burst      requests a client may send at once
func ParseFlags(args []string) (*StructuredConfig, error) {
	var (
		cfg      StructuredConfig
		httpAddr NetAddress
		grpcAddr NetAddress
	)

	fs := flag.NewFlagSet("work-diary", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&httpAddr, "a", "REST API address host:port")
	fs.Var(&grpcAddr, "grpc-address", "health service address host:port")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "PostgreSQL DSN")
	fs.StringVar(&cfg.Storage.Couch.URL, "couch-url", "", "CouchDB URL")
	fs.StringVar(&cfg.Storage.Couch.Name, "couch-db", "", "CouchDB database name")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file")
	fs.StringVar(&cfg.App.TokenSignKey, "token-sign-key", "", "session token signing key")
	fs.StringVar(&cfg.App.TokenIssuer, "token-issuer", "", "session token issuer")
	fs.DurationVar(&cfg.App.TokenDuration, "token-duration", 0, "session token lifetime")
	fs.DurationVar(&cfg.Server.RequestTimeout, "request-timeout", 0, "per-request deadline")
	fs.StringVar(&cfg.App.TimeZone, "tz", "", "time zone of the calendar day")
	fs.Float64Var(&cfg.Server.RateLimit, "rate-limit", 0, "requests per second per client address")
	fs.IntVar(&cfg.Server.RateBurst, "rate-burst", 0, "burst size of the rate limiter")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	cfg.Server.HTTPAddress = httpAddr.String()
	cfg.Server.GRPCAddress = grpcAddr.String()
	return &cfg, nil
}
