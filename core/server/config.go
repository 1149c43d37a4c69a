package server

import (
	"fmt"
	"net"
	"strconv"
)

// DefaultPort is the port used when neither the environment nor the
// configuration provides one.
const DefaultPort = "8080"

// Config holds configuration for the HTTP server.
type Config struct {
	// Host is the interface the server binds to.
	Host string `mapstructure:"host" default:"0.0.0.0"`
	// Port is the fallback port used when the PORT environment variable is
	// not set. The platform-injected PORT always wins.
	Port string `mapstructure:"port" default:"8080"`
}

// Addr builds the listen address for a resolved port.
func (c Config) Addr(port int) string {
	return net.JoinHostPort(c.Host, strconv.Itoa(port))
}

// ResolvePort determines the port the server should listen on.
//
// The PORT environment variable wins. When it is unset or empty the fallback
// applies, and an empty fallback resolves to DefaultPort. A value that is not
// a valid TCP port is an error; launching must not proceed on a bad port.
func ResolvePort(getenv func(string) string, fallback string) (int, error) {
	raw := getenv("PORT")
	if raw == "" {
		raw = fallback
	}
	if raw == "" {
		raw = DefaultPort
	}

	port, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid port %q: %w", raw, err)
	}
	if port < 1 || port > 65535 {
		return 0, fmt.Errorf("port %d out of range", port)
	}
	return port, nil
}
