package server

import "net"

// Config holds configuration for the HTTP server.
type Config struct {
	// Host is the interface to bind. Empty binds all interfaces.
	Host string `mapstructure:"host" default:""`
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8000"`
	// Dir is the directory served as the site root.
	Dir string `mapstructure:"dir" default:"."`
	// ShutdownTimeoutSeconds bounds how long a graceful shutdown may take.
	ShutdownTimeoutSeconds int `mapstructure:"shutdown_timeout_seconds" default:"5"`
}

// Addr returns the listen address in host:port form.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

// URL returns the address a local browser should use to reach the server.
func (c Config) URL() string {
	return urlFor(c.Host, c.Port)
}

// urlFor maps a bind host to a reachable URL. Wildcard binds are reachable
// through the loopback name.
func urlFor(host, port string) string {
	switch host {
	case "", "0.0.0.0", "::":
		host = "localhost"
	}
	return "http://" + net.JoinHostPort(host, port)
}
