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

// ParseFlags parses the gateway flags from args (usually os.Args[1:]).
// Flags that are not given leave their field zero so lower-priority sources
// can fill it.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-port listen port (used when -a is not given)
//	-cbs-url upstream CBS simulator base URL
//	-cbs-timeout upstream request timeout (e.g., "10s")
//	-env deployment mode (production, development, ...)
//	-app-version version reported by /health
//	-log-level zerolog level name
//	-cors-origins comma-separated origin allow-list
//	-shutdown-timeout graceful shutdown grace period
//	-immediate-shutdown close connections without a grace period
//	-otlp-endpoint OTLP gRPC collector address
//	-c/-config json file path with configs
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("cbs-gateway", flag.ContinueOnError)

	var serverAddress NetAddress
	var port int
	var cbsURL string
	var cbsTimeout time.Duration
	var environment string
	var version string
	var logLevel string
	var corsOrigins string
	var shutdownTimeout time.Duration
	var immediateShutdown bool
	var otlpEndpoint string
	var jsonConfigPath string

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.IntVar(&port, "port", 0, "Listen port")
	fs.StringVar(&cbsURL, "cbs-url", "", "CBS simulator base URL")
	fs.DurationVar(&cbsTimeout, "cbs-timeout", 0, "CBS request timeout (e.g., 10s)")
	fs.StringVar(&environment, "env", "", "Deployment mode")
	fs.StringVar(&version, "app-version", "", "Version reported by /health")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&corsOrigins, "cors-origins", "", "Comma-separated allowed origins")
	fs.DurationVar(&shutdownTimeout, "shutdown-timeout", 0, "Graceful shutdown timeout (e.g., 15s)")
	fs.BoolVar(&immediateShutdown, "immediate-shutdown", false, "Skip graceful shutdown")
	fs.StringVar(&otlpEndpoint, "otlp-endpoint", "", "OTLP gRPC collector address")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			Version:  version,
			LogLevel: logLevel,
		},
		Server: Server{
			HTTPAddress:       serverAddress.String(),
			ShutdownTimeout:   shutdownTimeout,
			ImmediateShutdown: immediateShutdown,
		},
		Adapter: Adapter{
			BaseURL:        cbsURL,
			RequestTimeout: cbsTimeout,
		},
		CORS: CORS{
			AllowedOrigins: splitList(corsOrigins),
		},
		Telemetry: Telemetry{
			OTLPEndpoint: otlpEndpoint,
		},
		Environment:  environment,
		Port:         port,
		JSONFilePath: jsonConfigPath,
	}, nil
}

// splitList splits a comma-separated list, dropping blank entries.
// It returns nil for an empty input so mergo treats the field as unset.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
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
		return errors.New("port number must be between 1 and 65535")
	}

	if host != "localhost" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
