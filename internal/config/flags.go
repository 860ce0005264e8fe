package config

import (
	"errors"
	"net"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

// NetAddress holds structured network address data for host and port.
// It implements the pflag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses args into a partially filled config.
//
// Flags:
//
//	-a, --address         API listen address in format [host]:[port]
//	    --admin-address   admin listen address in format [host]:[port]
//	-c, --config          json file path with configs
//	    --read-auth       auth mode for GET/HEAD/OPTIONS (none|bearer|pki)
//	    --write-auth      auth mode for PUT/DELETE (none|bearer|pki)
//	    --bearer-token    expected bearer token
//	    --pki-max-skew    accepted pki timestamp skew (e.g. "60s")
//	-s, --storage         storage driver (memory|sqlite)
//	-d, --dsn             sqlite DSN
//	    --request-timeout request timeout (e.g. "30s")
//	    --max-body-bytes  request body limit in bytes
//	    --pprof           expose pprof on the admin listener
//	    --log-level       log level
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress, adminAddress NetAddress
	cfg := &StructuredConfig{}

	fs := pflag.NewFlagSet("solid-pod", pflag.ContinueOnError)

	fs.VarP(&serverAddress, "address", "a", "Net address host:port")
	fs.Var(&adminAddress, "admin-address", "Admin net address host:port")
	fs.StringVarP(&cfg.JSONFilePath, "config", "c", "", "JSON config file path")
	fs.StringVar(&cfg.Auth.ReadMode, "read-auth", "", "Auth mode for read routes (none|bearer|pki)")
	fs.StringVar(&cfg.Auth.WriteMode, "write-auth", "", "Auth mode for write routes (none|bearer|pki)")
	fs.StringVar(&cfg.Auth.BearerToken, "bearer-token", "", "Expected bearer token")
	fs.DurationVar(&cfg.Auth.PKIMaxSkew, "pki-max-skew", 0, "Accepted pki timestamp skew (e.g. 60s)")
	fs.StringVarP(&cfg.Storage.Driver, "storage", "s", "", "Storage driver (memory|sqlite)")
	fs.StringVarP(&cfg.Storage.DSN, "dsn", "d", "", "SQLite DSN")
	fs.DurationVar(&cfg.Server.RequestTimeout, "request-timeout", 0, "Request timeout (e.g. 30s)")
	fs.Int64Var(&cfg.Server.MaxBodyBytes, "max-body-bytes", 0, "Request body limit in bytes")
	fs.BoolVar(&cfg.Server.EnablePprof, "pprof", false, "Expose pprof on the admin listener")
	fs.StringVar(&cfg.App.LogLevel, "log-level", "", "Log level")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg.Server.HTTPAddress = serverAddress.String()
	cfg.Server.AdminAddress = adminAddress.String()

	return cfg, nil
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
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty, and returns an error if the format or values are invalid.
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
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}

// Type implements pflag.Value.
func (a *NetAddress) Type() string {
	return "host:port"
}
