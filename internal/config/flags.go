// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

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

// ParseFlags parses all configuration flags from the process arguments.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-c/-config json file path with configs
//	-request-timeout inbound request timeout (e.g., "30s", "1m")
//	-log-level minimum log level
//	-geocoder-url geocoder base URL
//	-lookup-timeout deadline of a whole address lookup (e.g., "5s")
//	-max-attempts network attempts per address lookup
//	-crm-url CRM API base URL
//	-crm-user CRM API username
//	-crm-password CRM API password
//	-cache-backend suggestion cache backend (memory, redis)
//	-token-backend CRM token store backend (memory, redis, sqlite, postgres)
//	-token-dsn CRM token store DSN
//	-redis-addr redis address host:port
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("solar-quote", flag.ContinueOnError)

	var serverAddress NetAddress
	var jsonConfigPath string
	var requestTimeout, lookupTimeout time.Duration
	var logLevel string
	var geocoderURL string
	var maxAttempts int
	var crmURL, crmUser, crmPassword string
	var cacheBackend, tokenBackend, tokenDSN string
	var redisAddr string

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&geocoderURL, "geocoder-url", "", "Geocoder base URL")
	fs.DurationVar(&lookupTimeout, "lookup-timeout", 0, "Address lookup deadline (e.g., 5s)")
	fs.IntVar(&maxAttempts, "max-attempts", 0, "Network attempts per address lookup")
	fs.StringVar(&crmURL, "crm-url", "", "CRM API base URL")
	fs.StringVar(&crmUser, "crm-user", "", "CRM API username")
	fs.StringVar(&crmPassword, "crm-password", "", "CRM API password")
	fs.StringVar(&cacheBackend, "cache-backend", "", "Suggestion cache backend (memory, redis)")
	fs.StringVar(&tokenBackend, "token-backend", "", "CRM token store backend (memory, redis, sqlite, postgres)")
	fs.StringVar(&tokenDSN, "token-dsn", "", "CRM token store DSN")
	fs.StringVar(&redisAddr, "redis-addr", "", "Redis address host:port")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			LogLevel: logLevel,
		},
		Geocoder: Geocoder{
			BaseURL:       geocoderURL,
			LookupTimeout: lookupTimeout,
			MaxAttempts:   maxAttempts,
		},
		CRM: CRM{
			BaseURL:  crmURL,
			Username: crmUser,
			Password: crmPassword,
		},
		Cache: Cache{
			Backend: cacheBackend,
		},
		Storage: Storage{
			Tokens: Tokens{
				Backend: tokenBackend,
				DSN:     tokenDSN,
			},
			Redis: Redis{
				Addr: redisAddr,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
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
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty, and returns an error if the format or values are
// invalid.
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
