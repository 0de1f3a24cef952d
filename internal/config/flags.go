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

// ParseFlags parses all configuration flags from args (without the program
// name).
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN (PostgreSQL URL or SQLite file)
//	-f data directory for JSON snapshot files
//	-c/-config json file path with configs
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-mailgun-api-key Mailgun API key
//	-mailgun-domain Mailgun sending domain
//	-notifier-workers number of notification workers
func ParseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var dataDir string
	var databaseDSN string
	var jsonConfigPath string
	var requestTimeout time.Duration
	var mailgunAPIKey string
	var mailgunDomain string
	var notifierWorkers int

	fs := flag.NewFlagSet("go-ask-board", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&dataDir, "f", "", "Data directory for JSON snapshots")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&mailgunAPIKey, "mailgun-api-key", "", "Mailgun API key")
	fs.StringVar(&mailgunDomain, "mailgun-domain", "", "Mailgun sending domain")
	fs.IntVar(&notifierWorkers, "notifier-workers", 0, "Number of notification workers")

	if err := fs.Parse(args); err != nil {
		return nil, errors.Join(ErrInvalidFlags, err)
	}

	return &StructuredConfig{
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
			Files: Files{
				DataDir: dataDir,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			MailgunAPIKey: mailgunAPIKey,
			MailgunDomain: mailgunDomain,
		},
		Workers: Workers{
			NotifierWorkers: notifierWorkers,
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
// It validates the port range, checks IP correctness unless host is "localhost"
// or empty, and returns an error if the format or values are invalid.
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
