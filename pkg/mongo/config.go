package mongo

import (
	"net"
	"net/url"
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"
)

const (
	DefaultHost           = "localhost"
	DefaultPort           = 27017
	DefaultAuthSource     = "admin"
	DefaultDatabase       = "app"
	DefaultConnectTimeout = 10 * time.Second
)

// Config describes how to reach the MongoDB deployment.
// URI wins when set; otherwise it is assembled from the component parts.
type Config struct {
	URI            string
	Host           string
	Port           int
	User           string
	Password       string
	Database       string
	AuthSource     string
	ConnectTimeout time.Duration
}

// ConnectionURI returns the connection string for the deployment.
func (c Config) ConnectionURI() string {
	if c.URI != "" {
		return c.URI
	}

	host := c.Host
	if host == "" {
		host = DefaultHost
	}
	port := c.Port
	if port == 0 {
		port = DefaultPort
	}

	u := url.URL{
		Scheme: "mongodb",
		Host:   net.JoinHostPort(host, strconv.Itoa(port)),
		Path:   "/" + c.Database,
	}
	if c.User != "" {
		u.User = url.UserPassword(c.User, c.Password)
		authSource := c.AuthSource
		if authSource == "" {
			authSource = DefaultAuthSource
		}
		u.RawQuery = url.Values{"authSource": []string{authSource}}.Encode()
	}
	return u.String()
}

// DatabaseName returns the database the repositories operate on:
// the explicit name, then the one embedded in URI, then DefaultDatabase.
func (c Config) DatabaseName() string {
	if c.Database != "" {
		return c.Database
	}
	if c.URI != "" {
		if cs, err := connstring.Parse(c.URI); err == nil && cs.Database != "" {
			return cs.Database
		}
	}
	return DefaultDatabase
}

func (c Config) connectTimeout() time.Duration {
	if c.ConnectTimeout <= 0 {
		return DefaultConnectTimeout
	}
	return c.ConnectTimeout
}
