package catalog

import (
	"fmt"

	enc "github.com/named-data/ndnd/std/encoding"
)

// DatabaseConfig carries the connection parameters for the relational
// catalog backend, matching the "database" subsection of the original
// queryAdapter configuration.
type DatabaseConfig struct {
	Driver   string `json:"driver" yaml:"driver"`
	DbServer string `json:"dbServer" yaml:"dbServer"`
	DbName   string `json:"dbName" yaml:"dbName"`
	DbUser   string `json:"dbUser" yaml:"dbUser"`
	DbPasswd string `json:"dbPasswd" yaml:"dbPasswd"`
}

// Config is the queryAdapter-equivalent configuration section for the
// catalog core.
type Config struct {
	// Prefix is the NDN name under which the catalog registers its
	// "query" and "query-results" namespaces.
	Prefix string `json:"prefix" yaml:"prefix"`
	// SigningId is the identity used to sign outgoing Data. Required.
	SigningId string `json:"signingId" yaml:"signingId"`
	// KeyChainUri selects the keychain backing SigningId, e.g.
	// "dir:///etc/ndncatalog/keys" or "mem://" for tests.
	KeyChainUri string `json:"keychain" yaml:"keychain"`
	// CacheCapacity bounds the segment cache LRU. Defaults to 250000.
	CacheCapacity int `json:"cacheCapacity" yaml:"cacheCapacity"`
	// MaxWorkers bounds concurrent query runs. Defaults to 32.
	MaxWorkers int `json:"maxWorkers" yaml:"maxWorkers"`
	// LogLevel is the std/log level name, e.g. "INFO".
	LogLevel string `json:"logLevel" yaml:"logLevel"`
	// Database holds the catalog backend connection parameters.
	Database DatabaseConfig `json:"database" yaml:"database"`

	// PrefixN is the parsed form of Prefix, populated by Parse.
	PrefixN enc.Name
}

const (
	DefaultCacheCapacity = 250_000
	DefaultMaxWorkers    = 32
)

// Parse validates the configuration and fills in derived fields. It is
// the Go analogue of the source's onConfig validation: every required
// field must be non-empty or configuration is rejected before the core
// starts.
func (c *Config) Parse() (err error) {
	c.PrefixN, err = enc.NameFromStr(c.Prefix)
	if err != nil || len(c.PrefixN) == 0 {
		return fmt.Errorf("failed to parse or invalid prefix (%s): %w", c.Prefix, err)
	}

	if c.SigningId == "" {
		return fmt.Errorf("signingId must be set")
	}

	if c.Database.DbServer == "" {
		return fmt.Errorf("database.dbServer must be set")
	}
	if c.Database.DbName == "" {
		return fmt.Errorf("database.dbName must be set")
	}
	if c.Database.DbUser == "" {
		return fmt.Errorf("database.dbUser must be set")
	}
	if c.Database.DbPasswd == "" {
		return fmt.Errorf("database.dbPasswd must be set")
	}

	if c.Database.Driver == "" {
		c.Database.Driver = "mysql"
	}
	if c.CacheCapacity <= 0 {
		c.CacheCapacity = DefaultCacheCapacity
	}
	if c.MaxWorkers <= 0 {
		c.MaxWorkers = DefaultMaxWorkers
	}
	if c.LogLevel == "" {
		c.LogLevel = "INFO"
	}

	return nil
}

// SigningIdName returns the parsed form of SigningId.
func (c *Config) SigningIdName() (enc.Name, error) {
	return enc.NameFromStr(c.SigningId)
}

// DefaultConfig returns a Config with required fields left invalid,
// matching repo.DefaultConfig's pattern of leaving validation to Parse.
func DefaultConfig() *Config {
	return &Config{
		Prefix:        "",
		SigningId:     "",
		KeyChainUri:   "mem://",
		CacheCapacity: DefaultCacheCapacity,
		MaxWorkers:    DefaultMaxWorkers,
		LogLevel:      "INFO",
	}
}
