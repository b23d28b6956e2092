package app

import (
	"io"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/iov-one/vault/errors"
	"github.com/iov-one/vault/store/iavl"
	"github.com/tendermint/tendermint/libs/log"
	dbm "github.com/tendermint/tendermint/libs/db"
)

// Supported database backends.
const (
	BackendMemDB     = "memdb"
	BackendGoLevelDB = "goleveldb"
)

// Config holds the node configuration, read from a TOML file.
type Config struct {
	DataDir     string `toml:"data_dir"`
	DBBackend   string `toml:"db_backend"`
	LogLevel    string `toml:"log_level"`
	GenesisFile string `toml:"genesis_file"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		DataDir:     "data",
		DBBackend:   BackendGoLevelDB,
		LogLevel:    "info",
		GenesisFile: "genesis.json",
	}
}

// LoadConfig reads the configuration from given TOML file. Values missing in
// the file keep their defaults. A missing file is not an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, errors.Wrapf(errors.ErrInput, "parse config %s: %s", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

// Validate returns an error if the configuration cannot be used.
func (c Config) Validate() error {
	switch c.DBBackend {
	case BackendMemDB:
	case BackendGoLevelDB:
		if c.DataDir == "" {
			return errors.Field("DataDir", errors.ErrEmpty, "required by goleveldb")
		}
	default:
		return errors.Field("DBBackend", errors.ErrInput, "unknown backend %q", c.DBBackend)
	}
	if _, err := log.AllowLevel(c.LogLevel); err != nil {
		return errors.Field("LogLevel", errors.ErrInput, "%s", err)
	}
	return nil
}

// OpenStore opens the commit store using the configured backend.
func (c Config) OpenStore() (*iavl.CommitStore, error) {
	switch c.DBBackend {
	case BackendMemDB:
		return iavl.NewCommitStoreFromDB(dbm.NewMemDB()), nil
	case BackendGoLevelDB:
		return iavl.NewCommitStore(c.DataDir, "vault")
	default:
		return nil, errors.Wrapf(errors.ErrInput, "unknown backend %q", c.DBBackend)
	}
}

// Logger returns a logger writing to w, filtered by the configured level.
func (c Config) Logger(w io.Writer) (log.Logger, error) {
	opt, err := log.AllowLevel(c.LogLevel)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "log level: %s", err)
	}
	logger := log.NewTMLogger(log.NewSyncWriter(w))
	return log.NewFilter(logger, opt), nil
}

// Genesis loads the configured genesis file.
func (c Config) Genesis() (Genesis, error) {
	return LoadGenesis(c.GenesisFile)
}
