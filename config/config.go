package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net"

	"base58kit/util/convert"
	"base58kit/util/hashutil"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type config struct {
	// Debug indicates if in debug mode.
	Debug bool

	// Label is used as prefix in log output.
	Label string

	// LogPath is the directory where log files are written.
	LogPath string

	// Listen is the JSON-RPC server address, e.g., 127.0.0.1:5858.
	Listen string

	// Workers sets the number of goroutines that will be created for batch transcoding.
	Workers int

	// MaxInputSize limits the payload size accepted by the RPC server.
	MaxInputSize int

	// Digest is the default digest applied before encoding.
	Digest string

	// Format is the default payload format.
	Format string
}

var cfg config

func init() {
	setDefaults()
}

func setDefaults() {
	viper.SetDefault("debug", false)
	viper.SetDefault("label", "")
	viper.SetDefault("logpath", "./logs")
	viper.SetDefault("listen", "127.0.0.1:5858")
	viper.SetDefault("workers", 4)
	viper.SetDefault("maxinputsize", 4096)
	viper.SetDefault("digest", hashutil.DigestNone)
	viper.SetDefault("format", convert.FormatHex)
}

// Load reads configs from file, or from ./config/config.* when file is empty.
// A missing default config file is not an error, built-in defaults apply.
func Load(display bool, file string) error {
	if file != "" {
		viper.SetConfigFile(file)
	} else {
		viper.SetConfigName("config")
		viper.AddConfigPath("./config")
		// Incase test cases require loading configs
		viper.AddConfigPath("../config")
	}

	err := viper.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return err
		}
	}

	return apply(display)
}

// LoadDefaults applies built-in defaults and bound flags without reading any file.
func LoadDefaults() error {
	return apply(false)
}

// BindFlag overrides config key with the given command line flag when it is set.
func BindFlag(key string, flag *pflag.Flag) error {
	return viper.BindPFlag(key, flag)
}

// Reset clears all loaded values, used by tests.
func Reset() {
	viper.Reset()
	setDefaults()
	cfg = config{}
}

/* ------------------------------
        `Get` functions
------------------------------ */

// DebugMode tells if running in debug mode.
func DebugMode() bool {
	return cfg.Debug
}

// GetLabel returns custome label as part of the log output prefix.
func GetLabel() string {
	return cfg.Label
}

// GetLogPath returns the log directory.
func GetLogPath() string {
	return cfg.LogPath
}

// GetListen returns the RPC server listen address.
func GetListen() string {
	return cfg.Listen
}

// GetWorkers returns the number of working goroutines.
func GetWorkers() int {
	return cfg.Workers
}

// GetMaxInputSize returns the maximum payload size in bytes.
func GetMaxInputSize() int {
	return cfg.MaxInputSize
}

// GetDigest returns the default digest name.
func GetDigest() string {
	return cfg.Digest
}

// GetFormat returns the default payload format.
func GetFormat() string {
	return cfg.Format
}

/* ------------------------------
         Utility Functions
------------------------------ */

func apply(display bool) error {
	var loaded config
	if err := viper.Unmarshal(&loaded); err != nil {
		return err
	}

	if err := validateConfig(&loaded); err != nil {
		return err
	}

	cfg = loaded

	if display {
		configContent, err := json.MarshalIndent(cfg, "", "    ")
		if err != nil {
			return err
		}

		log.Println(string(configContent))
	}

	return nil
}

func validateConfig(c *config) error {
	if c.Workers <= 0 {
		return errors.New("workers must be greater than 0")
	}

	if c.MaxInputSize <= 0 {
		return errors.New("maxInputSize must be greater than 0")
	}

	if _, _, err := net.SplitHostPort(c.Listen); err != nil {
		return fmt.Errorf("invalid listen address %q: %w", c.Listen, err)
	}

	if !hashutil.IsDigest(c.Digest) {
		return fmt.Errorf("%w: %q", hashutil.ErrUnknownDigest, c.Digest)
	}

	if !convert.IsFormat(c.Format) {
		return fmt.Errorf("%w: %q", convert.ErrUnknownFormat, c.Format)
	}

	return nil
}
