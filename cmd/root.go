// Package cmd implements the base58kit command line interface.
// Commands and flags are implemented using Cobra.
package cmd

import (
	"io"
	"io/ioutil"
	"strings"

	"base58kit/config"
	"base58kit/util/byteutil"
	"base58kit/util/log"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "base58kit",
	Short: "Bitcoin alphabet base58 encoder and decoder",
	Long: `base58kit converts between raw bytes and base58 strings,
either one payload at a time, in batches, or as a JSON-RPC service.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Load(false, cfgFile); err != nil {
			return err
		}

		log.Init(config.DebugMode(), config.GetLogPath())
		log.SetPrefix(config.GetLabel())

		return nil
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&cfgFile, "config", "c", "", "config file (default ./config/config.yml)")
	flags.BoolP("debug", "d", false, "enable debug logs")
	flags.String("log-dir", "", "directory of log files")

	bindFlag("debug", flags, "debug")
	bindFlag("logpath", flags, "log-dir")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func bindFlag(key string, flags *pflag.FlagSet, name string) {
	if err := config.BindFlag(key, flags.Lookup(name)); err != nil {
		panic(err)
	}
}

// readInput returns args[0], or the whole stdin without its trailing newline.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}

	return readAll(cmd.InOrStdin())
}

func readAll(r io.Reader) (string, error) {
	raw, err := ioutil.ReadAll(r)
	defer byteutil.Wipe(raw)
	if err != nil {
		return "", err
	}

	return strings.TrimRight(string(raw), "\r\n"), nil
}

func orDefault(value, def string) string {
	if value == "" {
		return def
	}
	return value
}
