package cmd

import (
	"encoding/json"
	"fmt"

	"base58kit/config"
	"base58kit/rpc"

	"github.com/spf13/cobra"
)

var callURL string

var callCmd = &cobra.Command{
	Use:   "call [method] [params...]",
	Short: "call a base58kit JSON-RPC server, e.g., call decode 2g hex",
	Args:  cobra.MinimumNArgs(1),
	RunE:  call,
}

func init() {
	callCmd.Flags().StringVarP(&callURL, "url", "u", "", "server url (default the configured listen address)")

	rootCmd.AddCommand(callCmd)
}

func call(cmd *cobra.Command, args []string) error {
	client := rpc.NewClient(orDefault(callURL, config.GetListen()))

	var result json.RawMessage
	if err := client.Call(args[0], args[1:], &result); err != nil {
		return err
	}

	_, err := fmt.Fprintln(cmd.OutOrStdout(), string(result))
	return err
}
