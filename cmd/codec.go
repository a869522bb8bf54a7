package cmd

import (
	"fmt"

	"base58kit/config"
	"base58kit/util/base58"
	"base58kit/util/byteutil"
	"base58kit/util/convert"
	"base58kit/util/hashutil"
	"base58kit/util/log"

	"github.com/spf13/cobra"
)

var (
	encodeFormat string
	encodeDigest string
	decodeFormat string
)

var encodeCmd = &cobra.Command{
	Use:   "encode [payload]",
	Short: "encode a payload to base58, reads stdin when payload is omitted",
	Args:  cobra.MaximumNArgs(1),
	RunE:  encode,
}

var decodeCmd = &cobra.Command{
	Use:   "decode [base58]",
	Short: "decode a base58 string, reads stdin when it is omitted",
	Args:  cobra.MaximumNArgs(1),
	RunE:  decode,
}

func init() {
	encodeCmd.Flags().StringVarP(&encodeFormat, "format", "f", "", "payload format [hex|text|base64]")
	encodeCmd.Flags().StringVar(&encodeDigest, "digest", "", "digest applied before encoding [none|sha256|hash256|hash160]")
	decodeCmd.Flags().StringVarP(&decodeFormat, "format", "f", "", "output format [hex|text|base64]")

	rootCmd.AddCommand(encodeCmd, decodeCmd)
}

func encode(cmd *cobra.Command, args []string) error {
	input, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	data, err := convert.ParsePayload(input, orDefault(encodeFormat, config.GetFormat()))
	if err != nil {
		return err
	}
	defer byteutil.Wipe(data)

	hashed, err := hashutil.Digest(orDefault(encodeDigest, config.GetDigest()), data)
	if err != nil {
		return err
	}
	defer byteutil.Wipe(hashed)

	log.Debugf("Encoding %v", hashed)

	_, err = fmt.Fprintln(cmd.OutOrStdout(), base58.Encode(hashed))
	return err
}

func decode(cmd *cobra.Command, args []string) error {
	input, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	data, err := base58.Decode(input)
	if err != nil {
		return err
	}
	defer byteutil.Wipe(data)

	log.Debugf("Decoded %v", data)

	formatted, err := convert.FormatPayload(data, orDefault(decodeFormat, config.GetFormat()))
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), formatted)
	return err
}
