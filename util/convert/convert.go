package convert

import (
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

// Payload formats understood by ParsePayload and FormatPayload.
const (
	FormatHex    = "hex"
	FormatText   = "text"
	FormatBase64 = "base64"
)

// ErrUnknownFormat is returned for a payload format that is not supported.
var ErrUnknownFormat = errors.New("unknown payload format")

// IsFormat tells if format is supported. The empty string means hex.
func IsFormat(format string) bool {
	switch format {
	case "", FormatHex, FormatText, FormatBase64:
		return true
	}
	return false
}

// ParsePayload converts a textual payload into bytes.
// Hex payloads may carry a 0x prefix, e.g., 0x00ff -> [0x00, 0xff].
func ParsePayload(payload, format string) ([]byte, error) {
	switch format {
	case "", FormatHex:
		payload = strings.TrimPrefix(strings.TrimPrefix(payload, "0x"), "0X")
		return hex.DecodeString(payload)
	case FormatText:
		return []byte(payload), nil
	case FormatBase64:
		return base64.StdEncoding.DecodeString(payload)
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// FormatPayload converts bytes into their textual form.
func FormatPayload(data []byte, format string) (string, error) {
	switch format {
	case "", FormatHex:
		return hex.EncodeToString(data), nil
	case FormatText:
		return string(data), nil
	case FormatBase64:
		return base64.StdEncoding.EncodeToString(data), nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}
