package rpc

import (
	"unicode/utf8"

	"base58kit/util/base58"
	"base58kit/util/byteutil"
	"base58kit/util/convert"
	"base58kit/util/hashutil"
)

type methodFunc func(params []string) (interface{}, *Error)

// encode params: [payload, format?, digest?]
func (s *Server) encode(params []string) (interface{}, *Error) {
	if len(params) < 1 || len(params) > 3 {
		return nil, newError(CodeInvalidParams, "encode expects [payload, format?, digest?]")
	}

	format := param(params, 1, s.opts.Format)
	digest := param(params, 2, s.opts.Digest)

	data, err := convert.ParsePayload(params[0], format)
	if err != nil {
		return nil, newError(CodeInvalidParams, "invalid payload: %v", err)
	}
	defer byteutil.Wipe(data)

	if len(data) > s.opts.MaxInputSize {
		return nil, newError(CodeInvalidParams, "payload exceeds %d bytes", s.opts.MaxInputSize)
	}

	hashed, err := hashutil.Digest(digest, data)
	if err != nil {
		return nil, newError(CodeInvalidParams, "%v", err)
	}
	defer byteutil.Wipe(hashed)

	return base58.Encode(hashed), nil
}

// decode params: [base58, format?]
func (s *Server) decode(params []string) (interface{}, *Error) {
	if len(params) < 1 || len(params) > 2 {
		return nil, newError(CodeInvalidParams, "decode expects [base58, format?]")
	}

	// A base58 string is never shorter than its decoded bytes.
	if len(params[0]) > 2*s.opts.MaxInputSize {
		return nil, newError(CodeInvalidParams, "input exceeds %d characters", 2*s.opts.MaxInputSize)
	}

	format := param(params, 1, s.opts.Format)
	if !convert.IsFormat(format) {
		return nil, newError(CodeInvalidParams, "%v: %q", convert.ErrUnknownFormat, format)
	}

	data, err := base58.Decode(params[0])
	if err != nil {
		return nil, newError(CodeInvalidParams, "%v", err)
	}
	defer byteutil.Wipe(data)

	if len(data) > s.opts.MaxInputSize {
		return nil, newError(CodeInvalidParams, "decoded payload exceeds %d bytes", s.opts.MaxInputSize)
	}

	// JSON strings cannot carry arbitrary bytes.
	if format == convert.FormatText && !utf8.Valid(data) {
		return nil, newError(CodeInvalidParams, "decoded payload is not valid UTF-8, use hex or base64")
	}

	formatted, err := convert.FormatPayload(data, format)
	if err != nil {
		return nil, newError(CodeInternalError, "%v", err)
	}

	return formatted, nil
}

// validate params: [base58]
func (s *Server) validate(params []string) (interface{}, *Error) {
	if len(params) != 1 {
		return nil, newError(CodeInvalidParams, "validate expects [base58]")
	}

	return base58.IsValid(params[0]), nil
}

// param returns params[i], or def when it is absent or empty.
func param(params []string, i int, def string) string {
	if i < len(params) && params[i] != "" {
		return params[i]
	}
	return def
}
