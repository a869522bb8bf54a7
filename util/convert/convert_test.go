package convert

import (
	"bytes"
	"errors"
	"testing"
)

func TestParsePayload(t *testing.T) {
	testCases := []struct {
		payload string
		format  string
		want    []byte
	}{
		{"", FormatHex, []byte{}},
		{"00ff", FormatHex, []byte{0x00, 0xff}},
		{"0x00ff", "", []byte{0x00, 0xff}},
		{"0X0A", FormatHex, []byte{0x0a}},
		{"abc", FormatText, []byte("abc")},
		{"AAH/", FormatBase64, []byte{0x00, 0x01, 0xff}},
	}

	for _, tc := range testCases {
		get, err := ParsePayload(tc.payload, tc.format)
		if err != nil {
			t.Fatalf("ParsePayload(%q, %q): unexpected error %v", tc.payload, tc.format, err)
		}
		if !bytes.Equal(get, tc.want) {
			t.Fatalf("ParsePayload(%q, %q): get=%x, want=%x", tc.payload, tc.format, get, tc.want)
		}
	}
}

func TestParsePayloadError(t *testing.T) {
	if _, err := ParsePayload("zz", FormatHex); err == nil {
		t.Fatalf("Get error=nil, want an error")
	}
	if _, err := ParsePayload("!!", FormatBase64); err == nil {
		t.Fatalf("Get error=nil, want an error")
	}
	if _, err := ParsePayload("00", "binary"); !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("Get error=%v, want ErrUnknownFormat", err)
	}
}

func TestFormatPayload(t *testing.T) {
	data := []byte{0x00, 0x01, 0xff}

	testCases := map[string]string{
		"":           "0001ff",
		FormatHex:    "0001ff",
		FormatBase64: "AAH/",
	}

	for format, want := range testCases {
		get, err := FormatPayload(data, format)
		if err != nil {
			t.Fatal(err)
		}
		if get != want {
			t.Fatalf("FormatPayload(%q): get=%s, want=%s", format, get, want)
		}
	}

	get, err := FormatPayload([]byte("abc"), FormatText)
	if err != nil || get != "abc" {
		t.Fatalf("FormatPayload(text): get=%q, err=%v", get, err)
	}

	if _, err := FormatPayload(data, "binary"); !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("Get error=%v, want ErrUnknownFormat", err)
	}
}

func TestIsFormat(t *testing.T) {
	for _, f := range []string{"", FormatHex, FormatText, FormatBase64} {
		if !IsFormat(f) {
			t.Fatalf("IsFormat(%q): get=false, want=true", f)
		}
	}
	if IsFormat("binary") {
		t.Fatalf("IsFormat(binary): get=true, want=false")
	}
}
