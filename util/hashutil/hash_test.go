package hashutil

import (
	"bytes"
	"errors"
	"fmt"
	"testing"
)

func TestHash160(t *testing.T) {
	data := []byte{0x00, 0x01, 0x02, 0x03}
	want := "3c3fa3d4adcaf8f52d5b1843975e122548269937"
	get := Hash160(data)

	if fmt.Sprintf("%x", get) != want {
		t.Fatalf("Get: %x, want: %s", get, want)
	}
}

func TestHash256(t *testing.T) {
	data := []byte{0x00, 0x01, 0x02, 0x03}
	want := "f7a355c00c89a08c80636bed35556a210b51786f6803a494f28fc5ba05959fc2"
	get := Hash256(data)

	if fmt.Sprintf("%x", get) != want {
		t.Fatalf("Get: %x, want: %s", get, want)
	}
}

func TestSha256(t *testing.T) {
	want := "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"
	get := Sha256(nil)

	if fmt.Sprintf("%x", get) != want {
		t.Fatalf("Get: %x, want: %s", get, want)
	}
}

func TestRipemd160(t *testing.T) {
	want := "9c1185a5c5e9fc54612808977ee8f548b2258d31"
	get := Ripemd160(nil)

	if fmt.Sprintf("%x", get) != want {
		t.Fatalf("Get: %x, want: %s", get, want)
	}
}

func TestDigest(t *testing.T) {
	data := []byte{0x00, 0x01, 0x02, 0x03}

	testCases := map[string][]byte{
		"":            data,
		DigestNone:    data,
		DigestSha256:  Sha256(data),
		DigestHash256: Hash256(data),
		DigestHash160: Hash160(data),
	}

	for name, want := range testCases {
		get, err := Digest(name, data)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(get, want) {
			t.Fatalf("Digest(%q): get=%x, want=%x", name, get, want)
		}
		if !IsDigest(name) {
			t.Fatalf("IsDigest(%q): get=false, want=true", name)
		}
	}
}

func TestDigestUnknown(t *testing.T) {
	_, err := Digest("md5", []byte{0x01})
	if !errors.Is(err, ErrUnknownDigest) {
		t.Fatalf("Get error=%v, want ErrUnknownDigest", err)
	}
	if IsDigest("md5") {
		t.Fatalf("IsDigest(md5): get=true, want=false")
	}
}
