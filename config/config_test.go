package config

import (
	"errors"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"base58kit/util/hashutil"
)

func writeConfig(t *testing.T, content string) string {
	dir, err := ioutil.TempDir("", "base58kit-config")
	if err != nil {
		t.Fatal(err)
	}

	file := filepath.Join(dir, "config.yml")
	if err := ioutil.WriteFile(file, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	return file
}

func TestLoadDefaults(t *testing.T) {
	Reset()
	defer Reset()

	if err := LoadDefaults(); err != nil {
		t.Fatal(err)
	}

	if GetWorkers() != 4 {
		t.Fatalf("Workers: get=%d, want=4", GetWorkers())
	}
	if GetMaxInputSize() != 4096 {
		t.Fatalf("MaxInputSize: get=%d, want=4096", GetMaxInputSize())
	}
	if GetListen() != "127.0.0.1:5858" {
		t.Fatalf("Listen: get=%s, want=127.0.0.1:5858", GetListen())
	}
	if GetDigest() != hashutil.DigestNone {
		t.Fatalf("Digest: get=%s, want=none", GetDigest())
	}
	if GetFormat() != "hex" {
		t.Fatalf("Format: get=%s, want=hex", GetFormat())
	}
}

func TestLoadRepoConfig(t *testing.T) {
	Reset()
	defer Reset()

	// Found through ../config when running inside this package.
	if err := Load(false, ""); err != nil {
		t.Fatal(err)
	}

	if GetLabel() != "base58kit" {
		t.Fatalf("Label: get=%q, want=base58kit", GetLabel())
	}
	if GetLogPath() != "./logs" {
		t.Fatalf("LogPath: get=%q, want=./logs", GetLogPath())
	}
}

func TestLoadFile(t *testing.T) {
	Reset()
	defer Reset()

	file := writeConfig(t, `
debug: true
label: testnet
workers: 8
maxInputSize: 128
listen: 0.0.0.0:9000
digest: hash160
format: base64
`)
	defer os.RemoveAll(filepath.Dir(file))

	if err := Load(true, file); err != nil {
		t.Fatal(err)
	}

	if !DebugMode() {
		t.Fatalf("Debug: get=false, want=true")
	}
	if GetLabel() != "testnet" {
		t.Fatalf("Label: get=%q, want=testnet", GetLabel())
	}
	if GetWorkers() != 8 || GetMaxInputSize() != 128 {
		t.Fatalf("Get workers=%d maxInputSize=%d, want 8 and 128", GetWorkers(), GetMaxInputSize())
	}
	if GetListen() != "0.0.0.0:9000" {
		t.Fatalf("Listen: get=%s, want=0.0.0.0:9000", GetListen())
	}
	if GetDigest() != hashutil.DigestHash160 || GetFormat() != "base64" {
		t.Fatalf("Get digest=%s format=%s", GetDigest(), GetFormat())
	}
}

func TestLoadInvalid(t *testing.T) {
	testCases := map[string]string{
		"workers":      "workers: 0\n",
		"maxInputSize": "maxInputSize: -1\n",
		"listen":       "listen: localhost\n",
		"digest":       "digest: md5\n",
		"format":       "format: binary\n",
	}

	for name, content := range testCases {
		Reset()

		file := writeConfig(t, content)
		err := Load(false, file)
		os.RemoveAll(filepath.Dir(file))

		if err == nil {
			t.Fatalf("%s: get error=nil, want an error", name)
		}
	}

	Reset()
	if err := Load(false, "/nonexistent/config.yml"); err == nil {
		t.Fatalf("Missing explicit file: get error=nil, want an error")
	}

	Reset()
	file := writeConfig(t, "digest: md5\n")
	defer os.RemoveAll(filepath.Dir(file))
	if err := Load(false, file); !errors.Is(err, hashutil.ErrUnknownDigest) {
		t.Fatalf("Get error=%v, want ErrUnknownDigest", err)
	}
	Reset()
}
