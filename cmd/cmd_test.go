package cmd

import (
	"bytes"
	"io"
	"io/ioutil"
	"net"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"base58kit/rpc"
	"base58kit/util/hashutil"

	"github.com/facebookgo/ensure"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	logDir, err := ioutil.TempDir("", "base58kit-cmd")
	ensure.Nil(t, err)
	defer os.RemoveAll(logDir)

	encodeFormat, encodeDigest, decodeFormat = "", "", ""
	batchDecode, batchIn, batchOut, batchFormat, batchDigest = false, "", "", "", ""
	callURL = ""

	var out bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(ioutil.Discard)
	rootCmd.SetArgs(append(args, "--log-dir", logDir))

	err = rootCmd.Execute()
	return out.String(), err
}

func TestEncodeCommand(t *testing.T) {
	out, err := execute(t, "", "encode", "0001")
	ensure.Nil(t, err)
	ensure.DeepEqual(t, out, "12\n")

	out, err = execute(t, "Test data\n", "encode", "--format", "text")
	ensure.Nil(t, err)
	ensure.DeepEqual(t, out, "25JnwSn7XKfNQ\n")

	out, err = execute(t, "", "encode", "--digest", hashutil.DigestSha256, "")
	ensure.Nil(t, err)
	ensure.DeepEqual(t, out, "GKot5hBsd81kMupNCXHaqbhv3huEbxAFMLnpcX2hniwn\n")

	_, err = execute(t, "", "encode", "zz")
	ensure.NotNil(t, err)
}

func TestDecodeCommand(t *testing.T) {
	out, err := execute(t, "", "decode", "111")
	ensure.Nil(t, err)
	ensure.DeepEqual(t, out, "000000\n")

	out, err = execute(t, "2NEpo7TZRRrLZSi2U\n", "decode", "-f", "text")
	ensure.Nil(t, err)
	ensure.DeepEqual(t, out, "Hello World!\n")

	_, err = execute(t, "", "decode", "0OIl")
	ensure.NotNil(t, err)
	ensure.StringContains(t, err.Error(), "invalid base58 character")
}

func TestBatchCommand(t *testing.T) {
	dir, err := ioutil.TempDir("", "base58kit-batch")
	ensure.Nil(t, err)
	defer os.RemoveAll(dir)

	in := filepath.Join(dir, "in.txt")
	outFile := filepath.Join(dir, "out.txt")
	ensure.Nil(t, ioutil.WriteFile(in, []byte("0001\n61\n"), 0600))

	_, err = execute(t, "", "batch", "--in", in, "--out", outFile, "--workers", "2")
	ensure.Nil(t, err)

	content, err := ioutil.ReadFile(outFile)
	ensure.Nil(t, err)
	ensure.DeepEqual(t, string(content), "12\n2g\n")

	out, err := execute(t, "12\n2g\n", "batch", "--decode")
	ensure.Nil(t, err)
	ensure.DeepEqual(t, out, "0001\n61\n")
}

func TestCallCommand(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	ensure.Nil(t, err)

	srv := rpc.NewServer(rpc.Options{MaxInputSize: 64, Format: "hex"})
	go srv.Serve(ln)
	defer ln.Close()

	out, err := execute(t, "", "call", "--url", ln.Addr().String(), "encode", "0001")
	ensure.Nil(t, err)
	ensure.DeepEqual(t, out, "\"12\"\n")

	out, err = execute(t, "", "call", "--url", ln.Addr().String(), "validate", "0OIl")
	ensure.Nil(t, err)
	ensure.DeepEqual(t, out, "false\n")

	_, err = execute(t, "", "call", "--url", ln.Addr().String(), "decode", "0")
	ensure.NotNil(t, err)
}

// stdinRecorder hands out its payload in a single read and keeps the
// slice of the caller's buffer it was written to.
type stdinRecorder struct {
	payload []byte
	written []byte
}

func (r *stdinRecorder) Read(p []byte) (int, error) {
	if r.written != nil {
		return 0, io.EOF
	}

	n := copy(p, r.payload)
	r.written = p[:n]
	return n, nil
}

func TestReadAllWipesBuffer(t *testing.T) {
	r := &stdinRecorder{payload: []byte("00ff\n")}

	get, err := readAll(r)
	ensure.Nil(t, err)
	ensure.DeepEqual(t, get, "00ff")
	ensure.DeepEqual(t, r.written, make([]byte, len("00ff\n")))
}
