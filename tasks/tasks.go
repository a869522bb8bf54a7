// Package tasks runs batch transcoding of line based input.
package tasks

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"base58kit/util/base58"
	"base58kit/util/byteutil"
	"base58kit/util/convert"
	"base58kit/util/hashutil"
	"base58kit/util/log"
	"base58kit/util/timeutil"
)

// maxLineSize bounds a single input line.
const maxLineSize = 4 * 1024 * 1024

// errorPrefix marks a line that could not be transcoded.
const errorPrefix = "error: "

// ErrNoWorkers is returned when a job has no workers to run on.
var ErrNoWorkers = errors.New("workers must be greater than 0")

// Mode tells which direction a job transcodes.
type Mode int

// Modes.
const (
	Encode Mode = iota
	Decode
)

func (m Mode) String() string {
	if m == Decode {
		return "decode"
	}
	return "encode"
}

// Job describes one batch run.
type Job struct {
	Mode Mode
	// Format is the payload format of input lines when encoding,
	// and of output lines when decoding.
	Format string
	// Digest is applied to each payload before encoding.
	Digest string
	// Workers sets the number of transcoding goroutines.
	Workers int
}

// Stats summarizes a batch run.
type Stats struct {
	Lines   int
	Failed  int
	Elapsed time.Duration
}

func (s Stats) String() string {
	return fmt.Sprintf("%d lines, %d failed in %s", s.Lines, s.Failed, timeutil.ParseDuration(s.Elapsed))
}

type line struct {
	index  int
	text   string
	failed bool
}

// Run reads one payload per line from r, transcodes each with job.Workers
// goroutines and writes the results to w in input order. A line that fails
// is written as "error: <reason>" and counted in Stats.Failed.
func Run(ctx context.Context, r io.Reader, w io.Writer, job Job) (Stats, error) {
	if job.Workers <= 0 {
		return Stats{}, ErrNoWorkers
	}
	if !convert.IsFormat(job.Format) {
		return Stats{}, fmt.Errorf("%w: %q", convert.ErrUnknownFormat, job.Format)
	}
	if !hashutil.IsDigest(job.Digest) {
		return Stats{}, fmt.Errorf("%w: %q", hashutil.ErrUnknownDigest, job.Digest)
	}

	start := time.Now()
	log.Infof("Start batch %s with %d workers", job.Mode, job.Workers)

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan line, job.Workers)
	results := make(chan line, job.Workers)
	readErr := make(chan error, 1)

	go func() {
		defer close(lines)
		readErr <- scan(runCtx, r, lines)
	}()

	var wg sync.WaitGroup
	for i := 0; i < job.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for l := range lines {
				l.text, l.failed = job.transcode(l.text)

				select {
				case results <- l:
				case <-runCtx.Done():
					return
				}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	stats, writeErr := write(w, results)
	if writeErr != nil {
		// Unblock reader and workers, then wait for them to quit.
		cancel()
		for range results {
		}
	}
	stats.Elapsed = time.Since(start)

	if writeErr != nil {
		return stats, writeErr
	}
	if err := ctx.Err(); err != nil {
		return stats, err
	}
	if err := <-readErr; err != nil {
		return stats, err
	}

	log.Infof("Batch %s finished: %s", job.Mode, stats)

	return stats, nil
}

func scan(ctx context.Context, r io.Reader, lines chan<- line) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	for i := 0; scanner.Scan(); i++ {
		select {
		case lines <- line{index: i, text: scanner.Text()}:
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	return scanner.Err()
}

// write drains results and writes them in index order.
func write(w io.Writer, results <-chan line) (Stats, error) {
	var stats Stats

	bw := bufio.NewWriter(w)
	buffer := NewBuffer()

	for l := range results {
		stats.Lines++
		if l.failed {
			stats.Failed++
		}

		buffer.Put(l.index, l.text)

		for {
			text, ok := buffer.PopNext()
			if !ok {
				break
			}

			if _, err := bw.WriteString(text + "\n"); err != nil {
				return stats, err
			}
		}
	}

	if buffer.Size() != 0 {
		log.Warnf("%d transcoded lines left unwritten", buffer.Size())
	}

	return stats, bw.Flush()
}

// transcode returns the transcoded line, or an error line and true.
func (job Job) transcode(text string) (string, bool) {
	text = strings.TrimRight(text, "\r")
	if job.Mode == Decode || job.Format != convert.FormatText {
		text = strings.TrimSpace(text)
	}

	if text == "" {
		return "", false
	}

	var (
		out string
		err error
	)

	if job.Mode == Decode {
		out, err = decodeLine(text, job.Format)
	} else {
		out, err = encodeLine(text, job.Format, job.Digest)
	}

	if err != nil {
		return errorPrefix + err.Error(), true
	}

	return out, false
}

func encodeLine(text, format, digest string) (string, error) {
	data, err := convert.ParsePayload(text, format)
	if err != nil {
		return "", err
	}
	defer byteutil.Wipe(data)

	hashed, err := hashutil.Digest(digest, data)
	if err != nil {
		return "", err
	}
	defer byteutil.Wipe(hashed)

	return base58.Encode(hashed), nil
}

func decodeLine(text, format string) (string, error) {
	data, err := base58.Decode(text)
	if err != nil {
		return "", err
	}
	defer byteutil.Wipe(data)

	return convert.FormatPayload(data, format)
}
