package cmd

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"base58kit/config"
	"base58kit/tasks"
	"base58kit/util/log"

	"github.com/spf13/cobra"
)

var (
	batchDecode bool
	batchIn     string
	batchOut    string
	batchFormat string
	batchDigest string
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "transcode one payload per line",
	Args:  cobra.NoArgs,
	RunE:  batch,
}

func init() {
	flags := batchCmd.Flags()
	flags.BoolVar(&batchDecode, "decode", false, "decode base58 lines instead of encoding payloads")
	flags.StringVarP(&batchIn, "in", "i", "", "input file (default stdin)")
	flags.StringVarP(&batchOut, "out", "o", "", "output file (default stdout)")
	flags.StringVarP(&batchFormat, "format", "f", "", "payload format [hex|text|base64]")
	flags.StringVar(&batchDigest, "digest", "", "digest applied before encoding [none|sha256|hash256|hash160]")
	flags.IntP("workers", "w", 0, "number of transcoding goroutines")

	bindFlag("workers", flags, "workers")

	rootCmd.AddCommand(batchCmd)
}

func batch(cmd *cobra.Command, args []string) error {
	var r io.Reader = cmd.InOrStdin()
	if batchIn != "" {
		f, err := os.Open(batchIn)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}

	var w io.Writer = cmd.OutOrStdout()
	if batchOut != "" {
		f, err := os.OpenFile(batchOut, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0600)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	job := tasks.Job{
		Mode:    tasks.Encode,
		Format:  orDefault(batchFormat, config.GetFormat()),
		Digest:  orDefault(batchDigest, config.GetDigest()),
		Workers: config.GetWorkers(),
	}
	if batchDecode {
		job.Mode = tasks.Decode
	}

	ctx, cancel := withSignal(context.Background())
	defer cancel()

	stats, err := tasks.Run(ctx, r, w, job)
	if err != nil {
		return err
	}

	if stats.Failed > 0 {
		log.Warnf("%d of %d lines failed", stats.Failed, stats.Lines)
	}

	return nil
}

// withSignal returns a context cancelled on SIGINT or SIGTERM.
func withSignal(parent context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case sig := <-ch:
			log.Infof("Received %s, stopping", sig)
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(ch)
	}()

	return ctx, cancel
}
