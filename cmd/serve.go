package cmd

import (
	"context"
	"fmt"
	"net/http"
	_ "net/http/pprof"

	"base58kit/config"
	"base58kit/rpc"
	"base58kit/util/log"

	"github.com/spf13/cobra"
)

var (
	pprofEnabled bool
	pprofPort    int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serve encode/decode over JSON-RPC",
	Args:  cobra.NoArgs,
	RunE:  serve,
}

func init() {
	flags := serveCmd.Flags()
	flags.String("listen", "", "JSON-RPC listen address, e.g., 127.0.0.1:5858")
	flags.BoolVar(&pprofEnabled, "pprof", false, "enable pprof")
	flags.IntVarP(&pprofPort, "pprof-port", "p", 6060, "pprof port number")

	bindFlag("listen", flags, "listen")

	rootCmd.AddCommand(serveCmd)
}

func serve(cmd *cobra.Command, args []string) error {
	if pprofEnabled {
		if err := enablePProf(); err != nil {
			return err
		}
	}

	srv := rpc.NewServer(rpc.Options{
		MaxInputSize: config.GetMaxInputSize(),
		Digest:       config.GetDigest(),
		Format:       config.GetFormat(),
	})

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe(config.GetListen())
	}()

	ctx, cancel := withSignal(context.Background())
	defer cancel()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("Shutting down JSON-RPC server")
	return srv.Shutdown()
}

func enablePProf() error {
	if pprofPort < 1 || pprofPort > 65535 {
		return fmt.Errorf("incorrect pprof port %d", pprofPort)
	}

	go func() {
		url := fmt.Sprintf("localhost:%d", pprofPort)
		log.Warn(http.ListenAndServe(url, nil))
	}()

	return nil
}
