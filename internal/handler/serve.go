package handler

import (
	"github.com/certproof-io/btc-anchor-connector/internal/model"
	"github.com/certproof-io/btc-anchor-connector/internal/server"
	"github.com/certproof-io/btc-anchor-connector/pkg/log"
	"github.com/spf13/cobra"
)

// HandleServeCmd runs the lookup http service until it is signaled to stop.
func HandleServeCmd(sctx *model.Context, cmd *cobra.Command) error {
	conn, err := BuildConnector(sctx)
	if err != nil {
		return err
	}

	logger := log.New(&log.Options{
		Name:   "http",
		Level:  sctx.Config.LogLevel,
		Format: sctx.Config.LogFormat,
	})

	srv := server.New(sctx.HTTPConfig, conn, logger)
	return srv.Run(cmd.Context())
}
