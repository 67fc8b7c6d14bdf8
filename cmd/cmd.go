package cmd

import (
	"context"
	"errors"
	"os"

	"github.com/certproof-io/btc-anchor-connector/internal/handler"
	"github.com/certproof-io/btc-anchor-connector/internal/model"
	"github.com/spf13/cobra"
)

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd().Execute()
	if err != nil {
		var code handler.ErrorCode
		if errors.As(err, &code) {
			os.Exit(code.Code)
		}
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "anchor-connector",
		Short:        "look up anchored certificate data",
		Long:         "anchor-connector looks up bitcoin transactions through block explorer APIs and extracts the certificate anchoring data they carry",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			ctx := context.Background()
			ctx = context.WithValue(ctx, model.ServerContextKey, handler.NewDefaultContext())
			cmd.SetContext(ctx)
		},
	}

	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.AddCommand(buildLookupCmd())
	rootCmd.AddCommand(buildServeCmd())
	return rootCmd
}

func buildLookupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lookup <txid>",
		Short: "look up one transaction and print its anchoring data",
		Args:  cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return handler.InterceptConfigsPreRunHandler(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return handler.HandleLookupCmd(GetServerContextFromCmd(cmd), cmd, args[0])
		},
	}

	cmd.Flags().String(handler.FlagExpectDigest, "", "hex digest the anchored payload must match")
	cmd.Flags().String(handler.FlagCertFile, "", "certificate file whose sha256 the anchored payload must match")
	cmd.MarkFlagsMutuallyExclusive(handler.FlagExpectDigest, handler.FlagCertFile)
	return cmd
}

func buildServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "start the lookup http service",
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return handler.HTTPConfigsPreRunHandler(cmd)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handler.HandleServeCmd(GetServerContextFromCmd(cmd), cmd)
		},
	}
	return cmd
}

// GetServerContextFromCmd returns a Context from a command or an empty Context
// if it has not been set.
func GetServerContextFromCmd(cmd *cobra.Command) *model.Context {
	if v := cmd.Context().Value(model.ServerContextKey); v != nil {
		serverCtxPtr := v.(*model.Context)
		return serverCtxPtr
	}

	return handler.NewDefaultContext()
}
