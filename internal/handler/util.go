package handler

import (
	"errors"
	"strconv"

	"github.com/certproof-io/btc-anchor-connector/config"
	"github.com/certproof-io/btc-anchor-connector/internal/model"
	logger "github.com/certproof-io/btc-anchor-connector/pkg/log"
	"github.com/spf13/cobra"
)

// ErrorCode contains the exit code the process terminates with.
type ErrorCode struct {
	Code int
}

func (e ErrorCode) Error() string {
	return strconv.Itoa(e.Code)
}

// VerifyFailedCode is the exit code for a digest verification failure,
// distinct from lookup failures so scripted callers can tell them apart.
const VerifyFailedCode = 2

func NewDefaultContext() *model.Context {
	return NewContext(
		config.DefaultConfig(),
		config.DefaultConnectorConfig(),
	)
}

func NewContext(cfg *config.Config, connectorCfg *config.ConnectorConfig) *model.Context {
	return &model.Context{
		Config:          cfg,
		ConnectorConfig: connectorCfg,
	}
}

func NewHTTPContext(cfg *config.Config, httpCfg *config.HTTPConfig, connectorCfg *config.ConnectorConfig) *model.Context {
	return &model.Context{
		Config:          cfg,
		ConnectorConfig: connectorCfg,
		HTTPConfig:      httpCfg,
	}
}

// InterceptConfigsPreRunHandler loads the lookup configuration from the
// environment, initializes the logger and binds the server context to cmd.
func InterceptConfigsPreRunHandler(cmd *cobra.Command) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	connectorCfg, err := config.LoadConnectorConfig()
	if err != nil {
		return err
	}

	logger.Init(cfg.LogLevel, cfg.LogFormat)
	serverCtx := NewContext(cfg, connectorCfg)
	return SetCmdServerContext(cmd, serverCtx)
}

// HTTPConfigsPreRunHandler additionally loads the http service
// configuration for the serve command.
func HTTPConfigsPreRunHandler(cmd *cobra.Command) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	httpCfg, err := config.LoadHTTPConfig()
	if err != nil {
		return err
	}

	connectorCfg, err := config.LoadConnectorConfig()
	if err != nil {
		return err
	}

	logger.Init(cfg.LogLevel, cfg.LogFormat)
	serverCtx := NewHTTPContext(cfg, httpCfg, connectorCfg)
	return SetCmdServerContext(cmd, serverCtx)
}

// GetServerContextFromCmd returns a Context from a command or an empty Context
// if it has not been set.
func GetServerContextFromCmd(cmd *cobra.Command) *model.Context {
	if v := cmd.Context().Value(model.ServerContextKey); v != nil {
		serverCtxPtr := v.(*model.Context)
		return serverCtxPtr
	}

	return NewDefaultContext()
}

// SetCmdServerContext sets a command's Context value to the provided argument.
func SetCmdServerContext(cmd *cobra.Command, serverCtx *model.Context) error {
	v := cmd.Context().Value(model.ServerContextKey)
	if v == nil {
		return errors.New("server context not set")
	}

	serverCtxPtr := v.(*model.Context)
	*serverCtxPtr = *serverCtx

	return nil
}
