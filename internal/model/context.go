package model

import (
	"github.com/certproof-io/btc-anchor-connector/config"
)

type serverContext string

// ServerContextKey is the context key used to retrieve a server Context from
// a command's Context.
const ServerContextKey = serverContext("server.context")

// server context
type Context struct {
	Config          *config.Config
	ConnectorConfig *config.ConnectorConfig
	HTTPConfig      *config.HTTPConfig
}
