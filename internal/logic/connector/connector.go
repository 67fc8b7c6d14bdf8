package connector

import (
	"fmt"
	"net/http"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/certproof-io/btc-anchor-connector/config"
	"github.com/certproof-io/btc-anchor-connector/internal/model"
	"github.com/certproof-io/btc-anchor-connector/internal/types"
	"github.com/certproof-io/btc-anchor-connector/pkg/log"
	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
)

// anchorPrefixLen is the length, in hex characters, of the framing prefix
// every anchoring output carries in front of the embedded payload.
const anchorPrefixLen = 8

// New returns the default connector (blockr.io) for the given network. An
// empty network selects mainnet. A nil client gets a default resty client
// with no timeout; timeout policy belongs to the caller.
func New(network model.Network, client *resty.Client, logger log.Logger) (types.TxConnector, error) {
	return NewFromProvider(model.ProviderBlockr, network, client, logger)
}

// NewFromProvider returns the connector for an explicitly chosen provider,
// so deployments can switch explorer APIs without code changes. An empty
// provider selects blockr.io.
func NewFromProvider(provider model.Provider, network model.Network, client *resty.Client, logger log.Logger) (types.TxConnector, error) {
	if network == "" {
		network = model.Mainnet
	}

	switch provider {
	case model.ProviderBlockchainInfo:
		return NewBlockchainInfoConnector(network, client, logger)
	case model.ProviderBlockr, "":
		return NewBlockrConnector(network, client, logger)
	case model.ProviderBlockcypher:
		return NewBlockcypherConnector(network, client, logger)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedProvider, provider)
	}
}

// NetworkFromName normalizes a bitcoin network name ("mainnet", "testnet",
// "testnet3", empty for mainnet) to the network enum the connectors accept.
func NetworkFromName(name string) (model.Network, error) {
	params := config.ChainParams(name)
	if params == nil {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedNetwork, name)
	}

	switch params.Name {
	case chaincfg.MainNetParams.Name:
		return model.Mainnet, nil
	case chaincfg.TestNet3Params.Name:
		return model.Testnet, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedNetwork, name)
	}
}

// baseConnector implements the provider round trip shared by every
// connector variant. The url holds one %s placeholder for the txid.
type baseConnector struct {
	url    string
	client *resty.Client
	logger log.Logger
}

func newBaseConnector(url string, client *resty.Client, logger log.Logger) baseConnector {
	if client == nil {
		client = resty.New()
	}
	if logger == nil {
		logger = log.NewNopLogger()
	}
	return baseConnector{
		url:    url,
		client: client,
		logger: logger,
	}
}

// FetchTx performs one GET against the provider and decodes the body. Any
// status other than 200 marks the transaction invalid; transport failures
// and non-json bodies propagate as plain errors.
func (b *baseConnector) FetchTx(txid string) (gjson.Result, error) {
	resp, err := b.client.R().Get(fmt.Sprintf(b.url, txid))
	if err != nil {
		return gjson.Result{}, errors.Wrapf(err, "lookup transaction_id=%s", txid)
	}

	if resp.StatusCode() != http.StatusOK {
		b.logger.Errorw("error looking up transaction",
			"transaction_id", txid,
			"status_code", resp.StatusCode())
		return gjson.Result{}, fmt.Errorf("%w: transaction_id=%s", ErrInvalidTransaction, txid)
	}

	body := resp.Body()
	if !gjson.ValidBytes(body) {
		return gjson.Result{}, errors.Errorf("invalid json response for transaction_id=%s", txid)
	}

	return gjson.ParseBytes(body), nil
}

// stripAnchorPrefix drops the fixed framing prefix from a raw anchoring
// script. Scripts no longer than the prefix reduce to "".
func stripAnchorPrefix(script string) string {
	if len(script) <= anchorPrefixLen {
		return ""
	}
	return script[anchorPrefixLen:]
}

// outputValue reads an output amount. A missing field counts as non-zero;
// only an explicit 0 marks the anchoring output.
func outputValue(output gjson.Result, field string) float64 {
	v := output.Get(field)
	if !v.Exists() {
		return 1
	}
	return v.Float()
}

// txData validates the parse results and assembles the canonical data.
func (b *baseConnector) txData(raw gjson.Result, revoked model.AddressSet, script string) (*model.TransactionData, error) {
	if script == "" {
		b.logger.Errorw("transaction has no anchoring output", "response", raw.Raw)
		return nil, fmt.Errorf("%w: no anchoring script found", ErrInvalidTransaction)
	}

	return &model.TransactionData{
		RevokedAddresses: revoked,
		Script:           script,
	}, nil
}
