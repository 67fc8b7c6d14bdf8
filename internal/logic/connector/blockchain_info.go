package connector

import (
	"fmt"

	"github.com/certproof-io/btc-anchor-connector/internal/model"
	"github.com/certproof-io/btc-anchor-connector/internal/types"
	"github.com/certproof-io/btc-anchor-connector/pkg/log"
	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

const blockchainInfoURL = "https://blockchain.info/rawtx/%s?cors=true"

// BlockchainInfoConnector looks up transactions through the blockchain.info
// raw tx API. blockchain.info serves mainnet only.
type BlockchainInfoConnector struct {
	baseConnector
}

var _ types.TxConnector = (*BlockchainInfoConnector)(nil)

// NewBlockchainInfoConnector new blockchain.info connector
func NewBlockchainInfoConnector(network model.Network, client *resty.Client, logger log.Logger) (*BlockchainInfoConnector, error) {
	if network != model.Mainnet {
		return nil, fmt.Errorf("%w: blockchain.info does not serve %s", ErrUnsupportedNetwork, network)
	}

	return &BlockchainInfoConnector{newBaseConnector(blockchainInfoURL, client, logger)}, nil
}

// LookupTx fetches the transaction and extracts the anchoring data.
func (c *BlockchainInfoConnector) LookupTx(txid string) (*model.TransactionData, error) {
	raw, err := c.FetchTx(txid)
	if err != nil {
		return nil, err
	}
	return c.ParseTx(raw)
}

// ParseTx walks the "out" list: the zero-value output carries the anchoring
// script, outputs flagged "spent" mark their address as revoked.
func (c *BlockchainInfoConnector) ParseTx(raw gjson.Result) (*model.TransactionData, error) {
	revoked := make(model.AddressSet)
	var script string

	for _, out := range raw.Get("out").Array() {
		if outputValue(out, "value") == 0 {
			script = stripAnchorPrefix(out.Get("script").String())
		} else if out.Get("spent").Bool() {
			if addr := out.Get("addr").String(); addr != "" {
				revoked.Add(addr)
			}
		}
	}

	return c.txData(raw, revoked, script)
}
