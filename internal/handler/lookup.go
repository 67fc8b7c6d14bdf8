package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/certproof-io/btc-anchor-connector/internal/logic/connector"
	"github.com/certproof-io/btc-anchor-connector/internal/metrics"
	"github.com/certproof-io/btc-anchor-connector/internal/model"
	"github.com/certproof-io/btc-anchor-connector/internal/types"
	"github.com/certproof-io/btc-anchor-connector/pkg/log"
	"github.com/certproof-io/btc-anchor-connector/pkg/utils"
	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

const (
	FlagExpectDigest = "expect-digest"
	FlagCertFile     = "cert-file"
)

// HandleLookupCmd looks up one transaction through the configured provider,
// prints the canonical anchoring data as json and, when asked to, verifies
// the anchored payload against an expected digest.
func HandleLookupCmd(sctx *model.Context, cmd *cobra.Command, txid string) error {
	expectDigest, err := cmd.Flags().GetString(FlagExpectDigest)
	if err != nil {
		return err
	}

	certFile, err := cmd.Flags().GetString(FlagCertFile)
	if err != nil {
		return err
	}

	if _, err := utils.ParseTxID(txid); err != nil {
		return errors.Wrap(err, "invalid transaction id")
	}

	conn, err := BuildConnector(sctx)
	if err != nil {
		return err
	}

	data, err := conn.LookupTx(txid)
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))

	return verifyDigest(data, txid, expectDigest, certFile)
}

// BuildConnector wires the configured provider on the configured network,
// wrapped with its metrics recorder.
func BuildConnector(sctx *model.Context) (types.TxConnector, error) {
	cfg := sctx.ConnectorConfig

	network, err := connector.NetworkFromName(cfg.NetworkName)
	if err != nil {
		return nil, err
	}

	client := resty.New()
	if cfg.HTTPTimeout > 0 {
		client.SetTimeout(cfg.HTTPTimeout)
	}

	provider := model.Provider(cfg.Provider)
	logger := log.New(&log.Options{
		Name:   "connector",
		Level:  sctx.Config.LogLevel,
		Format: sctx.Config.LogFormat,
	})

	conn, err := connector.NewFromProvider(provider, network, client, logger)
	if err != nil {
		return nil, err
	}

	return connector.NewObservedConnector(conn, metrics.NewConnector(provider, network)), nil
}

// verifyDigest checks the anchored payload against the digest the caller
// expects. Without an expectation it is a no-op.
func verifyDigest(data *model.TransactionData, txid, expectDigest, certFile string) error {
	expected, err := expectedDigest(expectDigest, certFile)
	if err != nil {
		return err
	}
	if expected == nil {
		return nil
	}

	anchored, err := utils.MakeBytesFromHexString(data.Script)
	if err != nil {
		return errors.Wrap(err, "anchored payload is not valid hex")
	}

	if !bytes.Equal(anchored.Slice(), expected.Slice()) {
		log.Errorw("anchored payload does not match expected digest",
			"transaction_id", txid,
			"anchored", anchored.HexString(),
			"expected", expected.HexString())
		return ErrorCode{Code: VerifyFailedCode}
	}

	log.Infow("anchored payload matches expected digest", "transaction_id", txid)
	return nil
}

// expectedDigest resolves the digest to verify against: given directly as
// hex, or computed as the sha256 of a local certificate file.
func expectedDigest(expectDigest, certFile string) (utils.Bytes, error) {
	switch {
	case expectDigest != "":
		b, err := utils.MakeBytesFromHexString(expectDigest)
		if err != nil {
			return nil, errors.Wrap(err, "expected digest is not valid hex")
		}
		return b, nil
	case certFile != "":
		raw, err := os.ReadFile(certFile)
		if err != nil {
			return nil, errors.Wrap(err, "read certificate file")
		}
		return utils.AsBytes(raw).Sha256(), nil
	default:
		return nil, nil
	}
}
