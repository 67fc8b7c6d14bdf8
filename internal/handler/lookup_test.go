package handler

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/certproof-io/btc-anchor-connector/internal/logic/connector"
	"github.com/certproof-io/btc-anchor-connector/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildConnector(t *testing.T) {
	t.Run("default config wires the observed blockr connector", func(t *testing.T) {
		conn, err := BuildConnector(NewDefaultContext())
		require.NoError(t, err)

		_, ok := conn.(*connector.ObservedConnector)
		require.True(t, ok)
	})

	t.Run("provider and network come from config", func(t *testing.T) {
		sctx := NewDefaultContext()
		sctx.ConnectorConfig.Provider = "blockcypher"
		sctx.ConnectorConfig.NetworkName = "testnet"

		_, err := BuildConnector(sctx)
		require.NoError(t, err)
	})

	t.Run("unknown provider", func(t *testing.T) {
		sctx := NewDefaultContext()
		sctx.ConnectorConfig.Provider = "blockstream"

		_, err := BuildConnector(sctx)
		require.ErrorIs(t, err, connector.ErrUnsupportedProvider)
	})

	t.Run("unknown network", func(t *testing.T) {
		sctx := NewDefaultContext()
		sctx.ConnectorConfig.NetworkName = "signet"

		_, err := BuildConnector(sctx)
		require.ErrorIs(t, err, connector.ErrUnsupportedNetwork)
	})

	t.Run("mainnet only provider on testnet", func(t *testing.T) {
		sctx := NewDefaultContext()
		sctx.ConnectorConfig.Provider = "blockchain.info"
		sctx.ConnectorConfig.NetworkName = "testnet"

		_, err := BuildConnector(sctx)
		require.ErrorIs(t, err, connector.ErrUnsupportedNetwork)
	})
}

func TestVerifyDigest(t *testing.T) {
	data := &model.TransactionData{
		RevokedAddresses: model.NewAddressSet(),
		// sha256 of "hello"
		Script: "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824",
	}

	t.Run("no expectation is a no-op", func(t *testing.T) {
		require.NoError(t, verifyDigest(data, "txid", "", ""))
	})

	t.Run("matching digest", func(t *testing.T) {
		require.NoError(t, verifyDigest(data, "txid", data.Script, ""))
	})

	t.Run("mismatched digest carries the verify exit code", func(t *testing.T) {
		err := verifyDigest(data, "txid", "00aabbcc", "")
		require.Error(t, err)

		var code ErrorCode
		require.ErrorAs(t, err, &code)
		assert.Equal(t, VerifyFailedCode, code.Code)
	})

	t.Run("matching certificate file", func(t *testing.T) {
		certFile := filepath.Join(t.TempDir(), "cert.json")
		require.NoError(t, os.WriteFile(certFile, []byte("hello"), 0o600))

		require.NoError(t, verifyDigest(data, "txid", "", certFile))
	})

	t.Run("mismatched certificate file", func(t *testing.T) {
		certFile := filepath.Join(t.TempDir(), "cert.json")
		require.NoError(t, os.WriteFile(certFile, []byte("tampered"), 0o600))

		err := verifyDigest(data, "txid", "", certFile)
		var code ErrorCode
		require.ErrorAs(t, err, &code)
		assert.Equal(t, VerifyFailedCode, code.Code)
	})

	t.Run("missing certificate file", func(t *testing.T) {
		err := verifyDigest(data, "txid", "", filepath.Join(t.TempDir(), "missing.json"))
		require.Error(t, err)
	})

	t.Run("expected digest must be hex", func(t *testing.T) {
		require.Error(t, verifyDigest(data, "txid", "not-hex", ""))
	})

	t.Run("anchored payload must be hex", func(t *testing.T) {
		broken := &model.TransactionData{Script: "xyz"}
		require.Error(t, verifyDigest(broken, "txid", "00aabbcc", ""))
	})
}
