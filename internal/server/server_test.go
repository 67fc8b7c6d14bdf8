package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/certproof-io/btc-anchor-connector/config"
	"github.com/certproof-io/btc-anchor-connector/internal/logic/connector"
	"github.com/certproof-io/btc-anchor-connector/internal/model"
	"github.com/certproof-io/btc-anchor-connector/pkg/log"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

// genesis block coinbase, format-wise a valid txid for any provider
const testTxID = "4a5e1e4baab89f3a32518a88c31bc87f618f76673e2cc77ab2127b7afdeda33b"

type stubConnector struct {
	data    *model.TransactionData
	err     error
	lookups []string
}

func (s *stubConnector) LookupTx(txid string) (*model.TransactionData, error) {
	s.lookups = append(s.lookups, txid)
	if s.err != nil {
		return nil, s.err
	}
	return s.data, nil
}

func (s *stubConnector) FetchTx(string) (gjson.Result, error) {
	return gjson.Result{}, s.err
}

func (s *stubConnector) ParseTx(gjson.Result) (*model.TransactionData, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.data, nil
}

func doRequest(t *testing.T, conn *stubConnector, path string) *httptest.ResponseRecorder {
	t.Helper()

	router := NewRouter(config.DefaultHTTPConfig(), conn, log.NewNopLogger())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestHandleLookup(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		conn := &stubConnector{data: &model.TransactionData{
			RevokedAddresses: model.NewAddressSet("1ABC"),
			Script:           "00aabbcc",
		}}

		rec := doRequest(t, conn, "/api/v1/transactions/"+testTxID)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		assert.JSONEq(t, `{"revoked_addresses":["1ABC"],"embedded_script":"00aabbcc"}`, rec.Body.String())
		assert.Equal(t, []string{testTxID}, conn.lookups)
	})

	t.Run("malformed txid fails without a provider round trip", func(t *testing.T) {
		conn := &stubConnector{}

		rec := doRequest(t, conn, "/api/v1/transactions/nonsense")

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "bad_request")
		assert.Empty(t, conn.lookups)
	})

	t.Run("invalid transaction maps to 404", func(t *testing.T) {
		conn := &stubConnector{err: errors.Wrap(connector.ErrInvalidTransaction, "lookup")}

		rec := doRequest(t, conn, "/api/v1/transactions/"+testTxID)

		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "not_found")
	})

	t.Run("provider failure maps to 502", func(t *testing.T) {
		conn := &stubConnector{err: errors.New("connection refused")}

		rec := doRequest(t, conn, "/api/v1/transactions/"+testTxID)

		require.Equal(t, http.StatusBadGateway, rec.Code)
		assert.Contains(t, rec.Body.String(), "bad_gateway")
	})
}

func TestHealthz(t *testing.T) {
	rec := doRequest(t, &stubConnector{}, "/healthz")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestMetricsEndpoint(t *testing.T) {
	rec := doRequest(t, &stubConnector{}, "/metrics")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "# HELP")
}

func TestUnknownRoute(t *testing.T) {
	rec := doRequest(t, &stubConnector{}, "/api/v2/other")

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "endpoint not found")
}

func TestNewDefaults(t *testing.T) {
	srv := New(nil, &stubConnector{}, nil)
	require.NotNil(t, srv)
	assert.Equal(t, config.DefaultHTTPConfig().ListenAddr, srv.srv.Addr)
}
