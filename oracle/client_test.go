package oracle_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	eoserr "github.com/r3e-go/eosiogo/internal/errors"
	"github.com/r3e-go/eosiogo/oracle"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) *oracle.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := oracle.New(oracle.Config{BaseURL: srv.URL})
	require.NoError(t, err)
	return client
}

func TestGetInfo(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/chain/get_info", r.URL.Path)
		_ = json.NewEncoder(w).Encode(oracle.RPCResponse{
			Result: json.RawMessage(`{"chain_id":"00aabbbccc","head_block_num":4}`),
		})
	})

	info, err := client.GetInfo(context.Background())
	require.NoError(t, err)
	require.Equal(t, "00aabbbccc", info.ChainID)
	require.Equal(t, uint32(4), info.HeadBlockNum)
}

func TestAbiJSONToBin(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "eosio.token", req["code"])

		_ = json.NewEncoder(w).Encode(oracle.RPCResponse{
			Result: json.RawMessage(`{"binargs":"00213700"}`),
		})
	})

	out, err := client.AbiJSONToBin(context.Background(), "eosio.token", "transfer", map[string]any{"from": "alice"})
	require.NoError(t, err)
	require.Equal(t, "00213700", out.Binargs)
}

func TestReadOnlyPassThroughEndpoints(t *testing.T) {
	var gotPath string
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_ = json.NewEncoder(w).Encode(oracle.RPCResponse{
			Result: json.RawMessage(`{"ok":true}`),
		})
	})

	cases := []struct {
		name string
		call func() (json.RawMessage, error)
		path string
	}{
		{"GetABI", func() (json.RawMessage, error) { return client.GetABI(context.Background(), "eosio") }, "/v1/chain/get_abi"},
		{"GetCode", func() (json.RawMessage, error) { return client.GetCode(context.Background(), "eosio") }, "/v1/chain/get_code"},
		{"GetRawCodeAndABI", func() (json.RawMessage, error) { return client.GetRawCodeAndABI(context.Background(), "eosio") }, "/v1/chain/get_raw_code_and_abi"},
		{"GetCurrencyBalance", func() (json.RawMessage, error) {
			return client.GetCurrencyBalance(context.Background(), "eosio.token", "alice", "EOS")
		}, "/v1/chain/get_currency_balance"},
		{"GetCurrencyStats", func() (json.RawMessage, error) {
			return client.GetCurrencyStats(context.Background(), "eosio.token", "EOS")
		}, "/v1/chain/get_currency_stats"},
		{"GetProducerSchedule", func() (json.RawMessage, error) { return client.GetProducerSchedule(context.Background()) }, "/v1/chain/get_producer_schedule"},
		{"GetTableByScope", func() (json.RawMessage, error) { return client.GetTableByScope(context.Background(), map[string]any{"code": "eosio"}) }, "/v1/chain/get_table_by_scope"},
		{"GetBlockHeaderState", func() (json.RawMessage, error) { return client.GetBlockHeaderState(context.Background(), 1) }, "/v1/chain/get_block_header_state"},
		{"GetRequiredKeys", func() (json.RawMessage, error) {
			return client.GetRequiredKeys(context.Background(), map[string]any{}, []string{"EOS..."})
		}, "/v1/chain/get_required_keys"},
		{"GetDBSize", func() (json.RawMessage, error) { return client.GetDBSize(context.Background()) }, "/v1/db_size/get"},
		{"GetActions", func() (json.RawMessage, error) { return client.GetActions(context.Background(), "eosio", -1, -20) }, "/v1/history/get_actions"},
		{"GetTransaction", func() (json.RawMessage, error) { return client.GetTransaction(context.Background(), "abc123") }, "/v1/history/get_transaction"},
		{"GetKeyAccounts", func() (json.RawMessage, error) { return client.GetKeyAccounts(context.Background(), "EOS...") }, "/v1/history/get_key_accounts"},
		{"GetControlledAccounts", func() (json.RawMessage, error) { return client.GetControlledAccounts(context.Background(), "eosio") }, "/v1/history/get_controlled_accounts"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := tc.call()
			require.NoError(t, err)
			require.Equal(t, tc.path, gotPath)
			require.JSONEq(t, `{"ok":true}`, string(out))
		})
	}
}

func TestNewFromEnv(t *testing.T) {
	t.Setenv("EOSIO_RPC_URL", "https://node.example.com")
	t.Setenv("EOSIO_RPC_TIMEOUT", "10s")

	client, err := oracle.NewFromEnv(nil)
	require.NoError(t, err)
	require.NotNil(t, client)
}

func TestCallMapsRemoteErrorName(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(oracle.RPCResponse{
			Code: 500,
			Error: &oracle.RPCError{
				Code:    3040005,
				Name:    "tx_cpu_usage_exceeded",
				Message: "CPU usage exceeded",
			},
		})
	})

	_, err := client.GetInfo(context.Background())
	require.Error(t, err)
	var eosErr *eoserr.Error
	require.ErrorAs(t, err, &eosErr)
	require.Equal(t, eoserr.CodeCPUUsageExceeded, eosErr.Code)
}
