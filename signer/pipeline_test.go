package signer_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/r3e-go/eosiogo/abi"
	eoserr "github.com/r3e-go/eosiogo/internal/errors"
	"github.com/r3e-go/eosiogo/oracle"
	"github.com/r3e-go/eosiogo/signer"
	"github.com/stretchr/testify/require"
)

func mustParseTime(t *testing.T, s string) time.Time {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, s)
	require.NoError(t, err)
	return ts
}

// TestSignProducesScenarioPackedTrx reproduces a worked example: given a
// chain id, reference-block fields, expiration, and one action whose
// dict-shaped payload the oracle translates to byte 03, the pipeline
// must produce the documented packed_trx hex exactly.
func TestSignProducesScenarioPackedTrx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v1/chain/get_info":
			_ = json.NewEncoder(w).Encode(oracle.RPCResponse{
				Result: json.RawMessage(`{"chain_id":"00aabbbccc000000000000000000000000000000000000000000000000000000"}`),
			})
		case "/v1/chain/abi_json_to_bin":
			_ = json.NewEncoder(w).Encode(oracle.RPCResponse{
				Result: json.RawMessage(`{"binargs":"03"}`),
			})
		default:
			t.Fatalf("unexpected call to %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	client, err := oracle.New(oracle.Config{BaseURL: srv.URL})
	require.NoError(t, err)

	pipeline := signer.New(client, nil)

	tx := &abi.Transaction{
		Expiration:     mustParseTime(t, "2019-11-12T12:50:48Z"),
		RefBlockNum:    3,
		RefBlockPrefix: 4,
		Actions: []abi.Action{{
			Account: "aioeos.test1",
			Name:    "test",
			Authorization: []abi.PermissionLevel{
				{Actor: "eostest12345", Permission: "active"},
			},
			Data: abi.UnresolvedActionPayload(map[string]any{"value": 3}),
		}},
	}

	signed, err := pipeline.Sign(context.Background(), tx, nil, nil)
	require.NoError(t, err)
	require.Equal(t,
		"a8aaca5d03000400000000000000011032561960aaa833000000000090b1ca0150c810216395315500000000a8ed3232010300",
		signed.PackedTrx,
	)
	require.Empty(t, signed.Signatures)
	require.Equal(t, 0, signed.Compression)
}

func TestSignRejectsTransactionMissingTapos(t *testing.T) {
	pipeline := signer.New(nil, nil)
	tx := &abi.Transaction{
		Actions: []abi.Action{{
			Account: "eosio",
			Name:    "newaccount",
			Data:    abi.RawActionPayload([]byte{0x01}),
		}},
	}

	_, err := pipeline.Sign(context.Background(), tx, nil, nil)
	require.Error(t, err)
	var eosErr *eoserr.Error
	require.ErrorAs(t, err, &eosErr)
	require.Equal(t, eoserr.CodeMissingTapos, eosErr.Code)
}

func TestSignWithNoPendingActionsSkipsOracleTranslation(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		switch r.URL.Path {
		case "/v1/chain/get_info":
			_ = json.NewEncoder(w).Encode(oracle.RPCResponse{
				Result: json.RawMessage(`{"chain_id":"0000000000000000000000000000000000000000000000000000000000000000"}`),
			})
		default:
			t.Fatalf("unexpected call to %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	client, err := oracle.New(oracle.Config{BaseURL: srv.URL})
	require.NoError(t, err)

	pipeline := signer.New(client, nil)
	tx := &abi.Transaction{
		RefBlockNum:    1,
		RefBlockPrefix: 2,
		Actions: []abi.Action{{
			Account: "eosio",
			Name:    "newaccount",
			Data:    abi.RawActionPayload([]byte{0x01}),
		}},
	}

	_, err = pipeline.Sign(context.Background(), tx, nil, nil)
	require.NoError(t, err)
	require.Equal(t, 1, calls, "only get_info should be called when no action payload needs translation")
}

func TestChainIdentifierIsCachedAcrossCalls(t *testing.T) {
	getInfoCalls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/v1/chain/get_info" {
			getInfoCalls++
			_ = json.NewEncoder(w).Encode(oracle.RPCResponse{
				Result: json.RawMessage(`{"chain_id":"0000000000000000000000000000000000000000000000000000000000000000"}`),
			})
			return
		}
		t.Fatalf("unexpected call to %s", r.URL.Path)
	}))
	defer srv.Close()

	client, err := oracle.New(oracle.Config{BaseURL: srv.URL})
	require.NoError(t, err)

	pipeline := signer.New(client, nil)
	for i := 0; i < 3; i++ {
		tx := &abi.Transaction{
			RefBlockNum:    1,
			RefBlockPrefix: 2,
			Actions: []abi.Action{{
				Account: "eosio",
				Name:    "newaccount",
				Data:    abi.RawActionPayload([]byte{byte(i)}),
			}},
		}
		_, err := pipeline.Sign(context.Background(), tx, nil, nil)
		require.NoError(t, err)
	}
	require.Equal(t, 1, getInfoCalls)
}
