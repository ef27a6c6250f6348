// Package oracle is the thin JSON-RPC adapter the signing pipeline uses
// to reach a node: binary conversion of dict-shaped action payloads,
// chain-id lookup, transaction submission, and the read-only
// pass-through endpoints (spec §6).
package oracle

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/r3e-go/eosiogo/internal/config"
	"github.com/r3e-go/eosiogo/internal/httputil"
	"github.com/r3e-go/eosiogo/internal/logging"
)

// Client is a request/response oracle over a single node's HTTP API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *logging.Logger
}

// Config configures a Client.
type Config struct {
	BaseURL      string
	Timeout      time.Duration
	RequireHTTPS bool
	HTTPClient   *http.Client
	Logger       *logging.Logger
}

// New validates cfg and builds a Client.
func New(cfg Config) (*Client, error) {
	normalized, err := httputil.NormalizeBaseURL(cfg.BaseURL, cfg.RequireHTTPS)
	if err != nil {
		return nil, fmt.Errorf("invalid oracle base URL: %w", err)
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	log := cfg.Logger
	if log == nil {
		log = logging.NewFromEnv("oracle")
	}

	return &Client{
		baseURL:    normalized,
		httpClient: httputil.NewClient(cfg.HTTPClient, timeout),
		log:        log,
	}, nil
}

// Call issues one JSON-RPC request to path (e.g. "/v1/chain/get_info")
// with the given body, and decodes the result into out.
func (c *Client) Call(ctx context.Context, path string, body, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	url := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := httputil.ReadAllStrict(resp.Body, 8<<20)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	var envelope RPCResponse
	if err := json.Unmarshal(respBody, &envelope); err != nil {
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			msg := strings.TrimSpace(string(respBody))
			return fmt.Errorf("oracle http error %d: %s", resp.StatusCode, msg)
		}
		return fmt.Errorf("unmarshal response: %w", err)
	}

	if envelope.Code == 500 || envelope.Error != nil {
		c.log.WithField("path", path).WithField("rpc_error", envelope.Error).Warn("oracle call rejected")
		if envelope.Error == nil {
			return mapResponseError(&RPCError{Code: envelope.Code})
		}
		return mapResponseError(envelope.Error)
	}

	if out == nil || len(envelope.Result) == 0 {
		return nil
	}
	if err := json.Unmarshal(envelope.Result, out); err != nil {
		return fmt.Errorf("unmarshal result: %w", err)
	}
	return nil
}

// NewFromEnv builds a Client from EOSIO_RPC_URL / EOSIO_RPC_TIMEOUT /
// EOSIO_RPC_REQUIRE_HTTPS, the envdecode-based configuration surface
// (internal/config), rather than a literal Config.
func NewFromEnv(logger *logging.Logger) (*Client, error) {
	cfg, err := config.LoadOracleConfig()
	if err != nil {
		return nil, fmt.Errorf("load oracle config: %w", err)
	}
	return New(Config{
		BaseURL:      cfg.RPCURL,
		Timeout:      cfg.Timeout,
		RequireHTTPS: cfg.RequireHTTPS,
		Logger:       logger,
	})
}

// AbiJSONToBin converts a dict-shaped action payload into opaque binary
// via the node's abi_json_to_bin endpoint (spec §6, §4.8 step 1).
func (c *Client) AbiJSONToBin(ctx context.Context, code, action string, args map[string]any) (AbiJSONToBinResult, error) {
	var out AbiJSONToBinResult
	body := map[string]any{
		"code":   code,
		"action": action,
		"args":   args,
	}
	err := c.Call(ctx, "/v1/chain/abi_json_to_bin", body, &out)
	return out, err
}

// GetInfo fetches chain metadata, including the 32-byte chain id the
// pipeline mixes into every signing digest (spec §4.8 step 2).
func (c *Client) GetInfo(ctx context.Context) (GetInfoResult, error) {
	var out GetInfoResult
	err := c.Call(ctx, "/v1/chain/get_info", struct{}{}, &out)
	return out, err
}

// GetBlockInfo fetches TAPOS reference-block fields for a given block
// number or id.
func (c *Client) GetBlockInfo(ctx context.Context, blockNumOrID any) (GetBlockInfoResult, error) {
	var out GetBlockInfoResult
	body := map[string]any{"block_num_or_id": blockNumOrID}
	err := c.Call(ctx, "/v1/chain/get_block_info", body, &out)
	return out, err
}

// PushTransaction submits a signed, packed transaction (spec §6).
func (c *Client) PushTransaction(ctx context.Context, req PushTransactionRequest) (PushTransactionResult, error) {
	var out PushTransactionResult
	err := c.Call(ctx, "/v1/chain/push_transaction", req, &out)
	return out, err
}

// The remainder are read-only pass-through endpoints (spec §6, aioeos
// parity): thin request/response shims with no correctness-critical
// contract beyond their documented parameters. None of them interpret
// the node's response beyond the shared Call error mapping.

func (c *Client) GetAccount(ctx context.Context, accountName string) (json.RawMessage, error) {
	var out json.RawMessage
	body := map[string]any{"account_name": accountName}
	err := c.Call(ctx, "/v1/chain/get_account", body, &out)
	return out, err
}

func (c *Client) GetTableRows(ctx context.Context, params map[string]any) (json.RawMessage, error) {
	var out json.RawMessage
	err := c.Call(ctx, "/v1/chain/get_table_rows", params, &out)
	return out, err
}

func (c *Client) GetTableByScope(ctx context.Context, params map[string]any) (json.RawMessage, error) {
	var out json.RawMessage
	err := c.Call(ctx, "/v1/chain/get_table_by_scope", params, &out)
	return out, err
}

func (c *Client) GetBlock(ctx context.Context, blockNumOrID any) (json.RawMessage, error) {
	var out json.RawMessage
	body := map[string]any{"block_num_or_id": blockNumOrID}
	err := c.Call(ctx, "/v1/chain/get_block", body, &out)
	return out, err
}

func (c *Client) GetBlockHeaderState(ctx context.Context, blockNumOrID any) (json.RawMessage, error) {
	var out json.RawMessage
	body := map[string]any{"block_num_or_id": blockNumOrID}
	err := c.Call(ctx, "/v1/chain/get_block_header_state", body, &out)
	return out, err
}

func (c *Client) GetProducers(ctx context.Context, limit int, lowerBound string) (json.RawMessage, error) {
	var out json.RawMessage
	body := map[string]any{"json": true, "limit": limit, "lower_bound": lowerBound}
	err := c.Call(ctx, "/v1/chain/get_producers", body, &out)
	return out, err
}

func (c *Client) GetProducerSchedule(ctx context.Context) (json.RawMessage, error) {
	var out json.RawMessage
	err := c.Call(ctx, "/v1/chain/get_producer_schedule", struct{}{}, &out)
	return out, err
}

func (c *Client) GetABI(ctx context.Context, accountName string) (json.RawMessage, error) {
	var out json.RawMessage
	body := map[string]any{"account_name": accountName}
	err := c.Call(ctx, "/v1/chain/get_abi", body, &out)
	return out, err
}

func (c *Client) GetCode(ctx context.Context, accountName string) (json.RawMessage, error) {
	var out json.RawMessage
	body := map[string]any{"account_name": accountName, "code_as_wasm": true}
	err := c.Call(ctx, "/v1/chain/get_code", body, &out)
	return out, err
}

func (c *Client) GetRawCodeAndABI(ctx context.Context, accountName string) (json.RawMessage, error) {
	var out json.RawMessage
	body := map[string]any{"account_name": accountName}
	err := c.Call(ctx, "/v1/chain/get_raw_code_and_abi", body, &out)
	return out, err
}

func (c *Client) GetCurrencyBalance(ctx context.Context, code, account, symbol string) (json.RawMessage, error) {
	var out json.RawMessage
	body := map[string]any{"code": code, "account": account, "symbol": symbol}
	err := c.Call(ctx, "/v1/chain/get_currency_balance", body, &out)
	return out, err
}

func (c *Client) GetCurrencyStats(ctx context.Context, code, symbol string) (json.RawMessage, error) {
	var out json.RawMessage
	body := map[string]any{"code": code, "symbol": symbol}
	err := c.Call(ctx, "/v1/chain/get_currency_stats", body, &out)
	return out, err
}

func (c *Client) GetRequiredKeys(ctx context.Context, transaction any, availableKeys []string) (json.RawMessage, error) {
	var out json.RawMessage
	body := map[string]any{"transaction": transaction, "available_keys": availableKeys}
	err := c.Call(ctx, "/v1/chain/get_required_keys", body, &out)
	return out, err
}

func (c *Client) GetDBSize(ctx context.Context) (json.RawMessage, error) {
	var out json.RawMessage
	err := c.Call(ctx, "/v1/db_size/get", struct{}{}, &out)
	return out, err
}

func (c *Client) GetActions(ctx context.Context, accountName string, pos, offset int) (json.RawMessage, error) {
	var out json.RawMessage
	body := map[string]any{"account_name": accountName, "pos": pos, "offset": offset}
	err := c.Call(ctx, "/v1/history/get_actions", body, &out)
	return out, err
}

func (c *Client) GetTransaction(ctx context.Context, id string) (json.RawMessage, error) {
	var out json.RawMessage
	body := map[string]any{"id": id}
	err := c.Call(ctx, "/v1/history/get_transaction", body, &out)
	return out, err
}

func (c *Client) GetKeyAccounts(ctx context.Context, publicKey string) (json.RawMessage, error) {
	var out json.RawMessage
	body := map[string]any{"public_key": publicKey}
	err := c.Call(ctx, "/v1/history/get_key_accounts", body, &out)
	return out, err
}

func (c *Client) GetControlledAccounts(ctx context.Context, controllingAccount string) (json.RawMessage, error) {
	var out json.RawMessage
	body := map[string]any{"controlling_account": controllingAccount}
	err := c.Call(ctx, "/v1/history/get_controlled_accounts", body, &out)
	return out, err
}
