// Package signer assembles a transaction, resolves any unresolved_map
// action payloads through the oracle, serializes it with the abi codec,
// and produces a signed, hex-encoded transaction ready for submission
// (spec §4.8).
package signer

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sync"

	"github.com/r3e-go/eosiogo/abi"
	eoserr "github.com/r3e-go/eosiogo/internal/errors"
	"github.com/r3e-go/eosiogo/internal/logging"
	"github.com/r3e-go/eosiogo/key"
	"github.com/r3e-go/eosiogo/oracle"
)

// SignedTransaction is the document handed to the caller for
// submission (spec §4.8 step 6).
type SignedTransaction struct {
	Signatures            []string `json:"signatures"`
	Compression           int      `json:"compression"`
	PackedContextFreeData string   `json:"packed_context_free_data"`
	PackedTrx             string   `json:"packed_trx"`
}

// Pipeline chains the abi codec and the key module with a remote oracle.
// A Pipeline is single-threaded with respect to any one instance (spec
// §5); the chain-id cache is its only mutable state.
type Pipeline struct {
	client *oracle.Client
	log    *logging.Logger

	chainIDOnce sync.Once
	chainID     []byte
	chainIDErr  error
}

// New builds a Pipeline over the given oracle client.
func New(client *oracle.Client, log *logging.Logger) *Pipeline {
	if log == nil {
		log = logging.NewFromEnv("signer")
	}
	return &Pipeline{client: client, log: log}
}

// Sign resolves unresolved action payloads, serializes tx, computes the
// signing digest, and signs it with every key in keys (spec §4.8). The
// context-free digest defaults to 32 zero bytes when contextFreeData is
// nil. tx is mutated in place by step 1; callers that need the original
// must pass a copy.
func (p *Pipeline) Sign(ctx context.Context, tx *abi.Transaction, keys []*key.Key, contextFreeData []byte) (SignedTransaction, error) {
	if tx.Expiration.IsZero() && tx.RefBlockNum == 0 && tx.RefBlockPrefix == 0 {
		return SignedTransaction{}, eoserr.MissingTapos()
	}

	if err := p.resolveActions(ctx, tx.ContextFreeActions); err != nil {
		return SignedTransaction{}, err
	}
	if err := p.resolveActions(ctx, tx.Actions); err != nil {
		return SignedTransaction{}, err
	}

	chainID, err := p.chainIdentifier(ctx)
	if err != nil {
		return SignedTransaction{}, err
	}

	txBytes, err := tx.Encode(nil)
	if err != nil {
		return SignedTransaction{}, err
	}

	cfDigest := contextFreeData
	if cfDigest == nil {
		cfDigest = make([]byte, 32)
	}

	digest := sha256.Sum256(concatBytes(chainID, txBytes, cfDigest))

	signatures := make([]string, 0, len(keys))
	for _, k := range keys {
		sigText, err := k.Sign(digest[:])
		if err != nil {
			return SignedTransaction{}, err
		}
		signatures = append(signatures, sigText)
	}

	p.log.WithField("actions", len(tx.Actions)).Debug("transaction signed")

	return SignedTransaction{
		Signatures:            signatures,
		Compression:           0,
		PackedContextFreeData: "",
		PackedTrx:             hex.EncodeToString(txBytes),
	}, nil
}

// resolveActions replaces every unresolved_map action payload in place
// with oracle-translated raw_bytes (spec §4.8 step 1). Overlap across
// actions within one transaction is allowed; results are assigned back
// to their originating position so action order is preserved exactly.
func (p *Pipeline) resolveActions(ctx context.Context, actions []abi.Action) error {
	type result struct {
		index int
		bytes []byte
		err   error
	}

	pending := make([]int, 0)
	for i, a := range actions {
		if a.Data.IsUnresolved() {
			pending = append(pending, i)
		}
	}
	if len(pending) == 0 {
		return nil
	}

	results := make(chan result, len(pending))
	var wg sync.WaitGroup
	for _, idx := range pending {
		idx := idx
		mapping, _ := actions[idx].Data.Mapping()
		wg.Add(1)
		go func() {
			defer wg.Done()
			out, err := p.client.AbiJSONToBin(ctx, string(actions[idx].Account), string(actions[idx].Name), mapping)
			if err != nil {
				results <- result{index: idx, err: err}
				return
			}
			decoded, err := hex.DecodeString(out.Binargs)
			if err != nil {
				results <- result{index: idx, err: fmt.Errorf("decode binargs: %w", err)}
				return
			}
			results <- result{index: idx, bytes: decoded}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	var firstErr error
	for r := range results {
		if r.err != nil {
			if firstErr == nil {
				firstErr = r.err
			}
			continue
		}
		actions[r.index].Data = abi.RawActionPayload(r.bytes)
	}
	return firstErr
}

// chainIdentifier returns the cached chain id, fetching it from the
// oracle on first use (spec §4.8 step 2, §5 "write-once-then-read-only").
func (p *Pipeline) chainIdentifier(ctx context.Context) ([]byte, error) {
	p.chainIDOnce.Do(func() {
		info, err := p.client.GetInfo(ctx)
		if err != nil {
			p.chainIDErr = err
			return
		}
		id, err := hex.DecodeString(info.ChainID)
		if err != nil {
			p.chainIDErr = fmt.Errorf("decode chain id: %w", err)
			return
		}
		if len(id) != 32 {
			p.chainIDErr = eoserr.New(eoserr.CodeRPCFailure, "chain id must be 32 bytes")
			return
		}
		p.chainID = id
	})
	return p.chainID, p.chainIDErr
}

func concatBytes(parts ...[]byte) []byte {
	var total int
	for _, p := range parts {
		total += len(p)
	}
	out := make([]byte, 0, total)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}
