package oracle

import (
	"fmt"

	eoserr "github.com/r3e-go/eosiogo/internal/errors"
)

// mapResponseError translates a non-nil RPCError into the shared
// taxonomy, defaulting to rpc_failure (spec §6, §7).
func mapResponseError(err *RPCError) error {
	if err == nil {
		return nil
	}
	if err.Name == "" {
		return eoserr.RPCFailure(fmt.Sprintf("code_%d", err.Code), err.Message)
	}
	return eoserr.FromRemoteErrorName(err.Name, err.Message)
}
