package packer

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/vm"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/pkg/errors"
)

// revertSelector is the 4-byte selector of Error(string).
var revertSelector = crypto.Keccak256([]byte("Error(string)"))[:4]

type RevertError struct {
	Err error

	// Data is encoded reverted reason, or result
	Data []byte

	// decoded reason, or the raw data when it is not an Error(string)
	Reason string
}

func (e *RevertError) Error() string {
	if e.Reason == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %s", e.Err.Error(), e.Reason)
}

func (e *RevertError) Unwrap() error {
	return e.Err
}

// ParseRevert extracts the revert payload carried by a JSON-RPC error. It returns
// false when err carries no revert data.
func ParseRevert(err error) (*RevertError, bool) {
	if err == nil {
		return nil, false
	}
	var revertErr *RevertError
	if errors.As(err, &revertErr) {
		return revertErr, true
	}

	var dataErr rpc.DataError
	if !errors.As(err, &dataErr) {
		return nil, false
	}
	data, ok := decodeErrorData(dataErr.ErrorData())
	if !ok {
		return nil, false
	}

	return &RevertError{
		Err:    vm.ErrExecutionReverted,
		Data:   data,
		Reason: Reason(data, dataErr.Error()),
	}, true
}

// Reason decodes Error(string) payloads; anything else is reported as hex so the
// user still gets something to look up.
func Reason(data []byte, fallback string) string {
	if reason, err := abi.UnpackRevert(data); err == nil {
		return reason
	}
	if len(data) > 0 {
		return hexutil.Encode(data)
	}
	return strings.TrimPrefix(fallback, vm.ErrExecutionReverted.Error()+": ")
}

func decodeErrorData(v any) ([]byte, bool) {
	switch d := v.(type) {
	case string:
		data, err := hexutil.Decode(d)
		if err != nil {
			return nil, false
		}
		return data, true
	case []byte:
		return d, true
	default:
		return nil, false
	}
}

// PackRevertReason encodes reason as Error(string) revert data.
func PackRevertReason(reason string) []byte {
	typ, _ := abi.NewType("string", "", nil)
	packed, _ := (abi.Arguments{{Type: typ}}).Pack(reason)
	return append(common.CopyBytes(revertSelector), packed...)
}
