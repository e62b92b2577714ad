package blend

import (
	"errors"
	"fmt"

	"github.com/gogpu/blend/arraycore"
)

// Sentinel errors for blend.
var (
	// ErrAllocationFailure is returned when storage could not grow.
	ErrAllocationFailure = errors.New("blend: allocation failure")

	// ErrInvalidArgument is returned for an index or range outside the
	// current bounds, or an otherwise malformed argument.
	ErrInvalidArgument = errors.New("blend: invalid argument")

	// ErrCodecNotFound is returned when no image codec matches.
	ErrCodecNotFound = errors.New("blend: image codec not found")

	// ErrEncoderUnavailable is returned by codecs that only decode.
	ErrEncoderUnavailable = errors.New("blend: image codec cannot encode")
)

// RuntimeError carries a runtime status that blend does not interpret.
type RuntimeError struct {
	Code arraycore.Status
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("blend: runtime error: %v", e.Code)
}

// ContractError is the panic value raised when the runtime reports a
// failure from an operation that cannot fail on a well-formed handle.
type ContractError struct {
	Op   string
	Code arraycore.Status
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("blend: %s failed on a well-formed array: %v", e.Op, e.Code)
}

// errFromStatus converts a runtime status into the blend error taxonomy.
func errFromStatus(st arraycore.Status) error {
	switch st {
	case arraycore.StatusSuccess:
		return nil
	case arraycore.StatusOutOfMemory:
		return ErrAllocationFailure
	case arraycore.StatusInvalidValue:
		return ErrInvalidArgument
	}
	return &RuntimeError{Code: st}
}

// mustSucceed panics with a ContractError unless st is success.
func mustSucceed(op string, st arraycore.Status) {
	if st != arraycore.StatusSuccess {
		Logger().Error("blend: runtime contract violated", "op", op, "status", st)
		panic(&ContractError{Op: op, Code: st})
	}
}
