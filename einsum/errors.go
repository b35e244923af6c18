package einsum

import "github.com/pkg/errors"

var (
	// ErrNilNetwork indicates a nil *core.Network.
	ErrNilNetwork = errors.New("einsum: nil network")

	// ErrMultiplicity indicates an index that is not shared by exactly two
	// tensors, or an output index not owned by exactly one tensor.
	ErrMultiplicity = errors.New("einsum: index multiplicity")

	// ErrSizeMismatch indicates one symbol bound to two different dimensions.
	ErrSizeMismatch = errors.New("einsum: size mismatch")

	// ErrUnknownIndex indicates an index without an entry in the size table.
	ErrUnknownIndex = errors.New("einsum: unknown index")

	// ErrInvalidSequence indicates a contraction sequence that references a
	// consumed, unknown or repeated operand.
	ErrInvalidSequence = errors.New("einsum: invalid contraction sequence")

	// ErrNilOptimizer indicates ContractionOrder was called without an Optimizer.
	ErrNilOptimizer = errors.New("einsum: nil optimizer")
)
