// Package tensor provides a small row-major complex tensor that consumes
// the index bookkeeping of package dims.
//
// It is the storage side of a dims specification: a quantum object kept as
// a rows×cols matrix can be reshaped into its physical tensor with
// FromMatrix and back with ToMatrix; Permute reorders axes so that axis i
// of the result is axis axes[i] of the input.
//
//	d := dims.MustParse("[[[2], [2]], [[2], [2]]]")
//	m, _ := tensor.New(4, 4)
//	t, _ := tensor.FromMatrix(d, m) // shape = dims.TensorShape(d)
//
// All operations return new tensors; inputs are never mutated except by
// Set. Errors are sentinels from errors.go, matched with errors.Is.
package tensor
