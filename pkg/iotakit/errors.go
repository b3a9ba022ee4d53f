package iotakit

import "go.llib.dev/frameless/pkg/errorkit"

const (
	ErrUnsupportedType       errorkit.Error = "iotakit: the type can't form a sequence"
	ErrNotEqualityComparable errorkit.Error = "iotakit: the bound can't be compared with the sequence values"
	ErrNotRandomAccess       errorkit.Error = "iotakit: the type doesn't support random access"
	ErrAdvancePastBound      errorkit.Error = "iotakit: advance past the bound of the sequence"
	ErrDifferenceOverflow    errorkit.Error = "iotakit: offset is outside of the difference type range"
	ErrForeignCursor         errorkit.Error = "iotakit: cursors don't belong to the same kind of sequence"
)
