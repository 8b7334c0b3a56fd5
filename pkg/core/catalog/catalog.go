// Package catalog pre-instantiates a standard set of matrix types and keeps
// a registry of them (plus anything else registered) for reporting tools.
//
// The stock entries cross the library's element kinds with the common small
// shapes 2x2, 2x3, 3x2, 3x3 and 4x4 plus the rank-3 2x2x2, 2x3x2, 3x2x2,
// 3x3x3 and 4x4x4: the eight numeric kinds and the two 64-bit integer kinds
// get all ten shapes, the generic (any) kind gets the five rank-2 ones.
// Variables are named `<Kind>Mat<dims-joined-by-x>`, matching each type's
// Name().
//
// All stock types are lenient; strict twins can be derived with WithStrict
// and registered alongside (ids keep them apart).
package catalog

import (
	"github.com/gomlx/matrices/pkg/core/matrices"
)

// Int8 matrices.
var (
	Int8Mat2x2   = Register(matrices.NewNumericType[int8]("Int8Mat2x2", 2, 2))
	Int8Mat2x3   = Register(matrices.NewNumericType[int8]("Int8Mat2x3", 2, 3))
	Int8Mat3x2   = Register(matrices.NewNumericType[int8]("Int8Mat3x2", 3, 2))
	Int8Mat3x3   = Register(matrices.NewNumericType[int8]("Int8Mat3x3", 3, 3))
	Int8Mat4x4   = Register(matrices.NewNumericType[int8]("Int8Mat4x4", 4, 4))
	Int8Mat2x2x2 = Register(matrices.NewNumericType[int8]("Int8Mat2x2x2", 2, 2, 2))
	Int8Mat2x3x2 = Register(matrices.NewNumericType[int8]("Int8Mat2x3x2", 2, 3, 2))
	Int8Mat3x2x2 = Register(matrices.NewNumericType[int8]("Int8Mat3x2x2", 3, 2, 2))
	Int8Mat3x3x3 = Register(matrices.NewNumericType[int8]("Int8Mat3x3x3", 3, 3, 3))
	Int8Mat4x4x4 = Register(matrices.NewNumericType[int8]("Int8Mat4x4x4", 4, 4, 4))
)

// Int16 matrices.
var (
	Int16Mat2x2   = Register(matrices.NewNumericType[int16]("Int16Mat2x2", 2, 2))
	Int16Mat2x3   = Register(matrices.NewNumericType[int16]("Int16Mat2x3", 2, 3))
	Int16Mat3x2   = Register(matrices.NewNumericType[int16]("Int16Mat3x2", 3, 2))
	Int16Mat3x3   = Register(matrices.NewNumericType[int16]("Int16Mat3x3", 3, 3))
	Int16Mat4x4   = Register(matrices.NewNumericType[int16]("Int16Mat4x4", 4, 4))
	Int16Mat2x2x2 = Register(matrices.NewNumericType[int16]("Int16Mat2x2x2", 2, 2, 2))
	Int16Mat2x3x2 = Register(matrices.NewNumericType[int16]("Int16Mat2x3x2", 2, 3, 2))
	Int16Mat3x2x2 = Register(matrices.NewNumericType[int16]("Int16Mat3x2x2", 3, 2, 2))
	Int16Mat3x3x3 = Register(matrices.NewNumericType[int16]("Int16Mat3x3x3", 3, 3, 3))
	Int16Mat4x4x4 = Register(matrices.NewNumericType[int16]("Int16Mat4x4x4", 4, 4, 4))
)

// Int32 matrices.
var (
	Int32Mat2x2   = Register(matrices.NewNumericType[int32]("Int32Mat2x2", 2, 2))
	Int32Mat2x3   = Register(matrices.NewNumericType[int32]("Int32Mat2x3", 2, 3))
	Int32Mat3x2   = Register(matrices.NewNumericType[int32]("Int32Mat3x2", 3, 2))
	Int32Mat3x3   = Register(matrices.NewNumericType[int32]("Int32Mat3x3", 3, 3))
	Int32Mat4x4   = Register(matrices.NewNumericType[int32]("Int32Mat4x4", 4, 4))
	Int32Mat2x2x2 = Register(matrices.NewNumericType[int32]("Int32Mat2x2x2", 2, 2, 2))
	Int32Mat2x3x2 = Register(matrices.NewNumericType[int32]("Int32Mat2x3x2", 2, 3, 2))
	Int32Mat3x2x2 = Register(matrices.NewNumericType[int32]("Int32Mat3x2x2", 3, 2, 2))
	Int32Mat3x3x3 = Register(matrices.NewNumericType[int32]("Int32Mat3x3x3", 3, 3, 3))
	Int32Mat4x4x4 = Register(matrices.NewNumericType[int32]("Int32Mat4x4x4", 4, 4, 4))
)

// Uint8 matrices.
var (
	Uint8Mat2x2   = Register(matrices.NewNumericType[uint8]("Uint8Mat2x2", 2, 2))
	Uint8Mat2x3   = Register(matrices.NewNumericType[uint8]("Uint8Mat2x3", 2, 3))
	Uint8Mat3x2   = Register(matrices.NewNumericType[uint8]("Uint8Mat3x2", 3, 2))
	Uint8Mat3x3   = Register(matrices.NewNumericType[uint8]("Uint8Mat3x3", 3, 3))
	Uint8Mat4x4   = Register(matrices.NewNumericType[uint8]("Uint8Mat4x4", 4, 4))
	Uint8Mat2x2x2 = Register(matrices.NewNumericType[uint8]("Uint8Mat2x2x2", 2, 2, 2))
	Uint8Mat2x3x2 = Register(matrices.NewNumericType[uint8]("Uint8Mat2x3x2", 2, 3, 2))
	Uint8Mat3x2x2 = Register(matrices.NewNumericType[uint8]("Uint8Mat3x2x2", 3, 2, 2))
	Uint8Mat3x3x3 = Register(matrices.NewNumericType[uint8]("Uint8Mat3x3x3", 3, 3, 3))
	Uint8Mat4x4x4 = Register(matrices.NewNumericType[uint8]("Uint8Mat4x4x4", 4, 4, 4))
)

// Uint16 matrices.
var (
	Uint16Mat2x2   = Register(matrices.NewNumericType[uint16]("Uint16Mat2x2", 2, 2))
	Uint16Mat2x3   = Register(matrices.NewNumericType[uint16]("Uint16Mat2x3", 2, 3))
	Uint16Mat3x2   = Register(matrices.NewNumericType[uint16]("Uint16Mat3x2", 3, 2))
	Uint16Mat3x3   = Register(matrices.NewNumericType[uint16]("Uint16Mat3x3", 3, 3))
	Uint16Mat4x4   = Register(matrices.NewNumericType[uint16]("Uint16Mat4x4", 4, 4))
	Uint16Mat2x2x2 = Register(matrices.NewNumericType[uint16]("Uint16Mat2x2x2", 2, 2, 2))
	Uint16Mat2x3x2 = Register(matrices.NewNumericType[uint16]("Uint16Mat2x3x2", 2, 3, 2))
	Uint16Mat3x2x2 = Register(matrices.NewNumericType[uint16]("Uint16Mat3x2x2", 3, 2, 2))
	Uint16Mat3x3x3 = Register(matrices.NewNumericType[uint16]("Uint16Mat3x3x3", 3, 3, 3))
	Uint16Mat4x4x4 = Register(matrices.NewNumericType[uint16]("Uint16Mat4x4x4", 4, 4, 4))
)

// Uint32 matrices.
var (
	Uint32Mat2x2   = Register(matrices.NewNumericType[uint32]("Uint32Mat2x2", 2, 2))
	Uint32Mat2x3   = Register(matrices.NewNumericType[uint32]("Uint32Mat2x3", 2, 3))
	Uint32Mat3x2   = Register(matrices.NewNumericType[uint32]("Uint32Mat3x2", 3, 2))
	Uint32Mat3x3   = Register(matrices.NewNumericType[uint32]("Uint32Mat3x3", 3, 3))
	Uint32Mat4x4   = Register(matrices.NewNumericType[uint32]("Uint32Mat4x4", 4, 4))
	Uint32Mat2x2x2 = Register(matrices.NewNumericType[uint32]("Uint32Mat2x2x2", 2, 2, 2))
	Uint32Mat2x3x2 = Register(matrices.NewNumericType[uint32]("Uint32Mat2x3x2", 2, 3, 2))
	Uint32Mat3x2x2 = Register(matrices.NewNumericType[uint32]("Uint32Mat3x2x2", 3, 2, 2))
	Uint32Mat3x3x3 = Register(matrices.NewNumericType[uint32]("Uint32Mat3x3x3", 3, 3, 3))
	Uint32Mat4x4x4 = Register(matrices.NewNumericType[uint32]("Uint32Mat4x4x4", 4, 4, 4))
)

// Float32 matrices.
var (
	Float32Mat2x2   = Register(matrices.NewNumericType[float32]("Float32Mat2x2", 2, 2))
	Float32Mat2x3   = Register(matrices.NewNumericType[float32]("Float32Mat2x3", 2, 3))
	Float32Mat3x2   = Register(matrices.NewNumericType[float32]("Float32Mat3x2", 3, 2))
	Float32Mat3x3   = Register(matrices.NewNumericType[float32]("Float32Mat3x3", 3, 3))
	Float32Mat4x4   = Register(matrices.NewNumericType[float32]("Float32Mat4x4", 4, 4))
	Float32Mat2x2x2 = Register(matrices.NewNumericType[float32]("Float32Mat2x2x2", 2, 2, 2))
	Float32Mat2x3x2 = Register(matrices.NewNumericType[float32]("Float32Mat2x3x2", 2, 3, 2))
	Float32Mat3x2x2 = Register(matrices.NewNumericType[float32]("Float32Mat3x2x2", 3, 2, 2))
	Float32Mat3x3x3 = Register(matrices.NewNumericType[float32]("Float32Mat3x3x3", 3, 3, 3))
	Float32Mat4x4x4 = Register(matrices.NewNumericType[float32]("Float32Mat4x4x4", 4, 4, 4))
)

// Float64 matrices.
var (
	Float64Mat2x2   = Register(matrices.NewNumericType[float64]("Float64Mat2x2", 2, 2))
	Float64Mat2x3   = Register(matrices.NewNumericType[float64]("Float64Mat2x3", 2, 3))
	Float64Mat3x2   = Register(matrices.NewNumericType[float64]("Float64Mat3x2", 3, 2))
	Float64Mat3x3   = Register(matrices.NewNumericType[float64]("Float64Mat3x3", 3, 3))
	Float64Mat4x4   = Register(matrices.NewNumericType[float64]("Float64Mat4x4", 4, 4))
	Float64Mat2x2x2 = Register(matrices.NewNumericType[float64]("Float64Mat2x2x2", 2, 2, 2))
	Float64Mat2x3x2 = Register(matrices.NewNumericType[float64]("Float64Mat2x3x2", 2, 3, 2))
	Float64Mat3x2x2 = Register(matrices.NewNumericType[float64]("Float64Mat3x2x2", 3, 2, 2))
	Float64Mat3x3x3 = Register(matrices.NewNumericType[float64]("Float64Mat3x3x3", 3, 3, 3))
	Float64Mat4x4x4 = Register(matrices.NewNumericType[float64]("Float64Mat4x4x4", 4, 4, 4))
)

// Int64 matrices, the exact-arithmetic integer family.
var (
	Int64Mat2x2   = Register(matrices.NewIntegerType[int64]("Int64Mat2x2", 2, 2))
	Int64Mat2x3   = Register(matrices.NewIntegerType[int64]("Int64Mat2x3", 2, 3))
	Int64Mat3x2   = Register(matrices.NewIntegerType[int64]("Int64Mat3x2", 3, 2))
	Int64Mat3x3   = Register(matrices.NewIntegerType[int64]("Int64Mat3x3", 3, 3))
	Int64Mat4x4   = Register(matrices.NewIntegerType[int64]("Int64Mat4x4", 4, 4))
	Int64Mat2x2x2 = Register(matrices.NewIntegerType[int64]("Int64Mat2x2x2", 2, 2, 2))
	Int64Mat2x3x2 = Register(matrices.NewIntegerType[int64]("Int64Mat2x3x2", 2, 3, 2))
	Int64Mat3x2x2 = Register(matrices.NewIntegerType[int64]("Int64Mat3x2x2", 3, 2, 2))
	Int64Mat3x3x3 = Register(matrices.NewIntegerType[int64]("Int64Mat3x3x3", 3, 3, 3))
	Int64Mat4x4x4 = Register(matrices.NewIntegerType[int64]("Int64Mat4x4x4", 4, 4, 4))
)

// Uint64 matrices, the exact-arithmetic integer family.
var (
	Uint64Mat2x2   = Register(matrices.NewIntegerType[uint64]("Uint64Mat2x2", 2, 2))
	Uint64Mat2x3   = Register(matrices.NewIntegerType[uint64]("Uint64Mat2x3", 2, 3))
	Uint64Mat3x2   = Register(matrices.NewIntegerType[uint64]("Uint64Mat3x2", 3, 2))
	Uint64Mat3x3   = Register(matrices.NewIntegerType[uint64]("Uint64Mat3x3", 3, 3))
	Uint64Mat4x4   = Register(matrices.NewIntegerType[uint64]("Uint64Mat4x4", 4, 4))
	Uint64Mat2x2x2 = Register(matrices.NewIntegerType[uint64]("Uint64Mat2x2x2", 2, 2, 2))
	Uint64Mat2x3x2 = Register(matrices.NewIntegerType[uint64]("Uint64Mat2x3x2", 2, 3, 2))
	Uint64Mat3x2x2 = Register(matrices.NewIntegerType[uint64]("Uint64Mat3x2x2", 3, 2, 2))
	Uint64Mat3x3x3 = Register(matrices.NewIntegerType[uint64]("Uint64Mat3x3x3", 3, 3, 3))
	Uint64Mat4x4x4 = Register(matrices.NewIntegerType[uint64]("Uint64Mat4x4x4", 4, 4, 4))
)

// Generic (any-element) matrices, rank 2 only.
var (
	AnyMat2x2 = Register(matrices.NewGenericType[any]("AnyMat2x2", 2, 2))
	AnyMat2x3 = Register(matrices.NewGenericType[any]("AnyMat2x3", 2, 3))
	AnyMat3x2 = Register(matrices.NewGenericType[any]("AnyMat3x2", 3, 2))
	AnyMat3x3 = Register(matrices.NewGenericType[any]("AnyMat3x3", 3, 3))
	AnyMat4x4 = Register(matrices.NewGenericType[any]("AnyMat4x4", 4, 4))
)
