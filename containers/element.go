// SPDX-License-Identifier: MIT

package containers

import (
	"reflect"
	"strconv"
	"unsafe"
)

// Element is the set of element types a view can address. All of them are
// fixed-size and pointer-free, so a view may load and store them directly
// from a byte region. Named types are accepted through their underlying type,
// e.g. golang.org/x/image/math/f32.Vec3 is a [3]float32.
type Element interface {
	~int8 | ~uint8 | ~int16 | ~uint16 | ~int32 | ~uint32 | ~int64 | ~uint64 |
		~float32 | ~float64 |
		~[2]float32 | ~[3]float32 | ~[4]float32 |
		~[2]int32 | ~[3]int32 | ~[4]int32 |
		~[2]uint32 | ~[3]uint32 | ~[4]uint32 |
		~[2]uint16 | ~[4]uint16 | ~[2]int16 | ~[4]int16 |
		~[2]uint8 | ~[3]uint8 | ~[4]uint8 | ~[2]int8 | ~[4]int8
}

// sizeOf returns the byte size of one T.
func sizeOf[T Element]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// alignOf returns the required alignment of T.
func alignOf[T Element]() int {
	var zero T
	return int(unsafe.Alignof(zero))
}

// scalarFormats maps scalar kinds to struct-module format characters.
var scalarFormats = map[reflect.Kind]string{
	reflect.Int8:    "b",
	reflect.Uint8:   "B",
	reflect.Int16:   "h",
	reflect.Uint16:  "H",
	reflect.Int32:   "i",
	reflect.Uint32:  "I",
	reflect.Int64:   "q",
	reflect.Uint64:  "Q",
	reflect.Float32: "f",
	reflect.Float64: "d",
}

// FormatOf returns the buffer format descriptor of T: a struct-module format
// character for scalars ("B", "i", "f", ...) and the count followed by the
// component character for fixed vectors ("3f", "4B").
func FormatOf[T Element]() string {
	t := reflect.TypeFor[T]()
	if t.Kind() == reflect.Array {
		return strconv.Itoa(t.Len()) + scalarFormats[t.Elem().Kind()]
	}

	return scalarFormats[t.Kind()]
}

// BytesOf reinterprets s as its underlying bytes without copying.
// The result aliases s; writes through either are visible in both.
func BytesOf[T Element](s []T) []byte {
	if len(s) == 0 {
		return nil
	}

	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(s))), len(s)*sizeOf[T]())
}

// ContiguousStrides returns row-major byte strides for shape with elements
// of elemSize bytes: the last axis advances by elemSize, each outer axis by
// the full extent of the axes inside it.
func ContiguousStrides(shape []int, elemSize int) []int {
	if len(shape) == 0 {
		return nil
	}
	strides := make([]int, len(shape))
	strides[len(shape)-1] = elemSize
	for i := len(shape) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * shape[i+1]
	}

	return strides
}
