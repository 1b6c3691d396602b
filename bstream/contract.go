// SPDX-License-Identifier: ice License 1.0

package bstream

// Public API.

type (
	// OutStream accumulates big-endian encoded fields into an in-memory buffer.
	// Once invalidated, every subsequent write is a no-op and Bytes returns nil.
	OutStream struct {
		buf     []byte
		invalid bool
	}
	// InStream consumes big-endian encoded fields produced by an OutStream.
	// Once invalidated (explicitly, or by reading past the end of the data),
	// every subsequent read is a no-op returning the zero value.
	InStream struct {
		data    []byte
		pos     int
		invalid bool
	}
)

// Private API.

const (
	bitsPerByte      = 8
	bytesPerUint24   = 3
	bytesPerUint32   = 4
	initialOutStream = 16
)
