// SPDX-License-Identifier: ice License 1.0

package bstream

func NewOutStream() *OutStream {
	return &OutStream{buf: make([]byte, 0, initialOutStream)}
}

func (s *OutStream) PutUint8(val uint8) *OutStream {
	if s.invalid {
		return s
	}
	s.buf = append(s.buf, val)

	return s
}

func (s *OutStream) PutUint24(val uint32) *OutStream {
	if s.invalid {
		return s
	}
	s.buf = append(s.buf, byte(val>>(2*bitsPerByte)), byte(val>>bitsPerByte), byte(val))

	return s
}

func (s *OutStream) PutUint32(val uint32) *OutStream {
	if s.invalid {
		return s
	}
	s.buf = append(s.buf, byte(val>>(3*bitsPerByte)), byte(val>>(2*bitsPerByte)), byte(val>>bitsPerByte), byte(val))

	return s
}

func (s *OutStream) Invalidate() {
	s.invalid = true
}

func (s *OutStream) IsValid() bool {
	return !s.invalid
}

// Bytes returns everything written so far, or nil if the stream was invalidated.
func (s *OutStream) Bytes() []byte {
	if s.invalid {
		return nil
	}

	return s.buf
}

func NewInStream(data []byte) *InStream {
	return &InStream{data: data}
}

func (s *InStream) Uint8() uint8 {
	if s.invalid || s.pos+1 > len(s.data) {
		s.invalid = true

		return 0
	}
	val := s.data[s.pos]
	s.pos++

	return val
}

func (s *InStream) Uint24() uint32 {
	if s.invalid || s.pos+bytesPerUint24 > len(s.data) {
		s.invalid = true

		return 0
	}
	val := uint32(s.data[s.pos])<<(2*bitsPerByte) | uint32(s.data[s.pos+1])<<bitsPerByte | uint32(s.data[s.pos+2])
	s.pos += bytesPerUint24

	return val
}

func (s *InStream) Uint32() uint32 {
	if s.invalid || s.pos+bytesPerUint32 > len(s.data) {
		s.invalid = true

		return 0
	}
	val := uint32(s.data[s.pos])<<(3*bitsPerByte) |
		uint32(s.data[s.pos+1])<<(2*bitsPerByte) |
		uint32(s.data[s.pos+2])<<bitsPerByte |
		uint32(s.data[s.pos+3])
	s.pos += bytesPerUint32

	return val
}

func (s *InStream) Invalidate() {
	s.invalid = true
}

func (s *InStream) IsValid() bool {
	return !s.invalid
}

// Remaining reports how many unread bytes are left, 0 if the stream is invalid.
func (s *InStream) Remaining() int {
	if s.invalid {
		return 0
	}

	return len(s.data) - s.pos
}
