// Package packfile frames a packed nibble sequence with its exact length, so
// an odd-length sequence survives a round trip through a file.
//
// Layout (big endian): magic u32 | version u16 | flags u16 | nibble count u64 | packed bytes.
package packfile

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/danmuck/nibblekit/internal/nibble"
	"github.com/danmuck/nibblekit/internal/nibble/array"
)

const (
	Magic     uint32 = 0x4E424C31 // "NBL1"
	Version   uint16 = 1
	HeaderLen        = 16
)

var (
	ErrShortHeader        = errors.New("packfile: short header")
	ErrInvalidMagic       = errors.New("packfile: invalid magic")
	ErrUnsupportedVersion = errors.New("packfile: unsupported version")
	ErrTooLarge           = errors.New("packfile: nibble count too large")
	ErrTruncated          = errors.New("packfile: truncated payload")
	ErrPadding            = errors.New("packfile: non-zero padding nibble")
	ErrTrailingData       = errors.New("packfile: trailing data after payload")
)

// Header is the fixed packfile header.
type Header struct {
	Magic   uint32
	Version uint16
	Flags   uint16
	Count   uint64
}

// Limits constrains decode memory use.
type Limits struct {
	MaxNibbles uint64
}

func DefaultLimits() Limits {
	return Limits{MaxNibbles: 64 * 1024 * 1024}
}

func EncodeHeader(h Header) []byte {
	buf := make([]byte, HeaderLen)
	binary.BigEndian.PutUint32(buf[0:4], h.Magic)
	binary.BigEndian.PutUint16(buf[4:6], h.Version)
	binary.BigEndian.PutUint16(buf[6:8], h.Flags)
	binary.BigEndian.PutUint64(buf[8:16], h.Count)
	return buf
}

func DecodeHeader(b []byte) (Header, error) {
	if len(b) < HeaderLen {
		return Header{}, ErrShortHeader
	}
	h := Header{
		Magic:   binary.BigEndian.Uint32(b[0:4]),
		Version: binary.BigEndian.Uint16(b[4:6]),
		Flags:   binary.BigEndian.Uint16(b[6:8]),
		Count:   binary.BigEndian.Uint64(b[8:16]),
	}
	if h.Magic != Magic {
		return Header{}, ErrInvalidMagic
	}
	if h.Version != Version {
		return Header{}, fmt.Errorf("%w: %d", ErrUnsupportedVersion, h.Version)
	}
	return h, nil
}

// IsFramed reports whether b starts with the packfile magic.
func IsFramed(b []byte) bool {
	return len(b) >= 4 && binary.BigEndian.Uint32(b[0:4]) == Magic
}

func Write(w io.Writer, ns []nibble.Nibble) error {
	h := Header{Magic: Magic, Version: Version, Count: uint64(len(ns))}
	if _, err := w.Write(EncodeHeader(h)); err != nil {
		return err
	}
	if len(ns) == 0 {
		return nil
	}
	_, err := w.Write(array.ToBytes(ns))
	return err
}

func Read(r io.Reader, limits Limits) ([]nibble.Nibble, error) {
	var fixed [HeaderLen]byte
	if _, err := io.ReadFull(r, fixed[:]); err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
			return nil, ErrShortHeader
		}
		return nil, err
	}
	h, err := DecodeHeader(fixed[:])
	if err != nil {
		return nil, err
	}
	if h.Count > limits.MaxNibbles {
		return nil, ErrTooLarge
	}

	need := h.Count/2 + h.Count%2
	if need > math.MaxInt64 {
		return nil, ErrTooLarge
	}
	// Count is untrusted until the bytes arrive.
	payload, err := io.ReadAll(io.LimitReader(r, int64(need)))
	if err != nil {
		return nil, err
	}
	if uint64(len(payload)) < need {
		return nil, ErrTruncated
	}

	ns := array.FromBytes(payload)
	if h.Count%2 == 1 {
		if !ns[len(ns)-1].IsZero() {
			return nil, ErrPadding
		}
		ns = ns[:h.Count]
	}
	return ns, nil
}

func Marshal(ns []nibble.Nibble) []byte {
	var buf bytes.Buffer
	_ = Write(&buf, ns)
	return buf.Bytes()
}

// Unmarshal decodes a whole packfile. Unlike Read, which leaves the rest of
// a stream to the caller, it rejects bytes past the payload.
func Unmarshal(b []byte, limits Limits) ([]nibble.Nibble, error) {
	r := bytes.NewReader(b)
	ns, err := Read(r, limits)
	if err != nil {
		return nil, err
	}
	if r.Len() > 0 {
		return nil, fmt.Errorf("%w: %d bytes", ErrTrailingData, r.Len())
	}
	return ns, nil
}
