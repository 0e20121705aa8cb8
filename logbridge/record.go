package logbridge

import (
	"errors"
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"
)

const (
	fieldLevel   protowire.Number = 1
	fieldMessage protowire.Number = 2
)

var (
	// ErrMalformedRecord is returned when an encoded record cannot be decoded.
	ErrMalformedRecord = errors.New("malformed log record")
)

// Record is a single (level, message) pair as it crosses a byte transport.
type Record struct {
	Level   Level
	Message string
}

// Marshal encodes r using the protobuf wire format.
func (r Record) Marshal() []byte {
	b := make([]byte, 0, len(r.Message)+8)
	b = protowire.AppendTag(b, fieldLevel, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(r.Level))
	b = protowire.AppendTag(b, fieldMessage, protowire.BytesType)
	b = protowire.AppendString(b, r.Message)
	return b
}

// UnmarshalRecord decodes a record produced by Record.Marshal. Unknown
// fields are skipped.
func UnmarshalRecord(b []byte) (Record, error) {
	var r Record
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return Record{}, errors.Join(ErrMalformedRecord, protowire.ParseError(n))
		}
		b = b[n:]

		switch {
		case num == fieldLevel && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return Record{}, errors.Join(ErrMalformedRecord, protowire.ParseError(n))
			}
			r.Level = Level(int32(v))
			b = b[n:]
		case num == fieldMessage && typ == protowire.BytesType:
			v, n := protowire.ConsumeString(b)
			if n < 0 {
				return Record{}, errors.Join(ErrMalformedRecord, protowire.ParseError(n))
			}
			r.Message = v
			b = b[n:]
		default:
			n := protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return Record{}, errors.Join(ErrMalformedRecord, protowire.ParseError(n))
			}
			b = b[n:]
		}
	}

	if !r.Level.Valid() {
		return Record{}, fmt.Errorf("%w: code %d", ErrInvalidLevel, int32(r.Level))
	}
	return r, nil
}
