package outgauge

import (
	"bytes"
	"encoding/binary"
	"math"
	"unicode/utf8"
)

// Decode interprets one datagram payload as an OutGauge packet. The
// buffer must be exactly PacketSize bytes; anything else returns
// *MalformedPacketError without a partial decode. Field values are not
// range-checked, only structurally decoded. Decode keeps no state and
// is safe to call concurrently.
func Decode(buf []byte) (*Packet, error) {
	if len(buf) != PacketSize {
		return nil, &MalformedPacketError{
			ExpectedSize: PacketSize,
			ActualSize:   len(buf),
		}
	}
	p := &Packet{}
	off := 0
	for _, f := range packetLayout {
		b := buf[off : off+f.width]
		switch v := f.ref(p).(type) {
		case *uint8:
			*v = b[0]
		case *uint32:
			*v = binary.LittleEndian.Uint32(b)
		case *int32:
			*v = int32(binary.LittleEndian.Uint32(b))
		case *float32:
			*v = math.Float32frombits(binary.LittleEndian.Uint32(b))
		case *Flags:
			*v = Flags(binary.LittleEndian.Uint16(b))
		case *DashLights:
			*v = DashLights(binary.LittleEndian.Uint32(b))
		case *string:
			s, err := decodeText(f.name, b)
			if err != nil {
				return nil, err
			}
			*v = s
		}
		off += f.width
	}
	return p, nil
}

// Encode is the inverse of Decode. Text shorter than its field is
// padded with NUL bytes; text longer than its field returns
// *FieldTooLongError.
func Encode(p *Packet) ([]byte, error) {
	buf := make([]byte, PacketSize)
	off := 0
	for _, f := range packetLayout {
		b := buf[off : off+f.width]
		switch v := f.ref(p).(type) {
		case *uint8:
			b[0] = *v
		case *uint32:
			binary.LittleEndian.PutUint32(b, *v)
		case *int32:
			binary.LittleEndian.PutUint32(b, uint32(*v))
		case *float32:
			binary.LittleEndian.PutUint32(b, math.Float32bits(*v))
		case *Flags:
			binary.LittleEndian.PutUint16(b, uint16(*v))
		case *DashLights:
			binary.LittleEndian.PutUint32(b, uint32(*v))
		case *string:
			if len(*v) > f.width {
				return nil, &FieldTooLongError{
					Field:    f.name,
					MaxWidth: f.width,
				}
			}
			copy(b, *v)
		}
		off += f.width
	}
	return buf, nil
}

// decodeText reads a fixed-width text field: bytes up to the first NUL,
// or the full width when no NUL is present.
func decodeText(name string, b []byte) (string, error) {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	if !utf8.Valid(b) {
		return "", &InvalidTextEncodingError{Field: name}
	}
	return string(b), nil
}
