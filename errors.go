package outgauge

import "fmt"

// MalformedPacketError is returned by Decode when a buffer is not
// exactly PacketSize bytes. Callers should discard the datagram and
// keep listening.
type MalformedPacketError struct {
	ExpectedSize int
	ActualSize   int
}

func (e *MalformedPacketError) Error() string {
	return fmt.Sprintf("malformed packet: expected %v bytes, received %v", e.ExpectedSize, e.ActualSize)
}

// InvalidTextEncodingError is returned by Decode when a text field does
// not hold valid UTF-8.
type InvalidTextEncodingError struct {
	Field string
}

func (e *InvalidTextEncodingError) Error() string {
	return fmt.Sprintf("field %s is not valid UTF-8", e.Field)
}

// FieldTooLongError is returned by Encode when a text field exceeds its
// fixed wire width.
type FieldTooLongError struct {
	Field    string
	MaxWidth int
}

func (e *FieldTooLongError) Error() string {
	return fmt.Sprintf("field %s exceeds %v bytes", e.Field, e.MaxWidth)
}
