package outgauge

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func testPacket() *Packet {
	return &Packet{
		Time:        123456,
		Car:         "XRT",
		Flags:       FlagShowTurbo | FlagPreferKM,
		Gear:        3,
		PlayerID:    1,
		Speed:       27.5,
		RPM:         5200,
		Turbo:       0.8,
		EngTemp:     92.5,
		Fuel:        0.43,
		OilPressure: 3.25,
		OilTemp:     101.25,
		DashLights:  DLShiftLight | DLFullBeam | DLABS,
		ShowLights:  DLFullBeam,
		Throttle:    0.75,
		Brake:       0,
		Clutch:      0.5,
		Display1:    "HELLO",
		Display2:    "FUEL 43%",
		ID:          7,
	}
}

func TestLayoutSize(t *testing.T) {
	assert.Equal(t, PacketSize, layoutSize())
}

func TestRoundTrip(t *testing.T) {
	p := testPacket()
	buf, err := Encode(p)
	assert.NoError(t, err)
	assert.Len(t, buf, PacketSize)

	decoded, err := Decode(buf)
	assert.NoError(t, err)
	assert.Equal(t, p, decoded)
}

func TestRoundTripZeroValue(t *testing.T) {
	buf, err := Encode(&Packet{})
	assert.NoError(t, err)

	decoded, err := Decode(buf)
	assert.NoError(t, err)
	assert.Equal(t, &Packet{}, decoded)
}

func TestRoundTripNegativeID(t *testing.T) {
	p := testPacket()
	p.ID = -2

	buf, err := Encode(p)
	assert.NoError(t, err)

	decoded, err := Decode(buf)
	assert.NoError(t, err)
	assert.Equal(t, int32(-2), decoded.ID)
}

func TestDecodeLengthGuard(t *testing.T) {
	for _, n := range []int{0, 1, PacketSize - 1, PacketSize + 1, 256} {
		_, err := Decode(make([]byte, n))
		assert.Error(t, err)
		malformed, ok := err.(*MalformedPacketError)
		if assert.True(t, ok, "length %v", n) {
			assert.Equal(t, PacketSize, malformed.ExpectedSize)
			assert.Equal(t, n, malformed.ActualSize)
		}
	}
}

func TestEndianness(t *testing.T) {
	buf, err := Encode(&Packet{Time: 1})
	assert.NoError(t, err)
	assert.Equal(t, byte(1), buf[0])
	assert.Equal(t, byte(0), buf[1])
	assert.Equal(t, byte(0), buf[2])
	assert.Equal(t, byte(0), buf[3])

	decoded, err := Decode(buf)
	assert.NoError(t, err)
	assert.Equal(t, uint32(1), decoded.Time)
}

func TestTextTruncation(t *testing.T) {
	p := &Packet{Display1: "HELLO"}
	buf, err := Encode(p)
	assert.NoError(t, err)
	// 5 text bytes then NUL padding to the field width
	assert.Equal(t, []byte("HELLO"), buf[60:65])
	assert.Equal(t, make([]byte, 11), buf[65:76])

	decoded, err := Decode(buf)
	assert.NoError(t, err)
	assert.Equal(t, "HELLO", decoded.Display1)
}

func TestTextFullWidth(t *testing.T) {
	p := &Packet{Car: "FZ50", Display1: "0123456789ABCDEF"}
	buf, err := Encode(p)
	assert.NoError(t, err)

	decoded, err := Decode(buf)
	assert.NoError(t, err)
	assert.Equal(t, "FZ50", decoded.Car)
	assert.Equal(t, "0123456789ABCDEF", decoded.Display1)
}

func TestTextTooLong(t *testing.T) {
	_, err := Encode(&Packet{Display1: "0123456789ABCDEFGHIJ"})
	assert.Error(t, err)
	tooLong, ok := err.(*FieldTooLongError)
	if assert.True(t, ok) {
		assert.Equal(t, "display1", tooLong.Field)
		assert.Equal(t, 16, tooLong.MaxWidth)
	}

	_, err = Encode(&Packet{Car: "TOOBIG"})
	assert.Error(t, err)
	tooLong, ok = err.(*FieldTooLongError)
	if assert.True(t, ok) {
		assert.Equal(t, "car", tooLong.Field)
		assert.Equal(t, 4, tooLong.MaxWidth)
	}
}

func TestInvalidText(t *testing.T) {
	buf, err := Encode(testPacket())
	assert.NoError(t, err)

	buf[60] = 0xff
	buf[61] = 0xff
	_, err = Decode(buf)
	assert.Error(t, err)
	invalid, ok := err.(*InvalidTextEncodingError)
	if assert.True(t, ok) {
		assert.Equal(t, "display1", invalid.Field)
	}

	buf, err = Encode(testPacket())
	assert.NoError(t, err)
	buf[4] = 0xff
	_, err = Decode(buf)
	assert.Error(t, err)
	invalid, ok = err.(*InvalidTextEncodingError)
	if assert.True(t, ok) {
		assert.Equal(t, "car", invalid.Field)
	}
}

func TestInvalidTextAfterNUL(t *testing.T) {
	buf, err := Encode(&Packet{Display1: "OK"})
	assert.NoError(t, err)

	// garbage behind the terminator is never inspected
	buf[70] = 0xff
	decoded, err := Decode(buf)
	assert.NoError(t, err)
	assert.Equal(t, "OK", decoded.Display1)
}

// Decode a datagram assembled byte by byte at the documented offsets,
// independently of the layout table.
func TestDecodeKnownCapture(t *testing.T) {
	buf := make([]byte, PacketSize)
	binary.LittleEndian.PutUint32(buf[0:4], 123456)
	copy(buf[4:8], "XFG")
	binary.LittleEndian.PutUint16(buf[8:10], uint16(FlagPreferKM))
	buf[10] = 3  // gear
	buf[11] = 12 // player id
	binary.LittleEndian.PutUint32(buf[12:16], math.Float32bits(27.5))
	binary.LittleEndian.PutUint32(buf[16:20], math.Float32bits(4250))
	binary.LittleEndian.PutUint32(buf[20:24], math.Float32bits(0.5))
	binary.LittleEndian.PutUint32(buf[24:28], math.Float32bits(88))
	binary.LittleEndian.PutUint32(buf[28:32], math.Float32bits(0.43))
	binary.LittleEndian.PutUint32(buf[32:36], math.Float32bits(2.5))
	binary.LittleEndian.PutUint32(buf[36:40], math.Float32bits(95))
	binary.LittleEndian.PutUint32(buf[40:44], uint32(DLShiftLight|DLABS))
	binary.LittleEndian.PutUint32(buf[44:48], uint32(DLABS))
	binary.LittleEndian.PutUint32(buf[48:52], math.Float32bits(1.0))
	binary.LittleEndian.PutUint32(buf[52:56], math.Float32bits(0))
	binary.LittleEndian.PutUint32(buf[56:60], math.Float32bits(0.25))
	copy(buf[60:76], "SPEED 99 KMH")
	copy(buf[76:92], "FUEL 43%")
	binary.LittleEndian.PutUint32(buf[92:96], 7)

	p, err := Decode(buf)
	assert.NoError(t, err)
	assert.Equal(t, uint32(123456), p.Time)
	assert.Equal(t, "XFG", p.Car)
	assert.Equal(t, FlagPreferKM, p.Flags)
	assert.Equal(t, uint8(3), p.Gear)
	assert.Equal(t, uint8(12), p.PlayerID)
	assert.Equal(t, float32(27.5), p.Speed)
	assert.Equal(t, float32(4250), p.RPM)
	assert.Equal(t, float32(0.5), p.Turbo)
	assert.Equal(t, float32(88), p.EngTemp)
	assert.Equal(t, float32(0.43), p.Fuel)
	assert.Equal(t, float32(2.5), p.OilPressure)
	assert.Equal(t, float32(95), p.OilTemp)
	assert.Equal(t, DLShiftLight|DLABS, p.DashLights)
	assert.Equal(t, DLABS, p.ShowLights)
	assert.Equal(t, float32(1.0), p.Throttle)
	assert.Equal(t, float32(0), p.Brake)
	assert.Equal(t, float32(0.25), p.Clutch)
	assert.Equal(t, "SPEED 99 KMH", p.Display1)
	assert.Equal(t, "FUEL 43%", p.Display2)
	assert.Equal(t, int32(7), p.ID)
}

func TestDecodeDoesNotRangeCheck(t *testing.T) {
	p := testPacket()
	p.Fuel = 1.75 // out of the nominal 0-1 range, passed through as-is
	buf, err := Encode(p)
	assert.NoError(t, err)

	decoded, err := Decode(buf)
	assert.NoError(t, err)
	assert.Equal(t, float32(1.75), decoded.Fuel)
}

func TestDecodeDoesNotAliasInput(t *testing.T) {
	buf, err := Encode(testPacket())
	assert.NoError(t, err)

	p, err := Decode(buf)
	assert.NoError(t, err)
	copy(buf, make([]byte, PacketSize))
	assert.Equal(t, testPacket(), p)
}

func TestErrorMessages(t *testing.T) {
	_, err := Decode(nil)
	assert.Equal(t, "malformed packet: expected 96 bytes, received 0", err.Error())

	_, err = Encode(&Packet{Car: "TOOBIG"})
	assert.Equal(t, "field car exceeds 4 bytes", err.Error())
}
