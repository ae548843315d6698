package outgauge

// PacketSize is the exact size in bytes of one OutGauge datagram on the
// wire. Datagrams of any other size do not decode.
const PacketSize = 96

// Packet is one decoded OutGauge telemetry frame. Numeric values are
// passed through exactly as the simulator reported them: fractions are
// not clamped and gear 0 keeps the simulator's reverse/neutral
// convention.
type Packet struct {
	Time     uint32 // milliseconds since simulator start
	Car      string // short vehicle identifier, up to 4 bytes
	Flags    Flags
	Gear     uint8
	PlayerID uint8

	Speed       float32 // m/s
	RPM         float32
	Turbo       float32
	EngTemp     float32
	Fuel        float32 // fraction 0.0-1.0
	OilPressure float32
	OilTemp     float32

	DashLights DashLights // lights available on the dash
	ShowLights DashLights // lights currently lit

	Throttle float32 // fraction 0.0-1.0
	Brake    float32 // fraction 0.0-1.0
	Clutch   float32 // fraction 0.0-1.0

	Display1 string // in-sim display line, up to 16 bytes
	Display2 string // in-sim display line, up to 16 bytes

	ID int32 // packet sequence/instance identifier
}

type field struct {
	name  string
	width int
	ref   func(p *Packet) interface{}
}

// packetLayout is the wire format, in transmission order. Both Decode
// and Encode walk this table; field offsets accumulate from the widths
// and are never written out twice.
//
//	offset  0: time        (uint32)
//	offset  4: car         (4-byte text)
//	offset  8: flags       (uint16)
//	offset 10: gear        (uint8)
//	offset 11: plid        (uint8)
//	offset 12: speed       (float32)
//	offset 16: rpm         (float32)
//	offset 20: turbo       (float32)
//	offset 24: eng_temp    (float32)
//	offset 28: fuel        (float32)
//	offset 32: oil_pressure(float32)
//	offset 36: oil_temp    (float32)
//	offset 40: dash_lights (uint32)
//	offset 44: show_lights (uint32)
//	offset 48: throttle    (float32)
//	offset 52: brake       (float32)
//	offset 56: clutch      (float32)
//	offset 60: display1    (16-byte text)
//	offset 76: display2    (16-byte text)
//	offset 92: id          (int32)
var packetLayout = []field{
	{"time", 4, func(p *Packet) interface{} { return &p.Time }},
	{"car", 4, func(p *Packet) interface{} { return &p.Car }},
	{"flags", 2, func(p *Packet) interface{} { return &p.Flags }},
	{"gear", 1, func(p *Packet) interface{} { return &p.Gear }},
	{"plid", 1, func(p *Packet) interface{} { return &p.PlayerID }},
	{"speed", 4, func(p *Packet) interface{} { return &p.Speed }},
	{"rpm", 4, func(p *Packet) interface{} { return &p.RPM }},
	{"turbo", 4, func(p *Packet) interface{} { return &p.Turbo }},
	{"eng_temp", 4, func(p *Packet) interface{} { return &p.EngTemp }},
	{"fuel", 4, func(p *Packet) interface{} { return &p.Fuel }},
	{"oil_pressure", 4, func(p *Packet) interface{} { return &p.OilPressure }},
	{"oil_temp", 4, func(p *Packet) interface{} { return &p.OilTemp }},
	{"dash_lights", 4, func(p *Packet) interface{} { return &p.DashLights }},
	{"show_lights", 4, func(p *Packet) interface{} { return &p.ShowLights }},
	{"throttle", 4, func(p *Packet) interface{} { return &p.Throttle }},
	{"brake", 4, func(p *Packet) interface{} { return &p.Brake }},
	{"clutch", 4, func(p *Packet) interface{} { return &p.Clutch }},
	{"display1", 16, func(p *Packet) interface{} { return &p.Display1 }},
	{"display2", 16, func(p *Packet) interface{} { return &p.Display2 }},
	{"id", 4, func(p *Packet) interface{} { return &p.ID }},
}

func layoutSize() int {
	size := 0
	for _, f := range packetLayout {
		size += f.width
	}
	return size
}
