package outgauge

import "strings"

// Flags is the OutGauge state bitmask. The codec carries it through as
// a raw mask; the constants below cover the documented bits.
type Flags uint16

const (
	FlagShiftKey  Flags = 1 << 0
	FlagCtrlKey   Flags = 1 << 1
	FlagShowTurbo Flags = 1 << 13
	FlagPreferKM  Flags = 1 << 14 // unset means miles
	FlagPreferBar Flags = 1 << 15 // unset means PSI
)

var flagNames = []struct {
	mask Flags
	name string
}{
	{FlagShiftKey, "shift_key"},
	{FlagCtrlKey, "ctrl_key"},
	{FlagShowTurbo, "show_turbo"},
	{FlagPreferKM, "prefer_km"},
	{FlagPreferBar, "prefer_bar"},
}

func (f Flags) Has(mask Flags) bool {
	return f&mask != 0
}

func (f Flags) String() string {
	names := []string{}
	for _, fn := range flagNames {
		if f.Has(fn.mask) {
			names = append(names, fn.name)
		}
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, "|")
}

// DashLights is the dashboard indicator bitmask, used both for the
// lights a dash provides and the lights currently lit.
type DashLights uint32

const (
	DLShiftLight      DashLights = 1 << 0
	DLFullBeam        DashLights = 1 << 1
	DLHandbrake       DashLights = 1 << 2
	DLPitSpeedLimiter DashLights = 1 << 3
	DLTC              DashLights = 1 << 4
	DLSignalLeft      DashLights = 1 << 5
	DLSignalRight     DashLights = 1 << 6
	DLSignalAny       DashLights = 1 << 7
	DLOilWarning      DashLights = 1 << 8
	DLBatteryWarning  DashLights = 1 << 9
	DLABS             DashLights = 1 << 10
	DLSpare           DashLights = 1 << 11
)

var dashLightNames = []struct {
	mask DashLights
	name string
}{
	{DLShiftLight, "shift_light"},
	{DLFullBeam, "full_beam"},
	{DLHandbrake, "handbrake"},
	{DLPitSpeedLimiter, "pit_speed_limiter"},
	{DLTC, "tc"},
	{DLSignalLeft, "signal_left"},
	{DLSignalRight, "signal_right"},
	{DLSignalAny, "signal_any"},
	{DLOilWarning, "oil_warning"},
	{DLBatteryWarning, "battery_warning"},
	{DLABS, "abs"},
	{DLSpare, "spare"},
}

func (d DashLights) Has(mask DashLights) bool {
	return d&mask != 0
}

func (d DashLights) String() string {
	names := []string{}
	for _, dn := range dashLightNames {
		if d.Has(dn.mask) {
			names = append(names, dn.name)
		}
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, "|")
}
