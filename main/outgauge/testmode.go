package main

import (
	"context"
	"net"
	"time"

	"github.com/jd3nn1s/outgauge"
	log "github.com/sirupsen/logrus"
)

// runTestMode sends synthetic ramping packets to the configured
// address so the receive path can be exercised without a simulator.
func runTestMode(ctx context.Context, addr string) {
	conn, err := net.Dial("udp", addr)
	if err != nil {
		log.Error("unable to open test packet connection: ", err)
		return
	}
	defer conn.Close()

	pkt := outgauge.Packet{
		Car:        "XRT",
		Flags:      outgauge.FlagPreferKM,
		Gear:       1,
		DashLights: outgauge.DLShiftLight | outgauge.DLFullBeam | outgauge.DLABS,
		Display1:   "TEST MODE",
	}
	down := false
	for {
		select {
		case <-time.Tick(time.Millisecond * 100):
		case <-ctx.Done():
			return
		}

		if down {
			pkt.RPM -= 100
			pkt.Speed -= 0.5
		} else {
			pkt.RPM += 100
			pkt.Speed += 0.5
		}
		if pkt.RPM >= 6000 {
			down = true
		} else if pkt.RPM <= 0 {
			down = false
		}
		if pkt.RPM >= 5500 {
			pkt.ShowLights |= outgauge.DLShiftLight
		} else {
			pkt.ShowLights &^= outgauge.DLShiftLight
		}
		pkt.Time += 100
		pkt.ID++

		buf, err := outgauge.Encode(&pkt)
		if err != nil {
			log.Error("unable to encode test packet: ", err)
			continue
		}
		if _, err := conn.Write(buf); err != nil {
			log.Error("unable to send test packet: ", err)
		}
	}
}
