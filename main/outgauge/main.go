package main

import (
	"context"
	"flag"
	"fmt"
	"net"

	"github.com/jd3nn1s/outgauge"
	"github.com/jd3nn1s/outgauge/listener"
	log "github.com/sirupsen/logrus"
)

var configFile = flag.String("config", "outgauge.toml", "listener configuration file")
var testMode = flag.Bool("testmode", false, "generate test packets")
var printPackets = flag.Bool("print-packets", false, "print decoded packets to stdout")

type receiver struct {
	l  *listener.Listener
	cb listener.Callbacks
}

func (r *receiver) Open() error {
	return r.l.Open()
}

func (r *receiver) Close() error {
	return r.l.Close()
}

func (r *receiver) Start(ctx context.Context) error {
	return r.l.Start(ctx, r.cb)
}

func (r *receiver) Name() string {
	return r.l.Name()
}

func main() {
	log.SetLevel(log.InfoLevel)
	flag.Parse()

	ctx := context.Background()

	l, err := listener.NewListener(*configFile)
	if err != nil {
		log.Fatal("unable to load UDP listener: ", err)
	}

	rcv := &receiver{
		l: l,
		cb: listener.Callbacks{
			Packet: func(p *outgauge.Packet, addr net.Addr) {
				if *printPackets {
					fmt.Printf("%+v\n", *p)
				}
			},
		},
	}

	if *testMode {
		go runTestMode(ctx, fmt.Sprintf("%s:%d", l.Config.Host, l.Config.Port))
	}

	if err := listener.Retry(ctx, rcv); err != nil {
		log.Errorf("listener done: %v", err)
	}
}
