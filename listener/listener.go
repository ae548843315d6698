package listener

import (
	"context"
	"fmt"
	"io"
	"io/ioutil"
	"net"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/jd3nn1s/outgauge"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// readBufferSize must exceed outgauge.PacketSize so over-length
// datagrams are seen as such rather than silently truncated to a
// decodable size.
const readBufferSize = 256

type UDPConfig struct {
	Host string
	Port int
}

type PacketFn func(p *outgauge.Packet, addr net.Addr)
type DecodeErrorFn func(err error, addr net.Addr)

// Callbacks receive decoded packets and decode failures. A nil
// DecodeError means failures are only logged; they never stop the
// receive loop.
type Callbacks struct {
	Packet      PacketFn
	DecodeError DecodeErrorFn
}

type Listener struct {
	Config *UDPConfig

	pc net.PacketConn
}

func NewListener(fileName string) (*Listener, error) {
	dir, err := filepath.Abs(filepath.Dir(os.Args[0]))
	if err != nil {
		return nil, errors.Wrapf(err, "unable to determine binary location")
	}
	file, err := os.Open(filepath.Join(dir, fileName))
	if err != nil {
		return nil, errors.Wrapf(err, "unable to open file %s", fileName)
	}
	return NewListenerFromReader(file)
}

func NewListenerFromReader(configReader io.Reader) (*Listener, error) {
	configData, err := ioutil.ReadAll(configReader)
	if err != nil {
		return nil, errors.Wrap(err, "unable to read config reader")
	}
	config := UDPConfig{}
	if _, err := toml.Decode(string(configData), &config); err != nil {
		return nil, errors.Wrapf(err, "unable to load udp listener configuration")
	}
	return &Listener{
		Config: &config,
	}, nil
}

func (l *Listener) Open() error {
	pc, err := net.ListenPacket("udp", fmt.Sprintf("%s:%d",
		l.Config.Host,
		l.Config.Port))
	if err != nil {
		return err
	}
	udpConn := pc.(*net.UDPConn)
	if err = udpConn.SetReadBuffer(readBufferSize * 2); err != nil {
		return errors.Wrapf(err, "unable to set OS read buffer to %v", readBufferSize*2)
	}
	l.pc = pc
	return nil
}

func (l *Listener) Close() error {
	if l.pc == nil {
		return nil
	}
	return l.pc.Close()
}

// LocalAddr returns the bound address, useful when the configured port
// is 0.
func (l *Listener) LocalAddr() net.Addr {
	if l.pc == nil {
		return nil
	}
	return l.pc.LocalAddr()
}

func (l *Listener) Name() string {
	return "outgauge"
}

// Start reads datagrams until the context is cancelled or the socket
// fails. Malformed datagrams are expected on a real network and are
// reported through the callbacks, never returned.
func (l *Listener) Start(ctx context.Context, cb Callbacks) error {
	if l.pc == nil {
		return errors.New("listener is not open")
	}
	log.WithField("addr", l.pc.LocalAddr()).Info("listening for OutGauge packets")

	go func() {
		<-ctx.Done()
		log.Infof("stopping listener: %v", ctx.Err())
		if err := l.pc.Close(); err != nil {
			log.WithField("err", err).Warn("unable to close listener socket after context")
		}
	}()

	buf := make([]byte, readBufferSize)
	for {
		n, addr, err := l.pc.ReadFrom(buf)
		if err != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			return errors.Wrap(err, "unable to read from udp socket")
		}
		l.handleDatagram(buf[:n], addr, cb)
	}
}

func (l *Listener) handleDatagram(data []byte, addr net.Addr, cb Callbacks) {
	pkt, err := outgauge.Decode(data)
	if err != nil {
		log.WithField("addr", addr).
			WithField("length", len(data)).
			Warn("discarding datagram: ", err)
		if cb.DecodeError != nil {
			cb.DecodeError(err, addr)
		}
		return
	}
	if cb.Packet == nil {
		log.Debug("no packet callback registered")
		return
	}
	cb.Packet(pkt, addr)
}
