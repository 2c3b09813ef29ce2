package transport

import (
	"errors"
	"fmt"
	"net"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Receiver listens for peer snapshots and keeps the newest one per session.
// Reads happen on a background goroutine; Remotes copies under a lock, so
// the render thread never blocks on the socket.
type Receiver struct {
	conn *net.UDPConn
	log  *zap.Logger

	mu     sync.Mutex
	latest map[uuid.UUID]Packet

	closeOnce sync.Once
}

// NewReceiver binds a listen address and starts the read loop.
func NewReceiver(addr string, log *zap.Logger) (*Receiver, error) {
	if log == nil {
		log = zap.NewNop()
	}
	udpAddr, err := net.ResolveUDPAddr("udp", addr)
	if err != nil {
		return nil, fmt.Errorf("transport: resolve %s: %w", addr, err)
	}
	conn, err := net.ListenUDP("udp", udpAddr)
	if err != nil {
		return nil, fmt.Errorf("transport: listen %s: %w", addr, err)
	}
	r := &Receiver{
		conn:   conn,
		log:    log,
		latest: make(map[uuid.UUID]Packet),
	}
	go r.readLoop()
	return r, nil
}

func (r *Receiver) readLoop() {
	buf := make([]byte, maxDatagram)
	for {
		n, _, err := r.conn.ReadFromUDP(buf)
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return
			}
			r.log.Warn("snapshot read failed", zap.Error(err))
			continue
		}
		pkt, err := Decode(buf[:n])
		if err != nil {
			r.log.Warn("malformed snapshot dropped", zap.Error(err))
			continue
		}
		r.store(pkt)
	}
}

// store keeps a packet only if it is newer than what we already hold for
// its session. UDP reordering makes stale arrivals routine, not errors.
func (r *Receiver) store(pkt Packet) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if prev, ok := r.latest[pkt.Session]; ok && prev.Seq >= pkt.Seq {
		return
	}
	r.latest[pkt.Session] = pkt
}

// Remotes returns the newest packet per connected session.
func (r *Receiver) Remotes() []Packet {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Packet, 0, len(r.latest))
	for _, pkt := range r.latest {
		out = append(out, pkt)
	}
	return out
}

func (r *Receiver) Close() error {
	var err error
	r.closeOnce.Do(func() {
		err = r.conn.Close()
	})
	return err
}
