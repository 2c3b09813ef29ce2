package transport

import (
	"fmt"
	"net"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/milk9111/platformer3d/sim"
)

// Sender pushes snapshots to one peer. A rate limiter paces the broadcast
// below the simulation tick rate; frames above the budget are dropped, not
// queued, because only the newest snapshot matters.
type Sender struct {
	conn    *net.UDPConn
	session uuid.UUID
	seq     uint64
	limit   *rate.Limiter
	log     *zap.Logger
}

// NewSender dials a peer. perSecond caps outgoing snapshots.
func NewSender(addr string, perSecond float64, log *zap.Logger) (*Sender, error) {
	if log == nil {
		log = zap.NewNop()
	}
	udpAddr, err := net.ResolveUDPAddr("udp", addr)
	if err != nil {
		return nil, fmt.Errorf("transport: resolve %s: %w", addr, err)
	}
	conn, err := net.DialUDP("udp", nil, udpAddr)
	if err != nil {
		return nil, fmt.Errorf("transport: dial %s: %w", addr, err)
	}
	return &Sender{
		conn:    conn,
		session: uuid.New(),
		limit:   rate.NewLimiter(rate.Limit(perSecond), 1),
		log:     log,
	}, nil
}

// Session identifies this sender to its peer.
func (s *Sender) Session() uuid.UUID {
	return s.session
}

// Send ships a snapshot if the rate budget allows. Returns false when the
// frame was paced out; that is not an error.
func (s *Sender) Send(snap sim.Snapshot) (bool, error) {
	if !s.limit.Allow() {
		return false, nil
	}
	data, err := Encode(Packet{Session: s.session, Seq: s.seq + 1, Snapshot: snap})
	if err != nil {
		return false, err
	}
	s.seq++
	if _, err := s.conn.Write(data); err != nil {
		// unreliable channel: log and move on, the next frame supersedes
		s.log.Warn("snapshot send failed", zap.Error(err))
		return false, nil
	}
	return true, nil
}

func (s *Sender) Close() error {
	return s.conn.Close()
}
