// Package transport ships entity snapshots over UDP so a second observer
// can render a remote player. Datagrams are fire-and-forget: stale or lost
// packets are simply superseded by the next one, and remote state is never
// folded back into local physics.
package transport

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/milk9111/platformer3d/sim"
)

// maxDatagram bounds a decoded packet; snapshots are a few KB of JSON.
const maxDatagram = 64 * 1024

// Packet wraps one snapshot with its origin session and a sequence number
// so receivers can drop out-of-order datagrams.
type Packet struct {
	Session  uuid.UUID    `json:"session"`
	Seq      uint64       `json:"seq"`
	Snapshot sim.Snapshot `json:"snapshot"`
}

// Encode serializes a packet for the wire.
func Encode(p Packet) ([]byte, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("transport: encode packet: %w", err)
	}
	if len(data) > maxDatagram {
		return nil, fmt.Errorf("transport: packet of %d bytes exceeds datagram limit", len(data))
	}
	return data, nil
}

// Decode parses a wire packet.
func Decode(data []byte) (Packet, error) {
	var p Packet
	if err := json.Unmarshal(data, &p); err != nil {
		return Packet{}, fmt.Errorf("transport: decode packet: %w", err)
	}
	return p, nil
}
