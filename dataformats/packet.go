package dataformats

import (
	"encoding/binary"
	"errors"
	"math"
)

// Each packet is 11 bytes: channel id, fiber id and sensor id followed
// by the force value as a little endian IEEE754 double.
const PacketSize = 11

var ErrMalformedPacket = errors.New("malformed packet: less than 11 bytes")

// DecodeReading turns one full packet into a Reading. The caller is
// responsible for supplying at least PacketSize bytes.
func DecodeReading(buffer []byte) (Reading, error) {
	if len(buffer) < PacketSize {
		return Reading{}, ErrMalformedPacket
	}
	return Reading{
		Channel: buffer[0],
		Fiber:   buffer[1],
		Sensor:  buffer[2],
		Value:   math.Float64frombits(binary.LittleEndian.Uint64(buffer[3:PacketSize])),
	}, nil
}

// EncodeReading is the wire inverse of DecodeReading.
func EncodeReading(r Reading) []byte {
	buffer := make([]byte, PacketSize)
	buffer[0] = r.Channel
	buffer[1] = r.Fiber
	buffer[2] = r.Sensor
	binary.LittleEndian.PutUint64(buffer[3:], math.Float64bits(r.Value))
	return buffer
}
