package sensorManager

import (
	"fmt"
	"io"
	"net"
	"time"

	"github.com/fpessolano/mlogger"
	"github.com/nanisy08/FAZT-I4-Interrogator/dataformats"
	"github.com/nanisy08/FAZT-I4-Interrogator/registers"
	"github.com/nanisy08/FAZT-I4-Interrogator/support/globals"
	"github.com/nanisy08/FAZT-I4-Interrogator/support/recovery"
	"github.com/pkg/errors"
)

/*
	runs the framed read loop over the instrument connection and routes
	every decoded reading into the force table
*/

func handler(conn net.Conn, rst chan interface{}) {

	// cleaning up at closure
	defer func() {
		_ = conn.Close()
	}()

	done := make(chan error, 1)
	go recovery.CleanPanic(
		func() { done <- ingest(conn) },
		func() { done <- globals.ErrConnectionClosed })

	select {
	case err := <-done:
		// peer closed the connection or the read failed, either way the
		// whole system drains
		fmt.Println("sensorManager.handler:", err.Error())
		mlogger.Error(globals.SensorManagerLog,
			mlogger.LoggerData{Id: "sensorManager.handler",
				Message: "connection lost: " + err.Error(),
				Data:    []int{1}, Aggregate: true})
		globals.RequestShutdown(err.Error())
		<-rst
		rst <- nil
	case <-rst:
		// closing the connection unblocks the pending read
		_ = conn.Close()
		select {
		case <-done:
		case <-time.After(time.Duration(globals.ShutdownTime) * time.Second):
		}
		mlogger.Info(globals.SensorManagerLog,
			mlogger.LoggerData{Id: "sensorManager.handler",
				Message: "service stopped",
				Data:    []int{1}, Aggregate: true})
		rst <- nil
	}
}

// ingest accumulates bytes in a reassembly buffer and consumes exactly
// one packet per decode. TCP does not preserve the 11 byte record
// boundaries, a single read can deliver a fragment or several records.
func ingest(conn net.Conn) error {
	var buffer []byte
	chunk := make([]byte, 16*dataformats.PacketSize)

	for {
		n, e := conn.Read(chunk)
		if n > 0 {
			buffer = append(buffer, chunk[:n]...)
			for len(buffer) >= dataformats.PacketSize {
				reading, err := dataformats.DecodeReading(buffer[:dataformats.PacketSize])
				buffer = buffer[dataformats.PacketSize:]
				if err != nil {
					// cannot happen with a full frame, skip and keep buffering
					mlogger.Warning(globals.SensorManagerLog,
						mlogger.LoggerData{Id: "sensorManager.ingest",
							Message: "decode failed: " + err.Error(),
							Data:    []int{1}, Aggregate: true})
					continue
				}
				route(reading)
			}
		}
		if e != nil {
			if e == io.EOF {
				return globals.ErrConnectionClosed
			}
			return errors.Wrap(e, "read failed")
		}
	}
}

func route(reading dataformats.Reading) {
	key := dataformats.SlotKey{Channel: reading.Channel, Sensor: reading.Sensor}
	if !registers.Set(key, reading.Value) {
		ActiveClient.Lock()
		ActiveClient.Discarded++
		ActiveClient.Unlock()
		mlogger.Warning(globals.SensorManagerLog,
			mlogger.LoggerData{Id: "sensorManager.route",
				Message: fmt.Sprintf("unrecognized slot %v/%v, reading discarded",
					reading.Channel, reading.Sensor),
				Data: []int{1}, Aggregate: true})
		return
	}
	ActiveClient.Lock()
	ActiveClient.Received++
	ActiveClient.Unlock()
	if globals.DebugActive {
		fmt.Printf("%v:: Sensor ID: %v, Channel: %v, FBGs: %v nm\n",
			reading.Fiber, reading.Sensor, reading.Channel, reading.Value)
	}
}
