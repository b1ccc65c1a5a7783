package sensorManager

import (
	"net"
	"testing"
	"time"

	"github.com/fpessolano/mlogger"
	"github.com/nanisy08/FAZT-I4-Interrogator/dataformats"
	"github.com/nanisy08/FAZT-I4-Interrogator/registers"
	"github.com/nanisy08/FAZT-I4-Interrogator/support/globals"
)

func setUpTest(t *testing.T) {
	var err error
	if globals.SensorManagerLog, err = mlogger.DeclareLog("fbg_sensorManager", false); err != nil {
		t.Fatal(err)
	}
	globals.SetDefaults()
	registers.Setup(globals.Channels)
}

func Test_FragmentedDelivery(t *testing.T) {
	setUpTest(t)

	client, server := net.Pipe()
	done := make(chan error, 1)
	go func() { done <- ingest(server) }()

	// one record split across three writes
	record := dataformats.EncodeReading(
		dataformats.Reading{Channel: 1, Fiber: 1, Sensor: 1, Value: 7.25})
	for _, fragment := range [][]byte{record[:4], record[4:9], record[9:]} {
		if _, e := client.Write(fragment); e != nil {
			t.Fatal(e)
		}
		time.Sleep(20 * time.Millisecond)
	}

	// two records delivered back to back in a single write
	burst := append(dataformats.EncodeReading(
		dataformats.Reading{Channel: 2, Fiber: 2, Sensor: 0, Value: -3.5}),
		dataformats.EncodeReading(
			dataformats.Reading{Channel: 2, Fiber: 2, Sensor: 1, Value: 9.875})...)
	if _, e := client.Write(burst); e != nil {
		t.Fatal(e)
	}
	time.Sleep(20 * time.Millisecond)

	_ = client.Close()
	select {
	case err := <-done:
		if err == nil {
			t.Fatalf("Expected an error on peer close")
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("Ingest loop did not exit on peer close")
	}

	if v, _ := registers.Get(dataformats.SlotKey{Channel: 1, Sensor: 1}); v != 7.25 {
		t.Fatalf("Expected 7.25 but got %v", v)
	}
	if v, _ := registers.Get(dataformats.SlotKey{Channel: 2, Sensor: 0}); v != -3.5 {
		t.Fatalf("Expected -3.5 but got %v", v)
	}
	if v, _ := registers.Get(dataformats.SlotKey{Channel: 2, Sensor: 1}); v != 9.875 {
		t.Fatalf("Expected 9.875 but got %v", v)
	}
}

func Test_UnrecognizedSlotDiscarded(t *testing.T) {
	setUpTest(t)

	client, server := net.Pipe()
	done := make(chan error, 1)
	go func() { done <- ingest(server) }()

	if _, e := client.Write(dataformats.EncodeReading(
		dataformats.Reading{Channel: 9, Fiber: 1, Sensor: 0, Value: 5.5})); e != nil {
		t.Fatal(e)
	}
	time.Sleep(20 * time.Millisecond)
	_ = client.Close()
	<-done

	for _, value := range registers.Snapshot() {
		if value != 0 {
			t.Fatalf("Unrecognized slot mutated the force table")
		}
	}
}

// scenario: connect, send three valid records for slot (1,1), close the
// connection; the last value must survive and the whole service must
// drain cleanly exactly once
func Test_SingleSessionShutdown(t *testing.T) {
	globals.SetDefaults()
	globals.TCPport = "4978"
	globals.ShutdownTime = 1
	registers.Setup(globals.Channels)
	select {
	case <-globals.ShutdownTrigger:
	default:
	}

	sd := make(chan bool)
	go Start(sd)
	time.Sleep(500 * time.Millisecond)

	conn, e := net.Dial("tcp4", "127.0.0.1:"+globals.TCPport)
	if e != nil {
		t.Fatalf("Unable to connect: %v", e)
	}
	for _, value := range []float64{1.1, 2.2, 3.3} {
		if _, e := conn.Write(dataformats.EncodeReading(
			dataformats.Reading{Channel: 1, Fiber: 1, Sensor: 1, Value: value})); e != nil {
			t.Fatal(e)
		}
	}
	time.Sleep(200 * time.Millisecond)
	_ = conn.Close()

	select {
	case cause := <-globals.ShutdownTrigger:
		if cause != globals.ErrConnectionClosed.Error() {
			t.Fatalf("Expected %v but got %v", globals.ErrConnectionClosed.Error(), cause)
		}
	case <-time.After(3 * time.Second):
		t.Fatalf("Peer close did not trigger a shutdown")
	}

	if v, _ := registers.Get(dataformats.SlotKey{Channel: 1, Sensor: 1}); v != 3.3 {
		t.Fatalf("Expected 3.3 but got %v", v)
	}

	// the supervisor side of the drain
	sd <- true
	select {
	case <-sd:
	case <-time.After(5 * time.Second):
		t.Fatalf("Service did not acknowledge the shutdown")
	}
}
