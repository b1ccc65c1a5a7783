package sensorManager

import (
	"fmt"
	"net"
	"os"

	"github.com/coreos/go-systemd/daemon"
	"github.com/fpessolano/mlogger"
	"github.com/nanisy08/FAZT-I4-Interrogator/support"
	"github.com/nanisy08/FAZT-I4-Interrogator/support/globals"
)

/*
	accepts the single instrument controller connection and hands it
	over to the ingest handler, single-session and non-restartable
*/

func tcpServer(rst chan interface{}) {

	srv, e := net.Listen("tcp4", "0.0.0.0:"+globals.TCPport)
	if e != nil {
		fmt.Println("sensorManager.tcpServer: fatal error:", e)
		os.Exit(0)
	}
	defer srv.Close()

	globals.SetState(globals.AwaitingConnection)
	mlogger.Info(globals.SensorManagerLog,
		mlogger.LoggerData{Id: "sensorManager.tcpServer",
			Message: "listening on 0.0.0.0:" + globals.TCPport,
			Data:    []int{0}, Aggregate: true})
	fmt.Println("Server waiting for client connection...")

	c := make(chan net.Conn, 1)
	go func(c chan net.Conn, srv net.Listener) {
		conn, e := srv.Accept()
		if e != nil {
			// the listener was closed during shutdown
			return
		}
		c <- conn
	}(c, srv)

	select {
	case conn := <-c:
		fmt.Printf("Connection from %v\n", conn.RemoteAddr())
		ActiveClient.Lock()
		ActiveClient.Address = conn.RemoteAddr().String()
		ActiveClient.Since = support.Timestamp()
		ActiveClient.Unlock()
		globals.SetState(globals.Running)
		_, _ = daemon.SdNotify(false, daemon.SdNotifyReady)
		mlogger.Info(globals.SensorManagerLog,
			mlogger.LoggerData{Id: "sensorManager.tcpServer",
				Message: "instrument connected from " + conn.RemoteAddr().String(),
				Data:    []int{1}, Aggregate: true})
		handler(conn, rst)
	case <-rst:
		fmt.Println("Closing sensorManager.tcpServer")
		mlogger.Info(globals.SensorManagerLog,
			mlogger.LoggerData{Id: "sensorManager.tcpServer",
				Message: "service stopped",
				Data:    []int{0}, Aggregate: true})
		rst <- nil
	}
}
