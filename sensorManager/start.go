package sensorManager

import (
	"fmt"
	"os"
	"time"

	"github.com/fpessolano/mlogger"
	"github.com/nanisy08/FAZT-I4-Interrogator/support/globals"
	"github.com/nanisy08/FAZT-I4-Interrogator/support/recovery"
)

func Start(sd chan bool) {
	var err error

	if globals.SensorManagerLog, err = mlogger.DeclareLog("fbg_sensorManager", false); err != nil {
		fmt.Println("Fatal Error: Unable to set fbg_sensorManager logfile.")
		os.Exit(0)
	}
	if e := mlogger.SetTextLimit(globals.SensorManagerLog, 40, 30, 12); e != nil {
		fmt.Println(e)
		os.Exit(0)
	}

	mlogger.Info(globals.SensorManagerLog,
		mlogger.LoggerData{Id: "sensorManager.Start",
			Message: "service started",
			Data:    []int{1}, Aggregate: true})

	var rstC []chan interface{}
	for i := 0; i < 1; i++ {
		rstC = append(rstC, make(chan interface{}))
	}

	// setting up closure and shutdown
	go func(sd chan bool, rstC []chan interface{}) {
		<-sd
		fmt.Println("Closing sensorManager")
		for _, ch := range rstC {
			ch <- nil
			select {
			case <-ch:
			case <-time.After(time.Duration(globals.ShutdownTime) * time.Second):
			}
		}
		mlogger.Info(globals.SensorManagerLog,
			mlogger.LoggerData{Id: "sensorManager.Start",
				Message: "service stopped",
				Data:    []int{1}, Aggregate: true})
		sd <- true
	}(sd, rstC)

	recovery.RunWith(
		func() { tcpServer(rstC[0]) },
		func() {
			mlogger.Recovered(globals.SensorManagerLog,
				mlogger.LoggerData{Id: "sensorManager.tcpServer",
					Message: "service terminated and recovered unexpectedly",
					Data:    []int{1}, Aggregate: true})
		})
}
