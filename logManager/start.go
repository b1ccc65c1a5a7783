package logManager

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

	if globals.LogManagerLog, err = mlogger.DeclareLog("fbg_logManager", false); err != nil {
		fmt.Println("Fatal Error: Unable to set fbg_logManager logfile.")
		os.Exit(0)
	}
	if e := mlogger.SetTextLimit(globals.LogManagerLog, 50, 30, 12); e != nil {
		fmt.Println(e)
		os.Exit(0)
	}

	mlogger.Info(globals.LogManagerLog,
		mlogger.LoggerData{Id: "logManager.Start",
			Message: "service started",
			Data:    []int{1}, Aggregate: true})

	var rstC []chan interface{}
	for i := 0; i < 1; i++ {
		rstC = append(rstC, make(chan interface{}))
	}

	// setting up closure and shutdown
	go func(sd chan bool, rstC []chan interface{}) {
		<-sd
		fmt.Println("Closing logManager")
		for _, ch := range rstC {
			ch <- nil
			select {
			case <-ch:
			case <-time.After(time.Duration(globals.ShutdownTime) * time.Second):
			}
		}
		mlogger.Info(globals.LogManagerLog,
			mlogger.LoggerData{Id: "logManager.Start",
				Message: "service stopped",
				Data:    []int{1}, Aggregate: true})
		sd <- true
	}(sd, rstC)

	recovery.RunWith(
		func() { sampler(rstC[0]) },
		func() {
			mlogger.Recovered(globals.LogManagerLog,
				mlogger.LoggerData{Id: "logManager.sampler",
					Message: "service terminated and recovered unexpectedly",
					Data:    []int{1}, Aggregate: true})
		})
}
