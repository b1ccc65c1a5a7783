package apiManager

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

	if globals.ApiManagerLog, err = mlogger.DeclareLog("fbg_apiManager", false); err != nil {
		fmt.Println("Fatal Error: Unable to set fbg_apiManager logfile.")
		os.Exit(0)
	}
	if e := mlogger.SetTextLimit(globals.ApiManagerLog, 80, 30, 12); e != nil {
		fmt.Println(e)
		os.Exit(0)
	}

	mlogger.Info(globals.ApiManagerLog,
		mlogger.LoggerData{Id: "apiManager.Start",
			Message: "service started",
			Data:    []int{1}, Aggregate: true})

	var rstC []chan bool
	for i := 0; i < 1; i++ {
		rstC = append(rstC, make(chan bool))
	}

	// setting up closure and shutdown
	go func(sd chan bool, rstC []chan bool) {
		<-sd
		fmt.Println("Closing apiManager")
		for _, ch := range rstC {
			ch <- true
			select {
			case <-ch:
			case <-time.After(time.Duration(globals.ShutdownTime) * time.Second):
			}
		}
		mlogger.Info(globals.ApiManagerLog,
			mlogger.LoggerData{Id: "apiManager.Start",
				Message: "service stopped",
				Data:    []int{1}, Aggregate: true})
		sd <- true
	}(sd, rstC)

	recovery.RunWith(
		func() { ApiManager(rstC[0]) },
		func() {
			mlogger.Recovered(globals.ApiManagerLog,
				mlogger.LoggerData{Id: "apiManager.ApiManager",
					Message: "service terminated and recovered unexpectedly",
					Data:    []int{1}, Aggregate: true})
		})
}
