package exportManager

import (
	"fmt"
	"os"
	"time"

	"github.com/fpessolano/mlogger"
	"github.com/nanisy08/FAZT-I4-Interrogator/dataformats"
	"github.com/nanisy08/FAZT-I4-Interrogator/support/globals"
	"github.com/nanisy08/FAZT-I4-Interrogator/support/recovery"
)

// ExportSamples receives every sampled row when export is enabled.
var ExportSamples chan dataformats.SampledRow

// SetUp creates the sample channel. It must run before any service
// that sends to it starts, so that no sender can observe a nil
// channel.
func SetUp() {
	ExportSamples = make(chan dataformats.SampledRow, globals.ChannellingLength)
}

func Start(sd chan bool) {

	var err error

	if globals.ExportManagerLog, err = mlogger.DeclareLog("fbg_exportManager", false); err != nil {
		fmt.Println("Fatal Error: Unable to set fbg_exportManager logfile.")
		os.Exit(0)
	}
	if e := mlogger.SetTextLimit(globals.ExportManagerLog, 50, 50, 12); e != nil {
		fmt.Println(e)
		os.Exit(0)
	}

	mlogger.Info(globals.ExportManagerLog,
		mlogger.LoggerData{Id: "exportManager.Start",
			Message: "service started",
			Data:    []int{0}, Aggregate: true})

	var rstC []chan interface{}
	for i := 0; i < 1; i++ {
		rstC = append(rstC, make(chan interface{}))
	}

	// setting up closure and shutdown
	go func(sd chan bool, rstC []chan interface{}) {
		<-sd
		fmt.Println("Closing exportManager")
		for _, ch := range rstC {
			ch <- nil
			select {
			case <-ch:
			case <-time.After(time.Duration(globals.ShutdownTime) * time.Second):
			}
		}
		mlogger.Info(globals.ExportManagerLog,
			mlogger.LoggerData{Id: "exportManager.Start",
				Message: "service stopped",
				Data:    []int{0}, Aggregate: true})
		sd <- true
	}(sd, rstC)

	recovery.RunWith(
		func() { customScripting(rstC[0], ExportSamples) },
		func() {
			mlogger.Recovered(globals.ExportManagerLog,
				mlogger.LoggerData{Id: "exportManager.customScripting",
					Message: "service terminated and recovered unexpectedly",
					Data:    []int{1}, Aggregate: true})
		})
}
