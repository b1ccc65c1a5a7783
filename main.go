package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nanisy08/FAZT-I4-Interrogator/apiManager"
	"github.com/nanisy08/FAZT-I4-Interrogator/dataformats"
	"github.com/nanisy08/FAZT-I4-Interrogator/exportManager"
	"github.com/nanisy08/FAZT-I4-Interrogator/logManager"
	"github.com/nanisy08/FAZT-I4-Interrogator/registers"
	"github.com/nanisy08/FAZT-I4-Interrogator/sensorManager"
	"github.com/nanisy08/FAZT-I4-Interrogator/storage/stateCache"
	"github.com/nanisy08/FAZT-I4-Interrogator/support"
	"github.com/nanisy08/FAZT-I4-Interrogator/support/globals"
)

func main() {
	var port = flag.String("port", "", "override TCP port")
	var freq = flag.Int("freq", 0, "override sampling frequency in Hz")
	var csvpath = flag.String("csv", "", "override force log path")
	var dcpath = flag.String("dc", "", "override state cache disk path")
	var debug = flag.Bool("debug", false, "enable verbose packet printing")
	var console = flag.Bool("console", false, "enable interactive stop on ESC")
	var export = flag.Bool("export", false, "enable export scripting")

	flag.Parse()

	globals.Start()
	globals.DebugActive = *debug
	globals.ConsoleActive = *console
	if *port != "" {
		globals.TCPport = *port
	}
	if *freq > 0 {
		globals.SamplingFrequency = *freq
	}
	if *csvpath != "" {
		globals.CSVPath = *csvpath
	}
	if *dcpath != "" {
		globals.DiskCachePath = *dcpath
	}
	if *export {
		globals.ExportEnabled = true
	}

	fmt.Printf("\nStarting FBG Acquisition Server %s \n\n", globals.VERSION)
	if globals.DebugActive {
		fmt.Printf("*** WARNING: verbose packet printing enabled ***\n")
	}
	if globals.ExportEnabled {
		fmt.Println("*** WARNING: Export mode enabled ***")
	}
	if globals.ConsoleActive {
		fmt.Println("*** INFO: press ESC to stop the server ***")
	}

	support.SupportSetUp("")
	stateCache.Start()
	registers.Setup(globals.Channels)
	exportManager.SetUp()
	sessionStart := support.Timestamp()

	// setup shutdown procedure
	c := make(chan os.Signal, 1)
	done := make(chan bool)
	var sd []chan bool
	for i := 0; i < 4; i++ {
		sd = append(sd, make(chan bool))
	}

	signal.Notify(c, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	go func(c chan os.Signal, sd []chan bool) {
		var cause string
		select {
		case <-c:
			cause = "user signal"
		case cause = <-globals.ShutdownTrigger:
		}
		drain(cause, sd, sessionStart)
		close(done)
		os.Exit(0)
	}(c, sd)

	if globals.ConsoleActive {
		go watchKeyboard()
	}

	//goland:noinspection ALL
	go sensorManager.Start(sd[0])
	time.Sleep(time.Duration(globals.SettleTime) * time.Second)
	//goland:noinspection ALL
	go logManager.Start(sd[1])
	//goland:noinspection ALL
	go apiManager.Start(sd[2])

	fmt.Printf("\nFBG Acquisition Server active on ports %v , %v\n\n", globals.TCPport, globals.APIport)

	//goland:noinspection ALL
	exportManager.Start(sd[3])

	// the supervisor owns the process exit, the session record must be
	// persisted before main is allowed to return
	<-done
}

// drain runs the whole shutdown sequence: fans the stop signal out to
// all services, persists the session record and releases every
// resource exactly once.
func drain(cause string, sd []chan bool, sessionStart int64) {
	globals.SetState(globals.Draining)
	fmt.Println("\nClosing FBG Acquisition Server:", cause)
	for _, ch := range sd {
		ch <- true
		select {
		case <-ch:
		case <-time.After(time.Duration(globals.ShutdownTime) * time.Second):
		}
	}
	if err := stateCache.SaveSession(dataformats.SessionRecord{
		Started:  sessionStart,
		Ended:    support.Timestamp(),
		Cause:    cause,
		Columns:  registers.Columns(),
		Snapshot: registers.Snapshot(),
	}); err != nil {
		fmt.Println("Error in saving the session record:", err.Error())
	}
	stateCache.Close()
	support.SupportTerminate()
	globals.SetState(globals.Stopped)
	fmt.Println("Closing FBG Acquisition Server completed")
}
