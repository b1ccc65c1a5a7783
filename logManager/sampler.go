package logManager

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/fpessolano/mlogger"
	"github.com/nanisy08/FAZT-I4-Interrogator/dataformats"
	"github.com/nanisy08/FAZT-I4-Interrogator/exportManager"
	"github.com/nanisy08/FAZT-I4-Interrogator/registers"
	"github.com/nanisy08/FAZT-I4-Interrogator/support"
	"github.com/nanisy08/FAZT-I4-Interrogator/support/globals"
	"github.com/pkg/errors"
)

const timeLayout = "2006-01-02 15:04:05.000000"

// forceLog owns the CSV file for the lifetime of the run. The file is
// recreated at start and strictly appended to afterwards.
type forceLog struct {
	file   *os.File
	writer *csv.Writer
}

// newForceLog truncates the log file and writes the two header rows
// derived from the channel configuration.
func newForceLog(path string, channels []globals.ChannelMapping) (*forceLog, error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrap(err, "unable to create force log")
	}
	writer := csv.NewWriter(file)

	top := []string{"Time"}
	sub := []string{""}
	for _, ch := range channels {
		top = append(top, "Channel "+strconv.Itoa(int(ch.Id)), "")
		sub = append(sub, "Sensor 1", "Sensor 2")
	}
	if err = writer.Write(top); err == nil {
		err = writer.Write(sub)
	}
	writer.Flush()
	if err == nil {
		err = writer.Error()
	}
	if err != nil {
		_ = file.Close()
		return nil, errors.Wrap(err, "unable to write force log header")
	}
	return &forceLog{file: file, writer: writer}, nil
}

// appendRow adds one sampled row and flushes it to disk.
func (fl *forceLog) appendRow(ts time.Time, values []float64) error {
	row := make([]string, 0, len(values)+1)
	row = append(row, ts.Format(timeLayout))
	for _, v := range values {
		row = append(row, strconv.FormatFloat(v, 'f', -1, 64))
	}
	if err := fl.writer.Write(row); err != nil {
		return errors.Wrap(globals.ErrLogWrite, err.Error())
	}
	fl.writer.Flush()
	if err := fl.writer.Error(); err != nil {
		return errors.Wrap(globals.ErrLogWrite, err.Error())
	}
	return nil
}

func (fl *forceLog) close() {
	fl.writer.Flush()
	_ = fl.file.Close()
}

/*
	snapshots the force table on every sampling tick and appends one
	row to the CSV log, cadence is best-effort periodic
*/

func sampler(rst chan interface{}) {

	forces, err := newForceLog(globals.CSVPath, globals.Channels)
	if err != nil {
		fmt.Println("logManager.sampler:", err.Error())
		mlogger.Error(globals.LogManagerLog,
			mlogger.LoggerData{Id: "logManager.sampler",
				Message: "failed to initialise force log: " + err.Error(),
				Data:    []int{1}, Aggregate: true})
		globals.RequestShutdown(err.Error())
		<-rst
		rst <- nil
		return
	}
	defer forces.close()

	mlogger.Info(globals.LogManagerLog,
		mlogger.LoggerData{Id: "logManager.sampler",
			Message: "logging to " + globals.CSVPath +
				" at " + strconv.Itoa(globals.SamplingFrequency) + "Hz",
			Data: []int{1}, Aggregate: true})

	run(forces, rst)
}

// run is the sampling cycle proper, separated from the log file
// bootstrap.
func run(forces *forceLog, rst chan interface{}) {

	period := time.Second / time.Duration(globals.SamplingFrequency)
	for {
		cycleStart := time.Now()
		values := registers.Snapshot()
		if err := forces.appendRow(cycleStart, values); err != nil {
			fmt.Println("logManager.sampler:", err.Error())
			mlogger.Error(globals.LogManagerLog,
				mlogger.LoggerData{Id: "logManager.sampler",
					Message: "append failed: " + err.Error(),
					Data:    []int{1}, Aggregate: true})
			globals.RequestShutdown(err.Error())
			<-rst
			rst <- nil
			return
		}
		if globals.ExportEnabled {
			row := dataformats.SampledRow{
				Ts:      support.Timestamp(),
				Samples: registers.SnapshotSamples(),
			}
			select {
			case exportManager.ExportSamples <- row:
			default:
			}
		}
		// best-effort cadence, the sleep absorbs the cycle's own work
		// time but drift under contention does not compound
		wait := period - time.Since(cycleStart)
		if wait < 0 {
			wait = 0
		}
		select {
		case <-rst:
			fmt.Println("Closing logManager.sampler")
			rst <- nil
			return
		case <-time.After(wait):
		}
	}
}
