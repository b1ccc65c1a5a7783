package exportManager

import (
	"encoding/json"
	"fmt"
	"os/exec"
	"strings"

	"github.com/fpessolano/mlogger"
	"github.com/nanisy08/FAZT-I4-Interrogator/dataformats"
	"github.com/nanisy08/FAZT-I4-Interrogator/support/globals"
)

// customScripting hands every sampled row to the configured external
// command as a JSON argument.
func customScripting(rst chan interface{}, samples chan dataformats.SampledRow) {

finished:
	for {
		select {
		case <-rst:
			fmt.Println("Closing exportManager.customScripting")
			rst <- nil
			break finished
		case data := <-samples:
			if !globals.ExportEnabled || globals.ExportCommand == "" {
				continue
			}
			encodedData, err := json.Marshal(data)
			if err != nil {
				continue
			}
			payload := strings.Replace(string(encodedData), "\"", "'", -1)
			if globals.DebugActive {
				fmt.Printf("Export JSON: %v\n", payload)
			}
			if globals.ExportAsync {
				cmd := exec.Command(globals.ExportCommand, globals.ExportArgument, payload)
				if globals.ExportArgument == "" {
					cmd = exec.Command(globals.ExportCommand, payload)
				}
				if err := cmd.Start(); err != nil {
					if globals.DebugActive {
						fmt.Println("Export script has failed:", err.Error())
					}
					mlogger.Error(globals.ExportManagerLog,
						mlogger.LoggerData{Id: "exportManager.customScripting",
							Message: "error exporting data",
							Data:    []int{1}, Aggregate: true})
				}
			} else {
				out, err := exec.Command(globals.ExportCommand, globals.ExportArgument, payload).Output()
				if err != nil || len(out) != 0 {
					if globals.DebugActive {
						if err != nil {
							fmt.Println("Export script has failed:", err.Error())
						} else {
							fmt.Println("Export script reported failure:", string(out))
						}
					}
					mlogger.Error(globals.ExportManagerLog,
						mlogger.LoggerData{Id: "exportManager.customScripting",
							Message: "error exporting data",
							Data:    []int{1}, Aggregate: true})
				}
			}
		}
	}
}
