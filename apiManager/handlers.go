package apiManager

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/fpessolano/mlogger"
	"github.com/gorilla/mux"
	"github.com/nanisy08/FAZT-I4-Interrogator/dataformats"
	"github.com/nanisy08/FAZT-I4-Interrogator/registers"
	"github.com/nanisy08/FAZT-I4-Interrogator/sensorManager"
	"github.com/nanisy08/FAZT-I4-Interrogator/storage/stateCache"
	"github.com/nanisy08/FAZT-I4-Interrogator/support/globals"
)

// returns the installation information
func info() http.Handler {

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if e := recover(); e != nil {
				mlogger.Recovered(globals.ApiManagerLog,
					mlogger.LoggerData{Id: "apiManager.info",
						Message: "route terminated and recovered unexpectedly",
						Data:    []int{1}, Aggregate: true})
			}
		}()

		if r.Method != "GET" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		answer := JsonInfo{
			Version:           globals.VERSION,
			State:             globals.StateName(),
			TcpPort:           globals.TCPport,
			SamplingFrequency: globals.SamplingFrequency,
			LogPath:           globals.CSVPath,
		}
		for _, ch := range globals.Channels {
			answer.Channels = append(answer.Channels, JsonChannel{
				Id:      int(ch.Id),
				Sensors: []int{int(ch.Sensors[0]), int(ch.Sensors[1])},
			})
		}
		sensorManager.ActiveClient.RLock()
		answer.Client = JsonClient{
			Address:   sensorManager.ActiveClient.Address,
			Since:     sensorManager.ActiveClient.Since,
			Received:  sensorManager.ActiveClient.Received,
			Discarded: sensorManager.ActiveClient.Discarded,
		}
		sensorManager.ActiveClient.RUnlock()

		w.Header().Set("Access-Control-Allow-Origin", "*")
		_ = json.NewEncoder(w).Encode(answer)
	})
}

// returns the latest reading of every slot or of a single channel
func latestData(all bool) http.Handler {

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if e := recover(); e != nil {
				mlogger.Recovered(globals.ApiManagerLog,
					mlogger.LoggerData{Id: "apiManager.latestData",
						Message: "route terminated and recovered unexpectedly",
						Data:    []int{1}, Aggregate: true})
			}
		}()

		if r.Method != "GET" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		samples := registers.SnapshotSamples()
		if !all {
			vars := mux.Vars(r)
			channel, err := strconv.Atoi(vars["channel"])
			if err != nil || channel < 0 || channel > 255 {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			var filtered []dataformats.SlotSample
			for _, sample := range samples {
				if sample.Channel == byte(channel) {
					filtered = append(filtered, sample)
				}
			}
			samples = filtered
		}

		w.Header().Set("Access-Control-Allow-Origin", "*")
		_ = json.NewEncoder(w).Encode(samples)
	})
}

// returns the final snapshot of the previous run
func previousSession() http.Handler {

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if e := recover(); e != nil {
				mlogger.Recovered(globals.ApiManagerLog,
					mlogger.LoggerData{Id: "apiManager.previousSession",
						Message: "route terminated and recovered unexpectedly",
						Data:    []int{1}, Aggregate: true})
			}
		}()

		if r.Method != "GET" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		record, err := stateCache.LastSession()
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Access-Control-Allow-Origin", "*")
		_ = json.NewEncoder(w).Encode(record)
	})
}
