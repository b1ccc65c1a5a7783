package registers

import (
	"sync"

	"github.com/nanisy08/FAZT-I4-Interrogator/dataformats"
	"github.com/nanisy08/FAZT-I4-Interrogator/support/globals"
)

/*
	latest-value table for all configured sensor slots
	written by the ingest loop only, read by the sampling logger only
*/

var table = struct {
	sync.RWMutex
	latest  map[dataformats.SlotKey]float64
	columns []dataformats.SlotKey
}{}

// Setup initialises all configured slots to zero in log column order.
// It must run before the ingest loop starts.
func Setup(channels []globals.ChannelMapping) {
	table.Lock()
	table.latest = make(map[dataformats.SlotKey]float64)
	table.columns = nil
	for _, ch := range channels {
		for _, sensor := range ch.Sensors {
			key := dataformats.SlotKey{Channel: ch.Id, Sensor: sensor}
			table.latest[key] = 0
			table.columns = append(table.columns, key)
		}
	}
	table.Unlock()
}

// Set stores the latest value for a configured slot. It reports false
// when the slot is not part of the configuration, in which case the
// table is left untouched.
func Set(key dataformats.SlotKey, value float64) bool {
	table.Lock()
	defer table.Unlock()
	if _, configured := table.latest[key]; !configured {
		return false
	}
	table.latest[key] = value
	return true
}

func Get(key dataformats.SlotKey) (float64, bool) {
	table.RLock()
	defer table.RUnlock()
	value, configured := table.latest[key]
	return value, configured
}

// Snapshot returns the latest value of every configured slot in log
// column order.
func Snapshot() []float64 {
	table.RLock()
	defer table.RUnlock()
	values := make([]float64, len(table.columns))
	for i, key := range table.columns {
		values[i] = table.latest[key]
	}
	return values
}

// Columns returns the configured slots in log column order.
func Columns() []dataformats.SlotKey {
	table.RLock()
	defer table.RUnlock()
	columns := make([]dataformats.SlotKey, len(table.columns))
	copy(columns, table.columns)
	return columns
}

// SnapshotSamples returns the snapshot with its slot identities, as
// used by the API and the export service.
func SnapshotSamples() []dataformats.SlotSample {
	table.RLock()
	defer table.RUnlock()
	samples := make([]dataformats.SlotSample, len(table.columns))
	for i, key := range table.columns {
		samples[i] = dataformats.SlotSample{
			Channel: key.Channel,
			Sensor:  key.Sensor,
			Value:   table.latest[key],
		}
	}
	return samples
}
