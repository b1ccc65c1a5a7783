package stateCache

import (
	"testing"

	"github.com/nanisy08/FAZT-I4-Interrogator/dataformats"
	"github.com/nanisy08/FAZT-I4-Interrogator/support/globals"
)

func Test_SessionRoundTrip(t *testing.T) {
	globals.SetDefaults()
	globals.DiskCachePath = t.TempDir()
	Start()
	defer Close()

	record := dataformats.SessionRecord{
		Started: 1700000000000,
		Ended:   1700000060000,
		Cause:   "user signal",
		Columns: []dataformats.SlotKey{
			{Channel: 1, Sensor: 0}, {Channel: 1, Sensor: 1},
			{Channel: 2, Sensor: 0}, {Channel: 2, Sensor: 1},
		},
		Snapshot: []float64{0.5, 1.5, 2.5, 3.5},
	}
	if err := SaveSession(record); err != nil {
		t.Fatal(err)
	}

	restored, err := LastSession()
	if err != nil {
		t.Fatal(err)
	}
	if restored.Started != record.Started || restored.Cause != record.Cause {
		t.Fatalf("Expected %+v but got %+v", record, restored)
	}
	if len(restored.Snapshot) != 4 || restored.Snapshot[3] != 3.5 {
		t.Fatalf("Wrong snapshot %v", restored.Snapshot)
	}
}

func Test_LastSessionEmpty(t *testing.T) {
	globals.SetDefaults()
	globals.DiskCachePath = t.TempDir()
	Start()
	defer Close()

	if _, err := LastSession(); err == nil {
		t.Fatalf("Expected an error on an empty cache")
	}
}
