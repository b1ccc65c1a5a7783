package logManager

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fpessolano/mlogger"
	"github.com/nanisy08/FAZT-I4-Interrogator/dataformats"
	"github.com/nanisy08/FAZT-I4-Interrogator/registers"
	"github.com/nanisy08/FAZT-I4-Interrogator/support/globals"
)

func setUpTest(t *testing.T) string {
	var err error
	if globals.LogManagerLog, err = mlogger.DeclareLog("fbg_logManager", false); err != nil {
		t.Fatal(err)
	}
	globals.SetDefaults()
	registers.Setup(globals.Channels)
	return filepath.Join(t.TempDir(), "Data.csv")
}

func readLog(t *testing.T, path string) [][]string {
	file, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer file.Close()
	rows, err := csv.NewReader(file).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	return rows
}

func Test_ForceLogHeader(t *testing.T) {
	path := setUpTest(t)

	forces, err := newForceLog(path, globals.Channels)
	if err != nil {
		t.Fatal(err)
	}
	forces.close()

	rows := readLog(t, path)
	if len(rows) != 2 {
		t.Fatalf("Expected 2 header rows but got %v", len(rows))
	}
	top := []string{"Time", "Channel 1", "", "Channel 2", ""}
	sub := []string{"", "Sensor 1", "Sensor 2", "Sensor 1", "Sensor 2"}
	for i, expected := range top {
		if rows[0][i] != expected {
			t.Fatalf("Expected %q in header column %v but got %q", expected, i, rows[0][i])
		}
	}
	for i, expected := range sub {
		if rows[1][i] != expected {
			t.Fatalf("Expected %q in sub header column %v but got %q", expected, i, rows[1][i])
		}
	}
}

func Test_ForceLogAppend(t *testing.T) {
	path := setUpTest(t)

	forces, err := newForceLog(path, globals.Channels)
	if err != nil {
		t.Fatal(err)
	}
	if err := forces.appendRow(time.Now(), []float64{1.5, 0, -2.25, 3}); err != nil {
		t.Fatal(err)
	}
	forces.close()

	rows := readLog(t, path)
	if len(rows) != 3 {
		t.Fatalf("Expected 3 rows but got %v", len(rows))
	}
	expected := []string{"1.5", "0", "-2.25", "3"}
	for i, value := range expected {
		if rows[2][i+1] != value {
			t.Fatalf("Expected %v in column %v but got %v", value, i+1, rows[2][i+1])
		}
	}
}

// a failing append must escalate to the shutdown trigger, logging
// cannot silently continue
func Test_AppendFailureTriggersShutdown(t *testing.T) {
	path := setUpTest(t)

	forces, err := newForceLog(path, globals.Channels)
	if err != nil {
		t.Fatal(err)
	}
	// poison the log so that the next flush fails
	_ = forces.file.Close()

	select {
	case <-globals.ShutdownTrigger:
	default:
	}

	rst := make(chan interface{})
	go run(forces, rst)

	select {
	case cause := <-globals.ShutdownTrigger:
		if !strings.Contains(cause, globals.ErrLogWrite.Error()) {
			t.Fatalf("Expected %v in the cause but got %v",
				globals.ErrLogWrite.Error(), cause)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("Append failure did not trigger a shutdown")
	}

	// the sampler must still honour the drain handshake
	rst <- nil
	select {
	case <-rst:
	case <-time.After(2 * time.Second):
		t.Fatalf("Sampler did not acknowledge the shutdown")
	}
}

func Test_SamplingCadence(t *testing.T) {
	path := setUpTest(t)
	globals.CSVPath = path
	globals.SamplingFrequency = 50 // 20ms period

	registers.Set(dataformats.SlotKey{Channel: 1, Sensor: 0}, 11.5)

	rst := make(chan interface{})
	go sampler(rst)
	time.Sleep(500 * time.Millisecond)
	rst <- nil
	select {
	case <-rst:
	case <-time.After(2 * time.Second):
		t.Fatalf("Sampler did not acknowledge the shutdown")
	}

	rows := readLog(t, path)
	samples := len(rows) - 2
	// 500ms at 50Hz, with generous scheduling tolerance
	if samples < 15 || samples > 30 {
		t.Fatalf("Expected around 25 sampled rows but got %v", samples)
	}
	for _, row := range rows[2:] {
		if row[1] != "11.5" {
			t.Fatalf("Expected 11.5 in every sampled row but got %v", row[1])
		}
	}
}
