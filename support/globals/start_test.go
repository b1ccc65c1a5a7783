package globals

import (
	"os"
	"testing"
)

// a missing fbgserver.ini must fall back to the reference
// configuration instead of aborting
func Test_StartWithoutConfiguration(t *testing.T) {
	pwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	defer func() {
		_ = os.Chdir(pwd)
	}()

	Start()

	if TCPport != "4578" || SamplingFrequency != 10 {
		t.Fatalf("Reference configuration not applied: port %v, frequency %v",
			TCPport, SamplingFrequency)
	}
	if len(Channels) != 2 || Channels[0].Id != 1 || Channels[1].Id != 2 {
		t.Fatalf("Wrong reference channel configuration %+v", Channels)
	}
}
