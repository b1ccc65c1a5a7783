package globals

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/nanisy08/FAZT-I4-Interrogator/support"
	"gopkg.in/ini.v1"
)

// SetDefaults loads the reference configuration: two channels with two
// sensor slots each, sampled at 10Hz on port 4578.
func SetDefaults() {
	TCPport = "4578"
	APIport = "8080"
	SamplingFrequency = 10
	CSVPath = "Data.csv"
	DiskCachePath = "tables"
	ChannellingLength = 5
	SettleTime = 1
	ShutdownTime = 3
	ServerTimeout = 15
	Channels = []ChannelMapping{
		{Id: 1, Sensors: [2]byte{0, 1}},
		{Id: 2, Sensors: [2]byte{0, 1}},
	}
}

func Start() {

	SetDefaults()

	if !support.FileExists("fbgserver.ini") {
		fmt.Printf("*** WARNING: fbgserver.ini not found, using reference configuration ***\n")
		return
	}
	internalConfig, err := ini.InsensitiveLoad("fbgserver.ini")
	if err != nil {
		fmt.Printf("Fail to read fbgserver.ini file: %v\n", err)
		os.Exit(1)
	}

	TCPport = internalConfig.Section("server").Key("tcp_port").MustString("4578")
	APIport = internalConfig.Section("server").Key("api_port").MustString("8080")

	SamplingFrequency = internalConfig.Section("sampling").Key("frequency").MustInt(10)
	if SamplingFrequency <= 0 {
		fmt.Printf("*** WARNING: illegal sampling frequency %v, using 10Hz ***\n", SamplingFrequency)
		SamplingFrequency = 10
	}
	CSVPath = internalConfig.Section("sampling").Key("csv_path").MustString("Data.csv")

	ChannellingLength = internalConfig.Section("buffers").Key("channelling").MustInt(5)
	SettleTime = internalConfig.Section("buffers").Key("settle").MustInt(1)
	ShutdownTime = internalConfig.Section("buffers").Key("shutdown").MustInt(3)

	ServerTimeout = internalConfig.Section("timeouts").Key("server").MustInt(15)

	ExportEnabled = internalConfig.Section("export").Key("enabled").MustBool(false)
	ExportAsync = internalConfig.Section("export").Key("async").MustBool(false)
	ExportCommand = internalConfig.Section("export").Key("command").MustString("")
	ExportArgument = internalConfig.Section("export").Key("argument").MustString("")

	// every channel declaration reads as "id sensor1 sensor2" and its
	// position in the file fixes the log column order
	var channels []ChannelMapping
	for _, name := range internalConfig.Section("channels").KeyStrings() {
		if declarationRaw := internalConfig.Section("channels").Key(name).Value(); declarationRaw != "" {
			declaration := strings.Fields(declarationRaw)
			if len(declaration) != 3 {
				fmt.Printf("*** WARNING: skipping invalid channel declaration %v ***\n", declarationRaw)
				continue
			}
			var ids [3]int
			valid := true
			for i, el := range declaration {
				v, e := strconv.Atoi(strings.Trim(el, " "))
				if e != nil || v < 0 || v > 255 {
					valid = false
					break
				}
				ids[i] = v
			}
			if !valid {
				fmt.Printf("*** WARNING: skipping invalid channel declaration %v ***\n", declarationRaw)
				continue
			}
			channels = append(channels, ChannelMapping{
				Id:      byte(ids[0]),
				Sensors: [2]byte{byte(ids[1]), byte(ids[2])},
			})
		}
	}
	if len(channels) != 0 {
		Channels = channels
	} else {
		fmt.Printf("*** WARNING: no channel declarations found, using reference configuration ***\n")
	}
}
