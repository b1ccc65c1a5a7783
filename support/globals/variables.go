package globals

// hardcoded parameters

const (
	VERSION = "1.0.0"
)

// logFiles
var SensorManagerLog, LogManagerLog, ApiManagerLog, ExportManagerLog, StateCacheLog int

// Parameters configurable via ini files or flags
//noinspection GoExportedOwnDeclaration
var DebugActive, ConsoleActive, ExportEnabled, ExportAsync bool
var SettleTime, ShutdownTime, ServerTimeout, ChannellingLength, SamplingFrequency int
var TCPport, APIport, CSVPath, DiskCachePath, ExportCommand, ExportArgument string

// ChannelMapping binds one physical channel to the two sensor slots
// feeding its pair of log columns.
type ChannelMapping struct {
	Id      byte
	Sensors [2]byte
}

// Channels lists the configured channels in log column order.
var Channels []ChannelMapping
