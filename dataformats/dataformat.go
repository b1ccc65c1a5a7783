package dataformats

// force reading data model, one per received packet
type Reading struct {
	Channel byte    `json:"channel"`
	Fiber   byte    `json:"fiber"`
	Sensor  byte    `json:"sensor"`
	Value   float64 `json:"value"`
}

// SlotKey identifies one logical measurement slot
type SlotKey struct {
	Channel byte `json:"channel"`
	Sensor  byte `json:"sensor"`
}

// slot sample used by the API and the export service
type SlotSample struct {
	Channel byte    `json:"channel"`
	Sensor  byte    `json:"sensor"`
	Value   float64 `json:"value"`
}

// sampled row as sent to the export service
type SampledRow struct {
	Ts      int64        `json:"ts"`
	Samples []SlotSample `json:"samples"`
}

// session data model used for database storage
type SessionRecord struct {
	Started  int64     `json:"started"`
	Ended    int64     `json:"ended"`
	Cause    string    `json:"cause"`
	Columns  []SlotKey `json:"columns"`
	Snapshot []float64 `json:"snapshot"`
}
