package apiManager

// API answer formats

type JsonChannel struct {
	Id      int   `json:"id"`
	Sensors []int `json:"sensors"`
}

type JsonClient struct {
	Address   string `json:"address"`
	Since     int64  `json:"since"`
	Received  int64  `json:"received"`
	Discarded int64  `json:"discarded"`
}

type JsonInfo struct {
	Version           string        `json:"version"`
	State             string        `json:"state"`
	TcpPort           string        `json:"tcpPort"`
	SamplingFrequency int           `json:"samplingFrequency"`
	LogPath           string        `json:"logPath"`
	Channels          []JsonChannel `json:"channels"`
	Client            JsonClient    `json:"client"`
}
