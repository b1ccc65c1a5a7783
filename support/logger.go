package support

import (
	"log"
	"os"
	"path/filepath"
	"sync"
)

// set-ups the official log file

var logf *os.File
var e error
var once sync.Once

const logfilename string = "fbg.log"

func setUpLog() {
	once.Do(func() {
		_ = os.MkdirAll("log", os.ModePerm)
		if logf, e = os.OpenFile(filepath.Join("log", logfilename),
			os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644); e != nil {
			log.Fatal(e)
		}
		log.SetOutput(logf)
	})
}

func closeLog() {
	if logf != nil {
		_ = logf.Close()
	}
}
