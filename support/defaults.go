package support

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var Debug int

// set-ups all support variables according to the configuration file .env

func SupportSetUp(envf string) {
	if envf == "" {
		if _, err := os.Stat(".env"); err == nil {
			if e := godotenv.Load(); e != nil {
				panic("Fatal error:" + e.Error())
			}
		}
	} else {
		if e := godotenv.Load(envf); e != nil {
			panic("Fatal error:" + e.Error())
		}
	}

	if Debug == 0 {
		setUpLog()
	}
	log.Println("Starting server ...")
}

func SupportTerminate() {
	closeLog()
}
