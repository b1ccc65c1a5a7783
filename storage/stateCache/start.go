package stateCache

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fpessolano/mlogger"
	"github.com/nanisy08/FAZT-I4-Interrogator/support/globals"
	bolt "go.etcd.io/bbolt"
)

var main *bolt.DB

const (
	sessions = "sessions" // one record per completed run
	latest   = "latest"   // final snapshot of the last run
)

func Start() {
	var err error
	if globals.StateCacheLog, err = mlogger.DeclareLog("fbg_stateCache", false); err != nil {
		fmt.Println("Fatal Error: Unable to set fbg_stateCache logfile.")
		os.Exit(0)
	}
	if err = mlogger.SetTextLimit(globals.StateCacheLog, 80, 20, 10); err != nil {
		fmt.Println(err)
		os.Exit(0)
	}

	if err = os.MkdirAll(globals.DiskCachePath, os.ModePerm); err != nil {
		fmt.Println(err)
		os.Exit(0)
	}

	if main, err = bolt.Open(filepath.Join(globals.DiskCachePath, "statecache.db"), 0600, nil); err != nil {
		fmt.Println(err)
		os.Exit(0)
	}

	//noinspection GoNilness
	if err := main.Update(func(tx *bolt.Tx) error {
		_, err = tx.CreateBucketIfNotExists([]byte(sessions))
		if err != nil {
			return errors.New("could not create " + sessions + " bucket: " + err.Error())
		}
		_, err = tx.CreateBucketIfNotExists([]byte(latest))
		if err != nil {
			return errors.New("could not create " + latest + " bucket: " + err.Error())
		}
		return nil
	}); err != nil {
		mlogger.Panic(globals.StateCacheLog,
			mlogger.LoggerData{Id: "stateCache.Start", Message: "Error in opening buckets: " + err.Error(),
				Data: []int{}, Aggregate: false}, true)
	}
	mlogger.Info(globals.StateCacheLog,
		mlogger.LoggerData{Id: "stateCache.Start", Message: "service started",
			Data: []int{1}, Aggregate: true})

	fmt.Println("StateCache initialised")
}

func Close() {
	_ = main.Close()
	fmt.Println("StateCache closed")
	mlogger.Info(globals.StateCacheLog,
		mlogger.LoggerData{Id: "stateCache.Start", Message: "service stopped",
			Data: []int{1}, Aggregate: true})
}
