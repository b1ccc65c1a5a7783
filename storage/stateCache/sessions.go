package stateCache

import (
	"encoding/json"
	"strconv"

	"github.com/nanisy08/FAZT-I4-Interrogator/dataformats"
	"github.com/nanisy08/FAZT-I4-Interrogator/support/globals"
	"github.com/pkg/errors"
	bolt "go.etcd.io/bbolt"
)

// SaveSession persists the record of a completed run, keyed by its
// start timestamp, and keeps it as the last known snapshot.
func SaveSession(record dataformats.SessionRecord) error {
	encoded, err := json.Marshal(record)
	if err != nil {
		return errors.Wrap(globals.ErrCacheOperation, err.Error())
	}
	if err := main.Update(func(tx *bolt.Tx) error {
		if e := tx.Bucket([]byte(sessions)).
			Put([]byte(strconv.FormatInt(record.Started, 10)), encoded); e != nil {
			return e
		}
		return tx.Bucket([]byte(latest)).Put([]byte("last"), encoded)
	}); err != nil {
		return errors.Wrap(globals.ErrCacheOperation, err.Error())
	}
	return nil
}

// LastSession returns the final snapshot of the previous run, if any.
func LastSession() (dataformats.SessionRecord, error) {
	var record dataformats.SessionRecord
	err := main.View(func(tx *bolt.Tx) error {
		encoded := tx.Bucket([]byte(latest)).Get([]byte("last"))
		if encoded == nil {
			return globals.ErrCacheOperation
		}
		return json.Unmarshal(encoded, &record)
	})
	if err != nil {
		return dataformats.SessionRecord{}, errors.Wrap(globals.ErrCacheOperation, err.Error())
	}
	return record, nil
}
