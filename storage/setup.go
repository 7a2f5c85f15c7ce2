// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"fmt"
	"sync"
	"time"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/tokend/fault"
	"github.com/bitmark-inc/tokend/util"
)

// for database version
var versionKey = []byte{versionPrefix, 'V', 'E', 'R', 'S', 'I', 'O', 'N'}

const currentDBVersion = 0x100

// pool access modes
const (
	ReadOnly  = true
	ReadWrite = false
)

// Store - an open database
type Store struct {
	sync.RWMutex

	log      *logger.L
	db       *leveldb.DB
	readOnly bool

	// region ++ owner for every materialised owner region
	regions map[string]struct{}

	// writes are flushed to stable storage before returning
	writeOptions *ldb_opt.WriteOptions
}

// Open - open up the database
//
// creates an empty database if none exists (unless read only) and
// loads the registry of materialised owner regions
func Open(database string, readOnly bool) (*Store, error) {
	log := logger.New("storage")
	log.Infof("open: %q  read only: %v", database, readOnly)

	opt := &ldb_opt.Options{
		ErrorIfExist:   false,
		ErrorIfMissing: readOnly,
		ReadOnly:       readOnly,
	}

	db, err := leveldb.OpenFile(database, opt)
	if nil != err {
		log.Errorf("open: %q  error: %s", database, err)
		return nil, err
	}

	version, err := getVersion(db)
	if nil != err {
		db.Close()
		return nil, err
	}

	// ensure no database downgrade
	if version > currentDBVersion {
		db.Close()
		log.Criticalf("database version: %d > current version: %d", version, currentDBVersion)
		return nil, fault.IncompatibleVersion
	}

	if 0 == version && !readOnly {
		err = putVersion(db, currentDBVersion)
		if nil != err {
			db.Close()
			return nil, err
		}
	}

	s := &Store{
		log:          log,
		db:           db,
		readOnly:     readOnly,
		regions:      make(map[string]struct{}),
		writeOptions: &ldb_opt.WriteOptions{Sync: true},
	}

	err = s.loadRegistry()
	if nil != err {
		db.Close()
		return nil, err
	}

	log.Infof("version: %d  owner regions: %d", version, len(s.regions))
	return s, nil
}

// Close - close the database
func (s *Store) Close() {
	s.Lock()
	defer s.Unlock()

	if nil != s.db {
		s.db.Close()
		s.db = nil
		s.log.Info("closed")
		s.log.Flush()
	}
}

// scan all registry records into memory
func (s *Store) loadRegistry() error {
	iter := s.db.NewIterator(ldb_util.BytesPrefix([]byte{registryPrefix}), nil)
	for iter.Next() {
		key := iter.Key()
		s.regions[string(key[1:])] = struct{}{}
	}
	iter.Release()
	return iter.Error()
}

// return:
//
//	version number (zero if none)
func getVersion(db *leveldb.DB) (int, error) {
	versionValue, err := db.Get(versionKey, nil)
	if leveldb.ErrNotFound == err {
		return 0, nil
	} else if nil != err {
		return 0, err
	}

	if 4 != len(versionValue) {
		return 0, fmt.Errorf("incompatible database version length: expected: %d  actual: %d", 4, len(versionValue))
	}

	return int(binary.BigEndian.Uint32(versionValue)), nil
}

func putVersion(db *leveldb.DB, version int) error {
	currentVersion := make([]byte, 4)
	binary.BigEndian.PutUint32(currentVersion, uint32(version))

	return db.Put(versionKey, currentVersion, &ldb_opt.WriteOptions{Sync: true})
}

// regionKey - region ++ Varint64(length) ++ owner
func regionKey(region byte, owner []byte) []byte {
	key := make([]byte, 1, 1+util.Varint64MaximumBytes+len(owner))
	key[0] = region
	key = append(key, util.ToVarint64(uint64(len(owner)))...)
	return append(key, owner...)
}

// dataKey - region ++ owner ++ key
func dataKey(region byte, owner []byte, key []byte) []byte {
	return append(regionKey(region, owner), key...)
}

// registryKey - 0x00 ++ region ++ owner
func registryKey(region byte, owner []byte) []byte {
	return append([]byte{registryPrefix}, regionKey(region, owner)...)
}

// registryValue - time the region was materialised
func registryValue() []byte {
	return util.ToVarint64(uint64(time.Now().UnixNano()))
}

// check if an owner has ever written to a region
//
// caller must hold the lock
func (s *Store) materialised(region byte, owner []byte) bool {
	_, ok := s.regions[string(regionKey(region, owner))]
	return ok
}

// write a batch to the database, registering any newly materialised
// regions only after the write succeeds
func (s *Store) write(batch *leveldb.Batch, regions []string) {
	s.Lock()
	defer s.Unlock()

	if nil == s.db {
		logger.Panic("storage write: nil database")
	}
	if s.readOnly {
		logger.Panic("storage write: read only database")
	}

	err := s.db.Write(batch, s.writeOptions)
	logger.PanicIfError("storage write", err)

	for _, r := range regions {
		s.regions[r] = struct{}{}
	}
}

// fetch a single value, nil if absent
func (s *Store) get(region byte, owner []byte, key []byte) []byte {
	s.RLock()
	defer s.RUnlock()

	if nil == s.db || !s.materialised(region, owner) {
		return nil
	}

	value, err := s.db.Get(dataKey(region, owner, key), nil)
	if leveldb.ErrNotFound == err {
		return nil
	}
	logger.PanicIfError("storage get", err)
	return value
}

// validRegion - reject the reserved prefixes
func validRegion(region byte) bool {
	return registryPrefix != region && versionPrefix != region
}
