// Package store is the local key-value persistence behind the artist cache.
//
// A store holds two partitions, "artist" and "topTracks". Each one is a bucket
// of records keyed by id. A partition is only ever written as a whole: ReplaceAll
// clears it and inserts the new records in one step, so readers never see
// fields from two different fetches mixed together.
package store

import (
	"context"
	"errors"
	"fmt"
)

// ErrUnavailable wraps every I/O failure of a store. Callers treat it as a
// cache miss.
var ErrUnavailable = errors.New("local store unavailable")

// ErrUnknownPartition is returned for a partition name other than the known ones.
var ErrUnknownPartition = errors.New("unknown partition")

// Partition names a bucket within the store.
type Partition string

const (
	PartitionArtist    Partition = "artist"
	PartitionTopTracks Partition = "topTracks"
)

// Partitions lists every known partition.
var Partitions = []Partition{PartitionArtist, PartitionTopTracks}

// Valid reports whether p is a known partition.
func (p Partition) Valid() bool {
	return p == PartitionArtist || p == PartitionTopTracks
}

// Record is one stored entry. Data is an opaque payload owned by the caller.
type Record struct {
	ID   int64
	Data []byte
}

// Store is the contract shared by the store backends.
type Store interface {
	// ReadAll returns the records of p in the order they were written.
	ReadAll(ctx context.Context, p Partition) ([]Record, error)
	// ReplaceAll clears p, then inserts records. On failure p keeps its
	// previous contents.
	ReplaceAll(ctx context.Context, p Partition, records []Record) error
	Close() error
}

// unavailable wraps err so that errors.Is(err, ErrUnavailable) holds.
func unavailable(op string, p Partition, err error) error {
	if p == "" {
		return fmt.Errorf("%w: %s: %w", ErrUnavailable, op, err)
	}
	return fmt.Errorf("%w: %s %s: %w", ErrUnavailable, op, p, err)
}

func checkPartition(op string, p Partition) error {
	if !p.Valid() {
		return unavailable(op, p, ErrUnknownPartition)
	}
	return nil
}
