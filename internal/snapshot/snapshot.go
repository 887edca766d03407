// Package snapshot persists the state of anything implementing
// types.Stater. A snapshot is a small header followed by the brotli
// compressed state:
//
//	magic    [4]byte  "SM83"
//	version  uint8
//	checksum uint64   xxhash of the uncompressed state, little-endian
//	payload  []byte   brotli stream
package snapshot

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/andybalholm/brotli"
	"github.com/cespare/xxhash"
	"github.com/thelolagemann/go-sm83/internal/types"
)

// Version is the snapshot format written by Encode.
const Version uint8 = 1

// quality matches the compression level used elsewhere for frames,
// snapshots are small enough that a higher level buys nothing.
const quality = 7

var magic = [4]byte{'S', 'M', '8', '3'}

var (
	// ErrBadMagic is returned when the data is not a snapshot.
	ErrBadMagic = errors.New("snapshot: bad magic")
	// ErrVersion is returned for snapshots written by a newer format.
	ErrVersion = errors.New("snapshot: unsupported version")
	// ErrChecksum is returned when the decompressed state does not
	// match the checksum recorded in the header.
	ErrChecksum = errors.New("snapshot: checksum mismatch")
)

type header struct {
	Magic    [4]byte
	Version  uint8
	Checksum uint64
}

// Encode saves s and writes it to w as a snapshot.
func Encode(w io.Writer, s types.Stater) error {
	st := types.NewState()
	s.Save(st)
	raw := st.Bytes()

	h := header{Magic: magic, Version: Version, Checksum: xxhash.Sum64(raw)}
	if err := binary.Write(w, binary.LittleEndian, h); err != nil {
		return fmt.Errorf("snapshot: writing header: %w", err)
	}

	bw := brotli.NewWriterLevel(w, quality)
	if _, err := bw.Write(raw); err != nil {
		return fmt.Errorf("snapshot: compressing state: %w", err)
	}
	if err := bw.Close(); err != nil {
		return fmt.Errorf("snapshot: compressing state: %w", err)
	}
	return nil
}

// Decode reads a snapshot from r and loads it into s. s is only
// touched once the snapshot has been verified.
func Decode(r io.Reader, s types.Stater) error {
	var h header
	if err := binary.Read(r, binary.LittleEndian, &h); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return ErrBadMagic
		}
		return fmt.Errorf("snapshot: reading header: %w", err)
	}
	if h.Magic != magic {
		return ErrBadMagic
	}
	if h.Version > Version {
		return fmt.Errorf("%w: %d", ErrVersion, h.Version)
	}

	raw, err := io.ReadAll(brotli.NewReader(r))
	if err != nil {
		return fmt.Errorf("snapshot: decompressing state: %w", err)
	}
	if xxhash.Sum64(raw) != h.Checksum {
		return ErrChecksum
	}

	st := types.StateFromBytes(raw)
	s.Load(st)
	if err := st.Err(); err != nil {
		return fmt.Errorf("snapshot: loading state: %w", err)
	}
	return nil
}

// Save writes a snapshot of s to path. The snapshot is written to a
// temporary file first and renamed into place, so an existing snapshot
// is never left half written.
func Save(path string, s types.Stater) error {
	var buf bytes.Buffer
	if err := Encode(&buf, s); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// Load reads the snapshot at path into s.
func Load(path string, s types.Stater) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return Decode(f, s)
}
