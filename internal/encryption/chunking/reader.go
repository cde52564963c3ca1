package chunking

import (
	"fmt"
	"io"
)

const (
	// Logical chunk sizes fed to the cipher. Every size is a whole number
	// of AES blocks so that only the final chunk carries padding.
	DefaultChunkSize = 1024
	MinChunkSize     = 16
	MaxChunkSize     = 64 * 1024
	chunkAlign       = 16
)

type ChunkReader struct {
	reader    io.Reader
	chunkSize int
	chunks    int
}

func NewChunkReader(reader io.Reader, chunkSize int) (*ChunkReader, error) {
	if err := ValidateChunkSize(chunkSize); err != nil {
		return nil, err
	}

	return &ChunkReader{
		reader:    reader,
		chunkSize: chunkSize,
	}, nil
}

// ValidateChunkSize reports whether size is usable as a logical chunk.
func ValidateChunkSize(size int) error {
	if size < MinChunkSize || size > MaxChunkSize {
		return fmt.Errorf("invalid chunk size: must be between %d and %d bytes", MinChunkSize, MaxChunkSize)
	}
	if size%chunkAlign != 0 {
		return fmt.Errorf("invalid chunk size: %d is not a multiple of %d", size, chunkAlign)
	}
	return nil
}

func (r *ChunkReader) Read(p []byte) (n int, err error) {
	if len(p) > r.chunkSize {
		p = p[:r.chunkSize]
	}
	n, err = r.reader.Read(p)
	if n > 0 {
		r.chunks++
	}
	return n, err
}

// ReadChunk fills p up to the chunk size, reading across short reads of
// the underlying reader. It returns io.EOF only when no byte was read.
func (r *ChunkReader) ReadChunk(p []byte) (int, error) {
	if len(p) > r.chunkSize {
		p = p[:r.chunkSize]
	}
	n, err := io.ReadFull(r.reader, p)
	if n > 0 {
		r.chunks++
	}
	if err == io.ErrUnexpectedEOF {
		err = nil
	}
	return n, err
}

// Chunks is the number of non-empty chunks read so far.
func (r *ChunkReader) Chunks() int {
	return r.chunks
}

func (r *ChunkReader) ChunkSize() int {
	return r.chunkSize
}

func (r *ChunkReader) SetReader(reader io.Reader) {
	r.reader = reader
	r.chunks = 0
}

func (r *ChunkReader) SetChunkSize(size int) error {
	if err := ValidateChunkSize(size); err != nil {
		return err
	}
	r.chunkSize = size
	return nil
}
