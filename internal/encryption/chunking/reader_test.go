package chunking

import (
	"bytes"
	"crypto/rand"
	"io"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func generateData(size int) []byte {
	data := make([]byte, size)
	rand.Read(data)
	return data
}

func TestChunkReader(t *testing.T) {
	tests := []struct {
		name      string
		input     []byte
		chunkSize int
		wantErr   bool
	}{
		{
			name:      "Default chunk size",
			input:     bytes.Repeat([]byte{1}, DefaultChunkSize),
			chunkSize: DefaultChunkSize,
		},
		{
			name:      "Minimum chunk size",
			input:     bytes.Repeat([]byte{1}, MinChunkSize),
			chunkSize: MinChunkSize,
		},
		{
			name:      "Maximum chunk size",
			input:     bytes.Repeat([]byte{1}, MaxChunkSize),
			chunkSize: MaxChunkSize,
		},
		{
			name:      "Below minimum chunk size",
			input:     bytes.Repeat([]byte{1}, 1024),
			chunkSize: MinChunkSize - 1,
			wantErr:   true,
		},
		{
			name:      "Above maximum chunk size",
			input:     bytes.Repeat([]byte{1}, 1024),
			chunkSize: MaxChunkSize + 16,
			wantErr:   true,
		},
		{
			name:      "Not block aligned",
			input:     bytes.Repeat([]byte{1}, 1024),
			chunkSize: 1000,
			wantErr:   true,
		},
		{
			name:      "Sub-record shorter than a chunk",
			input:     []byte("AB123456781234"),
			chunkSize: DefaultChunkSize,
		},
		{
			name:      "Several chunks",
			input:     generateData(4*DefaultChunkSize + 3),
			chunkSize: DefaultChunkSize,
		},
		{
			name:      "Empty input",
			input:     []byte{},
			chunkSize: DefaultChunkSize,
		},
		{
			name:      "Invalid chunk size",
			input:     generateData(1024),
			chunkSize: 0,
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader, err := NewChunkReader(bytes.NewReader(tt.input), tt.chunkSize)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)

			totalRead := 0
			for {
				chunk := make([]byte, tt.chunkSize*2)
				n, err := reader.Read(chunk)
				if err == io.EOF {
					break
				}
				require.NoError(t, err)
				assert.LessOrEqual(t, n, tt.chunkSize)
				totalRead += n
			}

			assert.Equal(t, len(tt.input), totalRead)
		})
	}
}

func TestChunkReader_ReadChunk(t *testing.T) {
	input := generateData(2*DefaultChunkSize + 100)
	// OneByteReader forces ReadChunk to assemble chunks from short reads.
	reader, err := NewChunkReader(iotest.OneByteReader(bytes.NewReader(input)), DefaultChunkSize)
	require.NoError(t, err)

	var sizes []int
	var got []byte
	buf := make([]byte, DefaultChunkSize)
	for {
		n, err := reader.ReadChunk(buf)
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		sizes = append(sizes, n)
		got = append(got, buf[:n]...)
	}

	assert.Equal(t, []int{DefaultChunkSize, DefaultChunkSize, 100}, sizes)
	assert.Equal(t, input, got)
	assert.Equal(t, 3, reader.Chunks())
}

func TestChunkReader_ReadAtEnd(t *testing.T) {
	input := generateData(5 * 1024)
	chunkSize := 2 * 1024
	reader, err := NewChunkReader(bytes.NewReader(input), chunkSize)
	require.NoError(t, err)

	chunk := make([]byte, chunkSize)
	for i := 0; i < 2; i++ {
		n, err := reader.ReadChunk(chunk)
		require.NoError(t, err)
		assert.Equal(t, chunkSize, n)
	}

	n, err := reader.ReadChunk(chunk)
	require.NoError(t, err)
	assert.Equal(t, 1024, n)

	n, err = reader.ReadChunk(chunk)
	assert.Equal(t, io.EOF, err)
	assert.Zero(t, n)
}

func TestChunkReader_SetOperations(t *testing.T) {
	originalData := bytes.Repeat([]byte{1}, 4*1024)
	newData := bytes.Repeat([]byte{2}, 2*1024)

	reader, err := NewChunkReader(bytes.NewReader(originalData), 1024)
	require.NoError(t, err)

	chunk := make([]byte, 1024)
	n, err := reader.Read(chunk)
	require.NoError(t, err)
	assert.Equal(t, 1024, n)

	reader.SetReader(bytes.NewReader(newData))
	assert.Zero(t, reader.Chunks())

	require.NoError(t, reader.SetChunkSize(512))
	assert.Equal(t, 512, reader.ChunkSize())
	assert.Error(t, reader.SetChunkSize(500))

	n, err = reader.Read(chunk)
	require.NoError(t, err)
	assert.Equal(t, 512, n)
	assert.Equal(t, byte(2), chunk[0])
}
