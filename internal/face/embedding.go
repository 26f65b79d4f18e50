package face

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/PriyeshRaj231/online-voting-system/internal/dto"
)

// EmbeddingDim is the dimensionality of a dlib face descriptor.
const EmbeddingDim = 128

// EmbeddingByteLen is the size of an encoded embedding: 128 little-endian
// float32 values.
const EmbeddingByteLen = EmbeddingDim * 4

// Embedding is a fixed-length face descriptor. Two embeddings of the
// same person are expected to lie within the verifier tolerance of each
// other under the Euclidean metric.
type Embedding [EmbeddingDim]float32

// Encode serializes the embedding so that DecodeEmbedding reproduces it
// bit for bit.
func (e Embedding) Encode() []byte {
	buf := make([]byte, EmbeddingByteLen)
	for i, v := range e {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(v))
	}
	return buf
}

// DecodeEmbedding rejects blobs of the wrong length instead of guessing
// at their layout; a malformed stored embedding is an enrollment-data
// gap, not a verification mismatch.
func DecodeEmbedding(raw []byte) (Embedding, error) {
	var e Embedding
	if len(raw) != EmbeddingByteLen {
		return e, fmt.Errorf("%w: stored embedding is %d bytes, want %d", dto.ErrNoEnrollment, len(raw), EmbeddingByteLen)
	}
	for i := range e {
		e[i] = math.Float32frombits(binary.LittleEndian.Uint32(raw[i*4:]))
	}
	return e, nil
}

// Distance returns the Euclidean distance between two embeddings.
func Distance(a, b Embedding) float64 {
	var sum float64
	for i := range a {
		d := float64(a[i]) - float64(b[i])
		sum += d * d
	}
	return math.Sqrt(sum)
}
