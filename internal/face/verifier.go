package face

import (
	"fmt"

	"github.com/PriyeshRaj231/online-voting-system/internal/dto"
)

// DefaultTolerance is the maximum Euclidean distance at which two
// embeddings are considered the same person.
const DefaultTolerance = 0.6

// Verifier compares a stored embedding against a fresh one. It is
// stateless and performs no I/O.
type Verifier struct {
	Tolerance float64
}

func NewVerifier() Verifier {
	return Verifier{Tolerance: DefaultTolerance}
}

// Verify returns the measured distance and ErrFaceMismatch when it
// exceeds the tolerance.
func (v Verifier) Verify(stored, fresh Embedding) (float64, error) {
	distance := Distance(stored, fresh)
	if distance > v.Tolerance {
		return distance, fmt.Errorf("%w: distance %.3f exceeds tolerance %.3f", dto.ErrFaceMismatch, distance, v.Tolerance)
	}
	return distance, nil
}
