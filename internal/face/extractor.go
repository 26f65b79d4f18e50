package face

import (
	"fmt"

	goface "github.com/Kagami/go-face"
	"github.com/PriyeshRaj231/online-voting-system/internal/dto"
)

// Extractor turns raw image bytes into a face embedding. Each call
// operates on its own buffer; implementations share no mutable state
// between concurrent extractions.
type Extractor interface {
	Extract(imageBytes []byte) (Embedding, error)
	Close()
}

// NewExtractor selects the embedding strategy by configuration. The
// stub stands in on hosts without the dlib models; everything around
// the extraction stage still runs as usual.
func NewExtractor(strategy, modelDir string) (Extractor, error) {
	switch strategy {
	case "dlib":
		return NewDlibExtractor(modelDir)
	case "stub":
		return StubExtractor{}, nil
	default:
		return nil, fmt.Errorf("%w: unknown face extractor %q", dto.ErrInternalFailure, strategy)
	}
}

// DlibExtractor wraps the dlib face recognizer. It is the only place
// that touches the model; callers see embeddings and the error
// taxonomy, never recognizer internals.
type DlibExtractor struct {
	rec *goface.Recognizer
}

func NewDlibExtractor(modelDir string) (*DlibExtractor, error) {
	rec, err := goface.NewRecognizer(modelDir)
	if err != nil {
		return nil, fmt.Errorf("%w: initializing face recognizer: %v", dto.ErrInternalFailure, err)
	}
	return &DlibExtractor{rec: rec}, nil
}

func (d *DlibExtractor) Extract(imageBytes []byte) (Embedding, error) {
	faces, err := d.rec.Recognize(imageBytes)
	if err != nil {
		return Embedding{}, fmt.Errorf("%w: %v", dto.ErrDecodeFailed, err)
	}
	if len(faces) == 0 {
		return Embedding{}, dto.ErrNoFace
	}
	// First detection wins when several faces are present. Known
	// limitation: no largest-face or most-centered heuristic.
	return Embedding(faces[0].Descriptor), nil
}

func (d *DlibExtractor) Close() {
	d.rec.Close()
}

// StubExtractor accepts every image and returns the zero embedding.
// Registrations and verifications made through it always match each
// other, so the rest of the pipeline stays exercisable without dlib.
type StubExtractor struct{}

func (StubExtractor) Extract([]byte) (Embedding, error) {
	return Embedding{}, nil
}

func (StubExtractor) Close() {}
