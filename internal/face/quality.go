package face

import (
	"fmt"

	"github.com/PriyeshRaj231/online-voting-system/internal/dto"
	"gocv.io/x/gocv"
)

// BlurThreshold is the minimum variance of the Laplacian for a capture
// to count as sharp. Below it the image lacks edge energy and the
// extractor would produce an unstable embedding.
const BlurThreshold = 100.0

// QualityChecker scores a raw capture and rejects ones too blurry to
// enroll or verify against.
type QualityChecker interface {
	Check(imageBytes []byte) (float64, error)
}

// LaplacianQualityFilter classifies captures by the variance of the
// Laplacian of the grayscale image.
type LaplacianQualityFilter struct {
	Threshold float64
}

func NewQualityFilter() LaplacianQualityFilter {
	return LaplacianQualityFilter{Threshold: BlurThreshold}
}

// Check returns the sharpness score. Undecodable bytes fail with
// ErrDecodeFailed, scores below the threshold with ErrTooBlurry. The
// filter has no side effects and is deterministic for identical input.
func (f LaplacianQualityFilter) Check(imageBytes []byte) (float64, error) {
	img, err := gocv.IMDecode(imageBytes, gocv.IMReadColor)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", dto.ErrDecodeFailed, err)
	}
	defer img.Close()
	if img.Empty() {
		return 0, dto.ErrDecodeFailed
	}

	gray := gocv.NewMat()
	defer gray.Close()
	gocv.CvtColor(img, &gray, gocv.ColorBGRToGray)

	laplacian := gocv.NewMat()
	defer laplacian.Close()
	gocv.Laplacian(gray, &laplacian, gocv.MatTypeCV64F, 1, 1, 0, gocv.BorderDefault)

	mean := gocv.NewMat()
	defer mean.Close()
	stdDev := gocv.NewMat()
	defer stdDev.Close()
	gocv.MeanStdDev(laplacian, &mean, &stdDev)

	sigma := stdDev.GetDoubleAt(0, 0)
	score := sigma * sigma

	if score < f.Threshold {
		return score, fmt.Errorf("%w: sharpness %.2f below %.2f", dto.ErrTooBlurry, score, f.Threshold)
	}
	return score, nil
}
