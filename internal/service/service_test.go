package service

import (
	"bytes"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/PriyeshRaj231/online-voting-system/internal/client"
	"github.com/PriyeshRaj231/online-voting-system/internal/dto"
	"github.com/PriyeshRaj231/online-voting-system/internal/face"
	"github.com/PriyeshRaj231/online-voting-system/internal/repository"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// markerQuality classifies captures by a content prefix instead of
// pixel analysis, so service tests control the outcome directly.
type markerQuality struct{}

func (markerQuality) Check(imageBytes []byte) (float64, error) {
	if bytes.HasPrefix(imageBytes, []byte("blurry:")) {
		return 12, fmt.Errorf("%w: sharpness 12.00", dto.ErrTooBlurry)
	}
	return 240, nil
}

// markerExtractor derives the embedding from the capture's first byte.
// Identical captures yield identical embeddings; captures of different
// people differ by far more than the match tolerance.
type markerExtractor struct{}

func (markerExtractor) Extract(imageBytes []byte) (face.Embedding, error) {
	if bytes.Contains(imageBytes, []byte("noface:")) {
		return face.Embedding{}, fmt.Errorf("%w: no face detected", dto.ErrNoFace)
	}
	var e face.Embedding
	e[0] = float32(imageBytes[0])
	return e, nil
}

func (markerExtractor) Close() {}

type slowExtractor struct {
	delay time.Duration
}

func (s slowExtractor) Extract(imageBytes []byte) (face.Embedding, error) {
	time.Sleep(s.delay)
	return face.Embedding{}, nil
}

func (slowExtractor) Close() {}

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:" + filepath.Join(t.TempDir(), "test.db") + "?_busy_timeout=10000"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	return db
}

func clientsForTest() client.Clients {
	return client.NewClients(dto.Config{})
}

type testEnv struct {
	repos    repository.Repositories
	services Services
	cfg      dto.Config
}

func newTestEnv(t *testing.T, extractor face.Extractor) testEnv {
	t.Helper()

	repos := repository.NewRepositories(openTestDB(t))
	cfg := dto.Config{
		SessionSecret:     "test-secret",
		ExtractionTimeout: 2 * time.Second,
		CandidatePhotoDir: filepath.Join(t.TempDir(), "candidates"),
	}

	return testEnv{
		repos:    repos,
		services: NewServices(repos, cfg, clientsForTest(), markerQuality{}, extractor),
		cfg:      cfg,
	}
}
