package icon

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/muandane/special-stack/icond/internal/cache"
	"github.com/muandane/special-stack/icond/internal/probe"
)

// preloadParallelism bounds concurrent pipeline runs during Preload.
// Each path's extraction is independent; only the cache write takes
// the shared lock.
const preloadParallelism = 4

// Service is the cache-fronted lookup entry point: check the cache,
// else run the extraction pipeline and populate the cache.
type Service struct {
	acquirer Acquirer
	cache    *cache.IconCache
	logger   *slog.Logger
}

func NewService(acquirer Acquirer, c *cache.IconCache, logger *slog.Logger) *Service {
	return &Service{
		acquirer: acquirer,
		cache:    c,
		logger:   logger,
	}
}

// Lookup returns the encoded icon for a path. A valid cached result is
// served as-is; otherwise the pipeline runs and its result is cached
// best-effort before returning. A cache-write failure never turns a
// successful extraction into an error.
func (s *Service) Lookup(path string, size Size) (Result, error) {
	if entry, ok := s.cache.Get(path); ok {
		return Result{
			EncodedImage: entry.EncodedImage,
			Format:       entry.Format,
			FromCache:    true,
			Fingerprint:  entry.Fingerprint,
		}, nil
	}

	result, err := s.extract(path, size)
	if err != nil {
		return Result{}, err
	}

	if err := s.cache.Set(path, result.EncodedImage, result.Format, result.Fingerprint); err != nil {
		s.logger.Warn("failed to cache icon",
			"path", path,
			"error", err,
		)
	}

	return result, nil
}

// extract runs the acquisition pipeline without touching the cache.
func (s *Service) extract(path string, size Size) (Result, error) {
	st, err := probe.Stat(path)
	if err != nil {
		return Result{}, err
	}

	acq, err := s.acquirer.Acquire(path, size)
	if err != nil {
		return Result{}, err
	}

	result := Result{
		FromCache:   false,
		Fingerprint: probe.Fingerprint(path, st),
	}

	if acq.Image != nil {
		encoded, err := EncodeDataURI(acq.Image)
		if err != nil {
			return Result{}, err
		}
		result.EncodedImage = encoded
		result.Format = FormatPNG
	} else {
		result.EncodedImage = encodeGlyph(acq.Glyph)
		result.Format = FormatPlaceholder
	}

	return result, nil
}

// BatchItem pairs a requested path with its outcome.
type BatchItem struct {
	Path   string  `json:"path"`
	Result *Result `json:"result,omitempty"`
	Error  string  `json:"error,omitempty"`
}

// Batch looks up icons for many paths sequentially. A failure on one
// path is recorded on its item and does not abort the rest.
func (s *Service) Batch(paths []string, size Size) []BatchItem {
	items := make([]BatchItem, len(paths))
	for i, path := range paths {
		items[i] = BatchItem{Path: path}
		result, err := s.Lookup(path, size)
		if err != nil {
			items[i].Error = err.Error()
			continue
		}
		items[i].Result = &result
	}
	return items
}

// Preload warms the cache for paths that are not already validly
// cached. Pipeline runs are parallelized per path with bounded
// concurrency; failures are logged and skipped, never fatal.
func (s *Service) Preload(ctx context.Context, paths []string) {
	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(preloadParallelism)

	for _, path := range paths {
		path := path
		g.Go(func() error {
			if _, ok := s.cache.Get(path); ok {
				return nil
			}
			if _, err := s.Lookup(path, SizeLarge); err != nil {
				s.logger.Warn("preload failed for path",
					"path", path,
					"error", err,
				)
			}
			return nil
		})
	}

	_ = g.Wait()
}
