package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/adampresley/catplayground/pkg/models"
	"github.com/alitto/pond/v2"
)

const (
	DefaultCatalogAPIURL      = "https://cataas.com/api"
	DefaultCatalogSampleLimit = 20
)

type CatalogServicer interface {
	Load(ctx context.Context) models.CatalogSnapshot
}

type CatalogServiceConfig struct {
	APIURL      string
	Fetcher     Fetcher
	MaxWorkers  int
	SampleLimit int
}

type CatalogService struct {
	apiURL      string
	fetcher     Fetcher
	maxWorkers  int
	sampleLimit int
}

type countResponse struct {
	Count int `json:"count"`
}

type catResponse struct {
	ID       string   `json:"id"`
	LegacyID string   `json:"_id"`
	Tags     []string `json:"tags"`
}

func NewCatalogService(config CatalogServiceConfig) CatalogService {
	if config.APIURL == "" {
		config.APIURL = DefaultCatalogAPIURL
	}

	if config.SampleLimit <= 0 {
		config.SampleLimit = DefaultCatalogSampleLimit
	}

	if config.MaxWorkers <= 0 {
		config.MaxWorkers = 3
	}

	return CatalogService{
		apiURL:      strings.TrimSuffix(config.APIURL, "/"),
		fetcher:     config.Fetcher,
		maxWorkers:  config.MaxWorkers,
		sampleLimit: config.SampleLimit,
	}
}

/*
Load fetches the tag vocabulary, total count, and sample listing
concurrently. It always returns a snapshot. A failed fetch is logged and
leaves its field at the zero value. Nothing is retried.
*/
func (s CatalogService) Load(ctx context.Context) models.CatalogSnapshot {
	var (
		mu       sync.Mutex
		snapshot models.CatalogSnapshot
	)

	failed := func(name string, err error) {
		slog.Error("error fetching catalog data", "fetch", name, "error", err)

		mu.Lock()
		snapshot.Failures = append(snapshot.Failures, name)
		mu.Unlock()
	}

	pool := pond.NewPool(s.maxWorkers, pond.WithContext(ctx))

	pool.Submit(func() {
		tags, err := s.fetchTags(ctx)
		if err != nil {
			failed("tags", err)
			return
		}

		mu.Lock()
		snapshot.Tags = tags
		mu.Unlock()
	})

	pool.Submit(func() {
		count, err := s.fetchCount(ctx)
		if err != nil {
			failed("count", err)
			return
		}

		mu.Lock()
		snapshot.TotalCount = count
		mu.Unlock()
	})

	pool.Submit(func() {
		sample, err := s.fetchSample(ctx)
		if err != nil {
			failed("sample", err)
			return
		}

		mu.Lock()
		snapshot.Sample = sample
		mu.Unlock()
	})

	_ = pool.Stop().Wait()

	slog.Info("catalog loaded",
		"tags", len(snapshot.Tags),
		"count", snapshot.TotalCount,
		"sample", len(snapshot.Sample),
		"failures", snapshot.Failures,
	)

	return snapshot
}

func (s CatalogService) fetchTags(ctx context.Context) ([]string, error) {
	var (
		err  error
		tags []string
	)

	if err = s.fetcher.FetchAndDecodeJSON(ctx, s.apiURL+"/tags", &tags); err != nil {
		return nil, fmt.Errorf("error fetching tag vocabulary: %w", err)
	}

	result := make([]string, 0, len(tags))

	for _, tag := range tags {
		if strings.TrimSpace(tag) == "" {
			continue
		}

		result = append(result, tag)
	}

	return result, nil
}

func (s CatalogService) fetchCount(ctx context.Context) (int, error) {
	var (
		err      error
		response countResponse
	)

	if err = s.fetcher.FetchAndDecodeJSON(ctx, s.apiURL+"/count", &response); err != nil {
		return 0, fmt.Errorf("error fetching catalog count: %w", err)
	}

	return max(response.Count, 0), nil
}

func (s CatalogService) fetchSample(ctx context.Context) ([]models.CatalogRecord, error) {
	var (
		err  error
		cats []catResponse
	)

	u := fmt.Sprintf("%s/cats?limit=%d", s.apiURL, s.sampleLimit)

	if err = s.fetcher.FetchAndDecodeJSON(ctx, u, &cats); err != nil {
		return nil, fmt.Errorf("error fetching catalog sample: %w", err)
	}

	result := make([]models.CatalogRecord, 0, min(len(cats), s.sampleLimit))

	for _, cat := range cats {
		if len(result) == s.sampleLimit {
			break
		}

		id := cat.ID
		if id == "" {
			id = cat.LegacyID
		}

		if id == "" {
			continue
		}

		result = append(result, models.CatalogRecord{
			ID:   id,
			Tags: cat.Tags,
		})
	}

	return result, nil
}
