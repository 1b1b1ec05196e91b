package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// fakeFetcher serves canned JSON bodies or byte payloads keyed by URL.
type fakeFetcher struct {
	mu       sync.Mutex
	bodies   map[string]string
	bytes    map[string][]byte
	failures map[string]error
	calls    []string
}

func (f *fakeFetcher) record(url string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, url)
}

func (f *fakeFetcher) FetchAndDecodeJSON(ctx context.Context, url string, v any) error {
	f.record(url)

	if err, ok := f.failures[url]; ok {
		return err
	}

	body, ok := f.bodies[url]
	if !ok {
		return fmt.Errorf("unexpected url %s", url)
	}

	return json.Unmarshal([]byte(body), v)
}

func (f *fakeFetcher) FetchBytes(ctx context.Context, url string) ([]byte, error) {
	f.record(url)

	if err, ok := f.failures[url]; ok {
		return nil, err
	}

	b, ok := f.bytes[url]
	if !ok {
		return nil, fmt.Errorf("unexpected url %s", url)
	}

	return b, nil
}
