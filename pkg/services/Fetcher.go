package services

import "context"

/*
Fetcher is the subset of the go-http-kit client the services depend on.
*httpkit.Client satisfies it.
*/
type Fetcher interface {
	FetchAndDecodeJSON(ctx context.Context, url string, v any) error
	FetchBytes(ctx context.Context, url string) ([]byte, error)
}
