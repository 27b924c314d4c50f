// Copyright (c) 2025, The Mediaforge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asset

import (
	"context"
	"sync"

	"golang.org/x/sync/singleflight"
)

// ResolveFunc fetches and decodes the data behind one asset id.
// It is supplied by the rendering host.
type ResolveFunc func(ctx context.Context, id string) (any, error)

// Resolver deduplicates asset resolution: repeated requests for the
// same id share one in-flight fetch, and successful results are cached
// until forgotten. Failures are not cached, so a broken asset is
// retried on the next request for its id.
//
// Resolution results can arrive after the item that requested them was
// removed; callers must check that the item is still live before
// applying resolved data (look the item up by id again on arrival).
type Resolver struct {
	fetch ResolveFunc
	group singleflight.Group

	mu    sync.Mutex
	cache map[string]any
}

// NewResolver returns a resolver backed by the given fetch function.
func NewResolver(fetch ResolveFunc) *Resolver {
	return &Resolver{fetch: fetch, cache: make(map[string]any)}
}

// Resolve returns the data for the given asset id, fetching it at most
// once however many concurrent callers ask for it.
func (rs *Resolver) Resolve(ctx context.Context, id string) (any, error) {
	rs.mu.Lock()
	if v, ok := rs.cache[id]; ok {
		rs.mu.Unlock()
		return v, nil
	}
	rs.mu.Unlock()

	v, err, _ := rs.group.Do(id, func() (any, error) {
		// re-check under the flight: a caller racing with a completed
		// fetch must not fetch again
		rs.mu.Lock()
		if v, ok := rs.cache[id]; ok {
			rs.mu.Unlock()
			return v, nil
		}
		rs.mu.Unlock()
		v, err := rs.fetch(ctx, id)
		if err != nil {
			return nil, err
		}
		rs.mu.Lock()
		rs.cache[id] = v
		rs.mu.Unlock()
		return v, nil
	})
	if err != nil {
		return nil, err
	}
	return v, nil
}

// Cached returns the cached data for an id without fetching.
func (rs *Resolver) Cached(id string) (any, bool) {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	v, ok := rs.cache[id]
	return v, ok
}

// Forget drops the cached result for an id, forcing the next Resolve
// to fetch again.
func (rs *Resolver) Forget(id string) {
	rs.mu.Lock()
	delete(rs.cache, id)
	rs.mu.Unlock()
	rs.group.Forget(id)
}
