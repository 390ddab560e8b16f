package data

import (
	"context"
	"database/sql"
	"sync/atomic"

	"golang.org/x/sync/singleflight"

	errs "github.com/meinblog/blog-api/internal/errors"
)

// DialFunc establishes the backing-store connection handle. It is expected to
// verify the connection (ping) before returning.
type DialFunc func(ctx context.Context) (*sql.DB, error)

// ConnCache lazily establishes and memoizes the single process-wide database
// handle. All repositories acquire the handle through it; none may open their
// own connection.
//
// At most one establishment attempt is in flight at a time: concurrent
// callers on a cold cache share the one attempt and observe its outcome,
// success or failure alike. A failed attempt is discarded without touching
// the cache state, so the next Acquire starts fresh; nothing retries
// automatically. Once an attempt succeeds the handle is stored and every
// later call returns it from the fast path.
type ConnCache struct {
	dial   DialFunc
	handle atomic.Pointer[sql.DB]
	group  singleflight.Group
}

// NewConnCache creates a ConnCache around the given dialer. Dialing does not
// happen until the first Acquire.
func NewConnCache(dial DialFunc) *ConnCache {
	return &ConnCache{dial: dial}
}

// Acquire returns the shared handle, establishing it on first use. It is safe
// to call concurrently and repeatedly.
//
// Cancelling the caller's context abandons the wait but never the shared
// attempt: the dial runs on a detached context so the remaining waiters still
// receive its outcome.
func (c *ConnCache) Acquire(ctx context.Context) (*sql.DB, error) {
	if db := c.handle.Load(); db != nil {
		return db, nil
	}

	ch := c.group.DoChan("dial", func() (any, error) {
		// Re-check under the group: a racing caller may have just stored it.
		if db := c.handle.Load(); db != nil {
			return db, nil
		}
		db, err := c.dial(context.WithoutCancel(ctx))
		if err != nil {
			return nil, err
		}
		c.handle.Store(db)
		return db, nil
	})

	select {
	case <-ctx.Done():
		return nil, errs.Wrap(ctx.Err(), errs.ErrCodeCanceled, "acquire connection")
	case res := <-ch:
		if res.Err != nil {
			return nil, errs.Wrap(res.Err, errs.ErrCodeUnavailable, "backing store unreachable")
		}
		db, ok := res.Val.(*sql.DB)
		if !ok {
			return nil, errs.Internal("unexpected connection handle type")
		}
		return db, nil
	}
}

// Close releases the cached handle if one was established. Intended for
// process shutdown; Acquire after Close would re-dial.
func (c *ConnCache) Close() error {
	db := c.handle.Swap(nil)
	if db == nil {
		return nil
	}
	return db.Close()
}
