package unitgo

import (
	"context"
	"fmt"
	"time"

	"github.com/hupe1980/unitgo/catalog"
)

// Save writes every user-defined unit to the configured store under name.
// Builtin units are not included; they are present in every Registry.
func (r *Registry) Save(ctx context.Context, name string) error {
	start := time.Now()

	size, records, err := r.save(ctx, name)

	r.metrics.RecordSnapshot(size, time.Since(start), err)
	r.logger.LogSave(ctx, name, records, size, err)
	return err
}

func (r *Registry) save(ctx context.Context, name string) (size, records int, err error) {
	if r.opts.store == nil {
		return 0, 0, ErrNoStore
	}

	r.mu.RLock()
	entries := r.tab.entries(func(e Entry) bool { return !e.Builtin })
	r.mu.RUnlock()

	recs := make([]catalog.Record, 0, len(entries))
	for _, e := range entries {
		recs = append(recs, catalog.NewRecord(e.Name, e.Unit))
	}

	data, err := catalog.EncodeSnapshot(recs, r.opts.codec, r.opts.compression)
	if err != nil {
		return 0, 0, err
	}
	if err := r.opts.store.Put(ctx, name, data); err != nil {
		return 0, 0, fmt.Errorf("save snapshot %q: %w", name, err)
	}
	return len(data), len(recs), nil
}

// Load reads the snapshot name from the configured store and defines its
// units. Units that already exist with identical definitions are skipped;
// conflicting ones abort the load without changing the Registry.
// It returns the number of new units.
func (r *Registry) Load(ctx context.Context, name string) (int, error) {
	start := time.Now()

	size, defined, err := r.load(ctx, name)

	r.metrics.RecordSnapshot(size, time.Since(start), err)
	r.logger.LogLoad(ctx, name, defined, err)
	return defined, err
}

func (r *Registry) load(ctx context.Context, name string) (size, defined int, err error) {
	if r.opts.store == nil {
		return 0, 0, ErrNoStore
	}

	data, err := r.opts.store.Get(ctx, name)
	if err != nil {
		return 0, 0, fmt.Errorf("load snapshot %q: %w", name, translateError(err, "", ""))
	}

	records, err := catalog.DecodeSnapshot(data)
	if err != nil {
		return 0, 0, fmt.Errorf("load snapshot %q: %w", name, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	next := r.tab.clone()
	for _, rec := range records {
		added, err := next.define(rec.Name, rec.Unit(), false)
		if err != nil {
			return 0, 0, fmt.Errorf("load snapshot %q: %w", name, err)
		}
		if added {
			defined++
		}
	}

	r.tab = next
	return len(data), defined, nil
}

// Snapshots lists the snapshot names in the configured store.
func (r *Registry) Snapshots(ctx context.Context, prefix string) ([]string, error) {
	if r.opts.store == nil {
		return nil, ErrNoStore
	}
	return r.opts.store.List(ctx, prefix)
}
