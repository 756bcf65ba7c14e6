package manager

import (
	"context"
	"encoding/json"
	"fmt"
)

// Load implements Manager.
func (m *entityManager) Load(ctx context.Context) (*List, error) {
	m.mu.Lock()
	if m.loaded {
		m.mu.Unlock()
		return m.Reload(ctx)
	}
	if m.isLoading {
		// Another bulk op is already fetching; a second concurrent fetch
		// would only duplicate its pages.
		m.mu.Unlock()
		m.log.Debug().Str("handler", m.cfg.Handler).Msg("bulk load already in flight")
		return m.items, nil
	}
	m.isLoading = true
	m.mu.Unlock()

	// Pages are merged as they arrive; on failure the already merged
	// pages stay, and loaded stays false so the next Load fetches again.
	err := m.fetchPages(ctx, func(page []map[string]any) {
		m.mu.Lock()
		for _, attrs := range page {
			m.mergeItemLocked(attrs)
		}
		m.mu.Unlock()
	})

	m.mu.Lock()
	defer m.mu.Unlock()
	m.isLoading = false
	// The gate is released either way, so buffered notifications apply now
	// even when a page failed.
	m.processActionsLocked()
	if err != nil {
		return nil, fmt.Errorf("load %s items: %w", m.cfg.Handler, err)
	}

	m.loaded = true
	return m.items, nil
}

// Reload implements Manager.
func (m *entityManager) Reload(ctx context.Context) (*List, error) {
	m.mu.Lock()
	if !m.loaded {
		m.mu.Unlock()
		return m.Load(ctx)
	}
	if m.isLoading {
		m.mu.Unlock()
		m.log.Debug().Str("handler", m.cfg.Handler).Msg("bulk reload already in flight")
		return m.items, nil
	}
	m.isLoading = true
	m.mu.Unlock()

	// The full snapshot is collected first and reconciled in one step, so
	// a half-fetched state is never observable.
	var snapshot []map[string]any
	err := m.fetchPages(ctx, func(page []map[string]any) {
		snapshot = append(snapshot, page...)
	})

	m.mu.Lock()
	defer m.mu.Unlock()
	m.isLoading = false
	if err != nil {
		m.processActionsLocked()
		return nil, fmt.Errorf("reload %s items: %w", m.cfg.Handler, err)
	}

	m.reconcileSnapshotLocked(snapshot)
	m.processActionsLocked()
	return m.items, nil
}

// fetchPages drives the batched list protocol: the first request carries no
// cursor, every following request starts after the previous page's last
// primary key. Any page shorter than the page size — including an empty
// terminal page when the total is an exact multiple of the page size — ends
// the loop. Pages are handed to sink strictly in sequence because each
// cursor depends on the previous page.
func (m *entityManager) fetchPages(ctx context.Context, sink func(page []map[string]any)) error {
	params := map[string]any{}

	for {
		result, err := m.transport.Call(ctx, m.cfg.Handler+".list", params)
		if err != nil {
			return err
		}

		var page []map[string]any
		if err := json.Unmarshal(result, &page); err != nil {
			return fmt.Errorf("decode %s list page: %w", m.cfg.Handler, err)
		}

		m.log.Debug().
			Str("handler", m.cfg.Handler).
			Int("page_len", len(page)).
			Msg("fetched list page")

		sink(page)

		if len(page) < m.cfg.PageSize {
			return nil
		}
		params = map[string]any{"start": page[len(page)-1][m.cfg.PKField]}
	}
}
