// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package manager

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/MKhiriev/region-mirror/internal/logger"
	"github.com/MKhiriev/region-mirror/internal/transport"
	"github.com/MKhiriev/region-mirror/models"
)

const defaultPageSize = 50

// Config describes one mirrored entity kind.
type Config struct {
	// Handler is the RPC method prefix ("machine" calls machine.list,
	// machine.get, ...) and doubles as the notify channel name.
	Handler string

	// PKField names the attribute that uniquely identifies an item
	// (e.g. "system_id").
	PKField string

	// TrackedAttrs lists the attributes aggregated into metadata
	// frequency tables.
	TrackedAttrs []string

	// PageSize overrides the list page size. Defaults to 50.
	PageSize int
}

type entityManager struct {
	cfg       Config
	transport transport.Transport
	log       *logger.Logger

	mu        sync.Mutex
	items     *List
	selected  *List
	metadata  map[string]*MetadataTable
	queue     []models.Notification
	loaded    bool
	isLoading bool

	autoReload   bool
	autoReloadID int64
}

// NewManager creates the mirror engine for one entity kind and subscribes it
// to the transport's notify channel for that kind. The mirror starts empty;
// call Load to populate it.
func NewManager(tr transport.Transport, cfg Config, log *logger.Logger) (Manager, error) {
	if cfg.Handler == "" || cfg.PKField == "" {
		return nil, ErrInvalidConfig
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = defaultPageSize
	}

	m := &entityManager{
		cfg:       cfg,
		transport: tr,
		log:       log,
		metadata:  make(map[string]*MetadataTable, len(cfg.TrackedAttrs)),
	}
	// The views share the engine mutex so their read accessors are safe
	// against concurrent mutation by the notify and reload goroutines.
	m.items = newList(&m.mu)
	m.selected = newList(&m.mu)
	for _, attr := range cfg.TrackedAttrs {
		m.metadata[attr] = newMetadataTable(&m.mu)
	}

	tr.RegisterNotifier(cfg.Handler, m.onNotify)

	return m, nil
}

// Items implements Manager.
func (m *entityManager) Items() *List {
	return m.items
}

// SelectedItems implements Manager.
func (m *entityManager) SelectedItems() *List {
	return m.selected
}

// Metadata implements Manager.
func (m *entityManager) Metadata(attr string) *MetadataTable {
	return m.metadata[attr]
}

// Loaded implements Manager.
func (m *entityManager) Loaded() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loaded
}

// GetItem implements Manager.
func (m *entityManager) GetItem(ctx context.Context, pk any) (*models.Item, error) {
	result, err := m.transport.Call(ctx, m.cfg.Handler+".get", map[string]any{m.cfg.PKField: pk})
	if err != nil {
		return nil, fmt.Errorf("get %s item: %w", m.cfg.Handler, err)
	}

	attrs, err := decodeAttrs(result)
	if err != nil {
		return nil, fmt.Errorf("decode %s item: %w", m.cfg.Handler, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	return m.mergeItemLocked(attrs), nil
}

// UpdateItem implements Manager.
func (m *entityManager) UpdateItem(ctx context.Context, item *models.Item) (*models.Item, error) {
	if item.PK(m.cfg.PKField) == nil {
		return nil, ErrNoPrimaryKey
	}

	// item.Attrs carries server-owned state only; the selection marker
	// lives outside it and never crosses the wire.
	result, err := m.transport.Call(ctx, m.cfg.Handler+".update", item.Attrs)
	if err != nil {
		return nil, fmt.Errorf("update %s item: %w", m.cfg.Handler, err)
	}

	attrs, err := decodeAttrs(result)
	if err != nil {
		return nil, fmt.Errorf("decode updated %s item: %w", m.cfg.Handler, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	return m.mergeItemLocked(attrs), nil
}

// DeleteItem implements Manager.
func (m *entityManager) DeleteItem(ctx context.Context, item *models.Item) error {
	pk := item.PK(m.cfg.PKField)
	if pk == nil {
		return ErrNoPrimaryKey
	}

	if _, err := m.transport.Call(ctx, m.cfg.Handler+".delete", map[string]any{m.cfg.PKField: pk}); err != nil {
		return fmt.Errorf("delete %s item: %w", m.cfg.Handler, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.removeItemLocked(pk)
	return nil
}

// EnableAutoReload implements Manager.
func (m *entityManager) EnableAutoReload() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.autoReload {
		return
	}
	m.autoReload = true
	m.autoReloadID = m.transport.RegisterHandler(transport.EventOpen, func() {
		if _, err := m.Reload(context.Background()); err != nil {
			m.log.Warn().Err(err).Str("handler", m.cfg.Handler).Msg("auto reload failed")
		}
	})
}

// DisableAutoReload implements Manager.
func (m *entityManager) DisableAutoReload() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.autoReload {
		return
	}
	m.transport.UnregisterHandler(transport.EventOpen, m.autoReloadID)
	m.autoReload = false
	m.autoReloadID = 0
}

func decodeAttrs(raw json.RawMessage) (map[string]any, error) {
	var attrs map[string]any
	if err := json.Unmarshal(raw, &attrs); err != nil {
		return nil, err
	}
	return attrs, nil
}
