package manager

import (
	"encoding/json"

	"github.com/MKhiriev/region-mirror/models"
)

// onNotify is the transport notify callback. The notification is always
// enqueued first; while a bulk load is fetching pages the queue is all that
// happens, otherwise the queue is drained immediately. This keeps bulk and
// incremental mutations strictly serialized.
func (m *entityManager) onNotify(n models.Notification) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.queue = append(m.queue, n)
	if m.isLoading {
		m.log.Debug().Str("handler", m.cfg.Handler).Str("action", n.Action).Msg("buffered notification during load")
		return
	}
	m.processActionsLocked()
}

// processActionsLocked drains the queue atomically: the current backlog is
// taken as one batch and applied in arrival order. Actions for the same
// primary key apply cumulatively (create then delete nets to absence).
func (m *entityManager) processActionsLocked() {
	pending := m.queue
	m.queue = nil

	for _, n := range pending {
		m.applyActionLocked(n)
	}
}

// applyActionLocked applies a single notification via the single-delta
// reconciliation paths. Malformed payloads are logged and skipped; they
// never fail the engine.
func (m *entityManager) applyActionLocked(n models.Notification) {
	switch n.Action {
	case models.ActionCreate, models.ActionUpdate:
		var attrs map[string]any
		if err := json.Unmarshal(n.Data, &attrs); err != nil {
			m.log.Warn().Err(err).Str("action", n.Action).Msg("dropping malformed notification payload")
			return
		}
		if attrs[m.cfg.PKField] == nil {
			m.log.Warn().Str("action", n.Action).Str("pk_field", m.cfg.PKField).Msg("dropping notification without primary key")
			return
		}

		if n.Action == models.ActionCreate {
			m.mergeItemLocked(attrs)
		} else {
			m.updateItemLocked(attrs)
		}

	case models.ActionDelete:
		var pk any
		if err := json.Unmarshal(n.Data, &pk); err != nil {
			m.log.Warn().Err(err).Msg("dropping malformed delete notification")
			return
		}
		m.removeItemLocked(pk)

	default:
		m.log.Warn().Str("action", n.Action).Msg("dropping notification of unknown action")
	}
}
