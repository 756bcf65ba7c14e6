package manager

// Select implements Manager.
func (m *entityManager) Select(pk any) {
	m.mu.Lock()
	defer m.mu.Unlock()

	idx := m.items.indexOf(m.cfg.PKField, pk)
	if idx < 0 {
		m.log.Debug().Str("handler", m.cfg.Handler).Any("pk", pk).Msg("select of unknown item ignored")
		return
	}

	it := m.items.at(idx)
	if it.Selected {
		return
	}
	it.Selected = true
	m.selected.append(it)
}

// Unselect implements Manager.
func (m *entityManager) Unselect(pk any) {
	m.mu.Lock()
	defer m.mu.Unlock()

	idx := m.items.indexOf(m.cfg.PKField, pk)
	if idx < 0 {
		return
	}

	it := m.items.at(idx)
	if !it.Selected {
		return
	}
	it.Selected = false
	if selIdx := m.selected.indexOfItem(it); selIdx >= 0 {
		m.selected.removeAt(selIdx)
	}
}

// IsSelected implements Manager.
func (m *entityManager) IsSelected(pk any) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	idx := m.items.indexOf(m.cfg.PKField, pk)
	return idx >= 0 && m.items.at(idx).Selected
}
