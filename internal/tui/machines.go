// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/region-mirror/internal/manager"
	"github.com/MKhiriev/region-mirror/models"
)

// refreshInterval is how often the screen re-reads the mirror. Notifications
// mutate the mirror outside the bubbletea loop, so the view polls.
const refreshInterval = time.Second

type machinesModel struct {
	ctx     context.Context
	manager manager.Manager
	pkField string

	// rows is the frame's snapshot of the mirror; the live containers are
	// only read through their synchronized accessors.
	rows      []models.Item
	idx       int
	loading   bool
	reloading bool
	spinner   spinner.Model
	status    string
	lastErr   error
}

func newMachinesModel(ctx context.Context, mgr manager.Manager, pkField string) machinesModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return machinesModel{
		ctx:     ctx,
		manager: mgr,
		pkField: pkField,
		spinner: s,
		loading: true,
	}
}

func (m machinesModel) current() (models.Item, bool) {
	if len(m.rows) == 0 || m.idx < 0 || m.idx >= len(m.rows) {
		return models.Item{}, false
	}
	return m.rows[m.idx], true
}

func (m machinesModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.cmdLoad(), cmdRefreshTick())
}

func (m machinesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.updateKey(msg)

	case loadedMsg:
		m.loading = false
		m.lastErr = msg.err
		m.refreshRows()
		return m, nil

	case reloadedMsg:
		m.reloading = false
		m.lastErr = msg.err
		m.refreshRows()
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.lastErr = msg.err
			return m, nil
		}
		m.status = "ключ скопирован"
		return m, cmdClearStatusLater()

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case refreshMsg:
		m.refreshRows()
		return m, cmdRefreshTick()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m machinesModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit

	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}

	case key.Matches(msg, keys.down):
		if m.idx < len(m.rows)-1 {
			m.idx++
		}

	case key.Matches(msg, keys.toggle):
		if it, ok := m.current(); ok {
			pk := it.PK(m.pkField)
			if m.manager.IsSelected(pk) {
				m.manager.Unselect(pk)
			} else {
				m.manager.Select(pk)
			}
			m.refreshRows()
		}

	case key.Matches(msg, keys.reload):
		if !m.loading && !m.reloading {
			m.reloading = true
			return m, tea.Batch(m.spinner.Tick, m.cmdReload())
		}

	case key.Matches(msg, keys.copy):
		if it, ok := m.current(); ok {
			return m, cmdCopyPK(it.PK(m.pkField))
		}
	}
	return m, nil
}

// refreshRows re-snapshots the mirror and keeps the cursor inside the list
// after it shrinks.
func (m *machinesModel) refreshRows() {
	m.rows = m.manager.Items().Snapshot()
	if m.idx >= len(m.rows) {
		m.idx = len(m.rows) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m machinesModel) cmdLoad() tea.Cmd {
	return func() tea.Msg {
		_, err := m.manager.Load(m.ctx)
		return loadedMsg{err: err}
	}
}

func (m machinesModel) cmdReload() tea.Cmd {
	return func() tea.Msg {
		_, err := m.manager.Reload(m.ctx)
		return reloadedMsg{err: err}
	}
}

func cmdCopyPK(pk any) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: clipboard.WriteAll(fmt.Sprint(pk))}
	}
}

func cmdClearStatusLater() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func cmdRefreshTick() tea.Cmd {
	return tea.Tick(refreshInterval, func(time.Time) tea.Msg {
		return refreshMsg{}
	})
}

func (m machinesModel) View() string {
	header := titleStyle.Render("region-mirror")
	if m.loading || m.reloading {
		header += "  " + m.spinner.View()
	}
	out := header + "\n\n"

	switch {
	case m.loading:
		out += "Загрузка...\n"
	case len(m.rows) == 0:
		out += "Нет машин\n"
	default:
		for i, it := range m.rows {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			mark := "[ ]"
			if it.Selected {
				mark = "[x]"
			}
			line := fmt.Sprintf("%s%s %-10v %-12v %v",
				cursor, mark, it.Attrs[m.pkField], it.Attrs["status"], it.Attrs["owner"])
			if it.Selected {
				line = selectedStyle.Render(line)
			}
			out += line + "\n"
		}
		out += "\n" + metaStyle.Render(m.statusSummary()) + "\n"
	}

	if m.status != "" {
		out += "\n" + m.status + "\n"
	}
	if m.lastErr != nil {
		out += "\n" + errorStyle.Render("Ошибка: "+m.lastErr.Error()) + "\n"
	}

	out += "\n" + helpStyle.Render("space выбор  r обновить  c копировать  q выход")
	return appStyle.Render(out)
}

// statusSummary renders the status frequency table plus the selection count,
// e.g. "new:2 ready:1 | выбрано: 1".
func (m machinesModel) statusSummary() string {
	parts := make([]string, 0, 8)
	if tbl := m.manager.Metadata("status"); tbl != nil {
		for _, e := range tbl.All() {
			parts = append(parts, fmt.Sprintf("%v:%d", e.Value, e.Count))
		}
	}
	summary := strings.Join(parts, " ")
	if n := m.manager.SelectedItems().Len(); n > 0 {
		if summary != "" {
			summary += " | "
		}
		summary += fmt.Sprintf("выбрано: %d", n)
	}
	return summary
}
