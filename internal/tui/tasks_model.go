// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-vault-tasks/internal/service"
	"github.com/MKhiriev/go-vault-tasks/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

const hotKeysHelp = "↑/↓ move  space toggle  s send  r reload  c copy id  v about  q quit"

// tasksModel lists the user's tasks. Toggled statuses are staged locally
// and sent to the server in one request with s.
type tasksModel struct {
	ctx       context.Context
	service   service.ClientVaultTaskService
	buildInfo models.AppBuildInfo

	tasks []models.VaultTask
	idx   int

	// staged maps a task id to the status it will be sent with.
	staged map[string]models.TaskStatus

	loading  bool
	sending  bool
	showInfo bool
	spinner  spinner.Model

	serverVersion string
	status        string
	errMsg        string

	copyToClipboard func(string) error
}

func newTasksModel(ctx context.Context, svc service.ClientVaultTaskService, buildInfo models.AppBuildInfo) tasksModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return tasksModel{
		ctx:             ctx,
		service:         svc,
		buildInfo:       buildInfo,
		staged:          make(map[string]models.TaskStatus),
		loading:         true,
		spinner:         s,
		copyToClipboard: clipboard.WriteAll,
	}
}

func (m tasksModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.cmdLoad(), m.cmdVersion())
}

func (m tasksModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tasksLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.tasks = msg.tasks
		m.staged = make(map[string]models.TaskStatus)
		m.idx = min(m.idx, len(m.tasks)-1)
		m.idx = max(m.idx, 0)
		return m, nil

	case sentMsg:
		m.sending = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		if msg.changed {
			m.status = "Changes saved"
		} else {
			m.status = "Nothing changed"
		}
		m.loading = true
		return m, m.cmdLoad()

	case versionMsg:
		if msg.err == nil {
			m.serverVersion = msg.version
		}
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("Copy failed: %v", msg.err)
			return m, nil
		}
		m.status = "Task id copied"
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.updateKeys(msg)
	}

	return m, nil
}

func (m tasksModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.quit) {
		return m, tea.Quit
	}

	if m.showInfo {
		if key.Matches(msg, keys.esc) || key.Matches(msg, keys.info) {
			m.showInfo = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.info):
		m.showInfo = true
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.tasks)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.toggle):
		m.toggleCurrent()
	case key.Matches(msg, keys.reload):
		if m.loading || m.sending {
			return m, nil
		}
		m.loading = true
		m.status = ""
		return m, m.cmdLoad()
	case key.Matches(msg, keys.send):
		if m.sending || len(m.staged) == 0 {
			return m, nil
		}
		m.sending = true
		m.status = ""
		return m, m.cmdSend(m.changes())
	case key.Matches(msg, keys.copy):
		if task, ok := m.current(); ok {
			return m, m.cmdCopy(task.ID)
		}
	}

	return m, nil
}

func (m tasksModel) current() (models.VaultTask, bool) {
	if m.idx < 0 || m.idx >= len(m.tasks) {
		return models.VaultTask{}, false
	}
	return m.tasks[m.idx], true
}

// toggleCurrent stages the opposite status for the task under the cursor.
// Toggling back to the stored status unstages it.
func (m *tasksModel) toggleCurrent() {
	task, ok := m.current()
	if !ok {
		return
	}

	next := models.Completed
	if m.effectiveStatus(task) == models.Completed {
		next = models.Pending
	}

	if next == task.Status {
		delete(m.staged, task.ID)
		return
	}
	m.staged[task.ID] = next
}

func (m tasksModel) effectiveStatus(task models.VaultTask) models.TaskStatus {
	if status, ok := m.staged[task.ID]; ok {
		return status
	}
	return task.Status
}

// changes builds the request in list order so it is deterministic.
func (m tasksModel) changes() []models.VaultTaskChange {
	changes := make([]models.VaultTaskChange, 0, len(m.staged))
	for _, task := range m.tasks {
		if status, ok := m.staged[task.ID]; ok {
			changes = append(changes, models.VaultTaskChange{ID: task.ID, Status: status, Version: task.Version})
		}
	}
	return changes
}

func (m tasksModel) cmdLoad() tea.Cmd {
	return func() tea.Msg {
		tasks, err := m.service.List(m.ctx, models.TaskFilter{})
		return tasksLoadedMsg{tasks: tasks, err: err}
	}
}

func (m tasksModel) cmdSend(changes []models.VaultTaskChange) tea.Cmd {
	return func() tea.Msg {
		changed, err := m.service.Send(m.ctx, changes)
		return sentMsg{changed: changed, err: err}
	}
}

func (m tasksModel) cmdVersion() tea.Cmd {
	return func() tea.Msg {
		version, err := m.service.ServerVersion(m.ctx)
		return versionMsg{version: version, err: err}
	}
}

func (m tasksModel) cmdCopy(text string) tea.Cmd {
	return func() tea.Msg {
		if err := m.copyToClipboard(text); err != nil {
			return copiedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func (m tasksModel) View() string {
	if m.showInfo {
		return renderBuildInfoWindow(m.buildInfo, m.serverVersion)
	}

	title := "VAULT TASKS of " + m.service.UserID()
	if m.loading || m.sending {
		title += "  " + m.spinner.View()
	}

	var b strings.Builder
	switch {
	case m.loading && len(m.tasks) == 0:
		b.WriteString("Loading...\n")
	case len(m.tasks) == 0:
		b.WriteString("No tasks\n")
	default:
		for i, task := range m.tasks {
			_, staged := m.staged[task.ID]
			done := m.effectiveStatus(task) == models.Completed
			b.WriteString(taskLine(i == m.idx, done, staged, taskTitle(task.Type), task.ID))
			b.WriteString("\n")
		}
	}

	if n := len(m.staged); n > 0 {
		fmt.Fprintf(&b, "\n%d unsent change(s)\n", n)
	}
	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render("Error: "+m.errMsg) + "\n")
	}

	return renderPage(title, b.String(), hotKeysHelp)
}

func taskTitle(t models.TaskType) string {
	switch t {
	case models.UpdateAtRiskCredential:
		return "Update at-risk credential"
	case models.EnableTwoFactor:
		return "Enable two-factor login"
	case models.ReviewSharedItem:
		return "Review shared item"
	default:
		return string(t)
	}
}
