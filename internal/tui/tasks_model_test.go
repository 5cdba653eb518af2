package tui

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-vault-tasks/internal/logger"
	"github.com/MKhiriev/go-vault-tasks/internal/mock"
	"github.com/MKhiriev/go-vault-tasks/internal/service"
	"github.com/MKhiriev/go-vault-tasks/internal/store"
	"github.com/MKhiriev/go-vault-tasks/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	spaceKey = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	downKey  = tea.KeyMsg{Type: tea.KeyDown}
	escKey   = tea.KeyMsg{Type: tea.KeyEsc}
)

func sampleTasks() []models.VaultTask {
	return []models.VaultTask{
		{ID: "t1", Type: models.UpdateAtRiskCredential, Status: models.Pending, Version: 2},
		{ID: "t2", Type: models.EnableTwoFactor, Status: models.Completed, Version: 5},
	}
}

func newTestModel(t *testing.T) (tasksModel, *mock.MockClientVaultTaskService) {
	t.Helper()
	svc := mock.NewMockClientVaultTaskService(gomock.NewController(t))
	svc.EXPECT().UserID().Return("user-1").AnyTimes()

	m := newTasksModel(context.Background(), svc, models.NewAppBuildInfo("1.0.0", "2026-10-14", "abc"))
	return m, svc
}

func loaded(t *testing.T, m tasksModel, tasks []models.VaultTask) tasksModel {
	t.Helper()
	next, _ := m.Update(tasksLoadedMsg{tasks: tasks})
	return next.(tasksModel)
}

func press(t *testing.T, m tasksModel, msg tea.KeyMsg) (tasksModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(tasksModel), cmd
}

func TestTasksModel_LoadAndView(t *testing.T) {
	m, svc := newTestModel(t)
	svc.EXPECT().List(gomock.Any(), models.TaskFilter{}).Return(sampleTasks(), nil)

	msg := m.cmdLoad()()
	require.IsType(t, tasksLoadedMsg{}, msg)

	next, _ := m.Update(msg)
	m = next.(tasksModel)

	assert.False(t, m.loading)
	assert.Len(t, m.tasks, 2)

	view := m.View()
	assert.Contains(t, view, "VAULT TASKS of user-1")
	assert.Contains(t, view, "Update at-risk credential")
	assert.Contains(t, view, "Enable two-factor login")
}

func TestTasksModel_LoadError(t *testing.T) {
	m, _ := newTestModel(t)

	next, _ := m.Update(tasksLoadedMsg{err: fmt.Errorf("list: %w", service.ErrServerUnavailable)})
	m = next.(tasksModel)

	assert.Equal(t, "Server is unavailable", m.errMsg)
	assert.Contains(t, m.View(), "Server is unavailable")
}

func TestTasksModel_ToggleAndSend(t *testing.T) {
	m, svc := newTestModel(t)
	m = loaded(t, m, sampleTasks())

	// complete t1, reopen t2
	m, _ = press(t, m, spaceKey)
	m, _ = press(t, m, downKey)
	m, _ = press(t, m, spaceKey)

	assert.Equal(t, map[string]models.TaskStatus{"t1": models.Completed, "t2": models.Pending}, m.staged)
	assert.Contains(t, m.View(), "2 unsent change(s)")

	svc.EXPECT().Send(gomock.Any(), []models.VaultTaskChange{
		{ID: "t1", Status: models.Completed, Version: 2},
		{ID: "t2", Status: models.Pending, Version: 5},
	}).Return(true, nil)

	m, cmd := press(t, m, runeKey("s"))
	require.NotNil(t, cmd)
	assert.True(t, m.sending)

	next, reload := m.Update(cmd())
	m = next.(tasksModel)
	assert.False(t, m.sending)
	assert.Equal(t, "Changes saved", m.status)
	require.NotNil(t, reload)

	svc.EXPECT().List(gomock.Any(), gomock.Any()).Return(sampleTasks(), nil)
	next, _ = m.Update(reload())
	m = next.(tasksModel)
	assert.Empty(t, m.staged)
}

func TestTasksModel_ToggleTwiceUnstages(t *testing.T) {
	m, _ := newTestModel(t)
	m = loaded(t, m, sampleTasks())

	m, _ = press(t, m, spaceKey)
	m, _ = press(t, m, spaceKey)

	assert.Empty(t, m.staged)

	_, cmd := press(t, m, runeKey("s"))
	assert.Nil(t, cmd, "nothing to send")
}

func TestTasksModel_SendConflict(t *testing.T) {
	m, svc := newTestModel(t)
	m = loaded(t, m, sampleTasks())
	m, _ = press(t, m, spaceKey)

	svc.EXPECT().Send(gomock.Any(), gomock.Any()).Return(false, fmt.Errorf("send: %w", store.ErrVersionConflict))

	m, cmd := press(t, m, runeKey("s"))
	next, _ := m.Update(cmd())
	m = next.(tasksModel)

	assert.Equal(t, "Task was changed elsewhere, press r to reload", m.errMsg)
	assert.Len(t, m.staged, 1, "staged change is kept after a failed send")
}

func TestTasksModel_Copy(t *testing.T) {
	m, _ := newTestModel(t)
	m = loaded(t, m, sampleTasks())

	var copied string
	m.copyToClipboard = func(s string) error {
		copied = s
		return nil
	}

	m, _ = press(t, m, downKey)
	_, cmd := press(t, m, runeKey("c"))
	require.NotNil(t, cmd)

	next, _ := m.Update(cmd())
	assert.Equal(t, "t2", copied)
	assert.Equal(t, "Task id copied", next.(tasksModel).status)

	m.copyToClipboard = func(string) error { return errors.New("no clipboard") }
	_, cmd = press(t, m, runeKey("c"))
	next, _ = m.Update(cmd())
	assert.Contains(t, next.(tasksModel).errMsg, "no clipboard")
}

func TestTasksModel_InfoAndQuit(t *testing.T) {
	m, svc := newTestModel(t)
	m = loaded(t, m, sampleTasks())

	svc.EXPECT().ServerVersion(gomock.Any()).Return("2.0.0", nil)
	next, _ := m.Update(m.cmdVersion()())
	m = next.(tasksModel)

	m, _ = press(t, m, runeKey("v"))
	view := m.View()
	assert.Contains(t, view, "Server version: 2.0.0")
	assert.Contains(t, view, "Version: 1.0.0")

	m, _ = press(t, m, escKey)
	assert.False(t, m.showInfo)

	_, cmd := press(t, m, runeKey("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestTasksModel_CursorBounds(t *testing.T) {
	m, _ := newTestModel(t)
	m = loaded(t, m, sampleTasks())

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, m.idx)

	m, _ = press(t, m, downKey)
	m, _ = press(t, m, downKey)
	assert.Equal(t, 1, m.idx)

	m = loaded(t, m, sampleTasks()[:1])
	assert.Equal(t, 0, m.idx, "cursor is clamped after reload")
}

func TestNew(t *testing.T) {
	_, err := New(nil, models.AppBuildInfo{}, logger.Nop())
	require.ErrorIs(t, err, ErrNoServices)

	svc := mock.NewMockClientVaultTaskService(gomock.NewController(t))
	ui, err := New(&service.ClientServices{VaultTaskService: svc}, models.AppBuildInfo{}, logger.Nop())
	require.NoError(t, err)
	assert.NotNil(t, ui)
}
