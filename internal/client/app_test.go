package client

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/MKhiriev/go-vault-tasks/internal/logger"
	"github.com/MKhiriev/go-vault-tasks/internal/mock"
	"github.com/MKhiriev/go-vault-tasks/internal/service"
	"github.com/MKhiriev/go-vault-tasks/internal/store"
	"github.com/MKhiriev/go-vault-tasks/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakeUI struct {
	runs int
}

func (f *fakeUI) Run(context.Context) error {
	f.runs++
	return nil
}

func newTestApp(t *testing.T) (*App, *mock.MockClientVaultTaskService, *fakeUI, *bytes.Buffer) {
	t.Helper()
	svc := mock.NewMockClientVaultTaskService(gomock.NewController(t))
	svc.EXPECT().UserID().Return("user-1").AnyTimes()

	ui := &fakeUI{}
	out := &bytes.Buffer{}

	app, err := NewApp(&service.ClientServices{VaultTaskService: svc}, ui, out, logger.Nop())
	require.NoError(t, err)
	return app, svc, ui, out
}

func TestNewApp_NoServices(t *testing.T) {
	_, err := NewApp(nil, &fakeUI{}, &bytes.Buffer{}, logger.Nop())
	require.ErrorIs(t, err, ErrNoClientServices)
}

func TestApp_RunTUI(t *testing.T) {
	app, svc, ui, _ := newTestApp(t)
	svc.EXPECT().ServerVersion(gomock.Any()).Return("1.0.0", nil)

	require.NoError(t, app.Run(context.Background(), Command{Mode: ModeTUI}))
	assert.Equal(t, 1, ui.runs)
}

func TestApp_List(t *testing.T) {
	app, svc, ui, out := newTestApp(t)
	svc.EXPECT().List(gomock.Any(), models.TaskFilter{Status: models.Pending}).
		Return([]models.VaultTask{{ID: "t1", UserID: "user-1", Status: models.Pending, Version: 1}}, nil)

	require.NoError(t, app.Run(context.Background(), Command{Mode: ModeList, Status: models.Pending}))
	assert.Zero(t, ui.runs)

	var resp models.VaultTasksResponse
	require.NoError(t, json.Unmarshal(out.Bytes(), &resp))
	assert.Equal(t, "user-1", resp.UserID)
	assert.Equal(t, 1, resp.Length)
}

func TestApp_Create(t *testing.T) {
	app, svc, _, out := newTestApp(t)
	svc.EXPECT().Create(gomock.Any(), models.EnableTwoFactor, "cipher-1").Return(true, nil)

	require.NoError(t, app.Run(context.Background(), Command{Mode: ModeCreate, TaskType: models.EnableTwoFactor, CipherID: "cipher-1"}))
	assert.Equal(t, "true\n", out.String())
}

func TestApp_Complete(t *testing.T) {
	app, svc, _, out := newTestApp(t)
	task := models.VaultTask{ID: "t2", Status: models.Pending, Version: 4}

	svc.EXPECT().List(gomock.Any(), models.TaskFilter{}).Return([]models.VaultTask{{ID: "t1"}, task}, nil)
	svc.EXPECT().SetStatus(gomock.Any(), task, models.Completed).Return(true, nil)

	require.NoError(t, app.Run(context.Background(), Command{Mode: ModeComplete, TaskID: "t2"}))
	assert.Equal(t, "true\n", out.String())
}

func TestApp_CompleteUnknownTask(t *testing.T) {
	app, svc, _, _ := newTestApp(t)
	svc.EXPECT().List(gomock.Any(), gomock.Any()).Return([]models.VaultTask{{ID: "t1"}}, nil)

	err := app.Run(context.Background(), Command{Mode: ModeComplete, TaskID: "nope"})
	require.ErrorIs(t, err, store.ErrVaultTaskNotFound)
}
