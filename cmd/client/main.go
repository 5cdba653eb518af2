package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/MKhiriev/go-vault-tasks/internal/adapter"
	"github.com/MKhiriev/go-vault-tasks/internal/client"
	"github.com/MKhiriev/go-vault-tasks/internal/config"
	"github.com/MKhiriev/go-vault-tasks/internal/logger"
	"github.com/MKhiriev/go-vault-tasks/internal/service"
	"github.com/MKhiriev/go-vault-tasks/internal/tui"
	"github.com/MKhiriev/go-vault-tasks/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	log := logger.NewFileLogger("go-vault-tasks-client", logPath())

	cmd, err := client.ParseCommand(os.Args[1:])
	if err != nil {
		fail(log, err, "error parsing command")
	}

	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		fail(log, err, "error getting configs")
	}
	logger.SetLevel(cfg.App.LogLevel)

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, cfg.App, log)
	if err != nil {
		fail(log, err, "create server adapter")
	}

	services := service.NewClientServices(serverAdapter, cfg.Adapter.UserID)

	ui, err := tui.New(services, buildInfo, log)
	if err != nil {
		fail(log, err, "error creating ui")
	}

	app, err := client.NewApp(services, ui, os.Stdout, log)
	if err != nil {
		fail(log, err, "init client app error")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	if err = app.Run(ctx, cmd); err != nil {
		stop()
		fail(log, err, "client run error")
	}
}

// logPath places the log file next to the executable.
func logPath() string {
	exe, err := os.Executable()
	if err != nil {
		return "go-vault-tasks-client.log"
	}
	return filepath.Join(filepath.Dir(exe), "go-vault-tasks-client.log")
}

// fail reports err on stderr as well, since the log lives in a file.
func fail(log *logger.Logger, err error, msg string) {
	fmt.Fprintf(os.Stderr, "%s: %v\n", msg, err)
	log.Fatal().Err(err).Msg(msg)
}
