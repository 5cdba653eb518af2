// Command tokengen mints a signed access token with the application
// capability for local testing.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-vault-tasks/internal/config"
	"github.com/MKhiriev/go-vault-tasks/internal/logger"
	"github.com/MKhiriev/go-vault-tasks/internal/service"
	"github.com/MKhiriev/go-vault-tasks/models"
)

func main() {
	log := logger.NewLogger("go-vault-tasks-tokengen")
	logger.SetLevel("warn")

	cfg, err := config.GetTokenConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	token, err := service.NewAuthService(cfg.App, log).
		CreateToken(context.Background(), cfg.Adapter.UserID, models.CapabilityApplication)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating token")
	}

	fmt.Println(token.String())
}
