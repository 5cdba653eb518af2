package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-vault-tasks/internal/logger"
	"github.com/MKhiriev/go-vault-tasks/internal/utils"
	"github.com/MKhiriev/go-vault-tasks/models"
)

// getVaultTasks answers GET /vault-tasks/user/{id}[?status=...] with a
// [models.VaultTasksResponse].
func (h *Handler) getVaultTasks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	userID := pathUserID(r)

	filter := models.TaskFilter{Status: models.TaskStatus(r.URL.Query().Get("status"))}

	tasks, err := h.services.VaultTaskService.GetVaultTasks(ctx, userID, filter)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getVaultTasks").Str("user_id", userID).Msg("error getting vault tasks")
		http.Error(w, messageFromError(err), statusFromError(err))
		return
	}

	response := models.VaultTasksResponse{
		UserID: userID,
		Tasks:  tasks,
		Length: len(tasks),
	}

	if _, err = utils.WriteJSON(w, response, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.getVaultTasks").Msg("error writing response")
	}
}

// updateVaultTasks answers POST /vault-tasks/user/{id} with a JSON boolean:
// true when at least one task was created or changed.
func (h *Handler) updateVaultTasks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	userID := pathUserID(r)

	var request models.VaultTasksRequest
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBodySize))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&request); err != nil {
		log.Err(err).Str("func", "*Handler.updateVaultTasks").Msg("Invalid JSON was passed")
		writeBodyError(w, err)
		return
	}

	changed, err := h.services.VaultTaskService.UpdateVaultTasks(ctx, userID, request)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateVaultTasks").Str("user_id", userID).Msg("error updating vault tasks")
		http.Error(w, messageFromError(err), statusFromError(err))
		return
	}

	if _, err = utils.WriteJSON(w, changed, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.updateVaultTasks").Msg("error writing response")
	}
}
