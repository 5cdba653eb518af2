package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/MKhiriev/go-vault-tasks/internal/app"
	"github.com/MKhiriev/go-vault-tasks/internal/logger"
	"github.com/MKhiriev/go-vault-tasks/models"
)

// tasksHashing checks that the "hash" field of a [models.VaultTasksRequest]
// is the HMAC of its JSON-encoded "tasks". It passes everything through when
// the handler has no hash key.
func (h *Handler) tasksHashing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.hasher == nil {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r)
		log.Debug().Str("func", "*Handler.tasksHashing").Msg("checking hash begins")

		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxRequestBodySize))
		if err != nil {
			log.Err(err).Str("func", "*Handler.tasksHashing").Msg("failed to read request body")
			writeBodyError(w, err)
			return
		}
		// restore request body
		r.Body = io.NopCloser(bytes.NewReader(body))

		var req models.VaultTasksRequest
		if err := json.Unmarshal(body, &req); err != nil {
			log.Err(err).Str("func", "*Handler.tasksHashing").Msg("failed to decode JSON")
			http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
			return
		}

		payload, err := json.Marshal(req.Tasks)
		if err != nil {
			log.Err(err).Str("func", "*Handler.tasksHashing").Msg("failed to marshal tasks")
			http.Error(w, app.MsgInternalServerError, http.StatusInternalServerError)
			return
		}

		if !h.hasher.Equal(payload, req.Hash) {
			log.Error().Str("func", "*Handler.tasksHashing").
				Str("hash from request", req.Hash).
				Msg("hashes are not equal")
			http.Error(w, app.MsgIntegrityCheckFailed, http.StatusBadRequest)
			return
		}

		next.ServeHTTP(w, r)
	})
}
