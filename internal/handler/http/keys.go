package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-kv-keeper/internal/app"
	"github.com/MKhiriev/go-kv-keeper/internal/logger"
	"github.com/MKhiriev/go-kv-keeper/internal/store"
	"github.com/MKhiriev/go-kv-keeper/internal/utils"
	"github.com/MKhiriev/go-kv-keeper/models"
)

// read returns the raw value stored under the key from the URL path as
// text/plain. A miss answers 404.
func (h *Handler) read(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	key := chi.URLParam(r, "key")

	entry, err := h.services.KeyValueService.Read(ctx, key)
	if err != nil {
		if !errors.Is(err, store.ErrKeyNotFound) {
			log.Err(err).Str("key", key).Msg("unexpected error occurred during key read")
		}
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(entry.Value))
}

// upsert stores the value from the JSON body under the key from the URL
// path, creating or overwriting the entry.
func (h *Handler) upsert(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	key := chi.URLParam(r, "key")

	var payload models.ValuePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Err(err).Msg(app.MsgInvalidJSON)
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	saved, err := h.services.KeyValueService.Upsert(ctx, key, payload.Value)
	if err != nil {
		log.Err(err).Str("key", key).Msg("entry upsert failed")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, saved, http.StatusOK)
}

// update replaces the value of an existing key. An absent key answers 404,
// an empty value 400.
func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	key := chi.URLParam(r, "key")

	var payload models.ValuePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Err(err).Msg(app.MsgInvalidJSON)
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	updated, err := h.services.KeyValueService.Update(ctx, key, payload.Value)
	if err != nil {
		if !errors.Is(err, store.ErrKeyNotFound) {
			log.Err(err).Str("key", key).Msg("entry update failed")
		}
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

// remove deletes the entry stored under the key from the URL path. The
// operation is idempotent and always answers 204.
func (h *Handler) remove(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	key := chi.URLParam(r, "key")

	if err := h.services.KeyValueService.Remove(ctx, key); err != nil {
		log.Err(err).Str("key", key).Msg("entry removal failed")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// keys lists stored keys as JSON, optionally narrowed with the ?prefix=
// query parameter.
func (h *Handler) keys(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	prefix := r.URL.Query().Get("prefix")

	keys, err := h.services.KeyValueService.Keys(ctx, prefix)
	if err != nil {
		log.Err(err).Msg("keys listing failed")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.KeysResponse{Keys: keys, Length: len(keys)}, http.StatusOK)
}
