package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/mhollis/fable-engine/internal/services"
	"github.com/mhollis/fable-engine/pkg/item"
	"github.com/mhollis/fable-engine/pkg/session"
	"github.com/mhollis/fable-engine/pkg/textfilter"
)

// SessionHandler serves the session API. Each mutating request follows
// load-rebuild-mutate-save against storage, which serializes commands per
// session the way the core's sequential model expects.
type SessionHandler struct {
	storage services.Storage
	logger  *slog.Logger
	filter  *textfilter.Filter
	rating  string
}

func NewSessionHandler(storage services.Storage, logger *slog.Logger, rating string) *SessionHandler {
	return &SessionHandler{
		storage: storage,
		logger:  logger,
		filter:  textfilter.New(),
		rating:  rating,
	}
}

// ServeHTTP handles HTTP requests for session operations
// Routes:
// POST /v1/sessions                    - Create new session
// GET /v1/sessions/{id}                - Read session by ID
// DELETE /v1/sessions/{id}             - Delete session by ID
// POST /v1/sessions/{id}/characters    - Create a character
// POST /v1/sessions/{id}/items         - Create an item in a character's inventory
// POST /v1/sessions/{id}/actions       - Perform a verb (attack/drink/cast/show/dialogue)
// POST /v1/sessions/{id}/commands      - Run a raw script line
func (h *SessionHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	path := strings.Trim(strings.TrimPrefix(r.URL.Path, "/v1/sessions"), "/")

	if path == "" {
		if r.Method != http.MethodPost {
			writeError(w, h.logger, http.StatusMethodNotAllowed, "Method not allowed. Supported methods: POST")
			return
		}
		h.handleCreate(w, r)
		return
	}

	segments := strings.SplitN(path, "/", 2)
	id, err := uuid.Parse(segments[0])
	if err != nil {
		h.logger.Warn("Invalid session ID", "id", segments[0], "error", err)
		writeError(w, h.logger, http.StatusBadRequest, "Invalid session ID format")
		return
	}

	if len(segments) == 1 {
		switch r.Method {
		case http.MethodGet:
			h.handleRead(w, r, id)
		case http.MethodDelete:
			h.handleDelete(w, r, id)
		default:
			writeError(w, h.logger, http.StatusMethodNotAllowed, "Method not allowed. Supported methods: GET, DELETE")
		}
		return
	}

	if r.Method != http.MethodPost {
		writeError(w, h.logger, http.StatusMethodNotAllowed, "Method not allowed. Supported methods: POST")
		return
	}

	switch segments[1] {
	case "characters":
		h.handleCreateCharacter(w, r, id)
	case "items":
		h.handleCreateItem(w, r, id)
	case "actions":
		h.handleAction(w, r, id)
	case "commands":
		h.handleCommand(w, r, id)
	default:
		writeError(w, h.logger, http.StatusNotFound, "Unknown session resource: "+segments[1])
	}
}

func (h *SessionHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	h.logger.Debug("Creating new session")

	s := session.New()
	if err := h.storage.SaveSession(r.Context(), s.ID, s.Snapshot()); err != nil {
		h.logger.Error("Failed to save session", "error", err)
		writeError(w, h.logger, http.StatusInternalServerError, "Failed to save session")
		return
	}

	writeJSON(w, h.logger, http.StatusCreated, s.Snapshot())
}

func (h *SessionHandler) handleRead(w http.ResponseWriter, r *http.Request, id uuid.UUID) {
	snap, err := h.storage.LoadSession(r.Context(), id)
	if err != nil {
		h.logger.Error("Failed to load session", "id", id, "error", err)
		writeError(w, h.logger, http.StatusInternalServerError, "Failed to load session")
		return
	}
	if snap == nil {
		writeError(w, h.logger, http.StatusNotFound, "Session not found")
		return
	}
	writeJSON(w, h.logger, http.StatusOK, snap)
}

func (h *SessionHandler) handleDelete(w http.ResponseWriter, r *http.Request, id uuid.UUID) {
	if err := h.storage.DeleteSession(r.Context(), id); err != nil {
		h.logger.Error("Failed to delete session", "id", id, "error", err)
		writeError(w, h.logger, http.StatusInternalServerError, "Failed to delete session")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// CreateCharacterRequest defines the request body for creating a character
type CreateCharacterRequest struct {
	Class string `json:"class"`
	Name  string `json:"name"`
	HP    int    `json:"hp"`
}

func (h *SessionHandler) handleCreateCharacter(w http.ResponseWriter, r *http.Request, id uuid.UUID) {
	var req CreateCharacterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("Invalid JSON in request body", "error", err)
		writeError(w, h.logger, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}
	if req.Name == "" {
		writeError(w, h.logger, http.StatusBadRequest, "name field is required")
		return
	}

	class, err := session.ParseClass(req.Class)
	if err != nil {
		writeError(w, h.logger, http.StatusBadRequest, err.Error())
		return
	}

	h.withSession(w, r, id, func(s *session.Session) ([]string, error) {
		_, err := s.CreateCharacter(class, req.Name, req.HP)
		return nil, err
	})
}

// CreateItemRequest defines the request body for creating an item
type CreateItemRequest struct {
	Kind      string   `json:"kind"` // weapon, potion or spell
	Owner     string   `json:"owner"`
	Name      string   `json:"name"`
	Damage    int      `json:"damage,omitempty"`
	HealValue int      `json:"heal_value,omitempty"`
	School    string   `json:"school,omitempty"`
	Magnitude int      `json:"magnitude,omitempty"`
	Targets   []string `json:"targets,omitempty"`
}

func (h *SessionHandler) handleCreateItem(w http.ResponseWriter, r *http.Request, id uuid.UUID) {
	var req CreateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("Invalid JSON in request body", "error", err)
		writeError(w, h.logger, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}
	if req.Name == "" || req.Owner == "" {
		writeError(w, h.logger, http.StatusBadRequest, "name and owner fields are required")
		return
	}

	h.withSession(w, r, id, func(s *session.Session) ([]string, error) {
		switch session.Kind(strings.ToLower(req.Kind)) {
		case session.KindWeapon:
			return nil, s.CreateWeapon(req.Owner, req.Name, req.Damage)
		case session.KindPotion:
			return nil, s.CreatePotion(req.Owner, req.Name, req.HealValue)
		case session.KindSpell:
			school := item.SchoolOffensive
			if strings.EqualFold(req.School, string(item.SchoolRestorative)) {
				school = item.SchoolRestorative
			}
			return nil, s.CreateSpell(req.Owner, req.Name, school, req.Magnitude, req.Targets)
		default:
			return nil, session.ErrInvalidAction
		}
	})
}

// ActionRequest defines the request body for a verb action
type ActionRequest struct {
	Verb    string   `json:"verb"` // attack, drink, cast, show or dialogue
	Actor   string   `json:"actor,omitempty"`
	Target  string   `json:"target,omitempty"`
	Item    string   `json:"item,omitempty"`
	Kind    string   `json:"kind,omitempty"`    // for show
	Speaker string   `json:"speaker,omitempty"` // for dialogue
	Words   []string `json:"words,omitempty"`   // for dialogue
}

// ActionResponse carries transcript output plus the updated session
type ActionResponse struct {
	Output  []string          `json:"output,omitempty"`
	Session *session.Snapshot `json:"session"`
}

func (h *SessionHandler) handleAction(w http.ResponseWriter, r *http.Request, id uuid.UUID) {
	var req ActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("Invalid JSON in request body", "error", err)
		writeError(w, h.logger, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}

	h.withSession(w, r, id, func(s *session.Session) ([]string, error) {
		switch strings.ToLower(req.Verb) {
		case "attack":
			return nil, s.Attack(req.Actor, req.Target, req.Item)
		case "drink":
			return nil, s.Drink(req.Actor, req.Target, req.Item)
		case "cast":
			return nil, s.Cast(req.Actor, req.Target, req.Item)
		case "show":
			lines, err := s.Show(req.Kind, req.Actor)
			if err != nil {
				return nil, err
			}
			return []string{strings.Join(lines, " ")}, nil
		case "dialogue":
			line, err := s.Dialogue(req.Speaker, req.Words)
			if err != nil {
				return nil, err
			}
			return []string{line}, nil
		default:
			return nil, session.ErrInvalidAction
		}
	})
}

// CommandRequest defines the request body for a raw script line
type CommandRequest struct {
	Command string `json:"command"`
}

func (h *SessionHandler) handleCommand(w http.ResponseWriter, r *http.Request, id uuid.UUID) {
	var req CommandRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("Invalid JSON in request body", "error", err)
		writeError(w, h.logger, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}
	if strings.TrimSpace(req.Command) == "" {
		writeError(w, h.logger, http.StatusBadRequest, "command field is required")
		return
	}

	h.withSession(w, r, id, func(s *session.Session) ([]string, error) {
		return s.Run(req.Command)
	})
}

// withSession runs one mutation as load-rebuild-mutate-save. A failed
// mutation leaves the stored session untouched and maps the core error to
// a status; the session itself always survives.
func (h *SessionHandler) withSession(w http.ResponseWriter, r *http.Request, id uuid.UUID, fn func(*session.Session) ([]string, error)) {
	snap, err := h.storage.LoadSession(r.Context(), id)
	if err != nil {
		h.logger.Error("Failed to load session", "id", id, "error", err)
		writeError(w, h.logger, http.StatusInternalServerError, "Failed to load session")
		return
	}
	if snap == nil {
		writeError(w, h.logger, http.StatusNotFound, "Session not found")
		return
	}

	s, err := session.NewFromSnapshot(snap)
	if err != nil {
		h.logger.Error("Failed to restore session", "id", id, "error", err)
		writeError(w, h.logger, http.StatusInternalServerError, "Failed to restore session")
		return
	}

	output, err := fn(s)
	if err != nil {
		h.logger.Debug("Command failed", "id", id, "error", err)
		writeError(w, h.logger, statusForError(err), err.Error())
		return
	}

	if textfilter.ShouldFilter(h.rating) {
		for i, line := range output {
			output[i] = h.filter.Clean(line)
		}
	}

	updated := s.Snapshot()
	if err := h.storage.SaveSession(r.Context(), id, updated); err != nil {
		h.logger.Error("Failed to save session", "id", id, "error", err)
		writeError(w, h.logger, http.StatusInternalServerError, "Failed to save session")
		return
	}

	writeJSON(w, h.logger, http.StatusOK, ActionResponse{Output: output, Session: updated})
}
