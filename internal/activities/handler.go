package activities

import (
	"log/slog"
	"net/http"

	"github.com/JaimeStill/activity-signup/pkg/handlers"
	"github.com/JaimeStill/activity-signup/pkg/routes"
)

type Handler struct {
	sys    System
	logger *slog.Logger
}

func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger,
	}
}

func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/activities",
		Tags:        []string{"Activities"},
		Description: "Extracurricular activities and participant signup",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.List, OpenAPI: Spec.List},
			{Method: "GET", Pattern: "/{activity_name}", Handler: h.Find, OpenAPI: Spec.Find},
			{Method: "POST", Pattern: "/{activity_name}/signup", Handler: h.Signup, OpenAPI: Spec.Signup},
			{Method: "DELETE", Pattern: "/{activity_name}/unregister", Handler: h.Unregister, OpenAPI: Spec.Unregister},
		},
	}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, h.sys.List())
}

func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	result, err := h.sys.Find(r.PathValue("activity_name"))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	email, err := emailParam(r)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	msg, err := h.sys.Signup(r.PathValue("activity_name"), email)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondMessage(w, http.StatusOK, msg)
}

func (h *Handler) Unregister(w http.ResponseWriter, r *http.Request) {
	email, err := emailParam(r)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	msg, err := h.sys.Unregister(r.PathValue("activity_name"), email)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondMessage(w, http.StatusOK, msg)
}

// emailParam requires the email query parameter to be present. A present but
// blank value is left for the registry to judge once the activity resolves.
func emailParam(r *http.Request) (string, error) {
	q := r.URL.Query()
	if !q.Has("email") {
		return "", ErrEmailRequired
	}
	return q.Get("email"), nil
}
