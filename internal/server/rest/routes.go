package rest

import (
	"net/http"

	"github.com/dmitrijs2005/whattowear/internal/logging"
	"github.com/dmitrijs2005/whattowear/internal/server/apperr"
	"github.com/gorilla/mux"
)

// handlerFunc is an endpoint. A returned error is rendered by writeError;
// on success the handler has already written the response.
type handlerFunc func(w http.ResponseWriter, r *http.Request) error

// Access is the policy a route requires before its handler runs.
type Access int

const (
	AccessPublic Access = iota
	AccessIdentity
)

// Route is one entry of the route table. Params lists the path variables
// that must be valid ids.
type Route struct {
	Name    string
	Method  string
	Path    string
	Access  Access
	Params  []string
	Enabled bool
	Handler handlerFunc
}

// routes is the route table. /users/me comes before /users/{userId}.
func (s *Server) routes() []Route {
	return []Route{
		{Name: "health", Method: http.MethodGet, Path: "/healthz", Access: AccessPublic, Enabled: true, Handler: s.health},

		{Name: "createUser", Method: http.MethodPost, Path: "/signup", Access: AccessPublic, Enabled: true, Handler: s.createUser},
		{Name: "login", Method: http.MethodPost, Path: "/signin", Access: AccessPublic, Enabled: true, Handler: s.login},

		{Name: "getItems", Method: http.MethodGet, Path: "/items", Access: AccessPublic, Enabled: true, Handler: s.getItems},
		{Name: "createItem", Method: http.MethodPost, Path: "/items", Access: AccessIdentity, Enabled: true, Handler: s.createItem},
		{Name: "presignImage", Method: http.MethodPost, Path: "/items/images", Access: AccessIdentity, Enabled: s.images != nil, Handler: s.presignImage},
		{Name: "deleteItem", Method: http.MethodDelete, Path: "/items/{itemId}", Access: AccessIdentity, Params: []string{"itemId"}, Enabled: true, Handler: s.deleteItem},
		{Name: "likeItem", Method: http.MethodPut, Path: "/items/{itemId}/likes", Access: AccessIdentity, Params: []string{"itemId"}, Enabled: true, Handler: s.likeItem},
		{Name: "unlikeItem", Method: http.MethodDelete, Path: "/items/{itemId}/likes", Access: AccessIdentity, Params: []string{"itemId"}, Enabled: true, Handler: s.unlikeItem},

		{Name: "getUsers", Method: http.MethodGet, Path: "/users", Access: AccessIdentity, Enabled: true, Handler: s.getUsers},
		{Name: "getCurrentUser", Method: http.MethodGet, Path: "/users/me", Access: AccessIdentity, Enabled: true, Handler: s.getCurrentUser},
		{Name: "updateCurrentUser", Method: http.MethodPatch, Path: "/users/me", Access: AccessIdentity, Enabled: true, Handler: s.updateCurrentUser},
		{Name: "getUser", Method: http.MethodGet, Path: "/users/{userId}", Access: AccessIdentity, Params: []string{"userId"}, Enabled: true, Handler: s.getUser},
	}
}

func (s *Server) newRouter() *mux.Router {
	router := mux.NewRouter()

	for _, rt := range s.routes() {
		if !rt.Enabled {
			continue
		}
		router.Handle(rt.Path, s.adapt(rt)).Methods(rt.Method).Name(rt.Name)
	}

	notFound := s.adapt(Route{Name: "notFound", Handler: func(http.ResponseWriter, *http.Request) error {
		return apperr.NotFound("")
	}})
	router.NotFoundHandler = notFound
	router.MethodNotAllowedHandler = notFound

	return router
}

// adapt applies the route's policies and turns the handler's error into a
// rendered response.
func (s *Server) adapt(rt Route) http.Handler {
	h := rt.Handler
	if len(rt.Params) > 0 {
		h = validateParams(rt.Params, h)
	}
	if rt.Access == AccessIdentity {
		h = requireIdentity(s.jwtSecret, h)
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if info := requestInfoFrom(r.Context()); info != nil {
			info.route = rt.Name
		}
		r = r.WithContext(logging.ContextWith(r.Context(), "route", rt.Name))

		if err := h(w, r); err != nil {
			s.writeError(w, r, err)
		}
	})
}
