package rest

import (
	"net/http"

	"github.com/dmitrijs2005/whattowear/internal/server/apperr"
	"github.com/dmitrijs2005/whattowear/internal/server/models"
	"github.com/dmitrijs2005/whattowear/internal/server/services"
	"github.com/gorilla/mux"
)

func (s *Server) createUser(w http.ResponseWriter, r *http.Request) error {
	var req signupRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return err
	}

	u, err := s.users.Register(r.Context(), services.NewUser{
		Name:     req.Name,
		Avatar:   req.Avatar,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	s.logger.Info(r.Context(), "Registered", "user_id", u.ID)
	writeJSON(w, http.StatusCreated, u)
	return nil
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) error {
	var req signinRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return err
	}

	token, u, err := s.users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	writeJSON(w, http.StatusOK, loginResponse{Token: token, User: u})
	return nil
}

func (s *Server) getCurrentUser(w http.ResponseWriter, r *http.Request) error {
	userID, _ := UserIDFromContext(r.Context())

	u, err := s.users.Get(r.Context(), userID)
	if err != nil {
		return err
	}

	writeJSON(w, http.StatusOK, u)
	return nil
}

func (s *Server) updateCurrentUser(w http.ResponseWriter, r *http.Request) error {
	var req updateMeRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return err
	}
	if req.Name == nil && req.Avatar == nil {
		return apperr.BadRequest(`at least one of "name" or "avatar" is required`)
	}

	userID, _ := UserIDFromContext(r.Context())
	u, err := s.users.Update(r.Context(), userID, models.UserUpdate{Name: req.Name, Avatar: req.Avatar})
	if err != nil {
		return err
	}

	writeJSON(w, http.StatusOK, u)
	return nil
}

func (s *Server) getUsers(w http.ResponseWriter, r *http.Request) error {
	list, err := s.users.List(r.Context())
	if err != nil {
		return err
	}

	writeJSON(w, http.StatusOK, list)
	return nil
}

func (s *Server) getUser(w http.ResponseWriter, r *http.Request) error {
	u, err := s.users.Get(r.Context(), mux.Vars(r)["userId"])
	if err != nil {
		return err
	}

	writeJSON(w, http.StatusOK, u)
	return nil
}
