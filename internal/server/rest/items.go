package rest

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/whattowear/internal/common"
	"github.com/dmitrijs2005/whattowear/internal/server/apperr"
	"github.com/dmitrijs2005/whattowear/internal/server/models"
	"github.com/dmitrijs2005/whattowear/internal/server/services"
	"github.com/gorilla/mux"
)

const msgItemDeleted = "Item deleted successfully"

// getItems is public. With degraded mode on, an unreachable store is served
// as an empty list and flagged in a header instead of failing the request.
// Any other failure is still a 500.
func (s *Server) getItems(w http.ResponseWriter, r *http.Request) error {
	list, err := s.items.List(r.Context())
	if err != nil {
		if !s.degradedItems || !errors.Is(err, common.ErrUnavailable) {
			return err
		}
		s.logger.Warn(r.Context(), "serving empty item list", "event", "items_degraded", "error", err.Error())
		w.Header().Set(common.DegradedHeader, "items")
		list = []models.ClothingItem{}
	}

	writeJSON(w, http.StatusOK, list)
	return nil
}

func (s *Server) createItem(w http.ResponseWriter, r *http.Request) error {
	var req createItemRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return err
	}

	userID, _ := UserIDFromContext(r.Context())
	item, err := s.items.Create(r.Context(), userID, services.NewItem{
		Name:     req.Name,
		Weather:  models.Weather(req.Weather),
		ImageURL: req.ImageURL,
	})
	if err != nil {
		return err
	}

	writeJSON(w, http.StatusCreated, item)
	return nil
}

func (s *Server) deleteItem(w http.ResponseWriter, r *http.Request) error {
	userID, _ := UserIDFromContext(r.Context())

	item, err := s.items.Delete(r.Context(), userID, mux.Vars(r)["itemId"])
	if err != nil {
		return err
	}

	writeJSON(w, http.StatusOK, deleteItemResponse{Message: msgItemDeleted, Data: item})
	return nil
}

func (s *Server) likeItem(w http.ResponseWriter, r *http.Request) error {
	userID, _ := UserIDFromContext(r.Context())

	item, err := s.items.Like(r.Context(), userID, mux.Vars(r)["itemId"])
	if err != nil {
		return err
	}

	writeJSON(w, http.StatusOK, item)
	return nil
}

func (s *Server) unlikeItem(w http.ResponseWriter, r *http.Request) error {
	userID, _ := UserIDFromContext(r.Context())

	item, err := s.items.Unlike(r.Context(), userID, mux.Vars(r)["itemId"])
	if err != nil {
		return err
	}

	writeJSON(w, http.StatusOK, item)
	return nil
}

func (s *Server) presignImage(w http.ResponseWriter, r *http.Request) error {
	userID, _ := UserIDFromContext(r.Context())

	up, err := s.images.PresignUpload(r.Context(), userID)
	if err != nil {
		return err
	}

	writeJSON(w, http.StatusOK, up)
	return nil
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) error {
	if s.pinger != nil {
		if err := s.pinger.Ping(r.Context()); err != nil {
			return apperr.Internal(err)
		}
	}

	writeJSON(w, http.StatusOK, healthResponse{Status: "ok"})
	return nil
}
