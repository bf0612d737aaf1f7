package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"campusevents/internal/domain"
)

type mockDirectoryService struct {
	locations  []*domain.Location
	view       *domain.LocationView
	categories []*domain.Category
	err        error
}

func (m *mockDirectoryService) ListLocations(ctx context.Context) ([]*domain.Location, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.locations, nil
}

func (m *mockDirectoryService) GetLocation(ctx context.Context, locationID string) (*domain.LocationView, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.view, nil
}

func (m *mockDirectoryService) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.categories, nil
}

func TestDirectoryController_ListLocations(t *testing.T) {
	ctrl := NewDirectoryController(testLogger(), &mockDirectoryService{
		locations: []*domain.Location{{ID: "loc-1", Name: "Main Hall"}},
	})
	req := httptest.NewRequest(http.MethodGet, "/locations", nil)
	w := httptest.NewRecorder()

	ctrl.ListLocations(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}
}

func TestDirectoryController_GetLocation(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ctrl := NewDirectoryController(testLogger(), &mockDirectoryService{
			view: &domain.LocationView{
				Location:     &domain.Location{ID: "loc-1", Name: "Main Hall"},
				Reservations: []*domain.EventDetails{sampleDetails()},
			},
		})
		req := httptest.NewRequest(http.MethodGet, "/locations/loc-1", nil)
		req.SetPathValue("locationID", "loc-1")
		w := httptest.NewRecorder()

		ctrl.GetLocation(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := NewDirectoryController(testLogger(), &mockDirectoryService{err: domain.ErrNotFound})
		req := httptest.NewRequest(http.MethodGet, "/locations/loc-ghost", nil)
		req.SetPathValue("locationID", "loc-ghost")
		w := httptest.NewRecorder()

		ctrl.GetLocation(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected status %d, got %d", http.StatusNotFound, w.Code)
		}
	})
}

func TestDirectoryController_ListCategories(t *testing.T) {
	ctrl := NewDirectoryController(testLogger(), &mockDirectoryService{
		categories: []*domain.Category{{ID: "cat-1", Name: "Clubs"}},
	})
	req := httptest.NewRequest(http.MethodGet, "/categories", nil)
	w := httptest.NewRecorder()

	ctrl.ListCategories(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}
}
