//go:build e2e

package item_test

import (
	"net/http"
	"testing"
	"time"

	"shareit/internal/handler/dto/request"
	"shareit/internal/handler/dto/response"
	"shareit/tests/common/builder"
	"shareit/tests/common/dbtest"
	"shareit/tests/common/httptest"
	"shareit/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const itemsURL = "/items"

type ItemSuite struct {
	e2e.SharedSuite
}

func TestItemSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(ItemSuite))
}

func (s *ItemSuite) createItem(t *testing.T, ownerID uuid.UUID, name string, available bool) response.ItemResponse {
	t.Helper()

	reqBody := builder.NewItemBuilder().With(func(b *builder.ItemBuilder) {
		b.Name = name
		b.Available = available
	}).BuildCreateRequestDTO()

	w := httptest.PerformRequest(t, s.Router, http.MethodPost, itemsURL, reqBody, ownerID.String())
	require.Equal(t, http.StatusCreated, w.Code, "item creation failed: %s", w.Body.String())

	var created response.ItemResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
	return created
}

// =============================================================================
// TestCreateAndUpdate
// =============================================================================

func (s *ItemSuite) TestCreateAndUpdate() {
	s.Run("Normal case: owner creates and patches an item", func() {
		t := s.T()
		ownerID := dbtest.CreateTestUser(t, s.DB, "Owner", "owner@example.com")

		created := s.createItem(t, ownerID, "Cordless drill", true)
		require.Equal(t, "Cordless drill", created.Name)
		require.True(t, created.Available)

		name := "Impact driver"
		available := false
		patch := request.UpdateItemRequest{Name: &name, Available: &available}
		w := httptest.PerformRequest(t, s.Router, http.MethodPatch,
			itemsURL+"/"+created.ID.String(), patch, ownerID.String())
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var updated response.ItemResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &updated))
		require.Equal(t, "Impact driver", updated.Name)
		require.False(t, updated.Available)
		// Description was not sent and keeps its value
		require.Equal(t, created.Description, updated.Description)
	})

	s.Run("Error case: non-owner update looks like a missing item", func() {
		t := s.T()
		ownerID := dbtest.CreateTestUser(t, s.DB, "Owner", "owner@example.com")
		otherID := dbtest.CreateTestUser(t, s.DB, "Other", "other@example.com")

		created := s.createItem(t, ownerID, "Cordless drill", true)

		name := "Stolen drill"
		patch := request.UpdateItemRequest{Name: &name}
		w := httptest.PerformRequest(t, s.Router, http.MethodPatch,
			itemsURL+"/"+created.ID.String(), patch, otherID.String())
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Item not found")
	})

	s.Run("Error case: unknown owner yields 404", func() {
		t := s.T()
		reqBody := builder.NewItemBuilder().BuildCreateRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, itemsURL, reqBody, uuid.New().String())
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "User not found")
	})
}

// =============================================================================
// TestOwnerSchedule - last/next booking visibility
// =============================================================================

func (s *ItemSuite) TestOwnerSchedule() {
	s.Run("Normal case: owner sees last and next, booker does not", func() {
		t := s.T()
		ownerID := dbtest.CreateTestUser(t, s.DB, "Owner", "owner@example.com")
		bookerID := dbtest.CreateTestUser(t, s.DB, "Booker", "booker@example.com")
		itemID := dbtest.CreateTestItem(t, s.DB, ownerID, "Cordless drill", true)

		now := time.Now()
		lastID := dbtest.CreateTestBooking(t, s.DB, itemID, bookerID,
			now.Add(-48*time.Hour), now.Add(-24*time.Hour), "APPROVED")
		nextID := dbtest.CreateTestBooking(t, s.DB, itemID, bookerID,
			now.Add(24*time.Hour), now.Add(48*time.Hour), "APPROVED")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet,
			itemsURL+"/"+itemID.String(), nil, ownerID.String())
		require.Equal(t, http.StatusOK, w.Code)

		var ownerView response.ItemDetailResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &ownerView))
		require.NotNil(t, ownerView.LastBooking)
		require.NotNil(t, ownerView.NextBooking)
		require.Equal(t, lastID, ownerView.LastBooking.ID)
		require.Equal(t, nextID, ownerView.NextBooking.ID)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet,
			itemsURL+"/"+itemID.String(), nil, bookerID.String())
		require.Equal(t, http.StatusOK, w.Code)

		var bookerView response.ItemDetailResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &bookerView))
		require.Nil(t, bookerView.LastBooking)
		require.Nil(t, bookerView.NextBooking)
	})

	s.Run("Normal case: rejected nearest booking hides the slot", func() {
		t := s.T()
		ownerID := dbtest.CreateTestUser(t, s.DB, "Owner", "owner@example.com")
		bookerID := dbtest.CreateTestUser(t, s.DB, "Booker", "booker@example.com")
		itemID := dbtest.CreateTestItem(t, s.DB, ownerID, "Cordless drill", true)

		now := time.Now()
		dbtest.CreateTestBooking(t, s.DB, itemID, bookerID,
			now.Add(-72*time.Hour), now.Add(-48*time.Hour), "APPROVED")
		dbtest.CreateTestBooking(t, s.DB, itemID, bookerID,
			now.Add(-24*time.Hour), now.Add(-12*time.Hour), "REJECTED")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet,
			itemsURL+"/"+itemID.String(), nil, ownerID.String())
		require.Equal(t, http.StatusOK, w.Code)

		var view response.ItemDetailResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &view))
		require.Nil(t, view.LastBooking, "a rejected latest booking hides the slot")
	})
}

// =============================================================================
// TestSearch
// =============================================================================

func (s *ItemSuite) TestSearch() {
	s.Run("Normal case: matches name or description, available only", func() {
		t := s.T()
		ownerID := dbtest.CreateTestUser(t, s.DB, "Owner", "owner@example.com")
		searcherID := dbtest.CreateTestUser(t, s.DB, "Searcher", "searcher@example.com")

		drillID := dbtest.CreateTestItem(t, s.DB, ownerID, "Cordless DRILL", true)
		dbtest.CreateTestItem(t, s.DB, ownerID, "Ladder", true)
		dbtest.CreateTestItem(t, s.DB, ownerID, "Hammer drill", false)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet,
			itemsURL+"/search?text=drill", nil, searcherID.String())
		require.Equal(t, http.StatusOK, w.Code)

		var results []response.ItemResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &results))
		require.Len(t, results, 1, "case-insensitive match, unavailable items excluded")
		require.Equal(t, drillID, results[0].ID)
	})

	s.Run("Normal case: blank text returns an empty array", func() {
		t := s.T()
		searcherID := dbtest.CreateTestUser(t, s.DB, "Searcher", "searcher@example.com")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet,
			itemsURL+"/search?text=", nil, searcherID.String())
		require.Equal(t, http.StatusOK, w.Code)
		require.JSONEq(t, "[]", w.Body.String())
	})
}

// =============================================================================
// TestComments
// =============================================================================

func (s *ItemSuite) TestComments() {
	s.Run("Normal case: finished approved booking unlocks commenting", func() {
		t := s.T()
		ownerID := dbtest.CreateTestUser(t, s.DB, "Owner", "owner@example.com")
		bookerID := dbtest.CreateTestUser(t, s.DB, "Booker", "booker@example.com")
		itemID := dbtest.CreateTestItem(t, s.DB, ownerID, "Cordless drill", true)

		now := time.Now()
		dbtest.CreateTestBooking(t, s.DB, itemID, bookerID,
			now.Add(-48*time.Hour), now.Add(-24*time.Hour), "APPROVED")

		reqBody := request.CreateCommentRequest{Text: "Great drill, strong battery"}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			itemsURL+"/"+itemID.String()+"/comment", reqBody, bookerID.String())
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var comment response.CommentResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &comment))
		require.Equal(t, "Great drill, strong battery", comment.Text)
		require.Equal(t, "Booker", comment.AuthorName)

		// The comment shows up on the item detail for any viewer
		w = httptest.PerformRequest(t, s.Router, http.MethodGet,
			itemsURL+"/"+itemID.String(), nil, bookerID.String())
		require.Equal(t, http.StatusOK, w.Code)

		var view response.ItemDetailResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &view))
		require.Len(t, view.Comments, 1)
	})

	s.Run("Error case: pending or unfinished bookings do not unlock commenting", func() {
		t := s.T()
		ownerID := dbtest.CreateTestUser(t, s.DB, "Owner", "owner@example.com")
		bookerID := dbtest.CreateTestUser(t, s.DB, "Booker", "booker@example.com")
		itemID := dbtest.CreateTestItem(t, s.DB, ownerID, "Cordless drill", true)

		now := time.Now()
		// Finished but only WAITING, and approved but still running
		dbtest.CreateTestBooking(t, s.DB, itemID, bookerID,
			now.Add(-48*time.Hour), now.Add(-24*time.Hour), "WAITING")
		dbtest.CreateTestBooking(t, s.DB, itemID, bookerID,
			now.Add(-time.Hour), now.Add(time.Hour), "APPROVED")

		reqBody := request.CreateCommentRequest{Text: "Sneaky comment"}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			itemsURL+"/"+itemID.String()+"/comment", reqBody, bookerID.String())
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "finished approved booking")
	})
}
