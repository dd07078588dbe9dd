//go:build e2e

package request_test

import (
	"net/http"
	"testing"

	reqdto "shareit/internal/handler/dto/request"
	"shareit/internal/handler/dto/response"
	"shareit/tests/common/dbtest"
	"shareit/tests/common/httptest"
	"shareit/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const requestsURL = "/requests"

type RequestSuite struct {
	e2e.SharedSuite
}

func TestRequestSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(RequestSuite))
}

func (s *RequestSuite) createRequest(t *testing.T, requesterID uuid.UUID, description string) response.ItemRequestResponse {
	t.Helper()

	reqBody := reqdto.CreateItemRequestRequest{Description: description}
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, requestsURL, reqBody, requesterID.String())
	require.Equal(t, http.StatusCreated, w.Code, "request creation failed: %s", w.Body.String())

	var created response.ItemRequestResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
	return created
}

func (s *RequestSuite) TestRequestFlow() {
	s.Run("Normal case: request is answered by an item", func() {
		t := s.T()
		requesterID := dbtest.CreateTestUser(t, s.DB, "Requester", "requester@example.com")
		ownerID := dbtest.CreateTestUser(t, s.DB, "Owner", "owner@example.com")

		created := s.createRequest(t, requesterID, "Need a cordless drill for the weekend")
		require.Equal(t, "Need a cordless drill for the weekend", created.Description)
		require.Empty(t, created.Items)

		// Owner answers the request with an item
		available := true
		itemReq := reqdto.CreateItemRequest{
			Name:        "Cordless drill",
			Description: "18V drill with two batteries",
			Available:   &available,
			RequestID:   &created.ID,
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/items", itemReq, ownerID.String())
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		// The answering item now rides along with the request
		w = httptest.PerformRequest(t, s.Router, http.MethodGet,
			requestsURL+"/"+created.ID.String(), nil, requesterID.String())
		require.Equal(t, http.StatusOK, w.Code)

		var detail response.ItemRequestResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &detail))
		require.Len(t, detail.Items, 1)
		require.Equal(t, "Cordless drill", detail.Items[0].Name)
	})

	s.Run("Normal case: own and others' requests are separate lists", func() {
		t := s.T()
		requesterID := dbtest.CreateTestUser(t, s.DB, "Requester", "requester@example.com")
		otherID := dbtest.CreateTestUser(t, s.DB, "Other", "other@example.com")

		own := s.createRequest(t, requesterID, "Need a ladder")
		foreign := s.createRequest(t, otherID, "Need a tile cutter")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, requestsURL, nil, requesterID.String())
		require.Equal(t, http.StatusOK, w.Code)
		var ownList []response.ItemRequestResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &ownList))
		require.Len(t, ownList, 1)
		require.Equal(t, own.ID, ownList[0].ID)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, requestsURL+"/all", nil, requesterID.String())
		require.Equal(t, http.StatusOK, w.Code)
		var allList []response.ItemRequestResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &allList))
		require.Len(t, allList, 1, "the all listing excludes the caller's own requests")
		require.Equal(t, foreign.ID, allList[0].ID)
	})

	s.Run("Error case: unknown requester yields 404", func() {
		t := s.T()
		reqBody := reqdto.CreateItemRequestRequest{Description: "Need anything"}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, requestsURL, reqBody, uuid.New().String())
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "User not found")
	})

	s.Run("Error case: missing request yields 404", func() {
		t := s.T()
		requesterID := dbtest.CreateTestUser(t, s.DB, "Requester", "requester@example.com")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet,
			requestsURL+"/"+uuid.New().String(), nil, requesterID.String())
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Item request not found")
	})
}
