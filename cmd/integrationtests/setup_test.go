package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	auction "auction-market/internal/auctionService"
	bidding "auction-market/internal/biddingService"
	messaging "auction-market/internal/messagingService"
	model "auction-market/internal/models"
	"auction-market/internal/repository"
	"auction-market/internal/server"
	"auction-market/utils"

	"github.com/gin-gonic/gin"
)

// SetupTestRouter wires the full service stack over an in-memory
// repository and returns both, so tests can seed state directly.
func SetupTestRouter() (*gin.Engine, *repository.MemoryRepo) {
	gin.SetMode(gin.TestMode)
	repo := repository.NewMemoryRepo()

	auctionSvc := auction.NewAuctionService(repo, repo)
	biddingSvc := bidding.NewBiddingService(repo, repo)
	messagingSvc := messaging.NewMessagingService(repo, repo, biddingSvc)

	router := server.SetupRouter(auctionSvc, biddingSvc, messagingSvc)
	return router, repo
}

// SetupTestRouterWithAuctions seeds the repo with auctions before returning.
func SetupTestRouterWithAuctions(auctions ...model.Auction) (*gin.Engine, *repository.MemoryRepo) {
	router, repo := SetupTestRouter()
	for _, a := range auctions {
		repo.AddAuction(a)
	}
	return router, repo
}

// ExecuteRequest executes an HTTP request as the given user and returns the
// response recorder. An empty user sends no identity header.
func ExecuteRequest(t *testing.T, router *gin.Engine, method, url, user string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, url, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if user != "" {
		req.Header.Set(utils.IdentityHeader, user)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// ExecuteRequestAndParse executes an HTTP request on the given router and parses the response
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url, user string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	var err error

	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	case string:
		reqBody = []byte(v)
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := ExecuteRequest(t, router, method, url, user, reqBody)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
		if w.Code == 201 {
			resp = resp["data"].(map[string]any)
		}
	}

	return resp, w
}
