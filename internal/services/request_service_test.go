package services

import (
	"testing"
	"time"

	"github.com/kheireldine/ai-investor-portal/internal/models"
	"github.com/kheireldine/ai-investor-portal/internal/testutil"
)

func TestCreateRequest(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewRequestService(db)

		investor := testutil.CreateTestInvestor(t, db)
		before := time.Now().UTC()
		request, err := svc.CreateRequest(investor.ID, "deposit", 250.50)
		testutil.AssertNoError(t, err)

		if request.ID == 0 {
			t.Fatal("expected non-zero request ID")
		}
		if request.Status != models.RequestStatusPending {
			t.Errorf("expected status pending, got %s", request.Status)
		}
		if request.Type != "deposit" || request.Amount != 250.50 {
			t.Errorf("unexpected request: %+v", request)
		}
		if request.Timestamp.Before(before.Add(-time.Second)) || request.Timestamp.After(time.Now().UTC().Add(time.Second)) {
			t.Errorf("timestamp %v not close to now", request.Timestamp)
		}
	})

	t.Run("empty_type", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewRequestService(db)

		investor := testutil.CreateTestInvestor(t, db)
		_, err := svc.CreateRequest(investor.ID, "", 100)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestListRequests(t *testing.T) {
	t.Run("creation_order", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewRequestService(db)

		investor := testutil.CreateTestInvestor(t, db)
		for _, r := range []struct {
			kind   string
			amount float64
		}{
			{"deposit", 100},
			{"withdrawal", 50},
			{"deposit", 25},
		} {
			_, err := svc.CreateRequest(investor.ID, r.kind, r.amount)
			testutil.AssertNoError(t, err)
		}

		requests, err := svc.ListRequests(investor.ID)
		testutil.AssertNoError(t, err)

		if len(requests) != 3 {
			t.Fatalf("expected 3 requests, got %d", len(requests))
		}
		wantTypes := []string{"deposit", "withdrawal", "deposit"}
		wantAmounts := []float64{100, 50, 25}
		for i, request := range requests {
			if request.Type != wantTypes[i] || request.Amount != wantAmounts[i] {
				t.Errorf("request %d: got %s/%v, want %s/%v", i, request.Type, request.Amount, wantTypes[i], wantAmounts[i])
			}
			if request.Status != models.RequestStatusPending {
				t.Errorf("request %d: expected pending, got %s", i, request.Status)
			}
		}
	})

	t.Run("scoped_to_owner", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewRequestService(db)

		owner := testutil.CreateTestInvestor(t, db)
		other := testutil.CreateTestInvestor(t, db)
		testutil.CreateTestCapitalRequest(t, db, owner.ID, "deposit", 100)
		testutil.CreateTestCapitalRequest(t, db, other.ID, "withdrawal", 900)

		requests, err := svc.ListRequests(owner.ID)
		testutil.AssertNoError(t, err)

		if len(requests) != 1 {
			t.Fatalf("expected 1 request, got %d", len(requests))
		}
		if requests[0].Type != "deposit" {
			t.Errorf("expected deposit, got %s", requests[0].Type)
		}
	})

	t.Run("empty", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewRequestService(db)

		investor := testutil.CreateTestInvestor(t, db)
		requests, err := svc.ListRequests(investor.ID)
		testutil.AssertNoError(t, err)

		if len(requests) != 0 {
			t.Errorf("expected no requests, got %d", len(requests))
		}
	})
}
