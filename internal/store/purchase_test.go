package store

import (
	"context"
	"testing"

	"github.com/google/uuid"
)

// Helper functions for creating test data

func createTestMember(t *testing.T, testDB *TestDB, sponsorID *uuid.UUID, isPaid bool) Member {
	t.Helper()
	member, err := testDB.Store.CreateMember(context.Background(), CreateMemberParams{
		SponsorID: sponsorID,
		IsPaid:    isPaid,
	})
	if err != nil {
		t.Fatalf("failed to create member: %v", err)
	}
	return member
}

func createTestPurchase(t *testing.T, testDB *TestDB, buyerID uuid.UUID, amount float64) Purchase {
	t.Helper()
	purchase, err := testDB.Store.CreatePurchase(context.Background(), CreatePurchaseParams{
		BuyerID:        buyerID,
		CreditedAmount: amount,
	})
	if err != nil {
		t.Fatalf("failed to create purchase: %v", err)
	}
	return purchase
}

func TestStore_CreatePurchase(t *testing.T) {
	testDB := SetupTestDB(t, TestDBTypePostgres)
	defer testDB.Close()

	ctx := context.Background()
	testDB.Truncate(t)

	buyer := createTestMember(t, testDB, nil, false)

	purchase, err := testDB.Store.CreatePurchase(ctx, CreatePurchaseParams{
		BuyerID:        buyer.ID,
		CreditedAmount: 100,
	})
	if err != nil {
		t.Fatalf("CreatePurchase() error = %v", err)
	}
	if purchase.Status != PurchaseStatusPendingVerification {
		t.Errorf("Status = %v, want %v", purchase.Status, PurchaseStatusPendingVerification)
	}
	if purchase.CompletedAt != nil {
		t.Errorf("CompletedAt = %v, want nil", purchase.CompletedAt)
	}
}

func TestStore_ClaimPurchase(t *testing.T) {
	testDB := SetupTestDB(t, TestDBTypePostgres)
	defer testDB.Close()

	ctx := context.Background()

	tests := []struct {
		name        string
		setup       func(t *testing.T) uuid.UUID
		wantClaimed bool
	}{
		{
			name: "claim pending purchase",
			setup: func(t *testing.T) uuid.UUID {
				t.Helper()
				buyer := createTestMember(t, testDB, nil, false)
				return createTestPurchase(t, testDB, buyer.ID, 100).ID
			},
			wantClaimed: true,
		},
		{
			name: "second claim loses",
			setup: func(t *testing.T) uuid.UUID {
				t.Helper()
				buyer := createTestMember(t, testDB, nil, false)
				purchase := createTestPurchase(t, testDB, buyer.ID, 100)
				if _, err := testDB.Store.ClaimPurchase(ctx, purchase.ID); err != nil {
					t.Fatalf("failed to claim purchase: %v", err)
				}
				return purchase.ID
			},
			wantClaimed: false,
		},
		{
			name: "purchase does not exist",
			setup: func(t *testing.T) uuid.UUID {
				return uuid.New()
			},
			wantClaimed: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testDB.Truncate(t)
			purchaseID := tt.setup(t)

			claimed, err := testDB.Store.ClaimPurchase(ctx, purchaseID)
			if err != nil {
				t.Fatalf("ClaimPurchase() error = %v", err)
			}
			if claimed != tt.wantClaimed {
				t.Errorf("ClaimPurchase() = %v, want %v", claimed, tt.wantClaimed)
			}

			if tt.wantClaimed {
				purchase, err := testDB.Store.GetPurchaseByID(ctx, purchaseID)
				if err != nil {
					t.Fatalf("failed to reload purchase: %v", err)
				}
				if purchase.Status != PurchaseStatusCompleted {
					t.Errorf("Status = %v, want %v", purchase.Status, PurchaseStatusCompleted)
				}
				if purchase.CompletedAt == nil {
					t.Errorf("CompletedAt = nil, want set")
				}
			}
		})
	}
}
