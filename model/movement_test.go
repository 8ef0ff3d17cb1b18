package model_test

import (
	"testing"

	"github.com/muhammadheryan/inventory-ledger/constant"
	"github.com/muhammadheryan/inventory-ledger/model"
)

func TestMovementEntity_ComputeHash(t *testing.T) {
	transferID := uint64(9)

	base := func() *model.MovementEntity {
		return &model.MovementEntity{
			ItemID:     1,
			LocationID: 2,
			BucketType: constant.BucketAvailable,
			Quantity:   5,
			Note:       "restock",
			TransferID: &transferID,
		}
	}

	t.Run("deterministic", func(t *testing.T) {
		a, b := base(), base()
		if a.ComputeHash() != b.ComputeHash() {
			t.Fatal("identical movements must hash identically")
		}
		if len(a.ComputeHash()) != 64 {
			t.Fatalf("hash length = %d, want 64", len(a.ComputeHash()))
		}
	})

	t.Run("every field participates", func(t *testing.T) {
		ref := base().ComputeHash()
		mutations := map[string]func(m *model.MovementEntity){
			"item":     func(m *model.MovementEntity) { m.ItemID = 99 },
			"location": func(m *model.MovementEntity) { m.LocationID = 99 },
			"bucket":   func(m *model.MovementEntity) { m.BucketType = constant.BucketDamaged },
			"quantity": func(m *model.MovementEntity) { m.Quantity = -5 },
			"note":     func(m *model.MovementEntity) { m.Note = "recount" },
			"transfer": func(m *model.MovementEntity) { m.TransferID = nil },
			"order":    func(m *model.MovementEntity) { id := uint64(3); m.OrderID = &id },
			"user":     func(m *model.MovementEntity) { id := uint64(4); m.UserID = &id },
		}
		for name, mutate := range mutations {
			m := base()
			mutate(m)
			if m.ComputeHash() == ref {
				t.Fatalf("changing %s did not change the hash", name)
			}
		}
	})

	t.Run("nil and zero references differ", func(t *testing.T) {
		withNil := base()
		withNil.TransferID = nil
		zero := uint64(0)
		withZero := base()
		withZero.TransferID = &zero
		if withNil.ComputeHash() == withZero.ComputeHash() {
			t.Fatal("nil reference must hash differently from a zero reference")
		}
	})
}
