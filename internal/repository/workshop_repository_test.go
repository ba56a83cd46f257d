package repository

import (
	"context"
	"errors"
	"testing"

	"gorm.io/gorm"

	"workshop-portal-api/internal/domain"
)

func TestWorkshopRepository_FindByIDAndOrganizer(t *testing.T) {
	db := setupTestDB(t)
	repo := NewWorkshopRepository(db)
	ctx := context.Background()

	owner := createTestUser(t, db, "omar", domain.RoleOrganizer)
	other := createTestUser(t, db, "olga", domain.RoleOrganizer)
	workshop := createTestWorkshop(t, db, owner.ID, 10)

	found, err := repo.FindByIDAndOrganizer(ctx, workshop.ID, owner.ID)
	if err != nil {
		t.Fatalf("FindByIDAndOrganizer() owner error = %v", err)
	}
	if found.ID != workshop.ID {
		t.Errorf("FindByIDAndOrganizer() id = %v, want %v", found.ID, workshop.ID)
	}

	// Another organizer's lookup behaves like the workshop does not exist
	if _, err := repo.FindByIDAndOrganizer(ctx, workshop.ID, other.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("FindByIDAndOrganizer() foreign organizer error = %v, want gorm.ErrRecordNotFound", err)
	}
}

func TestWorkshopRepository_ListByOrganizer(t *testing.T) {
	db := setupTestDB(t)
	repo := NewWorkshopRepository(db)
	ctx := context.Background()

	owner := createTestUser(t, db, "omar", domain.RoleOrganizer)
	other := createTestUser(t, db, "olga", domain.RoleOrganizer)
	createTestWorkshop(t, db, owner.ID, 10)
	createTestWorkshop(t, db, owner.ID, 20)
	createTestWorkshop(t, db, other.ID, 30)

	workshops, err := repo.ListByOrganizer(ctx, owner.ID)
	if err != nil {
		t.Fatalf("ListByOrganizer() error = %v", err)
	}
	if len(workshops) != 2 {
		t.Errorf("ListByOrganizer() returned %d workshops, want 2", len(workshops))
	}
}
