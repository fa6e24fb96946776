package profile

import (
	"context"
	"testing"

	gormsqlite "github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(gormsqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&Identity{}, &CurrentState{}, &Skill{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

func TestGormStore_AbsenceIsNotAnError(t *testing.T) {
	db := openTestDB(t)
	store := NewGormStore(db)
	ctx := context.Background()

	id, err := store.Identity(ctx, "nobody")
	if err != nil {
		t.Fatalf("identity: %v", err)
	}
	if id != nil {
		t.Fatalf("expected nil identity, got %+v", id)
	}

	st, err := store.CurrentState(ctx, "nobody")
	if err != nil {
		t.Fatalf("current state: %v", err)
	}
	if st != nil {
		t.Fatalf("expected nil state, got %+v", st)
	}

	skills, err := store.SkillNames(ctx, "nobody")
	if err != nil {
		t.Fatalf("skills: %v", err)
	}
	if len(skills) != 0 {
		t.Fatalf("expected no skills, got %v", skills)
	}
}

func TestGormStore_PartialProfile(t *testing.T) {
	db := openTestDB(t)
	store := NewGormStore(db)
	ctx := context.Background()

	if err := db.Create(&Identity{ID: "u1", Name: "Ada"}).Error; err != nil {
		t.Fatalf("seed identity: %v", err)
	}
	// no current_state row on purpose
	for _, s := range []string{"Go", "SQL"} {
		if err := db.Create(&Skill{UserID: "u1", Name: s}).Error; err != nil {
			t.Fatalf("seed skill: %v", err)
		}
	}

	id, err := store.Identity(ctx, "u1")
	if err != nil || id == nil {
		t.Fatalf("identity: %v, %+v", err, id)
	}
	if id.Name != "Ada" {
		t.Fatalf("unexpected name %q", id.Name)
	}

	st, err := store.CurrentState(ctx, "u1")
	if err != nil {
		t.Fatalf("current state: %v", err)
	}
	if st != nil {
		t.Fatalf("expected missing state to be nil, got %+v", st)
	}

	skills, err := store.SkillNames(ctx, "u1")
	if err != nil {
		t.Fatalf("skills: %v", err)
	}
	if len(skills) != 2 || skills[0] != "Go" || skills[1] != "SQL" {
		t.Fatalf("unexpected skills %v", skills)
	}
}
