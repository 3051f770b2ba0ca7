package repos

import (
	"context"
	"testing"

	"github.com/yungbote/kotoba-backend/internal/data/repos/testutil"
)

func TestGroupRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	ctx := context.Background()
	repo := NewGroupRepo(db, testutil.Logger(t))

	g1 := testutil.SeedGroup(t, ctx, tx, "Core Verbs")
	g2 := testutil.SeedGroup(t, ctx, tx, "Core Adjectives")

	if got, err := repo.Count(ctx, tx); err != nil || got != 2 {
		t.Fatalf("Count: err=%v got=%d", err, got)
	}

	rows, err := repo.List(ctx, tx, 0, 10)
	if err != nil || len(rows) != 2 || rows[0].ID != g1.ID {
		t.Fatalf("List: err=%v len=%d", err, len(rows))
	}

	if got, err := repo.GetByID(ctx, tx, g2.ID); err != nil || got == nil || got.Name != "Core Adjectives" {
		t.Fatalf("GetByID: err=%v got=%+v", err, got)
	}
	if got, err := repo.GetByID(ctx, tx, 424242); err != nil || got != nil {
		t.Fatalf("GetByID missing: err=%v got=%+v", err, got)
	}

	byIDs, err := repo.GetByIDs(ctx, tx, []uint{g1.ID, g2.ID})
	if err != nil || len(byIDs) != 2 {
		t.Fatalf("GetByIDs: err=%v len=%d", err, len(byIDs))
	}
	if byIDs, err = repo.GetByIDs(ctx, tx, nil); err != nil || len(byIDs) != 0 {
		t.Fatalf("GetByIDs empty: err=%v len=%d", err, len(byIDs))
	}

	w := testutil.SeedWord(t, ctx, tx, "食べる", "taberu", "to eat")
	testutil.LinkWordToGroup(t, ctx, tx, w.ID, g1.ID)
	testutil.LinkWordToGroup(t, ctx, tx, w.ID, g2.ID)

	wordGroups, err := repo.GetByWordID(ctx, tx, w.ID)
	if err != nil || len(wordGroups) != 2 {
		t.Fatalf("GetByWordID: err=%v len=%d", err, len(wordGroups))
	}
	if wordGroups[0].ID != g1.ID || wordGroups[1].ID != g2.ID {
		t.Fatalf("GetByWordID order: got %d,%d", wordGroups[0].ID, wordGroups[1].ID)
	}
}

func TestWordGroupRepoCounts(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	ctx := context.Background()
	repo := NewWordGroupRepo(db, testutil.Logger(t))

	g1 := testutil.SeedGroup(t, ctx, tx, "Nouns")
	g2 := testutil.SeedGroup(t, ctx, tx, "Particles")
	w1 := testutil.SeedWord(t, ctx, tx, "水", "mizu", "water")
	w2 := testutil.SeedWord(t, ctx, tx, "山", "yama", "mountain")
	testutil.LinkWordToGroup(t, ctx, tx, w1.ID, g1.ID)
	testutil.LinkWordToGroup(t, ctx, tx, w2.ID, g1.ID)

	if got, err := repo.CountByGroupID(ctx, tx, g1.ID); err != nil || got != 2 {
		t.Fatalf("CountByGroupID: err=%v got=%d", err, got)
	}
	if got, err := repo.CountByGroupID(ctx, tx, g2.ID); err != nil || got != 0 {
		t.Fatalf("CountByGroupID empty group: err=%v got=%d", err, got)
	}

	bulk, err := repo.CountByGroupIDs(ctx, tx, []uint{g1.ID, g2.ID})
	if err != nil {
		t.Fatalf("CountByGroupIDs: %v", err)
	}
	if bulk[g1.ID] != 2 || bulk[g2.ID] != 0 {
		t.Fatalf("CountByGroupIDs: got %v", bulk)
	}
	if _, ok := bulk[g2.ID]; !ok {
		t.Fatalf("CountByGroupIDs must include zero-count ids")
	}
}
