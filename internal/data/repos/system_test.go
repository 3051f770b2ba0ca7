package repos

import (
	"context"
	"testing"
	"time"

	"github.com/yungbote/kotoba-backend/internal/data/repos/testutil"
)

func TestSystemRepoResets(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	ctx := context.Background()
	repo := NewSystemRepo(db, testutil.Logger(t))
	words := NewWordRepo(db, testutil.Logger(t))
	groups := NewGroupRepo(db, testutil.Logger(t))
	sessions := NewStudySessionRepo(db, testutil.Logger(t))
	reviews := NewWordReviewItemRepo(db, testutil.Logger(t))

	seed := func() {
		g := testutil.SeedGroup(t, ctx, tx, "Seeded")
		w := testutil.SeedWord(t, ctx, tx, "本", "hon", "book")
		testutil.LinkWordToGroup(t, ctx, tx, w.ID, g.ID)
		a := testutil.SeedActivity(t, ctx, tx, "flashcards")
		s := testutil.SeedSession(t, ctx, tx, g.ID, a.ID, time.Now().UTC())
		testutil.SeedReview(t, ctx, tx, w.ID, s.ID, true)
	}

	seed()

	if err := repo.ResetHistory(ctx, tx); err != nil {
		t.Fatalf("ResetHistory: %v", err)
	}
	if got, _ := reviews.Count(ctx, tx); got != 0 {
		t.Fatalf("ResetHistory left %d reviews", got)
	}
	if got, _ := sessions.Count(ctx, tx); got != 0 {
		t.Fatalf("ResetHistory left %d sessions", got)
	}
	// Vocabulary survives a history reset.
	if got, _ := words.Count(ctx, tx); got != 1 {
		t.Fatalf("ResetHistory removed words: %d", got)
	}
	if got, _ := groups.Count(ctx, tx); got != 1 {
		t.Fatalf("ResetHistory removed groups: %d", got)
	}

	if err := repo.FullReset(ctx, tx); err != nil {
		t.Fatalf("FullReset: %v", err)
	}
	if got, _ := words.Count(ctx, tx); got != 0 {
		t.Fatalf("FullReset left %d words", got)
	}
	if got, _ := groups.Count(ctx, tx); got != 0 {
		t.Fatalf("FullReset left %d groups", got)
	}

	// The store is reusable after a full reset.
	seed()
	if got, _ := words.Count(ctx, tx); got != 1 {
		t.Fatalf("reseed after FullReset: %d words", got)
	}
}
