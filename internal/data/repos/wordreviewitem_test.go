package repos

import (
	"context"
	"testing"
	"time"

	"github.com/yungbote/kotoba-backend/internal/data/repos/testutil"
)

func TestWordReviewItemRepoTallies(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	ctx := context.Background()
	repo := NewWordReviewItemRepo(db, testutil.Logger(t))

	g := testutil.SeedGroup(t, ctx, tx, "Verbs")
	a := testutil.SeedActivity(t, ctx, tx, "quiz")
	s := testutil.SeedSession(t, ctx, tx, g.ID, a.ID, time.Now().UTC())

	w1 := testutil.SeedWord(t, ctx, tx, "行く", "iku", "to go")
	w2 := testutil.SeedWord(t, ctx, tx, "見る", "miru", "to see")
	w3 := testutil.SeedWord(t, ctx, tx, "飲む", "nomu", "to drink")

	// w1: 2 correct, 1 wrong; w2: 1 wrong; w3: nothing.
	testutil.SeedReview(t, ctx, tx, w1.ID, s.ID, true)
	testutil.SeedReview(t, ctx, tx, w1.ID, s.ID, true)
	testutil.SeedReview(t, ctx, tx, w1.ID, s.ID, false)
	testutil.SeedReview(t, ctx, tx, w2.ID, s.ID, false)

	if got, err := repo.CountByWordID(ctx, tx, w1.ID, true); err != nil || got != 2 {
		t.Fatalf("CountByWordID correct: err=%v got=%d", err, got)
	}
	if got, err := repo.CountByWordID(ctx, tx, w1.ID, false); err != nil || got != 1 {
		t.Fatalf("CountByWordID wrong: err=%v got=%d", err, got)
	}
	if got, err := repo.CountByWordID(ctx, tx, w3.ID, true); err != nil || got != 0 {
		t.Fatalf("CountByWordID unreviewed: err=%v got=%d", err, got)
	}

	bulk, err := repo.CountByWordIDs(ctx, tx, []uint{w1.ID, w2.ID, w3.ID})
	if err != nil {
		t.Fatalf("CountByWordIDs: %v", err)
	}
	if bulk[w1.ID] != (ReviewCounts{Correct: 2, Wrong: 1}) {
		t.Fatalf("CountByWordIDs w1: got %+v", bulk[w1.ID])
	}
	if bulk[w2.ID] != (ReviewCounts{Correct: 0, Wrong: 1}) {
		t.Fatalf("CountByWordIDs w2: got %+v", bulk[w2.ID])
	}
	if bulk[w3.ID] != (ReviewCounts{}) {
		t.Fatalf("CountByWordIDs w3: got %+v", bulk[w3.ID])
	}

	// Bulk and per-id strategies must agree for any id set.
	for id, tally := range bulk {
		correct, err := repo.CountByWordID(ctx, tx, id, true)
		if err != nil {
			t.Fatalf("CountByWordID %d: %v", id, err)
		}
		wrong, err := repo.CountByWordID(ctx, tx, id, false)
		if err != nil {
			t.Fatalf("CountByWordID %d: %v", id, err)
		}
		if correct != tally.Correct || wrong != tally.Wrong {
			t.Fatalf("strategy mismatch for %d: per-id (%d,%d) bulk %+v", id, correct, wrong, tally)
		}
	}

	if got, err := repo.CountBySessionID(ctx, tx, s.ID); err != nil || got != 4 {
		t.Fatalf("CountBySessionID: err=%v got=%d", err, got)
	}
	sessionBulk, err := repo.CountBySessionIDs(ctx, tx, []uint{s.ID, 999})
	if err != nil || sessionBulk[s.ID] != 4 || sessionBulk[999] != 0 {
		t.Fatalf("CountBySessionIDs: err=%v got=%v", err, sessionBulk)
	}

	if got, err := repo.Count(ctx, tx); err != nil || got != 4 {
		t.Fatalf("Count: err=%v got=%d", err, got)
	}
	if got, err := repo.CountCorrect(ctx, tx); err != nil || got != 2 {
		t.Fatalf("CountCorrect: err=%v got=%d", err, got)
	}
}
