package review

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/snaphire/snaphire-api/internal/domain/photographer"
)

type fakeStore struct {
	reviews map[uuid.UUID]*Review
}

func newFakeStore() *fakeStore {
	return &fakeStore{reviews: make(map[uuid.UUID]*Review)}
}

func (f *fakeStore) Create(_ context.Context, r *Review) error {
	f.reviews[r.ID] = r
	return nil
}

func (f *fakeStore) GetByID(_ context.Context, id uuid.UUID) (*Review, error) {
	return f.reviews[id], nil
}

func (f *fakeStore) ListByPhotographer(_ context.Context, photographerID uuid.UUID) ([]WithReviewer, error) {
	var out []WithReviewer
	for _, r := range f.reviews {
		if r.PhotographerID == photographerID {
			out = append(out, WithReviewer{Review: *r, ReviewerName: "Reviewer"})
		}
	}
	return out, nil
}

func (f *fakeStore) RatingCounts(_ context.Context, photographerID uuid.UUID) (map[int]int, error) {
	counts := make(map[int]int)
	for _, r := range f.reviews {
		if r.PhotographerID == photographerID {
			counts[r.Rating]++
		}
	}
	return counts, nil
}

func (f *fakeStore) Update(_ context.Context, r *Review) error {
	stored, ok := f.reviews[r.ID]
	if !ok {
		return ErrReviewNotFound
	}
	stored.Rating = r.Rating
	stored.Comment = r.Comment
	stored.UpdatedAt = time.Now()
	return nil
}

func (f *fakeStore) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.reviews, id)
	return nil
}

type fakeResolver struct {
	profile *photographer.Profile
}

func (f *fakeResolver) GetByID(_ context.Context, id uuid.UUID) (*photographer.Profile, error) {
	if f.profile != nil && f.profile.ID == id {
		return f.profile, nil
	}
	return nil, nil
}

func (f *fakeResolver) GetByUserID(_ context.Context, userID uuid.UUID) (*photographer.Profile, error) {
	if f.profile != nil && f.profile.UserID == userID {
		return f.profile, nil
	}
	return nil, nil
}

func newReviewService() (*Service, *fakeStore, *photographer.Profile) {
	profile := &photographer.Profile{ID: uuid.New(), UserID: uuid.New(), Status: photographer.StatusApproved}
	store := newFakeStore()
	return NewService(store, &fakeResolver{profile: profile}), store, profile
}

func TestCreateReview(t *testing.T) {
	svc, store, profile := newReviewService()
	clientID := uuid.New()

	review, err := svc.Create(context.Background(), clientID, profile.ID, 5, "Great session")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if review.Rating != 5 || review.ClientID != clientID {
		t.Errorf("review = %+v", review)
	}
	if len(store.reviews) != 1 {
		t.Errorf("stored reviews = %d, want 1", len(store.reviews))
	}
}

func TestCreateReviewUnknownPhotographer(t *testing.T) {
	svc, _, _ := newReviewService()

	_, err := svc.Create(context.Background(), uuid.New(), uuid.New(), 4, "")
	if !errors.Is(err, photographer.ErrProfileNotFound) {
		t.Fatalf("Create() error = %v, want ErrProfileNotFound", err)
	}
}

func TestCreateAllowsRepeatReviews(t *testing.T) {
	svc, store, profile := newReviewService()
	clientID := uuid.New()

	for _, rating := range []int{2, 4} {
		if _, err := svc.Create(context.Background(), clientID, profile.ID, rating, ""); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}
	if len(store.reviews) != 2 {
		t.Errorf("stored reviews = %d, want 2", len(store.reviews))
	}
}

func TestSummarize(t *testing.T) {
	svc, _, profile := newReviewService()

	ratings := []int{5, 5, 4, 1}
	for _, rating := range ratings {
		if _, err := svc.Create(context.Background(), uuid.New(), profile.ID, rating, ""); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	summary, err := svc.Summarize(context.Background(), profile.ID)
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}
	if summary.Count != 4 {
		t.Errorf("Count = %d, want 4", summary.Count)
	}
	if want := 15.0 / 4; summary.AverageRating != want {
		t.Errorf("AverageRating = %v, want %v", summary.AverageRating, want)
	}
	if summary.Distribution["5"] != 2 || summary.Distribution["4"] != 1 || summary.Distribution["1"] != 1 {
		t.Errorf("Distribution = %v", summary.Distribution)
	}
	if summary.Distribution["3"] != 0 {
		t.Errorf("Distribution should include zeroed ratings, got %v", summary.Distribution)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	svc, _, profile := newReviewService()

	summary, err := svc.Summarize(context.Background(), profile.ID)
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}
	if summary.AverageRating != 0.0 || summary.Count != 0 {
		t.Errorf("empty summary = %+v, want zeros", summary)
	}
	if len(summary.Distribution) != 5 {
		t.Errorf("Distribution keys = %d, want 5", len(summary.Distribution))
	}
}

func TestUpdateAuthorOnly(t *testing.T) {
	svc, _, profile := newReviewService()
	author := uuid.New()

	review, err := svc.Create(context.Background(), author, profile.ID, 3, "okay")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if _, err := svc.Update(context.Background(), uuid.New(), review.ID, 1, "hijacked"); !errors.Is(err, ErrNotAuthor) {
		t.Fatalf("Update() by stranger error = %v, want ErrNotAuthor", err)
	}

	updated, err := svc.Update(context.Background(), author, review.ID, 4, "better than I remembered")
	if err != nil {
		t.Fatalf("Update() by author error = %v", err)
	}
	if updated.Rating != 4 {
		t.Errorf("Rating = %d, want 4", updated.Rating)
	}
}

func TestDeleteAuthorOnly(t *testing.T) {
	svc, store, profile := newReviewService()
	author := uuid.New()

	review, err := svc.Create(context.Background(), author, profile.ID, 3, "")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if err := svc.Delete(context.Background(), uuid.New(), review.ID); !errors.Is(err, ErrNotAuthor) {
		t.Fatalf("Delete() by stranger error = %v, want ErrNotAuthor", err)
	}

	if err := svc.Delete(context.Background(), author, review.ID); err != nil {
		t.Fatalf("Delete() by author error = %v", err)
	}
	if len(store.reviews) != 0 {
		t.Error("review still stored after delete")
	}

	if err := svc.Delete(context.Background(), author, review.ID); !errors.Is(err, ErrReviewNotFound) {
		t.Fatalf("second Delete() error = %v, want ErrReviewNotFound", err)
	}
}
