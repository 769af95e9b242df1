package registry

import (
	"errors"
	"testing"

	"github.com/riftbroker/rift/internal/domain"
)

func TestCreateTopicRejectsDuplicateAndEmptyName(t *testing.T) {
	r := New()
	if _, err := r.CreateTopic("t"); err != nil {
		t.Fatalf("unexpected error creating topic: %v", err)
	}
	if _, err := r.CreateTopic("t"); !errors.Is(err, domain.ErrTopicAlreadyExists) {
		t.Fatalf("expected ErrTopicAlreadyExists, got %v", err)
	}
	if _, err := r.CreateTopic(""); !errors.Is(err, domain.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestGetTopicNotFound(t *testing.T) {
	r := New()
	if _, err := r.GetTopic("missing"); !errors.Is(err, domain.ErrTopicNotFound) {
		t.Fatalf("expected ErrTopicNotFound, got %v", err)
	}
}

func TestCreateSubscriptionRequiresExistingTopic(t *testing.T) {
	r := New()
	if _, err := r.CreateSubscription("missing", "s"); !errors.Is(err, domain.ErrTopicNotFound) {
		t.Fatalf("expected ErrTopicNotFound, got %v", err)
	}

	r.CreateTopic("t")
	if _, err := r.CreateSubscription("t", "s"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := r.CreateSubscription("t", "s"); !errors.Is(err, domain.ErrSubscriptionAlreadyExists) {
		t.Fatalf("expected ErrSubscriptionAlreadyExists, got %v", err)
	}
}

func TestDeleteTopicCascadesSubscriptions(t *testing.T) {
	r := New()
	r.CreateTopic("t")
	r.CreateSubscription("t", "a")
	r.CreateSubscription("t", "b")

	removed, err := r.DeleteTopic("t")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(removed) != 2 {
		t.Fatalf("expected 2 removed subscriptions, got %v", removed)
	}
	if _, err := r.GetSubscription("t", "a"); !errors.Is(err, domain.ErrSubscriptionNotFound) {
		t.Fatal("expected subscription a to be gone after cascade delete")
	}
	if _, err := r.GetTopic("t"); !errors.Is(err, domain.ErrTopicNotFound) {
		t.Fatal("expected topic to be gone")
	}
}

func TestListSubscriptionsFiltersByTopic(t *testing.T) {
	r := New()
	r.CreateTopic("t1")
	r.CreateTopic("t2")
	r.CreateSubscription("t1", "a")
	r.CreateSubscription("t2", "b")

	if got := r.ListSubscriptions("t1"); len(got) != 1 {
		t.Fatalf("expected 1 subscription under t1, got %d", len(got))
	}
	if got := r.ListSubscriptions(""); len(got) != 2 {
		t.Fatalf("expected 2 subscriptions with no filter, got %d", len(got))
	}
}

func TestUpdateTopicRefreshesTimestamp(t *testing.T) {
	r := New()
	topic, _ := r.CreateTopic("t")
	updated, err := r.UpdateTopic("t")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !updated.Updated.After(topic.Created) && !updated.Updated.Equal(topic.Created) {
		t.Fatal("expected Updated to be refreshed")
	}
}

func TestDeleteSubscriptionNotFound(t *testing.T) {
	r := New()
	r.CreateTopic("t")
	if err := r.DeleteSubscription("t", "missing"); !errors.Is(err, domain.ErrSubscriptionNotFound) {
		t.Fatalf("expected ErrSubscriptionNotFound, got %v", err)
	}
}

func TestSubscriptionQueueAndTopicStoreAreIsolatedPerEntity(t *testing.T) {
	r := New()
	r.CreateTopic("t")
	r.CreateSubscription("t", "a")
	r.CreateSubscription("t", "b")

	qa, err := r.SubscriptionQueue("t", "a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	qb, err := r.SubscriptionQueue("t", "b")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if qa == qb {
		t.Fatal("expected distinct queues per subscription")
	}
}
