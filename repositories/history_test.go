package repositories

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func Test_Offers_are_returned_in_chronological_order_since_cutoff(t *testing.T) {
	req := require.New(t)
	repo := NewHistoryRepository(openTestDB(t), slog.Default())

	base := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	_, err := repo.AppendOffer("alice", base, nil)
	req.NoError(err)
	_, err = repo.AppendOffer("bob", base.Add(48*time.Hour), nil)
	req.NoError(err)
	_, err = repo.AppendOffer("alice", base.Add(96*time.Hour), nil)
	req.NoError(err)

	offers, err := repo.OffersSince(base.Add(24 * time.Hour))
	req.NoError(err)
	req.Len(offers, 2)
	req.Equal("bob", offers[0].ServerID)
	req.Equal("alice", offers[1].ServerID)
	req.True(offers[0].At.Before(offers[1].At))
}

func Test_Offers_exactly_at_the_cutoff_are_excluded(t *testing.T) {
	req := require.New(t)
	repo := NewHistoryRepository(openTestDB(t), slog.Default())

	cutoff := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	_, err := repo.AppendOffer("alice", cutoff, nil)
	req.NoError(err)

	offers, err := repo.OffersSince(cutoff)
	req.NoError(err)
	req.Empty(offers)
}

func Test_TallySince_counts_one_unit_per_offer_plus_one_per_guest(t *testing.T) {
	req := require.New(t)
	repo := NewHistoryRepository(openTestDB(t), slog.Default())

	base := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)

	// Alice offered twice; Bob joined her first round. Bob offered once
	// with no guests.
	first, err := repo.AppendOffer("alice", base.Add(time.Hour), nil)
	req.NoError(err)
	req.NoError(repo.AppendParticipation(first, "bob"))

	_, err = repo.AppendOffer("alice", base.Add(2*time.Hour), nil)
	req.NoError(err)
	_, err = repo.AppendOffer("bob", base.Add(3*time.Hour), nil)
	req.NoError(err)

	units, err := repo.TallySince(base)
	req.NoError(err)
	req.Equal(map[string]int{"alice": 3, "bob": 1}, units)
}

func Test_TallySince_ignores_offers_before_the_cutoff(t *testing.T) {
	req := require.New(t)
	repo := NewHistoryRepository(openTestDB(t), slog.Default())

	base := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)

	old, err := repo.AppendOffer("alice", base.Add(-time.Hour), nil)
	req.NoError(err)
	req.NoError(repo.AppendParticipation(old, "bob"))

	_, err = repo.AppendOffer("bob", base.Add(time.Hour), nil)
	req.NoError(err)

	units, err := repo.TallySince(base)
	req.NoError(err)
	req.Equal(map[string]int{"bob": 1}, units)
}

func Test_AppendParticipation_is_idempotent_per_guest(t *testing.T) {
	req := require.New(t)
	repo := NewHistoryRepository(openTestDB(t), slog.Default())

	base := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	offerID, err := repo.AppendOffer("alice", base.Add(time.Hour), nil)
	req.NoError(err)

	// A retried write lands on the same key.
	req.NoError(repo.AppendParticipation(offerID, "bob"))
	req.NoError(repo.AppendParticipation(offerID, "bob"))

	units, err := repo.TallySince(base)
	req.NoError(err)
	req.Equal(map[string]int{"alice": 2}, units)
}
