package repositories

import (
	"log/slog"
	"testing"

	"brewbot/domain"
	"brewbot/errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *badger.DB {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func Test_FindOrCreate_creates_once_then_returns_existing(t *testing.T) {
	req := require.New(t)
	repo := NewParticipantRepository(openTestDB(t), slog.Default())

	created, err := repo.FindOrCreate("42", domain.Participant{Username: "alice", RealName: "Alice A"})
	req.NoError(err)
	req.Equal("42", created.ID)
	req.False(created.Registered())

	_, err = repo.SetPreference("42", "milky tea")
	req.NoError(err)

	// A later contact must not reset what we already know.
	again, err := repo.FindOrCreate("42", domain.Participant{Username: "alice-renamed"})
	req.NoError(err)
	req.Equal("alice", again.Username)
	req.Equal("milky tea", again.Preference)
	req.True(again.Registered())
}

func Test_FindByID_unknown_participant(t *testing.T) {
	repo := NewParticipantRepository(openTestDB(t), slog.Default())

	_, err := repo.FindByID("nobody")

	require.ErrorIs(t, err, errors.ErrNotFound)
}

func Test_FindByUsername_is_case_insensitive_and_skips_deleted(t *testing.T) {
	req := require.New(t)
	repo := NewParticipantRepository(openTestDB(t), slog.Default())

	_, err := repo.FindOrCreate("1", domain.Participant{Username: "Alice"})
	req.NoError(err)
	_, err = repo.FindOrCreate("2", domain.Participant{Username: "bob", Deleted: true})
	req.NoError(err)

	found, err := repo.FindByUsername("alice")
	req.NoError(err)
	req.Equal("1", found.ID)

	_, err = repo.FindByUsername("bob")
	req.ErrorIs(err, errors.ErrNotFound)
}

func Test_IncrementCounters_applies_all_deltas_atomically(t *testing.T) {
	req := require.New(t)
	repo := NewParticipantRepository(openTestDB(t), slog.Default())

	_, err := repo.FindOrCreate("1", domain.Participant{Username: "alice"})
	req.NoError(err)

	updated, err := repo.IncrementCounters("1", map[string]int{
		domain.CounterBrewed:   3,
		domain.CounterConsumed: 1,
		domain.CounterRounds:   1,
	})
	req.NoError(err)
	req.Equal(3, updated.Brewed)
	req.Equal(1, updated.Consumed)
	req.Equal(1, updated.Rounds)
	req.Equal(0, updated.Received)

	updated, err = repo.IncrementCounters("1", map[string]int{domain.CounterReceived: 1})
	req.NoError(err)
	req.Equal(3, updated.Brewed)
	req.Equal(1, updated.Received)
}

func Test_IncrementCounters_rejects_unknown_fields(t *testing.T) {
	req := require.New(t)
	repo := NewParticipantRepository(openTestDB(t), slog.Default())

	_, err := repo.FindOrCreate("1", domain.Participant{Username: "alice"})
	req.NoError(err)

	_, err = repo.IncrementCounters("1", map[string]int{"teapots": 1})
	req.Error(err)
}

func Test_SetRank_and_ResetRanks(t *testing.T) {
	req := require.New(t)
	repo := NewParticipantRepository(openTestDB(t), slog.Default())

	for _, id := range []string{"1", "2", "3"} {
		_, err := repo.FindOrCreate(id, domain.Participant{Username: "user" + id})
		req.NoError(err)
	}

	req.NoError(repo.SetRank("1", 1))
	req.NoError(repo.SetRank("2", 2))

	first, err := repo.FindByID("1")
	req.NoError(err)
	req.Equal(1, first.Rank)
	req.Equal("\U0001F947", first.Badge())

	req.NoError(repo.ResetRanks())
	for _, id := range []string{"1", "2", "3"} {
		p, err := repo.FindByID(id)
		req.NoError(err)
		req.Equal(0, p.Rank)
		req.Empty(p.Badge())
	}
}

func Test_Directory_filters_and_orders_by_username_desc(t *testing.T) {
	req := require.New(t)
	repo := NewParticipantRepository(openTestDB(t), slog.Default())

	seed := []domain.Participant{
		{Username: "zoe", Preference: "chai"},
		{Username: "adam", Preference: "green"},
		{Username: "mallory", Preference: "oolong", Deleted: true},
		{Username: "noreply"}, // never registered
	}
	for i, p := range seed {
		_, err := repo.FindOrCreate(string(rune('1'+i)), p)
		req.NoError(err)
	}

	users, err := repo.Directory()
	req.NoError(err)
	req.Len(users, 2)
	req.Equal("zoe", users[0].Username)
	req.Equal("adam", users[1].Username)
}

func Test_Stats_lists_brewers_by_brew_count(t *testing.T) {
	req := require.New(t)
	repo := NewParticipantRepository(openTestDB(t), slog.Default())

	_, err := repo.FindOrCreate("1", domain.Participant{Username: "alice", Preference: "milky"})
	req.NoError(err)
	_, err = repo.FindOrCreate("2", domain.Participant{Username: "bob", Preference: "black"})
	req.NoError(err)
	_, err = repo.FindOrCreate("3", domain.Participant{Username: "clara", Preference: "green"})
	req.NoError(err)

	_, err = repo.IncrementCounters("1", map[string]int{domain.CounterBrewed: 2})
	req.NoError(err)
	_, err = repo.IncrementCounters("2", map[string]int{domain.CounterBrewed: 5})
	req.NoError(err)

	stats, err := repo.Stats()
	req.NoError(err)
	req.Len(stats, 2) // clara never brewed
	req.Equal("bob", stats[0].Username)
	req.Equal("alice", stats[1].Username)
}
