//go:generate go run go.uber.org/mock/mockgen -source=participant.go -destination=../mocks/mock_participant_repository.go -package=mocks
package repositories

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"brewbot/domain"
	"brewbot/errors"

	"github.com/dgraph-io/badger/v4"
)

const participantPrefix = "participant:"

type IParticipantRepository interface {
	FindOrCreate(id string, defaults domain.Participant) (domain.Participant, error)
	FindByID(id string) (domain.Participant, error)
	FindByUsername(username string) (domain.Participant, error)
	SetPreference(id, preference string) (domain.Participant, error)
	IncrementCounters(id string, deltas map[string]int) (domain.Participant, error)
	SetRank(id string, rank int) error
	ResetRanks() error
	Directory() ([]domain.Participant, error)
	Stats() ([]domain.Participant, error)
}

type ParticipantRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewParticipantRepository(db *badger.DB, log *slog.Logger) IParticipantRepository {
	return &ParticipantRepository{db: db, log: log}
}

func participantKey(id string) []byte {
	return []byte(participantPrefix + id)
}

// FindOrCreate returns the stored participant for the external chat id,
// creating it from the defaults on first contact. Participants are never
// physically deleted afterwards, only flagged.
func (r *ParticipantRepository) FindOrCreate(id string, defaults domain.Participant) (domain.Participant, error) {
	var out domain.Participant
	err := r.db.Update(func(txn *badger.Txn) error {
		item, err := txn.Get(participantKey(id))
		if err == nil {
			return item.Value(func(val []byte) error {
				return json.Unmarshal(val, &out)
			})
		}
		if err != badger.ErrKeyNotFound {
			return err
		}

		out = defaults
		out.ID = id
		data, err := json.Marshal(out)
		if err != nil {
			return fmt.Errorf("marshal failed: %w", err)
		}
		return txn.Set(participantKey(id), data)
	})
	return out, err
}

func (r *ParticipantRepository) FindByID(id string) (domain.Participant, error) {
	var out domain.Participant
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(participantKey(id))
		if err == badger.ErrKeyNotFound {
			return errors.ErrNotFound
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &out)
		})
	})
	return out, err
}

// FindByUsername resolves a chat mention. Usernames are not the primary
// key, so this is a scan; the participant set is a chat room, not a
// user base, and stays small.
func (r *ParticipantRepository) FindByUsername(username string) (domain.Participant, error) {
	participants, err := r.all()
	if err != nil {
		return domain.Participant{}, err
	}
	for _, p := range participants {
		if !p.Deleted && strings.EqualFold(p.Username, username) {
			return p, nil
		}
	}
	return domain.Participant{}, errors.ErrNotFound
}

// SetPreference registers or updates the brew preference.
func (r *ParticipantRepository) SetPreference(id, preference string) (domain.Participant, error) {
	return r.mutate(id, func(p *domain.Participant) {
		p.Preference = preference
	})
}

// IncrementCounters applies the deltas as a single read-modify-write
// transaction, so concurrent completions never lose an increment.
// Unknown counter names are an error, not a silent skip.
func (r *ParticipantRepository) IncrementCounters(id string, deltas map[string]int) (domain.Participant, error) {
	var unknown error
	out, err := r.mutate(id, func(p *domain.Participant) {
		for field, delta := range deltas {
			switch field {
			case domain.CounterBrewed:
				p.Brewed += delta
			case domain.CounterReceived:
				p.Received += delta
			case domain.CounterConsumed:
				p.Consumed += delta
			case domain.CounterRounds:
				p.Rounds += delta
			default:
				unknown = fmt.Errorf("unknown counter %q", field)
			}
		}
	})
	if err != nil {
		return out, err
	}
	return out, unknown
}

func (r *ParticipantRepository) SetRank(id string, rank int) error {
	_, err := r.mutate(id, func(p *domain.Participant) {
		p.Rank = rank
	})
	return err
}

// ResetRanks zeroes every participant's rank. Ranking is a full-replace
// assignment: the aggregator calls this before writing the new order.
func (r *ParticipantRepository) ResetRanks() error {
	participants, err := r.all()
	if err != nil {
		return err
	}
	for _, p := range participants {
		if p.Rank == 0 {
			continue
		}
		if err := r.SetRank(p.ID, 0); err != nil {
			return err
		}
	}
	return nil
}

// Directory lists registered, non-deleted participants ordered by
// username descending.
func (r *ParticipantRepository) Directory() ([]domain.Participant, error) {
	participants, err := r.all()
	if err != nil {
		return nil, err
	}
	var out []domain.Participant
	for _, p := range participants {
		if p.Registered() && !p.Deleted {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Username > out[j].Username
	})
	return out, nil
}

// Stats lists registered brewers (at least one brew) ordered by brew
// count descending.
func (r *ParticipantRepository) Stats() ([]domain.Participant, error) {
	participants, err := r.all()
	if err != nil {
		return nil, err
	}
	var out []domain.Participant
	for _, p := range participants {
		if p.Registered() && !p.Deleted && p.Brewed > 0 {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Brewed > out[j].Brewed
	})
	return out, nil
}

// mutate runs a read-modify-write cycle on one participant inside a
// single badger transaction.
func (r *ParticipantRepository) mutate(id string, fn func(*domain.Participant)) (domain.Participant, error) {
	var out domain.Participant
	err := r.db.Update(func(txn *badger.Txn) error {
		item, err := txn.Get(participantKey(id))
		if err == badger.ErrKeyNotFound {
			return errors.ErrNotFound
		}
		if err != nil {
			return err
		}
		if err = item.Value(func(val []byte) error {
			return json.Unmarshal(val, &out)
		}); err != nil {
			return err
		}

		fn(&out)

		data, err := json.Marshal(out)
		if err != nil {
			return fmt.Errorf("marshal failed: %w", err)
		}
		return txn.Set(participantKey(id), data)
	})
	return out, err
}

func (r *ParticipantRepository) all() ([]domain.Participant, error) {
	var out []domain.Participant
	err := r.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte(participantPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var p domain.Participant
			if err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &p)
			}); err != nil {
				return err
			}
			out = append(out, p)
		}
		return nil
	})
	return out, err
}
