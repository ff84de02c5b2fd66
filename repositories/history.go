//go:generate go run go.uber.org/mock/mockgen -source=history.go -destination=../mocks/mock_history_repository.go -package=mocks
package repositories

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

const (
	offerPrefix         = "offer:"
	participationPrefix = "part:"
)

// Offer is the persisted record of one completed round's server side.
// Immutable once written; the sole input to rank aggregation.
type Offer struct {
	ID        string
	ServerID  string
	At        time.Time
	Limit     *int
	Completed bool
}

// Participation links one guest to the offer they joined.
type Participation struct {
	OfferID       string
	ParticipantID string
	At            time.Time
}

type IHistoryRepository interface {
	AppendOffer(serverID string, at time.Time, limit *int) (string, error)
	AppendParticipation(offerID, participantID string) error
	OffersSince(cutoff time.Time) ([]Offer, error)
	// TallySince counts service units per server over offers newer than
	// the cutoff: one unit per offer plus one per participation.
	TallySince(cutoff time.Time) (map[string]int, error)
}

type HistoryRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewHistoryRepository(db *badger.DB, log *slog.Logger) IHistoryRepository {
	return &HistoryRepository{db: db, log: log}
}

// offerKey is "offer:{timestamp_padded}:{uuid}". The 19-digit zero
// padding keeps keys in chronological order lexicographically, so a
// cutoff scan is a single Seek.
func offerKey(at time.Time, id string) []byte {
	return []byte(fmt.Sprintf("%s%019d:%s", offerPrefix, at.UnixNano(), id))
}

func participationKey(offerID, participantID string) []byte {
	return []byte(participationPrefix + offerID + ":" + participantID)
}

func (r *HistoryRepository) AppendOffer(serverID string, at time.Time, limit *int) (string, error) {
	offer := Offer{
		ID:        uuid.New().String(),
		ServerID:  serverID,
		At:        at,
		Limit:     limit,
		Completed: true,
	}
	data, err := json.Marshal(offer)
	if err != nil {
		return "", fmt.Errorf("marshal failed: %w", err)
	}
	err = r.db.Update(func(txn *badger.Txn) error {
		return txn.Set(offerKey(at, offer.ID), data)
	})
	return offer.ID, err
}

func (r *HistoryRepository) AppendParticipation(offerID, participantID string) error {
	participation := Participation{
		OfferID:       offerID,
		ParticipantID: participantID,
		At:            time.Now().UTC(),
	}
	data, err := json.Marshal(participation)
	if err != nil {
		return fmt.Errorf("marshal failed: %w", err)
	}
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set(participationKey(offerID, participantID), data)
	})
}

// OffersSince returns offers strictly newer than the cutoff, oldest
// first.
func (r *HistoryRepository) OffersSince(cutoff time.Time) ([]Offer, error) {
	var out []Offer
	err := r.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		seek := []byte(fmt.Sprintf("%s%019d", offerPrefix, cutoff.UnixNano()))
		prefix := []byte(offerPrefix)
		for it.Seek(seek); it.ValidForPrefix(prefix); it.Next() {
			var offer Offer
			if err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &offer)
			}); err != nil {
				return err
			}
			if !offer.At.After(cutoff) {
				continue
			}
			out = append(out, offer)
		}
		return nil
	})
	return out, err
}

func (r *HistoryRepository) TallySince(cutoff time.Time) (map[string]int, error) {
	offers, err := r.OffersSince(cutoff)
	if err != nil {
		return nil, err
	}

	units := make(map[string]int)
	err = r.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for _, offer := range offers {
			units[offer.ServerID]++

			prefix := []byte(participationPrefix + offer.ID + ":")
			for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
				units[offer.ServerID]++
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return units, nil
}
