//go:generate go run go.uber.org/mock/mockgen -source=rank_service.go -destination=../mocks/mock_rank_service.go -package=mocks
package services

import (
	"fmt"
	"log/slog"
	"sort"
	"time"

	"brewbot/contract"
	"brewbot/domain"
	"brewbot/errors"
	"brewbot/repositories"
)

// Entry is one leaderboard line: a participant and their service units
// over the trailing window (one per offer plus one per guest served).
type Entry struct {
	Participant domain.Participant
	Score       int
}

type IRankService interface {
	ComputeSince(cutoff time.Time) ([]Entry, error)
	Recompute() error
}

// RankService recomputes the leaderboard from the round history. Each
// pass is a full replace: every participant's rank is overwritten, so
// running it twice with no new history is idempotent.
type RankService struct {
	log          *slog.Logger
	participants repositories.IParticipantRepository
	history      repositories.IHistoryRepository
	clock        contract.Clock
	window       time.Duration
}

func NewRankService(
	log *slog.Logger,
	participants repositories.IParticipantRepository,
	history repositories.IHistoryRepository,
	clock contract.Clock,
	window time.Duration,
) *RankService {
	return &RankService{
		log:          log,
		participants: participants,
		history:      history,
		clock:        clock,
		window:       window,
	}
}

// ComputeSince scores every non-deleted participant on offers newer than
// the cutoff, ordered by descending score. Equal scores are ordered by
// participant id ascending so two passes over the same history always
// agree.
func (s *RankService) ComputeSince(cutoff time.Time) ([]Entry, error) {
	units, err := s.history.TallySince(cutoff)
	if err != nil {
		return nil, fmt.Errorf("history tally failed: %w", err)
	}

	var entries []Entry
	for id, score := range units {
		p, err := s.participants.FindByID(id)
		if err == errors.ErrNotFound {
			// History may reference participants written by an older
			// deployment; they simply don't rank.
			continue
		}
		if err != nil {
			return nil, err
		}
		if p.Deleted {
			continue
		}
		entries = append(entries, Entry{Participant: p, Score: score})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score > entries[j].Score
		}
		return entries[i].Participant.ID < entries[j].Participant.ID
	})
	return entries, nil
}

// Recompute reassigns every rank from the trailing window: reset all to
// 0, then a dense 1..N over the computed order.
func (s *RankService) Recompute() error {
	cutoff := s.clock.Now().Add(-s.window)

	entries, err := s.ComputeSince(cutoff)
	if err != nil {
		return err
	}
	if err = s.participants.ResetRanks(); err != nil {
		return fmt.Errorf("rank reset failed: %w", err)
	}
	for i, entry := range entries {
		if err = s.participants.SetRank(entry.Participant.ID, i+1); err != nil {
			return fmt.Errorf("rank write failed for %s: %w", entry.Participant.ID, err)
		}
	}

	s.log.Info("Leaderboard recomputed", "ranked", len(entries), "cutoff", cutoff)
	return nil
}
