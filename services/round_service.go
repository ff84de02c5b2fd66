//go:generate go run go.uber.org/mock/mockgen -source=round_service.go -destination=../mocks/mock_round_service.go -package=mocks
package services

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"brewbot/contract"
	"brewbot/domain"
	"brewbot/errors"
	"brewbot/repositories"
	"brewbot/runtime"

	"github.com/samber/lo"
)

const (
	persistAttempts = 3
	persistBackoff  = 500 * time.Millisecond
)

type IRoundService interface {
	Brew(user domain.Participant) error
	Nominate(nominator domain.Participant, targetID string) (domain.Participant, error)
	Join(user domain.Participant) error
	Remaining() (int, bool)
}

// RoundService drives the round lifecycle end to end: starting rounds
// through the manager, enrolling guests, and running the one-time
// completion sequence at expiry (notify, persist counters and history,
// then schedule a rank recompute).
type RoundService struct {
	log          *slog.Logger
	manager      *runtime.RoundManager
	participants repositories.IParticipantRepository
	history      repositories.IHistoryRepository
	notifier     contract.Notifier
	ranks        IRankService
	clock        contract.Clock
}

func NewRoundService(
	log *slog.Logger,
	manager *runtime.RoundManager,
	participants repositories.IParticipantRepository,
	history repositories.IHistoryRepository,
	notifier contract.Notifier,
	ranks IRankService,
	clock contract.Clock,
) *RoundService {
	return &RoundService{
		log:          log,
		manager:      manager,
		participants: participants,
		history:      history,
		notifier:     notifier,
		ranks:        ranks,
		clock:        clock,
	}
}

// Brew starts a round served by the user. While another round is active
// the attempt is rejected, never queued: ErrAlreadyBrewing when the user
// is the current server, ErrRoundActive otherwise.
func (s *RoundService) Brew(user domain.Participant) error {
	if current := s.manager.Current(); current != nil {
		if current.Server().ID == user.ID {
			return errors.ErrAlreadyBrewing
		}
		return errors.ErrRoundActive
	}
	if s.manager.Start(user, s.completeRound) == nil {
		return errors.ErrRoundActive
	}
	return nil
}

// Nominate starts a round served by someone else. The nominee must be a
// known, registered participant.
func (s *RoundService) Nominate(nominator domain.Participant, targetID string) (domain.Participant, error) {
	nominee, err := s.participants.FindByID(targetID)
	if err != nil {
		return domain.Participant{}, err
	}
	if !nominee.Registered() {
		return domain.Participant{}, errors.ErrNotFound
	}

	if current := s.manager.Current(); current != nil {
		if current.Server().ID == nominator.ID {
			return domain.Participant{}, errors.ErrAlreadyBrewing
		}
		return domain.Participant{}, errors.ErrRoundActive
	}
	if s.manager.Start(nominee, s.completeRound, domain.WithNomination()) == nil {
		return domain.Participant{}, errors.ErrRoundActive
	}
	return nominee, nil
}

// Join enrolls the user in the active round.
func (s *RoundService) Join(user domain.Participant) error {
	if !user.Registered() {
		return errors.ErrNotRegistered
	}
	current := s.manager.Current()
	if current == nil {
		return errors.ErrNoRound
	}
	return current.Enroll(user)
}

// Remaining returns the seconds left on the active round, false when no
// round is running.
func (s *RoundService) Remaining() (int, bool) {
	current := s.manager.Current()
	if current == nil {
		return 0, false
	}
	return current.Remaining(), true
}

// completeRound is the round's one-time expiry callback. The outbound
// notification always fires, and fires first; persistence failures are
// an operational problem, never a reason to re-run the round or to
// swallow the notification.
func (s *RoundService) completeRound(round *domain.Round) {
	s.notifyCompletion(round)

	if err := s.persistCompletion(round); err != nil {
		s.log.Error("Round persistence failed, counters may be behind",
			"server", round.Server().ID, "err", err)
		return
	}

	// Recompute is scheduled only after every write above has been
	// acknowledged; a failure here is retried by the scheduled refresh
	// worker, not inline.
	go func() {
		if err := s.ranks.Recompute(); err != nil {
			s.log.Error("Rank recompute failed, will retry on next scheduled pass", "err", err)
		}
	}()
}

func (s *RoundService) notifyCompletion(round *domain.Round) {
	guests := round.Guests()

	var err error
	if len(guests) == 0 {
		err = s.notifier.Notify("Time is up! Looks like no one else wants a cuppa.")
	} else {
		attachments := lo.Map(guests, func(g domain.Participant, _ int) contract.Attachment {
			return contract.Attachment{
				AuthorName: "@" + g.Username,
				AuthorIcon: g.Picture,
				Text:       fmt.Sprintf("%s would like %s", g.Name(), g.Preference),
				Footer: fmt.Sprintf("%d brewed | %d received | %d consumed",
					g.Brewed, g.Received, g.Consumed),
			}
		})
		err = s.notifier.Notify("Time is up!", attachments...)
	}
	if err != nil {
		s.log.Error("Completion notification failed", "server", round.Server().ID, "err", err)
	}
}

// persistCompletion writes the history record and the counter updates.
// The offer record comes first because participations reference it; the
// per-participant writes then fan out and are all awaited before the
// caller may trigger aggregation.
func (s *RoundService) persistCompletion(round *domain.Round) error {
	server := round.Server()
	guests := round.Guests()

	var offerID string
	err := withRetry(persistAttempts, persistBackoff, func() error {
		var err error
		offerID, err = s.history.AppendOffer(server.ID, s.clock.Now(), round.GuestLimit())
		return err
	})
	if err != nil {
		return fmt.Errorf("offer record: %w", err)
	}

	var wg sync.WaitGroup
	errCh := make(chan error, len(guests)+1)

	wg.Add(1)
	go func() {
		defer wg.Done()
		err := withRetry(persistAttempts, persistBackoff, func() error {
			_, err := s.participants.IncrementCounters(server.ID, map[string]int{
				domain.CounterBrewed:   len(guests) + 1,
				domain.CounterConsumed: 1,
				domain.CounterRounds:   1,
			})
			return err
		})
		if err != nil {
			errCh <- fmt.Errorf("server counters for %s: %w", server.ID, err)
		}
	}()

	for _, guest := range guests {
		wg.Add(1)
		go func(guest domain.Participant) {
			defer wg.Done()
			err := withRetry(persistAttempts, persistBackoff, func() error {
				if err := s.history.AppendParticipation(offerID, guest.ID); err != nil {
					return err
				}
				_, err := s.participants.IncrementCounters(guest.ID, map[string]int{
					domain.CounterReceived: 1,
					domain.CounterConsumed: 1,
				})
				return err
			})
			if err != nil {
				errCh <- fmt.Errorf("guest records for %s: %w", guest.ID, err)
			}
		}(guest)
	}

	wg.Wait()
	close(errCh)

	for err := range errCh {
		return err
	}
	return nil
}

func withRetry(attempts int, backoff time.Duration, fn func() error) error {
	var err error
	for i := 0; i < attempts; i++ {
		if err = fn(); err == nil {
			return nil
		}
		if i < attempts-1 {
			time.Sleep(backoff * time.Duration(i+1))
		}
	}
	return err
}
