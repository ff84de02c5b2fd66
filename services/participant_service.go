//go:generate go run go.uber.org/mock/mockgen -source=participant_service.go -destination=../mocks/mock_participant_service.go -package=mocks
package services

import (
	"fmt"
	"log/slog"

	"brewbot/domain"
	"brewbot/errors"
	"brewbot/repositories"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// RegisterRequest carries a preference registration before it reaches
// the store. The bound is generous; it only guards against someone
// pasting a novel.
type RegisterRequest struct {
	Preference string `validate:"required,max=190"`
}

type IParticipantService interface {
	FromChat(id, username, realName string) (domain.Participant, error)
	Register(user domain.Participant, preference string) (domain.Participant, bool, error)
	Info(targetID string) (domain.Participant, error)
	InfoByUsername(username string) (domain.Participant, error)
	Directory() ([]domain.Participant, error)
	Stats() ([]domain.Participant, error)
}

// ParticipantService fronts the participant store for the transport
// layer: find-or-create on first contact, preference registration and
// the read-side listings.
type ParticipantService struct {
	log          *slog.Logger
	participants repositories.IParticipantRepository
}

func NewParticipantService(log *slog.Logger, participants repositories.IParticipantRepository) *ParticipantService {
	return &ParticipantService{log: log, participants: participants}
}

// FromChat resolves the sender of an inbound message, creating the
// participant on first contact.
func (s *ParticipantService) FromChat(id, username, realName string) (domain.Participant, error) {
	return s.participants.FindOrCreate(id, domain.Participant{
		Username: username,
		RealName: realName,
	})
}

// Register stores the brew preference. The second return value reports
// whether the user was already registered, so the caller can greet
// newcomers differently from updates.
func (s *ParticipantService) Register(user domain.Participant, preference string) (domain.Participant, bool, error) {
	if err := validate.Struct(RegisterRequest{Preference: preference}); err != nil {
		return domain.Participant{}, false, fmt.Errorf("%w: %v", errors.ErrInvalidInput, err)
	}

	wasRegistered := user.Registered()
	updated, err := s.participants.SetPreference(user.ID, preference)
	if err != nil {
		return domain.Participant{}, false, err
	}
	return updated, wasRegistered, nil
}

func (s *ParticipantService) Info(targetID string) (domain.Participant, error) {
	return s.participants.FindByID(targetID)
}

// InfoByUsername resolves a chat mention like "@fred".
func (s *ParticipantService) InfoByUsername(username string) (domain.Participant, error) {
	return s.participants.FindByUsername(username)
}

func (s *ParticipantService) Directory() ([]domain.Participant, error) {
	return s.participants.Directory()
}

func (s *ParticipantService) Stats() ([]domain.Participant, error) {
	return s.participants.Stats()
}
