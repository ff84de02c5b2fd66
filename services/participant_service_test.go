package services_test

import (
	"log/slog"
	"strings"
	"testing"

	"brewbot/domain"
	"brewbot/errors"
	"brewbot/mocks"
	"brewbot/services"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func Test_Register_stores_the_preference(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockIParticipantRepository(ctrl)
	svc := services.NewParticipantService(slog.Default(), repo)

	t.Run("first registration is a welcome", func(t *testing.T) {
		user := domain.Participant{ID: "1", Username: "alice"}
		repo.EXPECT().SetPreference("1", "milky tea").
			Return(domain.Participant{ID: "1", Preference: "milky tea"}, nil)

		updated, wasRegistered, err := svc.Register(user, "milky tea")

		req.NoError(err)
		req.False(wasRegistered)
		req.Equal("milky tea", updated.Preference)
	})

	t.Run("re-registration is an update", func(t *testing.T) {
		user := domain.Participant{ID: "1", Username: "alice", Preference: "milky tea"}
		repo.EXPECT().SetPreference("1", "earl grey").
			Return(domain.Participant{ID: "1", Preference: "earl grey"}, nil)

		_, wasRegistered, err := svc.Register(user, "earl grey")

		req.NoError(err)
		req.True(wasRegistered)
	})

	t.Run("empty preference never reaches the store", func(t *testing.T) {
		repo.EXPECT().SetPreference(gomock.Any(), gomock.Any()).Times(0)

		_, _, err := svc.Register(domain.Participant{ID: "1"}, "")

		req.ErrorIs(err, errors.ErrInvalidInput)
	})

	t.Run("a pasted novel never reaches the store", func(t *testing.T) {
		repo.EXPECT().SetPreference(gomock.Any(), gomock.Any()).Times(0)

		_, _, err := svc.Register(domain.Participant{ID: "1"}, strings.Repeat("a", 200))

		req.ErrorIs(err, errors.ErrInvalidInput)
	})
}

func Test_FromChat_creates_on_first_contact(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockIParticipantRepository(ctrl)
	svc := services.NewParticipantService(slog.Default(), repo)

	repo.EXPECT().
		FindOrCreate("42", domain.Participant{Username: "alice", RealName: "Alice A"}).
		Return(domain.Participant{ID: "42", Username: "alice", RealName: "Alice A"}, nil)

	p, err := svc.FromChat("42", "alice", "Alice A")

	req.NoError(err)
	req.Equal("42", p.ID)
	req.Equal("Alice A", p.Name())
}
