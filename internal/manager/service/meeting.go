package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ifedan-ed/plugnmeet-manager/internal/manager/domain"
	"github.com/ifedan-ed/plugnmeet-manager/internal/manager/store"
)

var ErrInvalidMeeting = errors.New("invalid meeting")

// MeetingService tracks provisioned rooms in the console. The rooms
// themselves live on the meeting server; this is display metadata plus
// ownership.
type MeetingService struct {
	Store store.Store
}

func (s *MeetingService) List(ctx context.Context) ([]domain.Meeting, error) {
	meetings, err := readList[domain.Meeting](ctx, s.Store, store.KeyMeetingsList)
	if err != nil {
		return nil, err
	}
	if meetings == nil {
		meetings = []domain.Meeting{}
	}
	return meetings, nil
}

func (s *MeetingService) Create(ctx context.Context, createdBy string, m domain.Meeting) (domain.Meeting, error) {
	m.Title = strings.TrimSpace(m.Title)
	if m.Title == "" || strings.TrimSpace(m.RoomID) == "" {
		return domain.Meeting{}, ErrInvalidMeeting
	}

	m.ID = uuid.NewString()
	m.CreatedBy = createdBy
	m.CreatedAt = time.Now().UTC()

	meetings, err := readList[domain.Meeting](ctx, s.Store, store.KeyMeetingsList)
	if err != nil {
		return domain.Meeting{}, err
	}
	meetings = append(meetings, m)
	if err := writeList(ctx, s.Store, store.KeyMeetingsList, meetings); err != nil {
		return domain.Meeting{}, err
	}
	return m, nil
}

// Delete removes a meeting by id. Unknown ids are a no-op, mirroring the
// idempotent reference behaviour.
func (s *MeetingService) Delete(ctx context.Context, id string) error {
	meetings, err := readList[domain.Meeting](ctx, s.Store, store.KeyMeetingsList)
	if err != nil {
		return err
	}

	kept := meetings[:0]
	for _, m := range meetings {
		if m.ID != id {
			kept = append(kept, m)
		}
	}
	return writeList(ctx, s.Store, store.KeyMeetingsList, kept)
}
