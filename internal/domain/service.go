// Package domain defines the records and business logic of the attention
// analytics service.
package domain

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrInvalidCategory is returned for activity categories outside the
	// known set.
	ErrInvalidCategory = errors.New("unknown activity category")
	// ErrInvalidInterruptionType is returned for interruption types outside
	// the known set.
	ErrInvalidInterruptionType = errors.New("unknown interruption type")
	// ErrInvalidInterval is returned when an activity ends before it starts.
	ErrInvalidInterval = errors.New("end time must be after start time")
)

// RecordRepository captures persistence operations for the two raw record
// types. The analytics engine itself never touches storage; the service loads
// snapshots here and hands them over.
type RecordRepository interface {
	CreateActivity(ctx context.Context, activity Activity) error
	ListActivities(ctx context.Context, userID string, cursor *Cursor, limit int) ([]Activity, *Cursor, error)
	ActivitiesInWindow(ctx context.Context, userID string, from, to time.Time) ([]Activity, error)
	CreateInterruption(ctx context.Context, interruption Interruption) error
	InterruptionsInWindow(ctx context.Context, userID string, from, to time.Time) ([]Interruption, error)
}

// Cursor models the keyset pagination token for activity listings.
type Cursor struct {
	StartTime time.Time
	ID        string
}

// Service mints records and supplies window snapshots to the engine.
type Service struct {
	repo RecordRepository
}

// NewService constructs a Service.
func NewService(repo RecordRepository) *Service {
	return &Service{repo: repo}
}

// CreateActivityInput captures the payload from the API layer.
type CreateActivityInput struct {
	UserID    string
	Category  Category
	StartTime time.Time
	EndTime   time.Time
	Note      string
}

// CreateInterruptionInput captures the payload from the API layer.
type CreateInterruptionInput struct {
	UserID      string
	ActivityID  *string
	Time        time.Time
	EndTime     *time.Time
	DurationMin *int
	Type        InterruptionType
	Note        string
}

// CreateActivity validates and persists a new activity record.
func (s *Service) CreateActivity(ctx context.Context, input CreateActivityInput) (*Activity, error) {
	if !input.Category.Valid() {
		return nil, ErrInvalidCategory
	}
	if input.EndTime.Before(input.StartTime) {
		return nil, ErrInvalidInterval
	}

	activity := Activity{
		ID:        uuid.NewString(),
		UserID:    input.UserID,
		Category:  input.Category,
		StartTime: input.StartTime.UTC(),
		EndTime:   input.EndTime.UTC(),
		Note:      input.Note,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.CreateActivity(ctx, activity); err != nil {
		return nil, err
	}
	return &activity, nil
}

// CreateInterruption validates and persists a new interruption record.
func (s *Service) CreateInterruption(ctx context.Context, input CreateInterruptionInput) (*Interruption, error) {
	if !input.Type.Valid() {
		return nil, ErrInvalidInterruptionType
	}

	interruption := Interruption{
		ID:          uuid.NewString(),
		UserID:      input.UserID,
		ActivityID:  input.ActivityID,
		Time:        input.Time.UTC(),
		DurationMin: input.DurationMin,
		Type:        input.Type,
		Note:        input.Note,
		CreatedAt:   time.Now().UTC(),
	}
	if input.EndTime != nil {
		end := input.EndTime.UTC()
		interruption.EndTime = &end
	}

	if err := s.repo.CreateInterruption(ctx, interruption); err != nil {
		return nil, err
	}
	return &interruption, nil
}

// ListActivities fetches activities with cursor pagination, newest first.
func (s *Service) ListActivities(ctx context.Context, userID string, cursor *Cursor, limit int) ([]Activity, *Cursor, error) {
	return s.repo.ListActivities(ctx, userID, cursor, limit)
}

// ListInterruptions fetches the interruptions of a time window.
func (s *Service) ListInterruptions(ctx context.Context, userID string, from, to time.Time) ([]Interruption, error) {
	return s.repo.InterruptionsInWindow(ctx, userID, from, to)
}

// Snapshot loads both record collections for an analytics window.
func (s *Service) Snapshot(ctx context.Context, userID string, from, to time.Time) ([]Activity, []Interruption, error) {
	activities, err := s.repo.ActivitiesInWindow(ctx, userID, from, to)
	if err != nil {
		return nil, nil, err
	}
	interruptions, err := s.repo.InterruptionsInWindow(ctx, userID, from, to)
	if err != nil {
		return nil, nil, err
	}
	return activities, interruptions, nil
}
