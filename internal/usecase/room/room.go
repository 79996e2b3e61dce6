package usecase_room

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Jaymin100/BooHoo/internal/model"
)

var (
	ErrResourceNotFound = errors.New("no such resource")
	ErrValidation       = errors.New("invalid input")
	ErrRateLimited      = errors.New("rate limited")
	ErrInternal         = errors.New("internal error")
)

// RateLimitError carries how long the caller should back off.
// errors.Is(err, ErrRateLimited) holds for it.
type RateLimitError struct {
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("rate limited, retry after %s", e.RetryAfter)
}

func (e *RateLimitError) Unwrap() error {
	return ErrRateLimited
}

//go:generate mockery --name=RoomRegistry --output=./mocks/room/registry --filename=registry.go
type RoomRegistry interface {
	CreateRoom() model.RoomCode
	GetRoom(code model.RoomCode) (*model.Room, error)
	DeleteRoom(code model.RoomCode) error
	Exists(code model.RoomCode) bool
	Rooms() []*model.Room
}

//go:generate mockery --name=RateLimiter --output=./mocks/room/limiter --filename=limiter.go
type RateLimiter interface {
	Allow(ctx context.Context, key string) (allowed bool, retryAfter time.Duration, err error)
}

type Usecase struct {
	registry RoomRegistry
	limiter  RateLimiter
	logger   *slog.Logger
}

type Option func(*Usecase)

func WithLogger(logger *slog.Logger) Option {
	return func(u *Usecase) {
		u.logger = logger
	}
}

func New(
	registry RoomRegistry,
	limiter RateLimiter,
	opts ...Option,
) *Usecase {
	u := &Usecase{
		registry: registry,
		limiter:  limiter,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Book creates a room on behalf of clientAddr, subject to the per-address
// creation budget.
func (u *Usecase) Book(ctx context.Context, clientAddr string) (model.RoomCode, error) {
	allowed, retryAfter, err := u.limiter.Allow(ctx, clientAddr)
	if err != nil {
		return model.EmptyRoomCode, errors.Join(ErrInternal, err)
	}
	if !allowed {
		u.logger.Warn("room creation rate limited",
			slog.String("client", clientAddr),
			slog.Duration("retry_after", retryAfter),
		)
		return model.EmptyRoomCode, &RateLimitError{RetryAfter: retryAfter}
	}

	code := u.registry.CreateRoom()
	u.logger.Info("room created", slog.String("room_code", code))
	return code, nil
}

func (u *Usecase) Join(ctx context.Context, code model.RoomCode, displayName, imageData string) (model.JoinResult, error) {
	room, err := u.Room(ctx, code)
	if err != nil {
		return model.JoinResult{}, err
	}

	res, err := room.Join(displayName, imageData)
	if err != nil {
		if errors.Is(err, model.ErrEmptyName) {
			return model.JoinResult{}, errors.Join(ErrValidation, err)
		}
		return model.JoinResult{}, errors.Join(ErrInternal, err)
	}

	u.logger.Info("player joined",
		slog.String("room_code", code),
		slog.String("player_id", res.PlayerID),
		slog.Bool("is_host", res.IsHost),
	)
	return res, nil
}

func (u *Usecase) Summary(ctx context.Context, code model.RoomCode) (model.RoomSummary, error) {
	room, err := u.Room(ctx, code)
	if err != nil {
		return model.RoomSummary{}, err
	}
	return room.Summary(), nil
}

func (u *Usecase) Start(ctx context.Context, code model.RoomCode) error {
	room, err := u.Room(ctx, code)
	if err != nil {
		return err
	}

	room.Start()
	u.logger.Info("game started",
		slog.String("room_code", code),
		slog.String("status", room.Status().String()),
	)
	return nil
}

func (u *Usecase) Free(ctx context.Context, code model.RoomCode) error {
	if err := u.registry.DeleteRoom(code); err != nil {
		if errors.Is(err, model.ErrRoomNotFound) {
			return ErrResourceNotFound
		}
		return errors.Join(ErrInternal, err)
	}

	u.logger.Info("room deleted", slog.String("room_code", code))
	return nil
}

// Verify reports ErrResourceNotFound when no live room has the code.
func (u *Usecase) Verify(_ context.Context, code model.RoomCode) error {
	if !u.registry.Exists(code) {
		return ErrResourceNotFound
	}
	return nil
}

// Room resolves a live room. Other use cases go through it so that a missing
// room is reported the same way everywhere.
func (u *Usecase) Room(_ context.Context, code model.RoomCode) (*model.Room, error) {
	room, err := u.registry.GetRoom(code)
	if err != nil {
		if errors.Is(err, model.ErrRoomNotFound) {
			return nil, ErrResourceNotFound
		}
		return nil, errors.Join(ErrInternal, err)
	}
	return room, nil
}

// Snapshots dumps every live room keyed by code.
func (u *Usecase) Snapshots(_ context.Context) map[model.RoomCode]model.RoomSnapshot {
	rooms := u.registry.Rooms()
	snapshots := make(map[model.RoomCode]model.RoomSnapshot, len(rooms))
	for _, room := range rooms {
		snapshots[room.Code()] = room.Snapshot()
	}
	return snapshots
}
