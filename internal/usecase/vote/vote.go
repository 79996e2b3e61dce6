package usecase_vote

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/Jaymin100/BooHoo/internal/model"
	usecase_room "github.com/Jaymin100/BooHoo/internal/usecase/room"
)

var (
	ErrResourceNotFound = usecase_room.ErrResourceNotFound
	ErrInternal         = usecase_room.ErrInternal
	ErrUnavailable      = errors.New("results archive unavailable")
)

//go:generate mockery --name=RoomProvider --output=./mocks/vote/rooms --filename=rooms.go
type RoomProvider interface {
	Room(ctx context.Context, code model.RoomCode) (*model.Room, error)
}

//go:generate mockery --name=ResultRepository --output=./mocks/vote/results --filename=results.go
type ResultRepository interface {
	Archive(ctx context.Context, code model.RoomCode, finishedAt time.Time, rows []model.LeaderboardRow) error
	Results(ctx context.Context, code model.RoomCode) ([]model.ArchivedResult, error)
}

type Usecase struct {
	rooms   RoomProvider
	results ResultRepository
	logger  *slog.Logger
	now     func() time.Time
}

type Option func(*Usecase)

func WithLogger(logger *slog.Logger) Option {
	return func(u *Usecase) {
		u.logger = logger
	}
}

// WithResults enables archiving of finished games.
func WithResults(results ResultRepository) Option {
	return func(u *Usecase) {
		u.results = results
	}
}

func WithClock(now func() time.Time) Option {
	return func(u *Usecase) {
		u.now = now
	}
}

func New(
	rooms RoomProvider,
	opts ...Option,
) *Usecase {
	u := &Usecase{
		rooms:  rooms,
		logger: slog.Default(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

func (u *Usecase) Costumes(ctx context.Context, code model.RoomCode) ([]model.CostumeView, error) {
	room, err := u.rooms.Room(ctx, code)
	if err != nil {
		return nil, err
	}
	return room.Costumes(), nil
}

// Vote applies a player's ballot. The call that completes the room archives
// its leaderboard; a failed archive is logged and does not fail the vote.
func (u *Usecase) Vote(ctx context.Context, code model.RoomCode, playerID string, votes model.Votes) (model.VoteOutcome, error) {
	room, err := u.rooms.Room(ctx, code)
	if err != nil {
		return model.VoteOutcome{}, err
	}

	outcome := room.SubmitVotes(playerID, votes)
	u.logger.Info("votes submitted",
		slog.String("room_code", code),
		slog.String("player_id", playerID),
		slog.Int("ballot_size", len(votes)),
		slog.Bool("all_finished", outcome.AllFinished),
	)

	if outcome.Finished {
		u.logger.Info("room finished", slog.String("room_code", code))
		u.archive(ctx, code, outcome.Standings)
	}
	return outcome, nil
}

func (u *Usecase) archive(ctx context.Context, code model.RoomCode, standings []model.LeaderboardRow) {
	if u.results == nil {
		return
	}

	if err := u.results.Archive(ctx, code, u.now(), standings); err != nil {
		u.logger.Error("failed to archive results",
			slog.String("room_code", code),
			slog.String("error", err.Error()),
		)
	}
}

func (u *Usecase) Leaderboard(ctx context.Context, code model.RoomCode) ([]model.LeaderboardRow, error) {
	room, err := u.rooms.Room(ctx, code)
	if err != nil {
		return nil, err
	}
	return room.Leaderboard(), nil
}

// History returns archived rows of past games played under code. It works
// after the room itself has been deleted.
func (u *Usecase) History(ctx context.Context, code model.RoomCode) ([]model.ArchivedResult, error) {
	if u.results == nil {
		return nil, ErrUnavailable
	}

	results, err := u.results.Results(ctx, code)
	if err != nil {
		return nil, errors.Join(ErrInternal, err)
	}
	if len(results) == 0 {
		return nil, ErrResourceNotFound
	}
	return results, nil
}
