package infra_postgres_result

import (
	"context"
	"time"

	"github.com/Jaymin100/BooHoo/internal/model"
	"github.com/jmoiron/sqlx"
)

type Driver struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Driver {
	return &Driver{db: db}
}

type resultDTO struct {
	RoomCode   string    `db:"room_code"`
	PlayerID   string    `db:"player_id"`
	PlayerName string    `db:"player_name"`
	Votes      int       `db:"votes"`
	Rank       int       `db:"rank"`
	FinishedAt time.Time `db:"finished_at"`
}

const schema = `
	CREATE TABLE IF NOT EXISTS game_results (
		id          BIGSERIAL PRIMARY KEY,
		room_code   VARCHAR(6)  NOT NULL,
		player_id   UUID        NOT NULL,
		player_name TEXT        NOT NULL,
		votes       INTEGER     NOT NULL,
		rank        INTEGER     NOT NULL,
		finished_at TIMESTAMPTZ NOT NULL
	);
	CREATE INDEX IF NOT EXISTS game_results_room_code_idx ON game_results (room_code);
`

func (d *Driver) Migrate(ctx context.Context) error {
	_, err := d.db.ExecContext(ctx, schema)
	return err
}

// Archive stores a finished game's leaderboard. Rows are expected in
// leaderboard order; rank is the 1-based position.
func (d *Driver) Archive(ctx context.Context, code model.RoomCode, finishedAt time.Time, rows []model.LeaderboardRow) error {
	if len(rows) == 0 {
		return nil
	}

	tx, err := d.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	query := `
		INSERT INTO game_results (room_code, player_id, player_name, votes, rank, finished_at)
		VALUES (:room_code, :player_id, :player_name, :votes, :rank, :finished_at)
	`

	for i, row := range rows {
		dto := resultDTO{
			RoomCode:   code,
			PlayerID:   row.PlayerID,
			PlayerName: row.PlayerName,
			Votes:      row.VoteTotal,
			Rank:       i + 1,
			FinishedAt: finishedAt,
		}
		if _, err := tx.NamedExecContext(ctx, query, dto); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// Results returns every archived row for a code, latest game first.
func (d *Driver) Results(ctx context.Context, code model.RoomCode) ([]model.ArchivedResult, error) {
	var dtos []resultDTO

	query := `
		SELECT room_code, player_id, player_name, votes, rank, finished_at
		FROM game_results
		WHERE room_code = $1
		ORDER BY finished_at DESC, rank ASC
	`

	if err := d.db.SelectContext(ctx, &dtos, query, code); err != nil {
		return nil, err
	}

	results := make([]model.ArchivedResult, 0, len(dtos))
	for _, dto := range dtos {
		results = append(results, model.ArchivedResult{
			RoomCode:   dto.RoomCode,
			PlayerID:   dto.PlayerID,
			PlayerName: dto.PlayerName,
			VoteTotal:  dto.Votes,
			Rank:       dto.Rank,
			FinishedAt: dto.FinishedAt,
		})
	}
	return results, nil
}
