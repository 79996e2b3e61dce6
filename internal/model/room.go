package model

import (
	"cmp"
	"slices"
	"sync"
	"time"

	"github.com/Jaymin100/BooHoo/internal/service/sanitize"
	"github.com/google/uuid"
)

// Room is the authoritative state of one game. Every mutation happens under
// the room's own lock; rooms never share a lock with each other.
type Room struct {
	mu sync.RWMutex

	code      RoomCode
	createdAt time.Time
	status    Status
	hostID    string

	players map[string]*Player
	order   []string // player IDs in join order
	entries []*CostumeEntry
}

func NewRoom(code RoomCode) *Room {
	return &Room{
		code:      code,
		createdAt: time.Now(),
		status:    StatusWaiting,
		players:   make(map[string]*Player),
	}
}

func (r *Room) Code() RoomCode {
	return r.code
}

func (r *Room) Status() Status {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.status
}

func (r *Room) HostID() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.hostID
}

// Join adds a player and their costume entry. The first player to join
// becomes host; the check and the assignment happen under the same lock.
func (r *Room) Join(displayName, imageData string) (JoinResult, error) {
	name := sanitize.Name(displayName)
	if name == "" {
		return JoinResult{}, ErrEmptyName
	}

	player := &Player{
		ID:          uuid.NewString(),
		DisplayName: name,
		HasCostume:  imageData != "",
	}
	entry := &CostumeEntry{
		ID:            uuid.NewString(),
		OwnerPlayerID: player.ID,
		ImageData:     imageData,
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	isHost := false
	if r.hostID == "" {
		r.hostID = player.ID
		isHost = true
	}
	r.players[player.ID] = player
	r.order = append(r.order, player.ID)
	r.entries = append(r.entries, entry)

	return JoinResult{PlayerID: player.ID, IsHost: isHost}, nil
}

// Start moves a waiting room to playing. It does not check membership and
// never moves a finished room back.
func (r *Room) Start() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.status == StatusWaiting {
		r.status = StatusPlaying
	}
}

// SubmitVotes adds every vote whose costume ID exists in the room; unknown
// costume IDs are ignored. An unknown playerID still has its votes applied
// but marks nobody as finished. A room with no players never finishes.
//
// The call that finishes the room gets the final standings in
// VoteOutcome.Standings, read under the same lock as the transition.
func (r *Room) SubmitVotes(playerID string, votes Votes) VoteOutcome {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, entry := range r.entries {
		if v, ok := votes[entry.ID]; ok {
			entry.VoteTotal += v
		}
	}

	if p, ok := r.players[playerID]; ok {
		p.HasFinishedVoting = true
	}

	allFinished := len(r.players) > 0
	for _, p := range r.players {
		if !p.HasFinishedVoting {
			allFinished = false
			break
		}
	}

	outcome := VoteOutcome{AllFinished: allFinished}
	if allFinished && r.status != StatusFinished {
		r.status = StatusFinished
		outcome.Finished = true
		outcome.Standings = r.leaderboardLocked()
	}
	return outcome
}

func (r *Room) Summary() RoomSummary {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.summaryLocked()
}

func (r *Room) summaryLocked() RoomSummary {
	players := make([]PlayerSummary, 0, len(r.order))
	for _, id := range r.order {
		p := r.players[id]
		players = append(players, PlayerSummary{
			ID:         p.ID,
			Name:       sanitize.Name(p.DisplayName),
			HasCostume: p.HasCostume,
		})
	}

	return RoomSummary{
		Code:    r.code,
		Status:  r.status,
		HostID:  r.hostID,
		Players: players,
	}
}

// Costumes lists entries in join order. A missing owner leaves OwnerName nil.
func (r *Room) Costumes() []CostumeView {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.costumesLocked()
}

func (r *Room) costumesLocked() []CostumeView {
	costumes := make([]CostumeView, 0, len(r.entries))
	for _, entry := range r.entries {
		view := CostumeView{
			ID:            entry.ID,
			OwnerPlayerID: entry.OwnerPlayerID,
			ImageData:     entry.ImageData,
			VoteTotal:     entry.VoteTotal,
		}
		if owner, ok := r.players[entry.OwnerPlayerID]; ok {
			name := sanitize.Name(owner.DisplayName)
			view.OwnerName = &name
		}
		costumes = append(costumes, view)
	}
	return costumes
}

// Leaderboard orders entries by vote total, highest first. Equal totals keep
// join order.
func (r *Room) Leaderboard() []LeaderboardRow {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.leaderboardLocked()
}

func (r *Room) leaderboardLocked() []LeaderboardRow {
	rows := make([]LeaderboardRow, 0, len(r.entries))
	for _, entry := range r.entries {
		row := LeaderboardRow{
			PlayerID:  entry.OwnerPlayerID,
			VoteTotal: entry.VoteTotal,
			ImageData: entry.ImageData,
		}
		if owner, ok := r.players[entry.OwnerPlayerID]; ok {
			row.PlayerName = sanitize.Name(owner.DisplayName)
		}
		rows = append(rows, row)
	}

	slices.SortStableFunc(rows, func(a, b LeaderboardRow) int {
		return cmp.Compare(b.VoteTotal, a.VoteTotal)
	})
	return rows
}

// Snapshot reads summary and costumes under a single lock.
func (r *Room) Snapshot() RoomSnapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return RoomSnapshot{
		RoomSummary: r.summaryLocked(),
		CreatedAt:   r.createdAt,
		Costumes:    r.costumesLocked(),
	}
}
