package model

import (
	"errors"
	"fmt"
	"time"
)

type RoomCode = string

const EmptyRoomCode RoomCode = ""

var (
	ErrRoomNotFound = errors.New("room not found")
	ErrEmptyName    = errors.New("display name is empty")
)

type Status int

const (
	StatusWaiting Status = iota
	StatusPlaying
	StatusFinished
)

func (s Status) String() string {
	switch s {
	case StatusWaiting:
		return "waiting"
	case StatusPlaying:
		return "playing"
	case StatusFinished:
		return "finished"
	}
	return "unknown"
}

func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Status) UnmarshalText(b []byte) error {
	switch string(b) {
	case "waiting":
		*s = StatusWaiting
	case "playing":
		*s = StatusPlaying
	case "finished":
		*s = StatusFinished
	default:
		return fmt.Errorf("unknown room status %q", b)
	}
	return nil
}

type Player struct {
	ID                string
	DisplayName       string
	HasCostume        bool
	HasFinishedVoting bool
}

// CostumeEntry is linked to its owner by ID only.
type CostumeEntry struct {
	ID            string
	OwnerPlayerID string
	ImageData     string
	VoteTotal     int
}

// Votes maps costume ID to the value added to that costume's total.
type Votes map[string]int

type JoinResult struct {
	PlayerID string
	IsHost   bool
}

type VoteOutcome struct {
	AllFinished bool
	// Finished is true only for the call that moved the room to StatusFinished.
	Finished bool
	// Standings is set together with Finished.
	Standings []LeaderboardRow
}

type PlayerSummary struct {
	ID         string `json:"player_id"`
	Name       string `json:"name"`
	HasCostume bool   `json:"costume_uploaded"`
}

type RoomSummary struct {
	Code    RoomCode        `json:"room_code"`
	Status  Status          `json:"status"`
	HostID  string          `json:"host_id"`
	Players []PlayerSummary `json:"players"`
}

type CostumeView struct {
	ID            string  `json:"costume_id"`
	OwnerPlayerID string  `json:"player_id"`
	OwnerName     *string `json:"player_name"`
	ImageData     string  `json:"image_data"`
	VoteTotal     int     `json:"votes"`
}

type LeaderboardRow struct {
	PlayerID   string `json:"player_id"`
	PlayerName string `json:"player_name"`
	VoteTotal  int    `json:"votes"`
	ImageData  string `json:"image_data"`
}

type RoomSnapshot struct {
	RoomSummary
	CreatedAt time.Time     `json:"created_at"`
	Costumes  []CostumeView `json:"costumes"`
}

// ArchivedResult is one leaderboard row of a finished game as stored after the fact.
type ArchivedResult struct {
	RoomCode   RoomCode  `json:"room_code"`
	PlayerID   string    `json:"player_id"`
	PlayerName string    `json:"player_name"`
	VoteTotal  int       `json:"votes"`
	Rank       int       `json:"rank"`
	FinishedAt time.Time `json:"finished_at"`
}
