package main

import (
	"log"

	"github.com/spf13/cobra"
)

const releaseVersion = "1.0.0"

// @title BooHoo API
// @version 1.0
// @description Costume party game: create a room, join with a costume, vote, see the leaderboard.
// @BasePath /api
func main() {
	log.SetFlags(0)
	cobra.CheckErr(newCmd().Execute())
}
