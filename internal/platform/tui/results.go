package tui

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/boxfish/internal/storage"
)

// storeResults persists finished stages and runs for one player.
// A nil store discards everything.
type storeResults struct {
	store  *storage.Store
	player string
	logger *log.Logger
}

// StageCleared records a stage clear.
func (r storeResults) StageCleared(stageID string, steps int) {
	if r.store == nil {
		return
	}
	if _, err := r.store.SaveStageClear(storage.StageClear{
		Player:  r.player,
		StageID: stageID,
		Steps:   steps,
	}); err != nil {
		r.logger.Warn("could not save stage clear", "stage", stageID, "error", err)
	}
}

// RunFinished records a finished run.
func (r storeResults) RunFinished(steps int, rank string, stages int) {
	if r.store == nil {
		return
	}
	if _, err := r.store.SaveRun(storage.RunResult{
		Player: r.player,
		Steps:  steps,
		Rank:   rank,
		Stages: stages,
	}); err != nil {
		r.logger.Warn("could not save run", "steps", steps, "error", err)
	}
}
