package service

import (
	"context"

	"github.com/google/uuid"

	"healthcard_backend/internals/features/form/levels/dto"
	"healthcard_backend/internals/features/form/levels/model"
	progressService "healthcard_backend/internals/features/form/progress/service"
	questionService "healthcard_backend/internals/features/form/questions/service"
	responseModel "healthcard_backend/internals/features/form/responses/model"
)

type Catalog interface {
	Levels(ctx context.Context) ([]model.Level, error)
	Graph(ctx context.Context, sublevelID uint) (*questionService.Graph, error)
}

type ProgressSource interface {
	ProgressRecords(ctx context.Context, userID uuid.UUID, questionIDs []uint) ([]responseModel.QuestionProgress, error)
}

// Roadmap: status tiap sublevel untuk user. Sublevel aktif = sublevel
// pertama (urut level lalu sublevel) yang belum selesai; sesudahnya terkunci.
// Sublevel tanpa pertanyaan dilewati.
type Roadmap struct {
	Catalog  Catalog
	Progress ProgressSource
}

func NewRoadmap(catalog Catalog, progress ProgressSource) *Roadmap {
	return &Roadmap{Catalog: catalog, Progress: progress}
}

func (r *Roadmap) Build(ctx context.Context, userID uuid.UUID) (dto.RoadmapView, error) {
	levels, err := r.Catalog.Levels(ctx)
	if err != nil {
		return dto.RoadmapView{}, err
	}
	records, err := r.Progress.ProgressRecords(ctx, userID, nil)
	if err != nil {
		return dto.RoadmapView{}, err
	}

	view := dto.RoadmapView{Levels: make([]dto.LevelStatus, 0, len(levels))}
	foundCurrent := false

	for _, lv := range levels {
		ls := dto.LevelStatus{
			LevelID:     lv.LevelID,
			Title:       lv.LevelTitle,
			Description: lv.LevelDescription,
			Order:       lv.LevelOrder,
			Completed:   true,
		}
		for _, sub := range lv.Sublevels {
			g, err := r.Catalog.Graph(ctx, sub.SublevelID)
			if err != nil {
				return dto.RoadmapView{}, err
			}
			ss := dto.SublevelStatus{
				SublevelID:     sub.SublevelID,
				Title:          sub.SublevelTitle,
				Order:          sub.SublevelOrder,
				TotalQuestions: len(g.AllIDs()),
			}
			view.TotalSublevels++

			switch {
			case ss.TotalQuestions == 0:
				ss.Locked = foundCurrent
			case progressService.IsDone(g.AllIDs(), records):
				ss.Completed = true
				ss.Percentage = 100
				view.CompletedCount++
			case !foundCurrent:
				foundCurrent = true
				ss.Current = true
				ss.Percentage = progressService.Calculate(g.RootIDs(), records).Percentage
				id := sub.SublevelID
				view.ActiveSublevelID = &id
			default:
				ss.Locked = true
			}
			if !ss.Completed && ss.TotalQuestions > 0 {
				ls.Completed = false
			}
			ls.Sublevels = append(ls.Sublevels, ss)
		}
		view.Levels = append(view.Levels, ls)
	}
	return view, nil
}

// ActiveSublevelID: ok=false kalau semua sublevel sudah selesai.
func (r *Roadmap) ActiveSublevelID(ctx context.Context, userID uuid.UUID) (uint, bool, error) {
	view, err := r.Build(ctx, userID)
	if err != nil {
		return 0, false, err
	}
	if view.ActiveSublevelID == nil {
		return 0, false, nil
	}
	return *view.ActiveSublevelID, true, nil
}
