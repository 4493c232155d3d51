package service

import (
	"context"

	"github.com/google/uuid"

	levelModel "healthcard_backend/internals/features/form/levels/model"
	progressService "healthcard_backend/internals/features/form/progress/service"
	questionService "healthcard_backend/internals/features/form/questions/service"
	responseModel "healthcard_backend/internals/features/form/responses/model"
	responseService "healthcard_backend/internals/features/form/responses/service"
	"healthcard_backend/internals/features/form/reports/dto"
	"healthcard_backend/internals/helpers/apperr"
)

type Catalog interface {
	Levels(ctx context.Context) ([]levelModel.Level, error)
	Graph(ctx context.Context, sublevelID uint) (*questionService.Graph, error)
}

type ResponseSource interface {
	Responses(ctx context.Context, userID uuid.UUID, questionIDs []uint) (map[uint]responseModel.UserResponse, error)
	ProgressRecords(ctx context.Context, userID uuid.UUID, questionIDs []uint) ([]responseModel.QuestionProgress, error)
}

type ReportService struct {
	Catalog   Catalog
	Responses ResponseSource
}

func NewReportService(catalog Catalog, responses ResponseSource) *ReportService {
	return &ReportService{Catalog: catalog, Responses: responses}
}

// Summary: semua sublevel yang sudah selesai, dengan teks pertanyaan dan
// nilai tampil jawaban, dikelompokkan per level. Tidak ada yang selesai →
// NotFound.
func (s *ReportService) Summary(ctx context.Context, userID uuid.UUID) ([]dto.ReportGroup, error) {
	levels, err := s.Catalog.Levels(ctx)
	if err != nil {
		return nil, err
	}
	records, err := s.Responses.ProgressRecords(ctx, userID, nil)
	if err != nil {
		return nil, err
	}

	var groups []dto.ReportGroup
	for _, lv := range levels {
		for _, sub := range lv.Sublevels {
			g, err := s.Catalog.Graph(ctx, sub.SublevelID)
			if err != nil {
				return nil, err
			}
			ids := g.AllIDs()
			if !progressService.IsDone(ids, records) {
				continue
			}
			stored, err := s.Responses.Responses(ctx, userID, ids)
			if err != nil {
				return nil, err
			}

			grp := dto.ReportGroup{
				LevelID:       lv.LevelID,
				LevelTitle:    lv.LevelTitle,
				SublevelID:    sub.SublevelID,
				SublevelTitle: sub.SublevelTitle,
			}
			g.Walk(func(n *questionService.Node) {
				item := dto.ReportItem{QuestionID: n.ID(), QuestionText: n.Question.QuestionText}
				if r, ok := stored[n.ID()]; ok {
					item.ResponseText, _ = responseService.ResolveDisplay(r, n.Options)
				}
				grp.Questions = append(grp.Questions, item)
			})
			groups = append(groups, grp)
		}
	}

	if len(groups) == 0 {
		return nil, apperr.NotFound("Belum ada sublevel yang selesai")
	}
	return groups, nil
}
