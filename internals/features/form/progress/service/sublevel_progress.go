package service

import (
	"context"

	"github.com/google/uuid"

	"healthcard_backend/internals/features/form/progress/dto"
	questionService "healthcard_backend/internals/features/form/questions/service"
	responseModel "healthcard_backend/internals/features/form/responses/model"
	responseService "healthcard_backend/internals/features/form/responses/service"
)

type GraphSource interface {
	Graph(ctx context.Context, sublevelID uint) (*questionService.Graph, error)
}

type ResponseSource interface {
	Responses(ctx context.Context, userID uuid.UUID, questionIDs []uint) (map[uint]responseModel.UserResponse, error)
	ProgressRecords(ctx context.Context, userID uuid.UUID, questionIDs []uint) ([]responseModel.QuestionProgress, error)
}

// Reader menyusun pohon pertanyaan sublevel beserta status completed dan
// nilai jawaban user. Persentase dihitung dari root.
type Reader struct {
	Graphs    GraphSource
	Responses ResponseSource
}

func NewReader(graphs GraphSource, responses ResponseSource) *Reader {
	return &Reader{Graphs: graphs, Responses: responses}
}

func (r *Reader) SublevelProgress(ctx context.Context, userID uuid.UUID, sublevelID uint) (dto.SublevelProgressView, error) {
	g, err := r.Graphs.Graph(ctx, sublevelID)
	if err != nil {
		return dto.SublevelProgressView{}, err
	}
	all := g.AllIDs()
	records, err := r.Responses.ProgressRecords(ctx, userID, all)
	if err != nil {
		return dto.SublevelProgressView{}, err
	}
	stored, err := r.Responses.Responses(ctx, userID, all)
	if err != nil {
		return dto.SublevelProgressView{}, err
	}

	done := CompletedSet(records)
	item := func(n *questionService.Node) dto.QuestionProgressItem {
		q := n.Question
		it := dto.QuestionProgressItem{
			QuestionID:     q.QuestionID,
			Type:           string(q.QuestionType),
			Text:           q.QuestionText,
			Order:          q.QuestionOrder,
			Mandatory:      q.QuestionMandatory,
			ImportanceNote: q.QuestionImportanceNote,
			Completed:      done[q.QuestionID],
		}
		for _, o := range n.Options {
			it.Options = append(it.Options, dto.OptionItem{OptionID: o.QuestionOptionID, Text: o.QuestionOptionText})
		}
		if resp, ok := stored[q.QuestionID]; ok {
			if v, ok := responseService.ResolveDisplay(resp, n.Options); ok {
				it.Value = &v
			}
		}
		return it
	}

	sum := Calculate(g.RootIDs(), records)
	view := dto.SublevelProgressView{
		SublevelID: sublevelID,
		Completed:  sum.Completed,
		Total:      sum.Total,
		Percentage: sum.Percentage,
		Done:       IsDone(all, records),
		Questions:  make([]dto.QuestionProgressItem, 0, len(g.Roots)),
	}
	for _, root := range g.Roots {
		it := item(root)
		for _, ch := range root.Children {
			it.Children = append(it.Children, item(ch))
		}
		view.Questions = append(view.Questions, it)
	}
	return view, nil
}
