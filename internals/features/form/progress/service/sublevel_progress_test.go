package service

import (
	"context"
	"testing"

	"github.com/google/uuid"

	questionModel "healthcard_backend/internals/features/form/questions/model"
	questionService "healthcard_backend/internals/features/form/questions/service"
	"healthcard_backend/internals/features/form/responses/model"
)

type stubGraphs struct{ g *questionService.Graph }

func (s stubGraphs) Graph(context.Context, uint) (*questionService.Graph, error) { return s.g, nil }

type stubResponses struct {
	stored  map[uint]model.UserResponse
	records []model.QuestionProgress
}

func (s stubResponses) Responses(context.Context, uuid.UUID, []uint) (map[uint]model.UserResponse, error) {
	return s.stored, nil
}

func (s stubResponses) ProgressRecords(context.Context, uuid.UUID, []uint) ([]model.QuestionProgress, error) {
	return s.records, nil
}

func TestReader_TreeWithValues(t *testing.T) {
	parent := uint(1)
	g := questionService.BuildGraph(7, []questionModel.Question{
		{QuestionID: 1, QuestionOrder: 1, QuestionType: questionModel.QuestionTypeYesNo, Options: []questionModel.QuestionOption{
			{QuestionOptionID: 9, QuestionOptionText: "Yes", QuestionOptionOrder: 1},
		}},
		{QuestionID: 2, QuestionOrder: 1, QuestionType: questionModel.QuestionTypeFill, QuestionParentID: &parent},
		{QuestionID: 3, QuestionOrder: 2, QuestionType: questionModel.QuestionTypeRate},
	})
	opt := uint(9)
	empty := ""
	stored := map[uint]model.UserResponse{
		1: {UserResponseText: &empty, UserResponseSelectedOptionID: &opt},
	}
	records := []model.QuestionProgress{
		{QuestionProgressQuestionID: 1, QuestionProgressCompleted: true},
		{QuestionProgressQuestionID: 2, QuestionProgressCompleted: true},
	}

	r := NewReader(stubGraphs{g}, stubResponses{stored: stored, records: records})
	view, err := r.SublevelProgress(context.Background(), uuid.New(), 7)
	if err != nil {
		t.Fatal(err)
	}
	if view.Total != 2 || view.Completed != 1 || view.Percentage != 50 || view.Done {
		t.Fatalf("summary: %+v", view)
	}
	if len(view.Questions) != 2 || len(view.Questions[0].Children) != 1 {
		t.Fatalf("tree shape wrong: %+v", view.Questions)
	}
	q1 := view.Questions[0]
	if !q1.Completed || q1.Value == nil || *q1.Value != "Yes" {
		t.Fatalf("q1: %+v", q1)
	}
	if !q1.Children[0].Completed || q1.Children[0].Value != nil {
		t.Fatalf("child: %+v", q1.Children[0])
	}
	if view.Questions[1].Completed {
		t.Fatalf("q3 has no record")
	}
}
