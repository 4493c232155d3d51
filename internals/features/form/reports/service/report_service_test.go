package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"healthcard_backend/internals/databases/testdb"
	levelModel "healthcard_backend/internals/features/form/levels/model"
	questionModel "healthcard_backend/internals/features/form/questions/model"
	questionService "healthcard_backend/internals/features/form/questions/service"
	responseModel "healthcard_backend/internals/features/form/responses/model"
	responseService "healthcard_backend/internals/features/form/responses/service"
	"healthcard_backend/internals/helpers/apperr"
)

func TestSummary_OnlyCompletedSublevels(t *testing.T) {
	db := testdb.Open(t)
	rows := []any{
		&levelModel.Level{LevelID: 1, LevelTitle: "Basic", LevelOrder: 1},
		&levelModel.Sublevel{SublevelID: 1, SublevelLevelID: 1, SublevelTitle: "Lifestyle", SublevelOrder: 1},
		&levelModel.Sublevel{SublevelID: 2, SublevelLevelID: 1, SublevelTitle: "History", SublevelOrder: 2},
		&questionModel.Question{QuestionID: 1, QuestionSublevelID: 1, QuestionType: questionModel.QuestionTypeSelect, QuestionText: "Diet?", QuestionOrder: 1},
		&questionModel.Question{QuestionID: 2, QuestionSublevelID: 1, QuestionType: questionModel.QuestionTypeText, QuestionText: "Notes", QuestionOrder: 2},
		&questionModel.Question{QuestionID: 3, QuestionSublevelID: 2, QuestionType: questionModel.QuestionTypeText, QuestionText: "Surgeries", QuestionOrder: 1},
		&questionModel.QuestionOption{QuestionOptionID: 5, QuestionOptionQuestionID: 1, QuestionOptionText: "Vegan", QuestionOptionOrder: 1},
	}
	for _, r := range rows {
		if err := db.Create(r).Error; err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
	cat := questionService.NewCatalog(db, time.Second)
	store := responseService.NewResponseStore(db, cat, time.Second)
	svc := NewReportService(cat, store)
	ctx := context.Background()
	user := uuid.New()

	if _, err := svc.Summary(ctx, user); apperr.KindOf(err) != apperr.KindNotFound {
		t.Fatalf("no completed sublevel → not found, got %v", err)
	}

	opt := uint(5)
	store.Upsert(ctx, user, 1, responseModel.NumberValue(5), &opt)
	store.Upsert(ctx, user, 2, responseModel.TextValue(""), nil)

	groups, err := svc.Summary(ctx, user)
	if err != nil {
		t.Fatal(err)
	}
	if len(groups) != 1 || groups[0].SublevelID != 1 || groups[0].LevelTitle != "Basic" {
		t.Fatalf("unexpected groups %+v", groups)
	}
	items := groups[0].Questions
	if len(items) != 2 || items[0].ResponseText != "Vegan" || items[1].ResponseText != "" {
		t.Fatalf("unexpected items %+v", items)
	}
}
