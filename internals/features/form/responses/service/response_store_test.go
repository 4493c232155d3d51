package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"healthcard_backend/internals/databases/testdb"
	levelModel "healthcard_backend/internals/features/form/levels/model"
	questionModel "healthcard_backend/internals/features/form/questions/model"
	questionService "healthcard_backend/internals/features/form/questions/service"
	"healthcard_backend/internals/features/form/responses/dto"
	"healthcard_backend/internals/features/form/responses/model"
)

func seedSublevel(t *testing.T, db *gorm.DB) {
	t.Helper()
	parent := uint(1)
	rows := []any{
		&levelModel.Level{LevelID: 1, LevelTitle: "Level 1", LevelOrder: 1},
		&levelModel.Sublevel{SublevelID: 1, SublevelLevelID: 1, SublevelTitle: "Basics", SublevelOrder: 1},
		&questionModel.Question{QuestionID: 1, QuestionSublevelID: 1, QuestionType: questionModel.QuestionTypeYesNo, QuestionText: "Do you smoke?", QuestionOrder: 1, QuestionMandatory: true},
		&questionModel.Question{QuestionID: 2, QuestionSublevelID: 1, QuestionType: questionModel.QuestionTypeFill, QuestionText: "How many per day?", QuestionOrder: 1, QuestionParentID: &parent},
		&questionModel.Question{QuestionID: 3, QuestionSublevelID: 1, QuestionType: questionModel.QuestionTypeRate, QuestionText: "Rate your sleep", QuestionOrder: 2},
		&questionModel.QuestionOption{QuestionOptionID: 10, QuestionOptionQuestionID: 1, QuestionOptionText: "Yes", QuestionOptionOrder: 1},
		&questionModel.QuestionOption{QuestionOptionID: 11, QuestionOptionQuestionID: 1, QuestionOptionText: "No", QuestionOptionOrder: 2},
	}
	for _, r := range rows {
		if err := db.Create(r).Error; err != nil {
			t.Fatalf("seed %T: %v", r, err)
		}
	}
}

func newStore(t *testing.T) (*ResponseStore, *gorm.DB) {
	db := testdb.Open(t)
	seedSublevel(t, db)
	cat := questionService.NewCatalog(db, time.Second)
	return NewResponseStore(db, cat, time.Second), db
}

func TestUpsert_IsIdempotentPerUserQuestion(t *testing.T) {
	store, db := newStore(t)
	ctx := context.Background()
	user := uuid.New()

	if err := store.Upsert(ctx, user, 3, model.NumberValue(4), nil); err != nil {
		t.Fatalf("first upsert: %v", err)
	}
	if err := store.Upsert(ctx, user, 3, model.NumberValue(5), nil); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	var rows []model.UserResponse
	db.Where("user_response_user_id = ? AND user_response_question_id = ?", user, 3).Find(&rows)
	if len(rows) != 1 {
		t.Fatalf("want exactly 1 response row, got %d", len(rows))
	}
	if rows[0].UserResponseNumber == nil || *rows[0].UserResponseNumber != 5 {
		t.Fatalf("second write should overwrite, got %+v", rows[0].UserResponseNumber)
	}

	var progress []model.QuestionProgress
	db.Where("question_progress_user_id = ?", user).Find(&progress)
	if len(progress) != 1 || !progress[0].QuestionProgressCompleted || progress[0].QuestionProgressCompletedAt == nil {
		t.Fatalf("want one completed progress record, got %+v", progress)
	}
}

func TestUpsert_SeparateUsersDoNotCollide(t *testing.T) {
	store, db := newStore(t)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if err := store.Upsert(ctx, uuid.New(), 3, model.TextValue("ok"), nil); err != nil {
			t.Fatalf("upsert: %v", err)
		}
	}
	var n int64
	db.Model(&model.UserResponse{}).Count(&n)
	if n != 2 {
		t.Fatalf("want 2 rows, got %d", n)
	}
}

func TestUpsert_EmptyValueStillMarksCompleted(t *testing.T) {
	store, _ := newStore(t)
	ctx := context.Background()
	user := uuid.New()

	if err := store.Upsert(ctx, user, 2, model.TextValue(""), nil); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	recs, err := store.ProgressRecords(ctx, user, []uint{2})
	if err != nil {
		t.Fatalf("progress: %v", err)
	}
	if len(recs) != 1 || !recs[0].QuestionProgressCompleted {
		t.Fatalf("empty answer should still complete the question")
	}
}

func TestResolve_Precedence(t *testing.T) {
	store, _ := newStore(t)
	ctx := context.Background()
	user := uuid.New()

	opt := uint(10)
	// teks kosong → jatuh ke option
	if err := store.Upsert(ctx, user, 1, model.TextValue(""), &opt); err != nil {
		t.Fatal(err)
	}
	if err := store.Upsert(ctx, user, 2, model.TextValue("10"), nil); err != nil {
		t.Fatal(err)
	}
	if err := store.Upsert(ctx, user, 3, model.NumberValue(4.5), nil); err != nil {
		t.Fatal(err)
	}

	got, err := store.Resolve(ctx, user, 1)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	want := map[uint]string{1: "Yes", 2: "10", 3: "4.5"}
	for id, w := range want {
		if got[id] != w {
			t.Fatalf("question %d: got %q want %q", id, got[id], w)
		}
	}
}

func TestResolve_UnknownOptionFallsBackToRawID(t *testing.T) {
	r := model.UserResponse{}
	id := uint(77)
	r.UserResponseSelectedOptionID = &id
	if got, ok := ResolveDisplay(r, nil); !ok || got != "77" {
		t.Fatalf("got %q,%v want 77", got, ok)
	}
	if _, ok := ResolveDisplay(model.UserResponse{}, nil); ok {
		t.Fatalf("empty response should not resolve")
	}
}

func TestResolve_UnknownSublevel(t *testing.T) {
	store, _ := newStore(t)
	if _, err := store.Resolve(context.Background(), uuid.New(), 42); err == nil {
		t.Fatalf("expected validation error for unknown sublevel")
	}
}

func TestSubmit_NumericOptionIDBecomesSelection(t *testing.T) {
	store, db := newStore(t)
	ctx := context.Background()
	user := uuid.New()

	res, err := store.Submit(ctx, user, dto.SubmitAnswerRequest{QuestionID: 1, Response: float64(11)})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if res.SelectedOptionID == nil || *res.SelectedOptionID != 11 || res.Response.String() != "No" {
		t.Fatalf("unexpected submit result %+v", res)
	}

	var row model.UserResponse
	db.First(&row, "user_response_user_id = ? AND user_response_question_id = ?", user, 1)
	if row.UserResponseText == nil || *row.UserResponseText != "No" {
		t.Fatalf("stored text should be option text")
	}
}

func TestSubmit_Errors(t *testing.T) {
	store, _ := newStore(t)
	ctx := context.Background()
	user := uuid.New()

	if _, err := store.Submit(ctx, user, dto.SubmitAnswerRequest{QuestionID: 999, Response: "x"}); err == nil {
		t.Fatalf("unknown question should fail")
	}
	if _, err := store.Submit(ctx, user, dto.SubmitAnswerRequest{QuestionID: 3}); err == nil {
		t.Fatalf("missing response should fail")
	}
	if _, err := store.Submit(ctx, user, dto.SubmitAnswerRequest{QuestionID: 3, Response: true}); err == nil {
		t.Fatalf("bool response should fail")
	}
	bad := uint(11)
	if _, err := store.Submit(ctx, user, dto.SubmitAnswerRequest{QuestionID: 3, Response: "x", OptionID: &bad}); err == nil {
		t.Fatalf("option of another question should fail")
	}
}
