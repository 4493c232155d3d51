package service

import (
	"testing"

	"healthcard_backend/internals/features/form/responses/model"
)

func rec(qid uint, done bool) model.QuestionProgress {
	return model.QuestionProgress{QuestionProgressQuestionID: qid, QuestionProgressCompleted: done}
}

func TestPercentage(t *testing.T) {
	cases := []struct {
		c, n, want int
	}{
		{0, 0, 0},
		{0, 4, 0},
		{1, 3, 33},
		{2, 3, 67},
		{1, 8, 13}, // 12.5 dibulatkan ke atas
		{4, 4, 100},
	}
	for _, tc := range cases {
		if got := Percentage(tc.c, tc.n); got != tc.want {
			t.Fatalf("Percentage(%d,%d) = %d, want %d", tc.c, tc.n, got, tc.want)
		}
	}
}

func TestCalculate_AllRecordsMustBeCompleted(t *testing.T) {
	ids := []uint{1, 2, 3, 4}
	records := []model.QuestionProgress{
		rec(1, true),
		rec(2, true), rec(2, false),
		rec(3, false),
		rec(99, true), // bukan milik daftar
	}
	s := Calculate(ids, records)
	if s.Completed != 1 || s.Total != 4 || s.Percentage != 25 {
		t.Fatalf("unexpected summary %+v", s)
	}
}

func TestIsDone(t *testing.T) {
	if IsDone(nil, nil) {
		t.Fatalf("module without questions is never done")
	}
	ids := []uint{1, 2}
	if IsDone(ids, []model.QuestionProgress{rec(1, true)}) {
		t.Fatalf("question 2 has no record")
	}
	if !IsDone(ids, []model.QuestionProgress{rec(1, true), rec(2, true)}) {
		t.Fatalf("all completed should be done")
	}
}
