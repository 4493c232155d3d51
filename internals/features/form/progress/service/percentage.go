package service

import (
	"math"

	"healthcard_backend/internals/features/form/responses/model"
)

type Summary struct {
	Completed  int `json:"completed"`
	Total      int `json:"total"`
	Percentage int `json:"percentage"`
}

// Percentage = round(completed/total*100); 0 kalau total 0.
func Percentage(completed, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}

// CompletedSet: pertanyaan yang punya minimal satu record dan semua
// record-nya completed.
func CompletedSet(records []model.QuestionProgress) map[uint]bool {
	out := make(map[uint]bool, len(records))
	for _, r := range records {
		done, seen := out[r.QuestionProgressQuestionID]
		if !seen {
			out[r.QuestionProgressQuestionID] = r.QuestionProgressCompleted
			continue
		}
		out[r.QuestionProgressQuestionID] = done && r.QuestionProgressCompleted
	}
	return out
}

// Calculate menghitung ringkasan progress untuk daftar pertanyaan.
func Calculate(questionIDs []uint, records []model.QuestionProgress) Summary {
	done := CompletedSet(records)
	completed := 0
	for _, id := range questionIDs {
		if done[id] {
			completed++
		}
	}
	return Summary{
		Completed:  completed,
		Total:      len(questionIDs),
		Percentage: Percentage(completed, len(questionIDs)),
	}
}

// IsDone: modul selesai kalau ada pertanyaan dan semuanya completed.
func IsDone(questionIDs []uint, records []model.QuestionProgress) bool {
	s := Calculate(questionIDs, records)
	return s.Total > 0 && s.Completed == s.Total
}
