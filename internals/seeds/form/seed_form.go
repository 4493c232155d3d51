package form

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	levelModel "healthcard_backend/internals/features/form/levels/model"
	questionModel "healthcard_backend/internals/features/form/questions/model"
)

type OptionSeed struct {
	OptionID uint   `json:"option_id"`
	Text     string `json:"text"`
	Order    int    `json:"order"`
}

type QuestionSeed struct {
	QuestionID     uint           `json:"question_id"`
	Type           string         `json:"type"`
	Text           string         `json:"text"`
	Order          int            `json:"order"`
	Mandatory      bool           `json:"mandatory"`
	ImportanceNote *string        `json:"importance_note"` // bisa null
	Options        []OptionSeed   `json:"options"`
	Children       []QuestionSeed `json:"children"` // hanya satu tingkat
}

type SublevelSeed struct {
	SublevelID uint           `json:"sublevel_id"`
	Title      string         `json:"title"`
	Order      int            `json:"order"`
	Questions  []QuestionSeed `json:"questions"`
}

type LevelSeed struct {
	LevelID     uint           `json:"level_id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Order       int            `json:"order"`
	Sublevels   []SublevelSeed `json:"sublevels"`
}

// SeedFormFromJSON memuat bank soal dari file JSON. Baris dengan id yang
// sudah ada dilewati, jadi aman dijalankan berulang.
func SeedFormFromJSON(db *gorm.DB, filePath string) error {
	log.Println("📥 Membaca file:", filePath)

	content, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("baca file JSON: %w", err)
	}

	var data []LevelSeed
	if err := json.Unmarshal(content, &data); err != nil {
		return fmt.Errorf("decode JSON: %w", err)
	}

	return db.Transaction(func(tx *gorm.DB) error {
		inserted := 0
		for _, lv := range data {
			n, err := insertIgnore(tx, &levelModel.Level{
				LevelID:          lv.LevelID,
				LevelTitle:       lv.Title,
				LevelDescription: lv.Description,
				LevelOrder:       lv.Order,
			})
			if err != nil {
				return fmt.Errorf("level %d: %w", lv.LevelID, err)
			}
			inserted += n

			for _, sub := range lv.Sublevels {
				n, err := insertIgnore(tx, &levelModel.Sublevel{
					SublevelID:      sub.SublevelID,
					SublevelLevelID: lv.LevelID,
					SublevelTitle:   sub.Title,
					SublevelOrder:   sub.Order,
				})
				if err != nil {
					return fmt.Errorf("sublevel %d: %w", sub.SublevelID, err)
				}
				inserted += n

				for _, q := range sub.Questions {
					n, err := seedQuestion(tx, sub.SublevelID, nil, q)
					if err != nil {
						return err
					}
					inserted += n
				}
			}
		}
		log.Printf("✅ Seed form selesai: %d baris baru", inserted)
		return nil
	})
}

func seedQuestion(tx *gorm.DB, sublevelID uint, parentID *uint, q QuestionSeed) (int, error) {
	typ, ok := questionModel.ParseQuestionType(q.Type)
	if !ok {
		return 0, fmt.Errorf("question %d: tipe %q tidak dikenal", q.QuestionID, q.Type)
	}
	if parentID != nil && len(q.Children) > 0 {
		return 0, fmt.Errorf("question %d: anak tidak boleh punya anak", q.QuestionID)
	}

	inserted, err := insertIgnore(tx, &questionModel.Question{
		QuestionID:             q.QuestionID,
		QuestionSublevelID:     sublevelID,
		QuestionType:           typ,
		QuestionText:           q.Text,
		QuestionOrder:          q.Order,
		QuestionMandatory:      q.Mandatory,
		QuestionImportanceNote: q.ImportanceNote,
		QuestionParentID:       parentID,
	})
	if err != nil {
		return 0, fmt.Errorf("question %d: %w", q.QuestionID, err)
	}

	for _, o := range q.Options {
		n, err := insertIgnore(tx, &questionModel.QuestionOption{
			QuestionOptionID:         o.OptionID,
			QuestionOptionQuestionID: q.QuestionID,
			QuestionOptionText:       o.Text,
			QuestionOptionOrder:      o.Order,
		})
		if err != nil {
			return 0, fmt.Errorf("option %d: %w", o.OptionID, err)
		}
		inserted += n
	}

	parent := q.QuestionID
	for _, ch := range q.Children {
		n, err := seedQuestion(tx, sublevelID, &parent, ch)
		if err != nil {
			return 0, err
		}
		inserted += n
	}
	return inserted, nil
}

func insertIgnore(tx *gorm.DB, row any) (int, error) {
	res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(row)
	return int(res.RowsAffected), res.Error
}
