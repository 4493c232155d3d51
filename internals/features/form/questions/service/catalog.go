package service

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"gorm.io/gorm"

	levelModel "healthcard_backend/internals/features/form/levels/model"
	"healthcard_backend/internals/features/form/questions/model"
	helper "healthcard_backend/internals/helpers"
	"healthcard_backend/internals/helpers/apperr"
)

// Catalog membaca bank soal (levels, sublevels, questions, options) dan
// menyimpan graph per sublevel di memori. Bank soal statis per modul;
// Invalidate dipanggil setelah seeding.
type Catalog struct {
	DB      *gorm.DB
	Timeout time.Duration

	mu     sync.RWMutex
	graphs map[uint]*Graph
}

func NewCatalog(db *gorm.DB, timeout time.Duration) *Catalog {
	return &Catalog{DB: db, Timeout: timeout, graphs: map[uint]*Graph{}}
}

// Graph mengembalikan graph pertanyaan sublevel. Sublevel tidak dikenal →
// Validation pada field sublevel_id.
func (c *Catalog) Graph(ctx context.Context, sublevelID uint) (*Graph, error) {
	c.mu.RLock()
	g, ok := c.graphs[sublevelID]
	c.mu.RUnlock()
	if ok {
		return g, nil
	}

	ctx, cancel := helper.PersistContext(ctx, c.Timeout)
	defer cancel()

	var sub levelModel.Sublevel
	if err := c.DB.WithContext(ctx).First(&sub, "sublevel_id = ?", sublevelID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Validation("sublevel_id", "Sublevel tidak ditemukan")
		}
		return nil, apperr.Persistence("Gagal memuat sublevel", err)
	}

	var questions []model.Question
	if err := c.DB.WithContext(ctx).
		Preload("Options").
		Where("question_sublevel_id = ?", sublevelID).
		Order("question_order ASC, question_id ASC").
		Find(&questions).Error; err != nil {
		return nil, apperr.Persistence("Gagal memuat pertanyaan", err)
	}

	g = BuildGraph(sublevelID, questions)
	log.Printf("[CATALOG] graph sublevel %d dimuat: %d root, %d pertanyaan", sublevelID, g.Len(), len(questions))

	c.mu.Lock()
	c.graphs[sublevelID] = g
	c.mu.Unlock()
	return g, nil
}

// Levels: semua level beserta sublevel, urut level_order lalu sublevel_order.
func (c *Catalog) Levels(ctx context.Context) ([]levelModel.Level, error) {
	ctx, cancel := helper.PersistContext(ctx, c.Timeout)
	defer cancel()

	var levels []levelModel.Level
	if err := c.DB.WithContext(ctx).
		Preload("Sublevels", func(db *gorm.DB) *gorm.DB {
			return db.Order("sublevel_order ASC, sublevel_id ASC")
		}).
		Order("level_order ASC, level_id ASC").
		Find(&levels).Error; err != nil {
		return nil, apperr.Persistence("Gagal memuat level", err)
	}
	return levels, nil
}

// Question: satu pertanyaan beserta option-nya.
func (c *Catalog) Question(ctx context.Context, questionID uint) (*model.Question, error) {
	ctx, cancel := helper.PersistContext(ctx, c.Timeout)
	defer cancel()

	var q model.Question
	err := c.DB.WithContext(ctx).
		Preload("Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("question_option_order ASC")
		}).
		First(&q, "question_id = ?", questionID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Pertanyaan tidak ditemukan")
		}
		return nil, apperr.Persistence("Gagal memuat pertanyaan", err)
	}
	return &q, nil
}

func (c *Catalog) Invalidate() {
	c.mu.Lock()
	c.graphs = map[uint]*Graph{}
	c.mu.Unlock()
}
