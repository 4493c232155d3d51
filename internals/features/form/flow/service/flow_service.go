package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"healthcard_backend/internals/features/form/flow/dto"
	"healthcard_backend/internals/features/form/flow/model"
	"healthcard_backend/internals/features/form/flow/store"
	progressService "healthcard_backend/internals/features/form/progress/service"
	questionService "healthcard_backend/internals/features/form/questions/service"
	responseModel "healthcard_backend/internals/features/form/responses/model"
	responseService "healthcard_backend/internals/features/form/responses/service"
	pointDto "healthcard_backend/internals/features/progress/points/dto"
	pointModel "healthcard_backend/internals/features/progress/points/model"
	pointService "healthcard_backend/internals/features/progress/points/service"
	helper "healthcard_backend/internals/helpers"
	"healthcard_backend/internals/helpers/apperr"
)

type GraphSource interface {
	Graph(ctx context.Context, sublevelID uint) (*questionService.Graph, error)
}

type AnswerStore interface {
	Upsert(ctx context.Context, userID uuid.UUID, questionID uint, value responseModel.AnswerValue, optionID *uint) error
	Responses(ctx context.Context, userID uuid.UUID, questionIDs []uint) (map[uint]responseModel.UserResponse, error)
	ProgressRecords(ctx context.Context, userID uuid.UUID, questionIDs []uint) ([]responseModel.QuestionProgress, error)
}

type PointsAwarder interface {
	AddPoints(ctx context.Context, userID uuid.UUID, delta int, src pointService.Source) (pointDto.AwardResult, error)
}

// ActivityRecorder mencatat streak harian; boleh nil.
type ActivityRecorder interface {
	Touch(ctx context.Context, userID uuid.UUID, now time.Time) error
}

// ActiveSublevelFinder dipakai Start tanpa sublevel id.
type ActiveSublevelFinder interface {
	ActiveSublevelID(ctx context.Context, userID uuid.UUID) (uint, bool, error)
}

type FlowService struct {
	Graphs           GraphSource
	Answers          AnswerStore
	Awarder          PointsAwarder
	Active           ActiveSublevelFinder
	Activity         ActivityRecorder
	Store            store.SessionStore
	Timeout          time.Duration
	CompletionPoints int
}

// ================= construction =================

// Start membuat session baru untuk sublevel (atau sublevel aktif kalau id
// kosong), mengisi jawaban dari response tersimpan. Session lama user diganti.
func (s *FlowService) Start(ctx context.Context, userID uuid.UUID, sublevelID *uint) (dto.SessionView, error) {
	if userID == uuid.Nil {
		return dto.SessionView{}, apperr.Unauthorized("User belum login")
	}

	var id uint
	if sublevelID != nil {
		id = *sublevelID
	} else {
		if s.Active == nil {
			return dto.SessionView{}, apperr.Validation("sublevel_id", "wajib diisi")
		}
		active, ok, err := s.Active.ActiveSublevelID(ctx, userID)
		if err != nil {
			return dto.SessionView{}, err
		}
		if !ok {
			return dto.SessionView{}, apperr.NotFound("Semua sublevel sudah selesai")
		}
		id = active
	}

	g, err := s.Graphs.Graph(ctx, id)
	if err != nil {
		return dto.SessionView{}, err
	}
	if g.Len() == 0 {
		return dto.SessionView{}, apperr.Validation("sublevel_id", "Sublevel belum punya pertanyaan")
	}

	stored, err := s.Answers.Responses(ctx, userID, g.AllIDs())
	if err != nil {
		return dto.SessionView{}, err
	}
	answers := make(map[uint]responseModel.AnswerValue, len(stored))
	g.Walk(func(n *questionService.Node) {
		r, ok := stored[n.ID()]
		if !ok {
			return
		}
		if v, ok := responseService.ResolveValue(r, n.Options); ok {
			answers[n.ID()] = v
		}
	})

	records, err := s.Answers.ProgressRecords(ctx, userID, g.RootIDs())
	if err != nil {
		return dto.SessionView{}, err
	}

	now := time.Now()
	sess := &model.Session{
		SessionID:  uuid.New(),
		UserID:     userID,
		SublevelID: id,
		Index:      0,
		Percentage: progressService.Calculate(g.RootIDs(), records).Percentage,
		Answers:    answers,
		StartedAt:  now,
		UpdatedAt:  now,
	}

	pctx, cancel := helper.PersistContext(ctx, s.Timeout)
	defer cancel()
	if err := s.Store.Save(pctx, sess); err != nil {
		return dto.SessionView{}, apperr.Persistence("Gagal menyimpan sesi", err)
	}
	log.Printf("[FLOW] start user=%s sublevel=%d session=%s resumed=%d answer", userID, id, sess.SessionID, len(answers))
	return BuildView(g, sess, false), nil
}

// Current mengembalikan session aktif user.
func (s *FlowService) Current(ctx context.Context, userID uuid.UUID) (dto.SessionView, error) {
	sess, err := s.load(ctx, userID)
	if err != nil {
		return dto.SessionView{}, err
	}
	g, err := s.Graphs.Graph(ctx, sess.SublevelID)
	if err != nil {
		return dto.SessionView{}, err
	}
	busy, err := s.Store.Busy(ctx, userID)
	if err != nil {
		log.Printf("[FLOW] cek guard user=%s: %v", userID, err)
	}
	return BuildView(g, sess, busy), nil
}

// ================= transitions =================

// Answer mengubah jawaban di session saja, tanpa persist.
func (s *FlowService) Answer(ctx context.Context, userID uuid.UUID, questionID uint, raw any) (dto.SessionView, error) {
	value, ok := responseModel.ValueFromAny(raw)
	if !ok {
		return dto.SessionView{}, apperr.Validation("response", "harus berupa string atau angka")
	}
	g, sess, err := s.mutate(ctx, userID, func(g *questionService.Graph, sess *model.Session) error {
		if !Belongs(g, sess, questionID) {
			return apperr.Validation("question_id", "Bukan pertanyaan yang sedang aktif")
		}
		if sess.Answers == nil {
			sess.Answers = map[uint]responseModel.AnswerValue{}
		}
		sess.Answers[questionID] = value
		return nil
	})
	if err != nil {
		return dto.SessionView{}, err
	}
	return BuildView(g, sess, false), nil
}

// Next menyimpan jawaban pertanyaan aktif (dan anak yang tampil) lalu maju;
// di pertanyaan terakhir melakukan flush dan award poin.
func (s *FlowService) Next(ctx context.Context, userID uuid.UUID) (dto.TransitionView, error) {
	var out dto.TransitionView
	g, sess, err := s.mutate(ctx, userID, func(g *questionService.Graph, sess *model.Session) error {
		if !CanAdvance(g, sess) {
			return apperr.Validation("answer", "Jawaban pertanyaan ini wajib diisi")
		}
		return s.advance(ctx, g, sess, &out)
	})
	if err != nil {
		return dto.TransitionView{}, err
	}
	s.touch(ctx, userID)
	out.Session = BuildView(g, sess, false)
	return out, nil
}

// Previous mundur satu pertanyaan tanpa persist.
func (s *FlowService) Previous(ctx context.Context, userID uuid.UUID) (dto.SessionView, error) {
	g, sess, err := s.mutate(ctx, userID, func(g *questionService.Graph, sess *model.Session) error {
		if sess.Index <= 0 {
			return apperr.Validation("index", "Sudah di pertanyaan pertama")
		}
		sess.Index--
		sess.PendingSkip = false
		sess.Percentage = progressService.Percentage(sess.Index+1, g.Len())
		return nil
	})
	if err != nil {
		return dto.SessionView{}, err
	}
	return BuildView(g, sess, false), nil
}

// RequestSkip: langkah pertama skip, mengembalikan prompt konfirmasi.
func (s *FlowService) RequestSkip(ctx context.Context, userID uuid.UUID) (dto.SkipPrompt, error) {
	var prompt dto.SkipPrompt
	g, sess, err := s.mutate(ctx, userID, func(g *questionService.Graph, sess *model.Session) error {
		if !CanSkip(g, sess) {
			return apperr.Validation("question_id", "Pertanyaan wajib tidak bisa dilewati")
		}
		cur := g.Roots[sess.Index].Question
		sess.PendingSkip = true
		prompt.QuestionID = cur.QuestionID
		prompt.QuestionText = cur.QuestionText
		prompt.ImportanceNote = cur.QuestionImportanceNote
		return nil
	})
	if err != nil {
		return dto.SkipPrompt{}, err
	}
	prompt.Session = BuildView(g, sess, false)
	return prompt, nil
}

// ConfirmSkip menjalankan efek Next untuk pertanyaan yang sudah diminta skip.
func (s *FlowService) ConfirmSkip(ctx context.Context, userID uuid.UUID) (dto.TransitionView, error) {
	var out dto.TransitionView
	g, sess, err := s.mutate(ctx, userID, func(g *questionService.Graph, sess *model.Session) error {
		if !sess.PendingSkip {
			return apperr.Validation("skip", "Skip belum diminta")
		}
		if !CanSkip(g, sess) {
			return apperr.Validation("question_id", "Pertanyaan wajib tidak bisa dilewati")
		}
		return s.advance(ctx, g, sess, &out)
	})
	if err != nil {
		return dto.TransitionView{}, err
	}
	s.touch(ctx, userID)
	out.Session = BuildView(g, sess, false)
	return out, nil
}

func (s *FlowService) CancelSkip(ctx context.Context, userID uuid.UUID) (dto.SessionView, error) {
	g, sess, err := s.mutate(ctx, userID, func(_ *questionService.Graph, sess *model.Session) error {
		sess.PendingSkip = false
		return nil
	})
	if err != nil {
		return dto.SessionView{}, err
	}
	return BuildView(g, sess, false), nil
}

// ================= internals =================

func (s *FlowService) load(ctx context.Context, userID uuid.UUID) (*model.Session, error) {
	if userID == uuid.Nil {
		return nil, apperr.Unauthorized("User belum login")
	}
	sess, err := s.Store.Load(ctx, userID)
	if errors.Is(err, store.ErrNoSession) {
		return nil, apperr.NotFound("Belum ada sesi flow, mulai dulu")
	}
	if err != nil {
		return nil, apperr.Persistence("Gagal memuat sesi", err)
	}
	return sess, nil
}

// mutate: guard transisi → load → fn → simpan kalau session masih yang sama.
// fn yang gagal tidak menyimpan perubahan apa pun ke session.
func (s *FlowService) mutate(ctx context.Context, userID uuid.UUID, fn func(*questionService.Graph, *model.Session) error) (*questionService.Graph, *model.Session, error) {
	if userID == uuid.Nil {
		return nil, nil, apperr.Unauthorized("User belum login")
	}
	release, err := s.Store.Acquire(ctx, userID, s.lockTTLFor(ctx, userID))
	if errors.Is(err, store.ErrBusy) {
		return nil, nil, apperr.Conflict("Sedang menyimpan, tunggu sebentar")
	}
	if err != nil {
		return nil, nil, apperr.Persistence("Gagal mengunci sesi", err)
	}
	defer release()

	sess, err := s.load(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	g, err := s.Graphs.Graph(ctx, sess.SublevelID)
	if err != nil {
		return nil, nil, err
	}
	if sess.Completed {
		return nil, nil, apperr.Validation("session", "Sublevel sudah selesai")
	}
	if err := fn(g, sess); err != nil {
		return nil, nil, err
	}

	if err := s.saveIfCurrent(ctx, sess); err != nil {
		return nil, nil, err
	}
	return g, sess, nil
}

func (s *FlowService) saveIfCurrent(ctx context.Context, sess *model.Session) error {
	sess.UpdatedAt = time.Now()
	pctx, cancel := helper.PersistContext(ctx, s.Timeout)
	defer cancel()
	err := s.Store.SaveIfCurrent(pctx, sess)
	if errors.Is(err, store.ErrStale) {
		log.Printf("[FLOW] session %s user=%s sudah berubah, hasil transisi dibuang", sess.SessionID, sess.UserID)
		return apperr.Conflict("Sesi sudah diganti atau diproses transisi lain")
	}
	if err != nil {
		return apperr.Persistence("Gagal menyimpan sesi", err)
	}
	return nil
}

// LockTTL: umur guard transisi untuk graph g. Flush terakhir melakukan satu
// panggilan persistence per pertanyaan, ditambah klaim selesai dan award.
func (s *FlowService) LockTTL(g *questionService.Graph) time.Duration {
	timeout := s.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return timeout * time.Duration(len(g.AllIDs())+2)
}

// lockTTLFor membaca session tanpa guard hanya untuk menentukan umur guard;
// gagal → 0 (default store).
func (s *FlowService) lockTTLFor(ctx context.Context, userID uuid.UUID) time.Duration {
	sess, err := s.Store.Load(ctx, userID)
	if err != nil {
		return 0
	}
	g, err := s.Graphs.Graph(ctx, sess.SublevelID)
	if err != nil {
		return 0
	}
	return s.LockTTL(g)
}

// touch: kegagalan streak tidak menggagalkan transisi.
func (s *FlowService) touch(ctx context.Context, userID uuid.UUID) {
	if s.Activity == nil {
		return
	}
	if err := s.Activity.Touch(ctx, userID, time.Now()); err != nil {
		log.Printf("[FLOW] catat aktivitas harian gagal user=%s: %v", userID, err)
	}
}

func (s *FlowService) persist(ctx context.Context, userID uuid.UUID, n *questionService.Node, v responseModel.AnswerValue) model.SaveResult {
	res := model.SaveResult{QuestionID: n.ID(), OK: true}
	if err := s.Answers.Upsert(ctx, userID, n.ID(), v, ResolveOptionID(n, v)); err != nil {
		res.OK = false
		res.Reason = err.Error()
	}
	return res
}

// advance = efek Next: persist pertanyaan aktif + anak yang tampil, lalu
// maju atau flush.
func (s *FlowService) advance(ctx context.Context, g *questionService.Graph, sess *model.Session, out *dto.TransitionView) error {
	cur := g.Roots[sess.Index]

	if v, ok := sess.Answer(cur.ID()); ok {
		out.Saves = append(out.Saves, s.persist(ctx, sess.UserID, cur, v))
	}
	for _, ch := range VisibleChildren(sess, cur) {
		if v, ok := sess.Answer(ch.ID()); ok {
			out.Saves = append(out.Saves, s.persist(ctx, sess.UserID, ch, v))
		}
	}
	for _, r := range out.Saves {
		if !r.OK {
			log.Printf("[ERROR] flow save user=%s question=%d: %s", sess.UserID, r.QuestionID, r.Reason)
			return apperr.Persistence(fmt.Sprintf("Gagal menyimpan jawaban pertanyaan %d", r.QuestionID), errors.New(r.Reason))
		}
	}

	sess.PendingSkip = false
	if sess.Index+1 < g.Len() {
		sess.Index++
		sess.Percentage = progressService.Percentage(sess.Index+1, g.Len())
		return nil
	}

	return s.flush(ctx, g, sess, out)
}

// flush menyimpan semua pertanyaan sublevel (kosong kalau belum dijawab),
// mengklaim session sebagai selesai, lalu memberi poin penyelesaian. Gagal
// simpan jawaban atau award dicatat dan tidak menggagalkan transisi; klaim
// yang kalah (session sudah berubah) menggagalkan transisi tanpa award.
func (s *FlowService) flush(ctx context.Context, g *questionService.Graph, sess *model.Session, out *dto.TransitionView) error {
	out.Flushed = true
	g.Walk(func(n *questionService.Node) {
		v, ok := sess.Answer(n.ID())
		if !ok {
			v = responseModel.TextValue("")
		}
		r := s.persist(ctx, sess.UserID, n, v)
		if !r.OK {
			log.Printf("[FLOW] flush gagal user=%s question=%d: %s", sess.UserID, r.QuestionID, r.Reason)
		}
		out.Saves = append(out.Saves, r)
	})

	// klaim dulu: hanya satu transisi per session yang bisa sampai ke award
	sess.Percentage = 100
	sess.Completed = true
	if err := s.saveIfCurrent(ctx, sess); err != nil {
		return err
	}

	award, err := s.Awarder.AddPoints(ctx, sess.UserID, s.CompletionPoints, pointService.Source{
		Type: pointModel.SourceModuleCompletion,
		ID:   int(sess.SublevelID),
	})
	if err != nil {
		log.Printf("[FLOW] award poin gagal user=%s sublevel=%d: %v", sess.UserID, sess.SublevelID, err)
		out.AwardError = "Gagal menambahkan poin"
	} else {
		out.Award = &award
	}

	log.Printf("[FLOW] sublevel %d selesai user=%s", sess.SublevelID, sess.UserID)
	return nil
}
