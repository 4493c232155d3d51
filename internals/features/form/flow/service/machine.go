package service

import (
	"strings"

	"healthcard_backend/internals/features/form/flow/model"
	questionModel "healthcard_backend/internals/features/form/questions/model"
	questionService "healthcard_backend/internals/features/form/questions/service"
	responseModel "healthcard_backend/internals/features/form/responses/model"
)

// affirmative: jawaban parent yang membuka pertanyaan anak.
const affirmative = "yes"

// ChildrenVisible: anak tampil kalau jawaban parent (lowercase) == "yes".
func ChildrenVisible(s *model.Session, parent *questionService.Node) bool {
	v, ok := s.Answer(parent.ID())
	if !ok || v.IsNull() {
		return false
	}
	return strings.ToLower(v.String()) == affirmative
}

func VisibleChildren(s *model.Session, parent *questionService.Node) []*questionService.Node {
	if len(parent.Children) == 0 || !ChildrenVisible(s, parent) {
		return nil
	}
	return parent.Children
}

func answered(s *model.Session, id uint) bool {
	v, ok := s.Answer(id)
	return ok && !v.IsEmpty()
}

// CanAdvance: guard untuk Next pada pertanyaan aktif.
func CanAdvance(g *questionService.Graph, s *model.Session) bool {
	if s.Completed || s.Index < 0 || s.Index >= g.Len() {
		return false
	}
	cur := g.Roots[s.Index]
	has := answered(s, cur.ID())

	if cur.Question.QuestionMandatory && !has {
		return false
	}
	if cur.Question.QuestionType == questionModel.QuestionTypeYesNo {
		return has
	}
	for _, ch := range VisibleChildren(s, cur) {
		if !answered(s, ch.ID()) {
			return false
		}
	}
	return true
}

// CanSkip: hanya pertanyaan yang tidak wajib.
func CanSkip(g *questionService.Graph, s *model.Session) bool {
	if s.Completed || s.Index < 0 || s.Index >= g.Len() {
		return false
	}
	return !g.Roots[s.Index].Question.QuestionMandatory
}

// Belongs: pertanyaan boleh dijawab kalau dia root aktif atau anaknya.
func Belongs(g *questionService.Graph, s *model.Session, questionID uint) bool {
	if s.Index < 0 || s.Index >= g.Len() {
		return false
	}
	cur := g.Roots[s.Index]
	if cur.ID() == questionID {
		return true
	}
	for _, ch := range cur.Children {
		if ch.ID() == questionID {
			return true
		}
	}
	return false
}

// ResolveOptionID memetakan jawaban SELECT/YES_NO ke option: angka yang sama
// dengan id option, atau teks yang sama (case-insensitive) dengan teks option.
func ResolveOptionID(n *questionService.Node, v responseModel.AnswerValue) *uint {
	if !n.Question.QuestionType.UsesOptions() {
		return nil
	}
	if id, ok := v.OptionID(); ok {
		if o, found := n.OptionByID(id); found {
			return &o.QuestionOptionID
		}
	}
	if v.Text != nil {
		if o, found := n.OptionByText(*v.Text); found {
			return &o.QuestionOptionID
		}
	}
	return nil
}
