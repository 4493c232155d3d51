package service

import (
	"healthcard_backend/internals/features/form/flow/dto"
	"healthcard_backend/internals/features/form/flow/model"
	questionService "healthcard_backend/internals/features/form/questions/service"
)

func questionView(sess *model.Session, n *questionService.Node, visible bool) dto.QuestionView {
	q := n.Question
	v := dto.QuestionView{
		QuestionID:     q.QuestionID,
		Type:           string(q.QuestionType),
		Text:           q.QuestionText,
		Order:          q.QuestionOrder,
		Mandatory:      q.QuestionMandatory,
		ImportanceNote: q.QuestionImportanceNote,
		Visible:        visible,
	}
	for _, o := range n.Options {
		v.Options = append(v.Options, dto.OptionView{OptionID: o.QuestionOptionID, Text: o.QuestionOptionText})
	}
	if a, ok := sess.Answer(q.QuestionID); ok {
		v.Answer = &a
	}
	childVisible := ChildrenVisible(sess, n)
	for _, ch := range n.Children {
		v.Children = append(v.Children, questionView(sess, ch, childVisible))
	}
	return v
}

// BuildView menyusun tampilan session untuk client.
func BuildView(g *questionService.Graph, sess *model.Session, saving bool) dto.SessionView {
	v := dto.SessionView{
		SessionID:   sess.SessionID.String(),
		SublevelID:  sess.SublevelID,
		State:       sess.State(),
		Index:       sess.Index,
		Total:       g.Len(),
		Percentage:  sess.Percentage,
		Saving:      saving,
		PendingSkip: sess.PendingSkip,
	}
	if sess.Completed {
		return v
	}
	v.CanAdvance = CanAdvance(g, sess)
	v.CanSkip = CanSkip(g, sess)
	v.CanGoBack = sess.Index > 0
	if sess.Index >= 0 && sess.Index < g.Len() {
		cur := questionView(sess, g.Roots[sess.Index], true)
		v.Current = &cur
	}
	return v
}
