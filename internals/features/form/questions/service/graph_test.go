package service

import (
	"testing"

	"healthcard_backend/internals/features/form/questions/model"
)

func uptr(v uint) *uint { return &v }

func q(id uint, order int, parent *uint) model.Question {
	return model.Question{
		QuestionID:       id,
		QuestionOrder:    order,
		QuestionType:     model.QuestionTypeText,
		QuestionParentID: parent,
	}
}

func TestBuildGraph_RootsAndChildrenOrdered(t *testing.T) {
	g := BuildGraph(1, []model.Question{
		q(4, 2, nil),
		q(1, 1, nil),
		q(7, 3, uptr(1)),
		q(6, 1, uptr(1)),
		q(5, 1, uptr(4)),
	})

	if got := g.RootIDs(); len(got) != 2 || got[0] != 1 || got[1] != 4 {
		t.Fatalf("roots = %v, want [1 4]", got)
	}
	r1, _ := g.Node(1)
	if len(r1.Children) != 2 || r1.Children[0].ID() != 6 || r1.Children[1].ID() != 7 {
		t.Fatalf("children of 1 not ordered by their own order")
	}
	if got := g.AllIDs(); len(got) != 5 || got[0] != 1 || got[1] != 6 || got[2] != 7 || got[3] != 4 || got[4] != 5 {
		t.Fatalf("AllIDs = %v", got)
	}
	if g.Len() != 2 {
		t.Fatalf("Len = %d, want 2", g.Len())
	}
}

func TestBuildGraph_StableOnEqualOrder(t *testing.T) {
	g := BuildGraph(1, []model.Question{
		q(1, 1, nil),
		q(3, 5, uptr(1)),
		q(2, 5, uptr(1)),
	})
	r, _ := g.Node(1)
	if r.Children[0].ID() != 3 || r.Children[1].ID() != 2 {
		t.Fatalf("equal order must keep input order, got %d,%d", r.Children[0].ID(), r.Children[1].ID())
	}
}

func TestBuildGraph_OrphanBecomesRoot(t *testing.T) {
	g := BuildGraph(1, []model.Question{
		q(1, 1, nil),
		q(2, 2, uptr(99)),
	})
	if got := g.RootIDs(); len(got) != 2 || got[1] != 2 {
		t.Fatalf("orphan should be a root, roots = %v", got)
	}
}

func TestBuildGraph_GrandchildBecomesRoot(t *testing.T) {
	g := BuildGraph(1, []model.Question{
		q(1, 1, nil),
		q(2, 2, uptr(1)),
		q(3, 3, uptr(2)),
	})
	if got := g.RootIDs(); len(got) != 2 || got[0] != 1 || got[1] != 3 {
		t.Fatalf("roots = %v, want [1 3]", got)
	}
	r, _ := g.Node(1)
	if len(r.Children) != 1 || r.Children[0].ID() != 2 {
		t.Fatalf("question 2 should stay a child of 1")
	}
}

func TestBuildGraph_Empty(t *testing.T) {
	g := BuildGraph(9, nil)
	if g.Len() != 0 || len(g.AllIDs()) != 0 {
		t.Fatalf("empty graph expected")
	}
	if _, ok := g.Node(1); ok {
		t.Fatalf("Node on empty graph should miss")
	}
}

func TestNode_OptionLookup(t *testing.T) {
	qq := q(1, 1, nil)
	qq.QuestionType = model.QuestionTypeYesNo
	qq.Options = []model.QuestionOption{
		{QuestionOptionID: 11, QuestionOptionText: "No", QuestionOptionOrder: 2},
		{QuestionOptionID: 10, QuestionOptionText: "Yes", QuestionOptionOrder: 1},
	}
	g := BuildGraph(1, []model.Question{qq})
	n, _ := g.Node(1)

	if n.Options[0].QuestionOptionID != 10 {
		t.Fatalf("options should be sorted by order")
	}
	if o, ok := n.OptionByText(" yes "); !ok || o.QuestionOptionID != 10 {
		t.Fatalf("OptionByText case-insensitive failed")
	}
	if _, ok := n.OptionByID(12); ok {
		t.Fatalf("OptionByID should miss unknown id")
	}
	if o, ok := n.OptionByID(11); !ok || o.QuestionOptionText != "No" {
		t.Fatalf("OptionByID(11) failed")
	}
}
