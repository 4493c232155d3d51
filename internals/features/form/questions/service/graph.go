package service

import (
	"sort"
	"strings"

	"healthcard_backend/internals/features/form/questions/model"
)

// Node = satu pertanyaan di graph beserta option dan anak langsungnya.
type Node struct {
	Question model.Question
	Options  []model.QuestionOption
	Children []*Node
}

func (n *Node) ID() uint { return n.Question.QuestionID }

func (n *Node) OptionByID(id uint) (model.QuestionOption, bool) {
	for _, o := range n.Options {
		if o.QuestionOptionID == id {
			return o, true
		}
	}
	return model.QuestionOption{}, false
}

// OptionByText: pencocokan case-insensitive terhadap teks option.
func (n *Node) OptionByText(s string) (model.QuestionOption, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return model.QuestionOption{}, false
	}
	for _, o := range n.Options {
		if strings.EqualFold(strings.TrimSpace(o.QuestionOptionText), s) {
			return o, true
		}
	}
	return model.QuestionOption{}, false
}

// Graph: root berurutan, kedalaman tetap satu level anak.
type Graph struct {
	SublevelID uint
	Roots      []*Node

	arena []Node
	index map[uint]int
}

// BuildGraph menyusun pohon dari daftar pertanyaan flat satu sublevel.
// Parent yang tidak ada, atau parent yang sendirinya anak, membuat
// pertanyaan itu jadi root.
func BuildGraph(sublevelID uint, questions []model.Question) *Graph {
	sorted := make([]model.Question, len(questions))
	copy(sorted, questions)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].QuestionOrder < sorted[j].QuestionOrder
	})

	g := &Graph{
		SublevelID: sublevelID,
		arena:      make([]Node, len(sorted)),
		index:      make(map[uint]int, len(sorted)),
	}
	for i, q := range sorted {
		opts := make([]model.QuestionOption, len(q.Options))
		copy(opts, q.Options)
		sort.SliceStable(opts, func(a, b int) bool {
			return opts[a].QuestionOptionOrder < opts[b].QuestionOptionOrder
		})
		q.Options = nil
		g.arena[i] = Node{Question: q, Options: opts}
		g.index[q.QuestionID] = i
	}

	// hasParent: parent_question_id menunjuk ke pertanyaan lain yang ada.
	hasParent := func(q model.Question) bool {
		if q.QuestionParentID == nil || *q.QuestionParentID == q.QuestionID {
			return false
		}
		_, ok := g.index[*q.QuestionParentID]
		return ok
	}
	isRoot := func(q model.Question) bool {
		if !hasParent(q) {
			return true
		}
		parent := g.arena[g.index[*q.QuestionParentID]].Question
		return hasParent(parent)
	}

	roots := make(map[uint]bool, len(sorted))
	for i := range g.arena {
		if isRoot(g.arena[i].Question) {
			roots[g.arena[i].ID()] = true
			g.Roots = append(g.Roots, &g.arena[i])
		}
	}
	// arena sudah urut by order → children ikut urut, stabil untuk order sama
	for i := range g.arena {
		n := &g.arena[i]
		if roots[n.ID()] {
			continue
		}
		parent := &g.arena[g.index[*n.Question.QuestionParentID]]
		parent.Children = append(parent.Children, n)
	}
	return g
}

func (g *Graph) Node(id uint) (*Node, bool) {
	i, ok := g.index[id]
	if !ok {
		return nil, false
	}
	return &g.arena[i], true
}

// Len = jumlah root (N pada flow).
func (g *Graph) Len() int { return len(g.Roots) }

func (g *Graph) RootIDs() []uint {
	ids := make([]uint, 0, len(g.Roots))
	for _, r := range g.Roots {
		ids = append(ids, r.ID())
	}
	return ids
}

// AllIDs: root lalu anak-anaknya, urut tampil.
func (g *Graph) AllIDs() []uint {
	ids := make([]uint, 0, len(g.arena))
	for _, r := range g.Roots {
		ids = append(ids, r.ID())
		for _, ch := range r.Children {
			ids = append(ids, ch.ID())
		}
	}
	return ids
}

// Walk memanggil fn untuk tiap root lalu anaknya, urut tampil.
func (g *Graph) Walk(fn func(n *Node)) {
	for _, r := range g.Roots {
		fn(r)
		for _, ch := range r.Children {
			fn(ch)
		}
	}
}
