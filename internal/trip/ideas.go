package trip

import "time"

// IdeaStatus is the board column an idea sits in.
type IdeaStatus string

const (
	IdeaProposed IdeaStatus = "idea"
	IdeaPlanned  IdeaStatus = "planned"
	IdeaBooked   IdeaStatus = "booked"
)

// IdeaStatuses lists the board columns in display order.
var IdeaStatuses = []IdeaStatus{IdeaProposed, IdeaPlanned, IdeaBooked}

// Idea is one card on the idea board.
type Idea struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	CreatedBy   string     `json:"createdBy"`
	CreatedAt   time.Time  `json:"createdAt"`
	Status      IdeaStatus `json:"status"`
}

// Board holds the idea cards and their column moves.
type Board struct {
	ideas []Idea
}

// NewBoard seeds a board with the given ideas.
func NewBoard(ideas []Idea) *Board {
	return &Board{ideas: append([]Idea(nil), ideas...)}
}

// All returns every idea in creation order.
func (b *Board) All() []Idea {
	return b.ideas
}

// ByStatus returns the ideas in one column, preserving order.
func (b *Board) ByStatus(status IdeaStatus) []Idea {
	var out []Idea
	for _, idea := range b.ideas {
		if idea.Status == status {
			out = append(out, idea)
		}
	}
	return out
}

// Move places the idea with id into the given column. Unknown ids are a
// silent no-op.
func (b *Board) Move(id string, status IdeaStatus) {
	for i := range b.ideas {
		if b.ideas[i].ID == id {
			b.ideas[i].Status = status
			return
		}
	}
}
