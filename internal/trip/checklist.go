package trip

import "time"

// ChecklistItem is one task on a shared checklist.
type ChecklistItem struct {
	ID          string     `json:"id"`
	Text        string     `json:"text"`
	Completed   bool       `json:"completed"`
	AssignedTo  string     `json:"assignedTo,omitempty"`
	CompletedBy string     `json:"completedBy,omitempty"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
}

// Overdue reports whether the item is incomplete and past its due date.
func (i ChecklistItem) Overdue(now time.Time) bool {
	return !i.Completed && i.DueDate != nil && i.DueDate.Before(now)
}

// Checklist is a titled group of items.
type Checklist struct {
	ID        string          `json:"id"`
	Title     string          `json:"title"`
	CreatedBy string          `json:"createdBy"`
	CreatedAt time.Time       `json:"createdAt"`
	Items     []ChecklistItem `json:"items"`
}

// Completed returns how many of the checklist's items are done.
func (c Checklist) Completed() int {
	n := 0
	for _, item := range c.Items {
		if item.Completed {
			n++
		}
	}
	return n
}

// Checklists is the set of checklists for a trip with update-by-id
// mutations.
type Checklists []Checklist

// Toggle flips completion of the item with itemID inside checklistID,
// recording who completed it. Unknown ids are a silent no-op.
func (cs Checklists) Toggle(checklistID, itemID, who string, now time.Time) {
	for ci := range cs {
		if cs[ci].ID != checklistID {
			continue
		}
		for ii := range cs[ci].Items {
			item := &cs[ci].Items[ii]
			if item.ID != itemID {
				continue
			}
			if item.Completed {
				item.Completed = false
				item.CompletedBy = ""
				item.CompletedAt = nil
			} else {
				item.Completed = true
				item.CompletedBy = who
				t := now
				item.CompletedAt = &t
			}
			return
		}
	}
}

// TotalItems counts items across all checklists.
func (cs Checklists) TotalItems() int {
	n := 0
	for _, c := range cs {
		n += len(c.Items)
	}
	return n
}

// CompletedItems counts completed items across all checklists.
func (cs Checklists) CompletedItems() int {
	n := 0
	for _, c := range cs {
		n += c.Completed()
	}
	return n
}

// OverdueItems counts incomplete items past their due date.
func (cs Checklists) OverdueItems(now time.Time) int {
	n := 0
	for _, c := range cs {
		for _, item := range c.Items {
			if item.Overdue(now) {
				n++
			}
		}
	}
	return n
}
