package trip

import "time"

// The collaboration tabs ship with demo data so the planner is populated
// on first run. Timestamps are anchored a few weeks before the trip start
// so the relative formatting has something to show.

// SeedMessages returns the demo group chat.
func SeedMessages(start time.Time) []Message {
	base := StartOfDay(start).AddDate(0, 0, -31).Add(10*time.Hour + 30*time.Minute)
	return []Message{
		{ID: "msg-1", SenderID: "user1", Content: "Hey everyone! Super excited about this trip!", SentAt: base},
		{ID: "msg-2", SenderID: "user2", Content: "Me too! I found a great restaurant we should try in Ubud.", SentAt: base.Add(2 * time.Minute)},
		{ID: "msg-3", SenderID: "user1", Content: "Perfect! Did you see the temple tour I added to the ideas board?", SentAt: base.Add(5 * time.Minute)},
		{ID: "msg-4", SenderID: "user2", Content: "Yes! Already moved it to the 'Booked' column. Can't wait!", SentAt: base.Add(30 * time.Minute)},
		{ID: "msg-5", SenderID: "user1", Content: "Should we split the cost for the private driver? It's about $50/day.", SentAt: base.AddDate(0, 0, 1).Add(-75 * time.Minute)},
		{ID: "msg-6", SenderID: "user2", Content: "Sounds good to me! I'll add it to the expenses.", SentAt: base.AddDate(0, 0, 1).Add(-72 * time.Minute)},
	}
}

// SeedChecklists returns the demo checklists.
func SeedChecklists(start time.Time) Checklists {
	created := StartOfDay(start).AddDate(0, 0, -45)
	due1 := StartOfDay(start).AddDate(0, 0, -14)
	due2 := StartOfDay(start).AddDate(0, 0, -5)
	done1 := created.AddDate(0, 0, 4).Add(10 * time.Hour)
	done2 := created.AddDate(0, 0, 5).Add(14 * time.Hour)
	done3 := created.AddDate(0, 0, 19).Add(9 * time.Hour)

	return Checklists{
		{
			ID:        "checklist-1",
			Title:     "Pre-Trip Preparation",
			CreatedBy: "user1",
			CreatedAt: created,
			Items: []ChecklistItem{
				{ID: "item-1", Text: "Book flights", Completed: true, AssignedTo: "user1", CompletedBy: "user1", CompletedAt: &done1},
				{ID: "item-2", Text: "Get travel insurance", Completed: true, AssignedTo: "user2", CompletedBy: "user2", CompletedAt: &done2},
				{ID: "item-3", Text: "Check passport expiry", Completed: false, AssignedTo: "user1", DueDate: &due1},
				{ID: "item-4", Text: "Research local customs", Completed: false, AssignedTo: "user2"},
			},
		},
		{
			ID:        "checklist-2",
			Title:     "Packing List",
			CreatedBy: "user2",
			CreatedAt: created.AddDate(0, 0, 9),
			Items: []ChecklistItem{
				{ID: "item-5", Text: "Sunscreen and hat", Completed: true, AssignedTo: "user1", CompletedBy: "user1", CompletedAt: &done3},
				{ID: "item-6", Text: "Swimming gear", Completed: false, AssignedTo: "user2"},
				{ID: "item-7", Text: "Comfortable walking shoes", Completed: false, AssignedTo: "user1"},
				{ID: "item-8", Text: "Camera and chargers", Completed: false, AssignedTo: "user2", DueDate: &due2},
			},
		},
	}
}

// SeedIdeas returns the demo idea board.
func SeedIdeas(start time.Time) []Idea {
	created := StartOfDay(start).AddDate(0, 0, -40)
	return []Idea{
		{ID: "idea-1", Title: "Temple Tour", Description: "Guided tour of the ancient temples around Ubud", CreatedBy: "user1", CreatedAt: created, Status: IdeaBooked},
		{ID: "idea-2", Title: "Cooking Class", Description: "Balinese cooking class with market visit", CreatedBy: "user2", CreatedAt: created.AddDate(0, 0, 2), Status: IdeaPlanned},
		{ID: "idea-3", Title: "Mount Batur Sunrise Hike", Description: "Early start, amazing views", CreatedBy: "user1", CreatedAt: created.AddDate(0, 0, 3), Status: IdeaProposed},
		{ID: "idea-4", Title: "Beach Day at Nusa Dua", CreatedBy: "user2", CreatedAt: created.AddDate(0, 0, 6), Status: IdeaProposed},
		{ID: "idea-5", Title: "Private Driver for Day Trips", Description: "About $50/day, split between the group", CreatedBy: "user1", CreatedAt: created.AddDate(0, 0, 8), Status: IdeaPlanned},
	}
}
