package grid

import (
	"time"

	"itin/internal/trip"
)

// DragKind identifies which gesture is in progress.
type DragKind int

const (
	DragNone DragKind = iota
	DragCreate
	DragMove
	DragResizeTop
	DragResizeBottom
)

func (k DragKind) String() string {
	switch k {
	case DragCreate:
		return "create"
	case DragMove:
		return "move"
	case DragResizeTop:
		return "resize-top"
	case DragResizeBottom:
		return "resize-bottom"
	default:
		return "none"
	}
}

// EventWriter is the mutation surface a released drag commits against.
type EventWriter interface {
	Create(ev trip.Event) (trip.Event, error)
	Update(id string, p trip.Patch) (trip.Event, error)
}

// Drag tracks one pointer gesture over the schedule grid. A gesture
// begins on press, updates its tentative geometry on every motion event,
// and commits at most one store mutation on release. The zero value is
// the idle state.
type Drag struct {
	kind   DragKind
	mapper Mapper
	day    time.Time

	eventID   string
	baseStart int
	baseEnd   int

	// anchor is the snapped press position for create gestures; the
	// tentative interval is always [min(anchor, cursor), max(anchor, cursor)].
	anchor  int
	originY int

	curStart int
	curEnd   int
}

// Active reports whether a gesture is in progress.
func (d *Drag) Active() bool {
	return d.kind != DragNone
}

// Kind returns the gesture in progress, or DragNone.
func (d *Drag) Kind() DragKind {
	return d.kind
}

// EventID returns the id of the event being moved or resized, or "" for
// create gestures and the idle state.
func (d *Drag) EventID() string {
	return d.eventID
}

// Day returns the column date the gesture is bound to.
func (d *Drag) Day() time.Time {
	return d.day
}

// BeginCreate starts a create gesture anchored at vertical offset y in
// the column for day.
func (d *Drag) BeginCreate(m Mapper, day time.Time, y int) {
	anchor := Clamp(Snap(m.ToMinutes(y)))
	*d = Drag{
		kind:     DragCreate,
		mapper:   m,
		day:      day,
		anchor:   anchor,
		originY:  y,
		curStart: anchor,
		curEnd:   anchor,
	}
}

// BeginMove starts a move gesture on ev with the press at vertical
// offset y.
func (d *Drag) BeginMove(m Mapper, ev trip.Event, y int) {
	*d = Drag{
		kind:      DragMove,
		mapper:    m,
		day:       trip.StartOfDay(ev.StartTime),
		eventID:   ev.ID,
		baseStart: MinutesOfDay(ev.StartTime),
		baseEnd:   MinutesOfDay(ev.EndTime),
		originY:   y,
	}
	d.curStart, d.curEnd = d.baseStart, d.baseEnd
}

// BeginResizeTop starts a resize gesture on ev's start edge.
func (d *Drag) BeginResizeTop(m Mapper, ev trip.Event, y int) {
	d.BeginMove(m, ev, y)
	d.kind = DragResizeTop
}

// BeginResizeBottom starts a resize gesture on ev's end edge.
func (d *Drag) BeginResizeBottom(m Mapper, ev trip.Event, y int) {
	d.BeginMove(m, ev, y)
	d.kind = DragResizeBottom
}

// Update recomputes the tentative geometry for the cursor at vertical
// offset y. Nothing is persisted until Release.
func (d *Drag) Update(y int) {
	switch d.kind {
	case DragCreate:
		cur := Clamp(Snap(d.mapper.ToMinutes(y)))
		if cur < d.anchor {
			d.curStart, d.curEnd = cur, d.anchor
		} else {
			d.curStart, d.curEnd = d.anchor, cur
		}

	case DragMove:
		delta := Snap(d.mapper.ToMinutes(y - d.originY))
		// Each edge clamps independently, so an event dragged against the
		// edge of the day compresses instead of stopping early.
		d.curStart = Clamp(d.baseStart + delta)
		d.curEnd = Clamp(d.baseEnd + delta)

	case DragResizeTop:
		delta := Snap(d.mapper.ToMinutes(y - d.originY))
		start := Clamp(d.baseStart + delta)
		if d.baseEnd-start >= trip.MinEventMinutes {
			d.curStart = start
		}

	case DragResizeBottom:
		delta := Snap(d.mapper.ToMinutes(y - d.originY))
		end := Clamp(d.baseEnd + delta)
		if end-d.baseStart >= trip.MinEventMinutes {
			d.curEnd = end
		}
	}
}

// Tentative returns the in-progress interval as minutes of day. ok is
// false when no gesture is active.
func (d *Drag) Tentative() (start, end int, ok bool) {
	if d.kind == DragNone {
		return 0, 0, false
	}
	return d.curStart, d.curEnd, true
}

// Release ends the gesture at vertical offset y and commits the result
// through w. A create below the minimum duration and a move or resize
// that lands back on its starting geometry commit nothing. The drag
// returns to idle either way.
func (d *Drag) Release(y int, w EventWriter) (trip.Event, bool, error) {
	d.Update(y)

	kind := d.kind
	start, end := d.curStart, d.curEnd
	baseStart, baseEnd := d.baseStart, d.baseEnd
	eventID := d.eventID
	day := d.day
	*d = Drag{}

	switch kind {
	case DragCreate:
		if end-start < trip.MinEventMinutes {
			return trip.Event{}, false, nil
		}
		ev := trip.NewEvent("New Event", WithMinutesOfDay(day, start), WithMinutesOfDay(day, end), trip.CategoryOther)
		created, err := w.Create(ev)
		return created, err == nil, err

	case DragMove, DragResizeTop, DragResizeBottom:
		if eventID == "" || (start == baseStart && end == baseEnd) {
			return trip.Event{}, false, nil
		}
		startT := WithMinutesOfDay(day, start)
		endT := WithMinutesOfDay(day, end)
		updated, err := w.Update(eventID, trip.Patch{StartTime: &startT, EndTime: &endT})
		return updated, err == nil, err
	}

	return trip.Event{}, false, nil
}
