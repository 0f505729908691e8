// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"slices"
	"strconv"
	"strings"
	"time"
)

// TempIDPrefix marks identifiers synthesized by the client for comments and
// todos that the server has not confirmed yet.
const TempIDPrefix = "tmp-"

// DayLayout is the calendar-day format used in filters and persistence.
const DayLayout = "2006-01-02"

// ReactionType is one of the fixed reaction kinds.
type ReactionType string

const (
	ReactionLike      ReactionType = "like"
	ReactionHeart     ReactionType = "heart"
	ReactionCelebrate ReactionType = "celebrate"
	ReactionSupport   ReactionType = "support"
)

// ReactionTypes lists every accepted reaction kind.
var ReactionTypes = []ReactionType{ReactionLike, ReactionHeart, ReactionCelebrate, ReactionSupport}

// Valid reports whether t is one of [ReactionTypes].
func (t ReactionType) Valid() bool {
	return slices.Contains(ReactionTypes, t)
}

// Diary is one user's journal entry for one calendar day.
//
// The JSON shape is the wire contract of the REST API. Owner and comment
// authors are persisted as bare ids and populated with name and email on read.
type Diary struct {
	ID        string     `json:"_id"`
	User      UserRef    `json:"userId"`
	Content   string     `json:"content"`
	Date      time.Time  `json:"date"`
	Comments  []Comment  `json:"comments"`
	Reactions []Reaction `json:"reactions"`
	Todos     []Todo     `json:"todos"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// Comment is an append-only remark left on an entry.
type Comment struct {
	ID        string    `json:"_id"`
	User      UserRef   `json:"userId"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// Reaction is a single author's reaction to an entry.
// At most one reaction per author exists on an entry.
type Reaction struct {
	UserID string       `json:"userId"`
	Type   ReactionType `json:"type"`
}

// Todo is an item of the entry's todo list.
type Todo struct {
	ID        string    `json:"_id"`
	Content   string    `json:"content"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Day returns the entry's calendar day in loc formatted as [DayLayout].
func (d Diary) Day(loc *time.Location) string {
	return DayKey(d.Date, loc)
}

// DayKey formats t as a calendar day in loc.
func DayKey(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return t.In(loc).Format(DayLayout)
}

// StartOfDay returns midnight of t's calendar day in loc.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// Normalize replaces nil collections with empty ones so that the entry
// always serializes with JSON arrays.
func (d *Diary) Normalize() {
	if d.Comments == nil {
		d.Comments = []Comment{}
	}
	if d.Reactions == nil {
		d.Reactions = []Reaction{}
	}
	if d.Todos == nil {
		d.Todos = []Todo{}
	}
}

// Clone returns a deep copy of the entry.
func (d Diary) Clone() Diary {
	d.Comments = slices.Clone(d.Comments)
	d.Reactions = slices.Clone(d.Reactions)
	d.Todos = slices.Clone(d.Todos)
	d.Normalize()
	return d
}

// ToggleReaction applies the reaction toggle rule for userID:
// the same type again removes the reaction, a different type replaces it in
// place, and an author without a reaction gets one appended.
func (d *Diary) ToggleReaction(userID string, t ReactionType) {
	for i, r := range d.Reactions {
		if r.UserID != userID {
			continue
		}
		if r.Type == t {
			d.Reactions = slices.Delete(d.Reactions, i, i+1)
			return
		}
		d.Reactions[i].Type = t
		return
	}
	d.Reactions = append(d.Reactions, Reaction{UserID: userID, Type: t})
}

// ReactionOf returns the reaction left by userID, if any.
func (d Diary) ReactionOf(userID string) (Reaction, bool) {
	for _, r := range d.Reactions {
		if r.UserID == userID {
			return r, true
		}
	}
	return Reaction{}, false
}

// AddComment appends c to the end of the comment list.
func (d *Diary) AddComment(c Comment) {
	d.Comments = append(d.Comments, c)
}

// AddTodo appends t to the end of the todo list.
func (d *Diary) AddTodo(t Todo) {
	d.Todos = append(d.Todos, t)
}

// TodoIndex returns the position of the todo with the given id.
func (d Diary) TodoIndex(id string) (int, bool) {
	for i, t := range d.Todos {
		if t.ID == id {
			return i, true
		}
	}
	return -1, false
}

// ResolveTodo locates a todo by id or, failing that, by zero-based position.
func (d Diary) ResolveTodo(ref string) (int, bool) {
	if i, ok := d.TodoIndex(ref); ok {
		return i, true
	}
	i, err := strconv.Atoi(ref)
	if err != nil || i < 0 || i >= len(d.Todos) {
		return -1, false
	}
	return i, true
}

// SetTodoCompleted sets the completion flag of the todo at position i.
func (d *Diary) SetTodoCompleted(i int, completed bool, now time.Time) {
	d.Todos[i].Completed = completed
	d.Todos[i].UpdatedAt = now
}

// RemoveTodo removes the todo at position i.
func (d *Diary) RemoveTodo(i int) {
	d.Todos = slices.Delete(d.Todos, i, i+1)
}

// PopulateUsers fills author names and emails from users keyed by id.
func (d *Diary) PopulateUsers(users map[string]User) {
	if u, ok := users[d.User.ID]; ok {
		d.User = u.Ref()
	}
	for i := range d.Comments {
		if u, ok := users[d.Comments[i].User.ID]; ok {
			d.Comments[i].User = u.Ref()
		}
	}
}

// UserIDs returns the distinct ids of the owner and every comment author.
func (d Diary) UserIDs() []string {
	ids := []string{d.User.ID}
	for _, c := range d.Comments {
		if !slices.Contains(ids, c.User.ID) {
			ids = append(ids, c.User.ID)
		}
	}
	return ids
}

// IsTempID reports whether id was synthesized by the client.
func IsTempID(id string) bool {
	return strings.HasPrefix(id, TempIDPrefix)
}
