package client

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/work-diary/internal/mirror"
	"github.com/MKhiriev/work-diary/models"
)

func TestRenderEntry(t *testing.T) {
	d := teamEntry()
	d.Reactions = []models.Reaction{
		{UserID: "a", Type: models.ReactionHeart},
		{UserID: "b", Type: models.ReactionLike},
		{UserID: "c", Type: models.ReactionHeart},
	}
	d.Todos[0].Completed = true
	d.Comments = []models.Comment{{ID: "c1", User: models.UserRef{ID: "u9"}, Content: "who am I"}}

	var out bytes.Buffer
	renderEntry(&out, d, time.UTC)

	want := "== 2026-03-02  Bob <bob@example.com>  [e1]\n" +
		"shipped the release\n" +
		"  reactions: like x1, heart x2\n" +
		"  todos:\n" +
		"    0. [x] write notes  (t1)\n" +
		"    1. [ ] tag build  (t2)\n" +
		"  comments:\n" +
		"    u9: who am I\n"
	assert.Equal(t, want, out.String())
}

func TestRenderEntries_Empty(t *testing.T) {
	var out bytes.Buffer
	renderEntries(&out, nil, mirror.Pages{}, time.UTC)
	assert.Equal(t, "no entries\n", out.String())
}

func TestAuthor(t *testing.T) {
	assert.Equal(t, "Ann <ann@example.com>", author(models.UserRef{ID: "u1", Name: "Ann", Email: "ann@example.com"}))
	assert.Equal(t, "Ann", author(models.UserRef{ID: "u1", Name: "Ann"}))
	assert.Equal(t, "u1", author(models.UserRef{ID: "u1"}))
}
