package client

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/MKhiriev/work-diary/internal/mirror"
	"github.com/MKhiriev/work-diary/internal/service"
	"github.com/MKhiriev/work-diary/models"
)

func renderEntries(w io.Writer, entries []models.Diary, pages mirror.Pages, loc *time.Location) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "no entries")
		return
	}
	for i, d := range entries {
		if i > 0 {
			fmt.Fprintln(w)
		}
		renderEntry(w, d, loc)
	}
	if pages.Total > 0 {
		fmt.Fprintf(w, "\npage %d of %d\n", pages.Current, pages.Total)
	}
}

func renderEntry(w io.Writer, d models.Diary, loc *time.Location) {
	fmt.Fprintf(w, "== %s  %s  [%s]\n", d.Day(loc), author(d.User), d.ID)
	if d.Content != "" {
		fmt.Fprintln(w, d.Content)
	}

	if len(d.Reactions) > 0 {
		counts := make(map[models.ReactionType]int)
		for _, r := range d.Reactions {
			counts[r.Type]++
		}
		var parts []string
		for _, t := range models.ReactionTypes {
			if counts[t] > 0 {
				parts = append(parts, fmt.Sprintf("%s x%d", t, counts[t]))
			}
		}
		fmt.Fprintf(w, "  reactions: %s\n", strings.Join(parts, ", "))
	}

	if len(d.Todos) > 0 {
		fmt.Fprintln(w, "  todos:")
		for i, t := range d.Todos {
			mark := " "
			if t.Completed {
				mark = "x"
			}
			fmt.Fprintf(w, "    %d. [%s] %s  (%s)\n", i, mark, t.Content, t.ID)
		}
	}

	if len(d.Comments) > 0 {
		fmt.Fprintln(w, "  comments:")
		for _, c := range d.Comments {
			fmt.Fprintf(w, "    %s: %s\n", author(c.User), c.Content)
		}
	}
}

func renderStatus(w io.Writer, board service.StatusBoard) {
	st, ok := board.Current()
	if !ok {
		return
	}
	prefix := "*"
	if st.Kind == service.StatusError {
		prefix = "!"
	}
	fmt.Fprintf(w, "%s %s\n", prefix, st.Message)
}

func author(u models.UserRef) string {
	switch {
	case u.Name != "" && u.Email != "":
		return fmt.Sprintf("%s <%s>", u.Name, u.Email)
	case u.Name != "":
		return u.Name
	default:
		return u.ID
	}
}
