package mirror

import "github.com/MKhiriev/work-diary/models"

// View selects which entries the mirror holds.
type View struct {
	// UserID restricts the view to one author's entries ("my entries").
	// Empty means the team feed.
	UserID string
	// Date optionally restricts the view to one calendar day.
	Date  string
	Page  int
	Limit int
}

// Filter converts the view into a list request.
func (v View) Filter() models.DiaryFilter {
	return models.DiaryFilter{
		UserID: v.UserID,
		Date:   v.Date,
		Page:   v.Page,
		Limit:  v.Limit,
	}.WithDefaults()
}

// firstPage reports whether new entries would show up in this view.
func (v View) firstPage() bool {
	return v.Page <= 1
}

// Pages describes the pagination state of the last fetch.
type Pages struct {
	Total   int
	Current int
}
