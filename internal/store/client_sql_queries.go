package store

const (
	saveDraft = `INSERT INTO drafts (user_id, day, content, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (user_id, day) DO UPDATE
		SET content = excluded.content, updated_at = excluded.updated_at;`

	listDrafts = `SELECT user_id, day, content, updated_at FROM drafts WHERE user_id = ? ORDER BY day;`

	deleteDraft = `DELETE FROM drafts WHERE user_id = ? AND day = ?;`

	saveSession = `INSERT INTO session (id, token, user_id, name, email, saved_at)
		VALUES (1, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE
		SET token = excluded.token, user_id = excluded.user_id, name = excluded.name,
			email = excluded.email, saved_at = excluded.saved_at;`

	loadSession = `SELECT token, user_id, name, email, saved_at FROM session WHERE id = 1;`

	deleteSession = `DELETE FROM session;`
)
