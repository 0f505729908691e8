package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/work-diary/internal/logger"
	"github.com/MKhiriev/work-diary/models"
)

type couchUserDoc struct {
	ID        string    `json:"_id"`
	Rev       string    `json:"_rev,omitempty"`
	Type      string    `json:"type"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"password"`
	CreatedAt time.Time `json:"created_at"`
}

func (d couchUserDoc) toModel() models.User {
	return models.User{
		UserID:    d.UserID,
		Name:      d.Name,
		Email:     d.Email,
		Password:  d.Password,
		CreatedAt: d.CreatedAt,
	}
}

// couchUserRepository stores users as "user:<email>" documents, so that the
// document id enforces email uniqueness.
type couchUserRepository struct {
	*CouchDB
}

// NewCouchUserRepository constructs a CouchDB-backed [UserRepository].
func NewCouchUserRepository(c *CouchDB) UserRepository {
	c.logger.Debug().Msg("creating couchdb user repository")
	return &couchUserRepository{CouchDB: c}
}

func couchUserDocID(email string) string {
	return "user:" + email
}

func (r *couchUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}

	doc := couchUserDoc{
		ID:        couchUserDocID(user.Email),
		Type:      couchTypeUser,
		UserID:    user.UserID,
		Name:      user.Name,
		Email:     user.Email,
		Password:  user.Password,
		CreatedAt: user.CreatedAt,
	}

	if _, err := r.db.Put(ctx, doc.ID, doc); err != nil {
		if isCouchConflict(err) {
			return models.User{}, ErrEmailAlreadyExists
		}
		logger.FromContext(ctx).Err(err).Str("func", "*couchUserRepository.CreateUser").Msg("error storing user")
		return models.User{}, fmt.Errorf("%w: %w", ErrCouchRequest, err)
	}

	return doc.toModel(), nil
}

func (r *couchUserRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	var doc couchUserDoc
	if err := r.db.Get(ctx, couchUserDocID(email)).ScanDoc(&doc); err != nil {
		if isCouchNotFound(err) {
			return models.User{}, ErrNoUserWasFound
		}
		logger.FromContext(ctx).Err(err).Str("func", "*couchUserRepository.FindUserByEmail").Msg("error reading user")
		return models.User{}, fmt.Errorf("%w: %w", ErrCouchRequest, err)
	}

	return doc.toModel(), nil
}

func (r *couchUserRepository) FindUsersByIDs(ctx context.Context, ids []string) ([]models.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query := map[string]any{
		"selector": map[string]any{
			"type":    couchTypeUser,
			"user_id": map[string]any{"$in": ids},
		},
		"limit": len(ids),
	}

	rows := r.db.Find(ctx, query)
	defer rows.Close()

	users := make([]models.User, 0, len(ids))
	for rows.Next() {
		var doc couchUserDoc
		if err := rows.ScanDoc(&doc); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		users = append(users, doc.toModel())
	}
	if err := rows.Err(); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*couchUserRepository.FindUsersByIDs").Msg("error finding users")
		return nil, fmt.Errorf("%w: %w", ErrCouchRequest, err)
	}

	return users, nil
}
