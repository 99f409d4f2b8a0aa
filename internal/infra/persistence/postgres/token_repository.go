package postgres

import (
	"context"
	"strconv"
	"time"

	"enrollsync/internal/domain/entity"
	"enrollsync/internal/domain/repository"
	"enrollsync/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Keys of the three token scalars in the sync_kv table. Expiry is stored as
// string-encoded epoch seconds.
const (
	kvAccessToken  = "lms_access_token"
	kvRefreshToken = "lms_refresh_token"
	kvTokenExpiry  = "lms_token_expiry"
)

// tokenRepository implements repository.TokenRepository over the sync_kv
// key/value table.
type tokenRepository struct {
	db *gorm.DB
}

// NewTokenRepository is the constructor for tokenRepository.
func NewTokenRepository(db *gorm.DB) repository.TokenRepository {
	return &tokenRepository{
		db: db,
	}
}

// Load retrieves the stored token state; missing keys yield a zero state.
func (repo *tokenRepository) Load(ctx context.Context) (entity.TokenState, error) {
	var rows []model.SyncKVModel

	if err := repo.db.WithContext(ctx).
		Where("key IN ?", []string{kvAccessToken, kvRefreshToken, kvTokenExpiry}).
		Find(&rows).Error; err != nil {
		return entity.TokenState{}, errors.Wrap(err, "failed to load token state")
	}

	var state entity.TokenState
	for _, row := range rows {
		switch row.Key {
		case kvAccessToken:
			state.AccessToken = row.Value
		case kvRefreshToken:
			state.RefreshToken = row.Value
		case kvTokenExpiry:
			if epoch, err := strconv.ParseInt(row.Value, 10, 64); err == nil && epoch > 0 {
				state.ExpiresAt = time.Unix(epoch, 0)
			}
		}
	}

	return state, nil
}

// Save stores the token state, replacing whatever was held before.
func (repo *tokenRepository) Save(ctx context.Context, state entity.TokenState) error {
	expiry := "0"
	if !state.ExpiresAt.IsZero() {
		expiry = strconv.FormatInt(state.ExpiresAt.Unix(), 10)
	}

	rows := []model.SyncKVModel{
		{Key: kvAccessToken, Value: state.AccessToken},
		{Key: kvRefreshToken, Value: state.RefreshToken},
		{Key: kvTokenExpiry, Value: expiry},
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value"}),
		}).
		Create(&rows).Error; err != nil {
		return errors.Wrap(err, "failed to save token state")
	}

	return nil
}
