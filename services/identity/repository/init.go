package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/sewago/sewago/internal/pkg/database"
	"github.com/sewago/sewago/internal/pkg/models"
)

// IdentityRepo persists identity state. User records live in Postgres;
// OTP challenges, attempt counters and session revocations live in Redis.
type IdentityRepo struct {
	cfg         *models.Config
	db          *sqlx.DB
	redisClient *database.RedisClient
}

// NewIdentityRepo creates a new identity repository instance
func NewIdentityRepo(cfg *models.Config, db *sqlx.DB, redisClient *database.RedisClient) *IdentityRepo {
	return &IdentityRepo{
		cfg:         cfg,
		db:          db,
		redisClient: redisClient,
	}
}
