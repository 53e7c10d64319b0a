package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sewago/sewago/internal/pkg/constants"
	"github.com/sewago/sewago/internal/pkg/database"
	"github.com/sewago/sewago/internal/pkg/models"
)

// setupMiniredis creates a new miniredis server and returns a Redis client connected to it
func setupMiniredis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	return mr, client
}

func setupOTPRepoTest(t *testing.T) (*IdentityRepo, *miniredis.Miniredis) {
	mr, client := setupMiniredis(t)

	repo := &IdentityRepo{
		redisClient: &database.RedisClient{Client: client},
	}

	return repo, mr
}

func testChallenge(phone string) *models.OTPChallenge {
	now := time.Now()
	return &models.OTPChallenge{
		ID:        uuid.New().String(),
		Phone:     phone,
		CodeHash:  "$2a$04$fakehash",
		CreatedAt: now,
		ExpiresAt: now.Add(5 * time.Minute),
		ResendAt:  now.Add(30 * time.Second),
	}
}

func TestSaveOTPChallenge(t *testing.T) {
	repo, mr := setupOTPRepoTest(t)
	defer mr.Close()

	challenge := testChallenge("+628123456789")
	err := repo.SaveOTPChallenge(context.Background(), challenge, 5*time.Minute)
	require.NoError(t, err)

	key := fmt.Sprintf(constants.KeyOTPChallenge, challenge.Phone)
	val, err := mr.Get(key)
	require.NoError(t, err)

	var stored models.OTPChallenge
	require.NoError(t, json.Unmarshal([]byte(val), &stored))
	assert.Equal(t, challenge.ID, stored.ID)
	assert.Equal(t, challenge.CodeHash, stored.CodeHash)

	assert.True(t, mr.TTL(key) > 0)
}

func TestSaveOTPChallenge_RedisError(t *testing.T) {
	repo, mr := setupOTPRepoTest(t)
	mr.Close()

	err := repo.SaveOTPChallenge(context.Background(), testChallenge("+628123456789"), 5*time.Minute)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to store OTP challenge in Redis")
}

func TestGetOTPChallenge(t *testing.T) {
	testCases := []struct {
		name      string
		phone     string
		setupFunc func(mr *miniredis.Miniredis)
		wantErr   bool
		wantNil   bool
	}{
		{
			name:  "Success",
			phone: "+628123456789",
			setupFunc: func(mr *miniredis.Miniredis) {
				challenge := testChallenge("+628123456789")
				data, _ := json.Marshal(challenge)
				key := fmt.Sprintf(constants.KeyOTPChallenge, challenge.Phone)
				mr.Set(key, string(data))
				mr.SetTTL(key, 5*time.Minute)
			},
		},
		{
			name:      "No challenge yields nil without error",
			phone:     "+628123456790",
			setupFunc: func(mr *miniredis.Miniredis) {},
			wantNil:   true,
		},
		{
			name:  "Invalid JSON",
			phone: "+628123456791",
			setupFunc: func(mr *miniredis.Miniredis) {
				key := fmt.Sprintf(constants.KeyOTPChallenge, "+628123456791")
				mr.Set(key, "invalid json")
			},
			wantErr: true,
			wantNil: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mr := setupOTPRepoTest(t)
			defer mr.Close()

			tc.setupFunc(mr)

			challenge, err := repo.GetOTPChallenge(context.Background(), tc.phone)
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			if tc.wantNil {
				assert.Nil(t, challenge)
			} else {
				require.NotNil(t, challenge)
				assert.Equal(t, tc.phone, challenge.Phone)
			}
		})
	}
}

func TestDeleteOTPChallenge(t *testing.T) {
	repo, mr := setupOTPRepoTest(t)
	defer mr.Close()

	challenge := testChallenge("+628123456789")
	require.NoError(t, repo.SaveOTPChallenge(context.Background(), challenge, 5*time.Minute))
	require.NoError(t, repo.DeleteOTPChallenge(context.Background(), challenge.Phone))

	key := fmt.Sprintf(constants.KeyOTPChallenge, challenge.Phone)
	assert.False(t, mr.Exists(key))
}

func TestIncrOTPSends_WindowSetOnFirstIncrement(t *testing.T) {
	repo, mr := setupOTPRepoTest(t)
	defer mr.Close()

	ctx := context.Background()
	phone := "+628123456789"

	count, err := repo.IncrOTPSends(ctx, phone, time.Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	key := fmt.Sprintf(constants.KeyOTPSendCount, phone)
	assert.True(t, mr.TTL(key) > 0)

	count, err = repo.IncrOTPSends(ctx, phone, time.Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestIncrSignInAttempts(t *testing.T) {
	repo, mr := setupOTPRepoTest(t)
	defer mr.Close()

	ctx := context.Background()
	for i := int64(1); i <= 3; i++ {
		count, err := repo.IncrSignInAttempts(ctx, "provider-uid-1", time.Hour)
		require.NoError(t, err)
		assert.Equal(t, i, count)
	}
}
