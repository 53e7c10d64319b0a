package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sewago/sewago/internal/pkg/models"
	"github.com/sewago/sewago/services/identity"
	"github.com/sewago/sewago/services/identity/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testPhone = "+628123456789"

func hashCode(t *testing.T, code string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func activeChallenge(t *testing.T, code string) *models.OTPChallenge {
	now := time.Now()
	return &models.OTPChallenge{
		ID:        uuid.New().String(),
		Phone:     testPhone,
		CodeHash:  hashCode(t, code),
		CreatedAt: now,
		ExpiresAt: now.Add(5 * time.Minute),
		ResendAt:  now.Add(30 * time.Second),
	}
}

func TestSendOTP_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockIdentityRepo(ctrl)
	mockGW := mocks.NewMockIdentityGW(ctrl)
	uc := NewIdentityUC(mockRepo, mockGW, testConfig())

	mockRepo.EXPECT().GetOTPChallenge(gomock.Any(), testPhone).Return(nil, nil)
	mockRepo.EXPECT().IncrOTPSends(gomock.Any(), testPhone, gomock.Any()).Return(int64(1), nil)

	var deliveredCode string
	mockRepo.EXPECT().
		SaveOTPChallenge(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, ch *models.OTPChallenge, ttl time.Duration) error {
			assert.Equal(t, testPhone, ch.Phone)
			assert.NotEmpty(t, ch.CodeHash)
			assert.Equal(t, 5*time.Minute, ttl)
			return nil
		})
	mockGW.EXPECT().
		RequestOTPDelivery(gomock.Any(), testPhone, gomock.Any()).
		DoAndReturn(func(ctx context.Context, phone, code string) error {
			deliveredCode = code
			return nil
		})

	err := uc.SendOTP(context.Background(), "0812-345-6789")
	require.NoError(t, err)
	assert.Len(t, deliveredCode, 6)
	for _, r := range deliveredCode {
		assert.True(t, r >= '0' && r <= '9')
	}
}

func TestSendOTP_InvalidPhone(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := NewIdentityUC(mocks.NewMockIdentityRepo(ctrl), mocks.NewMockIdentityGW(ctrl), testConfig())

	err := uc.SendOTP(context.Background(), "12345")
	assert.ErrorIs(t, err, identity.ErrInvalidPhone)
}

func TestSendOTP_ResendInsideCooldown(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockIdentityRepo(ctrl)
	uc := NewIdentityUC(mockRepo, mocks.NewMockIdentityGW(ctrl), testConfig())

	mockRepo.EXPECT().GetOTPChallenge(gomock.Any(), testPhone).Return(activeChallenge(t, "123456"), nil)

	err := uc.SendOTP(context.Background(), testPhone)
	assert.ErrorIs(t, err, identity.ErrResendTooSoon)
}

func TestSendOTP_RateLimited(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockIdentityRepo(ctrl)
	uc := NewIdentityUC(mockRepo, mocks.NewMockIdentityGW(ctrl), testConfig())

	mockRepo.EXPECT().GetOTPChallenge(gomock.Any(), testPhone).Return(nil, nil)
	mockRepo.EXPECT().IncrOTPSends(gomock.Any(), testPhone, gomock.Any()).Return(int64(6), nil)

	err := uc.SendOTP(context.Background(), testPhone)
	assert.ErrorIs(t, err, identity.ErrRateLimited)
}

func TestVerifyOTP_SuccessExistingUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockIdentityRepo(ctrl)
	mockGW := mocks.NewMockIdentityGW(ctrl)
	uc := NewIdentityUC(mockRepo, mockGW, testConfig())

	user := &models.User{
		ID:            uuid.New(),
		Phone:         testPhone,
		Role:          models.RoleCustomer,
		IsActive:      true,
		PhoneVerified: true,
	}

	mockRepo.EXPECT().GetOTPChallenge(gomock.Any(), testPhone).Return(activeChallenge(t, "123456"), nil)
	mockRepo.EXPECT().DeleteOTPChallenge(gomock.Any(), testPhone).Return(nil)
	mockRepo.EXPECT().GetUserByPhone(gomock.Any(), testPhone).Return(user, nil)
	mockGW.EXPECT().MirrorProfile(user)

	auth, err := uc.VerifyOTP(context.Background(), testPhone, "123456")
	require.NoError(t, err)
	assert.NotEmpty(t, auth.Token)
	assert.Equal(t, user, auth.User)
}

func TestVerifyOTP_FirstContactRegisters(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockIdentityRepo(ctrl)
	mockGW := mocks.NewMockIdentityGW(ctrl)
	uc := NewIdentityUC(mockRepo, mockGW, testConfig())

	mockRepo.EXPECT().GetOTPChallenge(gomock.Any(), testPhone).Return(activeChallenge(t, "123456"), nil)
	mockRepo.EXPECT().DeleteOTPChallenge(gomock.Any(), testPhone).Return(nil)
	mockRepo.EXPECT().GetUserByPhone(gomock.Any(), testPhone).Return(nil, nil)
	mockRepo.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, u *models.User) error {
			assert.Equal(t, testPhone, u.Phone)
			assert.Equal(t, models.RoleCustomer, u.Role)
			assert.True(t, u.PhoneVerified)
			u.ID = uuid.New()
			return nil
		})
	mockGW.EXPECT().PublishUserRegistered(gomock.Any(), gomock.Any()).Return(nil)
	mockGW.EXPECT().MirrorProfile(gomock.Any())

	auth, err := uc.VerifyOTP(context.Background(), testPhone, "123456")
	require.NoError(t, err)
	assert.True(t, auth.RequiresProfileCompletion)
}

func TestVerifyOTP_NoChallenge(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockIdentityRepo(ctrl)
	uc := NewIdentityUC(mockRepo, mocks.NewMockIdentityGW(ctrl), testConfig())

	mockRepo.EXPECT().GetOTPChallenge(gomock.Any(), testPhone).Return(nil, nil)

	_, err := uc.VerifyOTP(context.Background(), testPhone, "123456")
	assert.ErrorIs(t, err, identity.ErrChallengeNotFound)
}

func TestVerifyOTP_ExpiredChallengeDiscarded(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockIdentityRepo(ctrl)
	uc := NewIdentityUC(mockRepo, mocks.NewMockIdentityGW(ctrl), testConfig())

	expired := activeChallenge(t, "123456")
	expired.ExpiresAt = time.Now().Add(-time.Minute)

	mockRepo.EXPECT().GetOTPChallenge(gomock.Any(), testPhone).Return(expired, nil)
	mockRepo.EXPECT().DeleteOTPChallenge(gomock.Any(), testPhone).Return(nil)

	_, err := uc.VerifyOTP(context.Background(), testPhone, "123456")
	assert.ErrorIs(t, err, identity.ErrChallengeExpired)
}

func TestVerifyOTP_WrongCodeBurnsAttempt(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockIdentityRepo(ctrl)
	uc := NewIdentityUC(mockRepo, mocks.NewMockIdentityGW(ctrl), testConfig())

	mockRepo.EXPECT().GetOTPChallenge(gomock.Any(), testPhone).Return(activeChallenge(t, "123456"), nil)
	mockRepo.EXPECT().
		SaveOTPChallenge(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, ch *models.OTPChallenge, ttl time.Duration) error {
			assert.Equal(t, 1, ch.Attempts, "the burned attempt is persisted")
			return nil
		})

	_, err := uc.VerifyOTP(context.Background(), testPhone, "999999")
	assert.ErrorIs(t, err, identity.ErrCodeInvalid)
}

func TestVerifyOTP_AttemptBudgetExhausted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockIdentityRepo(ctrl)
	uc := NewIdentityUC(mockRepo, mocks.NewMockIdentityGW(ctrl), testConfig())

	challenge := activeChallenge(t, "123456")
	challenge.Attempts = 5

	mockRepo.EXPECT().GetOTPChallenge(gomock.Any(), testPhone).Return(challenge, nil)
	mockRepo.EXPECT().DeleteOTPChallenge(gomock.Any(), testPhone).Return(nil)

	// Even the correct code is rejected once the budget is gone.
	_, err := uc.VerifyOTP(context.Background(), testPhone, "123456")
	assert.ErrorIs(t, err, identity.ErrTooManyAttempts)
}
