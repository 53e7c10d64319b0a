package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sewago/sewago/internal/pkg/models"
	"github.com/sewago/sewago/services/identity"
	"github.com/sewago/sewago/services/identity/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func incompleteUser() *models.User {
	return &models.User{
		ID:       uuid.New(),
		Phone:    testPhone,
		Role:     models.RoleCustomer,
		IsActive: true,
	}
}

func TestCompleteProfile_Customer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockIdentityRepo(ctrl)
	mockGW := mocks.NewMockIdentityGW(ctrl)
	uc := NewIdentityUC(mockRepo, mockGW, testConfig())

	user := incompleteUser()
	mockRepo.EXPECT().GetUserByID(gomock.Any(), user.ID).Return(user, nil)
	mockRepo.EXPECT().
		CompleteProfile(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, u *models.User) error {
			assert.Equal(t, models.RoleCustomer, u.Role)
			assert.True(t, u.IsProfileComplete)
			require.NotNil(t, u.OwnerInfo)
			assert.Equal(t, "3171234567890001", u.OwnerInfo.IDDocumentNumber)
			assert.Empty(t, u.OwnerInfo.BankName, "customers do not submit bank details")
			return nil
		})
	mockGW.EXPECT().PublishProfileCompleted(gomock.Any(), gomock.Any()).Return(nil)
	mockGW.EXPECT().MirrorProfile(gomock.Any())

	got, err := uc.CompleteProfile(context.Background(), user.ID, &models.CompleteProfileRequest{
		Role:             models.RoleCustomer,
		FullName:         "Budi Santoso",
		IDDocumentNumber: "3171234567890001",
	})
	require.NoError(t, err)
	assert.True(t, got.IsProfileComplete)
}

func TestCompleteProfile_OwnerWithBankDetails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockIdentityRepo(ctrl)
	mockGW := mocks.NewMockIdentityGW(ctrl)
	uc := NewIdentityUC(mockRepo, mockGW, testConfig())

	user := incompleteUser()
	mockRepo.EXPECT().GetUserByID(gomock.Any(), user.ID).Return(user, nil)
	mockRepo.EXPECT().
		CompleteProfile(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, u *models.User) error {
			assert.Equal(t, models.RoleOwner, u.Role)
			assert.Equal(t, "Bank Mandiri", u.OwnerInfo.BankName)
			return nil
		})
	mockGW.EXPECT().PublishProfileCompleted(gomock.Any(), gomock.Any()).Return(nil)
	mockGW.EXPECT().MirrorProfile(gomock.Any())

	_, err := uc.CompleteProfile(context.Background(), user.ID, &models.CompleteProfileRequest{
		Role:              models.RoleOwner,
		FullName:          "Siti Rahayu",
		IDDocumentNumber:  "3171234567890002",
		BankName:          "Bank Mandiri",
		BankAccountName:   "Siti Rahayu",
		BankAccountNumber: "1234567890",
	})
	require.NoError(t, err)
}

func TestCompleteProfile_ValidationFailures(t *testing.T) {
	testCases := []struct {
		name       string
		req        *models.CompleteProfileRequest
		wantFields []string
	}{
		{
			name:       "Missing everything",
			req:        &models.CompleteProfileRequest{},
			wantFields: []string{"role", "full_name", "id_document_number"},
		},
		{
			name: "Admin role cannot be self-selected",
			req: &models.CompleteProfileRequest{
				Role:             models.RoleAdmin,
				FullName:         "Budi",
				IDDocumentNumber: "317",
			},
			wantFields: []string{"role"},
		},
		{
			name: "Owner without bank details",
			req: &models.CompleteProfileRequest{
				Role:             models.RoleOwner,
				FullName:         "Siti",
				IDDocumentNumber: "317",
			},
			wantFields: []string{"bank_name", "bank_account_name", "bank_account_number"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			// Nothing is persisted until the whole submission is valid.
			uc := NewIdentityUC(mocks.NewMockIdentityRepo(ctrl), mocks.NewMockIdentityGW(ctrl), testConfig())

			_, err := uc.CompleteProfile(context.Background(), uuid.New(), tc.req)

			var verr *identity.ValidationError
			require.True(t, errors.As(err, &verr))
			for _, field := range tc.wantFields {
				assert.Contains(t, verr.Fields, field)
			}
		})
	}
}

func TestCompleteProfile_UnknownUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockIdentityRepo(ctrl)
	uc := NewIdentityUC(mockRepo, mocks.NewMockIdentityGW(ctrl), testConfig())

	userID := uuid.New()
	mockRepo.EXPECT().GetUserByID(gomock.Any(), userID).Return(nil, nil)

	_, err := uc.CompleteProfile(context.Background(), userID, &models.CompleteProfileRequest{
		Role:             models.RoleCustomer,
		FullName:         "Budi",
		IDDocumentNumber: "317",
	})
	assert.ErrorIs(t, err, identity.ErrUserInactive)
}
