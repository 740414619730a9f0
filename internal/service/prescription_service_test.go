package service

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "medtracker/internal/errors"
	"medtracker/internal/model"
	"medtracker/internal/storage"
)

func TestStoredName(t *testing.T) {
	tests := []struct {
		filename string
		want     string
		wantErr  error
	}{
		{"rx.png", "4_rx.png", nil},
		{"../../etc/passwd", "4_passwd", nil},
		{`C:\scans\rx.jpg`, "4_rx.jpg", nil},
		{"", "", apperrors.ErrInvalidFilename},
		{"..", "", apperrors.ErrInvalidFilename},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			got, err := StoredName(4, tt.filename)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPrescriptionService_Upload(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(*MockMedicineRepository, *MockStore)
		wantURL   string
		wantErr   error
	}{
		{
			name: "successful upload",
			setupMock: func(r *MockMedicineRepository, s *MockStore) {
				r.On("FindByID", mock.Anything, uint(5)).Return(&model.Medicine{ID: 5}, nil)
				s.On("Save", mock.Anything, "5_rx.png", mock.Anything, int64(3), "image/png").Return(nil)
				r.On("Update", mock.Anything, uint(5), map[string]interface{}{"prescription_url": "prescriptions/5_rx.png"}).
					Return(&model.Medicine{ID: 5}, nil)
			},
			wantURL: "prescriptions/5_rx.png",
		},
		{
			name: "medicine missing",
			setupMock: func(r *MockMedicineRepository, s *MockStore) {
				r.On("FindByID", mock.Anything, uint(5)).Return(nil, gorm.ErrRecordNotFound)
			},
			wantErr: apperrors.ErrMedicineNotFound,
		},
		{
			name: "store failure",
			setupMock: func(r *MockMedicineRepository, s *MockStore) {
				r.On("FindByID", mock.Anything, uint(5)).Return(&model.Medicine{ID: 5}, nil)
				s.On("Save", mock.Anything, "5_rx.png", mock.Anything, int64(3), "image/png").Return(errors.New("no space left on device"))
			},
			wantErr: apperrors.ErrUploadFailed,
		},
		{
			name: "medicine deleted mid upload",
			setupMock: func(r *MockMedicineRepository, s *MockStore) {
				r.On("FindByID", mock.Anything, uint(5)).Return(&model.Medicine{ID: 5}, nil)
				s.On("Save", mock.Anything, "5_rx.png", mock.Anything, int64(3), "image/png").Return(nil)
				r.On("Update", mock.Anything, uint(5), mock.Anything).Return(nil, gorm.ErrRecordNotFound)
			},
			wantErr: apperrors.ErrMedicineNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockMedicineRepository)
			mockStore := new(MockStore)
			tt.setupMock(mockRepo, mockStore)

			svc := NewPrescriptionService(mockRepo, mockStore)
			url, err := svc.Upload(context.Background(), 5, UploadInput{
				Filename:    "rx.png",
				ContentType: "image/png",
				Size:        3,
				Body:        strings.NewReader("png"),
			})

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, url)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantURL, url)
			}
			mockRepo.AssertExpectations(t)
			mockStore.AssertExpectations(t)
		})
	}
}

func TestPrescriptionService_Open(t *testing.T) {
	mockRepo := new(MockMedicineRepository)
	mockStore := new(MockStore)
	info := &storage.ObjectInfo{Name: "1_rx.png", Size: 3, ContentType: "image/png"}
	mockStore.On("Open", mock.Anything, "1_rx.png").Return(io.NopCloser(strings.NewReader("png")), info, nil)
	mockStore.On("Open", mock.Anything, "missing.png").Return(nil, nil, storage.ErrObjectNotFound)

	svc := NewPrescriptionService(mockRepo, mockStore)

	rc, got, err := svc.Open(context.Background(), "../1_rx.png")
	assert.NoError(t, err)
	assert.Equal(t, info, got)
	_ = rc.Close()

	_, _, err = svc.Open(context.Background(), "missing.png")
	assert.ErrorIs(t, err, apperrors.ErrPrescriptionNotFound)

	mockStore.AssertExpectations(t)
}
