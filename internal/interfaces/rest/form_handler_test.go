package rest_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/paulossjunior/dynamic-forms/internal/application/services"
	"github.com/paulossjunior/dynamic-forms/internal/domain/models"
	"github.com/paulossjunior/dynamic-forms/internal/interfaces/rest"
	"github.com/paulossjunior/dynamic-forms/pkg/constants"
	apperrors "github.com/paulossjunior/dynamic-forms/pkg/errors"
)

// MockFormService is a mock implementation of rest.FormService
type MockFormService struct {
	mock.Mock
}

func (m *MockFormService) CreateForm(ctx context.Context, req services.CreateFormRequest) (*models.Form, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Form), args.Error(1)
}

func (m *MockFormService) GetForm(ctx context.Context, id int64) (*models.Form, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Form), args.Error(1)
}

func (m *MockFormService) ListForms(ctx context.Context) ([]*models.Form, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Form), args.Error(1)
}

func (m *MockFormService) DeleteForm(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockFormService) AssignFieldSection(ctx context.Context, formID, fieldID, sectionID int64) (*models.FieldAssociation, error) {
	args := m.Called(ctx, formID, fieldID, sectionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FieldAssociation), args.Error(1)
}

func TestFormHandler_CreateForm(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("order_index alias and temp ids reach the service", func(t *testing.T) {
		mockService := new(MockFormService)
		handler := rest.NewFormHandler(mockService)

		mockService.On("CreateForm", mock.Anything, mock.MatchedBy(func(req services.CreateFormRequest) bool {
			return req.Name == "F" && len(req.Sections) == 2 &&
				req.Sections[0].Order == 3 && req.Sections[0].TempID == "t1" &&
				req.Sections[1].Order == 7 &&
				len(req.Fields) == 1 && *req.Fields[0].SectionTempID == "t1"
		})).Return(&models.Form{ID: 1, Name: "F"}, nil)

		body := `{"name":"F","sections":[{"temp_id":"t1","name":"A","order_index":3},{"name":"B","order":7,"order_index":1}],
			"fields":[{"field_id":2,"section_temp_id":"t1"}]}`
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/api/forms", bytes.NewBufferString(body))
		c.Request.Header.Set(constants.HeaderContentType, constants.ContentTypeJSON)

		handler.CreateForm(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("conflict maps to 409", func(t *testing.T) {
		mockService := new(MockFormService)
		handler := rest.NewFormHandler(mockService)
		mockService.On("CreateForm", mock.Anything, mock.Anything).
			Return(nil, apperrors.NewConflictError("form", "name", "F"))

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/api/forms", bytes.NewBufferString(`{"name":"F"}`))
		c.Request.Header.Set(constants.HeaderContentType, constants.ContentTypeJSON)

		handler.CreateForm(c)

		assert.Equal(t, http.StatusConflict, w.Code)
		var resp map[string]interface{}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "CONFLICT", resp["code"])
		assert.Nil(t, resp["data"])
	})
}

func TestFormHandler_GetForm(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("unclassified failure maps to 500", func(t *testing.T) {
		mockService := new(MockFormService)
		handler := rest.NewFormHandler(mockService)
		mockService.On("GetForm", mock.Anything, int64(4)).
			Return(nil, apperrors.NewPersistenceError("get form", errors.New("db down")))

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Params = gin.Params{{Key: "id", Value: "4"}}
		c.Request = httptest.NewRequest(http.MethodGet, "/api/forms/4", nil)

		handler.GetForm(c)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "PERSISTENCE_ERROR")
	})

	t.Run("invalid id never reaches the service", func(t *testing.T) {
		mockService := new(MockFormService)
		handler := rest.NewFormHandler(mockService)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Params = gin.Params{{Key: "id", Value: "-1"}}
		c.Request = httptest.NewRequest(http.MethodGet, "/api/forms/-1", nil)

		handler.GetForm(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "GetForm", mock.Anything, mock.Anything)
	})
}
