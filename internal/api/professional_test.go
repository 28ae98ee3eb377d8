package api

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/careerbridge/backend/internal/models"
	"github.com/careerbridge/backend/internal/service"
)

func TestListProfessionalsPublic(t *testing.T) {
	router, svcs := setupTestRouter(t)
	org := "Acme"
	svcs.Profile.On("ListProfessionals", mock.Anything).Return([]models.Profile{
		{ID: uuid.New(), Role: models.RoleProfessional, FullName: "New Pro", Organization: &org},
		{ID: uuid.New(), Role: models.RoleProfessional, FullName: "Old Pro"},
	}, nil)

	w := doJSON(t, router, http.MethodGet, "/api/v1/professionals", "", "")

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	professionals := body["professionals"].([]interface{})
	require.Len(t, professionals, 2)
	first := professionals[0].(map[string]interface{})
	assert.Equal(t, "New Pro", first["full_name"])
	assert.Equal(t, "Acme", first["organization"])
}

func TestGetProfessional(t *testing.T) {
	router, svcs := setupTestRouter(t)
	id := uuid.New()
	svcs.Profile.On("Get", mock.Anything, id).Return(
		&models.Profile{ID: id, Role: models.RoleProfessional, FullName: "山田 太郎"}, nil)

	w := doJSON(t, router, http.MethodGet, "/api/v1/professionals/"+id.String(), "", "")

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "山田 太郎", body["full_name"])
}

func TestGetProfessionalInvalidID(t *testing.T) {
	router, svcs := setupTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/v1/professionals/not-a-uuid", "", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svcs.Profile.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}

func TestGetProfessionalNotFound(t *testing.T) {
	router, svcs := setupTestRouter(t)
	id := uuid.New()
	svcs.Profile.On("Get", mock.Anything, id).Return(nil, service.ErrProfileNotFound)

	w := doJSON(t, router, http.MethodGet, "/api/v1/professionals/"+id.String(), "", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
}
