package handler

import (
	"net/http"
	"testing"

	"backend-enrollment/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddAdminOwnerOnly(t *testing.T) {
	env := newTestEnv()
	app := newTestApp(env, 123) // bukan owner

	resp := doJSON(t, app, http.MethodPost, "/api/admins", models.AddAdminRequest{
		UserID:         10,
		Specialization: "DOCUMENTS",
		WindowNumber:   1,
	})

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Empty(t, env.admins.admins)
}

func TestAddAdminCreates(t *testing.T) {
	env := newTestEnv()
	app := newTestApp(env, testOwnerID)

	resp := doJSON(t, app, http.MethodPost, "/api/admins", models.AddAdminRequest{
		UserID:         10,
		Specialization: "CONSULTATION",
		WindowNumber:   4,
	})

	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	admin, ok := env.admins.admins[10]
	require.True(t, ok)
	assert.Equal(t, models.SpecializationConsultation, admin.Specialization)
	assert.Equal(t, 4, admin.WindowNumber)
}

// Satu field salah = seluruh request ditolak, store tidak tersentuh
func TestAddAdminRejectsInvalidArgumentsWholesale(t *testing.T) {
	env := newTestEnv()
	app := newTestApp(env, testOwnerID)

	cases := []models.AddAdminRequest{
		{UserID: 0, Specialization: "DOCUMENTS", WindowNumber: 1},
		{UserID: 10, Specialization: "INVALID", WindowNumber: 1},
		{UserID: 10, Specialization: "documents", WindowNumber: 1},
		{UserID: 10, Specialization: "DOCUMENTS", WindowNumber: 0},
		{UserID: -5, Specialization: "INVALID", WindowNumber: -1},
	}

	for _, req := range cases {
		resp := doJSON(t, app, http.MethodPost, "/api/admins", req)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "%+v", req)
	}

	assert.Empty(t, env.admins.admins)
}

func TestAddAdminDuplicateConflict(t *testing.T) {
	env := newTestEnv()
	app := newTestApp(env, testOwnerID)

	body := models.AddAdminRequest{UserID: 10, Specialization: "DOCUMENTS", WindowNumber: 1}

	resp := doJSON(t, app, http.MethodPost, "/api/admins", body)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost, "/api/admins", body)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestMyAdmin(t *testing.T) {
	env := newTestEnv()
	env.admins.admins[55] = models.Admin{ID: 55, Specialization: models.SpecializationDocuments, WindowNumber: 2}

	resp := doJSON(t, newTestApp(env, 55), http.MethodGet, "/api/admins/me", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, float64(2), data["window_number"])

	resp = doJSON(t, newTestApp(env, 56), http.MethodGet, "/api/admins/me", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
