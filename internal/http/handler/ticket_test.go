package handler

import (
	"net/http"
	"testing"

	"backend-enrollment/internal/metrics"
	"backend-enrollment/internal/models"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTakeTicketCreatesAndRejectsRepeat(t *testing.T) {
	env := newTestEnv()
	app := newTestApp(env, 101)

	docsBefore := testutil.ToFloat64(metrics.TicketsEnqueued.WithLabelValues("DOCUMENTS"))
	consulBefore := testutil.ToFloat64(metrics.TicketsEnqueued.WithLabelValues("CONSULTATION"))

	resp := doJSON(t, app, http.MethodPost, "/api/tickets", models.TakeTicketRequest{Specialization: "DOCUMENTS"})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	// Layanan sama dua kali: tolak
	resp = doJSON(t, app, http.MethodPost, "/api/tickets", models.TakeTicketRequest{Specialization: "DOCUMENTS"})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	// Ganti layanan: boleh, tiket tetap satu
	resp = doJSON(t, app, http.MethodPost, "/api/tickets", models.TakeTicketRequest{Specialization: "CONSULTATION"})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Len(t, env.tickets.tickets, 1)
	assert.Equal(t, models.SpecializationConsultation, env.tickets.tickets[101].Specialization)

	// Counter cuma naik waktu tiket baru masuk; tolakan dan ganti layanan tidak dihitung
	assert.Equal(t, docsBefore+1, testutil.ToFloat64(metrics.TicketsEnqueued.WithLabelValues("DOCUMENTS")))
	assert.Equal(t, consulBefore, testutil.ToFloat64(metrics.TicketsEnqueued.WithLabelValues("CONSULTATION")))
}

func TestTakeTicketRejectsUnknownSpecialization(t *testing.T) {
	env := newTestEnv()
	app := newTestApp(env, 101)

	resp := doJSON(t, app, http.MethodPost, "/api/tickets", models.TakeTicketRequest{Specialization: "HAIRCUT"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Empty(t, env.tickets.tickets)
}

func TestTakeTicketRefusesAdmins(t *testing.T) {
	env := newTestEnv()
	env.admins.admins[55] = models.Admin{ID: 55, Specialization: models.SpecializationDocuments, WindowNumber: 2}

	resp := doJSON(t, newTestApp(env, 55), http.MethodPost, "/api/tickets", models.TakeTicketRequest{Specialization: "DOCUMENTS"})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Empty(t, env.tickets.tickets)
}

func TestMyTicketWithPosition(t *testing.T) {
	env := newTestEnv()

	resp := doJSON(t, newTestApp(env, 1), http.MethodPost, "/api/tickets", models.TakeTicketRequest{Specialization: "DOCUMENTS"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp = doJSON(t, newTestApp(env, 2), http.MethodPost, "/api/tickets", models.TakeTicketRequest{Specialization: "DOCUMENTS"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doJSON(t, newTestApp(env, 2), http.MethodGet, "/api/tickets/me", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, float64(2), data["position"])

	resp = doJSON(t, newTestApp(env, 3), http.MethodGet, "/api/tickets/me", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestQueueStatus(t *testing.T) {
	env := newTestEnv()
	app := newTestApp(env, 1)

	resp := doJSON(t, app, http.MethodGet, "/api/queue/status", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, float64(0), data["waiting"])

	doJSON(t, app, http.MethodPost, "/api/tickets", models.TakeTicketRequest{Specialization: "DOCUMENTS"})

	resp = doJSON(t, app, http.MethodGet, "/api/queue/status", nil)
	body = decodeBody(t, resp)
	data = body["data"].(map[string]interface{})
	assert.Equal(t, float64(1), data["waiting"])
	assert.Equal(t, float64(1), data["front_user_id"])
	// Display perlu tahu sejak kapan antrian paling depan menunggu
	assert.NotEmpty(t, data["front_since"])
}
