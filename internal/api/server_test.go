package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmapay/escrow_service/internal/repository"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name)), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, repository.AutoMigrate(db))

	return NewApp(db, nil)
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var decoded map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))

	return resp.StatusCode, decoded
}

func signup(t *testing.T, app *fiber.App, email, bvn string) map[string]any {
	t.Helper()

	status, body := doJSON(t, app, http.MethodPost, "/api/signup", fiber.Map{
		"name":  "Ada",
		"email": email,
		"bvn":   bvn,
	})
	require.Equal(t, http.StatusOK, status, "signup: %v", body)
	return body
}

func createTx(t *testing.T, app *fiber.App, buyerEmail string, amount float64) string {
	t.Helper()

	status, body := doJSON(t, app, http.MethodPost, "/api/transactions", fiber.Map{
		"buyerEmail": buyerEmail,
		"amount":     amount,
	})
	require.Equal(t, http.StatusOK, status, "create tx: %v", body)
	tx := body["tx"].(map[string]any)
	return tx["id"].(string)
}

func TestSignupEndpoint(t *testing.T) {
	app := newTestApp(t)

	body := signup(t, app, "ada@example.com", "12345678901")
	assert.Equal(t, true, body["ok"])
	user := body["user"].(map[string]any)
	assert.Equal(t, "Ada", user["name"])
	assert.Equal(t, float64(125000), user["wallet"])

	// Same email again -> 409.
	status, body := doJSON(t, app, http.MethodPost, "/api/signup", fiber.Map{
		"name": "Ada", "email": "ada@example.com", "bvn": "12345678901",
	})
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "User already exists", body["error"])

	// Bad BVN -> 400.
	status, body = doJSON(t, app, http.MethodPost, "/api/signup", fiber.Map{
		"name": "Eve", "email": "eve@example.com", "bvn": "123",
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Invalid BVN format", body["error"])

	// Empty body -> 400 missing fields.
	status, body = doJSON(t, app, http.MethodPost, "/api/signup", nil)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Missing fields", body["error"])
}

func TestLoginEndpoint(t *testing.T) {
	app := newTestApp(t)
	signup(t, app, "ada@example.com", "12345678901")

	status, body := doJSON(t, app, http.MethodPost, "/api/login", fiber.Map{"email": "ada@example.com"})
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["ok"])

	status, body = doJSON(t, app, http.MethodPost, "/api/login", fiber.Map{"email": "ghost@example.com"})
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "User not found", body["error"])
}

func TestTransactionLifecycleEndpoints(t *testing.T) {
	app := newTestApp(t)
	signup(t, app, "buyer@example.com", "12345678901")

	txID := createTx(t, app, "buyer@example.com", 500)

	// Confirm: holding -> released.
	status, body := doJSON(t, app, http.MethodPost, "/api/transactions/"+txID+"/confirm", nil)
	require.Equal(t, http.StatusOK, status)
	tx := body["tx"].(map[string]any)
	assert.Equal(t, "released", tx["status"])
	assert.NotNil(t, tx["releasedAt"])

	// Confirming again -> 400.
	status, body = doJSON(t, app, http.MethodPost, "/api/transactions/"+txID+"/confirm", nil)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Cannot confirm", body["error"])

	// Released can still request a refund.
	status, body = doJSON(t, app, http.MethodPost, "/api/transactions/"+txID+"/refund", fiber.Map{"reason": "damaged"})
	require.Equal(t, http.StatusOK, status)
	tx = body["tx"].(map[string]any)
	assert.Equal(t, "refund_requested", tx["status"])
	assert.Equal(t, "damaged", tx["refundReason"])

	// Admin approves: -> refunded.
	status, body = doJSON(t, app, http.MethodPost, "/api/admin/review", fiber.Map{
		"txId": txID, "action": "approve_refund",
	})
	require.Equal(t, http.StatusOK, status)
	tx = body["tx"].(map[string]any)
	assert.Equal(t, "refunded", tx["status"])
	assert.NotNil(t, tx["refundedAt"])

	// Refunded is terminal for refund requests.
	status, body = doJSON(t, app, http.MethodPost, "/api/transactions/"+txID+"/refund", nil)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Refund not allowed at this stage", body["error"])
}

func TestTransactionEndpointErrors(t *testing.T) {
	app := newTestApp(t)
	signup(t, app, "buyer@example.com", "12345678901")

	status, body := doJSON(t, app, http.MethodPost, "/api/transactions", fiber.Map{"buyerEmail": "buyer@example.com"})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Missing fields", body["error"])

	status, body = doJSON(t, app, http.MethodPost, "/api/transactions", fiber.Map{"buyerEmail": "ghost@example.com", "amount": 10})
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Buyer not found", body["error"])

	status, body = doJSON(t, app, http.MethodPost, "/api/transactions/tx_missing/confirm", nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Transaction not found", body["error"])

	status, body = doJSON(t, app, http.MethodPost, "/api/admin/review", fiber.Map{"txId": "tx_missing", "action": "approve_refund"})
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Transaction not found", body["error"])
}

func TestListTransactionsEndpoint(t *testing.T) {
	app := newTestApp(t)
	signup(t, app, "buyer@example.com", "12345678901")
	signup(t, app, "other@example.com", "10987654321")

	first := createTx(t, app, "buyer@example.com", 100)
	createTx(t, app, "other@example.com", 200)
	second := createTx(t, app, "buyer@example.com", 300)

	status, body := doJSON(t, app, http.MethodGet, "/api/transactions/buyer@example.com", nil)
	require.Equal(t, http.StatusOK, status)

	txs := body["transactions"].([]any)
	require.Len(t, txs, 2)
	assert.Equal(t, first, txs[0].(map[string]any)["id"])
	assert.Equal(t, second, txs[1].(map[string]any)["id"])

	// Unknown buyer gets an empty list, not an error.
	status, body = doJSON(t, app, http.MethodGet, "/api/transactions/nobody@example.com", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, body["transactions"].([]any), 0)
}

func TestAdminFlagBVNEndpoint(t *testing.T) {
	app := newTestApp(t)
	signup(t, app, "buyer@example.com", "12345678901")
	txID := createTx(t, app, "buyer@example.com", 500)

	status, body := doJSON(t, app, http.MethodPost, "/api/admin/review", fiber.Map{
		"txId": txID, "action": "flag_bvn",
	})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "12345678901", body["flagged"])

	// The debug snapshot reflects the flag.
	status, body = doJSON(t, app, http.MethodGet, "/api/debug/transactions", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(1), body["users"])
	assert.Equal(t, []any{"12345678901"}, body["flaggedBVNs"])
	assert.Len(t, body["transactions"].([]any), 1)

	// Any later signup with that BVN is blocked.
	status, body = doJSON(t, app, http.MethodPost, "/api/signup", fiber.Map{
		"name": "Eve", "email": "eve@example.com", "bvn": "12345678901",
	})
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "This BVN is flagged for fraud", body["error"])

	// Unknown action -> 400.
	status, body = doJSON(t, app, http.MethodPost, "/api/admin/review", fiber.Map{
		"txId": txID, "action": "escalate",
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Invalid action", body["error"])
}

func TestSupportEndpoint(t *testing.T) {
	app := newTestApp(t)

	status, body := doJSON(t, app, http.MethodPost, "/api/support", fiber.Map{
		"email": "ada@example.com", "message": "help",
	})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["ok"])
	assert.True(t, strings.HasPrefix(body["id"].(string), "s_"))

	// Empty body is accepted too.
	status, _ = doJSON(t, app, http.MethodPost, "/api/support", nil)
	assert.Equal(t, http.StatusOK, status)
}

func TestHealthEndpoint(t *testing.T) {
	app := newTestApp(t)

	status, body := doJSON(t, app, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ok", body["status"])
}
