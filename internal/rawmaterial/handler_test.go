package rawmaterial

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"wiretrack-backend/internal/database"
	"wiretrack-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.RawMaterialLog{}))
	database.DB = db
}

func newTestApp() *fiber.App {
	app := fiber.New()
	app.Post("/api/raw-material-log", CreateHandler())
	app.Put("/api/raw-material-log/:id", UpdateHandler())
	return app
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func doJSON(t *testing.T, app *fiber.App, method, url string, body any) (int, envelope) {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(method, url, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

func TestCreateHandler_DuplicateGatePass(t *testing.T) {
	setupTestDB(t)
	app := newTestApp()

	body := CreateLogRequest{
		GatePass:        "GP-1001",
		TransactionType: "inward",
		Category:        "copper",
		Quantity:        100,
		PerMeterWt:      0.25,
	}

	status, env := doJSON(t, app, "POST", "/api/raw-material-log", body)
	require.Equal(t, fiber.StatusCreated, status)
	assert.True(t, env.Success)

	status, env = doJSON(t, app, "POST", "/api/raw-material-log", body)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.False(t, env.Success)
	assert.Equal(t, "Gate pass number already exists", env.Message)
}

func TestUpdateHandler_GatePassCollision(t *testing.T) {
	setupTestDB(t)
	app := newTestApp()

	first := CreateLogRequest{GatePass: "GP-1001", TransactionType: "inward", Quantity: 100}
	status, _ := doJSON(t, app, "POST", "/api/raw-material-log", first)
	require.Equal(t, fiber.StatusCreated, status)

	second := CreateLogRequest{GatePass: "GP-1002", TransactionType: "outward", Quantity: 50}
	status, env := doJSON(t, app, "POST", "/api/raw-material-log", second)
	require.Equal(t, fiber.StatusCreated, status)

	var created models.RawMaterialLog
	require.NoError(t, json.Unmarshal(env.Data, &created))

	// stealing the first log's gate pass is refused
	gp := "GP-1001"
	status, env = doJSON(t, app, "PUT", fmt.Sprintf("/api/raw-material-log/%d", created.ID), UpdateLogRequest{GatePass: &gp})
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.False(t, env.Success)
	assert.Equal(t, "Gate pass number already exists", env.Message)

	// resubmitting its own gate pass unchanged is fine
	own := "GP-1002"
	status, env = doJSON(t, app, "PUT", fmt.Sprintf("/api/raw-material-log/%d", created.ID), UpdateLogRequest{GatePass: &own})
	assert.Equal(t, fiber.StatusOK, status)
	assert.True(t, env.Success)
}

func TestUpdateHandler_RecomputesWeight(t *testing.T) {
	setupTestDB(t)
	app := newTestApp()

	body := CreateLogRequest{GatePass: "GP-2001", TransactionType: "inward", Quantity: 100, PerMeterWt: 0.25}
	status, env := doJSON(t, app, "POST", "/api/raw-material-log", body)
	require.Equal(t, fiber.StatusCreated, status)

	var created models.RawMaterialLog
	require.NoError(t, json.Unmarshal(env.Data, &created))
	require.Equal(t, 25.00, created.Weight)

	qty := 200.0
	status, env = doJSON(t, app, "PUT", fmt.Sprintf("/api/raw-material-log/%d", created.ID), UpdateLogRequest{Quantity: &qty})
	require.Equal(t, fiber.StatusOK, status)

	var updated models.RawMaterialLog
	require.NoError(t, json.Unmarshal(env.Data, &updated))
	assert.Equal(t, 50.00, updated.Weight)
}
