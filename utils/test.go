package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Govind-619/PaySphere/config"
	"github.com/Govind-619/PaySphere/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// TestSetup initializes the test environment. It reports false when the test
// database is unreachable so DB-backed tests can skip instead of failing.
func TestSetup(t *testing.T) bool {
	if _, err := config.LoadConfig(); err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	cfg := config.App.DB
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return false
	}
	config.DB = db

	if err := db.AutoMigrate(&models.Merchant{}, &models.Order{}, &models.Payment{}); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	ClearTestData()
	return true
}

// TestTeardown cleans up test environment
func TestTeardown(t *testing.T) {
	ClearTestData()
}

// ClearTestData clears all test data from the database
func ClearTestData() {
	config.DB.Exec("TRUNCATE TABLE payments CASCADE")
	config.DB.Exec("TRUNCATE TABLE orders CASCADE")
	config.DB.Exec("TRUNCATE TABLE merchants CASCADE")
}

// CreateTestMerchant creates a merchant with deterministic credentials
// derived from the given name.
func CreateTestMerchant(t *testing.T, name string) *models.Merchant {
	merchant := &models.Merchant{
		ID:        uuid.New().String(),
		Name:      name,
		Email:     fmt.Sprintf("%s@example.com", name),
		APIKey:    fmt.Sprintf("key_%s", name),
		APISecret: fmt.Sprintf("secret_%s", name),
		IsActive:  true,
	}

	if err := config.DB.Create(merchant).Error; err != nil {
		t.Fatalf("Failed to create test merchant: %v", err)
	}

	return merchant
}

// AuthHeaders returns the credential headers for a merchant
func AuthHeaders(merchant *models.Merchant) map[string]string {
	return map[string]string{
		HeaderAPIKey:    merchant.APIKey,
		HeaderAPISecret: merchant.APISecret,
	}
}

// TestRequest represents a test HTTP request
type TestRequest struct {
	Method  string
	Path    string
	Body    interface{}
	Headers map[string]string
}

// TestResponse represents a test HTTP response
type TestResponse struct {
	StatusCode int
	Body       map[string]interface{}
	List       []interface{}
}

// MakeTestRequest makes a test HTTP request
func MakeTestRequest(t *testing.T, router *gin.Engine, req TestRequest) TestResponse {
	// Create request body
	var body []byte
	if req.Body != nil {
		var err error
		body, err = json.Marshal(req.Body)
		if err != nil {
			t.Fatalf("Failed to marshal request body: %v", err)
		}
	}

	// Create HTTP request
	httpReq, err := http.NewRequest(req.Method, req.Path, bytes.NewBuffer(body))
	if err != nil {
		t.Fatalf("Failed to create request: %v", err)
	}

	// Set headers
	httpReq.Header.Set("Content-Type", "application/json")
	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	// Create response recorder
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httpReq)

	// Parse response body; list endpoints return a bare JSON array
	response := TestResponse{StatusCode: w.Code}
	if w.Body.Len() > 0 {
		raw := bytes.TrimSpace(w.Body.Bytes())
		if len(raw) > 0 && raw[0] == '[' {
			if err := json.Unmarshal(raw, &response.List); err != nil {
				t.Fatalf("Failed to unmarshal response list: %v", err)
			}
		} else {
			if err := json.Unmarshal(raw, &response.Body); err != nil {
				t.Fatalf("Failed to unmarshal response body: %v", err)
			}
		}
	}

	return response
}

// ErrorCode extracts the machine-readable code from an error response
func ErrorCode(response TestResponse) string {
	errBody, ok := response.Body["error"].(map[string]interface{})
	if !ok {
		return ""
	}
	code, _ := errBody["code"].(string)
	return code
}

// AssertErrorResponse asserts status and wire code of an error response
func AssertErrorResponse(t *testing.T, response TestResponse, expectedStatus int, expectedCode string) {
	assert.Equal(t, expectedStatus, response.StatusCode)
	assert.Equal(t, expectedCode, ErrorCode(response))
}
