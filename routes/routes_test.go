package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kunalgupta016/street-clean-eats/config"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

var testDBSeq int

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	t.Setenv("JWT_SECRET", "routes-test-secret")

	testDBSeq++
	dsn := fmt.Sprintf("file:routes_test_%d?mode=memory&cache=shared", testDBSeq)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap test db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := config.Migrate(db); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}

	config.DB = db
	t.Cleanup(func() {
		sqlDB.Close()
		config.DB = nil
	})
	return SetupRouter()
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return out
}

func vendorRegistrationBody() map[string]any {
	return map[string]any{
		"full_name":        "Ravi Kumar",
		"email":            "ravi@example.com",
		"password":         "secret1",
		"confirm_password": "secret1",
		"mobile_number":    "+91 9876543210",
		"stall_name":       "Ravi Chaat Corner",
		"primary_cuisine":  "north_indian",
		"operation_type":   "permanent_stall",
		"address_line_1":   "12 MG Road",
		"city":             "Bengaluru",
		"state":            "Karnataka",
		"pincode":          "560001",
	}
}

func registerVendorViaAPI(t *testing.T, r *gin.Engine) (token, vendorID string) {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/auth/register/vendor", "", vendorRegistrationBody())
	if w.Code != http.StatusCreated {
		t.Fatalf("register vendor: status %d, body %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	token, _ = body["token"].(string)
	vendorID, _ = body["vendor_id"].(string)
	if token == "" || vendorID == "" {
		t.Fatalf("registration response missing token or vendor_id: %v", body)
	}
	return token, vendorID
}

func registerCustomerViaAPI(t *testing.T, r *gin.Engine, email string) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/auth/register/customer", "", map[string]any{
		"full_name":        "Asha Rao",
		"email":            email,
		"password":         "secret99",
		"confirm_password": "secret99",
		"mobile_number":    "9876500000",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("register customer: status %d, body %s", w.Code, w.Body.String())
	}
	token, _ := decodeBody(t, w)["token"].(string)
	if token == "" {
		t.Fatal("registration response missing token")
	}
	return token
}

func TestRegisterVendorEndpoint(t *testing.T) {
	r := setupRouter(t)
	registerVendorViaAPI(t, r)
}

func TestRegisterVendorEndpoint_ValidationErrors(t *testing.T) {
	r := setupRouter(t)

	body := vendorRegistrationBody()
	delete(body, "stall_name")
	body["confirm_password"] = "different"

	w := doJSON(t, r, http.MethodPost, "/auth/register/vendor", "", body)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if _, ok := decodeBody(t, w)["errors"]; !ok {
		t.Fatalf("response missing errors array: %s", w.Body.String())
	}
}

func TestRegisterVendorEndpoint_DuplicateEmail(t *testing.T) {
	r := setupRouter(t)
	registerVendorViaAPI(t, r)

	w := doJSON(t, r, http.MethodPost, "/auth/register/vendor", "", vendorRegistrationBody())
	if w.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", w.Code)
	}
}

func TestLoginEndpoint(t *testing.T) {
	r := setupRouter(t)
	registerVendorViaAPI(t, r)

	w := doJSON(t, r, http.MethodPost, "/auth/login", "", map[string]any{
		"email": "ravi@example.com", "password": "secret1",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("login status = %d, body %s", w.Code, w.Body.String())
	}
	if token, _ := decodeBody(t, w)["token"].(string); token == "" {
		t.Fatal("login response missing token")
	}

	w = doJSON(t, r, http.MethodPost, "/auth/login", "", map[string]any{
		"email": "ravi@example.com", "password": "wrong",
	})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("bad password status = %d, want 401", w.Code)
	}
}

func TestVendorRoutes_RequireAuth(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/vendor/dashboard", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("no token status = %d, want 401", w.Code)
	}

	w = doJSON(t, r, http.MethodGet, "/vendor/dashboard", "not-a-jwt", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("garbage token status = %d, want 401", w.Code)
	}
}

func TestVendorRoutes_RejectCustomerToken(t *testing.T) {
	r := setupRouter(t)
	token := registerCustomerViaAPI(t, r, "asha@example.com")

	w := doJSON(t, r, http.MethodGet, "/vendor/dashboard", token, nil)
	if w.Code != http.StatusForbidden {
		t.Fatalf("customer on vendor route status = %d, want 403", w.Code)
	}
}

func TestVendorDashboardFlow(t *testing.T) {
	r := setupRouter(t)
	token, vendorID := registerVendorViaAPI(t, r)

	w := doJSON(t, r, http.MethodGet, "/vendor/dashboard", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("dashboard status = %d, body %s", w.Code, w.Body.String())
	}
	overview, _ := decodeBody(t, w)["overview"].(map[string]any)
	if overview["stall_name"] != "Ravi Chaat Corner" {
		t.Fatalf("dashboard body = %s", w.Body.String())
	}

	w = doJSON(t, r, http.MethodPost, "/vendor/menu", token, map[string]any{
		"name": "Masala Dosa", "price": 60,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create menu item status = %d, body %s", w.Code, w.Body.String())
	}

	// The new item shows on the public vendor card.
	w = doJSON(t, r, http.MethodGet, "/vendors/"+vendorID, "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("vendor card status = %d, body %s", w.Code, w.Body.String())
	}
	card := decodeBody(t, w)
	menu, _ := card["menu"].([]any)
	if len(menu) != 1 {
		t.Fatalf("vendor card menu = %v", card["menu"])
	}
}

func TestOrderAndReviewFlow(t *testing.T) {
	r := setupRouter(t)
	vendorToken, vendorID := registerVendorViaAPI(t, r)
	customerToken := registerCustomerViaAPI(t, r, "asha@example.com")

	w := doJSON(t, r, http.MethodPost, "/vendor/menu", vendorToken, map[string]any{
		"name": "Pav Bhaji", "price": 80,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create menu item status = %d", w.Code)
	}
	itemID, _ := decodeBody(t, w)["id"].(string)

	w = doJSON(t, r, http.MethodPost, "/vendors/"+vendorID+"/orders", customerToken, map[string]any{
		"items": []map[string]any{{"menu_item_id": itemID, "quantity": 2}},
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("place order status = %d, body %s", w.Code, w.Body.String())
	}
	order := decodeBody(t, w)
	if order["total"] != float64(160) {
		t.Fatalf("order total = %v, want 160", order["total"])
	}
	orderID, _ := order["id"].(string)

	w = doJSON(t, r, http.MethodPut, "/vendor/orders/"+orderID+"/status", vendorToken, map[string]any{
		"status": "completed",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("illegal transition status = %d, want 400", w.Code)
	}
	w = doJSON(t, r, http.MethodPut, "/vendor/orders/"+orderID+"/status", vendorToken, map[string]any{
		"status": "preparing",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("legal transition status = %d, body %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodPost, "/vendors/"+vendorID+"/reviews", customerToken, map[string]any{
		"rating": 5, "comment": "great pav bhaji",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create review status = %d, body %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodGet, "/vendor/reviews", vendorToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list reviews status = %d", w.Code)
	}
}

func TestEnumsEndpoint(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/meta/enums", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("enums status = %d", w.Code)
	}
	body := decodeBody(t, w)
	cuisines, _ := body["cuisine_type"].([]any)
	if len(cuisines) != 10 {
		t.Fatalf("cuisine_type = %v", body["cuisine_type"])
	}
}
