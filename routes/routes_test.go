package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kenya-ni-yetu/api-go/models"
	"github.com/kenya-ni-yetu/api-go/utils"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupTestApp(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared&_foreign_keys=on"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("db open: %v", err)
	}
	if err := db.AutoMigrate(models.All()...); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	r := gin.New()
	SetupRoutes(r, db)
	return r, db
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", rr.Body.String(), err)
	}
	return out
}

func seedUserWithRole(t *testing.T, db *gorm.DB, email string, role models.UserRole) (models.User, string) {
	t.Helper()
	hash, err := utils.HashPassword("password123")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	u := models.User{Email: email, HashedPassword: hash, Role: role, IsActive: true}
	if err := db.Create(&u).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	token, err := utils.CreateAccessToken(map[string]interface{}{
		"user_id": u.ID.String(),
		"role":    string(role),
	}, 0)
	if err != nil {
		t.Fatalf("token: %v", err)
	}
	return u, token
}

func seedPolitician(t *testing.T, db *gorm.DB, name string) models.Politician {
	t.Helper()
	p := models.Politician{Name: name, Position: "Senator", IsActive: true}
	if err := db.Create(&p).Error; err != nil {
		t.Fatalf("seed politician: %v", err)
	}
	return p
}

func TestRegisterAndLogin(t *testing.T) {
	r, db := setupTestApp(t)

	rr := doJSON(t, r, http.MethodPost, "/api/auth/register",
		`{"email":"new@example.com","password":"password123","full_name":"New User"}`, "")
	if rr.Code != http.StatusCreated {
		t.Fatalf("register status = %d, body %s", rr.Code, rr.Body.String())
	}

	// Same email again conflicts.
	rr = doJSON(t, r, http.MethodPost, "/api/auth/register",
		`{"email":"new@example.com","password":"password123"}`, "")
	if rr.Code != http.StatusConflict {
		t.Errorf("duplicate register status = %d, want 409", rr.Code)
	}

	rr = doJSON(t, r, http.MethodPost, "/api/auth/login",
		`{"email":"new@example.com","password":"password123"}`, "")
	if rr.Code != http.StatusOK {
		t.Fatalf("login status = %d, body %s", rr.Code, rr.Body.String())
	}
	body := decodeBody(t, rr)
	access, _ := body["access_token"].(string)
	refresh, _ := body["refresh_token"].(string)
	if access == "" || refresh == "" {
		t.Fatal("login did not return a token pair")
	}

	rr = doJSON(t, r, http.MethodPost, "/api/auth/login",
		`{"email":"new@example.com","password":"wrong-password"}`, "")
	if rr.Code != http.StatusUnauthorized {
		t.Errorf("bad login status = %d, want 401", rr.Code)
	}

	var loggedIn models.User
	if err := db.First(&loggedIn, "email = ?", "new@example.com").Error; err != nil {
		t.Fatalf("reload user: %v", err)
	}
	if loggedIn.LastLogin == nil {
		t.Error("last_login not recorded on successful login")
	}

	// Access token works on the profile endpoint; refresh token does not.
	if rr = doJSON(t, r, http.MethodGet, "/api/profile", "", access); rr.Code != http.StatusOK {
		t.Errorf("profile with access token = %d, want 200", rr.Code)
	}
	if rr = doJSON(t, r, http.MethodGet, "/api/profile", "", refresh); rr.Code != http.StatusUnauthorized {
		t.Errorf("profile with refresh token = %d, want 401", rr.Code)
	}
}

func TestRefreshRotation(t *testing.T) {
	r, db := setupTestApp(t)
	u, _ := seedUserWithRole(t, db, "member@example.com", models.RoleUser)

	refresh, err := utils.CreateRefreshToken(map[string]interface{}{
		"user_id": u.ID.String(),
		"role":    string(u.Role),
	})
	if err != nil {
		t.Fatalf("refresh token: %v", err)
	}

	rr := doJSON(t, r, http.MethodPost, "/api/auth/refresh", `{"refresh_token":"`+refresh+`"}`, "")
	if rr.Code != http.StatusOK {
		t.Fatalf("refresh status = %d, body %s", rr.Code, rr.Body.String())
	}
	body := decodeBody(t, rr)
	if body["access_token"] == "" || body["refresh_token"] == "" {
		t.Error("refresh did not return a new pair")
	}

	rr = doJSON(t, r, http.MethodPost, "/api/auth/refresh", `{"refresh_token":"garbage"}`, "")
	if rr.Code != http.StatusUnauthorized {
		t.Errorf("garbage refresh status = %d, want 401", rr.Code)
	}
}

func TestVerifyEmailFlow(t *testing.T) {
	r, db := setupTestApp(t)
	u, access := seedUserWithRole(t, db, "verify@example.com", models.RoleUser)

	token, err := utils.CreateVerificationToken(u.Email)
	if err != nil {
		t.Fatalf("verification token: %v", err)
	}

	rr := doJSON(t, r, http.MethodPost, "/api/auth/verify-email", `{"token":"`+token+`"}`, "")
	if rr.Code != http.StatusOK {
		t.Fatalf("verify status = %d, body %s", rr.Code, rr.Body.String())
	}

	var updated models.User
	if err := db.First(&updated, "id = ?", u.ID).Error; err != nil {
		t.Fatalf("reload user: %v", err)
	}
	if !updated.IsVerified {
		t.Error("user not marked verified")
	}

	// An access token is not a verification token.
	rr = doJSON(t, r, http.MethodPost, "/api/auth/verify-email", `{"token":"`+access+`"}`, "")
	if rr.Code != http.StatusUnauthorized {
		t.Errorf("access token as verification = %d, want 401", rr.Code)
	}
}

func TestPoliticianLifecycleAndRoles(t *testing.T) {
	r, db := setupTestApp(t)
	_, userToken := seedUserWithRole(t, db, "user@example.com", models.RoleUser)
	_, modToken := seedUserWithRole(t, db, "mod@example.com", models.RoleModerator)
	_, adminToken := seedUserWithRole(t, db, "admin@example.com", models.RoleAdmin)

	payload := `{"name":"John Otieno","position":"MP","party":"Example Party","county":"Kisumu"}`

	if rr := doJSON(t, r, http.MethodPost, "/api/politicians", payload, ""); rr.Code != http.StatusUnauthorized {
		t.Errorf("unauthenticated create = %d, want 401", rr.Code)
	}
	if rr := doJSON(t, r, http.MethodPost, "/api/politicians", payload, userToken); rr.Code != http.StatusForbidden {
		t.Errorf("user create = %d, want 403", rr.Code)
	}
	// Politician lifecycle is admin territory; moderators only curate content.
	if rr := doJSON(t, r, http.MethodPost, "/api/politicians", payload, modToken); rr.Code != http.StatusForbidden {
		t.Errorf("moderator create = %d, want 403", rr.Code)
	}

	rr := doJSON(t, r, http.MethodPost, "/api/politicians", payload, adminToken)
	if rr.Code != http.StatusCreated {
		t.Fatalf("admin create = %d, body %s", rr.Code, rr.Body.String())
	}
	created := decodeBody(t, rr)["data"].(map[string]interface{})
	id := created["id"].(string)

	if rr := doJSON(t, r, http.MethodGet, "/api/politicians/"+id, "", ""); rr.Code != http.StatusOK {
		t.Errorf("public get = %d, want 200", rr.Code)
	}

	rr = doJSON(t, r, http.MethodGet, "/api/politicians?party=Example+Party", "", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("list = %d", rr.Code)
	}
	list := decodeBody(t, rr)
	if data := list["data"].([]interface{}); len(data) != 1 {
		t.Errorf("filtered list has %d items, want 1", len(data))
	}

	if rr := doJSON(t, r, http.MethodGet, "/api/politicians/00000000-0000-0000-0000-000000000000", "", ""); rr.Code != http.StatusNotFound {
		t.Errorf("unknown politician get = %d, want 404", rr.Code)
	}
}

func TestPoliticianDeleteCascadesOverAPI(t *testing.T) {
	r, db := setupTestApp(t)
	_, adminToken := seedUserWithRole(t, db, "admin@example.com", models.RoleAdmin)
	_, modToken := seedUserWithRole(t, db, "mod@example.com", models.RoleModerator)
	p := seedPolitician(t, db, "Mary Wanjiku")
	id := p.ID.String()

	rr := doJSON(t, r, http.MethodPost, "/api/politicians/"+id+"/cases",
		`{"title":"Land grabbing suit","case_number":"ELC/55/2022","status":"ongoing","severity":"high"}`, modToken)
	if rr.Code != http.StatusCreated {
		t.Fatalf("create case = %d, body %s", rr.Code, rr.Body.String())
	}
	rr = doJSON(t, r, http.MethodPost, "/api/politicians/"+id+"/promises",
		`{"title":"Tarmac roads","description":"Pledge","date_made":"2022-08-01","status":"in_progress","fulfillment_percentage":40}`, modToken)
	if rr.Code != http.StatusCreated {
		t.Fatalf("create promise = %d, body %s", rr.Code, rr.Body.String())
	}

	if rr := doJSON(t, r, http.MethodDelete, "/api/politicians/"+id, "", adminToken); rr.Code != http.StatusOK {
		t.Fatalf("delete politician = %d, body %s", rr.Code, rr.Body.String())
	}

	var cases, promises int64
	db.Model(&models.LegalCase{}).Count(&cases)
	db.Model(&models.Promise{}).Count(&promises)
	if cases != 0 || promises != 0 {
		t.Errorf("children remain after delete: %d cases, %d promises", cases, promises)
	}
}

func TestCaseValidationAndConflict(t *testing.T) {
	r, db := setupTestApp(t)
	_, modToken := seedUserWithRole(t, db, "mod@example.com", models.RoleModerator)
	p := seedPolitician(t, db, "Peter Kiprotich")
	id := p.ID.String()

	rr := doJSON(t, r, http.MethodPost, "/api/politicians/"+id+"/cases",
		`{"title":"Bad","status":"litigating"}`, modToken)
	if rr.Code != http.StatusBadRequest {
		t.Errorf("invalid status = %d, want 400", rr.Code)
	}

	rr = doJSON(t, r, http.MethodPost, "/api/politicians/"+id+"/cases",
		`{"title":"First","case_number":"HC/77/2024"}`, modToken)
	if rr.Code != http.StatusCreated {
		t.Fatalf("first case = %d, body %s", rr.Code, rr.Body.String())
	}

	rr = doJSON(t, r, http.MethodPost, "/api/politicians/"+id+"/cases",
		`{"title":"Second","case_number":"HC/77/2024"}`, modToken)
	if rr.Code != http.StatusConflict {
		t.Errorf("duplicate case_number = %d, want 409", rr.Code)
	}
}

func TestPromiseRangeValidation(t *testing.T) {
	r, db := setupTestApp(t)
	_, modToken := seedUserWithRole(t, db, "mod@example.com", models.RoleModerator)
	p := seedPolitician(t, db, "Alice Nduta")
	id := p.ID.String()

	rr := doJSON(t, r, http.MethodPost, "/api/politicians/"+id+"/promises",
		`{"title":"T","description":"D","date_made":"2023-01-01","fulfillment_percentage":150}`, modToken)
	if rr.Code != http.StatusBadRequest {
		t.Errorf("percentage 150 = %d, want 400", rr.Code)
	}

	rr = doJSON(t, r, http.MethodPost, "/api/politicians/"+id+"/linkages",
		`{"linked_entity_type":"company","linked_entity_name":"Acme","relationship_type":"director","strength":1.5}`, modToken)
	if rr.Code != http.StatusBadRequest {
		t.Errorf("strength 1.5 = %d, want 400", rr.Code)
	}
}

func TestReportFlow(t *testing.T) {
	r, db := setupTestApp(t)
	_, userToken := seedUserWithRole(t, db, "citizen@example.com", models.RoleUser)
	_, modToken := seedUserWithRole(t, db, "mod@example.com", models.RoleModerator)
	p := seedPolitician(t, db, "Samuel Kariuki")
	id := p.ID.String()

	if rr := doJSON(t, r, http.MethodPost, "/api/politicians/"+id+"/reports",
		`{"issue_type":"corruption","title":"Tender fraud","description":"Details"}`, ""); rr.Code != http.StatusUnauthorized {
		t.Errorf("anonymous create = %d, want 401", rr.Code)
	}

	rr := doJSON(t, r, http.MethodPost, "/api/politicians/"+id+"/reports",
		`{"issue_type":"corruption","title":"Tender fraud","description":"Details","is_anonymous":true,"priority":"high"}`, userToken)
	if rr.Code != http.StatusCreated {
		t.Fatalf("create report = %d, body %s", rr.Code, rr.Body.String())
	}
	created := decodeBody(t, rr)["data"].(map[string]interface{})
	if created["reporter_id"] != nil {
		t.Error("anonymous report exposes reporter_id")
	}
	reportID := created["id"].(string)

	// Moderation update.
	rr = doJSON(t, r, http.MethodPut, "/api/reports/"+reportID,
		`{"status":"investigating","admin_notes":"Assigned to team"}`, modToken)
	if rr.Code != http.StatusOK {
		t.Fatalf("update report = %d, body %s", rr.Code, rr.Body.String())
	}

	if rr := doJSON(t, r, http.MethodPut, "/api/reports/"+reportID,
		`{"status":"resolved"}`, userToken); rr.Code != http.StatusForbidden {
		t.Errorf("user moderation = %d, want 403", rr.Code)
	}

	if rr := doJSON(t, r, http.MethodPut, "/api/reports/"+reportID,
		`{"status":"closed"}`, modToken); rr.Code != http.StatusBadRequest {
		t.Errorf("invalid status = %d, want 400", rr.Code)
	}
}

func TestScoreSnapshotAppend(t *testing.T) {
	r, db := setupTestApp(t)
	_, adminToken := seedUserWithRole(t, db, "admin@example.com", models.RoleAdmin)
	_, modToken := seedUserWithRole(t, db, "mod@example.com", models.RoleModerator)
	p := seedPolitician(t, db, "Grace Akinyi")
	id := p.ID.String()

	if rr := doJSON(t, r, http.MethodPost, "/api/politicians/"+id+"/score-history",
		`{"transparency_score":50,"score_breakdown":{}}`, modToken); rr.Code != http.StatusForbidden {
		t.Errorf("moderator snapshot = %d, want 403", rr.Code)
	}

	rr := doJSON(t, r, http.MethodPost, "/api/politicians/"+id+"/score-history",
		`{"transparency_score":67.5,"score_breakdown":{"cases":20,"promises":30},"calculation_method":"v2","confidence_level":0.8}`, adminToken)
	if rr.Code != http.StatusCreated {
		t.Fatalf("snapshot = %d, body %s", rr.Code, rr.Body.String())
	}

	var updated models.Politician
	if err := db.First(&updated, "id = ?", p.ID).Error; err != nil {
		t.Fatalf("reload politician: %v", err)
	}
	if updated.TransparencyScore != 67.5 {
		t.Errorf("current score = %v, want 67.5", updated.TransparencyScore)
	}

	rr = doJSON(t, r, http.MethodGet, "/api/politicians/"+id+"/score-history", "", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("history list = %d", rr.Code)
	}
	body := decodeBody(t, rr)
	if data := body["data"].([]interface{}); len(data) != 1 {
		t.Errorf("history has %d entries, want 1", len(data))
	}
}

func TestCaseListOrderingAndPagination(t *testing.T) {
	r, db := setupTestApp(t)
	p := seedPolitician(t, db, "Joseph Mwangi")
	id := p.ID.String()

	newer := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	older := time.Date(2022, 6, 15, 0, 0, 0, 0, time.UTC)
	seed := []models.LegalCase{
		{PoliticianID: p.ID, Title: "Undated inquiry", Status: models.CaseStatusPending},
		{PoliticianID: p.ID, Title: "Older suit", Status: models.CaseStatusResolved, DateFiled: &older},
		{PoliticianID: p.ID, Title: "Newer suit", Status: models.CaseStatusOngoing, DateFiled: &newer},
	}
	for i := range seed {
		if err := db.Create(&seed[i]).Error; err != nil {
			t.Fatalf("seed case: %v", err)
		}
	}

	rr := doJSON(t, r, http.MethodGet, "/api/politicians/"+id+"/cases", "", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("list cases = %d, body %s", rr.Code, rr.Body.String())
	}
	body := decodeBody(t, rr)
	data := body["data"].([]interface{})
	if len(data) != 3 {
		t.Fatalf("cases = %d, want 3", len(data))
	}
	titles := make([]string, len(data))
	for i, item := range data {
		titles[i] = item.(map[string]interface{})["title"].(string)
	}
	// date_filed DESC with undated rows sorted last.
	want := []string{"Newer suit", "Older suit", "Undated inquiry"}
	for i := range want {
		if titles[i] != want[i] {
			t.Fatalf("order = %v, want %v", titles, want)
		}
	}

	rr = doJSON(t, r, http.MethodGet, "/api/politicians/"+id+"/cases?pageSize=2&page=2", "", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("paged list = %d", rr.Code)
	}
	body = decodeBody(t, rr)
	if data := body["data"].([]interface{}); len(data) != 1 {
		t.Errorf("page 2 has %d items, want 1", len(data))
	}
	meta := body["pagination"].(map[string]interface{})
	if meta["totalItems"].(float64) != 3 || meta["totalPages"].(float64) != 2 || meta["currentPage"].(float64) != 2 {
		t.Errorf("pagination meta = %v", meta)
	}

	rr = doJSON(t, r, http.MethodGet, "/api/politicians/"+id+"/cases?status=ongoing", "", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("filtered list = %d", rr.Code)
	}
	if data := decodeBody(t, rr)["data"].([]interface{}); len(data) != 1 {
		t.Errorf("ongoing cases = %d, want 1", len(data))
	}

	if rr := doJSON(t, r, http.MethodGet, "/api/politicians/"+id+"/cases?status=litigating", "", ""); rr.Code != http.StatusBadRequest {
		t.Errorf("invalid status filter = %d, want 400", rr.Code)
	}
}

func TestPromiseAndLinkageLists(t *testing.T) {
	r, db := setupTestApp(t)
	p := seedPolitician(t, db, "Esther Chebet")
	id := p.ID.String()

	promises := []models.Promise{
		{PoliticianID: p.ID, Title: "Older pledge", Description: "D", Status: models.PromiseStatusPending,
			DateMade: time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)},
		{PoliticianID: p.ID, Title: "Newer pledge", Description: "D", Status: models.PromiseStatusFulfilled,
			DateMade: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)},
	}
	for i := range promises {
		if err := db.Create(&promises[i]).Error; err != nil {
			t.Fatalf("seed promise: %v", err)
		}
	}

	rr := doJSON(t, r, http.MethodGet, "/api/politicians/"+id+"/promises", "", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("list promises = %d", rr.Code)
	}
	data := decodeBody(t, rr)["data"].([]interface{})
	if len(data) != 2 {
		t.Fatalf("promises = %d, want 2", len(data))
	}
	if first := data[0].(map[string]interface{})["title"]; first != "Newer pledge" {
		t.Errorf("first promise = %v, want newest by date_made", first)
	}

	if rr := doJSON(t, r, http.MethodGet, "/api/politicians/"+id+"/promises?status=kept", "", ""); rr.Code != http.StatusBadRequest {
		t.Errorf("invalid promise status filter = %d, want 400", rr.Code)
	}

	linkages := []models.PoliticalLinkage{
		{PoliticianID: p.ID, LinkedEntityType: models.LinkedEntityCompany, LinkedEntityName: "Weak tie",
			RelationshipType: "supplier", Strength: 0.2},
		{PoliticianID: p.ID, LinkedEntityType: models.LinkedEntityCompany, LinkedEntityName: "Strong tie",
			RelationshipType: "director", Strength: 0.9},
	}
	for i := range linkages {
		if err := db.Create(&linkages[i]).Error; err != nil {
			t.Fatalf("seed linkage: %v", err)
		}
	}

	rr = doJSON(t, r, http.MethodGet, "/api/politicians/"+id+"/linkages", "", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("list linkages = %d", rr.Code)
	}
	data = decodeBody(t, rr)["data"].([]interface{})
	if len(data) != 2 {
		t.Fatalf("linkages = %d, want 2", len(data))
	}
	if first := data[0].(map[string]interface{})["linked_entity_name"]; first != "Strong tie" {
		t.Errorf("first linkage = %v, want strongest first", first)
	}

	if rr := doJSON(t, r, http.MethodGet, "/api/politicians/"+id+"/linkages?entity_type=cartel", "", ""); rr.Code != http.StatusBadRequest {
		t.Errorf("invalid entity type filter = %d, want 400", rr.Code)
	}
}

func TestReportListFilters(t *testing.T) {
	r, db := setupTestApp(t)
	p := seedPolitician(t, db, "Nancy Wairimu")
	id := p.ID.String()

	reports := []models.FlaggedReport{
		{PoliticianID: p.ID, IssueType: "corruption", Title: "First", Description: "D",
			Status: models.ReportStatusUnderReview, Priority: models.ReportPriorityLow},
		{PoliticianID: p.ID, IssueType: "misconduct", Title: "Second", Description: "D",
			Status: models.ReportStatusVerified, Priority: models.ReportPriorityCritical},
	}
	for i := range reports {
		if err := db.Create(&reports[i]).Error; err != nil {
			t.Fatalf("seed report: %v", err)
		}
	}

	rr := doJSON(t, r, http.MethodGet, "/api/politicians/"+id+"/reports?status=verified", "", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("filtered reports = %d", rr.Code)
	}
	data := decodeBody(t, rr)["data"].([]interface{})
	if len(data) != 1 {
		t.Fatalf("verified reports = %d, want 1", len(data))
	}
	if title := data[0].(map[string]interface{})["title"]; title != "Second" {
		t.Errorf("filtered report = %v, want Second", title)
	}

	if rr := doJSON(t, r, http.MethodGet, "/api/politicians/"+id+"/reports?status=closed", "", ""); rr.Code != http.StatusBadRequest {
		t.Errorf("invalid report status filter = %d, want 400", rr.Code)
	}
	if rr := doJSON(t, r, http.MethodGet, "/api/politicians/"+id+"/reports?priority=urgent", "", ""); rr.Code != http.StatusBadRequest {
		t.Errorf("invalid report priority filter = %d, want 400", rr.Code)
	}
}

func TestNewsMentions(t *testing.T) {
	r, db := setupTestApp(t)
	_, modToken := seedUserWithRole(t, db, "mod@example.com", models.RoleModerator)
	p := seedPolitician(t, db, "David Mutua")
	id := p.ID.String()

	published := time.Date(2024, 5, 10, 8, 0, 0, 0, time.UTC).Format(time.RFC3339)
	rr := doJSON(t, r, http.MethodPost, "/api/politicians/"+id+"/news",
		`{"title":"Senator questioned","source":"The Standard","url":"https://example.com/story","published_at":"`+published+`","sentiment":-0.4}`, modToken)
	if rr.Code != http.StatusCreated {
		t.Fatalf("create mention = %d, body %s", rr.Code, rr.Body.String())
	}

	rr = doJSON(t, r, http.MethodGet, "/api/politicians/"+id+"/news", "", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("list mentions = %d", rr.Code)
	}
	body := decodeBody(t, rr)
	data := body["data"].([]interface{})
	if len(data) != 1 {
		t.Fatalf("mentions = %d, want 1", len(data))
	}
	mention := data[0].(map[string]interface{})
	if mention["scraped_at"] == nil {
		t.Error("scraped_at not set on create")
	}
}
