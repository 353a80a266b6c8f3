package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Monitoreo-api/internal/application/documents"
	"github.com/jhoicas/Monitoreo-api/internal/application/dto"
	"github.com/jhoicas/Monitoreo-api/internal/application/templates"
	"github.com/jhoicas/Monitoreo-api/internal/domain/entity"
	"github.com/jhoicas/Monitoreo-api/internal/infrastructure/memory"
	apphttp "github.com/jhoicas/Monitoreo-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/Monitoreo-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

type stubPDF struct{}

func (stubPDF) GenerateDocumentPDF(_ context.Context, _ entity.FamilyConfig, doc *entity.Document) ([]byte, error) {
	return []byte("%PDF-" + doc.Number), nil
}

type apiFixture struct {
	app   *fiber.App
	demo  memory.Demo
	token string
}

func newAPI(t *testing.T, health func(context.Context) error) *apiFixture {
	t.Helper()
	store := memory.NewStore()
	demo := store.Directory().SeedDemo()
	clock := func() time.Time { return time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC) }

	var docUCs []*documents.DocumentUseCase
	var tplUCs []*templates.TemplateUseCase
	for _, fam := range entity.Families {
		docUCs = append(docUCs, documents.NewDocumentUseCase(fam, store, store.Documents(), store.Directory(),
			documents.Options{Clock: clock}, zerolog.Nop()))
		tplUCs = append(tplUCs, templates.NewTemplateUseCase(fam, store.Templates(), zerolog.Nop()))
	}

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		Documents: docUCs,
		Templates: tplUCs,
		PDF:       documents.NewPDFUseCase(stubPDF{}, docUCs...),
		JWTSecret: testJWTSecret,
		Log:       zerolog.Nop(),
		AppName:   "monitoreo-api-test",
		Health:    health,
	})
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, "admin", testIssuer, testExpMin)
	require.NoError(t, err)
	return &apiFixture{app: app, demo: demo, token: "Bearer " + tok}
}

func (f *apiFixture) do(t *testing.T, method, path string, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", f.token)
	resp, err := f.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func (f *apiFixture) purchaseOrder(number string, items ...map[string]any) map[string]any {
	return map[string]any{
		"number":    number,
		"party_id":  f.demo.ProviderID,
		"gestor_id": f.demo.GestorID,
		"date":      "2024-03-01",
		"items":     items,
	}
}

func item(code string, qty int, price string) map[string]any {
	return map[string]any{"code": code, "name": "Ítem " + code, "description": "Detalle " + code, "quantity": qty, "unit_price": price}
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// ──────────────────────────────────────────────────────────────────────────────
// Documentos
// ──────────────────────────────────────────────────────────────────────────────

func TestDocumentAPI_OrdenDeCompraCicloCompleto(t *testing.T) {
	api := newAPI(t, nil)

	resp := api.do(t, http.MethodPost, "/api/purchase-orders", api.purchaseOrder("OC-2024-001", item("A", 2, "100"), item("B", 1, "50")))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode[dto.DocumentResponse](t, resp)
	assert.True(t, created.Total.Equal(dec("295")))
	assert.Equal(t, testUserID, created.CreatedBy)

	resp = api.do(t, http.MethodPut, "/api/purchase-orders/"+created.ID, map[string]any{
		"items": []map[string]any{item("A", 3, "100")},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	updated := decode[dto.DocumentResponse](t, resp)
	assert.True(t, updated.Subtotal.Equal(dec("300")))
	assert.True(t, updated.Tax.Equal(dec("54")))
	assert.True(t, updated.Total.Equal(dec("354")))
	require.Len(t, updated.Items, 1)

	resp = api.do(t, http.MethodGet, "/api/purchase-orders/next-number", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "OC-2024-002", decode[dto.NextNumberResponse](t, resp).Number)

	resp = api.do(t, http.MethodGet, "/api/purchase-orders?search=oc-2024&limit=5", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := decode[dto.DocumentListResponse](t, resp)
	assert.Equal(t, 1, list.Page.Total)
	assert.Equal(t, 5, list.Page.Limit)

	resp = api.do(t, http.MethodDelete, "/api/purchase-orders/"+created.ID, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = api.do(t, http.MethodGet, "/api/purchase-orders/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", decode[dto.ErrorResponse](t, resp).Code)
}

func TestDocumentAPI_SinItemsDevuelveValidation(t *testing.T) {
	api := newAPI(t, nil)

	resp := api.do(t, http.MethodPost, "/api/purchase-orders", api.purchaseOrder("OC-2024-001"))
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "VALIDATION", body.Code)
	require.NotEmpty(t, body.Fields)
	assert.Equal(t, "items", body.Fields[0].Field)
}

func TestDocumentAPI_NumeroDuplicadoDevuelveConflict(t *testing.T) {
	api := newAPI(t, nil)

	resp := api.do(t, http.MethodPost, "/api/purchase-orders", api.purchaseOrder("OC-2024-001", item("A", 1, "10")))
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = api.do(t, http.MethodPost, "/api/purchase-orders", api.purchaseOrder("OC-2024-001", item("A", 1, "10")))
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	body := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "CONFLICT", body.Code)
	assert.Equal(t, "number", body.Field)
}

func TestDocumentAPI_CuerpoInvalido(t *testing.T) {
	api := newAPI(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/quotations", bytes.NewBufferString("{no es json"))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", api.token)
	resp, err := api.app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_BODY", decode[dto.ErrorResponse](t, resp).Code)
}

func TestDocumentAPI_TipoIncorrectoIndicaElCampo(t *testing.T) {
	api := newAPI(t, nil)

	bad := item("A", 1, "10")
	bad["quantity"] = 1.5
	resp := api.do(t, http.MethodPost, "/api/purchase-orders", api.purchaseOrder("OC-2024-001", bad))
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "VALIDATION", body.Code)
	require.Len(t, body.Fields, 1)
	assert.Contains(t, body.Fields[0].Field, "quantity")

	resp = api.do(t, http.MethodPost, "/api/quotations-templates", map[string]any{
		"code": "RUI-01", "name": "Ruido", "unit_price": "10", "quantity": "x",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body = decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "VALIDATION", body.Code)
	require.Len(t, body.Fields, 1)
	assert.Equal(t, "quantity", body.Fields[0].Field)
}

func TestDocumentAPI_FamiliasAisladas(t *testing.T) {
	api := newAPI(t, nil)

	resp := api.do(t, http.MethodPost, "/api/purchase-orders", api.purchaseOrder("", item("A", 1, "10")))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode[dto.DocumentResponse](t, resp)
	assert.Equal(t, "OC-2024-001", created.Number)

	resp = api.do(t, http.MethodGet, "/api/service-orders/"+created.ID, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDocumentAPI_DescargaPDF(t *testing.T) {
	api := newAPI(t, nil)

	resp := api.do(t, http.MethodPost, "/api/purchase-orders", api.purchaseOrder("OC-2024-007", item("A", 1, "10")))
	created := decode[dto.DocumentResponse](t, resp)

	resp = api.do(t, http.MethodGet, "/api/purchase-orders/"+created.ID+"/pdf", nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "OC-2024-007")
}

func TestDocumentAPI_RequiereToken(t *testing.T) {
	api := newAPI(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/quotations", nil)
	resp, err := api.app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Health
// ──────────────────────────────────────────────────────────────────────────────

func TestHealth_SinTokenYConAlmacenamientoCaido(t *testing.T) {
	api := newAPI(t, nil)
	resp, err := api.app.Test(httptest.NewRequest(http.MethodGet, "/health", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	down := newAPI(t, func(context.Context) error { return errors.New("sin conexión") })
	resp, err = down.app.Test(httptest.NewRequest(http.MethodGet, "/health", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}
