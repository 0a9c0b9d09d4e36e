package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/lifebank-api/internal/application/auth"
	"github.com/jhoicas/lifebank-api/internal/application/chat"
	"github.com/jhoicas/lifebank-api/internal/domain/entity"
	apphttp "github.com/jhoicas/lifebank-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/lifebank-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles de test
// ──────────────────────────────────────────────────────────────────────────────

// stubStock implementa chat.StockReader con niveles fijos.
type stubStock map[entity.BloodType]int

func (s stubStock) Available(_ context.Context, bt entity.BloodType) (int, error) {
	return s[bt], nil
}

// stubUserRepo implementa repository.UserRepository con un único usuario.
type stubUserRepo struct {
	user *entity.User
}

func (s *stubUserRepo) Create(_ context.Context, _ *entity.User) error { return nil }
func (s *stubUserRepo) Update(_ context.Context, _ *entity.User) error { return nil }

func (s *stubUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	if s.user != nil && s.user.ID == id {
		return s.user, nil
	}
	return nil, nil
}

func (s *stubUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	if s.user != nil && s.user.Email == email {
		return s.user, nil
	}
	return nil, nil
}

func buildChatApp(stock stubStock, user *entity.User) *fiber.App {
	authUC := auth.NewAuthUseCase(&stubUserRepo{user: user}, auth.JWTConfig{
		Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer,
	})
	handler := apphttp.NewChatHandler(chat.NewResponder(stock), authUC)

	app := fiber.New()
	app.Post("/api/chat", apphttp.OptionalAuth(testJWTSecret), handler.Ask)
	return app
}

func postChat(t *testing.T, app *fiber.App, body, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/chat", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeReply(t *testing.T, resp *http.Response) map[string]string {
	t.Helper()
	defer resp.Body.Close()
	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

// ──────────────────────────────────────────────────────────────────────────────
// POST /api/chat
// ──────────────────────────────────────────────────────────────────────────────

func TestChat_ConsultaDeStockAnonima(t *testing.T) {
	app := buildChatApp(stubStock{entity.OPos: 38}, nil)

	resp := postChat(t, app, `{"message": "What is the stock of O+?"}`, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeReply(t, resp)
	assert.Equal(t, "Our current stock for O+ is 38 units.", body["reply"])
}

// El shape de error del chat es contrato heredado: {"error": "No message provided"}.
func TestChat_MensajeVacio(t *testing.T) {
	app := buildChatApp(stubStock{}, nil)

	for _, payload := range []string{`{}`, `{"message": ""}`, `{"message": "   "}`, `no es json`} {
		resp := postChat(t, app, payload, "")
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "payload %q", payload)

		body := decodeReply(t, resp)
		assert.Equal(t, "No message provided", body["error"], "payload %q", payload)
	}
}

func TestChat_Fallback(t *testing.T) {
	app := buildChatApp(stubStock{}, nil)

	resp := postChat(t, app, `{"message": "cuéntame un chiste"}`, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeReply(t, resp)
	assert.Equal(t, "Sorry, I didn't understand. Ask about stock, eligibility, or where to donate.", body["reply"])
}

// Con token válido la respuesta lleva la nota de identidad al final.
func TestChat_PersonalizaConToken(t *testing.T) {
	bt := entity.ONeg
	user := &entity.User{ID: testUserID, Email: "ana@example.com", Name: "Ana", Role: entity.RoleDonor, BloodType: &bt}
	app := buildChatApp(stubStock{}, user)

	resp := postChat(t, app, `{"message": "hi"}`, tokenFor(t, entity.RoleDonor, false))
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeReply(t, resp)
	assert.Equal(t,
		"Hello! I can tell you about blood stock, donation locations, eligibility, and donor/recipient actions."+
			"\n\nNote: Logged in as Ana (donor). Your blood type: O-.",
		body["reply"])
}

// Usuario sin tipo de sangre declarado: la nota omite esa parte.
func TestChat_PersonalizaSinTipoDeSangre(t *testing.T) {
	user := &entity.User{ID: testUserID, Email: "ana@example.com", Name: "Ana", Role: entity.RoleRecipient}
	app := buildChatApp(stubStock{}, user)

	resp := postChat(t, app, `{"message": "thanks"}`, tokenFor(t, entity.RoleRecipient, false))
	body := decodeReply(t, resp)
	assert.Equal(t, "You're welcome! Happy to help.\n\nNote: Logged in as Ana (recipient).", body["reply"])
}

// Token inválido no rompe el chat: responde como anónimo, sin nota.
func TestChat_TokenInvalidoRespondeAnonimo(t *testing.T) {
	app := buildChatApp(stubStock{}, nil)

	resp := postChat(t, app, `{"message": "hello"}`, "Bearer token-basura")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeReply(t, resp)
	assert.NotContains(t, body["reply"], "Note: Logged in as")
}

// Token válido pero usuario ya borrado: también anónimo.
func TestChat_UsuarioInexistenteRespondeAnonimo(t *testing.T) {
	app := buildChatApp(stubStock{}, nil)

	tok, err := pkgjwt.Generate(testJWTSecret, "otro-usuario", entity.RoleDonor, false, testIssuer, testExpMin)
	require.NoError(t, err)

	resp := postChat(t, app, `{"message": "hello"}`, "Bearer "+tok)
	body := decodeReply(t, resp)
	assert.NotContains(t, body["reply"], "Note: Logged in as")
}
