package chat

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/lifebank-api/internal/domain"
	"github.com/jhoicas/lifebank-api/internal/domain/entity"
)

// Intent es el propósito clasificado de un mensaje, de un conjunto cerrado.
type Intent string

// Intents reconocidos por el responder.
const (
	IntentStock       Intent = "stock"
	IntentEligibility Intent = "eligibility"
	IntentDonation    Intent = "donation"
	IntentAppointment Intent = "appointment"
	IntentGreeting    Intent = "greeting"
	IntentThanks      Intent = "thanks"
	IntentHelp        Intent = "help"
	IntentFallback    Intent = "fallback"
)

// Textos de respuesta. Son parte del contrato observable del bot: los tests de
// compatibilidad comparan literal, no cambiar sin versionar el contrato.
const (
	replyStockFmt   = "Our current stock for %s is %d units."
	replyEligible   = "General eligibility: age 17-65, healthy, no recent major surgery or infectious disease. Please consult our centre for detailed checks."
	replyDonation   = "You can donate at our main center (123 Life St) Mon-Fri 9:00-17:00. Walk-ins welcome or book an appointment."
	replyBooking    = "To book an appointment, sign up and go to the Dashboard → Book Appointment."
	replyGreeting   = "Hello! I can tell you about blood stock, donation locations, eligibility, and donor/recipient actions."
	replyThanks     = "You're welcome! Happy to help."
	replyHelp       = "You can ask:\n- 'What is the stock of O+'\n- 'Am I eligible to donate?'\n- 'Where can I donate?'\n- 'How do I sign up?'\n- 'How do I book an appointment?'\n"
	replyFallback   = "Sorry, I didn't understand. Ask about stock, eligibility, or where to donate."
	noteLoggedInFmt = "\n\nNote: Logged in as %s (%s)."
	noteBloodFmt    = " Your blood type: %s."
)

// Identity identifica al usuario autenticado para personalizar la respuesta.
// BloodType puede ser nil si el usuario no lo declaró.
type Identity struct {
	Name      string
	Role      string // donor | recipient
	BloodType *entity.BloodType
}

// keywordRule regla de coincidencia por palabra clave: primera que matchea gana.
type keywordRule struct {
	intent Intent
	match  func(msg string) bool
	reply  string
}

// Responder clasifica mensajes de texto libre contra una lista ordenada de
// reglas y devuelve una respuesta fija e informativa. Sin estado conversacional:
// cada llamada es un turno independiente.
type Responder struct {
	stock StockReader
	rules []keywordRule
}

// NewResponder construye el responder con el lector de stock inyectado.
func NewResponder(stock StockReader) *Responder {
	return &Responder{
		stock: stock,
		rules: []keywordRule{
			{IntentEligibility, containsAny("eligible", "eligibility"), replyEligible},
			{IntentDonation, containsAny("donate", "location", "center"), replyDonation},
			{IntentAppointment, containsAny("appointment", "book"), replyBooking},
			{IntentGreeting, func(msg string) bool {
				return strings.HasPrefix(msg, "hi") || strings.Contains(msg, "hello")
			}, replyGreeting},
			{IntentThanks, containsAny("thank", "thanks"), replyThanks},
			{IntentHelp, containsAny("help", "commands"), replyHelp},
		},
	}
}

// Respond normaliza el mensaje, lo clasifica y devuelve la respuesta fija de la
// primera regla que coincide. El orden de las reglas es significativo: un
// mensaje que menciona stock y donación responde siempre la consulta de stock.
// Mensaje vacío o solo espacios → domain.ErrInvalidMessage.
func (r *Responder) Respond(ctx context.Context, message string) (string, error) {
	msg := Normalize(message)
	if msg == "" {
		return "", domain.ErrInvalidMessage
	}

	// Regla 1: consulta de stock. Desempate por orden de enumeración de los
	// tipos de sangre, no por posición en el mensaje (contrato heredado).
	if bt, ok := matchStockQuery(msg); ok {
		units, err := r.stock.Available(ctx, bt)
		if err != nil {
			return "", fmt.Errorf("consultar stock para chat: %w", err)
		}
		return fmt.Sprintf(replyStockFmt, bt, units), nil
	}

	for _, rule := range r.rules {
		if rule.match(msg) {
			return rule.reply, nil
		}
	}
	return replyFallback, nil
}

// Classify devuelve solo el intent, sin consultar stock. Útil para métricas y tests.
func (r *Responder) Classify(message string) Intent {
	msg := Normalize(message)
	if msg == "" {
		return IntentFallback
	}
	if _, ok := matchStockQuery(msg); ok {
		return IntentStock
	}
	for _, rule := range r.rules {
		if rule.match(msg) {
			return rule.intent
		}
	}
	return IntentFallback
}

// Personalize agrega al final una nota de identidad si hay usuario autenticado.
// identity nil → respuesta sin cambios. Transformación pura de strings.
func Personalize(reply string, identity *Identity) string {
	if identity == nil {
		return reply
	}
	extra := fmt.Sprintf(noteLoggedInFmt, identity.Name, identity.Role)
	if identity.BloodType != nil && *identity.BloodType != "" {
		extra += fmt.Sprintf(noteBloodFmt, *identity.BloodType)
	}
	return reply + extra
}

// Normalize aplica NFKC, minúsculas y recorte de espacios al mensaje crudo.
func Normalize(message string) string {
	return strings.TrimSpace(strings.ToLower(norm.NFKC.String(message)))
}

// matchStockQuery detecta la consulta de stock: un token de tipo de sangre como
// substring más "stock" o "available". Itera la enumeración en orden fijo.
func matchStockQuery(msg string) (entity.BloodType, bool) {
	if !strings.Contains(msg, "stock") && !strings.Contains(msg, "available") {
		return "", false
	}
	for _, bt := range entity.BloodTypes() {
		if strings.Contains(msg, strings.ToLower(bt.String())) {
			return bt, true
		}
	}
	return "", false
}

func containsAny(words ...string) func(string) bool {
	return func(msg string) bool {
		for _, w := range words {
			if strings.Contains(msg, w) {
				return true
			}
		}
		return false
	}
}
