package chat_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/lifebank-api/internal/application/chat"
	"github.com/jhoicas/lifebank-api/internal/domain"
	"github.com/jhoicas/lifebank-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// fakeStock implementa StockReader con niveles fijos por tipo de sangre.
type fakeStock map[entity.BloodType]int

func (f fakeStock) Available(_ context.Context, bt entity.BloodType) (int, error) {
	return f[bt], nil
}

func respond(t *testing.T, r *chat.Responder, msg string) string {
	t.Helper()
	reply, err := r.Respond(context.Background(), msg)
	require.NoError(t, err)
	return reply
}

// ──────────────────────────────────────────────────────────────────────────────
// Consultas de stock
// ──────────────────────────────────────────────────────────────────────────────

func TestRespond_ConsultaDeStock(t *testing.T) {
	r := chat.NewResponder(fakeStock{entity.OPos: 38})

	reply := respond(t, r, "What is the stock of O+?")
	assert.Equal(t, "Our current stock for O+ is 38 units.", reply)
}

func TestRespond_StockConAvailable(t *testing.T) {
	r := chat.NewResponder(fakeStock{entity.ANeg: 10})

	reply := respond(t, r, "how many A- units are available?")
	assert.Equal(t, "Our current stock for A- is 10 units.", reply)
}

// Desempate por orden de enumeración: "AB+" contiene el substring "B+", que
// aparece antes en la lista, así que la consulta responde B+. Comportamiento
// heredado que los clientes ya conocen; cambiarlo rompería compatibilidad.
func TestRespond_StockABMasRespondeBMas(t *testing.T) {
	r := chat.NewResponder(fakeStock{entity.BPos: 20, entity.ABPos: 8})

	reply := respond(t, r, "stock of AB+ please")
	assert.Equal(t, "Our current stock for B+ is 20 units.", reply)
}

// "stock" sin tipo de sangre no es consulta de stock: cae a la regla siguiente
// que matchee o al fallback.
func TestRespond_StockSinTipoCaeAlFallback(t *testing.T) {
	r := chat.NewResponder(fakeStock{})

	reply := respond(t, r, "how is the stock doing")
	assert.Equal(t, "Sorry, I didn't understand. Ask about stock, eligibility, or where to donate.", reply)
}

// La consulta de stock gana sobre cualquier otra regla aunque el mensaje
// mencione también donación.
func TestRespond_StockGanaSobreDonacion(t *testing.T) {
	r := chat.NewResponder(fakeStock{entity.ONeg: 12})

	reply := respond(t, r, "I want to donate, what's the O- stock?")
	assert.Equal(t, "Our current stock for O- is 12 units.", reply)
}

// ──────────────────────────────────────────────────────────────────────────────
// Reglas por palabra clave, en orden
// ──────────────────────────────────────────────────────────────────────────────

func TestRespond_Elegibilidad(t *testing.T) {
	r := chat.NewResponder(fakeStock{})

	reply := respond(t, r, "Am I eligible to donate?")
	assert.Equal(t, "General eligibility: age 17-65, healthy, no recent major surgery or infectious disease. Please consult our centre for detailed checks.", reply)
}

func TestRespond_Donacion(t *testing.T) {
	r := chat.NewResponder(fakeStock{})

	reply := respond(t, r, "where is your donation center?")
	assert.Equal(t, "You can donate at our main center (123 Life St) Mon-Fri 9:00-17:00. Walk-ins welcome or book an appointment.", reply)
}

func TestRespond_Citas(t *testing.T) {
	r := chat.NewResponder(fakeStock{})

	reply := respond(t, r, "how do I book an appointment")
	assert.Equal(t, "To book an appointment, sign up and go to the Dashboard → Book Appointment.", reply)
}

func TestRespond_Saludo(t *testing.T) {
	r := chat.NewResponder(fakeStock{})

	want := "Hello! I can tell you about blood stock, donation locations, eligibility, and donor/recipient actions."
	assert.Equal(t, want, respond(t, r, "hi there"))
	assert.Equal(t, want, respond(t, r, "well hello bot"))
}

// "hi" solo matchea como prefijo: "this" contiene "hi" pero no saluda.
func TestRespond_HiInternoNoEsSaludo(t *testing.T) {
	r := chat.NewResponder(fakeStock{})

	reply := respond(t, r, "this is confusing")
	assert.Equal(t, "Sorry, I didn't understand. Ask about stock, eligibility, or where to donate.", reply)
}

func TestRespond_Gracias(t *testing.T) {
	r := chat.NewResponder(fakeStock{})

	assert.Equal(t, "You're welcome! Happy to help.", respond(t, r, "thank you!"))
}

func TestRespond_Ayuda(t *testing.T) {
	r := chat.NewResponder(fakeStock{})

	reply := respond(t, r, "help")
	assert.Equal(t, "You can ask:\n- 'What is the stock of O+'\n- 'Am I eligible to donate?'\n- 'Where can I donate?'\n- 'How do I sign up?'\n- 'How do I book an appointment?'\n", reply)
}

func TestRespond_Fallback(t *testing.T) {
	r := chat.NewResponder(fakeStock{})

	reply := respond(t, r, "what's the weather like")
	assert.Equal(t, "Sorry, I didn't understand. Ask about stock, eligibility, or where to donate.", reply)
}

// Elegibilidad va antes que donación: un mensaje con ambas palabras responde
// elegibilidad.
func TestRespond_ElegibilidadGanaSobreDonacion(t *testing.T) {
	r := chat.NewResponder(fakeStock{})

	reply := respond(t, r, "am I eligible to donate blood?")
	assert.Contains(t, reply, "General eligibility")
}

// ──────────────────────────────────────────────────────────────────────────────
// Normalización y mensajes inválidos
// ──────────────────────────────────────────────────────────────────────────────

func TestRespond_MensajeVacio(t *testing.T) {
	r := chat.NewResponder(fakeStock{})

	for _, msg := range []string{"", "   ", "\t\n"} {
		_, err := r.Respond(context.Background(), msg)
		assert.ErrorIs(t, err, domain.ErrInvalidMessage, "mensaje %q", msg)
	}
}

func TestRespond_NormalizaMayusculasYUnicode(t *testing.T) {
	r := chat.NewResponder(fakeStock{entity.OPos: 5})

	// NFKC pliega el ＋ de ancho completo al + ASCII.
	reply := respond(t, r, "  STOCK of O＋  ")
	assert.Equal(t, "Our current stock for O+ is 5 units.", reply)
}

func TestClassify(t *testing.T) {
	r := chat.NewResponder(fakeStock{})

	cases := map[string]chat.Intent{
		"stock of A+":        chat.IntentStock,
		"am i eligible?":     chat.IntentEligibility,
		"where to donate":    chat.IntentDonation,
		"book an appt":       chat.IntentAppointment,
		"hi":                 chat.IntentGreeting,
		"thanks a lot":       chat.IntentThanks,
		"help me":            chat.IntentHelp,
		"random gibberish":   chat.IntentFallback,
		"":                   chat.IntentFallback,
	}
	for msg, want := range cases {
		assert.Equal(t, want, r.Classify(msg), "mensaje %q", msg)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Personalización
// ──────────────────────────────────────────────────────────────────────────────

func TestPersonalize_AnonimoSinCambios(t *testing.T) {
	assert.Equal(t, "base reply", chat.Personalize("base reply", nil))
}

func TestPersonalize_ConNombreYRol(t *testing.T) {
	got := chat.Personalize("base reply", &chat.Identity{Name: "Ana", Role: "donor"})
	assert.Equal(t, "base reply\n\nNote: Logged in as Ana (donor).", got)
}

func TestPersonalize_ConTipoDeSangre(t *testing.T) {
	bt := entity.ONeg
	got := chat.Personalize("base reply", &chat.Identity{Name: "Ana", Role: "donor", BloodType: &bt})
	assert.Equal(t, "base reply\n\nNote: Logged in as Ana (donor). Your blood type: O-.", got)
}
