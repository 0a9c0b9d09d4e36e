package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/lifebank-api/internal/domain"
	"github.com/jhoicas/lifebank-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// ParseBloodType
// ──────────────────────────────────────────────────────────────────────────────

func TestParseBloodType_NormalizaMayusculasYEspacios(t *testing.T) {
	cases := map[string]entity.BloodType{
		"A+":    entity.APos,
		"a+":    entity.APos,
		" o- ":  entity.ONeg,
		"ab+":   entity.ABPos,
		"Ab-":   entity.ABNeg,
		"b+":    entity.BPos,
		"  B- ": entity.BNeg,
	}
	for raw, want := range cases {
		got, err := entity.ParseBloodType(raw)
		require.NoError(t, err, "input %q debe parsear", raw)
		assert.Equal(t, want, got, "input %q", raw)
	}
}

func TestParseBloodType_RechazaValoresFueraDelVocabulario(t *testing.T) {
	for _, raw := range []string{"", "C+", "AB", "O", "A +", "0+", "a positivo"} {
		_, err := entity.ParseBloodType(raw)
		assert.ErrorIs(t, err, domain.ErrUnknownBloodType, "input %q debe rechazarse", raw)
	}
}

// El orden de enumeración es contrato: el chat desempata recorriendo esta lista.
func TestBloodTypes_OrdenDeEnumeracionEstable(t *testing.T) {
	want := []entity.BloodType{
		entity.APos, entity.ANeg, entity.BPos, entity.BNeg,
		entity.ABPos, entity.ABNeg, entity.OPos, entity.ONeg,
	}
	assert.Equal(t, want, entity.BloodTypes())
}

func TestBloodTypes_DevuelveCopia(t *testing.T) {
	list := entity.BloodTypes()
	list[0] = "C+"
	assert.Equal(t, entity.APos, entity.BloodTypes()[0], "mutar la copia no debe afectar la enumeración")
}
