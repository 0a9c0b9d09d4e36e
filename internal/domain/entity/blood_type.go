package entity

import (
	"strings"

	"github.com/jhoicas/lifebank-api/internal/domain"
)

// BloodType tipo de sangre del vocabulario cerrado ABO/Rh.
type BloodType string

// Los ocho tipos de sangre válidos.
const (
	APos  BloodType = "A+"
	ANeg  BloodType = "A-"
	BPos  BloodType = "B+"
	BNeg  BloodType = "B-"
	ABPos BloodType = "AB+"
	ABNeg BloodType = "AB-"
	OPos  BloodType = "O+"
	ONeg  BloodType = "O-"
)

// bloodTypes en orden de enumeración. El orden es contrato observable: el chat
// resuelve empates de substring recorriendo esta lista de principio a fin.
var bloodTypes = []BloodType{APos, ANeg, BPos, BNeg, ABPos, ABNeg, OPos, ONeg}

// BloodTypes devuelve los tipos válidos en orden de enumeración (copia).
func BloodTypes() []BloodType {
	out := make([]BloodType, len(bloodTypes))
	copy(out, bloodTypes)
	return out
}

// ParseBloodType normaliza (mayúsculas, sin espacios) y valida contra la
// enumeración. Valor fuera del vocabulario → ErrUnknownBloodType.
func ParseBloodType(raw string) (BloodType, error) {
	bt := BloodType(strings.ToUpper(strings.TrimSpace(raw)))
	if !bt.Valid() {
		return "", domain.ErrUnknownBloodType
	}
	return bt, nil
}

// Valid indica si el valor pertenece a la enumeración.
func (bt BloodType) Valid() bool {
	for _, v := range bloodTypes {
		if bt == v {
			return true
		}
	}
	return false
}

func (bt BloodType) String() string { return string(bt) }
