package words

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCardinal(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "CERO"},
		{1, "UNO"},
		{15, "QUINCE"},
		{16, "DIECISÉIS"},
		{21, "VEINTIUNO"},
		{26, "VEINTISÉIS"},
		{30, "TREINTA"},
		{31, "TREINTA Y UNO"},
		{99, "NOVENTA Y NUEVE"},
		{100, "CIEN"},
		{101, "CIENTO UNO"},
		{115, "CIENTO QUINCE"},
		{500, "QUINIENTOS"},
		{777, "SETECIENTOS SETENTA Y SIETE"},
		{900, "NOVECIENTOS"},
		{1000, "MIL"},
		{1001, "MIL UNO"},
		{2000, "DOS MIL"},
		{21000, "VEINTIÚN MIL"},
		{41000, "CUARENTA Y UN MIL"},
		{110000, "CIENTO DIEZ MIL"},
		{1000000, "UN MILLÓN"},
		{1500000, "UN MILLÓN QUINIENTOS MIL"},
		{2000000, "DOS MILLONES"},
		{2350400, "DOS MILLONES TRESCIENTOS CINCUENTA MIL CUATROCIENTOS"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, Cardinal(tt.n))
		})
	}
}

func TestAmount(t *testing.T) {
	tests := []struct {
		name   string
		value  string
		places int32
		want   string
	}{
		{"guarani whole", "110000", 0, "CIENTO DIEZ MIL"},
		{"guarani ignores fraction", "110000.75", 0, "CIENTO DIEZ MIL"},
		{"dollar with cents", "1234.56", 2, "MIL DOSCIENTOS TREINTA Y CUATRO CON 56/100"},
		{"dollar single-digit cents", "10.05", 2, "DIEZ CON 05/100"},
		{"dollar without cents", "1234.00", 2, "MIL DOSCIENTOS TREINTA Y CUATRO"},
		{"zero", "0", 0, "CERO"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := decimal.NewFromString(tt.value)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, Amount(v, tt.places))
		})
	}
}

func TestLegalLine(t *testing.T) {
	v := decimal.NewFromInt(110000)
	assert.Equal(t, "GUARANI CIENTO DIEZ MIL =====", LegalLine("GUARANI", v, 0))
}
