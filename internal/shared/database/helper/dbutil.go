package helper

import (
	"database/sql"
	"strconv"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// =======================
// STRING
// =======================

func StringPtr(s string) *string {
	return &s
}

func StringPtrValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func StringToNull(s *string) sql.NullString {
	if s == nil || *s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

// RawStringToNull menerima string biasa
func RawStringToNull(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

// =======================
// UUID (Postgres Native)
// =======================

// Mengonversi string ke google uuid
func StringToUUID(s string) uuid.UUID {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil
	}
	return id
}

func StringToNullUUID(s string) uuid.NullUUID {
	if s == "" {
		return uuid.NullUUID{}
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.NullUUID{}
	}
	return uuid.NullUUID{UUID: id, Valid: true}
}

// =======================
// DECIMAL (Postgres Numeric)
// =======================

// Untuk Postgres, sangat disarankan menggunakan String conversion
// untuk menjaga presisi tipe NUMERIC
func Float64ToDecimalExact(f float64) decimal.Decimal {
	return decimal.RequireFromString(
		strconv.FormatFloat(f, 'f', -1, 64),
	)
}

// NumericToFloat parse kolom numeric (string dari sqlc) ke float64 untuk JSON
func NumericToFloat(s string) float64 {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0
	}
	f, _ := d.Float64()
	return f
}

// NumericToDecimal parse kolom numeric ke decimal untuk perhitungan uang
func NumericToDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
