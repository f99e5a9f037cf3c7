package database

import "database/sql"

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// nullableString treats the empty string as SQL NULL.
func nullableString(v string) sql.NullString {
	return sql.NullString{String: v, Valid: v != ""}
}

// nullableFloat treats zero as SQL NULL; optional numeric fields (cardio
// time/pace) are never meaningfully zero.
func nullableFloat(v float64) sql.NullFloat64 {
	return sql.NullFloat64{Float64: v, Valid: v != 0}
}
