package bsontype

import "testing"

func TestType(t *testing.T) {
	testCases := []struct {
		name  string
		t     Type
		want  string
		valid bool
	}{
		{"double", Double, "double", true},
		{"string", String, "string", true},
		{"embedded document", EmbeddedDocument, "embedded document", true},
		{"array", Array, "array", true},
		{"binary", Binary, "binary", true},
		{"undefined", Undefined, "undefined", true},
		{"objectID", ObjectID, "objectID", true},
		{"boolean", Boolean, "boolean", true},
		{"UTC datetime", DateTime, "UTC datetime", true},
		{"null", Null, "null", true},
		{"regex", Regex, "regex", true},
		{"dbPointer", DBPointer, "dbPointer", true},
		{"javascript", JavaScript, "javascript", true},
		{"symbol", Symbol, "symbol", true},
		{"code with scope", CodeWithScope, "code with scope", true},
		{"32-bit integer", Int32, "32-bit integer", true},
		{"timestamp", Timestamp, "timestamp", true},
		{"64-bit integer", Int64, "64-bit integer", true},
		{"128-bit decimal", Decimal128, "128-bit decimal", true},
		{"min key", MinKey, "min key", true},
		{"max key", MaxKey, "max key", true},
		{"invalid", Type(0), "invalid", false},
		{"invalid (reserved)", Type(0x14), "invalid", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.t.String()
			if got != tc.want {
				t.Errorf("String outputs do not match. got %s; want %s", got, tc.want)
			}
			if valid := tc.t.IsValid(); valid != tc.valid {
				t.Errorf("IsValid outputs do not match. got %v; want %v", valid, tc.valid)
			}
		})
	}
}
