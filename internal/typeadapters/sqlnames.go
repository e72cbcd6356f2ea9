package typeadapters

import (
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/noctarius/pgdialect/spi/datatypes"
)

const (
	docsNumericTypes   = "https://www.postgresql.org/docs/current/datatype-numeric.html"
	docsCharacterTypes = "https://www.postgresql.org/docs/current/datatype-character.html"
	docsBinaryTypes    = "https://www.postgresql.org/docs/current/datatype-binary.html"
)

// rangeTypeNames maps a range sub type identifier to the SQL range
// type backing it. Sub types absent from this table cannot be used
// as range element types.
var rangeTypeNames = map[datatypes.TypeID]string{
	datatypes.TypeInteger:  "int4range",
	datatypes.TypeBigInt:   "int8range",
	datatypes.TypeDecimal:  "numrange",
	datatypes.TypeDate:     "tstzrange",
	datatypes.TypeDateOnly: "daterange",
}

var rangeTypeOids = map[string]uint32{
	"int4range": pgtype.Int4rangeOID,
	"int8range": pgtype.Int8rangeOID,
	"numrange":  pgtype.NumrangeOID,
	"tstzrange": pgtype.TstzrangeOID,
	"daterange": pgtype.DaterangeOID,
}

// typeMap supplies the wire format grammars (range notation, array
// notation) shared by all adapter instances. Read-only after init.
var typeMap = pgtype.NewMap()
