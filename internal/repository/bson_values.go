package repository

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Helpers that read loosely typed catalog fields. Rows were written by several tools over time,
// so numbers show up as int32, int64, double, decimal128 or strings.

func present(v bson.RawValue) bool {
	return v.Type != 0 && v.Type != bsontype.Null && v.Type != bsontype.Undefined
}

func rawString(v bson.RawValue) (string, bool) {
	switch v.Type {
	case bsontype.String:
		s := v.StringValue()
		return s, s != ""
	case bsontype.ObjectID:
		return v.ObjectID().Hex(), true
	case bsontype.Int32, bsontype.Int64, bsontype.Double:
		if d, ok := rawDecimal(v); ok {
			return d.String(), true
		}
	}
	return "", false
}

func rawDecimal(v bson.RawValue) (decimal.Decimal, bool) {
	switch v.Type {
	case bsontype.Int32:
		return decimal.NewFromInt32(v.Int32()), true
	case bsontype.Int64:
		return decimal.NewFromInt(v.Int64()), true
	case bsontype.Double:
		f := v.Double()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return decimal.Zero, false
		}
		return decimal.NewFromFloat(f), true
	case bsontype.Decimal128:
		return fromDecimal128(v.Decimal128())
	case bsontype.String:
		d, err := decimal.NewFromString(strings.ReplaceAll(strings.TrimSpace(v.StringValue()), ",", "."))
		return d, err == nil
	}
	return decimal.Zero, false
}

func rawInt(v bson.RawValue) (int, bool) {
	d, ok := rawDecimal(v)
	if !ok {
		return 0, false
	}
	return int(d.IntPart()), true
}

// rawStringList accepts a BSON array, a JSON-encoded array inside a string, or a comma separated string.
func rawStringList(v bson.RawValue) []string {
	var out []string
	switch v.Type {
	case bsontype.Array:
		values, err := v.Array().Values()
		if err != nil {
			return nil
		}
		for _, item := range values {
			if s, ok := rawString(item); ok {
				out = append(out, s)
			}
		}
	case bsontype.String:
		s := strings.TrimSpace(v.StringValue())
		if s == "" {
			return nil
		}
		if strings.HasPrefix(s, "[") {
			var parsed []string
			if err := json.Unmarshal([]byte(s), &parsed); err != nil {
				return nil
			}
			out = parsed
		} else {
			out = strings.Split(s, ",")
		}
	}

	cleaned := out[:0]
	for _, s := range out {
		if s = strings.TrimSpace(s); s != "" {
			cleaned = append(cleaned, s)
		}
	}
	if len(cleaned) == 0 {
		return nil
	}
	return cleaned
}

func toDecimal128(d decimal.Decimal) primitive.Decimal128 {
	v, err := primitive.ParseDecimal128(d.String())
	if err != nil {
		return primitive.NewDecimal128(0, 0)
	}
	return v
}

func fromDecimal128(v primitive.Decimal128) (decimal.Decimal, bool) {
	d, err := decimal.NewFromString(v.String())
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

func decimalOf(v primitive.Decimal128) decimal.Decimal {
	d, _ := fromDecimal128(v)
	return d
}

// idFilter matches a product id stored either as a string or as an ObjectID.
func idFilter(id string) bson.M {
	if oid, err := primitive.ObjectIDFromHex(id); err == nil {
		return bson.M{"_id": bson.M{"$in": bson.A{id, oid}}}
	}
	if n, err := strconv.ParseInt(id, 10, 64); err == nil {
		return bson.M{"_id": bson.M{"$in": bson.A{id, n}}}
	}
	return bson.M{"_id": id}
}

func idsFilter(ids []string) bson.M {
	values := make(bson.A, 0, len(ids)*2)
	for _, id := range ids {
		values = append(values, id)
		if oid, err := primitive.ObjectIDFromHex(id); err == nil {
			values = append(values, oid)
		} else if n, err := strconv.ParseInt(id, 10, 64); err == nil {
			values = append(values, n)
		}
	}
	return bson.M{"_id": bson.M{"$in": values}}
}
