package models

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/x/bsonx/bsoncore"
)

// Seconds is a lesson length. Values that are not numbers decode as 0
// so a single malformed lesson never breaks course duration totals.
type Seconds float64

// UnmarshalJSON accepts numbers and numeric strings.
func (s *Seconds) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		*s = finiteSeconds(f)
		return nil
	}
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		*s = parseSeconds(str)
		return nil
	}
	*s = 0
	return nil
}

// UnmarshalBSONValue accepts doubles, integers, and numeric strings.
func (s *Seconds) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	v := bsoncore.Value{Type: t, Data: data}
	switch t {
	case bsontype.Double:
		f, _ := v.DoubleOK()
		*s = finiteSeconds(f)
	case bsontype.Int32:
		i, _ := v.Int32OK()
		*s = Seconds(i)
	case bsontype.Int64:
		i, _ := v.Int64OK()
		*s = Seconds(i)
	case bsontype.String:
		str, _ := v.StringValueOK()
		*s = parseSeconds(str)
	default:
		*s = 0
	}
	return nil
}

func parseSeconds(str string) Seconds {
	f, err := strconv.ParseFloat(strings.TrimSpace(str), 64)
	if err != nil {
		return 0
	}
	return finiteSeconds(f)
}

// finiteSeconds maps negative and non-finite values to 0.
func finiteSeconds(f float64) Seconds {
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return 0
	}
	return Seconds(f)
}
