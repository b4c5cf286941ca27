// Package projection shapes Neo4j records into the flat views served by the API.
//
// Optional joins that come back empty are not errors: strings fall back to
// "" (or AnonymousCreator for creators), counts to zero and lists to empty.
package projection

import (
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

// AnonymousCreator is shown when a pin has no CREATES edge.
const AnonymousCreator = "Anonymous"

func value(rec *neo4j.Record, key string) interface{} {
	if rec == nil {
		return nil
	}
	v, ok := rec.Get(key)
	if !ok {
		return nil
	}
	return v
}

func String(rec *neo4j.Record, key string) string {
	return asString(value(rec, key))
}

func Int(rec *neo4j.Record, key string) int64 {
	return asInt(value(rec, key))
}

func Bool(rec *neo4j.Record, key string) bool {
	b, _ := value(rec, key).(bool)
	return b
}

func Time(rec *neo4j.Record, key string) time.Time {
	return asTime(value(rec, key))
}

// Props returns the properties of the node bound to key, or an empty map.
func Props(rec *neo4j.Record, key string) map[string]interface{} {
	switch v := value(rec, key).(type) {
	case neo4j.Node:
		return v.Props
	case map[string]interface{}:
		return v
	}
	return map[string]interface{}{}
}

func StringProp(props map[string]interface{}, key string) string {
	return asString(props[key])
}

// Maps returns the list bound to key as property maps, dropping nulls.
func Maps(rec *neo4j.Record, key string) []map[string]interface{} {
	return asMaps(value(rec, key))
}

// Strings returns the list bound to key, dropping nulls and empty strings.
func Strings(rec *neo4j.Record, key string) []string {
	raw, _ := value(rec, key).([]interface{})
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s := asString(v); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func asString(v interface{}) string {
	s, _ := v.(string)
	return s
}

func asInt(v interface{}) int64 {
	switch n := v.(type) {
	case int64:
		return n
	case int:
		return int64(n)
	case float64:
		return int64(n)
	}
	return 0
}

func asTime(v interface{}) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case neo4j.LocalDateTime:
		return t.Time()
	case neo4j.Date:
		return t.Time()
	}
	return time.Time{}
}

func asMaps(v interface{}) []map[string]interface{} {
	raw, _ := v.([]interface{})
	out := make([]map[string]interface{}, 0, len(raw))
	for _, item := range raw {
		if m, ok := item.(map[string]interface{}); ok {
			out = append(out, m)
		}
	}
	return out
}
