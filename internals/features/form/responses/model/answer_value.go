package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// AnswerValue = jawaban mentah (string atau angka). Di JSON tampil sebagai
// string/number biasa, null kalau kosong dua-duanya.
type AnswerValue struct {
	Text   *string
	Number *float64
}

func TextValue(s string) AnswerValue {
	return AnswerValue{Text: &s}
}

func NumberValue(n float64) AnswerValue {
	return AnswerValue{Number: &n}
}

// ValueFromAny menerima hasil decode JSON (string, float64, json.Number, int).
func ValueFromAny(v any) (AnswerValue, bool) {
	switch t := v.(type) {
	case string:
		return TextValue(t), true
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return AnswerValue{}, false
		}
		return NumberValue(t), true
	case float32:
		return NumberValue(float64(t)), true
	case int:
		return NumberValue(float64(t)), true
	case int64:
		return NumberValue(float64(t)), true
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return AnswerValue{}, false
		}
		return NumberValue(f), true
	default:
		return AnswerValue{}, false
	}
}

func (v AnswerValue) IsNull() bool {
	return v.Text == nil && v.Number == nil
}

// IsEmpty: tidak ada nilai, atau string kosong.
func (v AnswerValue) IsEmpty() bool {
	if v.Number != nil {
		return false
	}
	return v.Text == nil || *v.Text == ""
}

func (v AnswerValue) String() string {
	switch {
	case v.Text != nil:
		return *v.Text
	case v.Number != nil:
		return strconv.FormatFloat(*v.Number, 'f', -1, 64)
	default:
		return ""
	}
}

// OptionID: angka bulat positif yang bisa jadi id option.
func (v AnswerValue) OptionID() (uint, bool) {
	if v.Number == nil {
		return 0, false
	}
	n := *v.Number
	if n <= 0 || n != math.Trunc(n) || n > math.MaxUint32 {
		return 0, false
	}
	return uint(n), true
}

func (v AnswerValue) MarshalJSON() ([]byte, error) {
	switch {
	case v.Text != nil:
		return json.Marshal(*v.Text)
	case v.Number != nil:
		return json.Marshal(*v.Number)
	default:
		return []byte("null"), nil
	}
}

func (v *AnswerValue) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	*v = AnswerValue{}
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		v.Text = &s
		return nil
	}
	var n float64
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("answer harus string atau angka: %w", err)
	}
	v.Number = &n
	return nil
}
