package service

import (
	questionModel "healthcard_backend/internals/features/form/questions/model"
	"healthcard_backend/internals/features/form/responses/model"
)

// ResolveValue memilih nilai tampil dari satu response tersimpan:
// teks bebas (non-kosong), lalu teks option terpilih (fallback id mentah),
// lalu angka.
func ResolveValue(r model.UserResponse, options []questionModel.QuestionOption) (model.AnswerValue, bool) {
	if r.UserResponseText != nil && *r.UserResponseText != "" {
		return model.TextValue(*r.UserResponseText), true
	}
	if r.UserResponseSelectedOptionID != nil {
		id := *r.UserResponseSelectedOptionID
		for _, o := range options {
			if o.QuestionOptionID == id {
				return model.TextValue(o.QuestionOptionText), true
			}
		}
		return model.NumberValue(float64(id)), true
	}
	if r.UserResponseNumber != nil {
		return model.NumberValue(*r.UserResponseNumber), true
	}
	return model.AnswerValue{}, false
}

// ResolveDisplay = ResolveValue dalam bentuk string.
func ResolveDisplay(r model.UserResponse, options []questionModel.QuestionOption) (string, bool) {
	v, ok := ResolveValue(r, options)
	if !ok {
		return "", false
	}
	return v.String(), true
}
