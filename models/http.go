package models

import (
	"encoding/json"
	"sort"
)

// ErrorBody is the uniform error shape of the API.
//
// On the wire the backend uses a few shapes:
//
//	{"error_type": "user_exists", "message": "...", "redirect_to": "login"}
//	{"error": "Invalid token"}
//	{"detail": "...", "code": "token_not_valid"}
//	{"email": ["..."], "non_field_errors": ["..."]}
//
// All of them decode into one ErrorBody; unknown top-level keys holding a
// string or a list of strings become field errors.
type ErrorBody struct {
	ErrorType  string
	Message    string
	RedirectTo string
	Fields     map[string][]string
}

// FirstMessage returns Message or, when empty, the first field error in
// key order.
func (b ErrorBody) FirstMessage() string {
	if b.Message != "" {
		return b.Message
	}

	keys := make([]string, 0, len(b.Fields))
	for k := range b.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if msgs := b.Fields[k]; len(msgs) > 0 {
			return msgs[0]
		}
	}
	return ""
}

// IsEmpty reports whether nothing useful was decoded.
func (b ErrorBody) IsEmpty() bool {
	return b.ErrorType == "" && b.Message == "" && len(b.Fields) == 0
}

func (b *ErrorBody) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	str := func(key string) string {
		var s string
		if v, ok := raw[key]; ok {
			_ = json.Unmarshal(v, &s)
		}
		delete(raw, key)
		return s
	}

	b.ErrorType = str("error_type")
	if code := str("code"); b.ErrorType == "" {
		b.ErrorType = code
	}
	b.Message = str("message")
	if detail := str("detail"); b.Message == "" {
		b.Message = detail
	}
	if e := str("error"); b.Message == "" {
		b.Message = e
	}
	b.RedirectTo = str("redirect_to")
	delete(raw, "messages")

	for key, value := range raw {
		var list []string
		if err := json.Unmarshal(value, &list); err == nil {
			b.addField(key, list...)
			continue
		}
		var single string
		if err := json.Unmarshal(value, &single); err == nil {
			b.addField(key, single)
		}
	}

	return nil
}

func (b ErrorBody) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(b.Fields)+3)
	for k, v := range b.Fields {
		out[k] = v
	}
	if b.ErrorType != "" {
		out["error_type"] = b.ErrorType
	}
	if b.Message != "" {
		out["message"] = b.Message
	}
	if b.RedirectTo != "" {
		out["redirect_to"] = b.RedirectTo
	}
	return json.Marshal(out)
}

func (b *ErrorBody) addField(key string, msgs ...string) {
	if len(msgs) == 0 {
		return
	}
	if b.Fields == nil {
		b.Fields = make(map[string][]string)
	}
	b.Fields[key] = append(b.Fields[key], msgs...)
}
