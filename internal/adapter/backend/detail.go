package backend

import (
	"encoding/json"

	"crypto-wallet-client/pkg/apperror"
)

// The backend reports failures as {"detail": ...} where detail is one of
// three shapes depending on the failure type: a plain string, a list of field
// errors, or a free-form object. errorDetail models that as a closed tagged
// union with one extraction path per variant.

type detailKind int

const (
	detailNone detailKind = iota
	detailString
	detailFields
	detailObject
)

type fieldError struct {
	Loc  []json.RawMessage `json:"loc"`
	Msg  string            `json:"msg"`
	Type string            `json:"type"`
}

type errorDetail struct {
	kind   detailKind
	str    string
	fields []fieldError
	object json.RawMessage
}

// parseErrorDetail classifies the body of a non-2xx backend response.
// Unparseable bodies classify as detailNone.
func parseErrorDetail(body []byte) errorDetail {
	var envelope struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil || len(envelope.Detail) == 0 {
		return errorDetail{kind: detailNone}
	}

	var s string
	if err := json.Unmarshal(envelope.Detail, &s); err == nil {
		return errorDetail{kind: detailString, str: s}
	}

	var fields []fieldError
	if err := json.Unmarshal(envelope.Detail, &fields); err == nil {
		return errorDetail{kind: detailFields, fields: fields}
	}

	return errorDetail{kind: detailObject, object: envelope.Detail}
}

// Message extracts the user-facing message for the variant: the string
// verbatim, the first field error's msg, or the stringified object. The empty
// result for detailNone lets the caller fall back to the generic message.
func (d errorDetail) Message() string {
	switch d.kind {
	case detailString:
		return d.str
	case detailFields:
		if len(d.fields) == 0 {
			return apperror.GenericFailure
		}
		if d.fields[0].Msg != "" {
			return d.fields[0].Msg
		}
		raw, err := json.Marshal(d.fields[0])
		if err != nil {
			return apperror.GenericFailure
		}
		return string(raw)
	case detailObject:
		return string(d.object)
	default:
		return ""
	}
}
