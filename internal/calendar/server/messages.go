package server

import (
	"bytes"
	"encoding/json"
	"strconv"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	mdwerror "github.com/msto63/calword/foundation/core/error"
	"github.com/msto63/calword/foundation/utils/timex"
)

// Messages travel as google.protobuf.Struct; these types give them shape.

// WorkdaysRequest is the payload of AdvanceWorkingDays and RetreatWorkingDays.
// Days is required. Unset schedule flags use the server default.
type WorkdaysRequest struct {
	Date            string `json:"date"`
	Days            *int   `json:"days"`
	IncludeSaturday *bool  `json:"include_saturday,omitempty"`
	IncludeSunday   *bool  `json:"include_sunday,omitempty"`
}

// DateResponse carries a single RFC 3339 date in the request's offset
type DateResponse struct {
	Date string `json:"date"`
}

// OrdinalRequest is the payload of OrdinalWords. N is sent as a string so
// values beyond 2^53 survive the double-typed Struct numbers. N is required.
type OrdinalRequest struct {
	N *Int64 `json:"n"`
}

// OrdinalResponse carries the spelled ordinal
type OrdinalResponse struct {
	Words string `json:"words"`
}

// MatchRequest is the payload of MatchDigitOrdinal
type MatchRequest struct {
	Word string `json:"word"`
}

// SpokenRequest is the payload of FormatSpoken
type SpokenRequest struct {
	Time        string `json:"time"`
	OffsetHours *int   `json:"offset_hours,omitempty"`
}

// SpokenResponse carries the spoken rendering
type SpokenResponse struct {
	Spoken string `json:"spoken"`
}

// ResolveRequest is the payload of ResolveDateTime
type ResolveRequest struct {
	timex.DateTimeInput
	OffsetHours *int `json:"offset_hours,omitempty"`
}

// RangeResponse carries a resolved event range
type RangeResponse struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Int64 accepts both JSON numbers and decimal strings and encodes as a string
type Int64 int64

// MarshalJSON implements json.Marshaler
func (n Int64) MarshalJSON() ([]byte, error) {
	return json.Marshal(strconv.FormatInt(int64(n), 10))
}

// UnmarshalJSON implements json.Unmarshaler
func (n *Int64) UnmarshalJSON(data []byte) error {
	raw := string(bytes.Trim(data, `"`))
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return mdwerror.Wrap(err, "n must be an integer").WithCode(mdwerror.CodeInvalidInput)
	}
	*n = Int64(v)
	return nil
}

// encodeMessage converts v into a Struct via its JSON form
func encodeMessage(v interface{}) (*structpb.Struct, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to encode message").WithCode(mdwerror.CodeInternal)
	}
	msg := &structpb.Struct{}
	if err := protojson.Unmarshal(data, msg); err != nil {
		return nil, mdwerror.Wrap(err, "failed to encode message").WithCode(mdwerror.CodeInternal)
	}
	return msg, nil
}

// decodeMessage fills v from msg
func decodeMessage(msg *structpb.Struct, v interface{}) error {
	if msg == nil {
		msg = &structpb.Struct{}
	}
	data, err := protojson.Marshal(msg)
	if err != nil {
		return mdwerror.Wrap(err, "failed to decode message").WithCode(mdwerror.CodeInvalidInput)
	}
	if err := json.Unmarshal(data, v); err != nil {
		if mdwerror.HasCode(err, mdwerror.CodeInvalidInput) {
			return err
		}
		return mdwerror.Wrap(err, "malformed request").WithCode(mdwerror.CodeInvalidInput)
	}
	return nil
}
