package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Text là string field của form feedback.
// Client hay gửi phoneNumber dạng số, nên number và bool được đổi sang chuỗi;
// null giữ nguyên chuỗi rỗng để Required bắt được.
type Text string

func (t *Text) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*t = ""
		return nil
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = Text(s)
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(data, &b); err != nil {
			return err
		}
		*t = Text(strconv.FormatBool(b))
	case '{', '[':
		return fmt.Errorf("expected a string, got %s", data[:1])
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return err
		}
		f, err := n.Float64()
		if err != nil {
			return err
		}
		*t = Text(strconv.FormatFloat(f, 'f', -1, 64))
	}
	return nil
}

func (t Text) String() string {
	return string(t)
}
