package question

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

// Kind is the answer format of a question.
type Kind string

const (
	KindMultipleChoice Kind = "multiple-choice"
	KindTrueFalse      Kind = "true-false"
)

// True/false answer keys.
const (
	AnswerTrue  = "O"
	AnswerFalse = "X"
)

// ParseKind accepts the on-disk spelling as well as the underscore and
// short aliases used by spreadsheet exports.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "multiple-choice", "multiple_choice", "mc", "choice":
		return KindMultipleChoice, nil
	case "true-false", "true_false", "tf", "truefalse":
		return KindTrueFalse, nil
	}
	return "", fmt.Errorf("unknown question type %q", s)
}

// Option is a single labelled choice of a multiple-choice question.
type Option struct {
	Key   string
	Label string
}

// Options keeps multiple-choice options in the order they appear in the
// source document. It is encoded as a JSON object.
type Options []Option

// Label returns the label stored under key.
func (o Options) Label(key string) (string, bool) {
	for _, opt := range o {
		if opt.Key == key {
			return opt.Label, true
		}
	}
	return "", false
}

func (o Options) MarshalJSON() ([]byte, error) {
	var b bytes.Buffer
	b.WriteByte('{')
	for i, opt := range o {
		if i > 0 {
			b.WriteByte(',')
		}
		k, err := json.Marshal(opt.Key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(opt.Label)
		if err != nil {
			return nil, err
		}
		b.Write(k)
		b.WriteByte(':')
		b.Write(v)
	}
	b.WriteByte('}')
	return b.Bytes(), nil
}

func (o *Options) UnmarshalJSON(data []byte) error {
	if !gjson.ValidBytes(data) {
		return fmt.Errorf("options: invalid JSON")
	}
	res := gjson.ParseBytes(data)
	if res.Type == gjson.Null {
		*o = nil
		return nil
	}
	if !res.IsObject() {
		return fmt.Errorf("options: expected object, got %s", res.Type)
	}
	var opts Options
	res.ForEach(func(key, value gjson.Result) bool {
		opts = append(opts, Option{Key: key.String(), Label: value.String()})
		return true
	})
	*o = opts
	return nil
}

// Question is an immutable record from the question bank.
type Question struct {
	ID            string  `json:"id"`
	Kind          Kind    `json:"type"`
	Text          string  `json:"text"`
	CorrectAnswer string  `json:"correctAnswer"`
	Options       Options `json:"options,omitempty"`
	Explanation   string  `json:"explanation,omitempty"`
}

// IsTrueFalse reports whether q is a true/false question.
func (q Question) IsTrueFalse() bool {
	return q.Kind == KindTrueFalse
}

// ShowsExplanation reports whether the explanation is revealed after the
// question is answered. Only true/false questions whose answer is X carry
// one.
func (q Question) ShowsExplanation() bool {
	return q.Kind == KindTrueFalse && q.CorrectAnswer == AnswerFalse && q.Explanation != ""
}

// FilterKind returns the questions of the given kind, preserving order.
func FilterKind(qs []Question, kind Kind) []Question {
	var out []Question
	for _, q := range qs {
		if q.Kind == kind {
			out = append(out, q)
		}
	}
	return out
}
