package application

import (
	"bytes"
	"encoding/json"
	"strconv"
	"time"

	"github.com/bnema/flowers-cli/internal/domain"
	"gopkg.in/yaml.v3"
)

// TimestampLayout is ISO-8601 in UTC with millisecond precision.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// Envelope is the single machine-readable artifact of a run. Success and
// failure envelopes encode to different shapes.
type Envelope struct {
	Success   bool
	Timestamp time.Time
	Result    Result
	Error     string
}

func NewSuccessEnvelope(now time.Time, result Result) Envelope {
	return Envelope{Success: true, Timestamp: now, Result: result}
}

func NewFailureEnvelope(now time.Time, err error) Envelope {
	reason := ""
	if err != nil {
		reason = err.Error()
	}
	return Envelope{Timestamp: now, Error: reason}
}

type inputWire struct {
	Num1  int `json:"num1" yaml:"num1"`
	Num2  int `json:"num2" yaml:"num2"`
	Total int `json:"total" yaml:"total"`
}

type successWire struct {
	Success   bool          `json:"success" yaml:"success"`
	Timestamp string        `json:"timestamp" yaml:"timestamp"`
	Input     inputWire     `json:"input" yaml:"input"`
	Flowers   []string      `json:"flowers" yaml:"flowers"`
	Counts    orderedCounts `json:"counts" yaml:"counts"`
	Output    string        `json:"output" yaml:"output"`
}

type failureWire struct {
	Success   bool   `json:"success" yaml:"success"`
	Timestamp string `json:"timestamp" yaml:"timestamp"`
	Error     string `json:"error" yaml:"error"`
}

func (e Envelope) wire() any {
	timestamp := e.Timestamp.UTC().Format(TimestampLayout)
	if !e.Success {
		return failureWire{Success: false, Timestamp: timestamp, Error: e.Error}
	}

	flowers := e.Result.Flowers
	if flowers == nil {
		flowers = []string{}
	}

	return successWire{
		Success:   true,
		Timestamp: timestamp,
		Input: inputWire{
			Num1:  e.Result.Input.Num1,
			Num2:  e.Result.Input.Num2,
			Total: e.Result.Input.Total(),
		},
		Flowers: flowers,
		Counts:  orderedCounts(e.Result.Tally.Entries()),
		Output:  e.Result.Report,
	}
}

func (e Envelope) MarshalJSON() ([]byte, error) {
	return marshalUnescaped(e.wire())
}

func (e Envelope) MarshalYAML() (any, error) {
	return e.wire(), nil
}

// orderedCounts encodes as an object whose keys keep first-seen order.
type orderedCounts []domain.TallyEntry

func (c orderedCounts) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, entry := range c {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := marshalUnescaped(entry.Symbol)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.WriteString(strconv.Itoa(entry.Count))
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// marshalUnescaped is json.Marshal without HTML escaping, so palette symbols
// such as "&" or "<" keep their literal form.
func marshalUnescaped(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

func (c orderedCounts) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, entry := range c {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: entry.Symbol},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.Itoa(entry.Count)},
		)
	}
	return node, nil
}
