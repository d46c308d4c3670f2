// Copyright (c) Microsoft. All rights reserved.

package agentframework

import (
	"encoding/json"
	"fmt"
)

// contentEnvelope is the JSON form of every [Content] kind. The "$type"
// field selects which of the other fields are meaningful.
type contentEnvelope struct {
	Type      ContentType     `json:"$type"`
	Text      *string         `json:"text,omitempty"`
	CallID    string          `json:"callId,omitempty"`
	Name      string          `json:"name,omitempty"`
	Arguments json.RawMessage `json:"arguments,omitempty"`
	Result    any             `json:"result,omitempty"`
}

// MarshalContentJSON marshals a single Content value into its JSON envelope.
func MarshalContentJSON(c Content) ([]byte, error) {
	env := contentEnvelope{}
	switch v := c.(type) {
	case *TextContent:
		env.Type = ContentTypeText
		env.Text = &v.Text
	case *FunctionCallContent:
		env.Type = ContentTypeFunctionCall
		env.CallID = v.CallID
		env.Name = v.Name
		if v.Arguments != "" {
			env.Arguments = json.RawMessage(v.Arguments)
		}
	case *FunctionResultContent:
		env.Type = ContentTypeFunctionResult
		env.CallID = v.CallID
		env.Result = v.Result
	default:
		return nil, fmt.Errorf("unknown content type: %T", c)
	}
	return json.Marshal(env)
}

// UnmarshalContentJSON unmarshals a single Content value from its JSON envelope.
func UnmarshalContentJSON(data []byte) (Content, error) {
	var env contentEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("unmarshal content envelope: %w", err)
	}

	switch env.Type {
	case ContentTypeText:
		tc := &TextContent{}
		if env.Text != nil {
			tc.Text = *env.Text
		}
		return tc, nil
	case ContentTypeFunctionCall:
		return &FunctionCallContent{
			CallID:    env.CallID,
			Name:      env.Name,
			Arguments: string(env.Arguments),
		}, nil
	case ContentTypeFunctionResult:
		return &FunctionResultContent{CallID: env.CallID, Result: env.Result}, nil
	default:
		return nil, fmt.Errorf("unknown content $type: %q", env.Type)
	}
}

// Contents is a typed slice enabling JSON marshal/unmarshal of polymorphic Content arrays.
type Contents []Content

// MarshalJSON serializes each Content item with its "$type" discriminator.
func (cs Contents) MarshalJSON() ([]byte, error) {
	items := make([]json.RawMessage, 0, len(cs))
	for i, c := range cs {
		b, err := MarshalContentJSON(c)
		if err != nil {
			return nil, fmt.Errorf("marshal content[%d]: %w", i, err)
		}
		items = append(items, b)
	}
	return json.Marshal(items)
}

// UnmarshalJSON decodes a JSON array of Content envelopes.
func (cs *Contents) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := make(Contents, 0, len(raw))
	for i, r := range raw {
		c, err := UnmarshalContentJSON(r)
		if err != nil {
			return fmt.Errorf("unmarshal content[%d]: %w", i, err)
		}
		out = append(out, c)
	}
	*cs = out
	return nil
}
