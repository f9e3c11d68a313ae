package protocol

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	ErrEmptyFrame   = errors.New("empty frame")
	ErrEmptyPayload = errors.New("empty payload")
)

// Envelope is one named message on the wire: {"t": name, "p": payload}.
type Envelope struct {
	T string          `json:"t"`
	P json.RawMessage `json:"p"`
}

// Encode wraps payload in an envelope named t and returns the JSON frame.
func Encode(t string, payload any) ([]byte, error) {
	env, err := NewEnvelope(t, payload)
	if err != nil {
		return nil, err
	}
	return json.Marshal(env)
}

// NewEnvelope builds an Envelope without serialising the outer frame.
func NewEnvelope(t string, payload any) (Envelope, error) {
	if t == "" {
		return Envelope{}, fmt.Errorf("encode: empty message type")
	}
	if payload == nil {
		return Envelope{}, fmt.Errorf("encode %q: %w", t, ErrEmptyPayload)
	}
	pb, err := json.Marshal(payload)
	if err != nil {
		return Envelope{}, fmt.Errorf("encode %q: %w", t, err)
	}
	return Envelope{T: t, P: pb}, nil
}

func DecodeEnvelope(b []byte) (Envelope, error) {
	if len(b) == 0 {
		return Envelope{}, ErrEmptyFrame
	}
	var e Envelope
	if err := json.Unmarshal(b, &e); err != nil {
		return Envelope{}, fmt.Errorf("decode envelope: %w", err)
	}
	if e.T == "" {
		return Envelope{}, fmt.Errorf("decode envelope: missing type")
	}
	return e, nil
}

// DecodePayload unmarshals the envelope payload into a T.
func DecodePayload[T any](env Envelope) (T, error) {
	var out T
	if len(env.P) == 0 || string(env.P) == "null" {
		return out, fmt.Errorf("decode %q: %w", env.T, ErrEmptyPayload)
	}
	if err := json.Unmarshal(env.P, &out); err != nil {
		return out, fmt.Errorf("decode %q: %w", env.T, err)
	}
	return out, nil
}
