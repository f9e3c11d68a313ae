package protocol

import (
	"errors"
	"testing"

	"github.com/automoto/coinarena/shared/messages"
	"github.com/automoto/coinarena/shared/netcomponents"
)

func TestEncodeDecodeMovePlayer(t *testing.T) {
	b, err := Encode(MsgMovePlayer, messages.NewMovePlayer(netcomponents.DirRight, 10))
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if string(b) != `{"t":"move-player","p":{"direction":"right","speed":10}}` {
		t.Fatalf("unexpected frame %s", b)
	}

	env, err := DecodeEnvelope(b)
	if err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	m, err := DecodePayload[messages.MovePlayer](env)
	if err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	if m.Direction != netcomponents.DirRight || m.Speed == nil || *m.Speed != 10 {
		t.Fatalf("decoded %+v", m)
	}
}

func TestRemovePlayerPayloadIsBareID(t *testing.T) {
	b, err := Encode(MsgRemovePlayer, "b")
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if string(b) != `{"t":"remove-player","p":"b"}` {
		t.Fatalf("unexpected frame %s", b)
	}
	env, _ := DecodeEnvelope(b)
	id, err := DecodePayload[string](env)
	if err != nil || id != "b" {
		t.Fatalf("decoded %q, %v", id, err)
	}
}

func TestEncodeRejectsBadInput(t *testing.T) {
	if _, err := Encode("", 1); err == nil {
		t.Fatal("expected error for empty type")
	}
	if _, err := Encode(MsgInit, nil); !errors.Is(err, ErrEmptyPayload) {
		t.Fatalf("expected ErrEmptyPayload, got %v", err)
	}
}

func TestDecodeEnvelopeErrors(t *testing.T) {
	if _, err := DecodeEnvelope(nil); !errors.Is(err, ErrEmptyFrame) {
		t.Fatalf("expected ErrEmptyFrame, got %v", err)
	}
	if _, err := DecodeEnvelope([]byte("{not json")); err == nil {
		t.Fatal("expected error for bad json")
	}
	if _, err := DecodeEnvelope([]byte(`{"p":1}`)); err == nil {
		t.Fatal("expected error for missing type")
	}
}

func TestDecodePayloadEmpty(t *testing.T) {
	for _, raw := range []string{"", "null"} {
		env := Envelope{T: MsgCollision, P: []byte(raw)}
		if _, err := DecodePayload[messages.Collision](env); !errors.Is(err, ErrEmptyPayload) {
			t.Fatalf("payload %q: expected ErrEmptyPayload, got %v", raw, err)
		}
	}
}

func TestMessageDirections(t *testing.T) {
	for _, name := range []string{MsgInit, MsgNewPlayer, MsgUpdatePlayer, MsgUpdateCoin, MsgRemovePlayer} {
		if !IsServerMessage(name) || IsClientMessage(name) {
			t.Fatalf("%q should be server-only", name)
		}
	}
	for _, name := range []string{MsgMovePlayer, MsgCollision} {
		if !IsClientMessage(name) || IsServerMessage(name) {
			t.Fatalf("%q should be client-only", name)
		}
	}
}
