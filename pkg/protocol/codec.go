package protocol

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

var (
	// ErrInvalidMessage is returned for frames without an event name.
	ErrInvalidMessage = errors.New("protocol: invalid message")
	// ErrUnknownCodec is returned by Lookup for unsupported names.
	ErrUnknownCodec = errors.New("protocol: unknown codec")
)

// Codec converts messages to and from frames.
type Codec interface {
	Encode(msg Message) ([]byte, error)
	Decode(data []byte) (Message, error)
	Name() string
	// Binary reports whether frames must be sent as binary WebSocket messages.
	Binary() bool
}

// JSONCodec is the codec spoken by the browser script.
type JSONCodec struct{}

func (JSONCodec) Encode(msg Message) ([]byte, error) { return json.Marshal(msg) }

func (JSONCodec) Decode(data []byte) (Message, error) {
	var msg Message
	if err := json.Unmarshal(data, &msg); err != nil {
		return Message{}, fmt.Errorf("%w: %v", ErrInvalidMessage, err)
	}
	if msg.Event == "" {
		return Message{}, ErrInvalidMessage
	}
	return msg, nil
}

func (JSONCodec) Name() string { return "json" }
func (JSONCodec) Binary() bool { return false }

// MsgPackCodec is a compact binary codec for non-browser clients.
type MsgPackCodec struct{}

func (MsgPackCodec) Encode(msg Message) ([]byte, error) { return msgpack.Marshal(&msg) }

func (MsgPackCodec) Decode(data []byte) (Message, error) {
	var msg Message
	if err := msgpack.Unmarshal(data, &msg); err != nil {
		return Message{}, fmt.Errorf("%w: %v", ErrInvalidMessage, err)
	}
	if msg.Event == "" {
		return Message{}, ErrInvalidMessage
	}
	return msg, nil
}

func (MsgPackCodec) Name() string { return "msgpack" }
func (MsgPackCodec) Binary() bool { return true }

// Lookup returns the codec registered under name. An empty name selects JSON.
func Lookup(name string) (Codec, error) {
	switch name {
	case "", "json":
		return JSONCodec{}, nil
	case "msgpack":
		return MsgPackCodec{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCodec, name)
	}
}
