package spectate

import (
	"encoding/json"
	"fmt"

	"github.com/gorilla/websocket"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/vovakirdan/pingpong/internal/pong"
)

// Codec encodes snapshot frames for the wire.
type Codec interface {
	Name() string
	// MessageType is the websocket frame type the encoding needs.
	MessageType() int
	Encode(snap pong.Snapshot) ([]byte, error)
}

// JSONCodec sends text frames.
type JSONCodec struct{}

func (JSONCodec) Name() string     { return "json" }
func (JSONCodec) MessageType() int { return websocket.TextMessage }

func (JSONCodec) Encode(snap pong.Snapshot) ([]byte, error) {
	return json.Marshal(snap)
}

// MsgpackCodec sends binary frames.
type MsgpackCodec struct{}

func (MsgpackCodec) Name() string     { return "msgpack" }
func (MsgpackCodec) MessageType() int { return websocket.BinaryMessage }

func (MsgpackCodec) Encode(snap pong.Snapshot) ([]byte, error) {
	return msgpack.Marshal(snap)
}

// CodecByName resolves the ?codec= query value. Empty means JSON.
func CodecByName(name string) (Codec, error) {
	switch name {
	case "", "json":
		return JSONCodec{}, nil
	case "msgpack":
		return MsgpackCodec{}, nil
	default:
		return nil, fmt.Errorf("spectate: unknown codec %q", name)
	}
}
