package types

import (
	"encoding/json"
)

type MsgTypes int

const (
	REQUEST MsgTypes = iota
	REPLY
)

type Header struct {
	Type MsgTypes
	UUID string
}

/*
 * A single command line to compute with the given mode.
 * Mode is kept as text so the service can report unknown values.
 */
type PathRequest struct {
	Mode string
	Line string
}

/*
 * Output holds the formatted path or the mode diagnostic.
 * Error is set when the line could not be parsed.
 */
type PathReply struct {
	Output string
	Error  string
}

type Content interface {
	PathRequest | PathReply
}

type Msg[T Content] struct {
	Header  Header
	Content T
}

func (msg Msg[T]) ToJson() ([]byte, error) {
	return json.Marshal(msg)
}
