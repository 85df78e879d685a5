package server

import (
	"github.com/go-json-experiment/json/jsontext"
)

// MessagePack framing shared with the host-side client. Every message is a
// three element array of message type, request id and payload.

type MessageType uint8

const (
	MessageTypeUnknown MessageType = iota
	MessageTypeRequest
	MessageTypeCallResponse
	MessageTypeCallError
	MessageTypeResponse
	MessageTypeError
	MessageTypeCall
)

func (m MessageType) IsValid() bool {
	return m >= MessageTypeRequest && m <= MessageTypeCall
}

func (m MessageType) String() string {
	switch m {
	case MessageTypeRequest:
		return "request"
	case MessageTypeCallResponse:
		return "call-response"
	case MessageTypeCallError:
		return "call-error"
	case MessageTypeResponse:
		return "response"
	case MessageTypeError:
		return "error"
	case MessageTypeCall:
		return "call"
	default:
		return "unknown"
	}
}

type MessagePackType uint8

const (
	MessagePackTypeFixedArray3 MessagePackType = 0x93
	MessagePackTypeBin8        MessagePackType = 0xC4
	MessagePackTypeBin16       MessagePackType = 0xC5
	MessagePackTypeBin32       MessagePackType = 0xC6
	MessagePackTypeU8          MessagePackType = 0xCC
)

// API method names
const (
	MethodEcho            = "echo"
	MethodTransform       = "transform"
	MethodTransformSource = "transformSource"
	MethodTransformFile   = "transformFile"
)

// Request/Response types

// TransformParams carries a module in the JSON AST encoding. Config is kept
// raw so a malformed configuration falls back to defaults instead of failing
// the request.
type TransformParams struct {
	Module jsontext.Value `json:"module"`
	Config jsontext.Value `json:"config,omitempty"`
}

type TransformSourceParams struct {
	FileName string         `json:"fileName"` // Virtual filename for error messages
	Source   string         `json:"source"`
	Config   jsontext.Value `json:"config,omitempty"`
}

type TransformFileParams struct {
	FileName string         `json:"fileName"` // Resolved against the server's working directory
	Config   jsontext.Value `json:"config,omitempty"`
}

type ComponentInfo struct {
	Name string `json:"name"`
	Kind string `json:"kind"` // "stateful" or "stateless"
}

type TransformResponse struct {
	Module     jsontext.Value  `json:"module"`
	Stateful   bool            `json:"stateful"`
	Stateless  bool            `json:"stateless"`
	Components []ComponentInfo `json:"components"`
}

type SourceResponse struct {
	Code       string          `json:"code"`
	Components []ComponentInfo `json:"components"`
}
