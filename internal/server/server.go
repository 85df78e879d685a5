// Package server exposes the compiler to a host process over stdio.
//
// Requests and responses are MessagePack-framed triples of message type,
// request id and payload. Request ids have the form "method:id"; the method
// part selects the handler and the full id is echoed back.
package server

import (
	"bufio"
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/go-json-experiment/json"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	ErrInvalidRequest = errors.New("invalid request")
	ErrUnknownMethod  = errors.New("unknown method")
)

// extractMethod extracts the base method name from a requestId.
// RequestIds have format "method:id" (e.g., "transform:0") or just "method".
func extractMethod(requestId string) string {
	if idx := strings.Index(requestId, ":"); idx != -1 {
		return requestId[:idx]
	}
	return requestId
}

type Options struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
	Cwd string

	// Logger receives request logs. When nil, warnings and errors are
	// written as JSON to Err.
	Logger *zap.Logger

	// CacheSize bounds the transformSource result cache.
	CacheSize int
}

type Server struct {
	r   *bufio.Reader
	w   *bufio.Writer
	log *zap.Logger
	api *API
}

func New(opts *Options) (*Server, error) {
	if opts.Cwd == "" {
		panic("Cwd is required")
	}

	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
		if opts.Err != nil {
			log = zap.New(zapcore.NewCore(
				zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
				zapcore.AddSync(opts.Err),
				zapcore.WarnLevel,
			))
		}
	}

	api, err := NewAPI(&APIOptions{
		Cwd:       opts.Cwd,
		Logger:    log,
		CacheSize: opts.CacheSize,
	})
	if err != nil {
		return nil, err
	}

	return &Server{
		r:   bufio.NewReader(opts.In),
		w:   bufio.NewWriter(opts.Out),
		log: log,
		api: api,
	}, nil
}

// Run serves requests until the input is exhausted or ctx is canceled. A
// failing request is answered with an error message; only framing and I/O
// errors stop the loop.
func (s *Server) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		messageType, requestId, payload, err := readMessage(s.r)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		if messageType != MessageTypeRequest {
			return fmt.Errorf("%w: expected request, received: %s", ErrInvalidRequest, messageType.String())
		}

		// Extract base method from requestId (format: "method:id" or just "method")
		method := extractMethod(requestId)
		s.log.Debug("request",
			zap.String("method", method),
			zap.String("id", requestId),
			zap.Int("bytes", len(payload)))

		result, err := s.handleRequest(ctx, method, payload)
		if err != nil {
			s.log.Debug("request failed", zap.String("id", requestId), zap.Error(err))
			if sendErr := s.sendError(requestId, err); sendErr != nil {
				return sendErr
			}
		} else {
			if sendErr := s.sendResponse(requestId, result); sendErr != nil {
				return sendErr
			}
		}
	}
}

func (s *Server) handleRequest(ctx context.Context, method string, payload []byte) ([]byte, error) {
	switch method {
	case MethodEcho:
		return payload, nil

	case MethodTransform:
		var params TransformParams
		if err := json.Unmarshal(payload, &params); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
		}
		resp, err := s.api.TransformModule(&params)
		if err != nil {
			return nil, err
		}
		return json.Marshal(resp, json.Deterministic(true))

	case MethodTransformSource:
		var params TransformSourceParams
		if err := json.Unmarshal(payload, &params); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
		}
		resp, err := s.api.TransformSource(ctx, params.FileName, params.Source, params.Config)
		if err != nil {
			return nil, err
		}
		return json.Marshal(resp)

	case MethodTransformFile:
		var params TransformFileParams
		if err := json.Unmarshal(payload, &params); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
		}
		resp, err := s.api.TransformFile(ctx, params.FileName, params.Config)
		if err != nil {
			return nil, err
		}
		return json.Marshal(resp)

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownMethod, method)
	}
}

func (s *Server) sendResponse(requestId string, result []byte) error {
	return s.writeMessage(MessageTypeResponse, requestId, result)
}

func (s *Server) sendError(requestId string, err error) error {
	return s.writeMessage(MessageTypeError, requestId, []byte(err.Error()))
}

func (s *Server) writeMessage(messageType MessageType, requestId string, payload []byte) error {
	if err := writeMessage(s.w, messageType, requestId, payload); err != nil {
		return err
	}
	return s.w.Flush()
}

func readMessage(r *bufio.Reader) (messageType MessageType, requestId string, payload []byte, err error) {
	// Read fixed array marker (0x93 = 3-element array)
	t, err := r.ReadByte()
	if err != nil {
		return 0, "", nil, err
	}
	if MessagePackType(t) != MessagePackTypeFixedArray3 {
		return 0, "", nil, fmt.Errorf("%w: expected 0x93, got 0x%02x", ErrInvalidRequest, t)
	}

	// Read message type (u8)
	t, err = r.ReadByte()
	if err != nil {
		return 0, "", nil, err
	}
	if MessagePackType(t) != MessagePackTypeU8 {
		return 0, "", nil, fmt.Errorf("%w: expected 0xCC, got 0x%02x", ErrInvalidRequest, t)
	}

	rawType, err := r.ReadByte()
	if err != nil {
		return 0, "", nil, err
	}
	messageType = MessageType(rawType)
	if !messageType.IsValid() {
		return 0, "", nil, fmt.Errorf("%w: invalid message type: %d", ErrInvalidRequest, messageType)
	}

	idBytes, err := readBin(r)
	if err != nil {
		return 0, "", nil, err
	}

	payload, err = readBin(r)
	if err != nil {
		return 0, "", nil, err
	}

	return messageType, string(idBytes), payload, nil
}

func readBin(r *bufio.Reader) ([]byte, error) {
	t, err := r.ReadByte()
	if err != nil {
		return nil, err
	}

	var size uint32
	switch MessagePackType(t) {
	case MessagePackTypeBin8:
		var size8 uint8
		if err := binary.Read(r, binary.BigEndian, &size8); err != nil {
			return nil, err
		}
		size = uint32(size8)
	case MessagePackTypeBin16:
		var size16 uint16
		if err := binary.Read(r, binary.BigEndian, &size16); err != nil {
			return nil, err
		}
		size = uint32(size16)
	case MessagePackTypeBin32:
		if err := binary.Read(r, binary.BigEndian, &size); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: expected bin (0xC4-0xC6), got 0x%02x", ErrInvalidRequest, t)
	}

	data := make([]byte, size)
	if _, err := io.ReadFull(r, data); err != nil {
		return nil, err
	}
	return data, nil
}

func writeMessage(w *bufio.Writer, messageType MessageType, requestId string, payload []byte) error {
	if err := w.WriteByte(byte(MessagePackTypeFixedArray3)); err != nil {
		return err
	}
	if err := w.WriteByte(byte(MessagePackTypeU8)); err != nil {
		return err
	}
	if err := w.WriteByte(byte(messageType)); err != nil {
		return err
	}
	if err := writeBin(w, []byte(requestId)); err != nil {
		return err
	}
	return writeBin(w, payload)
}

func writeBin(w *bufio.Writer, data []byte) error {
	length := len(data)

	if length < 256 {
		if err := w.WriteByte(byte(MessagePackTypeBin8)); err != nil {
			return err
		}
		if err := w.WriteByte(byte(length)); err != nil {
			return err
		}
	} else if length < 65536 {
		if err := w.WriteByte(byte(MessagePackTypeBin16)); err != nil {
			return err
		}
		if err := binary.Write(w, binary.BigEndian, uint16(length)); err != nil {
			return err
		}
	} else {
		if err := w.WriteByte(byte(MessagePackTypeBin32)); err != nil {
			return err
		}
		if err := binary.Write(w, binary.BigEndian, uint32(length)); err != nil {
			return err
		}
	}

	_, err := w.Write(data)
	return err
}
