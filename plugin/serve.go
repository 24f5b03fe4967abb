package plugin

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/nuposix/nuposix/log"
	"github.com/nuposix/nuposix/nush"
	"github.com/nuposix/nuposix/pkg"
)

// maxMessageSize bounds a single protocol message. Pipeline values arrive
// as one JSON line, so this also bounds the largest convertible input.
const maxMessageSize = 32 * 1024 * 1024

// Serve speaks the plugin protocol on r and w until the engine says
// Goodbye or the input stream ends.
//
// The engine invokes the plugin binary and connects its stdio, so w is
// reserved for protocol messages; diagnostics must go elsewhere (the log
// package writes to stderr).
func Serve(ctx context.Context, r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxMessageSize)

	s := &server{
		scanner: scanner,
		w:       w,
		convert: nush.Convert,
	}

	return s.run(ctx)
}

// server holds one protocol session. Calls are handled synchronously in
// arrival order; the conversion core is stateless so nothing here needs
// locking.
type server struct {
	scanner *bufio.Scanner
	w       io.Writer
	convert func(string) string
}

func (s *server) run(ctx context.Context) error {
	// Declare the wire encoding before any message.
	_, err := io.WriteString(s.w, encodingJSON)
	if err != nil {
		return pkg.ErrEncodeMessage.Wrap(err)
	}

	err = s.send(helloEnvelope{
		Hello: Hello{
			Protocol: Protocol,
			Version:  ProtocolVersion,
			Features: []any{},
		},
	})
	if err != nil {
		return err
	}

	for s.scanner.Scan() {
		line := strings.TrimSpace(s.scanner.Text())
		if line == "" {
			continue
		}

		msg := gjson.Parse(line)

		switch {
		case msg.Type == gjson.String && msg.String() == "Goodbye":
			log.DebugContext(ctx, "engine said goodbye")

			return nil

		case msg.Get("Hello").Exists():
			err := s.checkHello(ctx, msg.Get("Hello"))
			if err != nil {
				return err
			}

		case msg.Get("Call").Exists():
			err := s.handleCall(ctx, msg.Get("Call"))
			if err != nil {
				return err
			}

		case msg.Get("Signal").Exists():
			// Interrupt/Reset signals carry no work for a synchronous
			// converter; the current call always runs to completion.
			log.DebugContext(ctx, "signal ignored",
				slog.String("signal", msg.Get("Signal").String()),
			)

		case msg.Get("Drop").Exists(), msg.Get("Ack").Exists(),
			msg.Get("Data").Exists(), msg.Get("End").Exists():
			// Stream bookkeeping outside an active call.

		default:
			log.WarnContext(ctx, "unrecognized plugin message",
				slog.String("message", line),
			)
		}
	}

	err = s.scanner.Err()
	if err != nil {
		return pkg.ErrReadInput.Wrap(err)
	}

	return nil
}

// checkHello validates the engine's hello message. The engine enforces
// version compatibility on its side; the plugin only rejects a foreign
// protocol identity.
func (s *server) checkHello(ctx context.Context, hello gjson.Result) error {
	protocol := hello.Get("protocol").String()
	if protocol != Protocol {
		return pkg.ErrProtocolVersion.Wrapf("unexpected protocol %q", protocol)
	}

	log.DebugContext(ctx, "engine hello",
		slog.String("protocol", protocol),
		slog.String("version", hello.Get("version").String()),
	)

	return nil
}

// handleCall dispatches one engine call, a two-element [id, body] array.
func (s *server) handleCall(ctx context.Context, call gjson.Result) error {
	parts := call.Array()
	if len(parts) != 2 {
		return pkg.ErrDecodeMessage.Wrapf("malformed call %q", call.Raw)
	}

	id, body := parts[0].Int(), parts[1]

	switch {
	case body.Type == gjson.String && body.String() == "Metadata":
		return s.send(callResponse{ID: id, Body: metadataResponse{
			Metadata: Metadata{Version: strings.TrimSpace(pkg.Version)},
		}})

	case body.Type == gjson.String && body.String() == "Signature":
		return s.send(callResponse{ID: id, Body: signatureResponse{
			Signature: signatures(),
		}})

	case body.Get("Run").Exists():
		return s.handleRun(ctx, id, body.Get("Run"))

	default:
		return s.send(callResponse{ID: id, Body: errorResponse{
			Error: LabeledError{
				Msg:    "unsupported engine call",
				Labels: []ErrorLabel{},
				Inner:  []LabeledError{},
			},
		}})
	}
}

// handleRun executes the "from posix" command against coerced pipeline
// input and responds with a single string value.
func (s *server) handleRun(ctx context.Context, id int64, run gjson.Result) error {
	head := spanFrom(run.Get("call.head"))

	name := run.Get("name").String()
	if name != CommandName {
		return s.send(callResponse{ID: id, Body: errorResponse{
			Error: LabeledError{
				Msg: "unknown command " + name,
				Labels: []ErrorLabel{
					{Text: "not provided by this plugin", Span: head},
				},
				Inner: []LabeledError{},
			},
		}})
	}

	text, lerr := s.inputText(run.Get("input"), head)
	if lerr != nil {
		log.DebugContext(ctx, "rejected pipeline input",
			slog.String("reason", lerr.Msg),
		)

		return s.send(callResponse{ID: id, Body: errorResponse{Error: *lerr}})
	}

	return s.send(callResponse{ID: id, Body: pipelineDataResponse{
		PipelineData: pipelineValue{Value: stringValue(s.convert(text), head)},
	}})
}

// send writes one newline-delimited JSON message.
func (s *server) send(msg any) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return pkg.ErrEncodeMessage.Wrap(err)
	}

	_, err = s.w.Write(append(data, '\n'))
	if err != nil {
		return pkg.ErrEncodeMessage.Wrap(err)
	}

	return nil
}

// spanFrom reads a span object, defaulting to the zero span when absent.
func spanFrom(res gjson.Result) Span {
	return Span{
		Start: int(res.Get("start").Int()),
		End:   int(res.Get("end").Int()),
	}
}
