package plugin

// Wire types for the subset of the Nushell plugin protocol served by this
// plugin. Field names and shapes follow the engine's JSON serializer; all
// types marshal with encoding/json.

import (
	"encoding/json"
)

// marshalTagged encodes body in the externally tagged enum form the
// serializer uses for protocol variants: {"Tag": body}.
func marshalTagged(tag string, body any) ([]byte, error) {
	return json.Marshal(map[string]any{tag: body})
}

// ackMessage acknowledges consumption of one stream data message,
// marshaling as {"Ack": id}.
type ackMessage struct {
	ID int64
}

// MarshalJSON implements the externally tagged form.
func (a ackMessage) MarshalJSON() ([]byte, error) {
	return marshalTagged("Ack", a.ID)
}

const (
	// Protocol is the protocol identifier expected in both hello messages.
	Protocol = "nu-plugin"

	// ProtocolVersion is the engine protocol version this plugin targets.
	ProtocolVersion = "0.104.0"

	// encodingJSON is the encoding declaration sent before any message:
	// a single length byte followed by the encoding name.
	encodingJSON = "\x04json"
)

// Span locates a value or error label in engine source. The plugin echoes
// the call head span; it never fabricates positions of its own.
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Hello is the first message sent by each side of the connection.
type Hello struct {
	Protocol string `json:"protocol"`
	Version  string `json:"version"`
	Features []any  `json:"features"`
}

// helloEnvelope wraps Hello in its externally tagged form.
type helloEnvelope struct {
	Hello Hello `json:"Hello"`
}

// callResponse pairs a response body with the engine call it answers.
// It marshals as {"CallResponse": [id, body]}.
type callResponse struct {
	ID   int64
	Body any
}

// MarshalJSON implements the externally tagged two-element array form.
func (r callResponse) MarshalJSON() ([]byte, error) {
	return marshalTagged("CallResponse", [2]any{r.ID, r.Body})
}

// Metadata answers a Metadata engine call.
type Metadata struct {
	Version string `json:"version"`
}

// metadataResponse wraps Metadata in its response variant.
type metadataResponse struct {
	Metadata Metadata `json:"Metadata"`
}

// signatureResponse wraps the command signatures in their response variant.
type signatureResponse struct {
	Signature []Signature `json:"Signature"`
}

// pipelineDataResponse wraps a successful Run result.
type pipelineDataResponse struct {
	PipelineData pipelineValue `json:"PipelineData"`
}

// pipelineValue is the Value variant of a pipeline data header.
type pipelineValue struct {
	Value any `json:"Value"`
}

// errorResponse wraps a LabeledError in its response variant.
type errorResponse struct {
	Error LabeledError `json:"Error"`
}

// LabeledError is the engine's structured error type. Msg is the headline;
// each label attaches explanatory text to a source span.
type LabeledError struct {
	Msg    string         `json:"msg"`
	Labels []ErrorLabel   `json:"labels"`
	Code   string         `json:"code,omitempty"`
	URL    string         `json:"url,omitempty"`
	Help   string         `json:"help,omitempty"`
	Inner  []LabeledError `json:"inner"`
}

// ErrorLabel is one span-anchored annotation of a LabeledError.
type ErrorLabel struct {
	Text string `json:"text"`
	Span Span   `json:"span"`
}

// Signature describes one command provided by the plugin, paired with its
// documentation examples.
type Signature struct {
	Sig      CommandSignature `json:"sig"`
	Examples []Example        `json:"examples"`
}

// CommandSignature is the engine-facing command declaration.
type CommandSignature struct {
	Name                         string      `json:"name"`
	Description                  string      `json:"description"`
	ExtraDescription             string      `json:"extra_description"`
	SearchTerms                  []string    `json:"search_terms"`
	RequiredPositional           []any       `json:"required_positional"`
	OptionalPositional           []any       `json:"optional_positional"`
	RestPositional               any         `json:"rest_positional"`
	Named                        []NamedFlag `json:"named"`
	InputOutputTypes             [][2]any    `json:"input_output_types"`
	AllowVariantsWithoutExamples bool        `json:"allow_variants_without_examples"`
	IsFilter                     bool        `json:"is_filter"`
	CreatesScope                 bool        `json:"creates_scope"`
	AllowsUnknownArgs            bool        `json:"allows_unknown_args"`
	Category                     string      `json:"category"`
}

// NamedFlag is one named flag of a command signature.
type NamedFlag struct {
	Long         string `json:"long"`
	Short        string `json:"short,omitempty"`
	Arg          any    `json:"arg"`
	Required     bool   `json:"required"`
	Desc         string `json:"desc"`
	VarID        any    `json:"var_id"`
	DefaultValue any    `json:"default_value"`
}

// Example is one documented invocation of a command.
type Example struct {
	Example     string `json:"example"`
	Description string `json:"description"`
	Result      any    `json:"result"`
}

// stringValue builds the wire form of a Nushell string value.
func stringValue(val string, span Span) map[string]any {
	return map[string]any{
		"String": map[string]any{
			"val":  val,
			"span": span,
		},
	}
}
