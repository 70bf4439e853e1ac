package prsummary

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/xeipuuv/gojsonschema"
)

// RequestSchema is the JSON schema every request payload must satisfy.
const RequestSchema = `{
  "type":"object",
  "properties":{
    "text":{"type":["string","null"]}
  }
}`

// Request is the payload read from stdin.
type Request struct {
	Text string `json:"text"`
}

// ReadRequest reads the whole stream and decodes it as a Request.
// A missing or null text field leaves Text empty. Any other non-string text
// value, such as a number, is rejected as invalid input rather than being
// stringified into the prompt.
func ReadRequest(r io.Reader) (Request, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Request{}, fmt.Errorf("read request: %w", err)
	}

	return ParseRequest(data)
}

// ParseRequest decodes a UTF-8 JSON object into a Request.
func ParseRequest(data []byte) (Request, error) {
	if !utf8.Valid(data) {
		return Request{}, fmt.Errorf("%w: payload is not valid UTF-8", ErrInvalidInput)
	}

	if !json.Valid(data) {
		return Request{}, fmt.Errorf("%w: payload is not valid JSON", ErrInvalidInput)
	}

	if err := validateRequestSchema(data); err != nil {
		return Request{}, err
	}

	var req Request
	if err := json.Unmarshal(data, &req); err != nil {
		return Request{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return req, nil
}

func validateRequestSchema(data []byte) error {
	schemaLoader := gojsonschema.NewStringLoader(RequestSchema)
	docLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if result.Valid() {
		return nil
	}

	errs := make([]string, 0, len(result.Errors()))
	for _, err := range result.Errors() {
		errs = append(errs, err.String())
	}

	return fmt.Errorf("%w: %s", ErrInvalidInput, strings.Join(errs, "; "))
}
