package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/mrz1836/signet/internal/errors"
)

// commandOutput writes command results in the selected output format.
// Results go to stdout; logs go to stderr through the logger.
type commandOutput struct {
	w      io.Writer
	format string
}

func newOutput(w io.Writer, format string) *commandOutput {
	return &commandOutput{w: w, format: format}
}

// JSON reports whether results are written as JSON.
func (o *commandOutput) JSON() bool {
	return o.format == OutputJSON
}

// Emit writes v as indented JSON, or calls text to render it for humans.
func (o *commandOutput) Emit(v any, text func(w io.Writer)) error {
	if o.JSON() {
		encoder := json.NewEncoder(o.w)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(v); err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}
		return nil
	}
	text(o.w)
	return nil
}

// errorResponse is the JSON body written when a command fails in JSON mode.
type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Action  string `json:"action,omitempty"`
}

// Fail reports err. In JSON mode the error is written to the result stream
// and the returned error also wraps errors.ErrJSONErrorOutput, telling the
// root command not to print it again. In text mode err is returned unchanged.
func (o *commandOutput) Fail(err error) error {
	if err == nil || !o.JSON() {
		return err
	}

	msg, action := errors.Actionable(err)
	if encErr := o.Emit(errorResponse{
		Success: false,
		Error:   err.Error(),
		Message: msg,
		Action:  action,
	}, nil); encErr != nil {
		return err
	}
	return fmt.Errorf("%w: %w", errors.ErrJSONErrorOutput, err)
}

// printField writes one aligned "label: value" line.
func printField(w io.Writer, label, value string) {
	_, _ = fmt.Fprintf(w, "%-12s %s\n", label+":", value)
}
