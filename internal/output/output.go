package output

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/tidwall/pretty"
	"golang.org/x/term"

	"github.com/toba/ghtask/internal/github"
)

// Error codes for JSON responses
const (
	ErrPermissionDenied = "PERMISSION_DENIED"
	ErrNotFound         = "NOT_FOUND"
	ErrService          = "SERVICE_ERROR"
	ErrDecode           = "DECODE_ERROR"
	ErrUnsupported      = "UNSUPPORTED"
	ErrValidation       = "VALIDATION_ERROR"
	ErrConfig           = "CONFIG_ERROR"
	ErrFileError        = "FILE_ERROR"
)

// Stdout is where responses are written.
var Stdout io.Writer = os.Stdout

// Response is the standard JSON response envelope.
type Response struct {
	Success  bool             `json:"success"`
	Issue    *github.Issue    `json:"issue,omitempty"`
	Issues   []github.Issue   `json:"issues,omitempty"`
	Comments []github.Comment `json:"comments,omitempty"`
	Labels   []string         `json:"labels,omitempty"`
	User     *github.User     `json:"user,omitempty"`
	Count    int              `json:"count,omitempty"`
	Message  string           `json:"message,omitempty"`
	URL      string           `json:"url,omitempty"`
	Error    string           `json:"error,omitempty"`
	Code     string           `json:"code,omitempty"`
}

// colorize reports whether Stdout is a terminal.
func colorize() bool {
	f, ok := Stdout.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Format pretty-prints JSON, adding color when Stdout is a terminal.
func Format(data []byte) []byte {
	out := pretty.Pretty(data)
	if colorize() {
		out = pretty.Color(out, nil)
	}
	return out
}

// Raw writes v as JSON with no envelope. This allows intuitive jq usage:
// ghtask issue show --json 7 | jq '.title'
func Raw(v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	_, err = Stdout.Write(Format(data))
	return err
}

// JSON outputs a response as JSON to Stdout.
func JSON(resp Response) error {
	return Raw(resp)
}

// SuccessMessage outputs a success response with just a message.
func SuccessMessage(message string) error {
	return JSON(Response{
		Success: true,
		Message: message,
	})
}

// Error outputs an error response and returns an error for command handling.
func Error(code string, message string) error {
	_ = JSON(Response{
		Success: false,
		Error:   message,
		Code:    code,
	})
	return errors.New(message)
}

// ErrorFrom outputs an error response for err, deriving the code from its
// kind, and returns err unchanged.
func ErrorFrom(err error) error {
	_ = JSON(Response{
		Success: false,
		Error:   err.Error(),
		Code:    CodeFor(err),
	})
	return err
}

// CodeFor maps err to a response code.
func CodeFor(err error) string {
	if errors.Is(err, github.ErrNoNumber) {
		return ErrValidation
	}
	se, ok := errors.AsType[*github.ServiceError](err)
	if !ok {
		return ErrValidation
	}
	switch se.Kind {
	case github.KindPermissionDenied:
		return ErrPermissionDenied
	case github.KindStatus:
		if strings.HasPrefix(se.Status, "404") {
			return ErrNotFound
		}
		return ErrService
	case github.KindDecode, github.KindUnexpectedResponse:
		return ErrDecode
	case github.KindUnsupported:
		return ErrUnsupported
	default:
		return ErrService
	}
}
