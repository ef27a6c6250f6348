// Package errors provides the unified error taxonomy shared by the abi,
// key, oracle and signer packages.
package errors

import (
	"errors"
	"fmt"
)

// Code identifies one of the distinct failure kinds the library surfaces.
type Code string

const (
	// Codec errors.
	CodeNameTooLong            Code = "NAME_TOO_LONG"
	CodeNameBadCharacter       Code = "NAME_BAD_CHARACTER"
	CodeUnsupportedType        Code = "UNSUPPORTED_TYPE"
	CodeUnresolvedActionPayload Code = "UNRESOLVED_ACTION_PAYLOAD"
	CodeShortBuffer            Code = "SHORT_BUFFER"

	// Key errors.
	CodeBadVersion          Code = "BAD_VERSION"
	CodeChecksumMismatch    Code = "CHECKSUM_MISMATCH"
	CodeBadDigest           Code = "BAD_DIGEST"
	CodeNoCanonicalSignature Code = "NO_CANONICAL_SIGNATURE"
	CodeNoRecoveryParam     Code = "NO_RECOVERY_PARAM"
	CodeMalformedKeyText    Code = "MALFORMED_KEY_TEXT"

	// Pipeline / remote errors.
	CodeMissingTapos      Code = "MISSING_TAPOS"
	CodeRPCFailure        Code = "RPC_FAILURE"
	CodeDeadline          Code = "DEADLINE_EXCEEDED"
	CodeActionValidate    Code = "ACTION_VALIDATE"
	CodeCPUUsageExceeded  Code = "CPU_USAGE_EXCEEDED"
	CodeNetUsageExceeded  Code = "NET_USAGE_EXCEEDED"
	CodeRAMUsageExceeded  Code = "RAM_USAGE_EXCEEDED"
	CodeAssertMessage     Code = "ASSERT_MESSAGE"
)

// Error is a structured error carrying a taxonomy Code, a human message and
// an optional wrapped cause.
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap exposes the wrapped cause for errors.Is / errors.As.
func (e *Error) Unwrap() error {
	return e.Err
}

// New builds an *Error with no wrapped cause.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap builds an *Error around an existing cause.
func Wrap(code Code, message string, err error) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

// Is reports whether err carries the given Code anywhere in its chain.
func Is(err error, code Code) bool {
	for err != nil {
		var e *Error
		if !errors.As(err, &e) {
			return false
		}
		if e.Code == code {
			return true
		}
		err = e.Err
	}
	return false
}

// CodeOf extracts the Code from err, or "" if err is not an *Error.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// Constructors, one per taxonomy entry in spec §7.

func NameTooLong(name string) *Error {
	return New(CodeNameTooLong, fmt.Sprintf("name %q exceeds 13 characters", name))
}

func NameBadCharacter(name string) *Error {
	return New(CodeNameBadCharacter, fmt.Sprintf("name %q contains a character outside the name alphabet", name))
}

func UnsupportedType(typeName string) *Error {
	return New(CodeUnsupportedType, fmt.Sprintf("unsupported ABI type %q", typeName))
}

func UnresolvedActionPayload(account, action string) *Error {
	return New(CodeUnresolvedActionPayload, fmt.Sprintf("action %s::%s still carries an unresolved map payload", account, action))
}

func ShortBuffer(want, have int) *Error {
	return New(CodeShortBuffer, fmt.Sprintf("need %d bytes, have %d", want, have))
}

func BadVersion(got byte) *Error {
	return New(CodeBadVersion, fmt.Sprintf("legacy private key version byte 0x%02x, want 0x80", got))
}

func ChecksumMismatch() *Error {
	return New(CodeChecksumMismatch, "checksum mismatch")
}

func BadDigest(n int) *Error {
	return New(CodeBadDigest, fmt.Sprintf("digest must be 32 bytes, got %d", n))
}

func NoCanonicalSignature(attempts int) *Error {
	return New(CodeNoCanonicalSignature, fmt.Sprintf("no canonical signature found after %d attempts", attempts))
}

func NoRecoveryParam() *Error {
	return New(CodeNoRecoveryParam, "no recovery parameter recovers the signing key")
}

func MalformedKeyText(err error) *Error {
	return Wrap(CodeMalformedKeyText, "malformed key or signature text", err)
}

func MissingTapos() *Error {
	return New(CodeMissingTapos, "transaction is missing TAPOS reference-block fields")
}

func RPCFailure(name, message string) *Error {
	return New(CodeRPCFailure, fmt.Sprintf("%s: %s", name, message))
}

func Deadline(message string) *Error {
	return New(CodeDeadline, message)
}

func ActionValidate(message string) *Error {
	return New(CodeActionValidate, message)
}

func CPUUsageExceeded(message string) *Error {
	return New(CodeCPUUsageExceeded, message)
}

func NetUsageExceeded(message string) *Error {
	return New(CodeNetUsageExceeded, message)
}

func RAMUsageExceeded(message string) *Error {
	return New(CodeRAMUsageExceeded, message)
}

func AssertMessage(message string) *Error {
	return New(CodeAssertMessage, message)
}

// remoteErrorNames maps the EOSIO node's error.name field (per §6/§7 and
// aioeos's ERROR_NAME_MAP) to the taxonomy constructor that should wrap it.
var remoteErrorNames = map[string]func(string) *Error{
	"deadline_exception":             Deadline,
	"action_validate_exception":      ActionValidate,
	"tx_cpu_usage_exceeded":          CPUUsageExceeded,
	"tx_net_usage_exceeded":          NetUsageExceeded,
	"ram_usage_exceeded":             RAMUsageExceeded,
	"eosio_assert_message_exception": AssertMessage,
}

// FromRemoteErrorName maps a node-reported error.name to a taxonomy error,
// defaulting to the generic RPCFailure per §6.
func FromRemoteErrorName(name, message string) *Error {
	if ctor, ok := remoteErrorNames[name]; ok {
		return ctor(message)
	}
	return RPCFailure(name, message)
}
