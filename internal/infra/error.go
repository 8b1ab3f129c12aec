package infra

import (
	"context"
	"errors"
	"log/slog"

	"party-rental/internal/pkg/errs"
)

// RepositoryErrorKind classifies a storage failure so use cases can branch
// without knowing the driver.
type RepositoryErrorKind string

const (
	KindNotFound     RepositoryErrorKind = "NOT_FOUND"
	KindDBFailure    RepositoryErrorKind = "DB_FAILURE"
	KindDuplicateKey RepositoryErrorKind = "DUPLICATE_KEY"
	KindConflict     RepositoryErrorKind = "CONFLICT"
)

// domainMark is what a kind looks like to errors.Is when no use case
// translated it first.
func (k RepositoryErrorKind) domainMark() error {
	switch k {
	case KindNotFound:
		return errs.ErrNotFound
	case KindConflict, KindDuplicateKey:
		return errs.ErrConflict
	default:
		return errs.ErrDatabaseOperationFailed
	}
}

type RepositoryError struct {
	Kind  RepositoryErrorKind
	msg   string
	cause error
}

func (e RepositoryError) Error() string {
	if e.cause == nil {
		return string(e.Kind) + ": " + e.msg
	}
	return string(e.Kind) + ": " + e.msg + ": " + e.cause.Error()
}

func (e RepositoryError) Unwrap() error { return e.cause }

func (e RepositoryError) Is(target error) bool {
	return target == e.Kind.domainMark()
}

// WrapRepoErr defaults to KindDBFailure. Misses and constraint hits are
// normal traffic and stay at debug level.
func WrapRepoErr(msg string, err error, kind ...RepositoryErrorKind) error {
	k := KindDBFailure
	if len(kind) > 0 {
		k = kind[0]
	}

	attrs := []any{slog.String("kind", string(k))}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
		err = errs.Wrap(err, msg)
	}

	level := slog.LevelDebug
	if k == KindDBFailure {
		level = slog.LevelError
	}
	slog.Log(context.Background(), level, "repository: "+msg, attrs...)

	return RepositoryError{Kind: k, msg: msg, cause: err}
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var e RepositoryError
	return errors.As(err, &e) && e.Kind == kind
}
