// Package logger builds the *slog.Logger instances used across formkit and
// provides attribute helpers that keep key names consistent between the
// validation controllers and the message catalog.
//
// New applies functional options over a JSON-by-default configuration:
//
//	log := logger.New(
//	    logger.WithDevelopment("signup-form"),
//	    logger.WithContextValue("request_id", ctxKeyRequestID),
//	)
//	f, _ := form.New(fields, form.WithLogger(log))
//
// Controllers that receive no logger fall back to Discard, so the library is
// silent unless the caller opts in.
//
// Helpers such as Field, FormID and Error return empty attributes for empty
// input, which lets call sites pass them unconditionally:
//
//	log.Debug("field validated", logger.Field(name), logger.Error(err))
package logger
