// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeUnknownName,
//	    "no such enumeration member",
//	    enum.ErrUnknownName,
//	    map[string]interface{}{
//	        "name": name,
//	    },
//	)
package errors
