// Copyright 2025 C Thing Software
// SPDX-License-Identifier: Apache-2.0

// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// Example usage:
//
//	err := errors.NewWithContext(
//	    errors.ErrCodeInvalidArgument,
//	    "version must consist of three non-negative integers: major.minor.patch",
//	    map[string]interface{}{
//	        "version": input,
//	    },
//	)
package errors
