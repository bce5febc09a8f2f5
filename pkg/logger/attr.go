package logger

import (
	"log/slog"
	"strconv"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// RequestID records the request identifier under the key "request_id".
// If id is nil, it returns an empty Attr.
func RequestID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("request_id", id)
}

// ListingID records a catalog listing identifier under "listing_id".
func ListingID(id string) slog.Attr {
	return slog.String("listing_id", id)
}

// ReceiptID records an upload receipt identifier under "receipt_id".
// If id is nil, it returns an empty Attr.
func ReceiptID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("receipt_id", id)
}

func Category(name string) slog.Attr {
	return slog.String("category", name)
}

// RuleSet records a form rule-set name under "rule_set".
func RuleSet(name string) slog.Attr {
	return slog.String("rule_set", name)
}

// Fields records field names (never values) under "fields",
// e.g. the fields that failed validation.
func Fields(names ...string) slog.Attr {
	return slog.Any("fields", names)
}

// Duration records a duration under the key "duration".
func Duration(d any) slog.Attr {
	return slog.Any("duration", d)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Event records the event name under the key "event".
func Event(name string) slog.Attr {
	return slog.String("event", name)
}
