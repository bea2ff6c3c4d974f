// Package validation checks request shapes before they reach the
// repository. Violations are collected rather than failing fast, so a
// response can itemize everything wrong with a payload.
package validation

import (
	"encoding/json"
	"io"
	"strings"
	"unicode/utf8"

	"shoplist/models"
)

const maxNameLength = 255

// Violation messages kept stable; clients display them verbatim.
const (
	msgBadJSON        = "Request body must be valid JSON"
	msgNameRequired   = "Name is required and must be a non-empty string"
	msgNameTooLong    = "Name must be 255 characters or less"
	msgBadQuantity    = "Quantity must be a positive integer"
	msgBadCompleted   = "Completed must be a boolean value"
	msgBadDescription = "Description must be a string"
)

// ParseCreate decodes and validates a create payload. When the returned
// details slice is non-empty the request must be rejected; otherwise
// the request is normalized: name trimmed, quantity defaulted to 1 and
// completed to false.
func ParseCreate(body io.Reader) (models.CreateItemRequest, []string) {
	raw, details := decodeObject(body)
	if details != nil {
		return models.CreateItemRequest{}, details
	}

	req := models.CreateItemRequest{Quantity: 1}

	name, ok := raw["name"].(string)
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		details = append(details, msgNameRequired)
	} else if utf8.RuneCountInString(name) > maxNameLength {
		details = append(details, msgNameTooLong)
	} else {
		req.Name = name
	}

	if v, present := raw["description"]; present {
		if desc, ok := v.(string); ok {
			req.Description = desc
		} else {
			details = append(details, msgBadDescription)
		}
	}

	if v, present := raw["quantity"]; present {
		if q, ok := positiveInt(v); ok {
			req.Quantity = q
		} else {
			details = append(details, msgBadQuantity)
		}
	}

	if v, present := raw["completed"]; present {
		if b, ok := v.(bool); ok {
			req.Completed = b
		} else {
			details = append(details, msgBadCompleted)
		}
	}

	if len(details) > 0 {
		return models.CreateItemRequest{}, details
	}
	return req, nil
}

// ParsePatch decodes and validates a partial-update payload. Only the
// supplied fields are checked; an empty object yields an empty patch,
// left for the repository to reject.
func ParsePatch(body io.Reader) (models.ItemPatch, []string) {
	raw, details := decodeObject(body)
	if details != nil {
		return models.ItemPatch{}, details
	}

	var patch models.ItemPatch

	if v, present := raw["name"]; present {
		name, ok := v.(string)
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			details = append(details, msgNameRequired)
		} else if utf8.RuneCountInString(name) > maxNameLength {
			details = append(details, msgNameTooLong)
		} else {
			patch.Name = &name
		}
	}

	if v, present := raw["description"]; present {
		if desc, ok := v.(string); ok {
			patch.Description = &desc
		} else {
			details = append(details, msgBadDescription)
		}
	}

	if v, present := raw["quantity"]; present {
		if q, ok := positiveInt(v); ok {
			patch.Quantity = &q
		} else {
			details = append(details, msgBadQuantity)
		}
	}

	if v, present := raw["completed"]; present {
		if b, ok := v.(bool); ok {
			patch.Completed = &b
		} else {
			details = append(details, msgBadCompleted)
		}
	}

	if len(details) > 0 {
		return models.ItemPatch{}, details
	}
	return patch, nil
}

// decodeObject reads the body as a JSON object, keeping numbers as
// json.Number so integer checks can tell 3 from 2.5.
func decodeObject(body io.Reader) (map[string]any, []string) {
	dec := json.NewDecoder(body)
	dec.UseNumber()
	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return nil, []string{msgBadJSON}
	}
	return raw, nil
}

func positiveInt(v any) (int, bool) {
	num, ok := v.(json.Number)
	if !ok {
		return 0, false
	}
	n, err := num.Int64()
	if err != nil || n < 1 {
		return 0, false
	}
	return int(n), true
}
