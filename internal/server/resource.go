package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/LiyemaSwartooi/MyPortfolio-sub001/internal/content"
	"github.com/LiyemaSwartooi/MyPortfolio-sub001/internal/validate"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type fieldKind int

const (
	fieldText fieldKind = iota
	fieldEmail
	fieldURL
	fieldUUID
	fieldInt
	fieldBool
)

// fieldRule describes one acceptable body field for a resource: its column
// name (also the JSON key), how to validate it, and whether creation
// requires it. Unknown body keys are ignored.
type fieldRule struct {
	name      string
	kind      fieldKind
	required  bool
	maxLength int
	label     string
}

func (r fieldRule) displayLabel() string {
	if r.label != "" {
		return r.label
	}
	label := strings.ReplaceAll(r.name, "_", " ")
	if label == "" {
		return label
	}
	return strings.ToUpper(label[:1]) + label[1:]
}

var displayOrderRule = fieldRule{name: "display_order", kind: fieldInt}

// buildColumns translates the request body into a sanitized column set.
// For creates, required fields must be present and non-empty; for patches,
// absent fields are left untouched and explicit null clears optional ones.
// A non-empty message reports the first validation failure.
func buildColumns(body map[string]json.RawMessage, rules []fieldRule, forCreate bool) (map[string]any, string) {
	columns := make(map[string]any, len(rules))

	for _, rule := range rules {
		raw, present := body[rule.name]
		if !present {
			if forCreate && rule.required {
				return nil, rule.displayLabel() + " is required"
			}
			continue
		}

		if string(raw) == "null" {
			if rule.required {
				return nil, rule.displayLabel() + " is required"
			}
			columns[rule.name] = zeroValue(rule.kind)
			continue
		}

		value, message := decodeField(raw, rule)
		if message != "" {
			return nil, message
		}
		columns[rule.name] = value
	}

	return columns, ""
}

func decodeField(raw json.RawMessage, rule fieldRule) (any, string) {
	label := rule.displayLabel()

	switch rule.kind {
	case fieldText:
		var value string
		if err := json.Unmarshal(raw, &value); err != nil {
			return nil, label + " must be a string"
		}
		if err := validate.Text(value, label, validate.TextRules{Required: rule.required, MaxLength: rule.maxLength}); err != nil {
			return nil, err.Error()
		}
		return validate.SanitizeText(value), ""
	case fieldEmail:
		var value string
		if err := json.Unmarshal(raw, &value); err != nil {
			return nil, label + " must be a string"
		}
		trimmed := strings.TrimSpace(value)
		if rule.required && trimmed == "" {
			return nil, label + " is required"
		}
		if err := validate.Email(trimmed); err != nil {
			return nil, err.Error()
		}
		return trimmed, ""
	case fieldURL:
		var value string
		if err := json.Unmarshal(raw, &value); err != nil {
			return nil, label + " must be a string"
		}
		trimmed := strings.TrimSpace(value)
		if rule.required && trimmed == "" {
			return nil, label + " is required"
		}
		if err := validate.URL(trimmed); err != nil {
			return nil, err.Error()
		}
		return trimmed, ""
	case fieldUUID:
		var value string
		if err := json.Unmarshal(raw, &value); err != nil {
			return nil, label + " must be a string"
		}
		if err := validate.UUID(value); err != nil {
			return nil, err.Error()
		}
		return strings.TrimSpace(value), ""
	case fieldInt:
		var value int
		if err := json.Unmarshal(raw, &value); err != nil {
			return nil, label + " must be a number"
		}
		return value, ""
	case fieldBool:
		var value bool
		if err := json.Unmarshal(raw, &value); err != nil {
			return nil, label + " must be true or false"
		}
		return value, ""
	default:
		return nil, label + " is not a recognized field"
	}
}

func zeroValue(kind fieldKind) any {
	switch kind {
	case fieldInt:
		return 0
	case fieldBool:
		return false
	default:
		return ""
	}
}

// registerResource wires the four endpoint shapes for one content table:
// public list, authenticated create, sparse patch and delete. Every entity
// endpoint in the API is an instantiation of this registrar.
func (h *httpHandler) registerResource(public, protected *gin.RouterGroup, path string, res content.Resource, rules []fieldRule) {
	rules = append(rules, displayOrderRule)

	public.GET(path, func(c *gin.Context) {
		rows, err := res.List(c.Request.Context())
		if err != nil {
			h.respondServiceError(c, res.Name, err)
			return
		}
		respondData(c, http.StatusOK, rows)
	})

	protected.POST(path, func(c *gin.Context) {
		body, ok := bindBodyMap(c)
		if !ok {
			return
		}
		columns, message := buildColumns(body, rules, true)
		if message != "" {
			respondError(c, http.StatusBadRequest, message)
			return
		}
		if res.ParentColumn != "" {
			parentID, _ := columns[res.ParentColumn].(string)
			if err := res.EnsureParent(c.Request.Context(), parentID); err != nil {
				h.respondServiceError(c, res.Name, err)
				return
			}
		}

		row, err := res.Create(c.Request.Context(), columns)
		if err != nil {
			h.respondServiceError(c, res.Name, err)
			return
		}
		respondData(c, http.StatusCreated, row)
	})

	protected.PATCH(path, func(c *gin.Context) {
		body, ok := bindBodyMap(c)
		if !ok {
			return
		}
		id, message := extractID(body)
		if message != "" {
			respondError(c, http.StatusBadRequest, message)
			return
		}
		columns, message := buildColumns(body, rules, false)
		if message != "" {
			respondError(c, http.StatusBadRequest, message)
			return
		}
		if res.ParentColumn != "" {
			if parentID, ok := columns[res.ParentColumn].(string); ok {
				if err := res.EnsureParent(c.Request.Context(), parentID); err != nil {
					h.respondServiceError(c, res.Name, err)
					return
				}
			}
		}

		row, err := res.Update(c.Request.Context(), id, columns)
		if err != nil {
			h.respondServiceError(c, res.Name, err)
			return
		}
		respondData(c, http.StatusOK, row)
	})

	protected.DELETE(path, func(c *gin.Context) {
		id := c.Query("id")
		if err := validate.UUID(id); err != nil {
			respondError(c, http.StatusBadRequest, err.Error())
			return
		}

		deleted, err := res.Delete(c.Request.Context(), id)
		if err != nil {
			h.respondServiceError(c, res.Name, err)
			return
		}
		respondData(c, http.StatusOK, gin.H{"deleted": deleted})
	})
}

func bindBodyMap(c *gin.Context) (map[string]json.RawMessage, bool) {
	var body map[string]json.RawMessage
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return nil, false
	}
	return body, true
}

func extractID(body map[string]json.RawMessage) (string, string) {
	raw, present := body["id"]
	if !present {
		return "", "ID is required"
	}
	var id string
	if err := json.Unmarshal(raw, &id); err != nil {
		return "", "Invalid ID format"
	}
	if err := validate.UUID(id); err != nil {
		return "", err.Error()
	}
	return strings.TrimSpace(id), ""
}

func (h *httpHandler) respondServiceError(c *gin.Context, resource string, err error) {
	switch {
	case errors.Is(err, content.ErrNotFound):
		respondError(c, http.StatusNotFound, "Record not found")
	case errors.Is(err, content.ErrProfileExists):
		respondError(c, http.StatusConflict, "Profile already exists")
	default:
		h.logger.Error("storage operation failed", zap.String("resource", resource), zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Internal server error")
	}
}

func respondData(c *gin.Context, status int, data any) {
	c.JSON(status, gin.H{"success": true, "data": data})
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}
