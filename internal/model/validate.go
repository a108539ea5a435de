package model

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// opSchema describes the shape of a mutation op envelope. It is shape-only
// on purpose: no value rules beyond the closed type/section vocabularies.
const opSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["type"],
  "properties": {
    "type": {
      "type": "string",
      "enum": ["update_profile", "update_photo", "update_summary", "add_item", "update_item", "delete_item"]
    },
    "field": {"type": "string"},
    "value": {"type": "string"},
    "photo": {"type": ["string", "null"]},
    "section": {
      "type": "string",
      "enum": ["experience", "education", "skills", "languages", "interests"]
    },
    "id": {"type": "string"},
    "item": {"type": "object"},
    "updates": {"type": "object"}
  },
  "additionalProperties": false
}`

var opSchemaLoader = gojsonschema.NewStringLoader(opSchema)

// ValidateOp validates a raw op envelope against the op schema before it is
// decoded and applied.
func ValidateOp(raw []byte) error {
	res, err := gojsonschema.Validate(opSchemaLoader, gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return err
	}
	if res.Valid() {
		return nil
	}
	// collect errors
	msgs := ""
	for _, e := range res.Errors() {
		msgs += fmt.Sprintf("%s; ", e.String())
	}
	return fmt.Errorf("op validation failed: %s", msgs)
}
