package oracle

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// replySchema is the contract the model reply must satisfy before the
// payload is even unmarshalled. Structural schedule checks (exactly one
// entry per candidate, no overlaps) remain the validator's job.
const replySchema = `{
  "type": "object",
  "required": ["success", "schedule"],
  "properties": {
    "success": {"type": "boolean"},
    "schedule": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": [
          "candidateName", "candidateEmail",
          "interviewerId", "interviewerName", "interviewerEmail",
          "date", "time", "endTime", "matchingScore"
        ],
        "properties": {
          "candidateId": {"type": "string"},
          "candidateName": {"type": "string", "minLength": 1},
          "candidateEmail": {"type": "string", "minLength": 1},
          "interviewerId": {"type": "string", "minLength": 1},
          "interviewerName": {"type": "string"},
          "interviewerEmail": {"type": "string"},
          "date": {"type": "string", "pattern": "^\\d{4}-\\d{2}-\\d{2}$"},
          "time": {"type": "string", "pattern": "^\\d{2}:\\d{2}$"},
          "endTime": {"type": "string", "pattern": "^\\d{2}:\\d{2}$"},
          "matchingScore": {"type": "number", "minimum": 0, "maximum": 1},
          "skillGaps": {"type": "array", "maxItems": 3, "items": {"type": "string"}},
          "behavioralQuestion": {"type": "string"}
        }
      }
    }
  }
}`

var compiledSchema = gojsonschema.NewStringLoader(replySchema)

func validateReply(raw string) error {
	result, err := gojsonschema.Validate(compiledSchema, gojsonschema.NewStringLoader(raw))
	if err != nil {
		return fmt.Errorf("oracle returned non-parseable JSON: %w", err)
	}
	if !result.Valid() {
		first := result.Errors()[0]
		return fmt.Errorf("oracle reply violates schedule schema: %s", first.String())
	}
	return nil
}
