package report

// Schema is the JSON Schema (Draft 2020-12) for the Scrutiny review
// JSON output. It documents the structure returned by WriteJSON.
const Schema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "$id": "https://github.com/unbound-force/scrutiny/review-report.schema.json",
  "title": "Scrutiny Review Report",
  "description": "Output schema for scrutiny review --format=json",
  "type": "object",
  "required": ["root_dir", "files", "summary", "recommendations", "metadata"],
  "properties": {
    "root_dir": {
      "type": "string",
      "description": "Scanned root directory"
    },
    "files": {
      "type": "array",
      "items": { "$ref": "#/$defs/ReviewedFile" }
    },
    "summary": { "$ref": "#/$defs/ReviewSummary" },
    "recommendations": {
      "type": "array",
      "items": { "type": "string" }
    },
    "metadata": { "$ref": "#/$defs/Metadata" }
  },
  "$defs": {
    "Category": {
      "type": "string",
      "enum": [
        "flaky", "theater", "over-mocking", "assertions",
        "isolation", "maintainability", "structure"
      ]
    },
    "Severity": {
      "type": "string",
      "enum": ["error", "warning", "info"]
    },
    "Violation": {
      "type": "object",
      "required": ["rule_id", "message"],
      "properties": {
        "rule_id": {
          "type": "string",
          "description": "Stable rule identifier (category/name)"
        },
        "message": { "type": "string" },
        "line": {
          "type": "integer",
          "description": "1-based source line, absent when unknown"
        },
        "column": {
          "type": "integer",
          "description": "1-based source column, absent when unknown"
        },
        "snippet": {
          "type": "string",
          "description": "Offending source line, trimmed"
        },
        "suggestion": { "type": "string" }
      }
    },
    "CategoryScore": {
      "type": "object",
      "required": [
        "category", "description", "score", "weight",
        "violations", "max_deduction", "actual_deduction"
      ],
      "properties": {
        "category": { "$ref": "#/$defs/Category" },
        "description": { "type": "string" },
        "score": { "type": "integer", "minimum": 0, "maximum": 100 },
        "weight": { "type": "integer" },
        "violations": { "type": "integer" },
        "max_deduction": { "type": "integer" },
        "actual_deduction": { "type": "number" }
      }
    },
    "ReviewedFile": {
      "type": "object",
      "required": [
        "path", "violations", "score", "categories",
        "test_count", "assertion_count", "summary"
      ],
      "properties": {
        "path": { "type": "string" },
        "violations": {
          "oneOf": [
            { "type": "array", "items": { "$ref": "#/$defs/Violation" } },
            { "type": "null" }
          ]
        },
        "score": { "type": "integer", "minimum": 0, "maximum": 100 },
        "categories": {
          "type": "array",
          "items": { "$ref": "#/$defs/CategoryScore" }
        },
        "test_count": { "type": "integer" },
        "assertion_count": { "type": "integer" },
        "summary": { "type": "string" }
      }
    },
    "IssueCount": {
      "type": "object",
      "required": ["rule_id", "count", "severity"],
      "properties": {
        "rule_id": { "type": "string" },
        "count": { "type": "integer" },
        "severity": { "$ref": "#/$defs/Severity" }
      }
    },
    "ReviewSummary": {
      "type": "object",
      "required": [
        "total_files", "total_tests", "total_assertions",
        "total_violations", "overall_score", "categories",
        "violations_by_category", "violations_by_severity", "top_issues"
      ],
      "properties": {
        "total_files": { "type": "integer" },
        "total_tests": { "type": "integer" },
        "total_assertions": { "type": "integer" },
        "total_violations": { "type": "integer" },
        "overall_score": { "type": "integer", "minimum": 0, "maximum": 100 },
        "categories": {
          "type": "array",
          "items": { "$ref": "#/$defs/CategoryScore" }
        },
        "violations_by_category": {
          "type": "object",
          "additionalProperties": { "type": "integer" }
        },
        "violations_by_severity": {
          "type": "object",
          "additionalProperties": { "type": "integer" }
        },
        "top_issues": {
          "oneOf": [
            { "type": "array", "items": { "$ref": "#/$defs/IssueCount" } },
            { "type": "null" }
          ]
        }
      }
    },
    "Metadata": {
      "type": "object",
      "required": ["scrutiny_version", "duration_ms"],
      "properties": {
        "scrutiny_version": { "type": "string" },
        "duration_ms": {
          "type": "integer",
          "description": "Review duration in milliseconds"
        },
        "timestamp": {
          "type": "string",
          "description": "ISO 8601 review start time"
        }
      }
    }
  }
}`
