package config

import (
	"testing"
)

func TestSubstituteEnvVars_Simple(t *testing.T) {
	t.Setenv("TEST_VAR_SIMPLE", "hello")

	content, missing := substituteEnvVars("value = ${TEST_VAR_SIMPLE}")
	if content != "value = hello" {
		t.Errorf("expected 'value = hello', got %q", content)
	}
	if len(missing) != 0 {
		t.Errorf("expected no missing vars, got %v", missing)
	}
}

func TestSubstituteEnvVars_Missing(t *testing.T) {
	content, missing := substituteEnvVars("value = ${ARRSYNC_TEST_NONEXISTENT_VAR_12345}")
	if content != "value = ${ARRSYNC_TEST_NONEXISTENT_VAR_12345}" {
		t.Errorf("expected unchanged, got %q", content)
	}
	if len(missing) != 1 || missing[0] != "ARRSYNC_TEST_NONEXISTENT_VAR_12345" {
		t.Errorf("expected [ARRSYNC_TEST_NONEXISTENT_VAR_12345], got %v", missing)
	}
}

func TestSubstituteEnvVars_Default(t *testing.T) {
	t.Setenv("UNSET_VAR_DEFAULT", "")

	content, missing := substituteEnvVars("value = ${UNSET_VAR_DEFAULT:-default_value}")
	if content != "value = default_value" {
		t.Errorf("expected 'value = default_value', got %q", content)
	}
	if len(missing) != 0 {
		t.Errorf("expected no missing vars with default, got %v", missing)
	}
}

func TestSubstituteEnvVars_Required(t *testing.T) {
	t.Setenv("REQUIRED_VAR_TEST", "")

	content, missing := substituteEnvVars("value = ${REQUIRED_VAR_TEST:?API key is required}")
	if content != "value = ${REQUIRED_VAR_TEST:?API key is required}" {
		t.Errorf("expected unchanged, got %q", content)
	}
	if len(missing) != 1 || missing[0] != "REQUIRED_VAR_TEST: API key is required" {
		t.Errorf("expected error message, got %v", missing)
	}
}

func TestSubstitute_Fallback(t *testing.T) {
	t.Setenv("FROM_PROCESS", "process")

	content, missing := substitute("${FROM_PROCESS} ${FROM_DOTENV} ${ARRSYNC_NOWHERE_VAR}", map[string]string{
		"FROM_PROCESS": "ignored",
		"FROM_DOTENV":  "dotenv",
	})
	if content != "process dotenv ${ARRSYNC_NOWHERE_VAR}" {
		t.Errorf("unexpected content %q", content)
	}
	if len(missing) != 1 || missing[0] != "ARRSYNC_NOWHERE_VAR" {
		t.Errorf("expected [ARRSYNC_NOWHERE_VAR], got %v", missing)
	}
}
